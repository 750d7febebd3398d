package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"accommodation-recommender/metrics"
	"accommodation-recommender/models"
	"accommodation-recommender/services"
	"accommodation-recommender/utils"
)

const maxBodyBytes = 1 << 16

// Server exposes the recommender over HTTP.
type Server struct {
	recommender *services.Recommender
	logger      *utils.Logger
}

// New creates an HTTP server around a loaded recommender.
func New(recommender *services.Recommender, logger *utils.Logger) *Server {
	metrics.SetIndexedListings(recommender.Len())
	return &Server{recommender: recommender, logger: logger}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/health", s.handleHealth)
	r.Get("/vocabulary", s.handleVocabulary)
	r.Post("/recommendations", s.handleRecommend)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// RecommendRequest is the body of POST /recommendations. It carries the same
// fields as a dataset row plus an optional neighbour count.
type RecommendRequest struct {
	models.Query
	K *int `json:"k,omitempty"`
}

// RecommendResponse lists matches nearest first.
type RecommendResponse struct {
	Recommendations []models.Recommendation `json:"recommendations"`
	Total           int                     `json:"total"`
	K               int                     `json:"k"`
}

// ErrorResponse is a JSON error body.
type ErrorResponse struct {
	Error  string `json:"error"`
	Column string `json:"column,omitempty"`
	Value  string `json:"value,omitempty"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Listings int    `json:"listings"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Listings: s.recommender.Len()})
}

func (s *Server) handleVocabulary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.recommender.Vocabulary())
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		metrics.ObserveRecommendation(metrics.OutcomeBadRequest)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	k := s.recommender.DefaultK()
	if req.K != nil {
		k = *req.K
	}

	recs, err := s.recommender.Recommend(req.Query, k)
	if err != nil {
		s.writeRecommendError(w, r, err)
		return
	}

	metrics.ObserveRecommendation(metrics.OutcomeOK)
	writeJSON(w, http.StatusOK, RecommendResponse{Recommendations: recs, Total: len(recs), K: k})
}

func (s *Server) writeRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := chiMiddleware.GetReqID(r.Context())

	var unknown *services.UnknownCategoryError
	switch {
	case errors.As(err, &unknown):
		metrics.ObserveRecommendation(metrics.OutcomeUnknownCategory)
		s.logger.Debug("[server] %s: %v", reqID, err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: err.Error(), Column: unknown.Column, Value: unknown.Value,
		})
	case errors.Is(err, services.ErrInvalidK):
		metrics.ObserveRecommendation(metrics.OutcomeInvalidK)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidBudget):
		metrics.ObserveRecommendation(metrics.OutcomeBadRequest)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Column: models.ColMonthlyBudget})
	default:
		metrics.ObserveRecommendation(metrics.OutcomeError)
		s.logger.Error("[server] %s: recommend failed: %v", reqID, err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
