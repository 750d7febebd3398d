package services

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"accommodation-recommender/models"
)

func sampleListings() []*models.Listing {
	return []*models.Listing{
		{ID: 0, Attributes: models.Attributes{
			PreferredCampus: "Main Campus", AccommodationType: "Residence", RoomType: "Single",
			MonthlyBudget: 500, SafetyPriority: "high", DistancePriority: "close",
			Amenities: models.Amenities{HighSpeedWifi: true, StudyAreas: true},
		}},
		{ID: 1, Attributes: models.Attributes{
			PreferredCampus: "City Campus", AccommodationType: "Apartment", RoomType: "Shared",
			MonthlyBudget: 1000, SafetyPriority: "medium", DistancePriority: "moderate",
			Amenities: models.Amenities{SecureParking: true, KitchenAccess: true},
		}},
		{ID: 2, Attributes: models.Attributes{
			PreferredCampus: "Main Campus", AccommodationType: "Apartment", RoomType: "Single",
			MonthlyBudget: 1500, SafetyPriority: "low", DistancePriority: "flexible",
			Amenities: models.Amenities{GymAccess: true, PublicTransport: true, Security247: true},
		}},
	}
}

func newTestRecommender(t *testing.T) *Recommender {
	t.Helper()
	r, err := NewRecommender(sampleListings(), DefaultNeighbors)
	if err != nil {
		t.Fatalf("NewRecommender: %v", err)
	}
	return r
}

func TestRecommenderEncodeLayout(t *testing.T) {
	r := newTestRecommender(t)

	v, err := r.Encode(sampleListings()[1].Attributes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// campus, type, room, budget, safety, distance, 8 amenities.
	want := FeatureVector{0, 0, 0, 0.5, 2, 2, 0, 1, 0, 1, 0, 0, 0, 0}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Encode: got %v, want %v", v, want)
	}
	if len(v) != len(models.FeatureColumns) {
		t.Errorf("dimensions: got %d, want %d", len(v), len(models.FeatureColumns))
	}
}

func TestRecommenderBudgetNormalisation(t *testing.T) {
	r := newTestRecommender(t)

	for i, want := range []float64{0.0, 0.5, 1.0} {
		if got := r.Normalizer().Normalize(sampleListings()[i].MonthlyBudget); got != want {
			t.Errorf("listing %d: normalised budget %v, want %v", i, got, want)
		}
	}
}

func TestRecommendExactMatchFirst(t *testing.T) {
	r := newTestRecommender(t)

	q := models.Query{Attributes: sampleListings()[2].Attributes}
	got, err := r.Recommend(q, 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len: got %d, want 1", len(got))
	}
	if got[0].Listing.ID != 2 || got[0].Distance != 0 || got[0].Rank != 1 {
		t.Errorf("top result: got %+v", got[0])
	}
}

func TestRecommendClampsToDatasetSize(t *testing.T) {
	r := newTestRecommender(t)

	q := models.Query{Attributes: sampleListings()[0].Attributes}
	got, err := r.Recommend(q, 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len: got %d, want 3", len(got))
	}
	for i := range got {
		if got[i].Rank != i+1 {
			t.Errorf("rank %d: got %d", i, got[i].Rank)
		}
		if i > 0 && got[i].Distance < got[i-1].Distance {
			t.Errorf("results not sorted at %d", i)
		}
	}
}

func TestRecommendReturnsOriginalListings(t *testing.T) {
	listings := sampleListings()
	r, _ := NewRecommender(listings, 5)

	got, _ := r.Recommend(models.Query{Attributes: listings[1].Attributes}, 1)
	if got[0].Listing != listings[1] {
		t.Errorf("expected the stored listing pointer to be returned")
	}
	if got[0].Listing.PreferredCampus != "City Campus" {
		t.Errorf("PreferredCampus: got %q", got[0].Listing.PreferredCampus)
	}
}

func TestRecommendUnknownCampus(t *testing.T) {
	r := newTestRecommender(t)

	q := models.Query{Attributes: sampleListings()[0].Attributes}
	q.PreferredCampus = "Nonexistent Campus"

	_, err := r.Recommend(q, 5)
	var uc *UnknownCategoryError
	if !errors.As(err, &uc) {
		t.Fatalf("expected *UnknownCategoryError, got %v", err)
	}
	if uc.Column != models.ColCampus {
		t.Errorf("Column: got %q, want %q", uc.Column, models.ColCampus)
	}
}

func TestRecommendInvalidK(t *testing.T) {
	r := newTestRecommender(t)
	q := models.Query{Attributes: sampleListings()[0].Attributes}

	if _, err := r.Recommend(q, 0); !errors.Is(err, ErrInvalidK) {
		t.Errorf("expected ErrInvalidK, got %v", err)
	}
}

func TestRecommendNonFiniteBudget(t *testing.T) {
	r := newTestRecommender(t)

	for _, budget := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		q := models.Query{Attributes: sampleListings()[2].Attributes}
		q.MonthlyBudget = budget

		recs, err := r.Recommend(q, 3)
		var ib *InvalidBudgetError
		if !errors.As(err, &ib) {
			t.Errorf("budget %v: expected *InvalidBudgetError, got %v (%d results)", budget, err, len(recs))
			continue
		}
		if !errors.Is(err, ErrInvalidBudget) {
			t.Errorf("budget %v: error does not wrap ErrInvalidBudget", budget)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	r := newTestRecommender(t)
	q := models.Query{Attributes: models.Attributes{
		PreferredCampus: "Main Campus", AccommodationType: "Apartment", RoomType: "Shared",
		MonthlyBudget: 900, SafetyPriority: "medium", DistancePriority: "close",
		Amenities: models.Amenities{HighSpeedWifi: true},
	}}

	first, err := r.Recommend(q, 3)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := r.Recommend(q, 3)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestRecommenderVocabulary(t *testing.T) {
	r := newTestRecommender(t)
	vocab := r.Vocabulary()

	want := []string{"City Campus", "Main Campus"}
	if !reflect.DeepEqual(vocab[models.ColCampus], want) {
		t.Errorf("campus vocabulary: got %v, want %v", vocab[models.ColCampus], want)
	}
	if len(vocab) != len(models.CategoricalColumns) {
		t.Errorf("columns: got %d, want %d", len(vocab), len(models.CategoricalColumns))
	}
}

func TestNewRecommenderEmpty(t *testing.T) {
	if _, err := NewRecommender(nil, 5); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}
