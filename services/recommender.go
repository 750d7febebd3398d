package services

import (
	"fmt"
	"math"

	"accommodation-recommender/models"
)

// DefaultNeighbors is the number of matches returned when nothing else is configured.
const DefaultNeighbors = 5

// Recommender matches a query to the most similar listings. All of its state
// is built once in NewRecommender and never changes afterwards.
type Recommender struct {
	listings []*models.Listing
	codecs   map[string]*ColumnCodec
	budget   *RangeNormalizer
	index    *SimilarityIndex
}

// NewRecommender builds one codec per categorical column, the budget
// normalizer and the similarity index over listings.
func NewRecommender(listings []*models.Listing, defaultK int) (*Recommender, error) {
	if len(listings) == 0 {
		return nil, fmt.Errorf("recommender: no listings: %w", ErrEmptyInput)
	}

	r := &Recommender{
		listings: listings,
		codecs:   make(map[string]*ColumnCodec, len(models.CategoricalColumns)),
	}

	for _, col := range models.CategoricalColumns {
		values := make([]string, len(listings))
		for i, l := range listings {
			values[i] = l.Category(col)
		}
		codec, err := NewColumnCodec(col, values)
		if err != nil {
			return nil, fmt.Errorf("recommender: %w", err)
		}
		r.codecs[col] = codec
	}

	budgets := make([]float64, len(listings))
	for i, l := range listings {
		budgets[i] = l.MonthlyBudget
	}
	budget, err := NewRangeNormalizer(budgets)
	if err != nil {
		return nil, fmt.Errorf("recommender: %w", err)
	}
	r.budget = budget

	vectors := make([]FeatureVector, len(listings))
	for i, l := range listings {
		v, err := r.Encode(l.Attributes)
		if err != nil {
			return nil, fmt.Errorf("recommender: listing %d: %w", l.ID, err)
		}
		vectors[i] = v
	}

	index, err := NewSimilarityIndex(vectors, defaultK)
	if err != nil {
		return nil, fmt.Errorf("recommender: %w", err)
	}
	r.index = index

	return r, nil
}

// Encode turns attributes into a feature vector in models.FeatureColumns order.
// A NaN or infinite budget is rejected.
func (r *Recommender) Encode(a models.Attributes) (FeatureVector, error) {
	if math.IsNaN(a.MonthlyBudget) || math.IsInf(a.MonthlyBudget, 0) {
		return nil, &InvalidBudgetError{Value: a.MonthlyBudget}
	}

	v := make(FeatureVector, 0, len(models.FeatureColumns))
	for _, col := range models.FeatureColumns {
		if col == models.ColMonthlyBudget {
			v = append(v, r.budget.Normalize(a.MonthlyBudget))
			continue
		}
		if codec, ok := r.codecs[col]; ok {
			code, err := codec.Encode(a.Category(col))
			if err != nil {
				return nil, err
			}
			v = append(v, float64(code))
		}
	}
	for _, on := range a.Flags() {
		if on {
			v = append(v, 1)
		} else {
			v = append(v, 0)
		}
	}
	return v, nil
}

// Recommend returns the k listings nearest to q, closest first. A k above the
// number of listings is clamped, so fewer than k results may come back.
func (r *Recommender) Recommend(q models.Query, k int) ([]models.Recommendation, error) {
	if k <= 0 {
		return nil, &InvalidKError{K: k, Available: len(r.listings)}
	}

	v, err := r.Encode(q.Attributes)
	if err != nil {
		return nil, err
	}

	neighbors, err := r.index.Query(v, k)
	if err != nil {
		return nil, err
	}

	out := make([]models.Recommendation, len(neighbors))
	for i, n := range neighbors {
		out[i] = models.Recommendation{
			Rank:     i + 1,
			Distance: n.Distance,
			Listing:  r.listings[n.ID],
		}
	}
	return out, nil
}

// DefaultK is the neighbour count configured at construction.
func (r *Recommender) DefaultK() int { return r.index.DefaultK() }

// Len returns the number of indexed listings.
func (r *Recommender) Len() int { return len(r.listings) }

// Codec returns the codec of a categorical column.
func (r *Recommender) Codec(column string) (*ColumnCodec, bool) {
	c, ok := r.codecs[column]
	return c, ok
}

// Normalizer returns the budget normalizer.
func (r *Recommender) Normalizer() *RangeNormalizer { return r.budget }

// Vocabulary lists the accepted values of every categorical column.
func (r *Recommender) Vocabulary() map[string][]string {
	out := make(map[string][]string, len(r.codecs))
	for col, c := range r.codecs {
		out[col] = c.Values()
	}
	return out
}
