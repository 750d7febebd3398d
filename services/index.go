package services

import (
	"fmt"
	"math"
	"sort"
)

// FeatureVector is the numeric encoding of a listing or a query, laid out in
// models.FeatureColumns order.
type FeatureVector []float64

// Neighbor is one search hit: the position of the stored vector and its
// Euclidean distance to the query.
type Neighbor struct {
	ID       int
	Distance float64
}

// SimilarityIndex answers exact k-nearest-neighbour queries by brute force.
// It is read-only after construction and safe for concurrent queries.
type SimilarityIndex struct {
	vectors  []FeatureVector
	dim      int
	defaultK int
}

// NewSimilarityIndex stores vectors, identified by their position in the slice.
func NewSimilarityIndex(vectors []FeatureVector, defaultK int) (*SimilarityIndex, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("index: %w", ErrEmptyInput)
	}
	if defaultK <= 0 {
		return nil, &InvalidKError{K: defaultK, Available: len(vectors)}
	}

	dim := len(vectors[0])
	stored := make([]FeatureVector, len(vectors))
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("index: vector %d: %w", i, &DimensionMismatchError{Want: dim, Got: len(v)})
		}
		stored[i] = append(FeatureVector(nil), v...)
	}

	return &SimilarityIndex{vectors: stored, dim: dim, defaultK: defaultK}, nil
}

// Len returns the number of stored vectors.
func (idx *SimilarityIndex) Len() int { return len(idx.vectors) }

// Dim returns the dimensionality every vector shares.
func (idx *SimilarityIndex) Dim() int { return idx.dim }

// DefaultK is the neighbour count used when a caller has no preference.
func (idx *SimilarityIndex) DefaultK() int { return idx.defaultK }

// Query returns the k stored vectors closest to v, nearest first. Equal
// distances keep insertion order. A k larger than the index is clamped to
// the number of stored vectors.
func (idx *SimilarityIndex) Query(v FeatureVector, k int) ([]Neighbor, error) {
	if len(v) != idx.dim {
		return nil, &DimensionMismatchError{Want: idx.dim, Got: len(v)}
	}
	if k <= 0 {
		return nil, &InvalidKError{K: k, Available: len(idx.vectors)}
	}
	if k > len(idx.vectors) {
		k = len(idx.vectors)
	}

	hits := make([]Neighbor, len(idx.vectors))
	for i, stored := range idx.vectors {
		hits[i] = Neighbor{ID: i, Distance: euclidean(v, stored)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	return hits[:k], nil
}

func euclidean(a, b FeatureVector) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
