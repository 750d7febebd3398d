package services

import "fmt"

// RangeNormalizer rescales a continuous column into [0,1] using the bounds
// observed when it was built. Inputs outside those bounds extrapolate.
type RangeNormalizer struct {
	min float64
	max float64
}

// NewRangeNormalizer captures the min and max of values.
func NewRangeNormalizer(values []float64) (*RangeNormalizer, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("normalizer: %w", ErrEmptyInput)
	}

	n := &RangeNormalizer{min: values[0], max: values[0]}
	for _, v := range values[1:] {
		if v < n.min {
			n.min = v
		}
		if v > n.max {
			n.max = v
		}
	}
	return n, nil
}

// Bounds returns the observed (min, max).
func (n *RangeNormalizer) Bounds() (float64, float64) { return n.min, n.max }

// Normalize maps value to (value-min)/(max-min). A degenerate range, where
// every observed value was equal, maps everything to 0.
func (n *RangeNormalizer) Normalize(value float64) float64 {
	if n.max <= n.min {
		return 0
	}
	return (value - n.min) / (n.max - n.min)
}
