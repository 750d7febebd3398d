package services

import (
	"fmt"
	"sort"
)

// ColumnCodec is a fixed bijection between the distinct values of one
// categorical column and the integers 0..k-1. Codes follow ascending string
// order, so the same dataset always yields the same codes.
type ColumnCodec struct {
	column string
	codes  map[string]int
	values []string
}

// NewColumnCodec scans every value of a column and assigns codes.
func NewColumnCodec(column string, values []string) (*ColumnCodec, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("codec %s: %w", column, ErrEmptyInput)
	}

	seen := make(map[string]struct{}, len(values))
	distinct := make([]string, 0)
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)

	codes := make(map[string]int, len(distinct))
	for i, v := range distinct {
		codes[v] = i
	}

	return &ColumnCodec{column: column, codes: codes, values: distinct}, nil
}

// Column returns the name of the column the codec was built for.
func (c *ColumnCodec) Column() string { return c.column }

// Len returns the vocabulary size.
func (c *ColumnCodec) Len() int { return len(c.values) }

// Encode returns the code for value. There is no default bucket.
func (c *ColumnCodec) Encode(value string) (int, error) {
	code, ok := c.codes[value]
	if !ok {
		return 0, &UnknownCategoryError{Column: c.column, Value: value}
	}
	return code, nil
}

// Decode returns the value that was assigned code.
func (c *ColumnCodec) Decode(code int) (string, error) {
	if code < 0 || code >= len(c.values) {
		return "", fmt.Errorf("codec %s: %w: %d not in [0,%d)", c.column, ErrCodeOutOfRange, code, len(c.values))
	}
	return c.values[code], nil
}

// Values returns a copy of the vocabulary in code order.
func (c *ColumnCodec) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}
