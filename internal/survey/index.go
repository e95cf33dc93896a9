package survey

import (
	"fmt"
	"strings"
)

// SchemaError reports dependent item columns absent from an uploaded table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	quoted := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return fmt.Sprintf("dependent item columns not found: %s", strings.Join(quoted, ", "))
}

// CheckItems returns a *SchemaError naming every item that t lacks.
func CheckItems(t *Table, items []string) error {
	var missing []string
	for _, it := range items {
		if !t.HasColumn(it) {
			missing = append(missing, it)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

type indexOptions struct {
	minItems int
}

// IndexOption tunes ComputeIndex.
type IndexOption func(*indexOptions)

// WithMinItems leaves the index missing for rows with fewer than k numeric
// items. Values below 1 are treated as 1.
func WithMinItems(k int) IndexOption {
	return func(o *indexOptions) {
		if k < 1 {
			k = 1
		}
		o.minItems = k
	}
}

// ComputeIndex returns, per row, the mean of the numeric cells among items.
// Text and missing cells are left out of the mean rather than counted as zero;
// a row with no usable cell gets a missing index.
func ComputeIndex(t *Table, items []string, opts ...IndexOption) ([]Value, error) {
	o := indexOptions{minItems: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if err := CheckItems(t, items); err != nil {
		return nil, err
	}
	cols := make([]int, len(items))
	for i, it := range items {
		cols[i] = t.ColumnIndex(it)
	}
	out := make([]Value, len(t.Rows))
	for r, row := range t.Rows {
		var sum float64
		n := 0
		for _, c := range cols {
			if v, ok := row[c].Number(); ok {
				sum += v
				n++
			}
		}
		if n == 0 || n < o.minItems {
			out[r] = MissingValue()
			continue
		}
		out[r] = NumberValue(sum / float64(n))
	}
	return out, nil
}

// WithIndex returns a copy of t with the IndexColumn appended.
func WithIndex(t *Table, items []string, opts ...IndexOption) (*Table, error) {
	idx, err := ComputeIndex(t, items, opts...)
	if err != nil {
		return nil, err
	}
	return t.WithColumn(IndexColumn, idx), nil
}
