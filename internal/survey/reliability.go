package survey

import "github.com/montanaflynn/stats"

// Reliability is Cronbach's alpha over the rows where every item is numeric.
type Reliability struct {
	Alpha float64 `json:"alpha"`
	N     int     `json:"n"`
	Items int     `json:"items"`
}

// CronbachAlpha measures the internal consistency of items in t.
// Rows with any non-numeric item are dropped (listwise deletion).
func CronbachAlpha(t *Table, items []string) (Reliability, error) {
	if err := CheckItems(t, items); err != nil {
		return Reliability{}, err
	}
	cols := make([]int, len(items))
	for i, it := range items {
		cols[i] = t.ColumnIndex(it)
	}
	matrix := make([][]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		vals := make([]float64, 0, len(cols))
		for _, c := range cols {
			v, ok := row[c].Number()
			if !ok {
				break
			}
			vals = append(vals, v)
		}
		if len(vals) == len(cols) {
			matrix = append(matrix, vals)
		}
	}
	return Reliability{Alpha: cronbach(matrix), N: len(matrix), Items: len(items)}, nil
}

// cronbach uses population variance throughout, so perfectly correlated items
// give exactly 1. The result is clamped to [0, 1].
func cronbach(matrix [][]float64) float64 {
	n := len(matrix)
	if n == 0 {
		return 0
	}
	k := len(matrix[0])
	if k < 2 {
		return 0
	}

	totals := make([]float64, n)
	for i, row := range matrix {
		for _, v := range row {
			totals[i] += v
		}
	}
	var sumItemVars float64
	column := make([]float64, n)
	for j := 0; j < k; j++ {
		for i := range matrix {
			column[i] = matrix[i][j]
		}
		v, _ := stats.PopulationVariance(column)
		sumItemVars += v
	}

	totalVar, _ := stats.PopulationVariance(totals)
	if totalVar == 0 {
		return 0
	}
	kf := float64(k)
	alpha := (kf / (kf - 1)) * (1 - sumItemVars/totalVar)
	switch {
	case alpha < 0:
		return 0
	case alpha > 1:
		return 1
	}
	return alpha
}
