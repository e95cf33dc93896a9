// Package statistics holds the numeric routines the dashboard reports:
// descriptive summaries, the Shapiro-Wilk normality test and Spearman's rank
// correlation.
package statistics

import (
	"math"
	"strconv"
	"strings"

	"github.com/kelompok10/surveydash/internal/survey"
)

// Coerce converts cells to floats, turning anything that is not a number into
// NaN. Numeric-looking text is parsed.
func Coerce(values []survey.Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = coerceOne(v)
	}
	return out
}

func coerceOne(v survey.Value) float64 {
	if f, ok := v.Number(); ok {
		return f
	}
	if v.IsText() {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.Raw()), 64); err == nil && !math.IsInf(f, 0) {
			return f
		}
	}
	return math.NaN()
}

// DropNaN returns the non-NaN entries of xs.
func DropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// Round rounds x to the given number of decimal places, half away from zero.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
