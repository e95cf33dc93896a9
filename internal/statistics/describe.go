package statistics

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/kelompok10/surveydash/internal/survey"
)

// Summary mirrors a dataframe describe() column. Numeric columns fill the
// moment and quartile fields; columns with no numeric cell fall back to the
// categorical fields. Undefined statistics are nil.
type Summary struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean,omitempty"`
	Std    *float64 `json:"std,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Q1     *float64 `json:"p25,omitempty"`
	Median *float64 `json:"p50,omitempty"`
	Q3     *float64 `json:"p75,omitempty"`
	Max    *float64 `json:"max,omitempty"`

	Categorical bool   `json:"categorical,omitempty"`
	Unique      int    `json:"unique,omitempty"`
	Top         string `json:"top,omitempty"`
	Freq        int    `json:"freq,omitempty"`
}

// Describe summarises one column.
func Describe(column string, values []survey.Value) Summary {
	nums := DropNaN(Coerce(values))
	if len(nums) == 0 {
		return describeCategorical(column, values)
	}
	s := Summary{Column: column, Count: len(nums)}
	data := stats.Float64Data(nums)

	mean, _ := stats.Mean(data)
	s.Mean = finite(mean)
	if len(nums) > 1 {
		std, _ := stats.StandardDeviationSample(data)
		s.Std = finite(std)
	}
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	s.Min, s.Max = finite(min), finite(max)

	sorted := append(stats.Float64Data(nil), data...)
	sort.Sort(sorted)
	s.Q1 = finite(quantile(sorted, 0.25))
	s.Median = finite(quantile(sorted, 0.5))
	s.Q3 = finite(quantile(sorted, 0.75))
	return s
}

func describeCategorical(column string, values []survey.Value) Summary {
	s := Summary{Column: column, Categorical: true}
	counts := map[string]int{}
	var order []string
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		key := v.String()
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
		s.Count++
	}
	s.Unique = len(order)
	for _, k := range order {
		if counts[k] > s.Freq {
			s.Top, s.Freq = k, counts[k]
		}
	}
	return s
}

// quantile interpolates linearly between the order statistics around
// position (n-1)*p of an ascending sample, as dataframe describe() does.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
