package statistics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CorrelationResult is Spearman's rho with its two-sided p-value over N
// complete pairs. Rho and PValue are NaN when the correlation is undefined.
type CorrelationResult struct {
	Rho    float64
	PValue float64
	N      int
}

// Spearman correlates x and y on ranks. Pairs where either side is NaN are
// dropped; ties share their average rank.
func Spearman(x, y []float64) CorrelationResult {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	res := CorrelationResult{Rho: math.NaN(), PValue: math.NaN(), N: len(xs)}
	if res.N < 3 || constant(xs) || constant(ys) {
		return res
	}

	rho := stat.Correlation(Ranks(xs), Ranks(ys), nil)
	if 1-math.Abs(rho) < 1e-12 {
		res.Rho = math.Copysign(1, rho)
		res.PValue = 0
		return res
	}
	res.Rho = rho

	df := float64(res.N - 2)
	denom := (1 - rho) * (1 + rho)
	t := rho * math.Sqrt(df/denom)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	res.PValue = math.Min(1, 2*dist.Survival(math.Abs(t)))
	return res
}

// Ranks assigns 1-based ranks, averaging over ties.
func Ranks(data []float64) []float64 {
	n := len(data)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return data[idx[a]] < data[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && data[idx[j]] == data[idx[i]] {
			j++
		}
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}
	return ranks
}

func constant(xs []float64) bool {
	for _, v := range xs[1:] {
		if v != xs[0] {
			return false
		}
	}
	return true
}
