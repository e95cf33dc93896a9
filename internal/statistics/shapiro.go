package statistics

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultAlpha is the significance level used for every verdict the
// dashboard prints.
const DefaultAlpha = 0.05

var (
	// ErrTooFewValues is returned when a test needs more observations.
	ErrTooFewValues = errors.New("at least 3 non-missing values are required")
	// ErrConstantInput is returned when every observation is identical.
	ErrConstantInput = errors.New("all values are identical")
)

// NormalityResult is the outcome of a Shapiro-Wilk test.
type NormalityResult struct {
	W      float64 `json:"w"`
	PValue float64 `json:"p_value"`
	N      int     `json:"n"`
	Alpha  float64 `json:"alpha"`
	Normal bool    `json:"normal"`
}

// TestNormality runs ShapiroWilk on x (NaNs dropped) and classifies the
// sample as normal when p >= alpha.
func TestNormality(x []float64, alpha float64) (NormalityResult, error) {
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}
	clean := DropNaN(x)
	w, p, err := ShapiroWilk(clean)
	if err != nil {
		return NormalityResult{N: len(clean), Alpha: alpha}, err
	}
	return NormalityResult{W: w, PValue: p, N: len(clean), Alpha: alpha, Normal: p >= alpha}, nil
}

// Coefficients of Royston's (1995) approximation, algorithm AS R94.
var (
	swC1 = []float64{0.0, 0.221157, -0.147981, -2.07119, 4.434685, -2.706056}
	swC2 = []float64{0.0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.544, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

const swSmall = 1e-19

// ShapiroWilk computes the W statistic and its p-value for a complete
// sample. NaNs must already be removed. The approximation is documented for
// 3 <= n <= 5000.
func ShapiroWilk(x []float64) (w, p float64, err error) {
	n := len(x)
	if n < 3 {
		return math.NaN(), math.NaN(), ErrTooFewValues
	}
	xs := make([]float64, n)
	copy(xs, x)
	sort.Float64s(xs)
	if xs[n-1]-xs[0] < swSmall {
		return math.NaN(), math.NaN(), ErrConstantInput
	}

	ssq := stat.Variance(xs, nil) * float64(n-1)

	a := swCoefficients(n)
	var num float64
	for i, ai := range a {
		num += ai * (xs[n-1-i] - xs[i])
	}
	w = num * num / ssq
	if w > 1 {
		w = 1
	}
	return w, swPValue(w, n), nil
}

// swCoefficients returns the upper half of the antisymmetric weight vector,
// largest weight first.
func swCoefficients(n int) []float64 {
	nn2 := n / 2
	a := make([]float64, nn2)
	if n == 3 {
		a[0] = math.Sqrt2 / 2
		return a
	}
	an25 := float64(n) + 0.25
	m := make([]float64, nn2)
	var summ2 float64
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / an25)
		summ2 += m[i] * m[i]
	}
	summ2 *= 2
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(float64(n))
	a1 := poly(swC1, rsn) - m[0]/ssumm2

	first := 1
	var fac float64
	if n > 5 {
		first = 2
		a2 := -m[1]/ssumm2 + poly(swC2, rsn)
		fac = math.Sqrt((summ2 - 2*m[0]*m[0] - 2*m[1]*m[1]) / (1 - 2*a1*a1 - 2*a2*a2))
		a[1] = a2
	} else {
		fac = math.Sqrt((summ2 - 2*m[0]*m[0]) / (1 - 2*a1*a1))
	}
	a[0] = a1
	for i := first; i < nn2; i++ {
		a[i] = -m[i] / fac
	}
	return a
}

func swPValue(w float64, n int) float64 {
	if n == 3 {
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Pi/3)
		return math.Min(math.Max(p, 0), 1)
	}
	w1 := 1 - w
	if w1 <= 0 {
		return 1
	}
	y := math.Log(w1)
	an := float64(n)
	var m, s float64
	if n <= 11 {
		gamma := poly(swG, an)
		if y >= gamma {
			return swSmall
		}
		y = -math.Log(gamma - y)
		m = poly(swC3, an)
		s = math.Exp(poly(swC4, an))
	} else {
		xx := math.Log(an)
		m = poly(swC5, xx)
		s = math.Exp(poly(swC6, xx))
	}
	return distuv.UnitNormal.Survival((y - m) / s)
}

// poly evaluates cc[0] + cc[1]*x + cc[2]*x^2 + ...
func poly(cc []float64, x float64) float64 {
	var r float64
	for i := len(cc) - 1; i >= 0; i-- {
		r = r*x + cc[i]
	}
	return r
}
