package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kelompok10/surveydash/internal/survey"
)

func TestCoerce(t *testing.T) {
	got := Coerce([]survey.Value{
		survey.IntValue(3),
		survey.TextValue(" 2.5 "),
		survey.TextValue("Setuju"),
		survey.MissingValue(),
	})
	assert.Equal(t, 3.0, got[0])
	assert.Equal(t, 2.5, got[1])
	assert.True(t, math.IsNaN(got[2]))
	assert.True(t, math.IsNaN(got[3]))
	assert.Equal(t, []float64{3, 2.5}, DropNaN(got))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.821, Round(0.8207826816681233, 3))
	assert.Equal(t, 0.0886, Round(0.08858700531354381, 4))
	assert.Equal(t, -0.5, Round(-0.49999999, 3))
	assert.True(t, math.IsNaN(Round(math.NaN(), 3)))
}

func TestDescribe_Numeric(t *testing.T) {
	vals := []survey.Value{
		survey.IntValue(1), survey.IntValue(2), survey.IntValue(3), survey.IntValue(4),
		survey.MissingValue(), survey.TextValue("tidak tahu"),
	}
	s := Describe("x", vals)
	assert.False(t, s.Categorical)
	assert.Equal(t, 4, s.Count)
	require.NotNil(t, s.Mean)
	assert.InDelta(t, 2.5, *s.Mean, 1e-12)
	require.NotNil(t, s.Std)
	assert.InDelta(t, math.Sqrt(5.0/3.0), *s.Std, 1e-12)
	assert.Equal(t, 1.0, *s.Min)
	assert.Equal(t, 4.0, *s.Max)
	assert.Equal(t, 2.5, *s.Median)
	assert.InDelta(t, 1.75, *s.Q1, 1e-12)
	assert.InDelta(t, 3.25, *s.Q3, 1e-12)
}

func TestDescribe_QuartilesInterpolate(t *testing.T) {
	cases := []struct {
		in          []float64
		q1, p50, q3 float64
	}{
		{[]float64{1, 2, 3, 4, 5}, 2, 3, 4},
		{[]float64{2, 1}, 1.25, 1.5, 1.75},
		{[]float64{10, 1, 7, 3, 3, 8}, 3, 5, 7.75},
	}
	for _, c := range cases {
		vals := make([]survey.Value, len(c.in))
		for i, v := range c.in {
			vals[i] = survey.NumberValue(v)
		}
		s := Describe("x", vals)
		assert.InDelta(t, c.q1, *s.Q1, 1e-12, "p25 of %v", c.in)
		assert.InDelta(t, c.p50, *s.Median, 1e-12, "p50 of %v", c.in)
		assert.InDelta(t, c.q3, *s.Q3, 1e-12, "p75 of %v", c.in)
	}
}

func TestDescribe_SingleValue(t *testing.T) {
	s := Describe("x", []survey.Value{survey.NumberValue(4.5)})
	assert.Equal(t, 1, s.Count)
	assert.Nil(t, s.Std, "sample std is undefined for one value")
	assert.Equal(t, 4.5, *s.Median)
	assert.Equal(t, 4.5, *s.Q1)
	assert.Equal(t, 4.5, *s.Q3)
}

func TestDescribe_Categorical(t *testing.T) {
	s := Describe("Jurusan", []survey.Value{
		survey.TextValue("Statistika"), survey.TextValue("Akuntansi"),
		survey.TextValue("Statistika"), survey.MissingValue(),
	})
	assert.True(t, s.Categorical)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 2, s.Unique)
	assert.Equal(t, "Statistika", s.Top)
	assert.Equal(t, 2, s.Freq)
	assert.Nil(t, s.Mean)
}

func normalScores(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 50 + 10*distuv.UnitNormal.Quantile((float64(i+1)-0.375)/(float64(n)+0.25))
	}
	return out
}

func TestShapiroWilk_NormalSample(t *testing.T) {
	for _, n := range []int{4, 8, 20, 60} {
		w, p, err := ShapiroWilk(normalScores(n))
		require.NoError(t, err)
		assert.Greater(t, w, 0.95, "n=%d", n)
		assert.LessOrEqual(t, w, 1.0)
		assert.Greater(t, p, 0.5, "n=%d", n)
	}
}

func TestShapiroWilk_ReferenceValues(t *testing.T) {
	seq := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i + 1)
		}
		return out
	}
	cases := []struct {
		n    int
		w, p float64
	}{
		{5, 0.98676, 0.9672},
		{10, 0.97016, 0.8924},
	}
	for _, c := range cases {
		w, p, err := ShapiroWilk(seq(c.n))
		require.NoError(t, err)
		assert.InDelta(t, c.w, w, 1e-5, "W for 1..%d", c.n)
		assert.InDelta(t, c.p, p, 1e-4, "p for 1..%d", c.n)
	}
}

func TestShapiroWilk_SkewedSample(t *testing.T) {
	w, p, err := ShapiroWilk([]float64{1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 3, 50, 100})
	require.NoError(t, err)
	assert.Less(t, w, 0.7)
	assert.Less(t, p, 0.01)
}

func TestShapiroWilk_ThreeValues(t *testing.T) {
	w, p, err := ShapiroWilk([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w, 1e-9)
	assert.InDelta(t, 1.0, p, 1e-6)

	w, p, err = ShapiroWilk([]float64{1, 2, 10})
	require.NoError(t, err)
	assert.Less(t, w, 1.0)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}

func TestShapiroWilk_Errors(t *testing.T) {
	_, _, err := ShapiroWilk([]float64{1, 2})
	assert.ErrorIs(t, err, ErrTooFewValues)
	_, _, err = ShapiroWilk([]float64{4, 4, 4, 4})
	assert.ErrorIs(t, err, ErrConstantInput)
}

func TestTestNormality(t *testing.T) {
	x := append(normalScores(30), math.NaN())
	res, err := TestNormality(x, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, res.N)
	assert.Equal(t, DefaultAlpha, res.Alpha)
	assert.True(t, res.Normal)

	res, err = TestNormality([]float64{1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 3, 50, 100}, 0.05)
	require.NoError(t, err)
	assert.False(t, res.Normal)
}

func TestSpearman_KnownValue(t *testing.T) {
	res := Spearman([]float64{1, 2, 3, 4, 5}, []float64{5, 6, 7, 8, 7})
	assert.Equal(t, 5, res.N)
	assert.InDelta(t, 0.8207826816681233, res.Rho, 1e-9)
	assert.InDelta(t, 0.08858700531354381, res.PValue, 1e-6)
}

func TestSpearman_PerfectMonotone(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v * v
	}
	res := Spearman(x, y)
	assert.InDelta(t, 1.0, res.Rho, 1e-12)
	assert.Equal(t, 0.0, res.PValue)

	for i := range y {
		y[i] = -y[i]
	}
	res = Spearman(x, y)
	assert.InDelta(t, -1.0, res.Rho, 1e-12)
	assert.Equal(t, 0.0, res.PValue)
}

func TestSpearman_DropsIncompletePairs(t *testing.T) {
	nan := math.NaN()
	res := Spearman([]float64{1, 2, nan, 4, 5, 6}, []float64{2, 4, 6, nan, 10, 12})
	assert.Equal(t, 4, res.N)
	assert.InDelta(t, 1.0, res.Rho, 1e-12)
}

func TestSpearman_Undefined(t *testing.T) {
	res := Spearman([]float64{1, 2}, []float64{1, 2})
	assert.True(t, math.IsNaN(res.Rho))
	assert.True(t, math.IsNaN(res.PValue))

	res = Spearman([]float64{3, 3, 3, 3}, []float64{1, 2, 3, 4})
	assert.True(t, math.IsNaN(res.Rho))
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3.5, 5, 3.5}, Ranks([]float64{5, 6, 7, 8, 7}))
	assert.Equal(t, []float64{2, 2, 2}, Ranks([]float64{9, 9, 9}))
}
