// Package charts renders the dashboard's histograms and bar charts as PNG.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kelompok10/surveydash/internal/survey"
)

// DefaultBins is the histogram bin count used by the dashboard.
const DefaultBins = 5

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
	maxLabelLen = 24
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to plot")

var barColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}

// Bin is one histogram bar. The last bin includes its upper edge.
type Bin struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Bins splits the non-NaN values into equal-width bins spanning their range.
// A zero-width range is widened by 0.5 on each side.
func Bins(values []float64, bins int) []Bin {
	if bins < 1 {
		bins = DefaultBins
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
		n++
	}
	if n == 0 {
		return nil
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Min = lo + float64(i)*width
		out[i].Max = lo + float64(i+1)*width
	}
	out[bins-1].Max = hi
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}

// Histogram draws the distribution of values (NaNs ignored).
func Histogram(title string, values []float64, bins int) ([]byte, error) {
	bs := Bins(values, bins)
	if len(bs) == 0 {
		return nil, ErrNoData
	}
	hb := make([]plotter.HistogramBin, len(bs))
	for i, b := range bs {
		hb[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}
	h := &plotter.Histogram{
		Bins:      hb,
		Width:     bs[0].Max - bs[0].Min,
		FillColor: barColor,
		LineStyle: plotter.DefaultLineStyle,
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Frequency"
	p.Add(h)
	return render(p)
}

// Count is the number of respondents giving one answer.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ValueCounts tallies raw answers, most frequent first; equal counts keep
// first-seen order. Missing cells are skipped.
func ValueCounts(values []survey.Value) []Count {
	idx := map[string]int{}
	var out []Count
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		key := v.String()
		if i, ok := idx[key]; ok {
			out[i].Count++
			continue
		}
		idx[key] = len(out)
		out = append(out, Count{Label: key, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// BarChart draws categorical counts in the given order.
func BarChart(title string, counts []Count) ([]byte, error) {
	if len(counts) == 0 {
		return nil, ErrNoData
	}
	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		labels[i] = shorten(c.Label)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Count"
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Y.Min = 0
	return render(p)
}

func shorten(s string) string {
	r := []rune(s)
	if len(r) <= maxLabelLen {
		return s
	}
	return string(r[:maxLabelLen-1]) + "…"
}

func render(p *plot.Plot) ([]byte, error) {
	w, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
