package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kelompok10/surveydash/internal/charts"
	"github.com/kelompok10/surveydash/internal/statistics"
	"github.com/kelompok10/surveydash/internal/survey"
	"github.com/kelompok10/surveydash/internal/tabular"
	"github.com/kelompok10/surveydash/internal/utils"
)

const previewRows = 5

// AnalysisConfig tunes the analysis. Zero values fall back to the defaults.
type AnalysisConfig struct {
	Alpha         float64
	MinIndexItems int
	HistogramBins int
	Items         []string
	Recoding      *survey.RecodingTable
}

// Dataset is one parsed upload with its derived columns.
type Dataset struct {
	Name        string
	Raw         *survey.Table
	Normalized  *survey.Table // includes the index column
	Index       []survey.Value
	Reliability survey.Reliability
	Recoding    survey.NormalizeReport
	Unmapped    []string // dependent items that kept text answers
}

type AnalysisService struct {
	cfg    AnalysisConfig
	rt     survey.RecodingTable
	logger *zap.Logger
	newID  func() string
}

func NewAnalysisService(cfg AnalysisConfig, logger *zap.Logger) *AnalysisService {
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		cfg.Alpha = statistics.DefaultAlpha
	}
	if cfg.MinIndexItems < 1 {
		cfg.MinIndexItems = 1
	}
	if cfg.HistogramBins < 1 {
		cfg.HistogramBins = charts.DefaultBins
	}
	if len(cfg.Items) == 0 {
		cfg.Items = survey.DependentItems
	}
	rt := survey.DefaultRecodingTable()
	if cfg.Recoding != nil {
		rt = *cfg.Recoding
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{cfg: cfg, rt: rt, logger: logger, newID: newReportID}
}

func newReportID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Load parses an upload, recodes the answers and appends the composite index.
func (s *AnalysisService) Load(name string, r io.Reader) (*Dataset, error) {
	raw, err := tabular.Read(name, r)
	if err != nil {
		return nil, err
	}
	norm, rep := survey.NormalizeWithReport(raw, s.rt)
	withIdx, err := survey.WithIndex(norm, s.cfg.Items, survey.WithMinItems(s.cfg.MinIndexItems))
	if err != nil {
		s.logger.Info("dataset rejected", zap.String("file", name), zap.Error(err))
		return nil, err
	}
	rel, err := survey.CronbachAlpha(norm, s.cfg.Items)
	if err != nil {
		return nil, err
	}
	idx, _ := withIdx.Column(survey.IndexColumn)
	ds := &Dataset{
		Name:        name,
		Raw:         raw,
		Normalized:  withIdx,
		Index:       idx,
		Reliability: rel,
		Recoding:    rep,
		Unmapped:    rep.UnmappedColumns(s.cfg.Items),
	}
	for _, col := range ds.Unmapped {
		s.logger.Warn("unmapped answers in survey item",
			zap.String("file", name),
			zap.String("column", col),
			zap.Int("cells", rep.Unmapped[col]),
			zap.Strings("samples", rep.Samples[col]),
		)
	}
	s.logger.Debug("dataset loaded",
		zap.String("file", name),
		zap.Int("rows", raw.Len()),
		zap.Int("columns", len(raw.Columns)),
		zap.Float64("cronbach_alpha", rel.Alpha),
	)
	return ds, nil
}

func (s *AnalysisService) Overview(ds *Dataset, locale string) *Overview {
	head := ds.Raw.Head(previewRows)
	idxHead := ds.Index
	if len(idxHead) > previewRows {
		idxHead = idxHead[:previewRows]
	}
	return &Overview{
		ID:          s.newID(),
		Locale:      locale,
		File:        ds.Name,
		Rows:        ds.Raw.Len(),
		Preview:     TableView{Columns: head.Columns, Rows: head.Rows},
		IndexHead:   idxHead,
		Index:       ds.Index,
		DataTypes:   survey.DetectTypes(ds.Raw),
		Independent: s.independent(ds),
		Reliability: ds.Reliability,
		Warnings:    s.unmappedWarnings(ds, ds.Unmapped, locale),
		Labels:      utils.Labels(locale),
	}
}

func (s *AnalysisService) independent(ds *Dataset) []string {
	var out []string
	for _, c := range survey.IndependentCandidates(ds.Raw, s.cfg.Items) {
		if c != survey.IndexColumn {
			out = append(out, c)
		}
	}
	return out
}

func (s *AnalysisService) unmappedWarnings(ds *Dataset, columns []string, locale string) []string {
	var out []string
	for _, c := range columns {
		out = append(out, fmt.Sprintf(utils.T(locale, "warning.unmapped"), ds.Recoding.Unmapped[c], c))
	}
	return out
}

// Analyze relates each selected variable to the composite index.
func (s *AnalysisService) Analyze(ds *Dataset, vars []string, locale string, withCharts bool) (*Report, error) {
	vars, err := s.checkVars(ds, vars)
	if err != nil {
		return nil, err
	}
	rep := &Report{
		ID:        s.newID(),
		Locale:    locale,
		File:      ds.Name,
		Variables: vars,
		Labels:    utils.Labels(locale),
	}
	rep.Warnings = s.unmappedWarnings(ds, ds.Unmapped, locale)
	var mixed []string
	for _, v := range vars {
		if ds.Recoding.Unmapped[v] > 0 && hasNumber(ds.Normalized, v) {
			mixed = append(mixed, v)
		}
	}
	rep.Warnings = append(rep.Warnings, s.unmappedWarnings(ds, mixed, locale)...)

	columns := append(append([]string(nil), vars...), survey.IndexColumn)
	for _, c := range columns {
		vals, _ := ds.Normalized.Column(c)
		rep.Descriptive = append(rep.Descriptive, statistics.Describe(c, vals))
		h, err := s.histogram(c, vals, withCharts)
		if err != nil {
			return nil, err
		}
		rep.Histograms = append(rep.Histograms, h)
	}
	for _, v := range vars {
		raw, _ := ds.Raw.Column(v)
		b, err := s.bars(v, raw, withCharts)
		if err != nil {
			return nil, err
		}
		rep.Bars = append(rep.Bars, b)
	}

	index := statistics.Coerce(ds.Index)
	rep.Normality = s.normality(index, locale)
	for _, v := range vars {
		vals, _ := ds.Normalized.Column(v)
		row, rel := s.correlate(v, statistics.Coerce(vals), index)
		rep.Correlations = append(rep.Correlations, row)
		rep.Conclusions = append(rep.Conclusions, Conclude(v, rel, locale))
	}
	s.logger.Debug("analysis complete",
		zap.String("report_id", rep.ID),
		zap.String("file", ds.Name),
		zap.Strings("variables", vars),
		zap.Bool("charts", withCharts),
	)
	return rep, nil
}

func (s *AnalysisService) checkVars(ds *Dataset, vars []string) ([]string, error) {
	if len(vars) == 0 {
		return nil, newInvalidErrorf("error.no_vars", "select at least one independent variable")
	}
	seen := make(map[string]bool, len(vars))
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		if seen[v] {
			continue
		}
		seen[v] = true
		switch {
		case !ds.Raw.HasColumn(v):
			return nil, newInvalidErrorf("", "unknown variable %q", v)
		case v == survey.IndexColumn || contains(s.cfg.Items, v):
			return nil, newInvalidErrorf("", "%q is part of the index and cannot be used as an independent variable", v)
		}
		out = append(out, v)
	}
	return out, nil
}

// hasNumber reports whether column holds at least one numeric cell.
func hasNumber(t *survey.Table, column string) bool {
	vals, _ := t.Column(column)
	for _, v := range vals {
		if v.IsNumber() {
			return true
		}
	}
	return false
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func (s *AnalysisService) histogram(column string, vals []survey.Value, render bool) (HistogramView, error) {
	nums := statistics.DropNaN(statistics.Coerce(vals))
	h := HistogramView{Column: column, Bins: charts.Bins(nums, s.cfg.HistogramBins)}
	if !render || len(nums) == 0 {
		return h, nil
	}
	png, err := charts.Histogram(column, nums, s.cfg.HistogramBins)
	if err != nil {
		return h, fmt.Errorf("histogram %q: %w", column, err)
	}
	h.PNG = png
	return h, nil
}

func (s *AnalysisService) bars(column string, raw []survey.Value, render bool) (BarView, error) {
	b := BarView{Column: column, Counts: charts.ValueCounts(raw)}
	if !render || len(b.Counts) == 0 {
		return b, nil
	}
	png, err := charts.BarChart(column, b.Counts)
	if err != nil {
		return b, fmt.Errorf("bar chart %q: %w", column, err)
	}
	b.PNG = png
	return b, nil
}

func (s *AnalysisService) normality(index []float64, locale string) NormalityView {
	res, err := statistics.TestNormality(index, s.cfg.Alpha)
	v := NormalityView{Column: survey.IndexColumn, N: res.N, Alpha: res.Alpha}
	if err != nil {
		v.Error = err.Error()
		v.Verdict = fmt.Sprintf(utils.T(locale, "normality.unavailable"), err.Error())
		return v
	}
	v.W = res.W
	v.PValue = res.PValue
	v.Normal = res.Normal
	v.Display = fmt.Sprintf("Shapiro-Wilk p-value: %.4f", res.PValue)
	if res.Normal {
		v.Verdict = utils.T(locale, "normality.normal")
	} else {
		v.Verdict = utils.T(locale, "normality.not_normal")
	}
	return v
}

func (s *AnalysisService) correlate(variable string, x, index []float64) (CorrelationRow, Relationship) {
	res := statistics.Spearman(x, index)
	rho := statistics.Round(res.Rho, 3)
	p := statistics.Round(res.PValue, 4)
	row := CorrelationRow{Variable: variable, N: res.N, Rho: finite(rho), PValue: finite(p)}
	return row, Classify(rho, p, s.cfg.Alpha)
}
