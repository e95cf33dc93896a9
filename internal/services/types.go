package services

import (
	"github.com/kelompok10/surveydash/internal/charts"
	"github.com/kelompok10/surveydash/internal/statistics"
	"github.com/kelompok10/surveydash/internal/survey"
)

// TableView is a JSON-friendly slice of a table.
type TableView struct {
	Columns []string         `json:"columns"`
	Rows    [][]survey.Value `json:"rows"`
}

// Overview is what the dashboard shows right after an upload.
type Overview struct {
	ID          string              `json:"id"`
	Locale      string              `json:"locale"`
	File        string              `json:"file"`
	Rows        int                 `json:"rows"`
	Preview     TableView           `json:"preview"`
	IndexHead   []survey.Value      `json:"index_head"`
	Index       []survey.Value      `json:"index"`
	DataTypes   []survey.ColumnType `json:"data_types"`
	Independent []string            `json:"independent_candidates"`
	Reliability survey.Reliability  `json:"reliability"`
	Warnings    []string            `json:"warnings,omitempty"`
	Labels      map[string]string   `json:"labels"`
}

// HistogramView is one histogram; PNG is only filled when charts are requested.
type HistogramView struct {
	Column string       `json:"column"`
	Bins   []charts.Bin `json:"bins"`
	PNG    []byte       `json:"png,omitempty"`
}

// BarView is one categorical bar chart of raw answers.
type BarView struct {
	Column string         `json:"column"`
	Counts []charts.Count `json:"counts"`
	PNG    []byte         `json:"png,omitempty"`
}

// NormalityView is the Shapiro-Wilk section of a report.
type NormalityView struct {
	Column  string  `json:"column"`
	W       float64 `json:"w,omitempty"`
	PValue  float64 `json:"p_value,omitempty"`
	N       int     `json:"n"`
	Alpha   float64 `json:"alpha"`
	Normal  bool    `json:"normal"`
	Display string  `json:"display,omitempty"`
	Verdict string  `json:"verdict"`
	Error   string  `json:"error,omitempty"`
}

// CorrelationRow is one line of the correlation table. Rho is rounded to 3
// decimals and PValue to 4; nil means the correlation is undefined.
type CorrelationRow struct {
	Variable string   `json:"variable"`
	Rho      *float64 `json:"spearman_rho"`
	PValue   *float64 `json:"p_value"`
	N        int      `json:"n"`
}

// Relationship classifies a correlation against the index.
type Relationship string

const (
	SignificantPositive Relationship = "significant_positive"
	SignificantNegative Relationship = "significant_negative"
	NotSignificant      Relationship = "not_significant"
)

// Conclusion is the sentence printed for one variable.
type Conclusion struct {
	Variable     string       `json:"variable"`
	Relationship Relationship `json:"relationship"`
	Markdown     string       `json:"markdown"`
	HTML         string       `json:"html"`
}

// Report is the full analysis for a set of independent variables.
type Report struct {
	ID           string               `json:"id"`
	Locale       string               `json:"locale"`
	File         string               `json:"file"`
	Variables    []string             `json:"variables"`
	Descriptive  []statistics.Summary `json:"descriptive"`
	Histograms   []HistogramView      `json:"histograms"`
	Bars         []BarView            `json:"bars"`
	Normality    NormalityView        `json:"normality"`
	Correlations []CorrelationRow     `json:"correlations"`
	Conclusions  []Conclusion         `json:"conclusions"`
	Warnings     []string             `json:"warnings,omitempty"`
	Labels       map[string]string    `json:"labels"`
}
