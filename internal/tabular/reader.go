// Package tabular turns uploaded CSV and XLSX files into survey tables.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kelompok10/surveydash/internal/survey"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoHeader is returned when a file has no header row at all.
var ErrNoHeader = errors.New("file has no header row")

// Format identifies a supported input file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat maps a file name to its format by extension.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Read parses r according to the extension of name. The first row becomes the
// header; header labels are kept exactly as written.
func Read(name string, r io.Reader) (*survey.Table, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	skipBlank := false
	switch format {
	case FormatCSV:
		rows, err = readCSV(r)
	case FormatXLSX:
		rows, err = readXLSX(r)
		skipBlank = true
	}
	if err != nil {
		return nil, err
	}
	return buildTable(rows, skipBlank)
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	// Spreadsheet exports often start with a UTF-8 byte order mark.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// buildTable turns raw records into a table. The CSV reader already drops
// empty lines, so a CSV record made only of delimiters is a respondent with no
// answers and is kept. Sheets report unused rows as empty records; those are
// skipped when skipBlank is set.
func buildTable(rows [][]string, skipBlank bool) (*survey.Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNoHeader
	}
	t := survey.NewTable(rows[0])
	for _, rec := range rows[1:] {
		if skipBlank && blank(rec) {
			continue
		}
		vals := make([]survey.Value, len(rec))
		for i, cell := range rec {
			vals[i] = ParseCell(cell)
		}
		t.AppendRow(vals...)
	}
	return t, nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseCell infers a cell value: blank is missing, numeric text is a number,
// anything else is text kept verbatim.
func ParseCell(s string) survey.Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return survey.MissingValue()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		switch strings.ToLower(trimmed) {
		case "nan", "+nan", "-nan":
			return survey.MissingValue()
		case "inf", "+inf", "-inf", "infinity", "+infinity", "-infinity":
			return survey.TextValue(s)
		}
		return survey.NumberValue(f)
	}
	return survey.TextValue(s)
}
