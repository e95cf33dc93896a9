package survey

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind tells which variant a Value holds.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumber
	KindText
)

// Value is a single survey cell: missing, a number, or free text.
type Value struct {
	kind Kind
	num  float64
	text string
}

// MissingValue returns an empty cell.
func MissingValue() Value { return Value{} }

// NumberValue returns a numeric cell. NaN is stored as missing.
func NumberValue(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// IntValue returns an integral numeric cell.
func IntValue(i int) Value { return Value{kind: KindNumber, num: float64(i)} }

// TextValue returns a text cell holding s exactly as given.
func TextValue(s string) Value { return Value{kind: KindText, text: s} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsMissing() bool { return v.kind == KindMissing }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsText() bool { return v.kind == KindText }
func (v Value) Raw() string { return v.text }

// Number returns the numeric payload; ok is false for text and missing cells.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return math.NaN(), false
	}
	return v.num, true
}

// IsIntegral reports whether v is a number without a fractional part.
func (v Value) IsIntegral() bool {
	return v.kind == KindNumber && !math.IsInf(v.num, 0) && v.num == math.Trunc(v.num)
}

// String renders the cell the way a dataframe stringifies it before label lookup:
// "nan" for missing, "4" for integral numbers, shortest form otherwise.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		if v.IsIntegral() {
			return strconv.FormatFloat(v.num, 'f', 0, 64)
		}
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return "nan"
	}
}

// Equal compares kind and payload.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.num == o.num && v.text == o.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsInf(v.num, 0) {
			return json.Marshal(v.String())
		}
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// Table is an ordered respondent-by-column grid. Column labels are kept byte-exact.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// NewTable creates an empty table with the given header.
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// AppendRow adds a respondent row, padding short rows with missing cells and
// dropping cells beyond the header.
func (t *Table) AppendRow(vals ...Value) {
	row := make([]Value, len(t.Columns))
	copy(row, vals)
	t.Rows = append(t.Rows, row)
}

// Len returns the number of respondent rows.
func (t *Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the position of the first column named name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column labelled exactly name exists.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]Value, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, true
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns)
	out.Rows = make([][]Value, len(t.Rows))
	for i, row := range t.Rows {
		r := make([]Value, len(row))
		copy(r, row)
		out.Rows[i] = r
	}
	return out
}

// Head returns a copy of the first n rows.
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	out := NewTable(t.Columns)
	for _, row := range t.Rows[:n] {
		out.AppendRow(row...)
	}
	return out
}

// WithColumn returns a copy of t with name appended (or replaced) holding vals.
// vals shorter than the table are padded with missing cells.
func (t *Table) WithColumn(name string, vals []Value) *Table {
	out := t.Clone()
	idx := out.ColumnIndex(name)
	if idx < 0 {
		out.Columns = append(out.Columns, name)
		idx = len(out.Columns) - 1
		for i := range out.Rows {
			out.Rows[i] = append(out.Rows[i], MissingValue())
		}
	}
	for i := range out.Rows {
		if i < len(vals) {
			out.Rows[i][idx] = vals[i]
		} else {
			out.Rows[i][idx] = MissingValue()
		}
	}
	return out
}
