package survey

// Column types, named as a dataframe reports them.
const (
	TypeInt64   = "int64"
	TypeFloat64 = "float64"
	TypeObject  = "object"
)

// ColumnType is one line of the data-type report.
type ColumnType struct {
	Column string `json:"column"`
	Type   string `json:"type"`
}

// DetectTypes classifies every column of t. Any text cell makes a column
// object; numeric columns are int64 only when complete and integral.
func DetectTypes(t *Table) []ColumnType {
	out := make([]ColumnType, 0, len(t.Columns))
	for j, c := range t.Columns {
		hasText, hasMissing, allIntegral := false, false, true
		for _, row := range t.Rows {
			v := row[j]
			switch v.Kind() {
			case KindText:
				hasText = true
			case KindMissing:
				hasMissing = true
			case KindNumber:
				if !v.IsIntegral() {
					allIntegral = false
				}
			}
		}
		typ := TypeFloat64
		switch {
		case hasText:
			typ = TypeObject
		case len(t.Rows) > 0 && !hasMissing && allIntegral:
			typ = TypeInt64
		}
		out = append(out, ColumnType{Column: c, Type: typ})
	}
	return out
}
