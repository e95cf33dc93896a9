package survey

import (
	"fmt"
	"sort"
	"strings"
)

// ScaleLevels is the number of ordinal levels every response scale carries.
const ScaleLevels = 5

// Scale is one ordinal response vocabulary. Labels run from the lowest to the
// highest intensity; a label scores its position plus one.
type Scale struct {
	Name   string
	Labels [ScaleLevels]string
}

// AgreementScale is the Indonesian agreement vocabulary used by the survey form.
var AgreementScale = Scale{
	Name:   "agreement",
	Labels: [ScaleLevels]string{"Sangat Tidak Setuju", "Tidak Setuju", "Netral", "Setuju", "Sangat Setuju"},
}

// FrequencyScale is the English frequency vocabulary used by the survey form.
var FrequencyScale = Scale{
	Name:   "frequency",
	Labels: [ScaleLevels]string{"Never", "Rarely", "Sometimes", "Often", "Very Often"},
}

// Validate checks that every label is non-empty, already trimmed and distinct.
func (s Scale) Validate() error {
	seen := make(map[string]int, ScaleLevels)
	for i, l := range s.Labels {
		if l == "" {
			return fmt.Errorf("scale %s: level %d has an empty label", s.Name, i+1)
		}
		if strings.TrimSpace(l) != l {
			return fmt.Errorf("scale %s: label %q has surrounding whitespace", s.Name, l)
		}
		if prev, ok := seen[l]; ok {
			return fmt.Errorf("scale %s: label %q used for levels %d and %d", s.Name, l, prev, i+1)
		}
		seen[l] = i + 1
	}
	return nil
}

// Score returns the 1..5 score for an exact label.
func (s Scale) Score(label string) (int, bool) {
	for i, l := range s.Labels {
		if l == label {
			return i + 1, true
		}
	}
	return 0, false
}

type recodeEntry struct {
	score int
	scale string
}

// RecodingTable is the union of several scales, keyed by exact label.
type RecodingTable struct {
	entries map[string]recodeEntry
	scales  []string
}

// NewRecodingTable unions the given scales. A label claimed by two scales is an
// error so that extending one vocabulary can never silently shadow another.
func NewRecodingTable(scales ...Scale) (RecodingTable, error) {
	rt := RecodingTable{entries: map[string]recodeEntry{}}
	for _, s := range scales {
		if err := s.Validate(); err != nil {
			return RecodingTable{}, err
		}
		for i, l := range s.Labels {
			if prev, ok := rt.entries[l]; ok {
				return RecodingTable{}, fmt.Errorf("label %q defined by both %s and %s scales", l, prev.scale, s.Name)
			}
			rt.entries[l] = recodeEntry{score: i + 1, scale: s.Name}
		}
		rt.scales = append(rt.scales, s.Name)
	}
	return rt, nil
}

// DefaultRecodingTable returns AgreementScale ∪ FrequencyScale.
func DefaultRecodingTable() RecodingTable {
	rt, err := NewRecodingTable(AgreementScale, FrequencyScale)
	if err != nil {
		panic(err)
	}
	return rt
}

// Lookup resolves a trimmed label to its score and the scale it came from.
func (rt RecodingTable) Lookup(label string) (score int, scale string, ok bool) {
	e, ok := rt.entries[label]
	if !ok {
		return 0, "", false
	}
	return e.score, e.scale, true
}

// Len returns the number of labels known to the table.
func (rt RecodingTable) Len() int { return len(rt.entries) }

// Scales lists the vocabularies in union order.
func (rt RecodingTable) Scales() []string {
	out := make([]string, len(rt.scales))
	copy(out, rt.scales)
	return out
}

// Labels returns every known label sorted by scale, then score.
func (rt RecodingTable) Labels() []string {
	out := make([]string, 0, len(rt.entries))
	for l := range rt.entries {
		out = append(out, l)
	}
	order := make(map[string]int, len(rt.scales))
	for i, s := range rt.scales {
		order[s] = i
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := rt.entries[out[i]], rt.entries[out[j]]
		if a.scale != b.scale {
			return order[a.scale] < order[b.scale]
		}
		return a.score < b.score
	})
	return out
}

const maxUnmappedSamples = 3

// NormalizeReport summarises what Normalize did per column.
type NormalizeReport struct {
	Recoded  map[string]int
	Unmapped map[string]int
	// Samples keeps the first few distinct unmapped texts per column.
	Samples map[string][]string
}

// UnmappedColumns returns the columns that kept at least one text cell, in table order.
func (r NormalizeReport) UnmappedColumns(columns []string) []string {
	var out []string
	for _, c := range columns {
		if r.Unmapped[c] > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Normalize recodes every cell whose trimmed string form is a known label and
// keeps every other cell unchanged. The input table is not modified.
func Normalize(t *Table, rt RecodingTable) *Table {
	out, _ := NormalizeWithReport(t, rt)
	return out
}

// NormalizeWithReport is Normalize plus per-column bookkeeping of text cells
// that matched no label.
func NormalizeWithReport(t *Table, rt RecodingTable) (*Table, NormalizeReport) {
	rep := NormalizeReport{
		Recoded:  map[string]int{},
		Unmapped: map[string]int{},
		Samples:  map[string][]string{},
	}
	out := NewTable(t.Columns)
	out.Rows = make([][]Value, len(t.Rows))
	for i, row := range t.Rows {
		nr := make([]Value, len(row))
		for j, cell := range row {
			col := ""
			if j < len(t.Columns) {
				col = t.Columns[j]
			}
			if score, _, ok := rt.Lookup(strings.TrimSpace(cell.String())); ok {
				nr[j] = IntValue(score)
				rep.Recoded[col]++
				continue
			}
			nr[j] = cell
			if cell.IsText() {
				rep.Unmapped[col]++
				rep.addSample(col, cell.Raw())
			}
		}
		out.Rows[i] = nr
	}
	return out, rep
}

func (r NormalizeReport) addSample(col, text string) {
	samples := r.Samples[col]
	if len(samples) >= maxUnmappedSamples {
		return
	}
	for _, s := range samples {
		if s == text {
			return
		}
	}
	r.Samples[col] = append(samples, text)
}
