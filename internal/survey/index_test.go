package survey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemTable(rows ...[]Value) *Table {
	cols := append([]string{"Usia"}, DependentItems...)
	tbl := NewTable(cols)
	for _, r := range rows {
		tbl.AppendRow(append([]Value{IntValue(20)}, r...)...)
	}
	return tbl
}

func ints(vs ...int) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = IntValue(v)
	}
	return out
}

func TestComputeIndex_FullRow(t *testing.T) {
	tbl := itemTable(ints(1, 2, 3, 4, 5, 5))
	idx, err := ComputeIndex(tbl, DependentItems)
	require.NoError(t, err)
	v, ok := idx[0].Number()
	require.True(t, ok)
	assert.InDelta(t, 3.3333, v, 1e-4)
}

func TestComputeIndex_MissingItemIsExcluded(t *testing.T) {
	row := ints(1, 2, 0, 4, 5, 5)
	row[2] = MissingValue()
	idx, err := ComputeIndex(itemTable(row), DependentItems)
	require.NoError(t, err)
	v, ok := idx[0].Number()
	require.True(t, ok)
	assert.InDelta(t, 3.4, v, 1e-9)
}

func TestComputeIndex_TextIsExcluded(t *testing.T) {
	row := ints(2, 2, 2, 2, 2, 0)
	row[5] = TextValue("Kadang-kadang")
	idx, err := ComputeIndex(itemTable(row), DependentItems)
	require.NoError(t, err)
	v, _ := idx[0].Number()
	assert.InDelta(t, 2.0, v, 1e-9)
}

func TestComputeIndex_AllMissingRowIsMissing(t *testing.T) {
	row := make([]Value, len(DependentItems))
	idx, err := ComputeIndex(itemTable(row), DependentItems)
	require.NoError(t, err)
	assert.True(t, idx[0].IsMissing(), "never imputed as zero")
}

func TestComputeIndex_MinItems(t *testing.T) {
	sparse := make([]Value, len(DependentItems))
	sparse[0], sparse[1] = IntValue(4), IntValue(5)
	tbl := itemTable(sparse, ints(1, 1, 1, 1, 1, 1))

	idx, err := ComputeIndex(tbl, DependentItems, WithMinItems(3))
	require.NoError(t, err)
	assert.True(t, idx[0].IsMissing())
	assert.True(t, idx[1].Equal(NumberValue(1)))

	idx, err = ComputeIndex(tbl, DependentItems, WithMinItems(0))
	require.NoError(t, err)
	assert.True(t, idx[0].Equal(NumberValue(4.5)))
}

func TestComputeIndex_SchemaError(t *testing.T) {
	tbl := NewTable(append([]string{"Usia"}, DependentItems[:5]...))
	tbl.AppendRow(ints(20, 1, 2, 3, 4, 5)...)

	_, err := ComputeIndex(tbl, DependentItems)
	require.Error(t, err)
	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{DependentItems[5]}, se.Missing)
}

func TestComputeIndex_ExactHeaderMatch(t *testing.T) {
	cols := make([]string, len(DependentItems))
	for i, it := range DependentItems {
		cols[i] = it
	}
	cols[2] = "I think twice before making an online purchase.  \nSaya mempertimbangkan ulang sebelum melakukan pembelian online."
	tbl := NewTable(cols)
	_, err := ComputeIndex(tbl, DependentItems)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Len(t, se.Missing, 1)
}

func TestWithIndex_AppendsColumnWithoutMutating(t *testing.T) {
	tbl := itemTable(ints(5, 5, 5, 5, 5, 5))
	out, err := WithIndex(tbl, DependentItems)
	require.NoError(t, err)
	assert.False(t, tbl.HasColumn(IndexColumn))
	col, ok := out.Column(IndexColumn)
	require.True(t, ok)
	assert.True(t, col[0].Equal(NumberValue(5)))
}

func TestIndependentCandidates(t *testing.T) {
	tbl := itemTable()
	tbl = tbl.WithColumn("Uang saku", nil)
	assert.Equal(t, []string{"Usia", "Uang saku"}, IndependentCandidates(tbl, DependentItems))
	assert.True(t, IsDependentItem(DependentItems[3]))
	assert.False(t, IsDependentItem("Usia"))
}
