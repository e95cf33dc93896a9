package survey

// IndexColumn names the composite Financial Self-Control index column.
const IndexColumn = "FSC_Index"

// DependentItems are the six bilingual question headers that make up the
// Financial Self-Control construct. They are matched byte-for-byte against the
// uploaded header row, stray spaces included, because that is how the form
// export labels them.
var DependentItems = []string{
	"I can restrain myself from buying things I don’t need.  \nSaya mampu menahan diri untuk tidak membeli barang yang tidak saya butuhkan.  ",
	"I follow the spending budget that I have set.  \nSaya mengikuti anggaran belanja yang sudah saya tetapkan.   ",
	" I think twice before making an online purchase.  \nSaya mempertimbangkan ulang sebelum melakukan pembelian online. ",
	"I prioritize needs over wants when shopping.\nSaya mengutamakan kebutuhan dibandingkan keinginan saat berbelanja.  ",
	"I rarely feel regret after making a purchase.\nSaya jarang menyesal setelah membeli sesuatu.  ",
	"I feel that I have good control over my monthly expenses.  \nSaya merasa memiliki kontrol yang baik terhadap pengeluaran bulanan saya.  ",
}

// IsDependentItem reports whether column is one of DependentItems.
func IsDependentItem(column string) bool {
	for _, it := range DependentItems {
		if it == column {
			return true
		}
	}
	return false
}

// IndependentCandidates lists the columns of t that are not dependent items,
// in table order.
func IndependentCandidates(t *Table, items []string) []string {
	dep := make(map[string]struct{}, len(items))
	for _, it := range items {
		dep[it] = struct{}{}
	}
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if _, ok := dep[c]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}
