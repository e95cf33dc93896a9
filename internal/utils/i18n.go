package utils

// Bilingual label pack for the dashboard. Keys are stable; the front-end and
// the analysis report both read from here.

var translations = map[string]map[string]string{
	"en": {
		"health.ok":             "ok",
		"title":                 "Survey Data Analysis",
		"by_group":              "By Group 10",
		"upload":                "Upload Google Form responses (CSV/XLSX):",
		"preview":               "Preview Data",
		"select_ind":            "Select Independent Variables",
		"desc_stats":            "Descriptive Statistics",
		"hist":                  "Histogram",
		"bar":                   "Bar Chart",
		"normality":             "Normality Test (Shapiro–Wilk)",
		"datatype":              "Detected Data Types",
		"correlation":           "Spearman Correlation Analysis",
		"corr_result":           "Correlation Results",
		"conclusion":            "Conclusion",
		"fsc":                   "Financial Self-Control Index",
		"reliability":           "Reliability (Cronbach's alpha)",
		"info":                  "Upload your data file to begin.",
		"normality.normal":      "Normally Distributed ✔",
		"normality.not_normal":  "Not Normally Distributed ❌",
		"normality.unavailable": "Normality test unavailable: %s",
		"conclusion.positive":   "✔ %s has a **significant positive** relationship with the FSC Index.",
		"conclusion.negative":   "✔ %s has a **significant negative** relationship with the FSC Index.",
		"conclusion.none":       "• %s has **no significant relationship** with the FSC Index.",
		"warning.unmapped":      "%d answer(s) in %q did not match any response label and were left as text.",
		"error.schema":          "The uploaded file is missing required survey items.",
		"error.format":          "Unsupported file type. Upload a CSV or XLSX file.",
		"error.no_vars":         "Select at least one independent variable.",
	},
	"id": {
		"health.ok":             "baik",
		"title":                 "Analisis Data Survei",
		"by_group":              "Oleh Kelompok 10",
		"upload":                "Unggah data Google Form (CSV/XLSX):",
		"preview":               "Pratinjau Data",
		"select_ind":            "Pilih Variabel Independen",
		"desc_stats":            "Analisis Deskriptif",
		"hist":                  "Histogram",
		"bar":                   "Diagram Batang",
		"normality":             "Uji Normalitas (Shapiro–Wilk)",
		"datatype":              "Jenis Tipe Data",
		"correlation":           "Analisis Korelasi Spearman",
		"corr_result":           "Hasil Korelasi",
		"conclusion":            "Kesimpulan",
		"fsc":                   "Indeks Kontrol Keuangan (FSC Index)",
		"reliability":           "Reliabilitas (alpha Cronbach)",
		"info":                  "Unggah file untuk memulai.",
		"normality.normal":      "Berdistribusi Normal ✔",
		"normality.not_normal":  "Tidak Berdistribusi Normal ❌",
		"normality.unavailable": "Uji normalitas tidak dapat dilakukan: %s",
		"conclusion.positive":   "✔ %s memiliki hubungan **positif signifikan** dengan FSC Index.",
		"conclusion.negative":   "✔ %s memiliki hubungan **negatif signifikan** dengan FSC Index.",
		"conclusion.none":       "• %s **tidak memiliki hubungan signifikan** dengan FSC Index.",
		"warning.unmapped":      "%d jawaban pada %q tidak cocok dengan label skala dan dibiarkan sebagai teks.",
		"error.schema":          "File yang diunggah tidak memuat butir survei yang diperlukan.",
		"error.format":          "Jenis file tidak didukung. Unggah file CSV atau XLSX.",
		"error.no_vars":         "Pilih minimal satu variabel independen.",
	},
}

// LabelKeys lists the keys of the page label pack, in page order.
var LabelKeys = []string{
	"title", "by_group", "upload", "preview", "select_ind", "desc_stats", "hist", "bar",
	"normality", "datatype", "correlation", "corr_result", "conclusion", "fsc",
	"reliability", "info",
}

// T returns the translated string for key in locale; falls back to English.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := translations["en"]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Labels returns the page label pack for locale.
func Labels(locale string) map[string]string {
	out := make(map[string]string, len(LabelKeys))
	for _, k := range LabelKeys {
		out[k] = T(locale, k)
	}
	return out
}
