package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/kelompok10/surveydash/internal/utils"
)

// Classify applies the significance rule to an already rounded coefficient
// and p-value. An undefined p-value is never significant.
func Classify(rho, p, alpha float64) Relationship {
	if math.IsNaN(p) || p >= alpha {
		return NotSignificant
	}
	if rho > 0 {
		return SignificantPositive
	}
	return SignificantNegative
}

var conclusionKeys = map[Relationship]string{
	SignificantPositive: "conclusion.positive",
	SignificantNegative: "conclusion.negative",
	NotSignificant:      "conclusion.none",
}

// Conclude writes the sentence for variable in locale.
func Conclude(variable string, rel Relationship, locale string) Conclusion {
	md := fmt.Sprintf(utils.T(locale, conclusionKeys[rel]), inlineLabel(variable))
	return Conclusion{
		Variable:     variable,
		Relationship: rel,
		Markdown:     md,
		HTML:         renderMarkdown(md),
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

// inlineLabel folds a multi-line question header onto one line and escapes
// the characters markdown would read as emphasis, code or links.
func inlineLabel(s string) string {
	return markdownEscaper.Replace(strings.Join(strings.Fields(s), " "))
}

func renderMarkdown(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return strings.TrimSpace(string(markdown.ToHTML([]byte(md), p, r)))
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
