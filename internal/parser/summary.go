package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SummaryText returns the visible text of an HTML show summary with
// whitespace collapsed. Markup-free input is returned trimmed.
func SummaryText(summary string) string {
	if !strings.ContainsAny(summary, "<&") {
		return strings.Join(strings.Fields(summary), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary))
	if err != nil {
		return strings.Join(strings.Fields(summary), " ")
	}

	var parts []string
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
