package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/assetbook"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the totals per category.
func SummaryMarkdown(s assetbook.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Summary")
	doc.PlainText("Total: " + assetbook.M(s.TotalAmount, currency).String())

	table := md.TableSet{Header: []string{"Category", "Assets", "Total"}}
	for _, c := range s.Categories {
		table.Rows = append(table.Rows, []string{
			categoryLabel(c.Category),
			strconv.Itoa(c.Count),
			assetbook.M(c.Total, currency).String(),
		})
	}
	if len(table.Rows) > 0 {
		doc.Table(table)
	}

	return doc.String()
}
