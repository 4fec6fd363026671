package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/assetbook"
	md "github.com/nao1215/markdown"
)

// AssetMarkdown renders a single asset.
func AssetMarkdown(a assetbook.Asset, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(a.Name)
	items := []string{
		fmt.Sprintf("ID: %s", a.ID),
		fmt.Sprintf("Amount: %s", a.Value(currency)),
		fmt.Sprintf("Quantity: %d", a.Quantity),
		fmt.Sprintf("Total: %s", a.Total(currency)),
		fmt.Sprintf("Category: %s", categoryLabel(a.Category)),
	}
	if a.Description != "" {
		items = append(items, "Description: "+a.Description)
	}
	if a.CreatedAt != "" {
		items = append(items, "Created: "+a.CreatedAt)
	}
	doc.BulletList(items...)

	return doc.String()
}

// FormMarkdown renders the edit form.
func FormMarkdown(id assetbook.ID, f assetbook.Form) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Editing asset %s", id))
	table := md.TableSet{Header: []string{"Field", "Value"}}
	for _, field := range assetbook.Fields {
		v, _ := f.Get(field)
		table.Rows = append(table.Rows, []string{field, v})
	}
	doc.Table(table)

	return doc.String()
}

// Banner renders a notification on one line.
func Banner(n assetbook.Notification) string {
	if n.Kind == assetbook.Failure {
		return "❌ " + n.Message
	}
	return "✅ " + n.Message
}
