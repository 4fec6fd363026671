package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/assetbook"
	md "github.com/nao1215/markdown"
)

// NoAssets is the placeholder shown instead of an empty table.
const NoAssets = "No assets registered"

// Columns of the assets table.
var Columns = []string{"#", "Name", "Amount", "Quantity", "Category"}

// Row is a table row bound to the asset it displays. The asset is the
// snapshot taken when the table was built: edit and delete actions use it
// as is, they do not look the asset up again.
type Row struct {
	Index int // 1-based, as displayed
	Asset assetbook.Asset
}

// ID returns the id of the asset, for the delete action.
func (r Row) ID() assetbook.ID { return r.Asset.ID }

// Class returns the presentation class of the asset category.
func (r Row) Class() assetbook.Category { return r.Asset.Category.Class() }

// Table is the projection of a cache snapshot.
type Table struct {
	Currency    string
	Rows        []Row
	Placeholder string // set instead of Rows when there is no asset
}

// AssetTable builds the table of assets, one row per asset in order.
func AssetTable(assets []assetbook.Asset, currency string) *Table {
	t := &Table{Currency: currency}
	if len(assets) == 0 {
		t.Placeholder = NoAssets
		return t
	}
	t.Rows = make([]Row, len(assets))
	for i, a := range assets {
		t.Rows[i] = Row{Index: i + 1, Asset: a}
	}
	return t
}

// Row returns the row displayed with index.
func (t *Table) Row(index int) (Row, bool) {
	if index < 1 || index > len(t.Rows) {
		return Row{}, false
	}
	return t.Rows[index-1], true
}

// Cells returns the displayed cells of r.
func (t *Table) Cells(r Row) []string {
	return []string{
		strconv.Itoa(r.Index),
		r.Asset.Name,
		r.Asset.Value(t.Currency).String(),
		strconv.Itoa(r.Asset.Quantity),
		categoryLabel(r.Asset.Category),
	}
}

// Markdown renders the table. An empty table is a single placeholder row.
func (t *Table) Markdown() string {
	var rows [][]string
	if t.Placeholder != "" {
		placeholder := make([]string, len(Columns))
		placeholder[0] = t.Placeholder
		rows = append(rows, placeholder)
	}
	for _, r := range t.Rows {
		rows = append(rows, t.Cells(r))
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{Header: Columns, Rows: rows})
	return doc.String()
}

// categoryLabel shows the category as stored, followed by its class when
// they differ.
func categoryLabel(c assetbook.Category) string {
	class := c.Class()
	switch c {
	case class:
		return string(c)
	case "":
		return string(class)
	}
	return fmt.Sprintf("%s (%s)", c, class)
}
