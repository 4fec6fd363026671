package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/assetbook"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tableRows parses markdown and returns the cells of every table body row.
func tableRows(t *testing.T, markdown string) [][]string {
	t.Helper()
	src := []byte(markdown)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var rows [][]string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != extast.KindTableRow {
			return ast.WalkContinue, nil
		}
		var cells []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, cellText(c, src))
		}
		rows = append(rows, cells)
		return ast.WalkSkipChildren, nil
	})
	return rows
}

func cellText(n ast.Node, src []byte) string {
	var b bytes.Buffer
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func asset(id, name string, amount int64, quantity int, category assetbook.Category) assetbook.Asset {
	return assetbook.Asset{ID: assetbook.ID(id), Name: name, Amount: decimal.NewFromInt(amount), Quantity: quantity, Category: category}
}

func TestAssetTableEmpty(t *testing.T) {
	table := AssetTable(nil, "JPY")
	if len(table.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(table.Rows))
	}

	rows := tableRows(t, table.Markdown())
	if len(rows) != 1 {
		t.Fatalf("got %d rendered rows, want exactly 1 placeholder row:\n%s", len(rows), table.Markdown())
	}
	if rows[0][0] != NoAssets {
		t.Errorf("placeholder row = %q, want %q", rows[0], NoAssets)
	}
}

func TestAssetTableRows(t *testing.T) {
	assets := []assetbook.Asset{
		asset("3", "House", 30000000, 1, "不動産"),
		asset("2", "ACME", 1000, 100, assetbook.Stock),
		asset("1", "Savings", 1000, 1, assetbook.Deposit),
	}
	table := AssetTable(assets, "JPY")

	rows := tableRows(t, table.Markdown())
	if len(rows) != len(assets) {
		t.Fatalf("got %d rendered rows, want %d:\n%s", len(rows), len(assets), table.Markdown())
	}
	want := [][]string{
		{"1", "House", "¥30,000,000", "1", "不動産 (real-estate)"},
		{"2", "ACME", "¥1,000", "100", "stock"},
		{"3", "Savings", "¥1,000", "1", "deposit"},
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestAssetTableUnknownCategory(t *testing.T) {
	table := AssetTable([]assetbook.Asset{asset("1", "Bitcoin", 10, 1, "crypto"), asset("2", "Misc", 10, 1, "")}, "JPY")

	for _, r := range table.Rows {
		if r.Class() != assetbook.Other {
			t.Errorf("row %d class = %q, want %q", r.Index, r.Class(), assetbook.Other)
		}
	}
	rows := tableRows(t, table.Markdown())
	if got := rows[0][4]; got != "crypto (other)" {
		t.Errorf("category cell = %q, want %q", got, "crypto (other)")
	}
	if got := rows[1][4]; got != "other" {
		t.Errorf("category cell = %q, want %q", got, "other")
	}
}

func TestAssetTableRowsAreSnapshots(t *testing.T) {
	assets := []assetbook.Asset{asset("7", "Savings", 1000, 1, assetbook.Cash)}
	table := AssetTable(assets, "JPY")
	assets[0].Name = "changed"

	r, ok := table.Row(1)
	if !ok {
		t.Fatal("Row(1) not found")
	}
	if r.Asset.Name != "Savings" || r.ID() != "7" {
		t.Errorf("Row(1) = %+v, want the asset as it was when rendered", r)
	}
	if _, ok := table.Row(0); ok {
		t.Error("Row(0) found, want none")
	}
	if _, ok := table.Row(2); ok {
		t.Error("Row(2) found, want none")
	}
}

func TestAssetTableIsIdempotent(t *testing.T) {
	table := AssetTable([]assetbook.Asset{asset("1", "Savings", 1000, 1, assetbook.Cash)}, "JPY")
	if a, b := table.Markdown(), table.Markdown(); a != b {
		t.Errorf("two renderings differ:\n%s\n%s", a, b)
	}
}
