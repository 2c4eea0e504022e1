package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"stockpile"
)

// CategoriesMarkdown renders the per-category breakdown.
func CategoriesMarkdown(groups []stockpile.CategoryGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Stock by Category (%d categories)", len(groups)))

	if len(groups) == 0 {
		doc.PlainText("No items.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Category", "Items", "Value", "Members"},
		Rows:   [][]string{},
	}
	for _, g := range groups {
		table.Rows = append(table.Rows, []string{
			g.Name,
			fmt.Sprintf("%d", g.Count),
			g.Value.String(),
			strings.Join(g.Items, ", "),
		})
	}
	doc.Table(table)

	return doc.String()
}

// MovementMarkdown renders the trailing-window movement analysis.
func MovementMarkdown(r stockpile.MovementReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Stock Movement %s to %s", r.Window.From, r.Window.To))

	if len(r.Buckets) == 0 {
		doc.PlainText("No issuances in this window.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Internal Qty", "External Qty", "Value"},
		Rows:   [][]string{},
	}
	for _, b := range r.Buckets {
		table.Rows = append(table.Rows, []string{
			b.Date.String(),
			fmt.Sprintf("%d", b.InternalQty),
			fmt.Sprintf("%d", b.ExternalQty),
			b.Value.String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total issued: %d units worth %s", r.TotalIssued, r.TotalValue))

	return doc.String()
}

// RecommendationsMarkdown renders the rule-based advice list.
func RecommendationsMarkdown(r stockpile.RecommendationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Recommendations (priority: %s)", r.Priority))

	if len(r.Urgent) == 0 && len(r.Suggestions) == 0 {
		doc.PlainText("Nothing to flag: stock levels and valuation look healthy.")
		return doc.String()
	}

	if len(r.Urgent) > 0 {
		doc.H2("Urgent")
		doc.BulletList(r.Urgent...)
	}
	if len(r.Suggestions) > 0 {
		doc.H2("Suggestions")
		doc.BulletList(r.Suggestions...)
	}

	return doc.String()
}
