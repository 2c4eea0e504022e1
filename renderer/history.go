package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"stockpile"
)

// HistoryMarkdown renders issue records as a markdown table, in the order given.
func HistoryMarkdown(records []stockpile.IssueRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Issue History (%d records)", len(records)))

	if len(records) == 0 {
		doc.PlainText("No issuances recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Item", "Type", "Qty", "Value", "Issued To", "Reason", "Balance"},
		Rows:   [][]string{},
	}
	for _, rec := range records {
		table.Rows = append(table.Rows, []string{
			rec.Date.String(),
			rec.ItemName,
			rec.StockType.Label(),
			fmt.Sprintf("%d", rec.QuantityIssued),
			rec.TotalValue.String(),
			rec.IssuedTo,
			rec.Reason,
			fmt.Sprintf("%d", rec.RemainingBalance),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Issuance renders a one-line confirmation of a freshly written record.
func Issuance(rec stockpile.IssueRecord) string {
	return fmt.Sprintf("Issued %d x %s to %s (%s), %d remaining",
		rec.QuantityIssued, rec.ItemName, rec.IssuedTo, rec.TotalValue, rec.RemainingBalance)
}
