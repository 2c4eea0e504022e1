package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"stockpile"
)

// SummaryMarkdown renders the inventory summary report.
func SummaryMarkdown(s stockpile.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Inventory Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total value: %s across %d items", s.TotalValue, s.TotalItems))

	doc.H2("Partitions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Stock", "Items", "Units", "Value", "Low", "Critical"},
		Rows: [][]string{
			partitionRow(s.Internal),
			partitionRow(s.External),
			{"Total", fmt.Sprintf("%d", s.TotalItems), "", s.TotalValue.String(),
				fmt.Sprintf("%d", s.LowStock), fmt.Sprintf("%d", s.CriticalStock)},
		},
	}
	doc.Table(table)

	doc.H2(fmt.Sprintf("Movement (last %d days)", stockpile.MovementWindowDays))
	doc.PlainText(fmt.Sprintf("Issued: %d units worth %s", s.IssuedUnits, s.IssuedValue))
	doc.PlainText(fmt.Sprintf("Turnover: %s", s.Turnover))

	return doc.String()
}

func partitionRow(p stockpile.PartitionSummary) []string {
	return []string{
		p.StockType.Label(),
		fmt.Sprintf("%d", p.Items),
		fmt.Sprintf("%d", p.Units),
		p.TotalValue.String(),
		fmt.Sprintf("%d", p.LowStock),
		fmt.Sprintf("%d", p.CriticalStock),
	}
}
