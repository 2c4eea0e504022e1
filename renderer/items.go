package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"stockpile"
)

// ItemsMarkdown renders one stock partition as a markdown table.
func ItemsMarkdown(t stockpile.StockType, items []stockpile.StockItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Stock (%d items)", t.Label(), len(items)))

	if len(items) == 0 {
		doc.PlainText("No items.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Name", "Category", "Supplier", "Qty", "Unit Cost", "Value", "Received", "Status"},
		Rows:   [][]string{},
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []string{
			item.Name,
			item.Category,
			item.Supplier,
			fmt.Sprintf("%d", item.Quantity),
			item.UnitCost.String(),
			item.TotalValue().String(),
			item.DateReceived.String(),
			status(item),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total value: %s", stockpile.TotalValue(items).String()))

	return doc.String()
}

func status(item stockpile.StockItem) string {
	switch {
	case item.IsCriticalStock():
		return "CRITICAL"
	case item.IsLowStock():
		return "LOW"
	default:
		return "OK"
	}
}

// Item renders a one-line description of an item, for confirmations.
func Item(item stockpile.StockItem) string {
	return fmt.Sprintf("%s (%s, %d on hand at %s)", item.Name, item.Category, item.Quantity, item.UnitCost)
}
