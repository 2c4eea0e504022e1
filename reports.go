package stockpile

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"stockpile/date"
)

// Reporting thresholds. Monetary thresholds are in the display currency.
const (
	// HighUnitValueThreshold flags expensive lines worth reviewing when they
	// stop moving.
	HighUnitValueThreshold = 1000
	// InsuranceValueThreshold is the aggregate valuation above which coverage
	// should be reviewed.
	InsuranceValueThreshold = 50000
	// MovementWindowDays is the default trailing window for movement analysis.
	MovementWindowDays = 30
)

// TotalValue sums quantity times unit cost over the items. It is linear:
// the total of two disjoint lists is the sum of their totals.
func TotalValue(items []StockItem) Money {
	var total Money
	for _, item := range items {
		total = total.Add(item.TotalValue())
	}
	return total
}

// LowStockCount counts items below the low-stock threshold.
func LowStockCount(items []StockItem) int {
	n := 0
	for _, item := range items {
		if item.IsLowStock() {
			n++
		}
	}
	return n
}

// CriticalStockCount counts items below the critical threshold.
func CriticalStockCount(items []StockItem) int {
	n := 0
	for _, item := range items {
		if item.IsCriticalStock() {
			n++
		}
	}
	return n
}

// Turnover is the ratio of issued value to average inventory value over a
// period, rounded to two decimal places. It is zero when the average
// inventory value is zero.
func Turnover(issuedValue, avgInventoryValue Money) decimal.Decimal {
	return issuedValue.Ratio(avgInventoryValue)
}

// CategoryGroup accumulates one category's share of a stock list.
type CategoryGroup struct {
	Name  string
	Count int
	Value Money
	Items []string
}

// Categories partitions items by category, accumulating count, valuation and
// member names per group. Groups come back sorted by name.
func Categories(items []StockItem) []CategoryGroup {
	groups := make(map[string]*CategoryGroup)
	for _, item := range items {
		g, ok := groups[item.Category]
		if !ok {
			g = &CategoryGroup{Name: item.Category}
			groups[item.Category] = g
		}
		g.Count++
		g.Value = g.Value.Add(item.TotalValue())
		g.Items = append(g.Items, item.Name)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make([]CategoryGroup, 0, len(groups))
	for _, name := range names {
		result = append(result, *groups[name])
	}
	return result
}

// MovementBucket accumulates one day of issuance activity.
type MovementBucket struct {
	Date        date.Date
	InternalQty int
	ExternalQty int
	Value       Money
}

// MovementReport is the issuance activity over a trailing window.
type MovementReport struct {
	Window      date.Range
	Buckets     []MovementBucket
	TotalIssued int
	TotalValue  Money
}

// Movement buckets issue records falling inside the window by date,
// accumulating per-partition quantities and value sums. Buckets come back in
// chronological order.
func Movement(records []IssueRecord, window date.Range) MovementReport {
	report := MovementReport{Window: window}
	buckets := make(map[date.Date]*MovementBucket)
	for _, rec := range records {
		if !window.Contains(rec.Date) {
			continue
		}
		b, ok := buckets[rec.Date]
		if !ok {
			b = &MovementBucket{Date: rec.Date}
			buckets[rec.Date] = b
		}
		switch rec.StockType {
		case Internal:
			b.InternalQty += rec.QuantityIssued
		case External:
			b.ExternalQty += rec.QuantityIssued
		}
		b.Value = b.Value.Add(rec.TotalValue)
		report.TotalIssued += rec.QuantityIssued
		report.TotalValue = report.TotalValue.Add(rec.TotalValue)
	}
	for _, b := range buckets {
		report.Buckets = append(report.Buckets, *b)
	}
	sort.Slice(report.Buckets, func(i, j int) bool {
		return report.Buckets[i].Date.Before(report.Buckets[j].Date)
	})
	return report
}

// Priority ranks a recommendation report.
type Priority int

const (
	Low Priority = iota
	Medium
	High
)

func (p Priority) String() string {
	switch p {
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// RecommendationReport is the rule-based advice derived from a full snapshot.
// Urgent entries demand action now; Suggestions are strategic.
type RecommendationReport struct {
	Priority    Priority
	Urgent      []string
	Suggestions []string
}

// Recommendations derives rule-based advice from both partitions and the
// issue history. Priority is HIGH when any urgent condition holds, MEDIUM
// when only strategic suggestions exist, LOW otherwise.
func Recommendations(internal, external []StockItem, history []IssueRecord, today date.Date) RecommendationReport {
	var report RecommendationReport
	all := make([]StockItem, 0, len(internal)+len(external))
	all = append(all, internal...)
	all = append(all, external...)

	if n := CriticalStockCount(all); n > 0 {
		report.Urgent = append(report.Urgent,
			fmt.Sprintf("%d item(s) at critical stock level (below %d units): reorder immediately", n, CriticalStockThreshold))
	}
	if n := LowStockCount(all); n > 0 {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("%d item(s) running low (below %d units): plan replenishment", n, LowStockThreshold))
	}

	// High-value lines with no movement over the trailing window tie up capital.
	window := date.Trailing(today, MovementWindowDays)
	moved := make(map[string]bool)
	for _, rec := range history {
		if window.Contains(rec.Date) {
			moved[rec.ItemID] = true
		}
	}
	threshold := M(HighUnitValueThreshold, "")
	slow := 0
	for _, item := range all {
		if item.UnitCost.GreaterThan(threshold) && !moved[item.ID] {
			slow++
		}
	}
	if slow > 0 {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("%d high-value item(s) (unit cost above %d) with no issuance in the last %d days: review stocking levels", slow, HighUnitValueThreshold, MovementWindowDays))
	}

	if TotalValue(all).GreaterThan(M(InsuranceValueThreshold, "")) {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("total inventory value exceeds %d: review insurance coverage", InsuranceValueThreshold))
	}

	switch {
	case len(report.Urgent) > 0:
		report.Priority = High
	case len(report.Suggestions) > 0:
		report.Priority = Medium
	default:
		report.Priority = Low
	}
	return report
}

// PartitionSummary is the at-a-glance state of one stock partition.
type PartitionSummary struct {
	StockType     StockType
	Items         int
	Units         int
	TotalValue    Money
	LowStock      int
	CriticalStock int
}

// Summary provides a comprehensive overview of the inventory's state and
// recent movement on a given date.
type Summary struct {
	Date          date.Date
	Currency      string
	Internal      PartitionSummary
	External      PartitionSummary
	TotalItems    int
	TotalValue    Money
	LowStock      int
	CriticalStock int
	IssuedValue   Money // over the trailing movement window
	IssuedUnits   int
	Turnover      decimal.Decimal
}

// NewSummary computes the summary of both partitions and the trailing
// movement window ending today.
func NewSummary(internal, external []StockItem, history []IssueRecord, today date.Date, currency string) Summary {
	s := Summary{
		Date:     today,
		Currency: currency,
		Internal: summarize(Internal, internal),
		External: summarize(External, external),
	}
	s.TotalItems = s.Internal.Items + s.External.Items
	s.TotalValue = s.Internal.TotalValue.Add(s.External.TotalValue)
	s.LowStock = s.Internal.LowStock + s.External.LowStock
	s.CriticalStock = s.Internal.CriticalStock + s.External.CriticalStock

	movement := Movement(history, date.Trailing(today, MovementWindowDays))
	s.IssuedValue = movement.TotalValue
	s.IssuedUnits = movement.TotalIssued
	s.Turnover = Turnover(s.IssuedValue, s.TotalValue)
	return s
}

func summarize(t StockType, items []StockItem) PartitionSummary {
	p := PartitionSummary{
		StockType:     t,
		Items:         len(items),
		TotalValue:    TotalValue(items),
		LowStock:      LowStockCount(items),
		CriticalStock: CriticalStockCount(items),
	}
	for _, item := range items {
		p.Units += item.Quantity
	}
	return p
}
