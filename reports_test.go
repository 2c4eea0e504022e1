package stockpile

import (
	"strings"
	"testing"

	"stockpile/date"
)

func item(name, category string, qty int, cost float64) StockItem {
	return StockItem{
		ID:       name,
		Name:     name,
		Category: category,
		Quantity: qty,
		UnitCost: M(cost, "USD"),
	}
}

func TestTotalValue(t *testing.T) {
	if got := TotalValue(nil); !got.IsZero() {
		t.Errorf("TotalValue(nil) = %s, want zero", got.Decimal())
	}

	a := []StockItem{item("bolts", "Hardware", 20, 1.50)}
	b := []StockItem{item("paint", "Finishing", 3, 12)}
	sum := TotalValue(a).Add(TotalValue(b))
	if got := TotalValue(append(a, b...)); !got.Equal(sum) {
		t.Errorf("TotalValue is not linear: %s != %s", got.Decimal(), sum.Decimal())
	}
	if got := TotalValue(a).Decimal().String(); got != "30" {
		t.Errorf("TotalValue = %s, want 30", got)
	}
}

func TestStockLevelCounts(t *testing.T) {
	items := []StockItem{
		item("plenty", "Misc", 10, 1), // at the threshold, not low
		item("low", "Misc", 9, 1),
		item("edge", "Misc", 5, 1), // low, not critical
		item("critical", "Misc", 4, 1),
		item("empty", "Misc", 0, 1),
	}
	if got := LowStockCount(items); got != 4 {
		t.Errorf("LowStockCount = %d, want 4", got)
	}
	if got := CriticalStockCount(items); got != 2 {
		t.Errorf("CriticalStockCount = %d, want 2", got)
	}
}

func TestCategories(t *testing.T) {
	items := []StockItem{
		item("paint", "Finishing", 3, 12),
		item("bolts", "Hardware", 20, 1.50),
		item("screws", "Hardware", 10, 0.50),
	}
	groups := Categories(items)
	if len(groups) != 2 {
		t.Fatalf("Categories() returned %d group(s), want 2", len(groups))
	}
	// Sorted by name.
	if groups[0].Name != "Finishing" || groups[1].Name != "Hardware" {
		t.Errorf("group order = %q, %q, want Finishing, Hardware", groups[0].Name, groups[1].Name)
	}
	hw := groups[1]
	if hw.Count != 2 {
		t.Errorf("Hardware count = %d, want 2", hw.Count)
	}
	if got := hw.Value.Decimal().String(); got != "35" {
		t.Errorf("Hardware value = %s, want 35", got)
	}
}

func record(itemID string, t StockType, day date.Date, qty int, value float64) IssueRecord {
	return IssueRecord{
		ID:             itemID + day.String(),
		ItemID:         itemID,
		ItemName:       itemID,
		StockType:      t,
		Date:           day,
		QuantityIssued: qty,
		TotalValue:     M(value, "USD"),
	}
}

func TestMovement(t *testing.T) {
	window := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 31))
	records := []IssueRecord{
		record("bolts", Internal, date.New(2024, 1, 5), 3, 4.50),
		record("bolts", Internal, date.New(2024, 1, 5), 2, 3),
		record("paint", External, date.New(2024, 1, 10), 1, 12),
		record("old", Internal, date.New(2023, 12, 31), 99, 99), // outside
	}

	r := Movement(records, window)
	if r.TotalIssued != 6 {
		t.Errorf("TotalIssued = %d, want 6", r.TotalIssued)
	}
	if got := r.TotalValue.Decimal().String(); got != "19.5" {
		t.Errorf("TotalValue = %s, want 19.5", got)
	}
	if len(r.Buckets) != 2 {
		t.Fatalf("got %d bucket(s), want 2", len(r.Buckets))
	}
	// Chronological order, same-day records collapsed into one bucket.
	first := r.Buckets[0]
	if first.Date != date.New(2024, 1, 5) || first.InternalQty != 5 || first.ExternalQty != 0 {
		t.Errorf("first bucket = %+v, want 5 internal units on 2024-01-05", first)
	}
	second := r.Buckets[1]
	if second.ExternalQty != 1 {
		t.Errorf("second bucket = %+v, want 1 external unit", second)
	}
}

func TestTurnover(t *testing.T) {
	if got := Turnover(M(18, "USD"), M(12, "USD")).String(); got != "1.5" {
		t.Errorf("Turnover = %s, want 1.5", got)
	}
	if got := Turnover(M(18, "USD"), M(0, "USD")).String(); got != "0" {
		t.Errorf("Turnover with empty inventory = %s, want 0", got)
	}
}

func TestRecommendations(t *testing.T) {
	today := date.New(2024, 6, 1)

	t.Run("empty stock is quiet", func(t *testing.T) {
		r := Recommendations(nil, nil, nil, today)
		if r.Priority != Low || len(r.Urgent) != 0 || len(r.Suggestions) != 0 {
			t.Errorf("Recommendations() = %+v, want a quiet LOW report", r)
		}
	})

	t.Run("critical stock is urgent", func(t *testing.T) {
		r := Recommendations([]StockItem{item("bolts", "Hardware", 2, 1)}, nil, nil, today)
		if r.Priority != High {
			t.Errorf("Priority = %s, want HIGH", r.Priority)
		}
		if len(r.Urgent) != 1 || !strings.Contains(r.Urgent[0], "critical") {
			t.Errorf("Urgent = %q, want a critical-stock alert", r.Urgent)
		}
	})

	t.Run("low stock alone is a suggestion", func(t *testing.T) {
		r := Recommendations([]StockItem{item("bolts", "Hardware", 8, 1)}, nil, nil, today)
		if r.Priority != Medium {
			t.Errorf("Priority = %s, want MEDIUM", r.Priority)
		}
		if len(r.Urgent) != 0 {
			t.Errorf("Urgent = %q, want none", r.Urgent)
		}
	})

	t.Run("idle high-value lines are flagged", func(t *testing.T) {
		lathe := item("lathe", "Machinery", 15, 2500)
		r := Recommendations([]StockItem{lathe}, nil, nil, today)
		if r.Priority != Medium || len(r.Suggestions) != 1 {
			t.Fatalf("Recommendations() = %+v, want one suggestion", r)
		}
		if !strings.Contains(r.Suggestions[0], "high-value") {
			t.Errorf("Suggestions[0] = %q, want the high-value rule", r.Suggestions[0])
		}

		// The same line with recent movement is fine.
		history := []IssueRecord{record("lathe", Internal, today.Add(-5), 1, 2500)}
		r = Recommendations([]StockItem{lathe}, nil, history, today)
		for _, s := range r.Suggestions {
			if strings.Contains(s, "high-value") {
				t.Errorf("Suggestions = %q, want no high-value flag after recent movement", r.Suggestions)
			}
		}
	})

	t.Run("large valuations suggest an insurance review", func(t *testing.T) {
		r := Recommendations([]StockItem{item("gold", "Metals", 60, 900)}, nil,
			[]IssueRecord{record("gold", Internal, today, 1, 900)}, today)
		found := false
		for _, s := range r.Suggestions {
			if strings.Contains(s, "insurance") {
				found = true
			}
		}
		if !found {
			t.Errorf("Suggestions = %q, want an insurance review above the threshold", r.Suggestions)
		}
	})
}

func TestNewSummary(t *testing.T) {
	today := date.New(2024, 6, 1)
	internal := []StockItem{item("bolts", "Hardware", 8, 1.50)}
	external := []StockItem{item("paint", "Finishing", 3, 12)}
	history := []IssueRecord{
		record("bolts", Internal, today.Add(-10), 12, 18),
		record("bolts", Internal, today.Add(-60), 5, 7.50), // outside the window
	}

	s := NewSummary(internal, external, history, today, "USD")
	if s.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", s.TotalItems)
	}
	if got := s.TotalValue.Decimal().String(); got != "48" {
		t.Errorf("TotalValue = %s, want 48", got)
	}
	if s.LowStock != 2 || s.CriticalStock != 1 {
		t.Errorf("LowStock, CriticalStock = %d, %d, want 2, 1", s.LowStock, s.CriticalStock)
	}
	if s.IssuedUnits != 12 {
		t.Errorf("IssuedUnits = %d, want 12: the old record is outside the window", s.IssuedUnits)
	}
	if got := s.Turnover.String(); got != "0.38" {
		t.Errorf("Turnover = %s, want 0.38", got)
	}
	if s.Internal.Units != 8 || s.External.Units != 3 {
		t.Errorf("partition units = %d, %d, want 8, 3", s.Internal.Units, s.External.Units)
	}
}
