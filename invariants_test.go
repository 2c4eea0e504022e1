package stockpile

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"stockpile/date"
)

// TestQuantityNeverNegative drives the ledger with random operation
// sequences and checks that no stored quantity ever drops below zero and
// that every audit record's remaining balance was true when written.
func TestQuantityNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := NewMemoryRepository()
		ledger := NewLedger(repo, "USD")

		var ids []string
		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0: // add
				stockType := StockTypes()[rapid.IntRange(0, 1).Draw(t, "type")]
				item, err := ledger.AddItem(CreateItemRequest{
					Name:         rapid.StringMatching(`[a-z]{2,8}`).Draw(t, "name"),
					Category:     "Misc",
					Supplier:     "Acme Co",
					Quantity:     rapid.IntRange(1, 50).Draw(t, "qty"),
					UnitCost:     M(rapid.IntRange(0, 20).Draw(t, "cost"), "USD"),
					DateReceived: date.New(2024, 1, 1),
				}, stockType)
				if err != nil {
					t.Fatalf("AddItem() error: %v", err)
				}
				ids = append(ids, item.ID)
			case 1: // issue
				if len(ids) == 0 {
					continue
				}
				id := ids[rapid.IntRange(0, len(ids)-1).Draw(t, "id")]
				qty := rapid.IntRange(1, 60).Draw(t, "issueQty")
				_, err := ledger.Issue(IssueRequest{ItemID: id, Quantity: qty, IssuedTo: "Workshop", Reason: "r"})
				var insufficient *InsufficientStockError
				var notFound *NotFoundError
				if err != nil && !errors.As(err, &insufficient) && !errors.As(err, &notFound) {
					t.Fatalf("Issue() error: %v", err)
				}
			case 2: // delete
				if len(ids) == 0 {
					continue
				}
				id := ids[rapid.IntRange(0, len(ids)-1).Draw(t, "rmId")]
				stockType := StockTypes()[rapid.IntRange(0, 1).Draw(t, "rmType")]
				if _, err := ledger.DeleteItem(id, stockType); err != nil {
					t.Fatalf("DeleteItem() error: %v", err)
				}
			}
		}

		for _, stockType := range StockTypes() {
			items, err := ledger.Items(stockType)
			if err != nil {
				t.Fatalf("Items() error: %v", err)
			}
			for _, item := range items {
				if item.Quantity < 0 {
					t.Fatalf("item %q has negative quantity %d", item.ID, item.Quantity)
				}
			}
		}
		history, err := ledger.IssueHistory(HistoryFilter{})
		if err != nil {
			t.Fatalf("IssueHistory() error: %v", err)
		}
		for _, rec := range history {
			if rec.RemainingBalance < 0 {
				t.Fatalf("record %q has negative remaining balance %d", rec.ID, rec.RemainingBalance)
			}
			if rec.QuantityIssued < 1 {
				t.Fatalf("record %q has non-positive quantity issued %d", rec.ID, rec.QuantityIssued)
			}
		}
	})
}
