package stockpile

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"stockpile/date"
)

func TestExportItemsCSV(t *testing.T) {
	items := []StockItem{
		{
			ID:           "id-1",
			Name:         `Bolts, M6 "zinc"`,
			Category:     "Hardware",
			Supplier:     "Acme Co",
			Quantity:     20,
			UnitCost:     M(1.50, "USD"),
			DateReceived: date.New(2024, 1, 10),
			Notes:        "shelf A\nsecond row",
		},
	}

	var buf bytes.Buffer
	if err := ExportItemsCSV(&buf, Internal, items); err != nil {
		t.Fatalf("ExportItemsCSV() error: %v", err)
	}

	// A comma, a quote and a newline in free text must survive a CSV
	// round trip.
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d row(s), want header + 1", len(rows))
	}
	if rows[0][0] != "id" || rows[0][7] != "stockType" {
		t.Errorf("header = %q, want id...stockType columns", rows[0])
	}
	row := rows[1]
	if row[1] != `Bolts, M6 "zinc"` {
		t.Errorf("itemName = %q, quoting lost", row[1])
	}
	if row[9] != "shelf A\nsecond row" {
		t.Errorf("notes = %q, newline lost", row[9])
	}
	if row[6] != "30" {
		t.Errorf("totalValue = %q, want 30", row[6])
	}
	if row[7] != "Internal-Use" {
		t.Errorf("stockType = %q, want Internal-Use", row[7])
	}
}

func TestExportHistoryCSV(t *testing.T) {
	records := []IssueRecord{record("bolts", External, date.New(2024, 1, 15), 3, 4.50)}

	var buf bytes.Buffer
	if err := ExportHistoryCSV(&buf, records); err != nil {
		t.Fatalf("ExportHistoryCSV() error: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d row(s), want header + 1", len(rows))
	}
	if rows[1][3] != "External-Use" {
		t.Errorf("stockType = %q, want External-Use", rows[1][3])
	}
	if rows[1][10] != "2024-01-15" {
		t.Errorf("date = %q, want 2024-01-15", rows[1][10])
	}
}

func TestBackupRoundTrip(t *testing.T) {
	want := Backup{
		InternalStock: []StockItem{item("bolts", "Hardware", 20, 1.50)},
		ExternalStock: []StockItem{item("paint", "Finishing", 3, 12)},
		IssueHistory:  []IssueRecord{record("bolts", Internal, date.New(2024, 1, 15), 2, 3)},
	}

	var buf bytes.Buffer
	if err := ExportBackup(&buf, want); err != nil {
		t.Fatalf("ExportBackup() error: %v", err)
	}

	got, err := ImportBackup(&buf)
	if err != nil {
		t.Fatalf("ImportBackup() error: %v", err)
	}
	if len(got.InternalStock) != 1 || got.InternalStock[0].Name != "bolts" {
		t.Errorf("InternalStock = %+v, want bolts", got.InternalStock)
	}
	if len(got.ExternalStock) != 1 || got.ExternalStock[0].Quantity != 3 {
		t.Errorf("ExternalStock = %+v, want 3 paint units", got.ExternalStock)
	}
	if len(got.IssueHistory) != 1 || got.IssueHistory[0].QuantityIssued != 2 {
		t.Errorf("IssueHistory = %+v, want one record of 2 units", got.IssueHistory)
	}
}

func TestImportBackupNested(t *testing.T) {
	// Some export tools wrap the payload under a top-level key; the
	// importer locates the collections there too.
	doc := `{
	  "exportedAt": "2024-01-15T10:00:00Z",
	  "data": {
	    "internalStock": [{"id": "id-1", "itemName": "bolts", "category": "Hardware", "quantity": 20, "unitCost": 1.5}],
	    "externalStock": [],
	    "issueHistory": []
	  }
	}`
	b, err := ImportBackup(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ImportBackup() error: %v", err)
	}
	if len(b.InternalStock) != 1 || b.InternalStock[0].Name != "bolts" {
		t.Errorf("InternalStock = %+v, want bolts from the nested document", b.InternalStock)
	}
}

func TestImportBackupRejectsForeignDocuments(t *testing.T) {
	_, err := ImportBackup(strings.NewReader(`{"hello": "world"}`))
	if err == nil {
		t.Fatal("ImportBackup() = nil error for a document without stock collections")
	}
}

func TestRestore(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SaveItems(Internal, []StockItem{item("stale", "Misc", 1, 1)})

	b := Backup{InternalStock: []StockItem{item("fresh", "Misc", 5, 2)}}
	if err := Restore(repo, b); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	items, _ := repo.LoadItems(Internal)
	if len(items) != 1 || items[0].Name != "fresh" {
		t.Errorf("after restore, internal stock = %+v, want only the backup's items", items)
	}
	if external, _ := repo.LoadItems(External); len(external) != 0 {
		t.Errorf("after restore, external stock = %+v, want empty", external)
	}
}
