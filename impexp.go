package stockpile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the import/export surface: CSV for spreadsheets, and a
// single JSON backup document holding all three collections.

// ExportItemsCSV writes one partition's items as CSV. Quoting is RFC 4180:
// free-text fields containing separators or quotes come out quoted with
// doubled quotes.
func ExportItemsCSV(w io.Writer, t StockType, items []StockItem) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "itemName", "category", "supplierName", "quantity", "unitCost", "totalValue", "stockType", "dateReceived", "notes", "dateAdded", "lastUpdated"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, item := range items {
		row := []string{
			item.ID,
			item.Name,
			item.Category,
			item.Supplier,
			strconv.Itoa(item.Quantity),
			item.UnitCost.Decimal().String(),
			item.TotalValue().Decimal().String(),
			t.Label(),
			item.DateReceived.String(),
			item.Notes,
			item.DateAdded.Format(time.RFC3339),
			item.LastUpdated.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row for item %q: %w", item.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportHistoryCSV writes issue records as CSV, in the order given.
func ExportHistoryCSV(w io.Writer, records []IssueRecord) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "itemId", "itemName", "stockType", "category", "quantityIssued", "unitCost", "totalValue", "issuedTo", "reason", "date", "issuedBy", "notes", "remainingBalance", "timestamp"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.ItemID,
			rec.ItemName,
			rec.StockType.Label(),
			rec.Category,
			strconv.Itoa(rec.QuantityIssued),
			rec.UnitCost.Decimal().String(),
			rec.TotalValue.Decimal().String(),
			rec.IssuedTo,
			rec.Reason,
			rec.Date.String(),
			rec.IssuedBy,
			rec.Notes,
			strconv.Itoa(rec.RemainingBalance),
			rec.Timestamp.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row for record %q: %w", rec.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Backup is the single-document JSON form of the whole inventory.
type Backup struct {
	InternalStock []StockItem   `json:"internalStock"`
	ExternalStock []StockItem   `json:"externalStock"`
	IssueHistory  []IssueRecord `json:"issueHistory"`
}

// ExportBackup writes the three collections as one indented JSON document.
func ExportBackup(w io.Writer, b Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// backupPaths are tried in order to locate the collections inside an
// arbitrary backup document: a bare backup first, then one nested under a
// wrapper object, the way some export tools wrap their payload.
var backupPaths = []string{"$", "$.data", "$.backup", "$.inventory"}

// ImportBackup reads a backup document, locating the three collections even
// when the backup is nested one level under a wrapper object.
func ImportBackup(r io.Reader) (Backup, error) {
	var doc any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Backup{}, fmt.Errorf("cannot parse backup document: %w", err)
	}

	for _, path := range backupPaths {
		node, err := jsonpath.Get(path, doc)
		if err != nil {
			continue
		}
		obj, ok := node.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := obj["internalStock"]; !ok {
			if _, ok := obj["externalStock"]; !ok {
				continue
			}
		}
		// Found the collections: round-trip this node through json to get
		// the typed form.
		raw, err := json.Marshal(obj)
		if err != nil {
			return Backup{}, fmt.Errorf("cannot re-encode backup node at %q: %w", path, err)
		}
		var b Backup
		if err := json.Unmarshal(raw, &b); err != nil {
			return Backup{}, fmt.Errorf("cannot decode backup node at %q: %w", path, err)
		}
		return b, nil
	}
	return Backup{}, fmt.Errorf("backup document holds no stock collections (looked under %v)", backupPaths)
}

// Restore writes a backup's collections through the repository, replacing
// whatever was there.
func Restore(repo Repository, b Backup) error {
	if err := repo.SaveItems(Internal, b.InternalStock); err != nil {
		return storageErr("restore internal stock", err)
	}
	if err := repo.SaveItems(External, b.ExternalStock); err != nil {
		return storageErr("restore external stock", err)
	}
	if err := repo.SaveHistory(b.IssueHistory); err != nil {
		return storageErr("restore issue history", err)
	}
	return nil
}
