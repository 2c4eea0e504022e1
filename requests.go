package stockpile

import (
	"time"

	"github.com/google/uuid"

	"stockpile/date"
)

// CreateItemRequest carries the caller-supplied fields for a new stock item.
// Zero-valued optional fields (DateReceived, Notes) get defaults at
// construction time.
type CreateItemRequest struct {
	Name         string
	Category     string
	Supplier     string
	Quantity     int
	UnitCost     Money
	DateReceived date.Date
	Notes        string
}

// newStockItem builds a fully-populated item from a request. Validation is a
// separate, prior step: construction never rejects.
func newStockItem(req CreateItemRequest, now time.Time) StockItem {
	received := req.DateReceived
	if received.IsZero() {
		received = date.Of(now)
	}
	return StockItem{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Category:     req.Category,
		Supplier:     req.Supplier,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		DateReceived: received,
		Notes:        req.Notes,
		DateAdded:    now,
		LastUpdated:  now,
	}
}

// UpdateItemFields carries a partial update. Nil fields are left untouched;
// ID, DateAdded and the stock type can never be updated.
type UpdateItemFields struct {
	Name         *string
	Category     *string
	Supplier     *string
	Quantity     *int
	UnitCost     *Money
	DateReceived *date.Date
	Notes        *string
}

// apply merges the supplied fields over item and stamps LastUpdated.
func (f UpdateItemFields) apply(item StockItem, now time.Time) StockItem {
	if f.Name != nil {
		item.Name = *f.Name
	}
	if f.Category != nil {
		item.Category = *f.Category
	}
	if f.Supplier != nil {
		item.Supplier = *f.Supplier
	}
	if f.Quantity != nil {
		item.Quantity = *f.Quantity
	}
	if f.UnitCost != nil {
		item.UnitCost = *f.UnitCost
	}
	if f.DateReceived != nil {
		item.DateReceived = *f.DateReceived
	}
	if f.Notes != nil {
		item.Notes = *f.Notes
	}
	item.LastUpdated = now
	return item
}

// IssueRequest carries the metadata of one issuance transaction.
type IssueRequest struct {
	ItemID   string
	Quantity int
	IssuedTo string
	Reason   string
	Date     date.Date
	IssuedBy string
	Notes    string
}

// newIssueRecord snapshots the item as it was just before the decrement and
// the balance that remains just after it.
func newIssueRecord(req IssueRequest, item StockItem, stockType StockType, remaining int, now time.Time) IssueRecord {
	day := req.Date
	if day.IsZero() {
		day = date.Of(now)
	}
	return IssueRecord{
		ID:               uuid.NewString(),
		ItemID:           item.ID,
		ItemName:         item.Name,
		StockType:        stockType,
		Category:         item.Category,
		UnitCost:         item.UnitCost,
		QuantityIssued:   req.Quantity,
		TotalValue:       item.UnitCost.MulInt(req.Quantity),
		IssuedTo:         req.IssuedTo,
		Reason:           req.Reason,
		Date:             day,
		IssuedBy:         req.IssuedBy,
		Notes:            req.Notes,
		RemainingBalance: remaining,
		Timestamp:        now,
	}
}

// HistoryFilter narrows an issue-history listing. Zero-valued fields are
// ignored; set predicates are ANDed together.
type HistoryFilter struct {
	StartDate  date.Date
	EndDate    date.Date
	StockType  *StockType
	SearchTerm string
}
