package stockpile

import (
	"time"

	"stockpile/date"
)

// IssueRecord is one immutable audit entry for a stock decrement.
//
// Item attributes are snapshots taken at issuance time: later edits to the
// source item, or its deletion, never retract or rewrite a record.
type IssueRecord struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	ItemName  string    `json:"itemName"`
	StockType StockType `json:"stockType"`
	Category  string    `json:"category"`
	UnitCost  Money     `json:"unitCost"`

	QuantityIssued int   `json:"quantityIssued"`
	TotalValue     Money `json:"totalValue"`

	IssuedTo string    `json:"issuedTo"`
	Reason   string    `json:"reason"`
	Date     date.Date `json:"date"`
	IssuedBy string    `json:"issuedBy,omitempty"`
	Notes    string    `json:"notes,omitempty"`

	// RemainingBalance is the item's quantity immediately after this
	// issuance, stored so a trail can be read without replaying history.
	RemainingBalance int `json:"remainingBalance"`

	// Timestamp orders records chronologically; ties in Date are broken by it.
	Timestamp time.Time `json:"timestamp"`
}
