package stockpile

import (
	"encoding/json"
	"fmt"
	"time"

	"stockpile/date"
)

// Stock level thresholds, in units on hand.
const (
	LowStockThreshold      = 10
	CriticalStockThreshold = 5
)

// StockType partitions the inventory by intended consumption.
type StockType int

const (
	// Internal marks stock consumed by internal operations.
	Internal StockType = iota
	// External marks stock destined for external use or resale.
	External
)

func (t StockType) String() string {
	switch t {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// Label returns the human-readable form used in reports and exports.
func (t StockType) Label() string {
	switch t {
	case Internal:
		return "Internal-Use"
	case External:
		return "External-Use"
	default:
		return "unknown"
	}
}

// ParseStockType parses a string into a StockType.
func ParseStockType(s string) (StockType, error) {
	switch s {
	case "internal", "Internal-Use":
		return Internal, nil
	case "external", "External-Use":
		return External, nil
	default:
		return 0, fmt.Errorf("unknown stock type: %q", s)
	}
}

// StockTypes lists both partitions in the fixed scan order used by Issue.
func StockTypes() []StockType { return []StockType{Internal, External} }

// MarshalJSON writes the stock type in its human-readable label form.
func (t StockType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Label())
}

func (t *StockType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseStockType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// StockItem is one inventory line with a quantity on hand and a unit cost.
//
// Quantity is the only field mutated by issuance; Id, DateAdded and the
// stock type it lives under are fixed at creation.
type StockItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"itemName"`
	Category     string    `json:"category"`
	Supplier     string    `json:"supplierName"`
	Quantity     int       `json:"quantity"`
	UnitCost     Money     `json:"unitCost"`
	DateReceived date.Date `json:"dateReceived"`
	Notes        string    `json:"notes,omitempty"`
	DateAdded    time.Time `json:"dateAdded"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// TotalValue is the on-hand valuation of the line: quantity times unit cost.
func (s StockItem) TotalValue() Money { return s.UnitCost.MulInt(s.Quantity) }

// IsLowStock reports whether the on-hand count is below the low-stock threshold.
func (s StockItem) IsLowStock() bool { return s.Quantity < LowStockThreshold }

// IsCriticalStock reports whether the on-hand count is below the critical threshold.
func (s StockItem) IsCriticalStock() bool { return s.Quantity < CriticalStockThreshold }
