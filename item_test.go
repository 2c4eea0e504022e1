package stockpile

import (
	"encoding/json"
	"testing"
)

func TestParseStockType(t *testing.T) {
	tests := []struct {
		in      string
		want    StockType
		wantErr bool
	}{
		{"internal", Internal, false},
		{"external", External, false},
		{"Internal-Use", Internal, false},
		{"External-Use", External, false},
		{"warehouse", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseStockType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseStockType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseStockType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStockTypeJSON(t *testing.T) {
	b, err := json.Marshal(External)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(b) != `"External-Use"` {
		t.Errorf("Marshal(External) = %s, want \"External-Use\"", b)
	}
	var got StockType
	if err := json.Unmarshal([]byte(`"Internal-Use"`), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got != Internal {
		t.Errorf("Unmarshal(\"Internal-Use\") = %v, want Internal", got)
	}
	if err := json.Unmarshal([]byte(`"warehouse"`), &got); err == nil {
		t.Error("Unmarshal(\"warehouse\") = nil error, want a parse failure")
	}
}

func TestStockLevelThresholds(t *testing.T) {
	tests := []struct {
		qty           int
		low, critical bool
	}{
		{10, false, false},
		{9, true, false},
		{5, true, false},
		{4, true, true},
		{0, true, true},
	}
	for _, tc := range tests {
		it := StockItem{Quantity: tc.qty}
		if got := it.IsLowStock(); got != tc.low {
			t.Errorf("IsLowStock() at %d = %v, want %v", tc.qty, got, tc.low)
		}
		if got := it.IsCriticalStock(); got != tc.critical {
			t.Errorf("IsCriticalStock() at %d = %v, want %v", tc.qty, got, tc.critical)
		}
	}
}
