package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-01", want: New(2024, time.January, 1)},
		{in: "2024-1-1", want: New(2024, time.January, 1)},
		{in: "2024-02-29", want: New(2024, time.February, 29)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAdd_normalizes(t *testing.T) {
	d := New(2024, time.January, 31).Add(1)
	if got, want := d.String(), "2024-02-01"; got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
	d = New(2024, time.March, 1).Add(-1)
	if got, want := d.String(), "2024-02-29"; got != want {
		t.Errorf("Add(-1) = %s, want %s", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-07-14")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2025-07-14"` {
		t.Errorf("Marshal = %s, want %q", b, `"2025-07-14"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustParse("2024-01-10"), MustParse("2024-01-20"))
	if !r.Contains(MustParse("2024-01-10")) || !r.Contains(MustParse("2024-01-20")) {
		t.Error("range must include its boundaries")
	}
	if r.Contains(MustParse("2024-01-09")) || r.Contains(MustParse("2024-01-21")) {
		t.Error("range must exclude dates outside boundaries")
	}
	if got, want := r.Days(), 11; got != want {
		t.Errorf("Days() = %d, want %d", got, want)
	}
}

func TestTrailing(t *testing.T) {
	r := Trailing(MustParse("2024-03-30"), 30)
	if got, want := r.From.String(), "2024-03-01"; got != want {
		t.Errorf("Trailing(30).From = %s, want %s", got, want)
	}
	if got, want := r.Days(), 30; got != want {
		t.Errorf("Trailing(30).Days() = %d, want %d", got, want)
	}
}
