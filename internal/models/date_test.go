package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 9)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2025-03-09"` {
		t.Errorf("expected \"2025-03-09\", got %s", data)
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("expected %s after round trip, got %s", d, parsed)
	}
}

func TestDateUnmarshalNullAndEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			t.Errorf("unmarshal %s failed: %v", raw, err)
		}
		if !d.IsZero() {
			t.Errorf("expected zero date from %s, got %s", raw, d)
		}
	}
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"09/03/2025"`), &d); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  Date
	}{
		{"time_value", time.Date(2025, time.March, 9, 13, 45, 0, 0, time.Local), NewDate(2025, time.March, 9)},
		{"date_string", "2025-03-09", NewDate(2025, time.March, 9)},
		{"timestamp_string", "2025-03-09 00:00:00", NewDate(2025, time.March, 9)},
		{"nil", nil, Date{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.value); err != nil {
				t.Fatalf("scan failed: %v", err)
			}
			if !d.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, d)
			}
		})
	}
}

func TestBudgetOverlaps(t *testing.T) {
	b := &Budget{
		StartDate: NewDate(2025, time.January, 10),
		EndDate:   NewDate(2025, time.January, 20),
	}

	tests := []struct {
		name       string
		start, end Date
		want       bool
	}{
		{"identical", NewDate(2025, time.January, 10), NewDate(2025, time.January, 20), true},
		{"contained", NewDate(2025, time.January, 12), NewDate(2025, time.January, 15), true},
		{"shares_start_boundary", NewDate(2025, time.January, 1), NewDate(2025, time.January, 10), true},
		{"shares_end_boundary", NewDate(2025, time.January, 20), NewDate(2025, time.January, 31), true},
		{"before", NewDate(2025, time.January, 1), NewDate(2025, time.January, 9), false},
		{"after", NewDate(2025, time.January, 21), NewDate(2025, time.January, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
