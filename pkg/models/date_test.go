package models

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("22-12-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.String(); got != "22-12-2024" {
		t.Errorf("String() = %q, want %q", got, "22-12-2024")
	}
	want := time.Date(2024, time.December, 22, 0, 0, 0, 0, time.UTC)
	if got := d.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestParseDate_LeapDay(t *testing.T) {
	if _, err := ParseDate("29-02-2024"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseDate("29-02-2023"); err == nil {
		t.Fatal("expected error for 29-02-2023")
	}
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024-12-22", // ISO field order
		"2-1-2024",   // single-digit day and month
		"22/12/2024", // wrong separator
		"22-12-24",   // two-digit year
		"22-12-2024 x",
		"aa-bb-cccc",
		"31-02-2024", // impossible calendar day
		"00-01-2024",
		"01-13-2024",
	}
	for _, raw := range cases {
		if _, err := ParseDate(raw); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", raw)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2024, time.December, 22)
	b := NewDate(2025, time.January, 3)
	if !a.Before(b) {
		t.Errorf("%v should be before %v", a, b)
	}
	if b.Before(a) {
		t.Errorf("%v should not be before %v", b, a)
	}
	if a.Before(a) {
		t.Error("a date should not be before itself")
	}
	if got := b.DaysFrom(a); got != 12 {
		t.Errorf("DaysFrom = %d, want 12", got)
	}
	if got := a.DaysFrom(b); got != -12 {
		t.Errorf("DaysFrom = %d, want -12", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d, err := ParseDate("05-06-2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"05-06-2026"` {
		t.Errorf("marshaled = %s, want %q", data, "05-06-2026")
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip changed date: %v != %v", back, d)
	}
}

func TestDate_YAMLRoundTrip(t *testing.T) {
	d := NewDate(2026, time.March, 9)
	data, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back Date
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip changed date: %v != %v", back, d)
	}
}

func TestDate_MarshalZero(t *testing.T) {
	if _, err := json.Marshal(Date{}); err == nil {
		t.Fatal("expected error marshaling zero date to JSON")
	}
	if _, err := yaml.Marshal(Date{}); err == nil {
		t.Fatal("expected error marshaling zero date to YAML")
	}
}

func TestDate_UnmarshalRejectsBadShape(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-12-22"`), &d); err == nil {
		t.Fatal("expected error for ISO-ordered date")
	}
	if err := json.Unmarshal([]byte(`20241222`), &d); err == nil {
		t.Fatal("expected error for non-string date")
	}
}
