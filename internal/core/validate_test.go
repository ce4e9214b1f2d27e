package core

import (
	"errors"
	"testing"

	"github.com/tdo-cli/tdo/pkg/models"
)

func TestValidatePriority_Accepts(t *testing.T) {
	cases := map[string]models.Priority{
		"low":    models.PriorityLow,
		"medium": models.PriorityMedium,
		"high":   models.PriorityHigh,
	}
	for raw, want := range cases {
		got, err := ValidatePriority(raw)
		if err != nil {
			t.Errorf("ValidatePriority(%q): unexpected error: %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("ValidatePriority(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestValidatePriority_Rejects(t *testing.T) {
	cases := []string{"", "Low", "MEDIUM", "High", "urgent", "lo", "low ", " high", "med"}
	for _, raw := range cases {
		_, err := ValidatePriority(raw)
		if err == nil {
			t.Errorf("ValidatePriority(%q) succeeded, want error", raw)
			continue
		}
		if !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("ValidatePriority(%q) error %v does not wrap ErrInvalidPriority", raw, err)
		}
	}
}

func TestParseDueDate_Accepts(t *testing.T) {
	d, err := ParseDueDate("22-12-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.String(); got != "22-12-2024" {
		t.Errorf("parsed date = %q, want %q", got, "22-12-2024")
	}
}

func TestParseDueDate_Rejects(t *testing.T) {
	cases := []string{"", "2024-12-22", "31-02-2024", "2-1-2024", "soon", "22.12.2024"}
	for _, raw := range cases {
		_, err := ParseDueDate(raw)
		if err == nil {
			t.Errorf("ParseDueDate(%q) succeeded, want error", raw)
			continue
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDueDate(%q) error %v does not wrap ErrInvalidDate", raw, err)
		}
	}
}
