package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the wire format for due dates: two-digit day, two-digit
// month, four-digit year, hyphen separated.
const DateLayout = "02-01-2006"

// Date is a calendar date with no time-of-day or timezone component.
// The zero Date is invalid and never appears in a stored task.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date from calendar components without validating them.
// Use ParseDate for untrusted input.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// ParseDate converts a DD-MM-YYYY string into a Date. The shape is enforced
// strictly: single-digit days or months are rejected even though time.Parse
// would accept them, as are impossible calendar dates such as 31-02-2024.
func ParseDate(s string) (Date, error) {
	if !wellFormed(s) {
		return Date{}, fmt.Errorf("invalid date %q: want DD-MM-YYYY", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func wellFormed(s string) bool {
	if len(s) != len(DateLayout) || s[2] != '-' || s[5] != '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 2 || i == 5 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Today returns the current calendar date in local time.
func Today() Date {
	now := time.Now()
	return Date{year: now.Year(), month: now.Month(), day: now.Day()}
}

// IsZero reports whether d is the invalid zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders d in the DD-MM-YYYY wire form.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.day, int(d.month), d.year)
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// DaysFrom returns the number of whole days from ref to d, negative when
// d is earlier than ref.
func (d Date) DaysFrom(ref Date) int {
	return int(d.Time().Sub(ref.Time()).Hours() / 24)
}

// MarshalJSON renders d as a quoted DD-MM-YYYY string. Marshaling the zero
// Date is an error so an invalid date can never reach a task file.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero date")
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON parses a quoted DD-MM-YYYY string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML renders d as a DD-MM-YYYY scalar.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero date")
	}
	return d.String(), nil
}

// UnmarshalYAML parses a DD-MM-YYYY scalar.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
