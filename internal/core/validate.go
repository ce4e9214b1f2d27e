package core

import (
	"errors"
	"fmt"

	"github.com/tdo-cli/tdo/pkg/models"
)

// ErrInvalidPriority reports a priority token outside low, medium, high.
var ErrInvalidPriority = errors.New("invalid priority")

// ErrInvalidDate reports a due date that is not a real DD-MM-YYYY date.
var ErrInvalidDate = errors.New("invalid due date")

// ValidatePriority checks a raw priority token from any front end. Only the
// exact lowercase tokens "low", "medium", and "high" are accepted; there is
// no case folding or abbreviation.
func ValidatePriority(raw string) (models.Priority, error) {
	p := models.Priority(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (want low, medium, or high)", ErrInvalidPriority, raw)
	}
	return p, nil
}

// ParseDueDate checks a raw due date token, accepting exactly the DD-MM-YYYY
// form, for example 22-12-2024. Both the shape and calendar validity are
// enforced; 31-02-2024 fails even though it matches the shape.
func ParseDueDate(raw string) (models.Date, error) {
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %q (want DD-MM-YYYY)", ErrInvalidDate, raw)
	}
	return d, nil
}
