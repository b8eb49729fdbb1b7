package normalizer

import (
	"errors"
	"fmt"

	"bfpogen/internal/models"
)

// Per-record normalization errors. All three are recoverable: the offending
// record is dropped and counted, the run continues.
var (
	ErrIncompleteRecord    = errors.New("incomplete record")
	ErrMalformedDesignator = errors.New("malformed designator")
	ErrMalformedBoxNumber  = errors.New("malformed box number")
)

// Validator checks that a raw record carries every required field before
// transformation is attempted.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks required fields. Postcode and country code are optional;
// designator, location and country name are not.
func (v *Validator) Validate(raw models.RawRecord) error {
	if raw.Designator == "" {
		return fmt.Errorf("%w: missing designator", ErrIncompleteRecord)
	}

	if raw.Location == "" {
		return fmt.Errorf("%w: missing location", ErrIncompleteRecord)
	}

	if raw.Country == "" {
		return fmt.Errorf("%w: missing country name", ErrIncompleteRecord)
	}

	return nil
}
