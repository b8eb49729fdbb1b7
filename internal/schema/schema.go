// Package schema validates serialized catalog entries against the
// published document schema (element presence, code shape, closed type set).
package schema

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrSchemaViolation marks output that would not validate against the
// catalog schema. Unlike per-record normalization errors it is fatal:
// partially invalid output is never written.
var ErrSchemaViolation = errors.New("schema violation")

// Entry mirrors one BFFO_Address element. Children appear in this fixed
// order; absent optionals are omitted from the document entirely.
type Entry struct {
	XMLName xml.Name `xml:"BFFO_Address"`
	BfpoNum string   `xml:"BfpoNum" validate:"required"`
	BoxNum  *int     `xml:"BoxNum,omitempty" validate:"omitempty,min=1"`
	Loc     string   `xml:"Loc" validate:"required"`
	PstCd   string   `xml:"PstCd,omitempty"`
	Ctry    string   `xml:"Ctry" validate:"required"`
	CtryCd  string   `xml:"CtryCd,omitempty" validate:"omitempty,len=2,alpha,uppercase"`
	Type    string   `xml:"Type" validate:"required,oneof=static ship fcdo operation exercise navalparty detachment"`
}

// Checker validates entries with struct tags.
type Checker struct {
	validate *validator.Validate
}

// NewChecker creates a new schema checker.
func NewChecker() *Checker {
	return &Checker{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CheckEntry validates one address entry against the schema rules.
func (c *Checker) CheckEntry(e *Entry) error {
	if err := c.validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaViolation, e.BfpoNum, err)
	}

	// A box number is present if and only if the entry is a detachment.
	if (e.Type == "detachment") != (e.BoxNum != nil) {
		return fmt.Errorf("%w: %s: box number and detachment type must match", ErrSchemaViolation, e.BfpoNum)
	}

	return nil
}
