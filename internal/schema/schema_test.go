package schema

import (
	"errors"
	"testing"
)

func validEntry() *Entry {
	return &Entry{
		BfpoNum: "BFPO 58",
		Loc:     "Dhekelia",
		Ctry:    "Cyprus",
		CtryCd:  "CY",
		Type:    "static",
	}
}

func TestCheckEntry_Valid(t *testing.T) {
	c := NewChecker()

	if err := c.CheckEntry(validEntry()); err != nil {
		t.Errorf("CheckEntry failed on valid entry: %v", err)
	}

	// Absent optionals are fine.
	e := validEntry()
	e.CtryCd = ""
	e.PstCd = ""

	if err := c.CheckEntry(e); err != nil {
		t.Errorf("CheckEntry failed on entry without optionals: %v", err)
	}
}

func TestCheckEntry_Violations(t *testing.T) {
	c := NewChecker()

	box := 589

	tests := []struct {
		name   string
		mutate func(*Entry)
	}{
		{"missing designator", func(e *Entry) { e.BfpoNum = "" }},
		{"missing location", func(e *Entry) { e.Loc = "" }},
		{"missing country name", func(e *Entry) { e.Ctry = "" }},
		{"unknown type", func(e *Entry) { e.Type = "flying" }},
		{"empty type", func(e *Entry) { e.Type = "" }},
		{"three letter code", func(e *Entry) { e.CtryCd = "CYP" }},
		{"lowercase code", func(e *Entry) { e.CtryCd = "cy" }},
		{"numeric code", func(e *Entry) { e.CtryCd = "C1" }},
		{"box on static", func(e *Entry) { e.BoxNum = &box }},
		{"detachment without box", func(e *Entry) { e.Type = "detachment" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(e)

			err := c.CheckEntry(e)
			if !errors.Is(err, ErrSchemaViolation) {
				t.Errorf("CheckEntry() error = %v, want ErrSchemaViolation", err)
			}
		})
	}
}

func TestCheckEntry_DetachmentWithBox(t *testing.T) {
	c := NewChecker()

	box := 589

	e := validEntry()
	e.BfpoNum = "BFPO 105"
	e.Type = "detachment"
	e.BoxNum = &box

	if err := c.CheckEntry(e); err != nil {
		t.Errorf("CheckEntry failed on valid detachment: %v", err)
	}
}
