package models

// Origin identifies which of the two known source shapes a raw record came from.
type Origin string

// Known record origins.
const (
	// OriginGOVUK is the official BFPO locations registry (tabular HTML rows).
	OriginGOVUK Origin = "GOVUK"
	// OriginFCDO is the diplomatic-posts indicator list (spreadsheet rows).
	OriginFCDO Origin = "FCDO"
)

// RawRecord is the transient, source-specific shape of one scraped row.
// It is consumed immediately by the normalizer and never persisted.
type RawRecord struct {
	Origin Origin
	// Designator is the raw designator text, e.g. "58", "BFPO58", "BFPO 2".
	Designator string
	// Location is the raw place/unit/vessel text.
	Location string
	// Postcode is the raw postcode text, possibly empty.
	Postcode string
	// Country is the raw country/territory text, possibly empty for rows
	// whose section implies it.
	Country string
	// BoxNumber is the raw box number text; set only for rows drawn from
	// the isolated-detachment table.
	BoxNumber string
	// Detachment marks rows drawn from the built-in isolated-detachment table.
	Detachment bool
}
