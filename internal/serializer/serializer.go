// Package serializer renders the merged catalog as the schema-shaped XML
// document and computes the summary statistics surfaced in the run report.
package serializer

import (
	"encoding/xml"
	"fmt"
	"sort"

	"bfpogen/internal/models"
	"bfpogen/internal/schema"
)

// Document is the top-level container: one Config root wrapping repeated
// BFFO_Address elements.
type Document struct {
	XMLName   xml.Name       `xml:"Config"`
	Addresses []schema.Entry `xml:"BFFO_Address"`
}

// Stats summarizes the serialized catalog.
type Stats struct {
	Total         int
	ByType        map[models.AddressType]int
	WithCountry   int
	WithoutCode   int
	UnmappedNames []string
}

// Serializer converts canonical addresses into the output document. Every
// entry is schema-checked before the document is returned; one bad entry
// fails the whole serialization.
type Serializer struct {
	checker *schema.Checker
}

// NewSerializer creates a new serializer instance.
func NewSerializer() *Serializer {
	return &Serializer{checker: schema.NewChecker()}
}

// Serialize builds the document and its statistics. Returns a
// schema.ErrSchemaViolation-wrapped error if any record would produce
// invalid output; no partial document is ever returned.
func (s *Serializer) Serialize(catalog []models.Address) (*Document, *Stats, error) {
	doc := &Document{
		Addresses: make([]schema.Entry, 0, len(catalog)),
	}

	stats := &Stats{
		ByType: make(map[models.AddressType]int),
	}

	unmapped := make(map[string]bool)

	for i := range catalog {
		addr := &catalog[i]

		entry := schema.Entry{
			BfpoNum: addr.Designator,
			BoxNum:  addr.BoxNumber,
			Loc:     addr.Location,
			PstCd:   addr.Postcode,
			Ctry:    addr.CountryName,
			CtryCd:  addr.CountryCode,
			Type:    string(addr.Type),
		}

		if err := s.checker.CheckEntry(&entry); err != nil {
			return nil, nil, fmt.Errorf("serializing catalog: %w", err)
		}

		doc.Addresses = append(doc.Addresses, entry)

		stats.Total++
		stats.ByType[addr.Type]++

		if addr.HasCountryCode() {
			stats.WithCountry++
		} else {
			stats.WithoutCode++

			if addr.CountryName != "" {
				unmapped[addr.CountryName] = true
			}
		}
	}

	for name := range unmapped {
		stats.UnmappedNames = append(stats.UnmappedNames, name)
	}

	sort.Strings(stats.UnmappedNames)

	return doc, stats, nil
}

// Marshal renders the document as XML. Pretty output uses tab indentation
// to match the published schema examples.
func (s *Serializer) Marshal(doc *Document, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = xml.MarshalIndent(doc, "", "\t")
	} else {
		data, err = xml.Marshal(doc)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	return data, nil
}

// Unmarshal parses a catalog document back into its entry list. Used by the
// checker CLI and round-trip tests.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &doc, nil
}
