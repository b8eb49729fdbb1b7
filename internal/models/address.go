// Package models defines the raw and canonical record shapes shared by the pipeline.
package models

import (
	"strconv"
	"strings"
)

// DesignatorPrefix is the token every standardized designator starts with.
const DesignatorPrefix = "BFPO"

// AddressType categorizes a catalog entry.
type AddressType string

// The closed set of address types. No other value is ever produced.
const (
	TypeStatic     AddressType = "static"
	TypeShip       AddressType = "ship"
	TypeFCDO       AddressType = "fcdo"
	TypeOperation  AddressType = "operation"
	TypeExercise   AddressType = "exercise"
	TypeNavalParty AddressType = "navalparty"
	TypeDetachment AddressType = "detachment"
)

// AllTypes lists every valid address type in a stable order.
var AllTypes = []AddressType{
	TypeStatic,
	TypeShip,
	TypeFCDO,
	TypeOperation,
	TypeExercise,
	TypeNavalParty,
	TypeDetachment,
}

// Valid reports whether t is a member of the closed type set.
func (t AddressType) Valid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}

	return false
}

// Address is the canonical, schema-ready representation of one BFPO entry.
// Instances are created once by the normalizer and never mutated afterwards.
type Address struct {
	// Designator is the primary identifying code, "BFPO <integer>".
	// Non-empty, unique within the final catalog.
	Designator string
	// BoxNumber is set only for detachment entries (isolated detachments
	// share one designator group and differ by box number).
	BoxNumber *int
	// Location is the free-text place, unit or vessel name.
	Location string
	// Postcode is the fixed-format code when known, empty otherwise.
	Postcode string
	// CountryName is the country or territory name as given by the source.
	CountryName string
	// CountryCode is the resolved ISO 3166-1 alpha-2 code; empty when
	// resolution failed, which is a valid terminal state.
	CountryCode string
	// Type is one of the seven fixed category tags.
	Type AddressType
}

// DesignatorNumber extracts the numeric component of the designator.
// Returns false for designators that do not follow "<prefix> <integer>".
func (a *Address) DesignatorNumber() (int, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(a.Designator, DesignatorPrefix))

	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}

	return n, true
}

// HasCountryCode reports whether country resolution succeeded for this entry.
func (a *Address) HasCountryCode() bool {
	return a.CountryCode != ""
}
