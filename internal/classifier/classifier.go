// Package classifier assigns each raw record one of the fixed address
// category tags using priority-ordered text heuristics.
package classifier

import (
	"regexp"
	"strings"

	"bfpogen/internal/models"
)

// Vessel-name conventions. "HMS"/"RFA" prefixes denote commissioned ships
// and fleet auxiliaries; knownVessels catches entries listed without a
// prefix on the source page.
var vesselPrefixes = []string{"HMS ", "RFA ", "MV "}

var knownVessels = map[string]bool{
	"queen elizabeth": true,
	"prince of wales": true,
	"protector":       true,
	"scott":           true,
	"forth":           true,
	"medway":          true,
	"tamar":           true,
	"spey":            true,
	"trent":           true,
}

// Operation/exercise naming conventions on the source page.
var (
	operationPrefixes = []string{"OP ", "OPERATION "}
	exercisePrefixes  = []string{"EX ", "EXERCISE "}
)

// navalPartyPattern matches shore-based naval-party designations such as
// "NP 1022" or "Naval Party 1600".
var navalPartyPattern = regexp.MustCompile(`(?i)\b(?:NP|NAVAL PARTY)\s*\d+`)

// rule is one (predicate, tag) pair. Rules are evaluated in order and the
// first match wins; a record can textually match more than one heuristic,
// so the order is part of the classification contract.
type rule struct {
	name string
	tag  models.AddressType
	test func(origin models.Origin, loc string, raw models.RawRecord) bool
}

var rules = []rule{
	{
		name: "fcdo-origin",
		tag:  models.TypeFCDO,
		test: func(origin models.Origin, _ string, _ models.RawRecord) bool {
			return origin == models.OriginFCDO
		},
	},
	{
		name: "isolated-detachment",
		tag:  models.TypeDetachment,
		test: func(_ models.Origin, _ string, raw models.RawRecord) bool {
			return raw.Detachment
		},
	},
	{
		name: "vessel",
		tag:  models.TypeShip,
		test: func(_ models.Origin, loc string, _ models.RawRecord) bool {
			return isVessel(loc)
		},
	},
	{
		name: "operation",
		tag:  models.TypeOperation,
		test: func(_ models.Origin, loc string, _ models.RawRecord) bool {
			return hasAnyPrefix(loc, operationPrefixes)
		},
	},
	{
		name: "exercise",
		tag:  models.TypeExercise,
		test: func(_ models.Origin, loc string, _ models.RawRecord) bool {
			return hasAnyPrefix(loc, exercisePrefixes)
		},
	},
	{
		name: "naval-party",
		tag:  models.TypeNavalParty,
		test: func(_ models.Origin, loc string, _ models.RawRecord) bool {
			return navalPartyPattern.MatchString(loc)
		},
	},
}

// Classify maps a raw record to its category tag. Never fails; records that
// match no heuristic default to static.
func Classify(origin models.Origin, location string, raw models.RawRecord) models.AddressType {
	for _, r := range rules {
		if r.test(origin, location, raw) {
			return r.tag
		}
	}

	return models.TypeStatic
}

// RuleTags returns the tags in evaluation order, default last. Exposed so
// tests can assert the priority order directly.
func RuleTags() []models.AddressType {
	tags := make([]models.AddressType, 0, len(rules)+1)
	for _, r := range rules {
		tags = append(tags, r.tag)
	}

	return append(tags, models.TypeStatic)
}

func isVessel(loc string) bool {
	if hasAnyPrefix(loc, vesselPrefixes) {
		return true
	}

	return knownVessels[strings.ToLower(strings.TrimSpace(loc))]
}

func hasAnyPrefix(loc string, prefixes []string) bool {
	upper := strings.ToUpper(strings.TrimSpace(loc))
	for _, p := range prefixes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}

	return false
}
