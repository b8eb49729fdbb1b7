// Package merger deduplicates canonical addresses from both sources into
// one designator-ordered catalog.
package merger

import (
	"fmt"
	"sort"

	"bfpogen/internal/logger"
	"bfpogen/internal/models"
)

// Stats summarizes one merge pass.
type Stats struct {
	PrimaryCount   int
	SecondaryCount int
	// Duplicates counts designators that appeared in both inputs.
	Duplicates int
	// SecondaryWins counts duplicates where the secondary record replaced
	// or enriched the primary one.
	SecondaryWins int
}

// Merger deduplicates and orders catalog records.
type Merger struct {
	logger *logger.Logger
}

// NewMerger creates a new merger instance.
func NewMerger(log *logger.Logger) *Merger {
	return &Merger{logger: log}
}

// Merge combines the primary (official locations registry) and secondary
// (diplomatic-posts list) records. The primary source is the source of
// truth: on an equally complete duplicate the primary record stays. A
// secondary record wins only where it is strictly richer - it carries a
// country code the primary lacks, or a more specific type than the
// primary's default static. Output is sorted ascending by the numeric
// designator suffix, with unparseable designators after all parseable
// ones in their original order.
func (m *Merger) Merge(primary, secondary []models.Address) ([]models.Address, Stats) {
	stats := Stats{
		PrimaryCount:   len(primary),
		SecondaryCount: len(secondary),
	}

	byDesignator := make(map[string]int, len(primary))
	merged := make([]models.Address, 0, len(primary)+len(secondary))

	for _, addr := range primary {
		if idx, seen := byDesignator[dedupKey(addr)]; seen {
			// Duplicate within the primary source itself: first row wins,
			// but absorb a country code the earlier row lacked.
			stats.Duplicates++
			merged[idx] = enrich(merged[idx], addr)

			continue
		}

		byDesignator[dedupKey(addr)] = len(merged)
		merged = append(merged, addr)
	}

	for _, addr := range secondary {
		idx, seen := byDesignator[dedupKey(addr)]
		if !seen {
			byDesignator[dedupKey(addr)] = len(merged)
			merged = append(merged, addr)

			continue
		}

		stats.Duplicates++

		enriched := enrich(merged[idx], addr)
		if enriched != merged[idx] {
			stats.SecondaryWins++

			m.logger.Debug("secondary source enriched record",
				"designator", addr.Designator)
		}

		merged[idx] = enriched
	}

	sortByDesignator(merged)

	return merged, stats
}

// dedupKey identifies a catalog entry. Isolated detachments share one
// designator group and are told apart by box number, so the box number is
// part of the key for them.
func dedupKey(addr models.Address) string {
	if addr.BoxNumber == nil {
		return addr.Designator
	}

	return fmt.Sprintf("%s#%d", addr.Designator, *addr.BoxNumber)
}

// enrich folds a later record into an earlier one. The earlier record's
// fields stay unless the later record is strictly more complete.
func enrich(first, later models.Address) models.Address {
	out := first

	if !first.HasCountryCode() && later.HasCountryCode() {
		out.CountryCode = later.CountryCode

		if later.CountryName != "" {
			out.CountryName = later.CountryName
		}
	}

	if first.Type == models.TypeStatic && later.Type != models.TypeStatic {
		out.Type = later.Type
	}

	if first.Postcode == "" && later.Postcode != "" {
		out.Postcode = later.Postcode
	}

	return out
}

// sortByDesignator orders parseable designators ascending by their numeric
// component. Unparseable designators keep their relative order and sort
// after every parseable one.
func sortByDesignator(addrs []models.Address) {
	sort.SliceStable(addrs, func(i, j int) bool {
		ni, iOK := addrs[i].DesignatorNumber()
		nj, jOK := addrs[j].DesignatorNumber()

		switch {
		case iOK && jOK:
			if ni != nj {
				return ni < nj
			}
			// Detachments share a designator; order them by box number.
			if addrs[i].BoxNumber != nil && addrs[j].BoxNumber != nil {
				return *addrs[i].BoxNumber < *addrs[j].BoxNumber
			}

			return false
		case iOK:
			return true
		default:
			return false
		}
	})
}
