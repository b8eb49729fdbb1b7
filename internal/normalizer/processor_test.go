package normalizer

import (
	"testing"

	"bfpogen/internal/logger"
	"bfpogen/internal/models"
)

func TestProcessAll_DropAccounting(t *testing.T) {
	proc := NewProcessor(logger.Discard())

	raws := []models.RawRecord{
		// Valid.
		{Origin: models.OriginGOVUK, Designator: "58", Location: "Dhekelia", Country: "Cyprus"},
		// Missing location.
		{Origin: models.OriginGOVUK, Designator: "12", Country: "Germany"},
		// Missing country.
		{Origin: models.OriginGOVUK, Designator: "13", Location: "Somewhere"},
		// Malformed designator.
		{Origin: models.OriginGOVUK, Designator: "BFPO X", Location: "Nowhere", Country: "Germany"},
		// Malformed box number.
		{Origin: models.OriginGOVUK, Designator: "105", Location: "Det", Country: "Germany", BoxNumber: "bad", Detachment: true},
		// Valid FCDO.
		{Origin: models.OriginFCDO, Designator: "5309", Location: "British Embassy Ankara", Country: "Turkey"},
	}

	stats := models.NewRunStats()

	addrs := proc.ProcessAll(raws, stats)

	if len(addrs) != 2 {
		t.Fatalf("accepted %d records, want 2", len(addrs))
	}

	if stats.Accepted != 2 {
		t.Errorf("Accepted = %d, want 2", stats.Accepted)
	}

	if stats.IncompleteRecords != 2 {
		t.Errorf("IncompleteRecords = %d, want 2", stats.IncompleteRecords)
	}

	if stats.MalformedDesignators != 1 {
		t.Errorf("MalformedDesignators = %d, want 1", stats.MalformedDesignators)
	}

	if stats.MalformedBoxNumbers != 1 {
		t.Errorf("MalformedBoxNumbers = %d, want 1", stats.MalformedBoxNumbers)
	}

	if stats.Dropped() != 4 {
		t.Errorf("Dropped() = %d, want 4", stats.Dropped())
	}

	if stats.Seen() != 6 {
		t.Errorf("Seen() = %d, want 6", stats.Seen())
	}

	if stats.BySource[models.OriginGOVUK] != 1 || stats.BySource[models.OriginFCDO] != 1 {
		t.Errorf("BySource = %v, want one accepted per origin", stats.BySource)
	}
}

func TestProcess_EndToEndExample(t *testing.T) {
	// The canonical worked example: a plain GOV.UK row with no matching
	// heuristic normalizes to a static record with a resolved code.
	proc := NewProcessor(logger.Discard())

	addr, err := proc.Process(models.RawRecord{
		Origin:     models.OriginGOVUK,
		Designator: "BFPO58",
		Location:   "Dhekelia",
		Country:    "Cyprus",
	})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	want := models.Address{
		Designator:  "BFPO 58",
		Location:    "Dhekelia",
		CountryName: "Cyprus",
		CountryCode: "CY",
		Type:        models.TypeStatic,
	}

	if addr != want {
		t.Errorf("Process() = %+v, want %+v", addr, want)
	}
}
