package classifier

import (
	"testing"

	"bfpogen/internal/models"
)

func TestClassify_EachRule(t *testing.T) {
	tests := []struct {
		name     string
		origin   models.Origin
		location string
		raw      models.RawRecord
		want     models.AddressType
	}{
		{"fcdo origin", models.OriginFCDO, "British Embassy Ankara", models.RawRecord{}, models.TypeFCDO},
		{"detachment row", models.OriginGOVUK, "ATC Oberstdorf", models.RawRecord{Detachment: true}, models.TypeDetachment},
		{"ship prefix", models.OriginGOVUK, "HMS Daring", models.RawRecord{}, models.TypeShip},
		{"rfa prefix", models.OriginGOVUK, "RFA Tidespring", models.RawRecord{}, models.TypeShip},
		{"known vessel without prefix", models.OriginGOVUK, "Prince of Wales", models.RawRecord{}, models.TypeShip},
		{"operation prefix", models.OriginGOVUK, "OP NEWCOMBE", models.RawRecord{}, models.TypeOperation},
		{"operation word", models.OriginGOVUK, "Operation Kipion", models.RawRecord{}, models.TypeOperation},
		{"exercise prefix", models.OriginGOVUK, "EX SAIF SAREEA", models.RawRecord{}, models.TypeExercise},
		{"naval party", models.OriginGOVUK, "Diego Garcia NP 1002", models.RawRecord{}, models.TypeNavalParty},
		{"naval party long form", models.OriginGOVUK, "Naval Party 1022 Gibraltar", models.RawRecord{}, models.TypeNavalParty},
		{"default static", models.OriginGOVUK, "Dhekelia", models.RawRecord{}, models.TypeStatic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.origin, tt.location, tt.raw)
			if got != tt.want {
				t.Errorf("Classify(%s, %q) = %s, want %s", tt.origin, tt.location, got, tt.want)
			}
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// FCDO origin beats every text heuristic.
	got := Classify(models.OriginFCDO, "HMS Daring", models.RawRecord{})
	if got != models.TypeFCDO {
		t.Errorf("FCDO origin should win over vessel text, got %s", got)
	}

	// Detachment membership beats vessel text.
	got = Classify(models.OriginGOVUK, "HMS Caledonia Detachment", models.RawRecord{Detachment: true})
	if got != models.TypeDetachment {
		t.Errorf("detachment row should win over vessel text, got %s", got)
	}

	// An operation hosted at a naval party classifies as operation: the
	// operation rule precedes the naval-party rule.
	got = Classify(models.OriginGOVUK, "OP KIPION NP 1023", models.RawRecord{})
	if got != models.TypeOperation {
		t.Errorf("operation should win over naval party, got %s", got)
	}

	// A vessel assigned to an operation classifies as ship.
	got = Classify(models.OriginGOVUK, "HMS Duncan OP SHADER", models.RawRecord{})
	if got != models.TypeShip {
		t.Errorf("vessel should win over operation, got %s", got)
	}
}

func TestClassify_NeverFails(t *testing.T) {
	// Degenerate inputs still terminate in static.
	for _, loc := range []string{"", "   ", "???", "NP", "OPEN DAY CENTRE"} {
		got := Classify(models.OriginGOVUK, loc, models.RawRecord{})
		if !got.Valid() {
			t.Errorf("Classify produced invalid tag %q for %q", got, loc)
		}
	}

	// "OPEN DAY CENTRE" starts with OP but not "OP " token.
	if got := Classify(models.OriginGOVUK, "OPEN DAY CENTRE", models.RawRecord{}); got != models.TypeStatic {
		t.Errorf("OPEN should not match the OP prefix, got %s", got)
	}
}

func TestRuleTags_OrderIsStable(t *testing.T) {
	want := []models.AddressType{
		models.TypeFCDO,
		models.TypeDetachment,
		models.TypeShip,
		models.TypeOperation,
		models.TypeExercise,
		models.TypeNavalParty,
		models.TypeStatic,
	}

	got := RuleTags()
	if len(got) != len(want) {
		t.Fatalf("RuleTags() returned %d tags, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule %d = %s, want %s", i, got[i], want[i])
		}
	}
}
