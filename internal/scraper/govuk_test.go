package scraper

import (
	"errors"
	"testing"

	"bfpogen/internal/logger"
	"bfpogen/internal/models"
)

const govukFixture = `<!DOCTYPE html>
<html><body>
<h2 id="germany-bfpo-locations">Germany BFPO locations</h2>
<table>
<tr><th>Location</th><th>BFPO number</th><th>Postcode</th></tr>
<tr><td>Bielefeld</td><td>39</td><td>BF1 4AD</td></tr>
<tr><td>Sennelager</td><td>16</td><td>BF1 4AA</td></tr>
</table>
<h2 id="uk-bfpo-locations">UK BFPO locations</h2>
<div><table>
<tr><th>Location</th><th>BFPO number</th><th>Postcode</th></tr>
<tr><td>Lisburn</td><td>825</td><td>BF1 5AB</td></tr>
</table></div>
<h2 id="rest-of-europe-bfpo-locations">Rest of Europe BFPO locations</h2>
<table>
<tr><th>Location</th><th>BFPO number</th><th>Postcode</th><th>Country</th></tr>
<tr><td>Dhekelia</td><td>58</td><td>BF1 2AT</td><td>Cyprus</td></tr>
</table>
<h2 id="rest-of-the-world-bfpo-locations">Rest of the world BFPO locations</h2>
<table>
<tr><th>Location</th><th>BFPO number</th><th>Postcode</th><th>Country</th></tr>
<tr><td>Nairobi</td><td>10</td><td>BF1 3AA</td><td>Kenya</td></tr>
<tr><td>incomplete row</td><td>11</td></tr>
</table>
<h2 id="hm-ships">HM Ships</h2>
<table>
<tr><th>Ship</th><th>BFPO number</th><th>Postcode</th></tr>
<tr><td>HMS Daring</td><td>204</td><td>BF1 6AA</td></tr>
</table>
<h2 id="naval-parties">Naval parties</h2>
<table>
<tr><th>Location</th><th>BFPO number</th><th>Postcode</th></tr>
<tr><td>Diego Garcia NP 1002</td><td>485</td><td>BF1 7AA</td></tr>
</table>
<h2 id="operations">Operations</h2>
<table>
<tr><th>Operation</th><th>BFPO number</th><th>Postcode</th></tr>
<tr><td>OP NEWCOMBE</td><td>110</td><td>BF1 8AA</td></tr>
</table>
<h2 id="exercises">Exercises</h2>
<table>
<tr><th>Exercise</th><th>BFPO number</th><th>Postcode</th></tr>
<tr><td>EX SAIF SAREEA</td><td>655</td><td>BF1 9AA</td></tr>
</table>
</body></html>`

func TestGOVUKParser_Parse(t *testing.T) {
	p := NewGOVUKParser(logger.Discard())

	records, err := p.Parse([]byte(govukFixture))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// 2 Germany + 1 UK + 1 Europe + 1 world + 1 ship + 1 naval party +
	// 1 operation + 1 exercise; the short world row is skipped.
	if len(records) != 9 {
		t.Fatalf("parsed %d records, want 9", len(records))
	}

	byDesignator := make(map[string]models.RawRecord)
	for _, r := range records {
		byDesignator[r.Designator] = r

		if r.Origin != models.OriginGOVUK {
			t.Errorf("record %s has origin %s", r.Designator, r.Origin)
		}
	}

	tests := []struct {
		designator string
		location   string
		postcode   string
		country    string
	}{
		{"39", "Bielefeld", "BF1 4AD", "Germany"},
		{"825", "Lisburn", "BF1 5AB", "United Kingdom"},
		{"58", "Dhekelia", "BF1 2AT", "Cyprus"},
		{"10", "Nairobi", "BF1 3AA", "Kenya"},
		{"204", "HMS Daring", "BF1 6AA", "United Kingdom"},
		{"485", "Diego Garcia NP 1002", "BF1 7AA", "British Indian Ocean Territory"},
		{"110", "OP NEWCOMBE", "BF1 8AA", "United Kingdom"},
		{"655", "EX SAIF SAREEA", "BF1 9AA", "United Kingdom"},
	}

	for _, tt := range tests {
		rec, ok := byDesignator[tt.designator]
		if !ok {
			t.Errorf("missing record for designator %s", tt.designator)

			continue
		}

		if rec.Location != tt.location {
			t.Errorf("%s: Location = %q, want %q", tt.designator, rec.Location, tt.location)
		}

		if rec.Postcode != tt.postcode {
			t.Errorf("%s: Postcode = %q, want %q", tt.designator, rec.Postcode, tt.postcode)
		}

		if rec.Country != tt.country {
			t.Errorf("%s: Country = %q, want %q", tt.designator, rec.Country, tt.country)
		}
	}
}

func TestGOVUKParser_MissingSectionsTolerated(t *testing.T) {
	p := NewGOVUKParser(logger.Discard())

	page := `<html><body>
<h2 id="germany-bfpo-locations">Germany</h2>
<table>
<tr><th>Location</th><th>Number</th><th>Postcode</th></tr>
<tr><td>Bielefeld</td><td>39</td><td>BF1 4AD</td></tr>
</table>
</body></html>`

	records, err := p.Parse([]byte(page))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("parsed %d records, want 1", len(records))
	}
}

func TestGOVUKParser_NoTables(t *testing.T) {
	p := NewGOVUKParser(logger.Discard())

	_, err := p.Parse([]byte("<html><body><p>maintenance page</p></body></html>"))
	if !errors.Is(err, ErrNoTables) {
		t.Errorf("error = %v, want ErrNoTables", err)
	}
}
