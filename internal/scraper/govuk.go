package scraper

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"bfpogen/internal/logger"
	"bfpogen/internal/models"
	"bfpogen/pkg/utils"
)

// ErrNoTables indicates the page yielded no recognizable location tables.
var ErrNoTables = errors.New("no location tables found in page")

// govukSection describes one heading-anchored table on the locations page.
// Tables carry location, designator and postcode columns; a fourth column,
// when present, holds the country. Sections without a country column fall
// back to the section's implied country.
type govukSection struct {
	headingID      string
	impliedCountry string
	minCells       int
}

// The nine sections of the GOV.UK BFPO locations page. Isolated
// detachments are deliberately absent: they come from built-in
// configuration, not from scraping.
var govukSections = []govukSection{
	{headingID: "germany-bfpo-locations", impliedCountry: "Germany", minCells: 3},
	{headingID: "uk-bfpo-locations", impliedCountry: "United Kingdom", minCells: 3},
	{headingID: "rest-of-europe-bfpo-locations", minCells: 4},
	{headingID: "rest-of-the-world-bfpo-locations", minCells: 4},
	{headingID: "hm-ships", impliedCountry: "United Kingdom", minCells: 3},
	{headingID: "naval-parties", minCells: 3},
	{headingID: "operations", impliedCountry: "United Kingdom", minCells: 3},
	{headingID: "exercises", impliedCountry: "United Kingdom", minCells: 3},
}

// GOVUKParser extracts raw records from the GOV.UK locations page.
type GOVUKParser struct {
	logger *logger.Logger
}

// NewGOVUKParser creates a new parser instance.
func NewGOVUKParser(log *logger.Logger) *GOVUKParser {
	return &GOVUKParser{logger: log}
}

// Parse walks the page and emits one raw record per table row.
func (p *GOVUKParser) Parse(page []byte) ([]models.RawRecord, error) {
	root, err := html.Parse(strings.NewReader(string(page)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var records []models.RawRecord

	found := 0

	for _, section := range govukSections {
		heading := findByID(root, section.headingID)
		if heading == nil {
			p.logger.Warn("section heading not found", "id", section.headingID)

			continue
		}

		table := nextTable(heading)
		if table == nil {
			p.logger.Warn("section has no table", "id", section.headingID)

			continue
		}

		found++

		rows := tableRows(table)
		for _, cells := range rows {
			if len(cells) < section.minCells {
				continue
			}

			rec := models.RawRecord{
				Origin:     models.OriginGOVUK,
				Location:   cells[0],
				Designator: cells[1],
				Postcode:   cells[2],
			}

			if len(cells) >= 4 && cells[3] != "" {
				rec.Country = cells[3]
			} else if section.headingID == "naval-parties" {
				rec.Country = InferCountry(rec.Location)
			} else {
				rec.Country = section.impliedCountry
			}

			records = append(records, rec)
		}

		p.logger.Debug("parsed section", "id", section.headingID, "rows", len(rows))
	}

	if found == 0 {
		return nil, ErrNoTables
	}

	return records, nil
}

// findByID depth-first searches for the element with the given id attribute.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}

	return nil
}

// nextTable returns the first table element following the heading in
// document order.
func nextTable(heading *html.Node) *html.Node {
	for n := heading; n != nil; n = nextInDocument(n, heading) {
		if n != heading && n.Type == html.ElementNode && n.Data == "table" {
			return n
		}
	}

	return nil
}

// nextInDocument advances depth-first through the document, never
// descending back into the subtree rooted at start.
func nextInDocument(n, start *html.Node) *html.Node {
	if n != start && n.FirstChild != nil {
		return n.FirstChild
	}

	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}

		n = n.Parent
	}

	return nil
}

// tableRows extracts the cell text of every data row, skipping the header.
func tableRows(table *html.Node) [][]string {
	var rows [][]string

	var walk func(n *html.Node)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			cells := rowCells(n)
			if len(cells) > 0 {
				rows = append(rows, cells)
			}

			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(table)

	// First row is the header.
	if len(rows) > 0 {
		rows = rows[1:]
	}

	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, utils.CollapseWhitespace(nodeText(c)))
		}
	}

	return cells
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var b strings.Builder

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
		b.WriteString(" ")
	}

	return b.String()
}
