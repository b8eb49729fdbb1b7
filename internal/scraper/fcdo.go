package scraper

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"bfpogen/internal/logger"
	"bfpogen/internal/models"
	"bfpogen/pkg/utils"
)

// FCDO spreadsheet errors.
var (
	ErrNoContentXML   = errors.New("spreadsheet has no content.xml")
	ErrNoColumnGroups = errors.New("no Location/BFPO No/Postcode column groups found")
)

// maxColumns caps repeated-cell expansion; ODS writers pad trailing cells
// with huge repeat counts.
const maxColumns = 64

// ODS content.xml shapes. encoding/xml matches on local names, which is
// enough here since the table: prefix carries no ambiguity for these
// elements.
type odsContent struct {
	Body struct {
		Spreadsheet struct {
			Tables []odsTable `xml:"table"`
		} `xml:"spreadsheet"`
	} `xml:"body"`
}

type odsTable struct {
	Name string   `xml:"name,attr"`
	Rows []odsRow `xml:"table-row"`
}

type odsRow struct {
	Cells []odsCell `xml:"table-cell"`
}

type odsCell struct {
	Repeated   int      `xml:"number-columns-repeated,attr"`
	Paragraphs []string `xml:"p"`
}

func (c *odsCell) text() string {
	return utils.CollapseWhitespace(strings.Join(c.Paragraphs, " "))
}

// FCDOParser decodes the FCDO indicator-list spreadsheet. The sheet lays
// its data out horizontally: repeated groups of Location, BFPO No and
// Postcode columns separated by blanks.
type FCDOParser struct {
	logger *logger.Logger
}

// NewFCDOParser creates a new parser instance.
func NewFCDOParser(log *logger.Logger) *FCDOParser {
	return &FCDOParser{logger: log}
}

// Parse decodes the ODS bytes and emits one raw record per populated
// column-group cell triple.
func (p *FCDOParser) Parse(ods []byte) ([]models.RawRecord, error) {
	rows, err := readSheet(ods)
	if err != nil {
		return nil, err
	}

	headerIdx, groups := findColumnGroups(rows)
	if len(groups) == 0 {
		return nil, ErrNoColumnGroups
	}

	p.logger.Debug("found column groups", "count", len(groups))

	var records []models.RawRecord

	for _, row := range rows[headerIdx+1:] {
		for _, g := range groups {
			if g+2 >= len(row) {
				continue
			}

			location := utils.CleanCell(row[g])
			designator := utils.CleanCell(row[g+1])
			postcode := utils.CleanCell(row[g+2])

			if location == "" || designator == "" {
				continue
			}

			records = append(records, models.RawRecord{
				Origin:     models.OriginFCDO,
				Location:   location,
				Designator: designator,
				Postcode:   postcode,
				Country:    InferCountry(location),
			})
		}
	}

	return records, nil
}

// readSheet unpacks the ODS zip and flattens the first sheet into rows of
// cell text.
func readSheet(ods []byte) ([][]string, error) {
	archive, err := zip.NewReader(bytes.NewReader(ods), int64(len(ods)))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet archive: %w", err)
	}

	var content []byte

	for _, f := range archive.File {
		if f.Name != "content.xml" {
			continue
		}

		rc, openErr := f.Open()
		if openErr != nil {
			return nil, fmt.Errorf("failed to open content.xml: %w", openErr)
		}

		content, err = io.ReadAll(rc)

		_ = rc.Close()

		if err != nil {
			return nil, fmt.Errorf("failed to read content.xml: %w", err)
		}

		break
	}

	if content == nil {
		return nil, ErrNoContentXML
	}

	var doc odsContent
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content.xml: %w", err)
	}

	tables := doc.Body.Spreadsheet.Tables
	if len(tables) == 0 {
		return nil, ErrNoColumnGroups
	}

	rows := make([][]string, 0, len(tables[0].Rows))

	for _, r := range tables[0].Rows {
		var cells []string

		for _, c := range r.Cells {
			repeat := c.Repeated
			if repeat < 1 {
				repeat = 1
			}

			text := c.text()
			for i := 0; i < repeat && len(cells) < maxColumns; i++ {
				cells = append(cells, text)
			}
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

// findColumnGroups locates the header row and the start index of every
// Location/BFPO No/Postcode triple in it.
func findColumnGroups(rows [][]string) (int, []int) {
	for idx, row := range rows {
		var groups []int

		for i := 0; i+2 < len(row); i++ {
			if strings.EqualFold(row[i], "Location") &&
				strings.EqualFold(row[i+1], "BFPO No") &&
				strings.EqualFold(row[i+2], "Postcode") {
				groups = append(groups, i)
			}
		}

		if len(groups) > 0 {
			return idx, groups
		}
	}

	return 0, nil
}
