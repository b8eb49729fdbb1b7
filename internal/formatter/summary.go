// Package formatter renders the run report printed after a generation
// pass: aligned tables of catalog statistics and drop counts.
package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"bfpogen/internal/merger"
	"bfpogen/internal/models"
	"bfpogen/internal/serializer"
)

// RenderSummary renders the full run report.
func RenderSummary(stats *serializer.Stats, run *models.RunStats, merge merger.Stats) string {
	var b strings.Builder

	b.WriteString("Catalog summary\n")
	b.WriteString(renderTable(
		[]string{"Type", "Count"},
		typeRows(stats),
	))

	b.WriteString("\nSources\n")
	b.WriteString(renderTable(
		[]string{"Stage", "Count"},
		[][]string{
			{"raw records seen", fmt.Sprintf("%d", run.Seen())},
			{"accepted (GOVUK)", fmt.Sprintf("%d", run.BySource[models.OriginGOVUK])},
			{"accepted (FCDO)", fmt.Sprintf("%d", run.BySource[models.OriginFCDO])},
			{"dropped: malformed designator", fmt.Sprintf("%d", run.MalformedDesignators)},
			{"dropped: malformed box number", fmt.Sprintf("%d", run.MalformedBoxNumbers)},
			{"dropped: incomplete record", fmt.Sprintf("%d", run.IncompleteRecords)},
			{"duplicate designators merged", fmt.Sprintf("%d", merge.Duplicates)},
			{"secondary-source enrichments", fmt.Sprintf("%d", merge.SecondaryWins)},
		},
	))

	b.WriteString("\nCountry codes\n")
	b.WriteString(renderTable(
		[]string{"Resolution", "Count"},
		[][]string{
			{"resolved", fmt.Sprintf("%d", stats.WithCountry)},
			{"unresolved", fmt.Sprintf("%d", stats.WithoutCode)},
		},
	))

	if len(stats.UnmappedNames) > 0 {
		b.WriteString("\nUnmapped country names: ")
		b.WriteString(strings.Join(stats.UnmappedNames, ", "))
		b.WriteString("\n")
	}

	return b.String()
}

func typeRows(stats *serializer.Stats) [][]string {
	rows := make([][]string, 0, len(models.AllTypes)+1)

	for _, t := range models.AllTypes {
		rows = append(rows, []string{string(t), fmt.Sprintf("%d", stats.ByType[t])})
	}

	rows = append(rows, []string{"total", fmt.Sprintf("%d", stats.Total)})

	return rows
}

// renderTable aligns columns by display width so non-ASCII place names do
// not break the layout.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var b strings.Builder

	writeRow := func(cells []string) {
		b.WriteString("|")

		for i, cell := range cells {
			pad := widths[i] - runewidth.StringWidth(cell)
			b.WriteString(" " + cell + strings.Repeat(" ", pad) + " |")
		}

		b.WriteString("\n")
	}

	writeRow(header)

	b.WriteString("|")

	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2) + "|")
	}

	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}
