package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ballclub/team-results/internal/game"
	"github.com/ballclub/team-results/internal/logger"
)

// parseResults extracts game records from raw schedule page markup. The
// first table on the page is the results table; its absence means the
// team/season combination has no data.
func parseResults(markup []byte, builder *game.Builder) ([]game.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoResultsTable
	}

	rows := table.Find("tbody tr")
	total := rows.Length()
	records := make([]game.Record, 0, total)

	var rowErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		// The final body row is a legend describing column meanings,
		// not a game.
		if i == total-1 {
			return false
		}

		cells := cellTexts(row)
		switch {
		case len(cells) >= game.CompletedCells:
			rec, err := builder.Completed(cells)
			if err != nil {
				rowErr = fmt.Errorf("row %d: %w", i, err)
				return false
			}
			records = append(records, rec)
		case len(cells) > 1:
			// Games that haven't been played yet only carry their
			// scheduling prefix. Rows that still don't yield a
			// record are dropped rather than failing the parse.
			rec, err := builder.Scheduled(cells)
			if err != nil {
				logger.Debug("dropping unparseable row", logger.Fields{
					"row":   i,
					"cells": len(cells),
				})
				return true
			}
			records = append(records, rec)
		default:
			// Repeated mid-table header rows have no data cells.
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return records, nil
}

// cellTexts extracts trimmed text from a row's data cells. The leading game
// number is a row header, not a data cell, so it never appears here.
func cellTexts(row *goquery.Selection) []string {
	var cells []string
	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}
