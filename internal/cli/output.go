package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ballclub/team-results/internal/game"
	"github.com/jedib0t/go-pretty/v6/table"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)

const outputDateLayout = "2006-01-02"

// OutputResult contains data to be output
type OutputResult struct {
	ScrapedAt time.Time     `json:"scraped_at"`
	Team      string        `json:"team"`
	Season    int           `json:"season"`
	GameCount int           `json:"game_count"`
	Games     []game.Record `json:"games"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writeCSV(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as a human-readable table
func writeText(w io.Writer, result *OutputResult) error {
	if result.GameCount == 0 {
		fmt.Fprintln(w, "No games found in the requested range.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{
		"Date", "Tm", "H/A", "Opp", "W/L", "R", "RA", "Inn", "W-L", "Rank", "Attendance", "Streak",
	})
	for _, rec := range result.Games {
		t.AppendRow(table.Row{
			rec.Date.Format(outputDateLayout),
			rec.Team,
			rec.HomeAway,
			rec.Opponent,
			rec.Result,
			rec.RunsScored.String(),
			rec.RunsAllowed.String(),
			rec.Innings.String(),
			rec.WinLoss,
			rec.Rank.String(),
			rec.Attendance.String(),
			rec.Streak.String(),
		})
	}
	t.Render()

	fmt.Fprintf(w, "\n%s %d: %d games\n", result.Team, result.Season, result.GameCount)
	return nil
}

// writeCSV outputs all record fields as CSV rows
func writeCSV(w io.Writer, result *OutputResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"status", "date", "team", "home_away", "opponent", "result",
		"runs_scored", "runs_allowed", "innings", "win_loss", "rank",
		"games_back", "winning_pitcher", "losing_pitcher", "save_pitcher",
		"day_night", "attendance", "streak",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range result.Games {
		row := []string{
			string(rec.Status),
			rec.Date.Format(outputDateLayout),
			rec.Team,
			rec.HomeAway,
			rec.Opponent,
			rec.Result,
			rec.RunsScored.String(),
			rec.RunsAllowed.String(),
			rec.Innings.String(),
			rec.WinLoss,
			rec.Rank.String(),
			rec.GamesBack,
			rec.WinningPitcher,
			rec.LosingPitcher,
			rec.SavePitcher,
			rec.DayNight,
			rec.Attendance.String(),
			rec.Streak.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
