package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell positions within a results-table row. The leading game-number cell is
// a row header on the site, not a data cell, so positions start at the date.
// Position 2 is the boxscore link; it has no header name and carries no
// data, so it is never read.
const (
	colDate = iota
	colTeam
	colBoxscore
	colHomeAway
	colOpponent
	colResult
	colRunsScored
	colRunsAllowed
	colInnings
	colWinLoss
	colRank
	colGamesBack
	colWinningPitcher
	colLosingPitcher
	colSavePitcher
	colDayNight
	colAttendance
	colStreak

	// CompletedCells is the minimum cell count of a completed game row.
	// Rows with fewer cells are scheduled games or repeated header rows.
	CompletedCells = colStreak + 1

	// scheduledCells is how much of a scheduled row is kept: the
	// date/team/home-away/opponent scheduling prefix.
	scheduledCells = colOpponent + 1
)

// Builder normalizes raw row cells into Records for one team and season.
// It fills predictable blank cells with their documented defaults before
// coercing field types.
type Builder struct {
	team string
	year int
}

// NewBuilder creates a Builder for the given team code and season year.
func NewBuilder(team string, year int) *Builder {
	return &Builder{team: team, year: year}
}

// Completed builds a Record from a completed game's row cells. The cells
// slice must hold at least CompletedCells entries.
func (b *Builder) Completed(cells []string) (Record, error) {
	if len(cells) < CompletedCells {
		return Record{}, fmt.Errorf("completed row has %d cells, want at least %d", len(cells), CompletedCells)
	}

	date, err := ParseDate(cells[colDate], b.year)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Status: StatusCompleted,
		Date:   date,
		// Older seasons omit the team abbreviation on their tables.
		Team: defaultString(cells[colTeam], b.team),
		// The home/away cell only has an entry for away games.
		HomeAway:  defaultString(cells[colHomeAway], "Home"),
		Opponent:  cells[colOpponent],
		Result:    cells[colResult],
		WinLoss:   cells[colWinLoss],
		GamesBack: cells[colGamesBack],
		// Tie games have no pitcher win or loss; games without a save
		// have a blank save cell.
		WinningPitcher: defaultString(cells[colWinningPitcher], "None"),
		LosingPitcher:  defaultString(cells[colLosingPitcher], "None"),
		SavePitcher:    defaultString(cells[colSavePitcher], "None"),
		DayNight:       defaultString(cells[colDayNight], "Unknown"),
		Streak:         parseStreak(cells[colStreak]),
	}

	if rec.RunsScored, err = parseStat(cells[colRunsScored]); err != nil {
		return Record{}, fmt.Errorf("runs scored: %w", err)
	}
	if rec.RunsAllowed, err = parseStat(cells[colRunsAllowed]); err != nil {
		return Record{}, fmt.Errorf("runs allowed: %w", err)
	}
	// A blank innings cell means no extra innings were played.
	if rec.Innings, err = parseStat(defaultString(cells[colInnings], "9")); err != nil {
		return Record{}, fmt.Errorf("innings: %w", err)
	}
	if rec.Rank, err = parseStat(cells[colRank]); err != nil {
		return Record{}, fmt.Errorf("rank: %w", err)
	}
	if rec.Attendance, err = parseStat(defaultString(cells[colAttendance], "Unknown")); err != nil {
		return Record{}, fmt.Errorf("attendance: %w", err)
	}

	return rec, nil
}

// Scheduled builds a Record from a not-yet-played game's row. Only the
// scheduling prefix is kept; stats remain missing.
func (b *Builder) Scheduled(cells []string) (Record, error) {
	if len(cells) < scheduledCells {
		padded := make([]string, scheduledCells)
		copy(padded, cells)
		cells = padded
	}

	date, err := ParseDate(cells[colDate], b.year)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Status:   StatusScheduled,
		Date:     date,
		Team:     defaultString(cells[colTeam], b.team),
		HomeAway: defaultString(cells[colHomeAway], "Home"),
		Opponent: cells[colOpponent],
	}, nil
}

// defaultString substitutes def for a blank cell value.
func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// parseStreak converts streak notation ("+++" or "--") into a signed run
// length. A blank cell yields an invalid Streak.
func parseStreak(s string) Streak {
	if s == "" {
		return Streak{}
	}
	length := len(s)
	if strings.HasPrefix(s, "-") {
		length = -length
	}
	return Streak{Length: length, Valid: true}
}

// parseStat converts a numeric cell into a Stat. Thousands separators are
// stripped; "Unknown" and blank cells yield a missing value.
func parseStat(s string) (Stat, error) {
	if s == "" || s == "Unknown" {
		return Stat{}, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return Stat{}, fmt.Errorf("parsing numeric cell %q: %w", s, err)
	}
	return NewStat(v), nil
}
