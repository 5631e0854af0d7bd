package game

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Status distinguishes completed games from scheduled (not yet played) ones.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusScheduled Status = "scheduled"
)

// Stat holds a numeric stat that may be absent. Attendance was not recorded
// for some early seasons, and scheduled games have no stats at all, so every
// numeric column needs a missing state alongside real values.
type Stat struct {
	Value float64
	Valid bool
}

// NewStat returns a valid Stat with the given value.
func NewStat(v float64) Stat {
	return Stat{Value: v, Valid: true}
}

// MarshalJSON renders a missing stat as null.
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON accepts a number or null.
func (s *Stat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Stat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Stat{Value: v, Valid: true}
	return nil
}

// String renders the stat for text/CSV output; missing stats render empty.
func (s Stat) String() string {
	if !s.Valid {
		return ""
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}

// Streak is a signed run of consecutive same-result games. Positive lengths
// are winning streaks, negative are losing streaks. Valid is false when the
// source column was blank.
type Streak struct {
	Length int
	Valid  bool
}

// MarshalJSON renders a missing streak as null.
func (s Streak) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Length)
}

// UnmarshalJSON accepts a number or null.
func (s *Streak) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Streak{}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Streak{Length: v, Valid: true}
	return nil
}

// String renders the streak with an explicit sign, e.g. "+3" or "-2".
func (s Streak) String() string {
	if !s.Valid {
		return ""
	}
	return fmt.Sprintf("%+d", s.Length)
}

// Record is one game from a team's schedule/results table. A completed game
// has every field populated (missing stats excepted); a scheduled game
// carries only the scheduling prefix: Date, Team, HomeAway, and Opponent.
type Record struct {
	Status         Status    `json:"status"`
	Date           time.Time `json:"date"`
	Team           string    `json:"team"`
	HomeAway       string    `json:"home_away"`
	Opponent       string    `json:"opponent"`
	Result         string    `json:"result,omitempty"`
	RunsScored     Stat      `json:"runs_scored"`
	RunsAllowed    Stat      `json:"runs_allowed"`
	Innings        Stat      `json:"innings"`
	WinLoss        string    `json:"win_loss,omitempty"`
	Rank           Stat      `json:"rank"`
	GamesBack      string    `json:"games_back,omitempty"`
	WinningPitcher string    `json:"winning_pitcher,omitempty"`
	LosingPitcher  string    `json:"losing_pitcher,omitempty"`
	SavePitcher    string    `json:"save_pitcher,omitempty"`
	DayNight       string    `json:"day_night,omitempty"`
	Attendance     Stat      `json:"attendance"`
	Streak         Streak    `json:"streak"`
}

// Completed reports whether the record is a completed game.
func (r Record) Completed() bool {
	return r.Status == StatusCompleted
}
