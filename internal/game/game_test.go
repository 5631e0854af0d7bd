package game

import (
	"encoding/json"
	"testing"
)

func TestStatJSON(t *testing.T) {
	type row struct {
		Attendance Stat `json:"attendance"`
	}

	data, err := json.Marshal(row{Attendance: NewStat(39662)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"attendance":39662}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	data, err = json.Marshal(row{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"attendance":null}` {
		t.Errorf("missing stat should marshal as null, got %s", data)
	}

	var decoded row
	if err := json.Unmarshal([]byte(`{"attendance":null}`), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Attendance.Valid {
		t.Error("null should decode to a missing stat")
	}
}

func TestStreakString(t *testing.T) {
	if got := (Streak{Length: 3, Valid: true}).String(); got != "+3" {
		t.Errorf("got %q, want +3", got)
	}
	if got := (Streak{Length: -2, Valid: true}).String(); got != "-2" {
		t.Errorf("got %q, want -2", got)
	}
	if got := (Streak{}).String(); got != "" {
		t.Errorf("missing streak should render empty, got %q", got)
	}
}

func TestStatString(t *testing.T) {
	if got := NewStat(9).String(); got != "9" {
		t.Errorf("got %q, want 9", got)
	}
	if got := NewStat(1.5).String(); got != "1.5" {
		t.Errorf("got %q, want 1.5", got)
	}
	if got := (Stat{}).String(); got != "" {
		t.Errorf("missing stat should render empty, got %q", got)
	}
}
