package cli

import (
	"strings"
	"testing"
)

func resetFlags() {
	flagTeam = ""
	flagSeason = 0
	flagStart = ""
	flagEnd = ""
	flagFormat = "text"
	flagSourceFile = ""
	flagSaveSource = ""
	flagDataDir = ""
	flagVerbose = false
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"team", "season", "start", "end", "format", "source-file", "save-source", "data-dir", "verbose"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s to be defined", name)
		}
	}
}

func TestRunScrape_InvalidFormat(t *testing.T) {
	resetFlags()
	flagTeam = "NYY"
	flagSeason = 2023
	flagFormat = "yaml"

	err := runScrape(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Fatalf("expected an invalid format error, got %v", err)
	}
}

func TestRunScrape_SeasonRangeConflict(t *testing.T) {
	resetFlags()
	flagTeam = "NYY"
	flagSeason = 2023
	flagStart = "2023-04-01"

	err := runScrape(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Fatalf("expected a flag conflict error, got %v", err)
	}
}

func TestRunScrape_MissingRange(t *testing.T) {
	resetFlags()
	flagTeam = "NYY"

	err := runScrape(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "--season or both") {
		t.Fatalf("expected a missing range error, got %v", err)
	}
}

func TestRunScrape_BadStartDate(t *testing.T) {
	resetFlags()
	flagTeam = "NYY"
	flagStart = "April 1st"
	flagEnd = "2023-04-30"

	err := runScrape(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "invalid --start date") {
		t.Fatalf("expected a start date error, got %v", err)
	}
}
