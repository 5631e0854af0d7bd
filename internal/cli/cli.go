package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ballclub/team-results/internal/logger"
	"github.com/ballclub/team-results/internal/scraper"
	"github.com/ballclub/team-results/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const dateFlagLayout = "2006-01-02"

var (
	flagTeam       string
	flagSeason     int
	flagStart      string
	flagEnd        string
	flagFormat     string
	flagSourceFile string
	flagSaveSource string
	flagDataDir    string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team-results",
		Short: "Pull a team's game results from baseball-reference.com",
		Long: `A CLI tool to pull one team's schedule/results for a date range
within a season from baseball-reference.com, normalized into typed rows.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagTeam, "team", "", "Team abbreviation, e.g. NYY (required)")
	cmd.Flags().IntVar(&flagSeason, "season", 0, "Season year to scrape (whole season)")
	cmd.Flags().StringVar(&flagStart, "start", "", "Start date, YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&flagEnd, "end", "", "End date, YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or csv")
	cmd.Flags().StringVar(&flagSourceFile, "source-file", "", "Parse a saved page instead of fetching")
	cmd.Flags().StringVar(&flagSaveSource, "save-source", "", "Write the season's raw page to this path")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Directory for reusable page snapshots")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("team")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	team := strings.ToUpper(strings.TrimSpace(flagTeam))
	if team == "" {
		return fmt.Errorf("--team is required")
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatCSV {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'csv')", flagFormat)
	}

	sc := scraper.New(team)
	if err := setRange(sc); err != nil {
		return err
	}
	year := seasonYear()

	var store *storage.Storage
	if flagDataDir != "" {
		var err error
		store, err = storage.New(flagDataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
	}

	if err := primeSource(sc, store, team, year); err != nil {
		return err
	}

	records, err := sc.Scrape()
	if err != nil {
		return fmt.Errorf("scraping results: %w", err)
	}

	if flagSaveSource != "" {
		if err := sc.SaveSource(flagSaveSource); err != nil {
			return fmt.Errorf("saving source: %w", err)
		}
		logger.Debug("saved raw source", logger.Fields{"path": flagSaveSource})
	}

	if store != nil {
		markup, err := sc.Source()
		if err != nil {
			return fmt.Errorf("reading cached source: %w", err)
		}
		if err := store.SaveSource(team, year, markup); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}

	result := &OutputResult{
		ScrapedAt: time.Now().UTC(),
		Team:      team,
		Season:    year,
		GameCount: len(records),
		Games:     records,
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// setRange applies the season or start/end flags to the scraper.
func setRange(sc *scraper.TeamScraper) error {
	switch {
	case flagSeason != 0 && (flagStart != "" || flagEnd != ""):
		return fmt.Errorf("--season cannot be combined with --start/--end")
	case flagSeason != 0:
		return sc.SetSeason(flagSeason)
	case flagStart != "" && flagEnd != "":
		start, err := time.Parse(dateFlagLayout, flagStart)
		if err != nil {
			return fmt.Errorf("invalid --start date: %w", err)
		}
		end, err := time.Parse(dateFlagLayout, flagEnd)
		if err != nil {
			return fmt.Errorf("invalid --end date: %w", err)
		}
		return sc.SetDateRange(start, end)
	default:
		return fmt.Errorf("specify --season or both --start and --end")
	}
}

// primeSource preloads the scraper's season cache from --source-file or a
// stored snapshot, so the scrape skips the network.
func primeSource(sc *scraper.TeamScraper, store *storage.Storage, team string, year int) error {
	if flagSourceFile != "" {
		markup, err := os.ReadFile(flagSourceFile)
		if err != nil {
			return fmt.Errorf("reading source file: %w", err)
		}
		return sc.SetSource(markup)
	}

	if store != nil {
		markup, found, err := store.LoadSource(team, year)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		if found {
			logger.Debug("reusing stored snapshot", logger.Fields{
				"team": team,
				"year": year,
			})
			return sc.SetSource(markup)
		}
	}

	return nil
}

// seasonYear resolves the season year from the active flags. Flag parsing
// has already validated that one of the forms is present.
func seasonYear() int {
	if flagSeason != 0 {
		return flagSeason
	}
	start, err := time.Parse(dateFlagLayout, flagStart)
	if err != nil {
		return 0
	}
	return start.Year()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
