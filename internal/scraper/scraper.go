package scraper

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ballclub/team-results/internal/filter"
	"github.com/ballclub/team-results/internal/game"
	"github.com/ballclub/team-results/internal/logger"
)

// TeamScraper pulls one team's game results for a date range within a
// single season. It caches each season's raw markup for its own lifetime,
// so scraping several ranges of the same season fetches the page once.
type TeamScraper struct {
	team    string
	start   time.Time
	end     time.Time
	fetcher Fetcher
	cache   *SeasonCache
}

// New creates a TeamScraper for the given team abbreviation using the
// default HTTP fetcher.
func New(team string) *TeamScraper {
	return NewWithFetcher(team, NewHTTPFetcher(DefaultBaseURL))
}

// NewWithFetcher creates a TeamScraper with a custom page fetcher.
func NewWithFetcher(team string, fetcher Fetcher) *TeamScraper {
	return &TeamScraper{
		team:    normalizeTeam(team),
		fetcher: fetcher,
		cache:   NewSeasonCache(),
	}
}

// SetTeam changes the team to scrape. The code is normalized to uppercase.
func (s *TeamScraper) SetTeam(team string) {
	s.team = normalizeTeam(team)
}

// Team returns the normalized team abbreviation.
func (s *TeamScraper) Team() string {
	return s.team
}

// SetSeason sets the date range to cover a whole season year.
func (s *TeamScraper) SetSeason(year int) error {
	return s.SetDateRange(
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
}

// SetDateRange sets the inclusive date range to scrape. Both dates must be
// set, fall in the same season year, be properly ordered, and not lie in a
// future season.
func (s *TeamScraper) SetDateRange(start, end time.Time) error {
	if err := validateRange(start, end); err != nil {
		return err
	}
	s.start = start
	s.end = end
	return nil
}

// Scrape fetches (or reuses cached) markup for the request's season, parses
// the results table, and returns the games inside the requested date range.
func (s *TeamScraper) Scrape() ([]game.Record, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	year := s.start.Year()
	markup, ok := s.cache.Get(year)
	if ok {
		logger.Debug("season cache hit", logger.Fields{
			"team": s.team,
			"year": year,
		})
	} else {
		logger.Debug("fetching schedule page", logger.Fields{
			"team": s.team,
			"year": year,
		})
		fetched, err := s.fetcher.Fetch(s.team, year)
		if err != nil {
			return nil, err
		}
		s.cache.Set(year, fetched)
		markup = fetched
	}

	records, err := parseResults(markup, game.NewBuilder(s.team, year))
	if err != nil {
		return nil, err
	}

	return filter.Range{Start: s.start, End: s.end}.Apply(records), nil
}

// SetSource primes the season cache with markup obtained elsewhere, e.g. a
// saved snapshot file. The date range must be set first so the season year
// is known.
func (s *TeamScraper) SetSource(markup []byte) error {
	if err := s.validate(); err != nil {
		return err
	}
	s.cache.Set(s.start.Year(), markup)
	return nil
}

// Source returns the cached markup for the request's season.
func (s *TeamScraper) Source() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	markup, ok := s.cache.Get(s.start.Year())
	if !ok {
		return nil, fmt.Errorf("no cached source for season %d", s.start.Year())
	}
	return markup, nil
}

// SaveSource writes the cached markup for the request's season to a file,
// as a debugging/snapshot aid.
func (s *TeamScraper) SaveSource(path string) error {
	markup, err := s.Source()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, markup, 0644); err != nil {
		return fmt.Errorf("writing source snapshot: %w", err)
	}
	return nil
}

// validate checks the full request before any network access.
func (s *TeamScraper) validate() error {
	if s.team == "" {
		return &InvalidRequestError{Reason: "must specify a team"}
	}
	return validateRange(s.start, s.end)
}

func validateRange(start, end time.Time) error {
	if start.IsZero() {
		return &InvalidRequestError{Reason: "must specify a start date"}
	}
	if end.IsZero() {
		return &InvalidRequestError{Reason: "must specify an end date"}
	}
	if start.Year() != end.Year() {
		return &InvalidRequestError{Reason: "start and end dates must be from the same season"}
	}
	if start.After(end) {
		return &InvalidRequestError{Reason: "start date must not be after end date"}
	}
	if end.Year() > time.Now().Year() {
		return &InvalidRequestError{Reason: "season cannot be past the current year"}
	}
	return nil
}

func normalizeTeam(team string) string {
	return strings.ToUpper(strings.TrimSpace(team))
}
