package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://www.baseball-reference.com"
	UserAgent      = "team-results-cli/1.0 (github.com/ballclub/team-results)"
	Timeout        = 30 * time.Second
)

// Fetcher retrieves the raw schedule page markup for a team and season.
// Fetch failures are fatal to the scrape; nothing here retries.
type Fetcher interface {
	Fetch(team string, year int) ([]byte, error)
}

// HTTPFetcher fetches schedule pages over HTTP.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates an HTTPFetcher against the given base URL.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(Timeout)
	client.SetHeader("User-Agent", UserAgent)
	return &HTTPFetcher{client: client}
}

// Fetch retrieves the schedule/results page for one team and season.
func (f *HTTPFetcher) Fetch(team string, year int) ([]byte, error) {
	res, err := f.client.R().
		Get(fmt.Sprintf("/teams/%s/%d-schedule-scores.shtml", team, year))
	if err != nil {
		return nil, fmt.Errorf("fetching schedule page: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode())
	}
	return res.Body(), nil
}
