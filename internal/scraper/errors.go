package scraper

import "errors"

// ErrNoResultsTable indicates the fetched page had no results table. This
// usually means the team abbreviation is wrong or the team did not exist
// during the requested season.
var ErrNoResultsTable = errors.New("no results table found; verify the team abbreviation and that the team existed during that season")

// InvalidRequestError reports a scrape request that fails validation before
// any network access happens.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid scrape request: " + e.Reason
}

// IsInvalidRequest reports whether err is an InvalidRequestError.
func IsInvalidRequest(err error) bool {
	var reqErr *InvalidRequestError
	return errors.As(err, &reqErr)
}
