package game

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout matches the schedule table's date cells, e.g. "Tuesday, Apr 4".
// The site omits the year; the season year is supplied by the caller.
const dateLayout = "Monday, Jan 2"

// ParseDate parses a schedule date cell into a calendar date in the given
// season year. Doubleheader games carry a parenthesized game number after
// the date ("Monday, Apr 3 (1)"); it is stripped before parsing.
func ParseDate(text string, year int) (time.Time, error) {
	if idx := strings.Index(text, " ("); idx >= 0 {
		text = text[:idx]
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing game date %q: %w", text, err)
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
