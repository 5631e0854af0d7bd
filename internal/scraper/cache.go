package scraper

// SeasonCache holds previously fetched raw page markup keyed by season year.
// It is owned by a single TeamScraper and lives as long as the scraper; no
// entries are ever evicted.
type SeasonCache struct {
	seasons map[int][]byte
}

// NewSeasonCache creates an empty season cache.
func NewSeasonCache() *SeasonCache {
	return &SeasonCache{
		seasons: make(map[int][]byte),
	}
}

// Get retrieves the cached markup for a season year.
func (c *SeasonCache) Get(year int) ([]byte, bool) {
	markup, ok := c.seasons[year]
	return markup, ok
}

// Set stores markup for a season year, replacing any previous entry.
func (c *SeasonCache) Set(year int, markup []byte) {
	c.seasons[year] = markup
}

// Size returns the number of cached seasons.
func (c *SeasonCache) Size() int {
	return len(c.seasons)
}
