// Package scraper provides HTTP fetching and HTML parsing for team
// schedule/results pages on baseball-reference.com.
//
// A TeamScraper owns a per-season cache of raw page markup, so repeated
// scrapes of the same season within a session fetch the page only once. Each
// scrape is a single linear pipeline: validate the request, fetch or reuse
// cached markup, parse the results table into typed game records, and trim
// the records to the requested date range.
package scraper
