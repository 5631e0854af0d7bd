// Package cli implements the team-results command line interface.
//
// The CLI scrapes one team's schedule/results for a season or an explicit
// date range and writes the games to stdout as a text table, JSON, or CSV.
// Raw page snapshots can be saved for debugging and reused on later runs to
// avoid refetching.
package cli
