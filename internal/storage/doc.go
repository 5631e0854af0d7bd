// Package storage persists raw schedule page snapshots on disk.
//
// Snapshots are the fetched markup for one team and season, stored as
// source_TEAM_YEAR.html under a data directory. Saved snapshots let later
// runs re-parse a season without hitting the network. The default location
// is ~/.local/share/team-results/.
package storage
