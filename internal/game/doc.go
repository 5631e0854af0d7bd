// Package game provides typed records for team schedule/results rows.
//
// The game package defines the Record type that a parsed results-table row
// is normalized into, along with the builder that applies blank-cell
// defaults and coerces text cells (streak runs, attendance counts, dates
// without a year) into proper types. Rows are classified up front as
// completed or scheduled games; scheduled rows carry only their scheduling
// prefix.
package game
