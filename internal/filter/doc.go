// Package filter narrows game record sets to a requested date range.
//
// The range is inclusive on both ends and preserves record order. Records
// are filtered after type coercion, so the comparison is on real calendar
// dates rather than the site's year-less date text.
package filter
