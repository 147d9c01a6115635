// Package duration implements calendar durations held as named units.
//
// A Duration keeps years, months, weeks, days, hours, minutes, seconds and
// a sub-second microsecond pair as separate signed fields. Units never
// convert into one another: a month is 28 to 31 days and, with leap
// seconds, a minute is not always 60 seconds, so collapsing units would
// change meaning. {Week: 1} and {Day: 7} are distinct values, and 90
// minutes stays 90 minutes.
//
// # Text Form
//
// Parse and String implement the ISO 8601-2 duration form:
//
//	P1Y2M3DT4H5M6S
//	P3WT5H3M
//	PT-1.5S
//
// The date part uses designators Y, M, W, D; after the T delimiter the
// designators are H, M, S, with M meaning month before the T and minute
// after it. Each unit may appear at most once. Numbers may carry a minus
// sign, and the seconds value may carry a decimal fraction, which parses
// into the microsecond pair.
//
// # Microsecond Precision
//
// Microsecond holds a signed magnitude plus the number of significant
// fractional digits, 0 through 6. The precision is round-trip metadata,
// not a scale factor: {1000, 4} and {1000, 6} describe the same physical
// amount at different stated precision and compare unequal. String drops
// the pair entirely; the wire package carries it losslessly.
//
// # No Calendar Resolution
//
// A Duration is an amount of time, not a span between instants. The
// package never shifts dates and never converts a duration to absolute
// seconds; both need a calendar anchor that a bare duration does not
// carry. Arithmetic is fieldwise and carries nothing between units.
//
// # Equality
//
// Duration is a comparable struct; == is structural equality over all
// fields including the microsecond precision.
package duration
