// Package strictdate validates that a string is a syntactically
// well-formed, calendar-correct RFC 3339 date-time.
//
// # Overview
//
// The package is a cheap, allocation-free gate in front of date parsing:
// downstream code that builds a timestamp from a string can reject bad
// input up front instead of letting a lenient parser silently roll an
// impossible date (April 31, February 29 in a common year) over into a
// different valid one.
//
// The accepted shape is the extended calendar date-time form, and only
// that form — no week dates, no ordinal dates, no basic (separator-free)
// variants, no partial dates or truncated times:
//
//	datetime := date "T" time offset
//	date     := YYYY "-" MM "-" DD
//	time     := HH ":" mm ":" ss fraction?
//	fraction := "." DIGIT{1,3}
//	offset   := "Z" | ("+" | "-") HH ":" mm
//
// Matching is strict:
//   - literals are case-sensitive — lowercase 't' or 'z' is rejected
//   - the whole input must match; no leading or trailing characters,
//     including whitespace and newlines
//   - the day is checked against the month and the Gregorian leap-year
//     rule (Y%4 == 0 && Y%100 != 0 || Y%400 == 0)
//   - second 60 (leap second) is rejected
//   - the signed offset must lie in the real-world range -12:00 to
//     +14:00 inclusive; +14 admits only :00 minutes
//
// # Usage
//
//	if !strictdate.Matches(input) {
//	    // reject before constructing a time value
//	}
//
//	f, ok := strictdate.Recognize("2038-01-19T03:14:07.045+13:59")
//	// f.Year == 2038, f.Fraction == "045", f.Offset.Hours == 13
//	// f.String() reproduces the input byte-for-byte
//
// For struct-field validation there is a rule-object form:
//
//	var ts strictdate.DateTime = "2025-11-02T10:20:30Z"
//	if err := ts.Check(); err != nil { ... }
//
// # Guarantees
//
// Both entry points are pure functions: no state is kept between calls,
// nothing is logged, and malformed input of any kind — empty strings,
// control characters, NUL bytes — yields a plain rejection rather than
// a panic. Matching is a single left-to-right pass, so the running time
// is linear in the input length with no backtracking; the functions are
// safe to call concurrently without synchronisation.
package strictdate
