// Package validation provides Laravel-style input validation centred on
// strict timestamp fields.
//
// # Overview
//
// The package mirrors Laravel's Validator facade and its rule syntax.
// Rules are expressed as pipe-separated strings on a map of field names.
// The date-time rules delegate to the strictdate recognizer, so a field
// declared "datetime" accepts exactly the strict RFC 3339 set — a value
// like "2025-04-31T12:00:00Z" fails instead of rolling over to May 1.
//
// # Basic Usage
//
//	v := validation.Make(map[string]string{
//	    "starts_at": "2025-11-02T10:20:30Z",
//	    "ends_at":   "2025-11-02T18:00:00Z",
//	}, validation.Rules{
//	    "starts_at": "required|datetime",
//	    "ends_at":   "required|datetime|after:2025-11-02T10:20:30Z",
//	})
//
//	if v.Fails() {
//	    // v.Errors() returns *Errors with Bag map[string][]string
//	    // JSON: {"errors": {"field": ["message1", "message2"]}}
//	}
//
// # Available Rules
//
// Date-time rules:
//   - datetime      — strict RFC 3339 date-time (calendar-checked)
//   - datetime_utc  — strict date-time whose offset is the literal Z
//   - after:<ts>    — strictly later than <ts> on the UTC timeline
//   - before:<ts>   — strictly earlier than <ts> on the UTC timeline
//
// The <ts> parameter of after/before must itself be a strict date-time;
// a malformed parameter fails the rule. Comparison is offset-normalized:
// "2025-01-01T01:00:00+01:00" and "2025-01-01T00:00:00Z" are the same
// instant.
//
// String rules:
//   - required — field must be present and non-empty
//   - size:n   — exactly n UTF-8 characters
//   - in:a,b,c — value must be in the comma-separated list
//   - regex:pattern — must match regexp pattern
//
// Control rules:
//   - nullable  — allows empty/missing values through subsequent rules
//   - sometimes — skips all rules silently if field is absent
//
// # Error Bag
//
// Errors serialise to the same JSON structure as Laravel's validation
// errors:
//
//	{
//	  "errors": {
//	    "starts_at": ["The starts_at must be a valid RFC 3339 date-time."]
//	  }
//	}
package validation
