package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/km-arc/go-strictdate/strictdate"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors holds validation errors — mirrors Laravel's MessageBag.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

func (e *Errors) add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ── Validator ────────────────────────────────────────────────────────────────

// Rules is a map of field → pipe-separated rule string.
// e.g. Rules{"starts_at": "required|datetime", "ends_at": "datetime|after:2025-01-01T00:00:00Z"}
type Rules map[string]string

// Validator validates a flat map of input values.
type Validator struct {
	data   map[string]string
	rules  Rules
	errors *Errors
}

// Make creates a new Validator — mirrors Validator::make($data, $rules).
func Make(data map[string]string, rules Rules) *Validator {
	return &Validator{
		data:   data,
		rules:  rules,
		errors: &Errors{},
	}
}

// Fails runs validation and returns true if any rule fails.
func (v *Validator) Fails() bool {
	v.validate()
	return v.errors.Has()
}

// Passes runs validation and returns true if all rules pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation error bag.
func (v *Validator) Errors() *Errors { return v.errors }

// ── Core validation loop ─────────────────────────────────────────────────────

func (v *Validator) validate() {
	for field, ruleStr := range v.rules {
		value := v.data[field]
		rules := strings.Split(ruleStr, "|")

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}

			// Parse rule name and optional parameter: after:<ts> → name=after,
			// param=<ts>. Cut splits at the first colon only, so date-time
			// parameters keep their own colons intact.
			name, param, _ := strings.Cut(rule, ":")

			if !v.applyRule(field, value, name, param) {
				break // stop on first failure (like Laravel's bail behaviour)
			}
		}
	}
}

// applyRule returns true if the rule passes.
func (v *Validator) applyRule(field, value, rule, param string) bool {
	switch rule {
	case "required":
		if strings.TrimSpace(value) == "" {
			v.errors.add(field, fmt.Sprintf("The %s field is required.", field))
			return false
		}

	case "datetime":
		if !strictdate.Matches(value) {
			v.errors.add(field, fmt.Sprintf("The %s must be a valid RFC 3339 date-time.", field))
			return false
		}

	case "datetime_utc":
		f, ok := strictdate.Recognize(value)
		if !ok || !f.Offset.UTC {
			v.errors.add(field, fmt.Sprintf("The %s must be a UTC (Z) date-time.", field))
			return false
		}

	case "after":
		if !v.compareChronological(field, value, param, after) {
			return false
		}

	case "before":
		if !v.compareChronological(field, value, param, before) {
			return false
		}

	case "size":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) != n {
			v.errors.add(field, fmt.Sprintf("The %s must be %d characters.", field, n))
			return false
		}

	case "in":
		allowed := strings.Split(param, ",")
		found := false
		for _, a := range allowed {
			if strings.TrimSpace(a) == value {
				found = true
				break
			}
		}
		if !found {
			v.errors.add(field, fmt.Sprintf("The selected %s is invalid.", field))
			return false
		}

	case "regex":
		re, err := regexp.Compile(param)
		if err != nil || !re.MatchString(value) {
			v.errors.add(field, fmt.Sprintf("The %s format is invalid.", field))
			return false
		}

	case "nullable":
		// Empty values short-circuit the remaining rules without error.
		if value == "" {
			return false
		}

	case "sometimes":
		// Skip remaining rules if field is absent.
		if value == "" {
			return false // stop processing this field silently
		}
	}

	return true
}

// ── Chronological comparison ─────────────────────────────────────────────────

type direction int

const (
	after direction = iota
	before
)

// compareChronological enforces after:<ts> / before:<ts>. Both sides
// must be strict date-times; the comparison is offset-normalized, so
// "2025-01-01T01:00:00+01:00" equals "2025-01-01T00:00:00Z".
func (v *Validator) compareChronological(field, value, param string, dir direction) bool {
	word := "after"
	if dir == before {
		word = "before"
	}

	ref, ok := strictdate.Recognize(param)
	if !ok {
		v.errors.add(field, fmt.Sprintf("The %s rule on %s has a malformed date-time parameter.", word, field))
		return false
	}
	f, ok := strictdate.Recognize(value)
	if !ok {
		v.errors.add(field, fmt.Sprintf("The %s must be a valid RFC 3339 date-time.", field))
		return false
	}

	cmp := compareInstants(f, ref)
	if (dir == after && cmp <= 0) || (dir == before && cmp >= 0) {
		v.errors.add(field, fmt.Sprintf("The %s must be a date-time %s %s.", field, word, param))
		return false
	}
	return true
}

// compareInstants orders two accepted date-times on the UTC timeline:
// -1, 0, or 1 as a is before, equal to, or after b.
func compareInstants(a, b strictdate.Fields) int {
	as, bs := utcSeconds(a), utcSeconds(b)
	if as != bs {
		if as < bs {
			return -1
		}
		return 1
	}
	af, bf := padFraction(a.Fraction), padFraction(b.Fraction)
	return strings.Compare(af, bf)
}

// utcSeconds converts the fields to seconds since 1970-01-01T00:00:00Z,
// normalizing the written offset away.
func utcSeconds(f strictdate.Fields) int64 {
	secs := int64(civilDays(f.Year, f.Month, f.Day))*86400 +
		int64(f.Hour)*3600 + int64(f.Minute)*60 + int64(f.Second)
	if !f.Offset.UTC {
		off := int64(f.Offset.Hours)*3600 + int64(f.Offset.Minutes)*60
		if f.Offset.Negative {
			secs += off
		} else {
			secs -= off
		}
	}
	return secs
}

// civilDays counts days from 1970-01-01 to the given proleptic
// Gregorian date (Howard Hinnant's days_from_civil).
func civilDays(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	doy := (153*((m+9)%12)+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// padFraction right-pads captured fraction digits to three places for
// comparison only; the captured value itself is never normalized.
func padFraction(frac string) string {
	for len(frac) < 3 {
		frac += "0"
	}
	return frac
}
