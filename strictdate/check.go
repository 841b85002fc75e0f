package strictdate

import "errors"

// ErrInvalidDateTime is returned by DateTime.Check for any input that
// the recognizer rejects. There is exactly one error category; callers
// needing a finer-grained reason must re-validate field by field.
var ErrInvalidDateTime = errors.New("strictdate: not a strict RFC 3339 date-time")

// DateTime represents a date-time in string format and provides
// functionality to validate it.
type DateTime string

// Check validates the DateTime value against the strict grammar and
// calendar rules. It returns ErrInvalidDateTime when the value does
// not conform.
func (d DateTime) Check() error {
	if !Matches(string(d)) {
		return ErrInvalidDateTime
	}
	return nil
}
