package strictdate

import "fmt"

// Fields holds the eight components of an accepted date-time,
// exactly as they were written in the input.
type Fields struct {
	Year   int // 0–9999
	Month  int // 1–12
	Day    int // 1–31, calendar-checked against Month and Year
	Hour   int // 0–23
	Minute int // 0–59
	Second int // 0–59

	// Fraction is the verbatim fractional-second digits (1–3 of them),
	// or "" when the input carried no fraction. "5" stays "5" — it is
	// never padded to "500".
	Fraction string

	Offset Offset
}

// Offset is either the literal UTC marker "Z" or a signed hours:minutes
// pair. The written sign is preserved, so "-00:00", "+00:00" and "Z" are
// three distinct spellings of zero offset.
type Offset struct {
	UTC      bool // written as "Z"
	Negative bool // written sign when not UTC
	Hours    int  // 0–14
	Minutes  int  // 0–59
}

// String reproduces the offset exactly as it appeared in the input.
func (o Offset) String() string {
	if o.UTC {
		return "Z"
	}
	sign := byte('+')
	if o.Negative {
		sign = '-'
	}
	return fmt.Sprintf("%c%02d:%02d", sign, o.Hours, o.Minutes)
}

// String reconstructs the matched input byte-for-byte.
func (f Fields) String() string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	if f.Fraction != "" {
		s += "." + f.Fraction
	}
	return s + f.Offset.String()
}

// Matches reports whether input is a fully valid strict date-time.
// It never panics; malformed input simply yields false.
func Matches(input string) bool {
	_, ok := scan(input)
	return ok
}

// Recognize applies the same acceptance logic as Matches and, on
// success, returns the extracted fields. The second return value is
// false when the input does not conform; no reason is reported.
func Recognize(input string) (Fields, bool) {
	return scan(input)
}

// isLeap is the proleptic Gregorian rule; no Julian exception.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth is the day count for common years, indexed by month 1–12.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysIn(month, year int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// num reads n digits of s starting at i. The ok result is false when
// any byte in the window is not an ASCII digit.
func num(s string, i, n int) (int, bool) {
	v := 0
	for _, c := range []byte(s[i : i+n]) {
		if !isDigit(c) {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

// scan is a single left-to-right pass over the input. The shortest
// accepted form is 20 bytes (YYYY-MM-DDTHH:mm:ssZ); every position up
// to the fraction is fixed, so the scan is bounds-check-cheap and
// strictly linear. The whole input must be consumed — there is no
// partial-match mode.
func scan(s string) (Fields, bool) {
	if len(s) < 20 {
		return Fields{}, false
	}

	year, ok := num(s, 0, 4)
	if !ok || s[4] != '-' {
		return Fields{}, false
	}
	month, ok := num(s, 5, 2)
	if !ok || month < 1 || month > 12 || s[7] != '-' {
		return Fields{}, false
	}
	day, ok := num(s, 8, 2)
	if !ok || day < 1 || day > daysIn(month, year) || s[10] != 'T' {
		return Fields{}, false
	}
	hour, ok := num(s, 11, 2)
	if !ok || hour > 23 || s[13] != ':' {
		return Fields{}, false
	}
	minute, ok := num(s, 14, 2)
	if !ok || minute > 59 || s[16] != ':' {
		return Fields{}, false
	}
	// Leap second 60 is not accepted.
	second, ok := num(s, 17, 2)
	if !ok || second > 59 {
		return Fields{}, false
	}

	i := 19
	fraction := ""
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if n := j - i - 1; n < 1 || n > 3 {
			return Fields{}, false
		}
		fraction = s[i+1 : j]
		i = j
	}

	var offset Offset
	if i >= len(s) {
		return Fields{}, false
	}
	switch s[i] {
	case 'Z':
		// Anchored to end of input: a trailing newline or '#' must fail.
		if i+1 != len(s) {
			return Fields{}, false
		}
		offset = Offset{UTC: true}
	case '+', '-':
		if len(s)-i != 6 || s[i+3] != ':' {
			return Fields{}, false
		}
		oh, ok := num(s, i+1, 2)
		if !ok {
			return Fields{}, false
		}
		om, ok := num(s, i+4, 2)
		if !ok || om > 59 {
			return Fields{}, false
		}
		// Real-world bound: -12:00 to +14:00 inclusive. The boundary
		// hours admit only :00 minutes.
		negative := s[i] == '-'
		if negative {
			if oh > 12 || (oh == 12 && om != 0) {
				return Fields{}, false
			}
		} else {
			if oh > 14 || (oh == 14 && om != 0) {
				return Fields{}, false
			}
		}
		offset = Offset{Negative: negative, Hours: oh, Minutes: om}
	default:
		return Fields{}, false
	}

	return Fields{
		Year:     year,
		Month:    month,
		Day:      day,
		Hour:     hour,
		Minute:   minute,
		Second:   second,
		Fraction: fraction,
		Offset:   offset,
	}, true
}
