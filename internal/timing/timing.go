// Package timing converts between packed centisecond values and their
// display forms, and defines penalty and sentinel semantics for attempts.
package timing

import (
	"fmt"
	"strings"
)

// Penalty is the penalty tag attached to a single attempt
type Penalty int

const (
	PenaltyNone Penalty = iota
	PenaltyPlus2
	PenaltyDNF
)

const (
	// SentinelCentis marks an unset attempt or an invalid result.
	// It compares strictly worse than any real value.
	SentinelCentis = -1

	centisPerSecond = 100
	centisPerMinute = 60 * centisPerSecond
	centisPerHour   = 60 * centisPerMinute

	// Plus2Centis is the fixed surcharge a +2 penalty adds
	Plus2Centis = 2 * centisPerSecond
)

const (
	// InvalidTimeString is the display form of a sentinel/unset time
	InvalidTimeString = "-"

	// DNFString is the display form of a DNF attempt
	DNFString = "DNF"

	plus2Suffix = "+"
)

// Parts is a time decomposed into display units
type Parts struct {
	Hours   int
	Minutes int
	Seconds int
	Centis  int
}

// Unpack decomposes a centisecond value into Parts.
// Returns false for negative (sentinel) values. Pure truncation, no rounding.
func Unpack(centis int) (Parts, bool) {
	if centis < 0 {
		return Parts{}, false
	}

	p := Parts{}
	p.Hours = centis / centisPerHour
	centis %= centisPerHour
	p.Minutes = centis / centisPerMinute
	centis %= centisPerMinute
	p.Seconds = centis / centisPerSecond
	p.Centis = centis % centisPerSecond

	return p, true
}

// Pack converts Parts back to a centisecond value
func Pack(p Parts) int {
	return p.Centis +
		p.Seconds*centisPerSecond +
		p.Minutes*centisPerMinute +
		p.Hours*centisPerHour
}

// String formats Parts omitting leading zero components:
// "1:02:03.04", "2:03.04" or "3.04".
func (p Parts) String() string {
	switch {
	case p.Hours > 0:
		return fmt.Sprintf("%d:%02d:%02d.%02d", p.Hours, p.Minutes, p.Seconds, p.Centis)
	case p.Minutes > 0:
		return fmt.Sprintf("%d:%02d.%02d", p.Minutes, p.Seconds, p.Centis)
	default:
		return fmt.Sprintf("%d.%02d", p.Seconds, p.Centis)
	}
}

// Format converts a centisecond value to its display string,
// or InvalidTimeString for sentinel values.
func Format(centis int) string {
	p, ok := Unpack(centis)
	if !ok {
		return InvalidTimeString
	}
	return p.String()
}

// FormatWithPenalty formats a centisecond value with its penalty applied.
// DNF short-circuits to DNFString before any decomposition; +2 adds the
// surcharge and appends the "+" marker.
func FormatWithPenalty(centis int, penalty Penalty) string {
	if penalty == PenaltyDNF {
		return DNFString
	}

	p, ok := Unpack(centis)
	if !ok {
		return InvalidTimeString
	}
	if penalty == PenaltyPlus2 {
		p.Seconds += 2
		p = normalize(p)
		return p.String() + plus2Suffix
	}
	return p.String()
}

// ApplyPenalty returns the centisecond value after applying a penalty.
// A DNF yields the sentinel; +2 adds Plus2Centis.
func ApplyPenalty(centis int, penalty Penalty) int {
	switch penalty {
	case PenaltyDNF:
		return SentinelCentis
	case PenaltyPlus2:
		return centis + Plus2Centis
	default:
		return centis
	}
}

// Compare orders two pure centisecond values. Sentinels compare strictly
// worse (larger) than any real value; two sentinels compare equal.
// Returns -1 if a is better, 1 if b is better, 0 if equal.
func Compare(a, b int) int {
	aInvalid, bInvalid := a < 0, b < 0
	switch {
	case aInvalid && bInvalid:
		return 0
	case aInvalid:
		return 1
	case bInvalid:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// normalize carries overflowing units upward
func normalize(p Parts) Parts {
	p.Seconds += p.Centis / 100
	p.Centis %= 100
	p.Minutes += p.Seconds / 60
	p.Seconds %= 60
	p.Hours += p.Minutes / 60
	p.Minutes %= 60
	return p
}

// valid reports whether all parts are within display limits
func valid(p Parts) bool {
	return p.Hours >= 0 && p.Hours < 24 &&
		p.Minutes >= 0 && p.Minutes < 60 &&
		p.Seconds >= 0 && p.Seconds < 60 &&
		p.Centis >= 0 && p.Centis < 100
}

// Parse analyzes a user-entered time string into Parts. Accepted forms:
//
//	H:MM:SS.cc   M:SS.cc   SS.cc   HMMSSCC (bare digits)
//
// Missing fraction digits default to zero; overflowing units are carried
// upward. Returns false for anything that is not a valid time.
func Parse(s string) (Parts, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Parts{}, false
	}
	if !isDigitsAnd(s, ":.") || !strings.ContainsAny(s, "0123456789") {
		return Parts{}, false
	}

	colonParts := strings.Split(s, ":")
	if len(colonParts) > 3 {
		return Parts{}, false
	}

	var p Parts
	var err error

	switch len(colonParts) {
	case 3:
		if p.Hours, err = parseUnit(colonParts[0]); err != nil {
			return Parts{}, false
		}
		if p.Minutes, err = parseUnit(colonParts[1]); err != nil {
			return Parts{}, false
		}
		if p.Seconds, p.Centis, err = parseSeconds(colonParts[2]); err != nil {
			return Parts{}, false
		}
	case 2:
		if p.Minutes, err = parseUnit(colonParts[0]); err != nil {
			return Parts{}, false
		}
		if p.Seconds, p.Centis, err = parseSeconds(colonParts[1]); err != nil {
			return Parts{}, false
		}
	default:
		if strings.Contains(s, ".") {
			if p.Seconds, p.Centis, err = parseSeconds(s); err != nil {
				return Parts{}, false
			}
		} else {
			// bare digit form: [H][MM][SS][CC]
			const maxDigits = 7
			if len(s) > maxDigits {
				return Parts{}, false
			}
			padded := strings.Repeat("0", maxDigits-len(s)) + s
			p.Hours = int(padded[0] - '0')
			p.Minutes = digits2(padded[1:3])
			p.Seconds = digits2(padded[3:5])
			p.Centis = digits2(padded[5:7])
		}
	}

	p = normalize(p)
	if !valid(p) {
		return Parts{}, false
	}
	return p, true
}

// parseSeconds splits "SS.cc" or "SS" into seconds and centis.
// A single fraction digit means tenths ("1.5" -> 50 centis).
func parseSeconds(s string) (seconds, centis int, err error) {
	dotParts := strings.Split(s, ".")
	if len(dotParts) > 2 {
		return 0, 0, fmt.Errorf("too many dots in %q", s)
	}

	if seconds, err = parseUnit(dotParts[0]); err != nil {
		return 0, 0, err
	}
	if len(dotParts) == 2 {
		frac := dotParts[1]
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		centis = digits2(frac)
	}
	return seconds, centis, nil
}

// parseUnit parses a decimal unit, treating "" as 0
func parseUnit(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit in %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func digits2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func isDigitsAnd(s, extra string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && !strings.ContainsRune(extra, c) {
			return false
		}
	}
	return true
}
