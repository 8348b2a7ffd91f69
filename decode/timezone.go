package decode

import (
	"github.com/corvidlabs/caldecode/internal/ascii"
)

// MaxTZDispHour bounds the hour component of any timezone offset
// DecodeTimezone accepts.
const MaxTZDispHour = 15

// DecodeTimezone parses a signed timezone offset of the form
// "+HH[:MM[:SS]]" or packed "+HHMM" and returns it in seconds.
//
// The sign of the result is inverted from the sign of the input: it is
// the offset to add to local time to reach UTC, not the offset of the
// zone from UTC, so "+1" decodes to -3600 and "-1" decodes to +3600.
// Callers outside this package depend on that convention.
func DecodeTimezone(s string) (int32, error) {
	b := []byte(s)
	if len(b) == 0 || (b[0] != '+' && b[0] != '-') {
		return 0, badFormat("timezone must begin with '+' or '-'", b)
	}
	negative := b[0] == '-'
	rest := b[1:]

	hr, tail, err := ascii.ParseInt(rest)
	if err != nil {
		return 0, badFormatf("invalid timezone hour", b, err)
	}

	var min, sec int32
	hadColon := false

	if len(tail) > 0 && tail[0] == ':' {
		hadColon = true
		min, tail, err = ascii.ParseInt(tail[1:])
		if err != nil {
			return 0, badFormatf("invalid timezone minute", b, err)
		}
		if len(tail) > 0 && tail[0] == ':' {
			sec, tail, err = ascii.ParseInt(tail[1:])
			if err != nil {
				return 0, badFormatf("invalid timezone second", b, err)
			}
		}
	}

	if !hadColon {
		if len(rest) > 2 {
			min = hr % 100
			hr = hr / 100
		} else {
			min = 0
		}
	}

	if len(tail) > 0 {
		return 0, badFormat("trailing characters after timezone", b)
	}

	if hr < 0 || hr > MaxTZDispHour || min < 0 || min >= 60 || sec < 0 || sec >= 60 {
		return 0, &TimezoneOverflowError{Input: s}
	}

	tz := (hr*60+min)*60 + sec
	if negative {
		tz = -tz
	}
	return -tz, nil
}
