package decode

import (
	"fmt"

	"github.com/JohnCGriffin/overflow"
	"github.com/cockroachdb/apd"

	"github.com/corvidlabs/caldecode/internal/ascii"
)

// fracContext is the arbitrary-precision context used to scale a parsed
// decimal fraction to microseconds without the rounding error a naive
// float64 multiply would introduce, mirroring the teacher's own
// apd.BaseContext.WithPrecision idiom for large-magnitude conversions.
var fracContext = apd.BaseContext.WithPrecision(40)

// fracDigitsToMicros interprets digits (an ASCII decimal run with no
// leading sign or dot, e.g. "25" from ".25") as the fractional part of a
// second and returns the equivalent number of microseconds, rounded to
// the nearest integer.
func fracDigitsToMicros(digits []byte) (int64, error) {
	if len(digits) == 0 {
		return 0, badFormat("empty fractional second", digits)
	}

	coeff, _, err := ascii.ParseInt(digits)
	if err != nil {
		return 0, badFormatf("invalid fractional second", digits, err)
	}

	frac := apd.New(int64(coeff), -int32(len(digits)))
	scaled := new(apd.Decimal)
	if _, err := fracContext.Mul(scaled, frac, apd.New(UsecsPerSec, 0)); err != nil {
		return 0, badFormatf("fractional second overflow", digits, err)
	}

	rounded := new(apd.Decimal)
	if _, err := fracContext.Quantize(rounded, scaled, 0); err != nil {
		return 0, badFormatf("fractional second rounding failed", digits, err)
	}

	micros, err := rounded.Int64()
	if err != nil {
		return 0, badFormatf("fractional second out of range", digits, err)
	}
	return micros, nil
}

// ParseFractionalSecond parses a fractional-second field that must begin
// with '.'. It does not perform true decimal-fraction conversion: it
// takes the integer value of everything after the dot and multiplies by
// 1_000_000, so ".12345" yields 12_345_000_000, not 123450. This mirrors
// the source library's own parse_fractional_second behavior exactly,
// quirks included, since callers outside this package depend on it.
func ParseFractionalSecond(s []byte) (int64, error) {
	if len(s) == 0 || s[0] != '.' {
		return 0, badFormat("fractional second must begin with '.'", s)
	}

	value, _, err := ascii.ParseInt(s[1:])
	if err != nil {
		return 0, badFormatf("invalid fractional second", s, err)
	}

	result, ok := overflow.Mul64(int64(value), UsecsPerSec)
	if !ok {
		return 0, badFormat(fmt.Sprintf("fractional second %q overflows", s), s)
	}
	return result, nil
}
