// Package ascii provides the byte-level predicates and numeric primitives
// that the decoder builds on: digit/alpha/alnum classification, ASCII case
// folding, and signed integer/float extraction from a byte slice. Nothing
// here is Unicode-aware on purpose -- the decoder treats any byte outside
// the ASCII alphanumeric ranges as a field separator, and folding case is
// only ever done for table lookup.
package ascii

import (
	"strconv"

	"github.com/JohnCGriffin/overflow"
)

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool {
	return IsDigit(b) || IsAlpha(b)
}

// IsSpace reports whether b is ASCII whitespace.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ToLower folds an ASCII upper-case letter to lower case. Every other byte,
// including non-ASCII bytes, is returned unchanged.
func ToLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// ToLowerBytes returns a lower-cased copy of s, suitable for table lookup.
// The caller's slice is never mutated.
func ToLowerBytes(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		out[i] = ToLower(b)
	}
	return out
}

// ParseError reports a failure to extract a number from a byte slice. It
// carries the offending input so callers can build a BadFormat error that
// names both the cause and the text that triggered it.
type ParseError struct {
	Input  []byte
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason + ": '" + string(e.Input) + "'"
}

// ParseInt extracts a leading signed decimal integer from s, skipping ASCII
// whitespace first. It returns the parsed value and whatever bytes remain
// unconsumed, or nil if the entire slice was consumed. An empty input, an
// input with no digits after an optional sign, or an integer that overflows
// 32-bit signed range are all reported as a *ParseError.
func ParseInt(s []byte) (int32, []byte, error) {
	i := 0
	n := len(s)
	for i < n && IsSpace(s[i]) {
		i++
	}
	if i == n {
		return 0, nil, &ParseError{Input: s, Reason: "no digits found"}
	}

	negative := false
	switch s[i] {
	case '+':
		i++
	case '-':
		negative = true
		i++
	}

	digitsStart := i
	var value int32
	var ok bool
	for i < n && IsDigit(s[i]) {
		digit := int32(s[i] - '0')
		if negative {
			digit = -digit
		}
		value, ok = overflow.Mul32(value, 10)
		if !ok {
			return 0, nil, &ParseError{Input: s, Reason: "integer out of range"}
		}
		value, ok = overflow.Add32(value, digit)
		if !ok {
			return 0, nil, &ParseError{Input: s, Reason: "integer out of range"}
		}
		i++
	}
	if i == digitsStart {
		return 0, nil, &ParseError{Input: s, Reason: "no digits found"}
	}

	if i == n {
		return value, nil, nil
	}
	return value, s[i:], nil
}

// ParseFloat extracts a leading signed decimal float from s, skipping ASCII
// whitespace first. An exponent suffix ('e'/'E' followed by an optionally
// signed integer) is accepted but not required. It returns the parsed
// value and whatever bytes remain unconsumed, or nil if none remain. Empty
// input or input with no digits is a *ParseError.
func ParseFloat(s []byte) (float64, []byte, error) {
	i := 0
	n := len(s)
	for i < n && IsSpace(s[i]) {
		i++
	}
	start := i
	if i == n {
		return 0, nil, &ParseError{Input: s, Reason: "no digits found"}
	}

	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}

	sawDigit := false
	for i < n && IsDigit(s[i]) {
		i++
		sawDigit = true
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && IsDigit(s[i]) {
			i++
			sawDigit = true
		}
	}
	if !sawDigit {
		return 0, nil, &ParseError{Input: s, Reason: "no digits found"}
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		mark := i
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < n && IsDigit(s[i]) {
			i++
		}
		if i == expStart {
			// No exponent digits after all; back out of the 'e'.
			i = mark
		}
	}

	value, err := strconv.ParseFloat(string(s[start:i]), 64)
	if err != nil {
		return 0, nil, &ParseError{Input: s, Reason: "invalid float"}
	}
	if i == n {
		return value, nil, nil
	}
	return value, s[i:], nil
}
