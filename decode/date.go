package decode

import (
	"github.com/corvidlabs/caldecode/gregorian"
	"github.com/corvidlabs/caldecode/internal/ascii"
	"github.com/corvidlabs/caldecode/token"
)

// MaxDateFields bounds how many lexical fields a single decode_date call
// will tokenize; inputs needing more are rejected as malformed rather
// than silently truncated.
const MaxDateFields = 25

// field is one lexical unit produced by tokenize: a run of letters, or a
// run of digits optionally carrying a single embedded ".digits" suffix
// (so packed time-with-fraction fields like "130545.25" survive as one
// field rather than being split on the dot).
type field struct {
	text  []byte
	alpha bool
}

func tokenize(s []byte) ([]field, error) {
	var fields []field
	i, n := 0, len(s)

	for i < n {
		b := s[i]
		switch {
		case ascii.IsAlpha(b):
			start := i
			for i < n && ascii.IsAlpha(s[i]) {
				i++
			}
			fields = append(fields, field{text: s[start:i], alpha: true})

		case ascii.IsDigit(b):
			start := i
			for i < n && ascii.IsDigit(s[i]) {
				i++
			}
			if i < n && s[i] == '.' && i+1 < n && ascii.IsDigit(s[i+1]) {
				i++
				for i < n && ascii.IsDigit(s[i]) {
					i++
				}
			}
			fields = append(fields, field{text: s[start:i], alpha: false})

		default:
			i++
		}

		if len(fields) > MaxDateFields {
			return nil, badFormat("too many date fields", s)
		}
	}

	if len(fields) == 0 {
		return nil, badFormat("no date fields found", s)
	}
	return fields, nil
}

// DecodeDate decodes the date portion of a date/time string into tuple,
// tracking which field categories it has assigned in tmask and merging
// them into the caller's running fmask. order resolves ambiguous
// all-numeric inputs; is2digits records whether the year field decoded
// so far was written with two digits, for the caller to window later.
func DecodeDate(s []byte, fmask *FieldMask, order DateOrder) (tmask FieldMask, is2digits bool, tuple CalendarTuple, err error) {
	fields, err := tokenize(s)
	if err != nil {
		return 0, false, tuple, err
	}

	identified := make([]bool, len(fields))
	hasTextMonth := false

	// Text-first pass: month names and fillers only.
	for i, f := range fields {
		if !f.alpha {
			continue
		}

		lower := ascii.ToLowerBytes(f.text)
		entry, ok := token.Lookup(lower, token.DateTable)
		if !ok {
			return 0, false, tuple, badFormat("unrecognized date token", f.text)
		}

		switch entry.Category {
		case token.IgnoreDTF:
			identified[i] = true

		case token.Month:
			dmask := monthBit
			if fmask.Overlaps(dmask) {
				return 0, false, tuple, badFormat("month specified twice", f.text)
			}
			tuple.Mon = int(entry.Value)
			hasTextMonth = true
			*fmask |= dmask
			tmask |= dmask
			identified[i] = true

		default:
			return 0, false, tuple, badFormat("unexpected token in date", f.text)
		}
	}

	// Numeric pass: everything the text-first pass didn't claim.
	for i, f := range fields {
		if identified[i] {
			continue
		}

		dmask, err := decodeNumber(f.text, fmask, order, hasTextMonth, &is2digits, &tuple)
		if err != nil {
			return 0, false, tuple, err
		}
		if fmask.Overlaps(dmask) {
			return 0, false, tuple, badFormat("date field specified twice", f.text)
		}
		*fmask |= dmask
		tmask |= dmask
		identified[i] = true
	}

	if (*fmask &^ (doyBit | tzBit)) != DateMask {
		return 0, false, tuple, badFormat("incomplete date", s)
	}

	if tuple.Mon != 0 || tuple.Mday != 0 {
		if tuple.Mon < 1 || tuple.Mon > 12 {
			return 0, false, tuple, badFormat("month out of range", s)
		}
		days, ok := gregorian.DaysIn(tuple.Year, tuple.Mon)
		if !ok || tuple.Mday < 1 || tuple.Mday > days {
			return 0, false, tuple, badFormat("day out of range for month", s)
		}
	}

	return tmask, is2digits, tuple, nil
}
