package decode

import (
	"bytes"

	"github.com/corvidlabs/caldecode/internal/ascii"
)

// decodeNumber interprets one plain numeric field in light of the fields
// already identified in fmask, the configured date order, and whether a
// text month name has already been seen in this call.
func decodeNumber(field []byte, fmask *FieldMask, order DateOrder, hasTextMonth bool, is2digits *bool, tm *CalendarTuple) (FieldMask, error) {
	val, tail, err := ascii.ParseInt(field)
	if err != nil {
		return 0, badFormatf("invalid numeric field", field, err)
	}
	intLen := len(field) - len(tail)

	if tail != nil {
		if tail[0] != '.' {
			return 0, badFormat("unexpected trailing characters in numeric field", field)
		}
		if intLen <= 2 {
			return 0, badFormat("unexpected fractional numeric field", field)
		}
		dmask, _, err := decodeNumberField(field, fmask, is2digits, tm)
		return dmask, err
	}

	// Day-of-year special case: a bare 3-digit field seen only after a
	// year has been identified.
	if intLen == 3 && *fmask == yearBit && val > 1 && val <= 366 {
		tm.Yday = int(val)
		return doyBit | monthBit | dayBit, nil
	}

	prior := *fmask & DateMask
	var dmask FieldMask

	switch prior {
	case 0:
		if intLen >= 3 {
			tm.Year = int(val)
			dmask = yearBit
		} else {
			switch order {
			case DMY:
				tm.Mday = int(val)
				dmask = dayBit
			case MDY:
				tm.Mon = int(val)
				dmask = monthBit
			default: // YMD
				tm.Year = int(val)
				dmask = yearBit
			}
		}

	case yearBit:
		// Second field of YY-MM-DD.
		tm.Mon = int(val)
		dmask = monthBit

	case monthBit:
		if hasTextMonth {
			if intLen >= 3 || order == YMD {
				tm.Year = int(val)
				dmask = yearBit
			} else {
				tm.Mday = int(val)
				dmask = dayBit
			}
		} else {
			// Second field of MM-DD-YY.
			tm.Mday = int(val)
			dmask = dayBit
		}

	case yearBit | monthBit:
		if hasTextMonth && intLen >= 3 && *is2digits {
			// The earlier "year" field was actually the day; this one
			// is the true year.
			tm.Mday = tm.Year
			tm.Year = int(val)
			*is2digits = false
		} else {
			tm.Mday = int(val)
		}
		dmask = dayBit

	case dayBit:
		// Second field of DD-MM-YY.
		tm.Mon = int(val)
		dmask = monthBit

	case monthBit | dayBit:
		tm.Year = int(val)
		dmask = yearBit

	case DateMask:
		// Date already complete; whatever remains is a packed time.
		// Any fractional second decode_number_field finds here is
		// intentionally discarded -- decode_number has no fractional-
		// second output to carry it to.
		d, _, err := decodeNumberField(field, fmask, is2digits, tm)
		return d, err

	default:
		return 0, badFormat("numeric field cannot be placed", field)
	}

	if dmask == yearBit {
		*is2digits = intLen <= 2
	}
	return dmask, nil
}

// decodeNumberField interprets a concatenated packed numeric field such
// as "19970207", "130545.25", or "1305". It returns the mask of fields it
// populated and, if the field carried a fractional part, the equivalent
// number of microseconds.
func decodeNumberField(field []byte, fmask *FieldMask, is2digits *bool, tm *CalendarTuple) (FieldMask, int64, error) {
	str := field
	var fracMicros int64
	if dot := bytes.IndexByte(str, '.'); dot >= 0 {
		micros, err := fracDigitsToMicros(str[dot+1:])
		if err != nil {
			return 0, 0, err
		}
		fracMicros = micros
		str = str[:dot]
	}

	length := len(str)
	dateComplete := fmask.Has(DateMask)

	if !dateComplete && length >= 6 {
		if length != 6 && length != 8 {
			return 0, 0, badFormat("unrecognized packed date field length", field)
		}
		yearLen := length - 4

		yearVal, _, err := ascii.ParseInt(str[:yearLen])
		if err != nil {
			return 0, 0, badFormatf("invalid packed year", field, err)
		}
		monVal, _, err := ascii.ParseInt(str[yearLen : yearLen+2])
		if err != nil {
			return 0, 0, badFormatf("invalid packed month", field, err)
		}
		dayVal, _, err := ascii.ParseInt(str[yearLen+2:])
		if err != nil {
			return 0, 0, badFormatf("invalid packed day", field, err)
		}

		tm.Year = int(yearVal)
		tm.Mon = int(monVal)
		tm.Mday = int(dayVal)
		if yearLen == 2 {
			*is2digits = true
		}
		return DateMask, fracMicros, nil
	}

	switch length {
	case 6:
		hh, _, err := ascii.ParseInt(str[0:2])
		if err != nil {
			return 0, 0, badFormatf("invalid packed hour", field, err)
		}
		mm, _, err := ascii.ParseInt(str[2:4])
		if err != nil {
			return 0, 0, badFormatf("invalid packed minute", field, err)
		}
		ss, _, err := ascii.ParseInt(str[4:6])
		if err != nil {
			return 0, 0, badFormatf("invalid packed second", field, err)
		}
		tm.Hour, tm.Min, tm.Sec = int(hh), int(mm), int(ss)
		return hourBit | minuteBit | secondBit, fracMicros, nil

	case 4:
		hh, _, err := ascii.ParseInt(str[0:2])
		if err != nil {
			return 0, 0, badFormatf("invalid packed hour", field, err)
		}
		mm, _, err := ascii.ParseInt(str[2:4])
		if err != nil {
			return 0, 0, badFormatf("invalid packed minute", field, err)
		}
		tm.Hour, tm.Min, tm.Sec = int(hh), int(mm), 0
		return hourBit | minuteBit | secondBit, fracMicros, nil
	}

	return 0, 0, badFormat("unrecognized packed numeric field", field)
}
