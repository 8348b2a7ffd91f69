package decode

import "github.com/corvidlabs/caldecode/token"

// FieldMask is a bit set over field categories. Only bits 0..31 are usable
// since masks must fit in a 32-bit word; this is an external-compatibility
// invariant with persisted typmod values and must not be widened.
type FieldMask uint32

// Bit returns the single-bit mask for a field category. It is the one
// place category-to-bit conversion happens so every caller agrees on the
// mapping.
func Bit(category token.Category) FieldMask {
	return FieldMask(1) << uint(category)
}

// Has reports whether every bit set in other is also set in m.
func (m FieldMask) Has(other FieldMask) bool {
	return m&other == other
}

// Overlaps reports whether m and other share any set bit. This is the
// check the classifier uses to detect the double-assignment invariant
// (§3's "fmask & tmask == 0"): any collision is a rejection, not just a
// full-subset one.
func (m FieldMask) Overlaps(other FieldMask) bool {
	return m&other != 0
}

var (
	yearBit        = Bit(token.Year)
	monthBit       = Bit(token.Month)
	dayBit         = Bit(token.Day)
	hourBit        = Bit(token.Hour)
	minuteBit      = Bit(token.Minute)
	secondBit      = Bit(token.Second)
	millisecondBit = Bit(token.Millisecond)
	microsecondBit = Bit(token.Microsecond)
	doyBit         = Bit(token.DOY)
	dowBit         = Bit(token.DOW)
	tzBit          = Bit(token.TZ)

	// DateMask is the {YEAR, MONTH, DAY} subset, shorthand DATE_M.
	DateMask = yearBit | monthBit | dayBit

	// TimeMask is the {HOUR, MINUTE, SECOND, MILLISECOND, MICROSECOND}
	// subset, shorthand TIME_M.
	TimeMask = hourBit | minuteBit | secondBit | millisecondBit | microsecondBit
)
