package decode

import (
	"testing"

	"github.com/matryer/is"
)

func TestDecodeDateTextMonth(t *testing.T) {
	is := is.New(t)

	var fmask FieldMask
	_, is2digits, tuple, err := DecodeDate([]byte("Feb-7-1997"), &fmask, YMD)
	is.NoErr(err)
	is.Equal(tuple.Year, 1997)
	is.Equal(tuple.Mon, 2)
	is.Equal(tuple.Mday, 7)
	is.True(!is2digits)
}

func TestDecodeDateAllNumericYMD(t *testing.T) {
	is := is.New(t)

	// With no text month present, the dispatch table assigns the first
	// field by DATE_ORDER and then walks YEAR->MONTH->DAY regardless of
	// later field lengths, so a short leading field under YMD stays the
	// year even once a later field turns out longer.
	var fmask FieldMask
	_, _, tuple, err := DecodeDate([]byte("97-2-7"), &fmask, YMD)
	is.NoErr(err)
	is.Equal(tuple.Year, 97)
	is.Equal(tuple.Mon, 2)
	is.Equal(tuple.Mday, 7)
}

func TestDecodeDateISOOrder(t *testing.T) {
	is := is.New(t)

	var fmask FieldMask
	_, _, tuple, err := DecodeDate([]byte("1997-2-7"), &fmask, YMD)
	is.NoErr(err)
	is.Equal(tuple.Year, 1997)
	is.Equal(tuple.Mon, 2)
	is.Equal(tuple.Mday, 7)
}

func TestDecodeDateDMYOrder(t *testing.T) {
	is := is.New(t)

	var fmask FieldMask
	_, _, tuple, err := DecodeDate([]byte("7-2-1997"), &fmask, DMY)
	is.NoErr(err)
	is.Equal(tuple.Mday, 7)
	is.Equal(tuple.Mon, 2)
	is.Equal(tuple.Year, 1997)
}

func TestDecodeDateDayOfYear(t *testing.T) {
	is := is.New(t)

	var fmask FieldMask
	tmask, _, tuple, err := DecodeDate([]byte("1997-040"), &fmask, YMD)
	is.NoErr(err)
	is.Equal(tuple.Year, 1997)
	is.Equal(tuple.Yday, 40)
	is.True(tmask.Has(doyBit))
}

func TestDecodeDateTwoDigitYearSwap(t *testing.T) {
	is := is.New(t)

	// The first numeric field before a text month defaults to YEAR under
	// YMD order even when short; once a later >=3-digit field arrives,
	// the guess is corrected: the earlier value becomes the day and the
	// new field becomes the year.
	var fmask FieldMask
	_, is2digits, tuple, err := DecodeDate([]byte("10-Feb-1997"), &fmask, YMD)
	is.NoErr(err)
	is.Equal(tuple.Mon, 2)
	is.Equal(tuple.Mday, 10)
	is.Equal(tuple.Year, 1997)
	is.True(!is2digits)
}

func TestDecodeDateFillerWord(t *testing.T) {
	is := is.New(t)

	var fmask FieldMask
	_, _, tuple, err := DecodeDate([]byte("on 7 Feb 1997"), &fmask, YMD)
	is.NoErr(err)
	is.Equal(tuple.Year, 1997)
}

func TestDecodeDateUnrecognizedToken(t *testing.T) {
	is := is.New(t)

	var fmask FieldMask
	_, _, _, err := DecodeDate([]byte("xyzzy-7-1997"), &fmask, YMD)
	is.True(err != nil)
}

func TestDecodeDateDoubleAssignment(t *testing.T) {
	is := is.New(t)

	var fmask FieldMask
	_, _, _, err := DecodeDate([]byte("Feb-Mar-1997"), &fmask, YMD)
	is.True(err != nil)
}

func TestDecodeDateMonthCollidesWithPackedDate(t *testing.T) {
	is := is.New(t)

	// "Feb" claims MONTH, then "030507.25" packs YEAR/MONTH/DAY again; the
	// overlap on MONTH must be rejected even though the packed dmask isn't
	// a full subset of the already-set fmask.
	var fmask FieldMask
	_, _, _, err := DecodeDate([]byte("Feb 030507.25"), &fmask, YMD)
	is.True(err != nil)
}

func TestDecodeDateDayOutOfRangeForMonth(t *testing.T) {
	is := is.New(t)

	var fmask FieldMask
	_, _, _, err := DecodeDate([]byte("1997-2-31"), &fmask, YMD)
	is.True(err != nil)
}

func TestDecodeDatePackedTimeAfterCompleteDate(t *testing.T) {
	is := is.New(t)

	// Once the date is complete, the classifier interprets a further
	// packed numeric field as hhmmss rather than another date component.
	fmask := DateMask
	tuple := CalendarTuple{Year: 1997, Mon: 2, Mday: 7}
	var is2digits bool
	dmask, err := decodeNumber([]byte("130545"), &fmask, YMD, false, &is2digits, &tuple)
	is.NoErr(err)
	is.Equal(dmask, hourBit|minuteBit|secondBit)
	is.Equal(tuple.Year, 1997)
	is.Equal(tuple.Mon, 2)
	is.Equal(tuple.Mday, 7)
	is.Equal(tuple.Hour, 13)
	is.Equal(tuple.Min, 5)
	is.Equal(tuple.Sec, 45)

	// DecodeDate's completeness check admits only the date categories
	// (plus DOY and TZ), so the same field after a date string is
	// rejected there.
	var dateFmask FieldMask
	_, _, _, err = DecodeDate([]byte("1997-2-7 130545"), &dateFmask, YMD)
	is.True(err != nil)
}
