// Package token holds the static vocabulary the decoder matches textual
// date/time fields against: the field-category taxonomy, the token kinds a
// reserved word can resolve to, and the two sorted lookup tables (one for
// absolute date/time keywords, one for interval units) together with the
// binary search used to probe them. The tables and category/kind numbering
// are carried over bit-for-bit from the datetime library this package's
// behavior is ported from, since external callers key off the category
// index directly.
package token

import "bytes"

// Category classifies what kind of calendar field a token or a decoded
// numeric value represents. The numeric values of YEAR..SECOND are part of
// the decoder's external contract and must not be renumbered.
type Category int8

const (
	Reserv       Category = 0
	Month        Category = 1
	Year         Category = 2
	Day          Category = 3
	Julian       Category = 4
	TZ           Category = 5
	DTZ          Category = 6
	DynTZ        Category = 7
	IgnoreDTF    Category = 8
	AMPM         Category = 9
	Hour         Category = 10
	Minute       Category = 11
	Second       Category = 12
	Millisecond  Category = 13
	Microsecond  Category = 14
	DOY          Category = 15
	DOW          Category = 16
	Units        Category = 17
	ADBC         Category = 18
	Ago          Category = 19
	AbsBefore    Category = 20
	AbsAfter     Category = 21
	ISODate      Category = 22
	ISOTime      Category = 23
	Week         Category = 24
	Decade       Category = 25
	Century      Category = 26
	Millennium   Category = 27
	DTZMod       Category = 28
	UnknownField Category = 31
)

// Kind is the specific meaning carried by a Reserv-category (or Units-
// category) token, stashed in DateToken.Value so the field classifier can
// switch on it without re-parsing the token text.
type Kind int32

const (
	KindNumber      Kind = 0
	KindString      Kind = 1
	KindDate        Kind = 2
	KindTime        Kind = 3
	KindTZ          Kind = 4
	KindAgo         Kind = 5
	KindSpecial     Kind = 6
	KindInvalid     Kind = 7
	KindCurrent     Kind = 8
	KindEarly       Kind = 9
	KindLate        Kind = 10
	KindEpoch       Kind = 11
	KindNow         Kind = 12
	KindYesterday   Kind = 13
	KindToday       Kind = 14
	KindTomorrow    Kind = 15
	KindZulu        Kind = 16
	KindDelta       Kind = 17
	KindSecond      Kind = 18
	KindMinute      Kind = 19
	KindHour        Kind = 20
	KindDay         Kind = 21
	KindWeek        Kind = 22
	KindMonth       Kind = 23
	KindQuarter     Kind = 24
	KindYear        Kind = 25
	KindDecade      Kind = 26
	KindCentury     Kind = 27
	KindMillennium  Kind = 28
	KindMillisecond Kind = 29
	KindMicrosecond Kind = 30
	KindJulian      Kind = 31
	KindDOW         Kind = 32
	KindDOY         Kind = 33
	KindTZHour      Kind = 34
	KindTZMinute    Kind = 35
	KindISOYear     Kind = 36
	KindISODOW      Kind = 37
)

// AD/BC and AM/PM values, stored in DateToken.Value for ADBC/AMPM tokens.
const (
	AD = 0
	BC = 1

	AM   = 0
	PM   = 1
	HR24 = 2
)

// SecsPerHour is the value "dst" resolves to as a DTZMod token: treat a
// zone abbreviation following it as one hour east of what it would
// otherwise mean.
const SecsPerHour = 3600

// DateToken is one entry in a lookup table: a lowercase keyword together
// with the calendar-field Category it belongs to and a Kind/numeric Value
// that disambiguates within that category (a month number, a weekday
// number, an AD/BC flag, a Kind constant, and so on).
type DateToken struct {
	Text     []byte
	Category Category
	Value    int32
}

// DateTable holds the keywords recognized in absolute date/time input:
// month and weekday names, AM/PM and AD/BC markers, and reserved words such
// as "today" or "epoch". Entries are sorted lexicographically by Text,
// which Lookup requires.
var DateTable = []DateToken{
	{[]byte("-infinity"), Reserv, int32(KindEarly)},
	{[]byte("ad"), ADBC, AD},
	{[]byte("allballs"), Reserv, int32(KindZulu)},
	{[]byte("am"), AMPM, AM},
	{[]byte("apr"), Month, 4},
	{[]byte("april"), Month, 4},
	{[]byte("at"), IgnoreDTF, 0},
	{[]byte("aug"), Month, 8},
	{[]byte("august"), Month, 8},
	{[]byte("bc"), ADBC, BC},
	{[]byte("current"), Reserv, int32(KindCurrent)},
	{[]byte("d"), Units, int32(KindDay)},
	{[]byte("dec"), Month, 12},
	{[]byte("december"), Month, 12},
	{[]byte("dow"), Reserv, int32(KindDOW)},
	{[]byte("doy"), Reserv, int32(KindDOY)},
	{[]byte("dst"), DTZMod, SecsPerHour},
	{[]byte("epoch"), Reserv, int32(KindEpoch)},
	{[]byte("feb"), Month, 2},
	{[]byte("february"), Month, 2},
	{[]byte("fri"), DOW, 5},
	{[]byte("friday"), DOW, 5},
	{[]byte("h"), Units, int32(KindHour)},
	{[]byte("infinity"), Reserv, int32(KindLate)},
	{[]byte("invalid"), Reserv, int32(KindInvalid)},
	{[]byte("isodow"), Reserv, int32(KindISODOW)},
	{[]byte("isoyear"), Units, int32(KindISOYear)},
	{[]byte("j"), Units, int32(KindJulian)},
	{[]byte("jan"), Month, 1},
	{[]byte("january"), Month, 1},
	{[]byte("jd"), Units, int32(KindJulian)},
	{[]byte("jul"), Month, 7},
	{[]byte("julian"), Units, int32(KindJulian)},
	{[]byte("july"), Month, 7},
	{[]byte("jun"), Month, 6},
	{[]byte("june"), Month, 6},
	{[]byte("m"), Units, int32(KindMonth)},
	{[]byte("mar"), Month, 3},
	{[]byte("march"), Month, 3},
	{[]byte("may"), Month, 5},
	{[]byte("mm"), Units, int32(KindMinute)},
	{[]byte("mon"), DOW, 1},
	{[]byte("monday"), DOW, 1},
	{[]byte("nov"), Month, 11},
	{[]byte("november"), Month, 11},
	{[]byte("now"), Reserv, int32(KindNow)},
	{[]byte("oct"), Month, 10},
	{[]byte("october"), Month, 10},
	{[]byte("on"), IgnoreDTF, 0},
	{[]byte("pm"), AMPM, PM},
	{[]byte("s"), Units, int32(KindSecond)},
	{[]byte("sat"), DOW, 6},
	{[]byte("saturday"), DOW, 6},
	{[]byte("sep"), Month, 9},
	{[]byte("sept"), Month, 9},
	{[]byte("september"), Month, 9},
	{[]byte("sun"), DOW, 0},
	{[]byte("sunday"), DOW, 0},
	{[]byte("t"), ISOTime, int32(KindTime)},
	{[]byte("thu"), DOW, 4},
	{[]byte("thur"), DOW, 4},
	{[]byte("thurs"), DOW, 4},
	{[]byte("thursday"), DOW, 4},
	{[]byte("today"), Reserv, int32(KindToday)},
	{[]byte("tomorrow"), Reserv, int32(KindTomorrow)},
	{[]byte("tue"), DOW, 2},
	{[]byte("tues"), DOW, 2},
	{[]byte("tuesday"), DOW, 2},
	{[]byte("undefined"), Reserv, int32(KindInvalid)},
	{[]byte("wed"), DOW, 3},
	{[]byte("wednesday"), DOW, 3},
	{[]byte("weds"), DOW, 3},
	{[]byte("y"), Units, int32(KindYear)},
	{[]byte("yesterday"), Reserv, int32(KindYesterday)},
}

// DeltaTable holds the keywords recognized in interval/duration input:
// unit names ("day", "hours", "yrs"), the "ago" suffix, and the bare "@"
// interval-literal marker. Entries are sorted lexicographically by Text,
// which Lookup requires.
var DeltaTable = []DateToken{
	{[]byte("@"), IgnoreDTF, 0},
	{[]byte("ago"), Ago, 0},
	{[]byte("c"), Units, int32(KindCentury)},
	{[]byte("cent"), Units, int32(KindCentury)},
	{[]byte("centuries"), Units, int32(KindCentury)},
	{[]byte("century"), Units, int32(KindCentury)},
	{[]byte("d"), Units, int32(KindDay)},
	{[]byte("day"), Units, int32(KindDay)},
	{[]byte("days"), Units, int32(KindDay)},
	{[]byte("dec"), Units, int32(KindDecade)},
	{[]byte("decade"), Units, int32(KindDecade)},
	{[]byte("decades"), Units, int32(KindDecade)},
	{[]byte("decs"), Units, int32(KindDecade)},
	{[]byte("h"), Units, int32(KindHour)},
	{[]byte("hour"), Units, int32(KindHour)},
	{[]byte("hours"), Units, int32(KindHour)},
	{[]byte("hr"), Units, int32(KindHour)},
	{[]byte("hrs"), Units, int32(KindHour)},
	{[]byte("invalid"), Reserv, int32(KindInvalid)},
	{[]byte("m"), Units, int32(KindMinute)},
	{[]byte("microsecon"), Units, int32(KindMicrosecond)},
	{[]byte("mil"), Units, int32(KindMillennium)},
	{[]byte("millennia"), Units, int32(KindMillennium)},
	{[]byte("millennium"), Units, int32(KindMillennium)},
	{[]byte("millisecon"), Units, int32(KindMillisecond)},
	{[]byte("mils"), Units, int32(KindMillennium)},
	{[]byte("min"), Units, int32(KindMinute)},
	{[]byte("mins"), Units, int32(KindMinute)},
	{[]byte("minute"), Units, int32(KindMinute)},
	{[]byte("minutes"), Units, int32(KindMinute)},
	{[]byte("mon"), Units, int32(KindMonth)},
	{[]byte("mons"), Units, int32(KindMonth)},
	{[]byte("month"), Units, int32(KindMonth)},
	{[]byte("months"), Units, int32(KindMonth)},
	{[]byte("ms"), Units, int32(KindMillisecond)},
	{[]byte("msec"), Units, int32(KindMillisecond)},
	{[]byte("msecond"), Units, int32(KindMillisecond)},
	{[]byte("mseconds"), Units, int32(KindMillisecond)},
	{[]byte("msecs"), Units, int32(KindMillisecond)},
	{[]byte("qtr"), Units, int32(KindQuarter)},
	{[]byte("quarter"), Units, int32(KindQuarter)},
	{[]byte("s"), Units, int32(KindSecond)},
	{[]byte("sec"), Units, int32(KindSecond)},
	{[]byte("second"), Units, int32(KindSecond)},
	{[]byte("seconds"), Units, int32(KindSecond)},
	{[]byte("secs"), Units, int32(KindSecond)},
	{[]byte("timezone"), Units, int32(KindTZ)},
	{[]byte("timezone_h"), Units, int32(KindTZHour)},
	{[]byte("timezone_m"), Units, int32(KindTZMinute)},
	{[]byte("undefined"), Reserv, int32(KindInvalid)},
	{[]byte("us"), Units, int32(KindMicrosecond)},
	{[]byte("usec"), Units, int32(KindMicrosecond)},
	{[]byte("usecond"), Units, int32(KindMicrosecond)},
	{[]byte("useconds"), Units, int32(KindMicrosecond)},
	{[]byte("usecs"), Units, int32(KindMicrosecond)},
	{[]byte("w"), Units, int32(KindWeek)},
	{[]byte("week"), Units, int32(KindWeek)},
	{[]byte("weeks"), Units, int32(KindWeek)},
	{[]byte("y"), Units, int32(KindYear)},
	{[]byte("year"), Units, int32(KindYear)},
	{[]byte("years"), Units, int32(KindYear)},
	{[]byte("yr"), Units, int32(KindYear)},
	{[]byte("yrs"), Units, int32(KindYear)},
}

// Lookup binary-searches table for key, which must already be lowercase.
// table must be sorted ascending by Text (DateTable and DeltaTable both
// are). As a cheap pre-check before the full comparison, a candidate is
// rejected by first byte alone whenever key and the midpoint entry
// disagree there, since that alone fixes which half to search next.
func Lookup(key []byte, table []DateToken) (*DateToken, bool) {
	if len(key) == 0 {
		return nil, false
	}

	base, last := 0, len(table)-1
	for last >= base {
		pos := base + (last-base)/2
		entry := &table[pos]

		var cmp int
		if key[0] != entry.Text[0] {
			if key[0] < entry.Text[0] {
				cmp = -1
			} else {
				cmp = 1
			}
		} else {
			cmp = bytes.Compare(key, entry.Text)
		}

		switch {
		case cmp == 0:
			return entry, true
		case cmp < 0:
			last = pos - 1
		default:
			base = pos + 1
		}
	}
	return nil, false
}
