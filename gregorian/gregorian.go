// Package gregorian holds the small, static facts about the proleptic
// Gregorian calendar that the decoder needs to validate a day-of-month
// against a year: which years are leap years, and how many days each
// month has as a result.
package gregorian

// dayTab mirrors the two-row day-count table used throughout calendar
// arithmetic: dayTab[0] for common years, dayTab[1] for leap years, indexed
// by month-1. February (index 1) is the only entry that differs between
// the two rows.
var dayTab = [2][12]int{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// IsLeap reports whether year is a leap year under the Gregorian rule:
// divisible by 4, except centuries, which must also be divisible by 400.
// year uses astronomical numbering, so 0 (= 1 BC) is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month (1-12) of year. It
// reports ok=false if month is out of range.
func DaysIn(year, month int) (days int, ok bool) {
	if month < 1 || month > 12 {
		return 0, false
	}
	row := 0
	if IsLeap(year) {
		row = 1
	}
	return dayTab[row][month-1], true
}
