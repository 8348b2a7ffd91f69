package gregorian

import (
	"testing"

	"github.com/matryer/is"
)

func TestIsLeap(t *testing.T) {
	is := is.New(t)

	is.True(IsLeap(2000))
	is.True(IsLeap(2016))
	is.True(!IsLeap(1900))
	is.True(!IsLeap(2001))
	is.True(IsLeap(0))
}

func TestDaysIn(t *testing.T) {
	is := is.New(t)

	d, ok := DaysIn(2016, 2)
	is.True(ok)
	is.Equal(d, 29)

	d, ok = DaysIn(2017, 2)
	is.True(ok)
	is.Equal(d, 28)

	d, ok = DaysIn(2017, 4)
	is.True(ok)
	is.Equal(d, 30)

	_, ok = DaysIn(2017, 13)
	is.True(!ok)
}
