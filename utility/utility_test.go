package utility

import (
	"testing"

	"github.com/matryer/is"
)

func TestBytesToString(t *testing.T) {
	is := is.New(t)
	is.Equal(BytesToString('a', 'b', 'c'), "abc")
	is.Equal(BytesToString(), "")
}

func TestRunesToString(t *testing.T) {
	is := is.New(t)
	is.Equal(RunesToString('a', 'b', 'c'), "abc")
}

func TestDigitCount(t *testing.T) {
	is := is.New(t)
	is.Equal(DigitCount(0), int64(0))
	is.Equal(DigitCount(7), int64(1))
	is.Equal(DigitCount(1997), int64(4))
	is.Equal(DigitCount(-1997), int64(4))
}
