package token

import (
	"testing"

	"github.com/matryer/is"
)

func TestLookupDateTableFound(t *testing.T) {
	is := is.New(t)

	tok, ok := Lookup([]byte("april"), DateTable)
	is.True(ok)
	is.Equal(tok.Category, Month)
	is.Equal(tok.Value, int32(4))

	tok, ok = Lookup([]byte("monday"), DateTable)
	is.True(ok)
	is.Equal(tok.Category, DOW)
	is.Equal(tok.Value, int32(1))

	tok, ok = Lookup([]byte("friday"), DateTable)
	is.True(ok)
	is.Equal(tok.Category, DOW)
	is.Equal(tok.Value, int32(5))
}

func TestLookupDateTableNotFound(t *testing.T) {
	is := is.New(t)

	_, ok := Lookup([]byte("not_found"), DateTable)
	is.True(!ok)
}

func TestLookupDateTableFirstAndLast(t *testing.T) {
	is := is.New(t)

	tok, ok := Lookup([]byte("-infinity"), DateTable)
	is.True(ok)
	is.Equal(tok.Category, Reserv)

	tok, ok = Lookup([]byte("yesterday"), DateTable)
	is.True(ok)
	is.Equal(tok.Category, Reserv)
}

func TestLookupDeltaTable(t *testing.T) {
	is := is.New(t)

	tok, ok := Lookup([]byte("yrs"), DeltaTable)
	is.True(ok)
	is.Equal(tok.Category, Units)
	is.Equal(tok.Value, int32(KindYear))

	tok, ok = Lookup([]byte("@"), DeltaTable)
	is.True(ok)
	is.Equal(tok.Category, IgnoreDTF)

	_, ok = Lookup([]byte("bogus"), DeltaTable)
	is.True(!ok)
}

func TestLookupEmptyKey(t *testing.T) {
	is := is.New(t)

	_, ok := Lookup([]byte(""), DateTable)
	is.True(!ok)
}

func TestTablesAreSorted(t *testing.T) {
	is := is.New(t)

	for _, table := range [][]DateToken{DateTable, DeltaTable} {
		for i := 1; i < len(table); i++ {
			is.True(string(table[i-1].Text) < string(table[i].Text))
		}
	}
}
