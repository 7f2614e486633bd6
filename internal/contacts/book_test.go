package contacts

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

type AddressBookSuite struct {
	suite.Suite
	book *AddressBook
}

func (s *AddressBookSuite) SetupTest() {
	s.book = NewAddressBook(zaptest.NewLogger(s.T()))
}

func TestAddressBookSuite(t *testing.T) {
	suite.Run(t, new(AddressBookSuite))
}

func (s *AddressBookSuite) newRecord(name string, phones ...string) *Record {
	r, err := NewRecord(name)
	s.Require().NoError(err)
	for _, p := range phones {
		s.Require().NoError(r.AddPhone(p))
	}
	return r
}

// TestAddAndFind verifies a stored record comes back with the same name and phones.
func (s *AddressBookSuite) TestAddAndFind() {
	s.Run("round trip", func() {
		s.book.Add(s.newRecord("Ann", "0501234567", "0671234567"))

		found, ok := s.book.Find("Ann")
		s.Require().True(ok)
		s.Equal("Ann", found.Name())
		s.Equal("0501234567; 0671234567", found.PhoneList())
	})

	s.Run("missing name", func() {
		_, ok := s.book.Find("Nobody")
		s.False(ok)

		_, err := s.book.Get("Nobody")
		s.Require().ErrorIs(err, ErrNotFound)
		s.EqualError(err, "Contact 'Nobody' not found.")
	})
}

// TestOverwrite verifies a second add under the same name replaces phones and birthday.
func (s *AddressBookSuite) TestOverwrite() {
	first := s.newRecord("Ann", "0501234567")
	s.Require().NoError(first.SetBirthday("05.06.1990"))
	s.book.Add(first)

	s.book.Add(s.newRecord("Ann", "0931112233"))

	found, err := s.book.Get("Ann")
	s.Require().NoError(err)
	s.Equal("0931112233", found.PhoneList())
	_, hasBirthday := found.Birthday()
	s.False(hasBirthday)
	s.Equal(1, s.book.Len())
}

// TestDelete verifies delete removes the record and ignores missing names.
func (s *AddressBookSuite) TestDelete() {
	s.book.Add(s.newRecord("Ann", "0501234567"))
	s.book.Add(s.newRecord("Bob", "0671234567"))

	s.book.Delete("Ann")
	s.book.Delete("Nobody")

	_, ok := s.book.Find("Ann")
	s.False(ok)
	s.Equal([]string{"Bob"}, s.book.Names())
}

// TestAllIsOrderedAndRestartable verifies iteration order and that a second pass sees everything again.
func (s *AddressBookSuite) TestAllIsOrderedAndRestartable() {
	for _, name := range []string{"Cid", "Ann", "Bob"} {
		s.book.Add(s.newRecord(name, "0501234567"))
	}

	collect := func() []string {
		var names []string
		for name, r := range s.book.All() {
			s.Equal(name, r.Name())
			names = append(names, name)
		}
		return names
	}

	s.Equal([]string{"Ann", "Bob", "Cid"}, collect())
	s.Equal([]string{"Ann", "Bob", "Cid"}, collect())
}

// TestAllStopsEarly verifies the iterator honours a break.
func (s *AddressBookSuite) TestAllStopsEarly() {
	for _, name := range []string{"Ann", "Bob", "Cid"} {
		s.book.Add(s.newRecord(name))
	}

	var seen []string
	for name := range s.book.All() {
		seen = append(seen, name)
		if name == "Bob" {
			break
		}
	}
	s.Equal([]string{"Ann", "Bob"}, seen)
}
