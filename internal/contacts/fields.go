package contacts

import (
	"strings"
	"time"

	"github.com/username/assistant-bot/pkg/dateutil"
)

// Name is a validated, non-empty contact name
type Name struct {
	value string
}

// Phone is a validated 10-digit phone number
type Phone struct {
	value string
}

// Birthday is a validated DD.MM.YYYY date
type Birthday struct {
	value string
	date  time.Time
}

// ValidateName reports whether value is usable as a contact name
func ValidateName(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidatePhone reports whether value is exactly 10 decimal digits
func ValidatePhone(value string) bool {
	if len(value) != 10 {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateBirthday reports whether value is a real calendar date in DD.MM.YYYY form
func ValidateBirthday(value string) bool {
	_, err := dateutil.ParseBirthday(value)
	return err == nil
}

// NewName validates and wraps a contact name
func NewName(value string) (Name, error) {
	if !ValidateName(value) {
		return Name{}, &ValidationError{Field: "name", Value: value, Msg: "Name cannot be empty"}
	}
	return Name{value: value}, nil
}

// NewPhone validates and wraps a phone number
func NewPhone(value string) (Phone, error) {
	if !ValidatePhone(value) {
		return Phone{}, &ValidationError{Field: "phone", Value: value, Msg: "Invalid phone number format"}
	}
	return Phone{value: value}, nil
}

// NewBirthday validates and wraps a birthday
func NewBirthday(value string) (Birthday, error) {
	date, err := dateutil.ParseBirthday(value)
	if err != nil {
		return Birthday{}, &ValidationError{
			Field: "birthday",
			Value: value,
			Msg:   "Invalid birthday format. Use DD.MM.YYYY",
		}
	}
	return Birthday{value: value, date: date}, nil
}

func (n Name) String() string  { return n.value }
func (p Phone) String() string { return p.value }

func (b Birthday) String() string { return b.value }

// Date returns the parsed birthday at midnight UTC
func (b Birthday) Date() time.Time { return b.date }

// Month returns the birthday month
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the birthday day of month
func (b Birthday) Day() int { return b.date.Day() }
