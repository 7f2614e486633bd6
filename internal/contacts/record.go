package contacts

import (
	"fmt"
	"strings"
)

// Record holds one contact: its name, phones in insertion order and an optional birthday
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the given name
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record key
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the record phones
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates and appends a phone
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to value
func (r *Record) RemovePhone(value string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != value {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// RemovePhones clears the phone list
func (r *Record) RemovePhones() {
	r.phones = nil
}

// EditPhone replaces the first phone equal to oldValue.
// The new value is validated even when oldValue is absent.
func (r *Record) EditPhone(oldValue, newValue string) error {
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].value == oldValue {
			r.phones[i] = p
			break
		}
	}
	return nil
}

// FindPhone returns the first phone equal to value
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == value {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates and overwrites the birthday
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday if one was set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// PhoneList renders the phones joined by "; "
func (r *Record) PhoneList() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.value
	}
	return strings.Join(parts, "; ")
}

func (r *Record) String() string {
	s := fmt.Sprintf("Contact name: %s, phones: %s", r.name, r.PhoneList())
	if r.birthday != nil {
		s += ", birthday: " + r.birthday.String()
	}
	return s
}
