package contacts

import (
	"iter"
	"slices"

	"go.uber.org/zap"
)

// AddressBook maps contact names to their records
type AddressBook struct {
	records map[string]*Record
	logger  *zap.Logger
}

// NewAddressBook creates an empty address book
func NewAddressBook(logger *zap.Logger) *AddressBook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressBook{
		records: make(map[string]*Record),
		logger:  logger,
	}
}

// Add stores the record under its name, replacing any existing record entirely
func (b *AddressBook) Add(record *Record) {
	name := record.Name()
	_, replaced := b.records[name]
	b.records[name] = record

	b.logger.Debug("Record stored",
		zap.String("name", name),
		zap.Int("phones", len(record.phones)),
		zap.Bool("replaced", replaced))
}

// Find returns the record stored under name
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Get is Find with a NotFoundError for missing names
func (b *AddressBook) Get(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return r, nil
}

// Delete removes the record stored under name, if any
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	b.logger.Debug("Record deleted", zap.String("name", name))
}

// Len returns the number of stored records
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Names returns all stored names in ascending order
func (b *AddressBook) Names() []string {
	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All yields (name, record) pairs in ascending name order.
// The name set is snapshotted when iteration starts; each call starts over.
func (b *AddressBook) All() iter.Seq2[string, *Record] {
	return func(yield func(string, *Record) bool) {
		for _, name := range b.Names() {
			r, ok := b.records[name]
			if !ok {
				continue
			}
			if !yield(name, r) {
				return
			}
		}
	}
}
