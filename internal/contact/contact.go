package contact

import (
	"cmp"
	"slices"
)

// Contact is a single entry in the address book.
type Contact struct {
	ID     string `json:"id"     yaml:"id"`
	Name   string `json:"name"   yaml:"name"`
	Mobile string `json:"mobile" yaml:"mobile"`
}

// New creates a contact with a freshly generated ID.
func New(gen IDGenerator, name, mobile string) Contact {
	return Contact{ID: gen.Generate(), Name: name, Mobile: mobile}
}

// WithID creates a contact reusing an existing ID, used when replacing a
// record that is already stored.
func WithID(id, name, mobile string) Contact {
	return Contact{ID: id, Name: name, Mobile: mobile}
}

// SortByName orders contacts by name ascending in place.
// Contacts with equal names keep a stable order by ID.
func SortByName(contacts []Contact) {
	slices.SortFunc(contacts, func(a, b Contact) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
