// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/repository"
)

// ErrTest is returned by FakeRepository while errors are switched on.
var ErrTest = errors.New("test exception")

// FakeRepository is an in-memory [repository.Repository] without caching,
// keeping insertion order. Thread-safety: all methods are safe for
// concurrent use via internal mutex.
type FakeRepository struct {
	mu          sync.Mutex
	order       []string
	contacts    map[string]contact.Contact
	returnError bool
}

var _ repository.Repository = (*FakeRepository)(nil)

func NewFakeRepository(cs ...contact.Contact) *FakeRepository {
	r := &FakeRepository{contacts: make(map[string]contact.Contact)}
	r.AddContacts(cs...)
	return r
}

// SetShouldReturnError makes every call except SaveContact fail with [ErrTest].
func (r *FakeRepository) SetShouldReturnError(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.returnError = v
}

// AddContacts stores cs directly.
func (r *FakeRepository) AddContacts(cs ...contact.Contact) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cs {
		r.put(c)
	}
}

// Contacts returns the stored contacts in insertion order.
func (r *FakeRepository) Contacts() []contact.Contact {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list()
}

func (r *FakeRepository) GetContacts(context.Context) ([]contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.returnError {
		return nil, ErrTest
	}
	return r.list(), nil
}

func (r *FakeRepository) GetContact(_ context.Context, id string) (contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.returnError {
		return contact.Contact{}, ErrTest
	}
	c, ok := r.contacts[id]
	if !ok {
		return contact.Contact{}, errors.New("contact not found")
	}
	return c, nil
}

func (r *FakeRepository) SaveContact(_ context.Context, c contact.Contact) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(c)
}

func (r *FakeRepository) UpdateContact(_ context.Context, c contact.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.returnError {
		return ErrTest
	}
	r.put(c)
	return nil
}

func (r *FakeRepository) DeleteContact(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.returnError {
		return ErrTest
	}
	if _, ok := r.contacts[id]; ok {
		delete(r.contacts, id)
		for i, existing := range r.order {
			if existing == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

func (r *FakeRepository) DeleteAllContacts(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.returnError {
		return ErrTest
	}
	clear(r.contacts)
	r.order = nil
	return nil
}

func (r *FakeRepository) put(c contact.Contact) {
	if _, ok := r.contacts[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.contacts[c.ID] = c
}

func (r *FakeRepository) list() []contact.Contact {
	out := make([]contact.Contact, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.contacts[id])
	}
	return out
}
