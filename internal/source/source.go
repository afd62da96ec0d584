// Package source adapts a [store.Table] into the local data source used by
// the repository.
//
// Every operation reports success with a nil error. Misses and
// zero-affected-row writes become sentinel errors; table faults are wrapped so
// callers never need to know which table implementation is in use.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/store"
)

var (
	ErrNotFound        = errors.New("contact not found")
	ErrUpdateFailed    = errors.New("failed to update contact")
	ErrDeleteFailed    = errors.New("failed to delete contact")
	ErrDeleteAllFailed = fmt.Errorf("%w: failed to delete all contacts", ErrDeleteFailed)
)

// DataSource is the contract the repository consumes.
type DataSource interface {
	GetContacts(ctx context.Context) ([]contact.Contact, error)
	GetContact(ctx context.Context, id string) (contact.Contact, error)
	SaveContact(ctx context.Context, c contact.Contact) error
	UpdateContact(ctx context.Context, c contact.Contact) error
	DeleteContact(ctx context.Context, id string) error
	DeleteAllContacts(ctx context.Context) error
}

// Local is the [DataSource] backed by a local table.
type Local struct {
	table store.Table
}

var _ DataSource = (*Local)(nil)

func NewLocal(table store.Table) *Local {
	return &Local{table: table}
}

// GetContacts returns a full scan of the table.
func (l *Local) GetContacts(ctx context.Context) ([]contact.Contact, error) {
	contacts, err := l.table.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get contacts: %w", err)
	}
	return contacts, nil
}

// GetContact returns the contact stored under id, or [ErrNotFound].
func (l *Local) GetContact(ctx context.Context, id string) (contact.Contact, error) {
	c, ok, err := l.table.GetByID(ctx, id)
	if err != nil {
		return contact.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	if !ok {
		return contact.Contact{}, ErrNotFound
	}
	return c, nil
}

// SaveContact inserts or replaces c. Unlike the other writes it reports only
// table faults; there is no affected-row check.
func (l *Local) SaveContact(ctx context.Context, c contact.Contact) error {
	if err := l.table.Upsert(ctx, c); err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	return nil
}

// UpdateContact replaces the stored record with c.ID.
// Returns [ErrUpdateFailed] when no record has that ID.
func (l *Local) UpdateContact(ctx context.Context, c contact.Contact) error {
	n, err := l.table.UpdateByKey(ctx, c)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if n == 0 {
		return ErrUpdateFailed
	}
	return nil
}

// DeleteContact removes the record stored under id.
// Returns [ErrDeleteFailed] when no record has that ID.
func (l *Local) DeleteContact(ctx context.Context, id string) error {
	n, err := l.table.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if n == 0 {
		return ErrDeleteFailed
	}
	return nil
}

// DeleteAllContacts removes every record.
// An already empty table is reported as [ErrDeleteAllFailed].
func (l *Local) DeleteAllContacts(ctx context.Context) error {
	n, err := l.table.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("delete all contacts: %w", err)
	}
	if n == 0 {
		return ErrDeleteAllFailed
	}
	return nil
}
