package store

import (
	"context"

	"github.com/roach88/contacts/internal/contact"
)

// Table is a keyed table of contacts.
//
// Affected-row counts are 0 when nothing matched and 1 otherwise for keyed
// operations. DeleteAll reports how many rows it removed.
type Table interface {
	// ScanAll returns every record in unspecified order.
	ScanAll(ctx context.Context) ([]contact.Contact, error)

	// GetByID returns the record stored under id. A miss is reported with
	// ok=false and a nil error.
	GetByID(ctx context.Context, id string) (c contact.Contact, ok bool, err error)

	// Upsert inserts c, or replaces the record with the same ID in place.
	Upsert(ctx context.Context, c contact.Contact) error

	// UpdateByKey replaces the record matching c.ID if one exists.
	UpdateByKey(ctx context.Context, c contact.Contact) (int64, error)

	// DeleteByID removes the record stored under id.
	DeleteByID(ctx context.Context, id string) (int64, error)

	// DeleteAll removes every record.
	DeleteAll(ctx context.Context) (int64, error)
}
