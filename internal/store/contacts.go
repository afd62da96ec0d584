package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/contacts/internal/contact"
)

// ScanAll returns every stored contact.
// Returns an empty slice (not nil) if the table is empty.
func (s *SQLite) ScanAll(ctx context.Context) ([]contact.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT entryId, name, mobile FROM contacts`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []contact.Contact{}
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Mobile); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	return contacts, nil
}

// GetByID retrieves a single contact by ID.
func (s *SQLite) GetByID(ctx context.Context, id string) (contact.Contact, bool, error) {
	var c contact.Contact
	err := s.db.QueryRowContext(ctx, `
		SELECT entryId, name, mobile
		FROM contacts
		WHERE entryId = ?
	`, id).Scan(&c.ID, &c.Name, &c.Mobile)
	if errors.Is(err, sql.ErrNoRows) {
		return contact.Contact{}, false, nil
	}
	if err != nil {
		return contact.Contact{}, false, fmt.Errorf("get contact %s: %w", id, err)
	}
	return c, true, nil
}

// Upsert inserts a contact, replacing any existing row with the same ID.
func (s *SQLite) Upsert(ctx context.Context, c contact.Contact) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (entryId, name, mobile)
		VALUES (?, ?, ?)
		ON CONFLICT(entryId) DO UPDATE SET
			name = excluded.name,
			mobile = excluded.mobile
	`, c.ID, c.Name, c.Mobile)
	if err != nil {
		return fmt.Errorf("upsert contact: %w", err)
	}
	return nil
}

// UpdateByKey replaces the row matching c.ID.
func (s *SQLite) UpdateByKey(ctx context.Context, c contact.Contact) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE contacts
		SET name = ?, mobile = ?
		WHERE entryId = ?
	`, c.Name, c.Mobile, c.ID)
	if err != nil {
		return 0, fmt.Errorf("update contact: %w", err)
	}
	return rowsAffected(result, "update contact")
}

// DeleteByID removes the row stored under id.
func (s *SQLite) DeleteByID(ctx context.Context, id string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE entryId = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete contact: %w", err)
	}
	return rowsAffected(result, "delete contact")
}

// DeleteAll removes every row.
func (s *SQLite) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts`)
	if err != nil {
		return 0, fmt.Errorf("delete all contacts: %w", err)
	}
	return rowsAffected(result, "delete all contacts")
}

func rowsAffected(result sql.Result, op string) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	return n, nil
}
