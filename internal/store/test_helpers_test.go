package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/contacts/internal/contact"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// tables returns every Table implementation under test, each empty.
func tables(t *testing.T) map[string]Table {
	t.Helper()
	return map[string]Table{
		"sqlite": createTestStore(t),
		"memory": NewMemory(),
	}
}

func testContact(id, name, mobile string) contact.Contact {
	return contact.Contact{ID: id, Name: name, Mobile: mobile}
}
