package cli

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/store"
)

var (
	alice = contact.Contact{ID: "c-1", Name: "Alice", Mobile: "5551234"}
	bob   = contact.Contact{ID: "c-2", Name: "Bob", Mobile: "5555678"}
)

// newTestDB creates a database file under t.TempDir holding contacts.
func newTestDB(t *testing.T, contacts ...contact.Contact) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "contacts.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	for _, c := range contacts {
		require.NoError(t, st.Upsert(t.Context(), c))
	}
	require.NoError(t, st.Close())
	return path
}

// storedContacts reads the database at path directly.
func storedContacts(t *testing.T, path string) []contact.Contact {
	t.Helper()

	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	contacts, err := st.ScanAll(t.Context())
	require.NoError(t, err)
	contact.SortByName(contacts)
	return contacts
}

// execute runs the root command with args and returns its stdout. Logging
// is limited to errors unless args pick a level.
// A nil ids uses the default generator.
func execute(t *testing.T, ids contact.IDGenerator, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand(&RootOptions{IDs: ids})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	if !slices.Contains(args, "--log-level") {
		args = append(args, "--log-level", "error")
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}
