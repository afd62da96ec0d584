package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contacts/internal/contact"
)

func TestList_Golden(t *testing.T) {
	db := newTestDB(t, bob, alice)

	out, err := execute(t, nil, "list", "--db", db)
	require.NoError(t, err)
	assertGolden(t, "list", out)
}

func TestList_JSONGolden(t *testing.T) {
	db := newTestDB(t, bob, alice)

	out, err := execute(t, nil, "list", "--db", db, "--format", "json")
	require.NoError(t, err)
	assertGolden(t, "list_json", out)
}

func TestList_Empty(t *testing.T) {
	out, err := execute(t, nil, "list", "--db", newTestDB(t))
	require.NoError(t, err)
	assert.Equal(t, "No contacts.\n", out)
}

func TestList_DatabaseNotOpenable(t *testing.T) {
	_, err := execute(t, nil, "list", "--db", "/nonexistent/path/contacts.db")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to open database")
}

func TestShow_Golden(t *testing.T) {
	db := newTestDB(t, alice, bob)

	out, err := execute(t, nil, "show", "c-2", "--db", db)
	require.NoError(t, err)
	assertGolden(t, "show", out)
}

func TestShow_NotFound(t *testing.T) {
	_, err := execute(t, nil, "show", "missing", "--db", newTestDB(t, alice))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "contact missing not found")
}

func TestAdd(t *testing.T) {
	db := newTestDB(t)

	out, err := execute(t, contact.NewFixedGenerator("new-1"), "add", "--db", db, "--name", "Carol", "--mobile", "0123")
	require.NoError(t, err)
	assert.Equal(t, "Contact saved (new-1)\n", out)

	assert.Equal(t, []contact.Contact{{ID: "new-1", Name: "Carol", Mobile: "0123"}}, storedContacts(t, db))
}

func TestAdd_NormalizesName(t *testing.T) {
	db := newTestDB(t)

	_, err := execute(t, contact.NewFixedGenerator("new-1"), "add", "--db", db, "--name", "Jose\u0301", "--mobile", "1")
	require.NoError(t, err)

	stored := storedContacts(t, db)
	require.Len(t, stored, 1)
	assert.Equal(t, "Jos\u00e9", stored[0].Name)
}

func TestAdd_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantText string
	}{
		{"empty name", []string{"--mobile", "1"}, "error_empty_name", "Name must not be empty"},
		{"empty mobile", []string{"--name", "Dan"}, "error_empty_mobile", "Mobile must not be empty"},
		{"both empty", nil, "error_empty_name", "Name must not be empty"},
		{"non-digit mobile", []string{"--name", "Dan", "--mobile", "+1 555"}, "error_invalid_mobile", "Mobile must contain digits only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			args := append([]string{"add", "--db", db, "--format", "json"}, tt.args...)

			out, err := execute(t, contact.NewFixedGenerator("unused"), args...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Equal(t, tt.wantText, err.Error())

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			assert.Empty(t, storedContacts(t, db))
		})
	}
}

func TestEdit(t *testing.T) {
	db := newTestDB(t, alice, bob)

	out, err := execute(t, nil, "edit", "c-1", "--db", db, "--mobile", "999")
	require.NoError(t, err)
	assert.Equal(t, "Contact saved (c-1)\n", out)

	assert.Equal(t, []contact.Contact{
		{ID: "c-1", Name: "Alice", Mobile: "999"},
		bob,
	}, storedContacts(t, db))
}

func TestEdit_Name(t *testing.T) {
	db := newTestDB(t, alice)

	_, err := execute(t, nil, "edit", "c-1", "--db", db, "--name", "Alicia")
	require.NoError(t, err)
	assert.Equal(t, []contact.Contact{{ID: "c-1", Name: "Alicia", Mobile: "5551234"}}, storedContacts(t, db))
}

func TestEdit_NothingToChange(t *testing.T) {
	_, err := execute(t, nil, "edit", "c-1", "--db", newTestDB(t, alice))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEdit_NotFound(t *testing.T) {
	_, err := execute(t, nil, "edit", "missing", "--db", newTestDB(t, alice), "--name", "X")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestEdit_InvalidMobileKeepsStoredContact(t *testing.T) {
	db := newTestDB(t, alice)

	_, err := execute(t, nil, "edit", "c-1", "--db", db, "--mobile", "")
	require.Error(t, err)
	assert.Equal(t, "Mobile must not be empty", err.Error())
	assert.Equal(t, []contact.Contact{alice}, storedContacts(t, db))
}

func TestDelete(t *testing.T) {
	db := newTestDB(t, alice, bob)

	out, err := execute(t, nil, "delete", "c-1", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Contact deleted (c-1)\n", out)
	assert.Equal(t, []contact.Contact{bob}, storedContacts(t, db))
}

func TestDelete_NotFound(t *testing.T) {
	_, err := execute(t, nil, "delete", "missing", "--db", newTestDB(t, alice))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestDeleteAll_RequiresConfirmation(t *testing.T) {
	db := newTestDB(t, alice, bob)

	_, err := execute(t, nil, "delete-all", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Len(t, storedContacts(t, db), 2)
}

func TestDeleteAll(t *testing.T) {
	db := newTestDB(t, alice, bob)

	out, err := execute(t, nil, "delete-all", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Equal(t, "All contacts deleted\n", out)
	assert.Empty(t, storedContacts(t, db))
}

func TestDeleteAll_EmptyDatabaseFails(t *testing.T) {
	_, err := execute(t, nil, "delete-all", "--db", newTestDB(t), "--yes")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Error deleting all contacts", err.Error())
}
