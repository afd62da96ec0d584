package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contacts/internal/contact"
)

var (
	testContact1   = contact.Contact{ID: "id-1", Name: "Test Contact 1", Mobile: "1234567891"}
	testContact2   = contact.Contact{ID: "id-2", Name: "Test Contact 2", Mobile: "1234567892"}
	testNewContact = contact.Contact{ID: "id-new", Name: "Test New Contact", Mobile: "1234567899"}
)

// assertEventTriggered checks that the latest event carries want and has not
// been consumed yet, consuming it.
func assertEventTriggered[T any](t *testing.T, l *Live[*Event[T]], want T) {
	t.Helper()
	ev, ok := l.Value()
	require.True(t, ok, "event was never emitted")
	got, ok := ev.Take()
	require.True(t, ok, "event was already handled")
	assert.Equal(t, want, got)
}

// assertNoEvent checks that nothing was emitted on l.
func assertNoEvent[T any](t *testing.T, l *Live[*Event[T]]) {
	t.Helper()
	_, ok := l.Value()
	assert.False(t, ok, "unexpected event")
}
