package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/dispatch"
	"github.com/roach88/contacts/internal/testutil"
)

func newListFixture(t *testing.T) (*List, *testutil.FakeRepository, *dispatch.Queue) {
	t.Helper()
	repo := testutil.NewFakeRepository(testContact1, testContact2)
	queue := &dispatch.Queue{}
	vm := NewList(repo, queue)
	t.Cleanup(vm.Close)
	return vm, repo, queue
}

func TestList_LoadContacts_Success(t *testing.T) {
	vm, _, queue := newListFixture(t)

	vm.LoadContacts()
	assert.True(t, vm.DataLoading.Get())

	queue.RunPending()
	assert.False(t, vm.DataLoading.Get())
	assert.Len(t, vm.Contacts.Get(), 2)
	assertNoEvent(t, &vm.ShowMessageEvent)
}

func TestList_LoadContacts_Error(t *testing.T) {
	vm, repo, queue := newListFixture(t)
	repo.SetShouldReturnError(true)

	vm.LoadContacts()
	assert.True(t, vm.DataLoading.Get())

	queue.RunPending()
	assert.False(t, vm.DataLoading.Get())
	contacts, set := vm.Contacts.Value()
	assert.True(t, set)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
	assertEventTriggered(t, &vm.ShowMessageEvent, MessageErrorLoadingContacts)
}

func TestList_ShowDeleteAllContactsAlert(t *testing.T) {
	vm, _, _ := newListFixture(t)

	vm.ShowDeleteAllContactsAlert()
	assertEventTriggered(t, &vm.DeleteAllAlertEvent, struct{}{})
}

func TestList_DeleteAllContacts_Success(t *testing.T) {
	vm, _, queue := newListFixture(t)
	vm.LoadContacts()
	queue.RunPending()
	require.Len(t, vm.Contacts.Get(), 2)

	vm.DeleteAllContacts()
	assert.True(t, vm.DataLoading.Get())

	queue.RunPending()
	assert.False(t, vm.DataLoading.Get())
	assert.Empty(t, vm.Contacts.Get())
	assertEventTriggered(t, &vm.ShowMessageEvent, MessageAllContactsDeleted)
}

func TestList_DeleteAllContacts_Error(t *testing.T) {
	vm, repo, queue := newListFixture(t)
	vm.LoadContacts()
	queue.RunPending()
	require.Len(t, vm.Contacts.Get(), 2)

	repo.SetShouldReturnError(true)
	vm.DeleteAllContacts()
	assert.True(t, vm.DataLoading.Get())

	queue.RunPending()
	assert.False(t, vm.DataLoading.Get())
	assert.Len(t, vm.Contacts.Get(), 2)
	assertEventTriggered(t, &vm.ShowMessageEvent, MessageErrorDeletingAllContacts)
}

func TestList_AddNewContact(t *testing.T) {
	vm, _, _ := newListFixture(t)

	vm.AddNewContact()
	assertEventTriggered(t, &vm.AddNewContactEvent, struct{}{})
}

func TestList_OpenContact(t *testing.T) {
	vm, _, _ := newListFixture(t)

	vm.OpenContact(testContact1.ID)
	assertEventTriggered(t, &vm.OpenContactEvent, testContact1.ID)
}

func TestList_ClosedScreenAbandonsWork(t *testing.T) {
	vm, _, queue := newListFixture(t)

	vm.LoadContacts()
	vm.Close()
	queue.RunPending()

	_, set := vm.Contacts.Value()
	assert.False(t, set)
	assert.False(t, vm.DataLoading.Get())
}

func TestList_WithPool(t *testing.T) {
	repo := testutil.NewFakeRepository(testContact2, testContact1)
	pool := &dispatch.Pool{}
	vm := NewList(repo, pool)
	defer vm.Close()

	vm.LoadContacts()
	pool.Wait()

	assert.False(t, vm.DataLoading.Get())
	assert.Equal(t, []contact.Contact{testContact2, testContact1}, vm.Contacts.Get())
}
