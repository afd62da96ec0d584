package viewmodel

import (
	"context"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/dispatch"
	"github.com/roach88/contacts/internal/repository"
)

// List backs the contacts list screen.
type List struct {
	screen

	Contacts Live[[]contact.Contact]

	DeleteAllAlertEvent Live[*Signal]
	AddNewContactEvent  Live[*Signal]
	OpenContactEvent    Live[*Event[string]]
}

// NewList returns a List screen reading from repo and running its work on d.
func NewList(repo repository.Repository, d dispatch.Dispatcher) *List {
	vm := &List{}
	vm.init(repo, d)
	return vm
}

// LoadContacts fetches all contacts. On failure Contacts becomes an empty list.
func (vm *List) LoadContacts() {
	vm.launch(func(ctx context.Context) {
		contacts, err := vm.repo.GetContacts(ctx)
		if err != nil {
			vm.Contacts.Set([]contact.Contact{})
			vm.showMessage(MessageErrorLoadingContacts)
			return
		}
		vm.Contacts.Set(contacts)
	})
}

// ShowDeleteAllContactsAlert asks the screen to confirm a delete-all.
func (vm *List) ShowDeleteAllContactsAlert() {
	signal(&vm.DeleteAllAlertEvent)
}

// DeleteAllContacts deletes every contact and reloads the list on success.
func (vm *List) DeleteAllContacts() {
	vm.launch(func(ctx context.Context) {
		if err := vm.repo.DeleteAllContacts(ctx); err != nil {
			vm.showMessage(MessageErrorDeletingAllContacts)
			return
		}
		vm.LoadContacts()
		vm.showMessage(MessageAllContactsDeleted)
	})
}

// AddNewContact asks the screen to open an empty editor.
func (vm *List) AddNewContact() {
	signal(&vm.AddNewContactEvent)
}

// OpenContact asks the screen to show the contact stored under id.
func (vm *List) OpenContact(id string) {
	emit(&vm.OpenContactEvent, id)
}
