package viewmodel

import (
	"context"
	"sync"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/dispatch"
	"github.com/roach88/contacts/internal/repository"
)

// Detail backs the screen showing a single contact.
type Detail struct {
	screen

	Contact       Live[*contact.Contact]
	DataAvailable Live[bool]

	EditContactEvent    Live[*Event[string]]
	ContactDeletedEvent Live[*Signal]

	mu        sync.Mutex
	contactID string
}

// NewDetail returns a Detail screen reading from repo and running its
// work on d.
func NewDetail(repo repository.Repository, d dispatch.Dispatcher) *Detail {
	vm := &Detail{}
	vm.init(repo, d)
	return vm
}

// LoadContact fetches the contact to display and remembers its ID for
// later delete and edit requests. A failed fetch clears the contact and
// emits [MessageErrorLoadingContact].
func (vm *Detail) LoadContact(id string) {
	vm.setContactID(id)
	vm.launch(func(ctx context.Context) {
		c, err := vm.repo.GetContact(ctx, id)
		if err != nil {
			vm.Contact.Set(nil)
			vm.DataAvailable.Set(false)
			vm.showMessage(MessageErrorLoadingContact)
			return
		}
		vm.Contact.Set(&c)
		vm.DataAvailable.Set(true)
	})
}

// DeleteContact deletes the loaded contact.
func (vm *Detail) DeleteContact() {
	id := vm.currentID()
	vm.launch(func(ctx context.Context) {
		if err := vm.repo.DeleteContact(ctx, id); err != nil {
			vm.showMessage(MessageErrorDeleteContact)
			return
		}
		signal(&vm.ContactDeletedEvent)
		vm.showMessage(MessageContactDeleted)
	})
}

// EditContact asks the screen to open the editor for the loaded contact.
func (vm *Detail) EditContact() {
	emit(&vm.EditContactEvent, vm.currentID())
}

func (vm *Detail) setContactID(id string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.contactID = id
}

func (vm *Detail) currentID() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.contactID
}
