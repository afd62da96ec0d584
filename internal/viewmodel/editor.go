package viewmodel

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/dispatch"
	"github.com/roach88/contacts/internal/repository"
)

var (
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyMobile   = errors.New("empty mobile")
	ErrInvalidMobile = errors.New("invalid mobile")
)

// mobileRe matches one or more decimal digits.
var mobileRe = regexp.MustCompile(`^[0-9]+$`)

// ValidateInput checks editor input, reporting the first problem found in
// the order: empty name, empty mobile, non-digit mobile.
func ValidateInput(name, mobile string) error {
	switch {
	case name == "":
		return ErrEmptyName
	case mobile == "":
		return ErrEmptyMobile
	case !mobileRe.MatchString(mobile):
		return ErrInvalidMobile
	}
	return nil
}

var validationMessages = map[error]MessageID{
	ErrEmptyName:     MessageErrorEmptyName,
	ErrEmptyMobile:   MessageErrorEmptyMobile,
	ErrInvalidMobile: MessageErrorInvalidMobile,
}

// Editor backs the add/edit contact screen.
//
// Name and Mobile are two-way fields: the screen writes user input into them
// and LoadContact fills them from the stored contact.
type Editor struct {
	screen

	Name   Live[string]
	Mobile Live[string]

	Contact       Live[*contact.Contact]
	DataAvailable Live[bool]

	ContactSavedEvent   Live[*Signal]
	ContactUpdatedEvent Live[*Signal]
	CloseKeyboardEvent  Live[*Signal]

	ids contact.IDGenerator

	mu        sync.Mutex
	contactID string
}

// NewEditor returns an Editor screen. New contacts get their ID from ids.
func NewEditor(repo repository.Repository, d dispatch.Dispatcher, ids contact.IDGenerator) *Editor {
	vm := &Editor{ids: ids}
	vm.init(repo, d)
	return vm
}

// LoadContact prepares the editor. An empty id starts a new contact without
// touching the repository.
func (vm *Editor) LoadContact(id string) {
	vm.mu.Lock()
	vm.contactID = id
	vm.mu.Unlock()
	if id == "" {
		return
	}

	vm.launch(func(ctx context.Context) {
		c, err := vm.repo.GetContact(ctx, id)
		if err != nil {
			vm.Contact.Set(nil)
			vm.Name.Reset()
			vm.Mobile.Reset()
			vm.DataAvailable.Set(false)
			vm.showMessage(MessageErrorLoadingContact)
			return
		}
		vm.Contact.Set(&c)
		vm.Name.Set(c.Name)
		vm.Mobile.Set(c.Mobile)
		vm.DataAvailable.Set(true)
	})
}

// SaveContact validates the input and then creates or updates the contact,
// depending on whether an existing contact was loaded.
// Names are stored in Unicode NFC form.
func (vm *Editor) SaveContact() {
	if !vm.hasValidData() {
		return
	}
	signal(&vm.CloseKeyboardEvent)

	name := norm.NFC.String(vm.Name.Get())
	mobile := vm.Mobile.Get()

	vm.mu.Lock()
	id := vm.contactID
	vm.mu.Unlock()

	if id == "" {
		vm.createNewContact(contact.New(vm.ids, name, mobile))
		return
	}
	vm.updateContact(contact.WithID(id, name, mobile))
}

func (vm *Editor) hasValidData() bool {
	err := ValidateInput(vm.Name.Get(), vm.Mobile.Get())
	if err != nil {
		vm.showMessage(validationMessages[err])
		return false
	}
	return true
}

func (vm *Editor) createNewContact(c contact.Contact) {
	vm.launch(func(ctx context.Context) {
		vm.repo.SaveContact(ctx, c)
		signal(&vm.ContactSavedEvent)
		vm.showMessage(MessageContactSaved)
	})
}

func (vm *Editor) updateContact(c contact.Contact) {
	vm.launch(func(ctx context.Context) {
		if err := vm.repo.UpdateContact(ctx, c); err != nil {
			vm.showMessage(MessageErrorSaveContact)
			return
		}
		signal(&vm.ContactUpdatedEvent)
		vm.showMessage(MessageContactSaved)
	})
}
