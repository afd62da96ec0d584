package cli

import "github.com/roach88/contacts/internal/viewmodel"

var messageTexts = map[viewmodel.MessageID]string{
	viewmodel.MessageErrorLoadingContacts:     "Error loading contacts",
	viewmodel.MessageErrorLoadingContact:      "Error loading contact",
	viewmodel.MessageAllContactsDeleted:       "All contacts deleted",
	viewmodel.MessageErrorDeletingAllContacts: "Error deleting all contacts",
	viewmodel.MessageContactDeleted:           "Contact deleted",
	viewmodel.MessageErrorDeleteContact:       "Error deleting contact",
	viewmodel.MessageContactSaved:             "Contact saved",
	viewmodel.MessageErrorSaveContact:         "Error saving contact",
	viewmodel.MessageErrorEmptyName:           "Name must not be empty",
	viewmodel.MessageErrorEmptyMobile:         "Mobile must not be empty",
	viewmodel.MessageErrorInvalidMobile:       "Mobile must contain digits only",
}

// messageText returns the English text for a view-model message.
func messageText(id viewmodel.MessageID) string {
	if text, ok := messageTexts[id]; ok {
		return text
	}
	return id.String()
}

// takeMessage consumes the pending message on a view-model, if any.
func takeMessage(l *viewmodel.Live[*viewmodel.Event[viewmodel.MessageID]]) (viewmodel.MessageID, bool) {
	ev := l.Get()
	if ev == nil {
		return viewmodel.MessageNone, false
	}
	return ev.Take()
}

// takeSignal reports whether the signal fired and consumes it.
func takeSignal(l *viewmodel.Live[*viewmodel.Signal]) bool {
	ev := l.Get()
	if ev == nil {
		return false
	}
	_, ok := ev.Take()
	return ok
}
