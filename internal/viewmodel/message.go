package viewmodel

// MessageID identifies a user-facing message. Turning it into text is the
// presentation layer's job.
type MessageID int

const (
	MessageNone MessageID = iota
	MessageErrorLoadingContacts
	MessageErrorLoadingContact
	MessageAllContactsDeleted
	MessageErrorDeletingAllContacts
	MessageContactDeleted
	MessageErrorDeleteContact
	MessageContactSaved
	MessageErrorSaveContact
	MessageErrorEmptyName
	MessageErrorEmptyMobile
	MessageErrorInvalidMobile
)

var messageKeys = map[MessageID]string{
	MessageNone:                     "none",
	MessageErrorLoadingContacts:     "error_loading_contacts",
	MessageErrorLoadingContact:      "error_loading_contact",
	MessageAllContactsDeleted:       "all_contacts_deleted",
	MessageErrorDeletingAllContacts: "error_deleting_all_contacts",
	MessageContactDeleted:           "deleted_contact",
	MessageErrorDeleteContact:       "error_delete_contact",
	MessageContactSaved:             "contact_saved",
	MessageErrorSaveContact:         "error_save_contact",
	MessageErrorEmptyName:           "error_empty_name",
	MessageErrorEmptyMobile:         "error_empty_mobile",
	MessageErrorInvalidMobile:       "error_invalid_mobile",
}

// String returns the stable key of the message.
func (m MessageID) String() string {
	if key, ok := messageKeys[m]; ok {
		return key
	}
	return "unknown"
}

// IsError reports whether the message describes a failure.
func (m MessageID) IsError() bool {
	switch m {
	case MessageErrorLoadingContacts,
		MessageErrorLoadingContact,
		MessageErrorDeletingAllContacts,
		MessageErrorDeleteContact,
		MessageErrorSaveContact,
		MessageErrorEmptyName,
		MessageErrorEmptyMobile,
		MessageErrorInvalidMobile:
		return true
	}
	return false
}
