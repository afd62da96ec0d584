// Package viewmodel exposes repository data to a presentation layer as
// observable state plus one-shot events.
//
// Three view-models are provided, one per screen:
//   - [List]: all contacts, delete-all, navigation to add/open
//   - [Detail]: one contact, delete, navigation to edit
//   - [Editor]: create or update a contact with input validation
//
// Every asynchronous operation follows the same shape: DataLoading is set to
// true on the caller's goroutine, the repository call runs on the
// [dispatch.Dispatcher], results are published, and DataLoading is reset to
// false whatever the outcome. Failures surface as a [MessageID] on
// ShowMessageEvent, never as the raw cause.
package viewmodel
