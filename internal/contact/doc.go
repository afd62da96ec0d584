// Package contact defines the contact record shared by every layer of the
// application: the store persists it, the repository caches it and the
// view-models present it.
//
// A Contact is identified by an opaque string ID that is generated once at
// creation time and never changes. Records are replaced whole; there is no
// partial-field update.
package contact
