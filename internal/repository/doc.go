// Package repository serves contacts to the view-models, keeping an
// in-memory cache in front of the local data source.
//
// # Cache
//
// The cache starts unpopulated, which is distinct from empty. It is filled by
// the first successful list fetch or point lookup and from then on only
// changes through mutations made via the repository:
//   - GetContacts serves from the cache when it is populated and non-empty,
//     otherwise fetches everything and replaces the cache contents
//   - GetContact serves a cached entry, otherwise fetches and caches it
//   - SaveContact writes the cache first, then issues the store write in the
//     background without waiting for it
//   - UpdateContact, DeleteContact and DeleteAllContacts touch the cache only
//     after the store confirms the write
//
// Changes made to the store behind the repository's back are not seen while
// the cache is populated.
//
// # Background Saves
//
// A failing background save is logged and counted but never reported to the
// caller. [Cached.Wait] blocks until every issued save has finished.
package repository
