// Package sqlitestore persists consolidated contact records in a SQLite
// database.
//
// The store is a card.Sink: each consolidated contact becomes one row in the
// contacts table plus child rows per phone, email, postal address,
// organization, instant-messaging handle, and photo. Contacts that are
// ignorable (empty display name) are skipped silently; contacts that were
// never consolidated are rejected with card.ErrNotConsolidated.
package sqlitestore
