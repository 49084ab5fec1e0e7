package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spachava753/vcardbox/card"
)

// ErrorCode classifies store errors.
type ErrorCode string

const (
	// ErrorCodeValidation indicates the contact is not storable as given.
	ErrorCodeValidation ErrorCode = "validation"
	// ErrorCodeStore indicates a database failure.
	ErrorCodeStore ErrorCode = "store"
)

// Error is a typed package error for store operations.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return "sqlitestore: <nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("sqlitestore: %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("sqlitestore: %s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying database error.
func (e *Error) Unwrap() error {
	return e.Err
}

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	display_name         TEXT NOT NULL,
	full_name            TEXT,
	family_name          TEXT,
	given_name           TEXT,
	middle_name          TEXT,
	prefix               TEXT,
	suffix               TEXT,
	phonetic_family_name TEXT,
	phonetic_given_name  TEXT,
	phonetic_middle_name TEXT,
	phonetic_full_name   TEXT,
	birthday             TEXT,
	variant              TEXT NOT NULL,
	account_name         TEXT,
	account_type         TEXT,
	created_at           TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS phones (
	contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	category   TEXT NOT NULL,
	number     TEXT NOT NULL,
	label      TEXT NOT NULL,
	is_primary INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS emails (
	contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	category   TEXT NOT NULL,
	address    TEXT NOT NULL,
	label      TEXT NOT NULL,
	is_primary INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS postals (
	contact_id       INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	category         TEXT NOT NULL,
	label            TEXT NOT NULL,
	is_primary       INTEGER NOT NULL,
	pobox            TEXT,
	extended_address TEXT,
	street           TEXT,
	locality         TEXT,
	region           TEXT,
	postal_code      TEXT,
	country          TEXT,
	formatted        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS organizations (
	contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	category   TEXT NOT NULL,
	company    TEXT,
	department TEXT,
	title      TEXT,
	is_primary INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS ims (
	contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	category   TEXT NOT NULL,
	handle     TEXT NOT NULL,
	label      TEXT NOT NULL,
	is_primary INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS photos (
	contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	format     TEXT NOT NULL,
	data       BLOB,
	is_primary INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS text_entries (
	contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	kind       TEXT NOT NULL,
	value      TEXT NOT NULL,
	position   INTEGER NOT NULL
);
`

// Kinds stored in the text_entries table.
const (
	kindNickname = "nickname"
	kindNote     = "note"
	kindWebsite  = "website"
)

// Store persists contact records in a SQLite database. It implements
// card.Sink and is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (and creates, if missing) the database at path. Use ":memory:"
// for an in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &Error{Code: ErrorCodeStore, Message: "open database", Err: err}
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, &Error{Code: ErrorCodeStore, Message: "enable foreign keys", Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &Error{Code: ErrorCodeStore, Message: "create schema", Err: err}
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Store persists one consolidated contact. Ignorable contacts are skipped
// without error; unconsolidated contacts are rejected with
// card.ErrNotConsolidated.
func (s *Store) Store(ctx context.Context, c *card.Contact) error {
	if !c.Consolidated() {
		return card.ErrNotConsolidated
	}
	if c.IsIgnorable() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &Error{Code: ErrorCodeStore, Message: "begin transaction", Err: err}
	}
	defer tx.Rollback()

	id, err := insertContact(ctx, tx, c)
	if err != nil {
		return err
	}
	if err := insertEntries(ctx, tx, id, c); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return &Error{Code: ErrorCodeStore, Message: "commit", Err: err}
	}
	return nil
}

func insertContact(ctx context.Context, tx *sql.Tx, c *card.Contact) (int64, error) {
	names := c.Names()
	phonetic := c.PhoneticNames()
	var accountName, accountType *string
	if account := c.Account(); account != nil {
		accountName = &account.Name
		accountType = &account.Type
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO contacts (
			display_name, full_name,
			family_name, given_name, middle_name, prefix, suffix,
			phonetic_family_name, phonetic_given_name, phonetic_middle_name,
			phonetic_full_name, birthday, variant, account_name, account_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.DisplayName(), nullable(c.FullName()),
		names.Family, names.Given, names.Middle, names.Prefix, names.Suffix,
		phonetic.Family, phonetic.Given, phonetic.Middle,
		nullable(c.PhoneticFullName()), nullable(c.Birthday()),
		string(c.Variant()), accountName, accountType,
	)
	if err != nil {
		return 0, &Error{Code: ErrorCodeStore, Message: "insert contact", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &Error{Code: ErrorCodeStore, Message: "contact id", Err: err}
	}
	return id, nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, id int64, c *card.Contact) error {
	for _, p := range c.Phones() {
		if err := exec(ctx, tx, "insert phone",
			`INSERT INTO phones (contact_id, category, number, label, is_primary) VALUES (?, ?, ?, ?, ?)`,
			id, string(p.Category), p.Number, p.Label, p.Primary); err != nil {
			return err
		}
	}
	for _, e := range c.Emails() {
		if err := exec(ctx, tx, "insert email",
			`INSERT INTO emails (contact_id, category, address, label, is_primary) VALUES (?, ?, ?, ?, ?)`,
			id, string(e.Category), e.Address, e.Label, e.Primary); err != nil {
			return err
		}
	}
	for _, p := range c.Postals() {
		if err := exec(ctx, tx, "insert postal",
			`INSERT INTO postals (
				contact_id, category, label, is_primary,
				pobox, extended_address, street, locality, region, postal_code, country,
				formatted
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, string(p.Category), p.Label, p.Primary,
			p.POBox, p.ExtendedAddress, p.Street, p.Locality, p.Region, p.PostalCode, p.Country,
			p.FormattedAddress(c.Variant())); err != nil {
			return err
		}
	}
	for _, o := range c.Organizations() {
		if err := exec(ctx, tx, "insert organization",
			`INSERT INTO organizations (contact_id, category, company, department, title, is_primary) VALUES (?, ?, ?, ?, ?, ?)`,
			id, string(o.Category), o.Company, o.Department, o.Title, o.Primary); err != nil {
			return err
		}
	}
	for _, im := range c.IMs() {
		if err := exec(ctx, tx, "insert im",
			`INSERT INTO ims (contact_id, category, handle, label, is_primary) VALUES (?, ?, ?, ?, ?)`,
			id, string(im.Category), im.Handle, im.Label, im.Primary); err != nil {
			return err
		}
	}
	for _, photo := range c.Photos() {
		if err := exec(ctx, tx, "insert photo",
			`INSERT INTO photos (contact_id, format, data, is_primary) VALUES (?, ?, ?, ?)`,
			id, photo.Format, photo.Data, photo.Primary); err != nil {
			return err
		}
	}
	for _, group := range []struct {
		kind   string
		values []string
	}{
		{kindNickname, c.Nicknames()},
		{kindNote, c.Notes()},
		{kindWebsite, c.Websites()},
	} {
		for i, value := range group.values {
			if err := exec(ctx, tx, "insert "+group.kind,
				`INSERT INTO text_entries (contact_id, kind, value, position) VALUES (?, ?, ?, ?)`,
				id, group.kind, value, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func exec(ctx context.Context, tx *sql.Tx, what, query string, args ...any) error {
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return &Error{Code: ErrorCodeStore, Message: what, Err: err}
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Record is a stored contact summary returned by List.
type Record struct {
	ID          int64
	DisplayName string
	FullName    string
	Variant     string
	AccountName string
	CreatedAt   string
}

// List returns stored contact summaries in insertion order.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, display_name, COALESCE(full_name, ''), variant,
		       COALESCE(account_name, ''), created_at
		FROM contacts ORDER BY id`)
	if err != nil {
		return nil, &Error{Code: ErrorCodeStore, Message: "list contacts", Err: err}
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.DisplayName, &r.FullName, &r.Variant, &r.AccountName, &r.CreatedAt); err != nil {
			return nil, &Error{Code: ErrorCodeStore, Message: "scan contact", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Code: ErrorCodeStore, Message: "list contacts", Err: err}
	}
	return records, nil
}
