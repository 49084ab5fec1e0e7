package card

import (
	"context"
	"errors"
	"strings"
)

// ErrNotConsolidated is returned by sinks handed a contact whose
// Consolidate has not been called yet.
var ErrNotConsolidated = errors.New("card: contact not consolidated")

// Sink receives finished contact records.
//
// Implementations should reject contacts that have not been consolidated
// with ErrNotConsolidated, and may skip contacts reported ignorable.
type Sink interface {
	Store(ctx context.Context, c *Contact) error
}

// Contact is one contact record accumulated from card properties.
//
// A Contact moves through a fixed lifecycle: created empty by New, mutated
// by any number of AddProperty calls in any order, finalized by a single
// Consolidate call, then read-only. It is not safe for concurrent use; one
// goroutine owns the record through its whole mutation sequence.
type Contact struct {
	cfg Config

	familyName *string
	givenName  *string
	middleName *string
	prefix     *string
	suffix     *string
	fullName   *string

	phoneticFamilyName *string
	phoneticGivenName  *string
	phoneticMiddleName *string
	phoneticFullName   *string

	birthday    *string
	displayName *string

	nicknames []string
	notes     []string
	websites  []string

	phones        []PhoneEntry
	emails        []EmailEntry
	postals       []PostalEntry
	organizations []OrganizationEntry
	ims           []IMEntry
	photos        []PhotoEntry

	consolidated bool
}

// New returns an empty contact record bound to the given configuration.
// The configuration is immutable for the record's lifetime.
func New(cfg Config) *Contact {
	return &Contact{cfg: cfg.normalized()}
}

// NameParts holds the scalar name fields. A nil field was never supplied;
// an empty string was supplied empty.
type NameParts struct {
	Family *string
	Given  *string
	Middle *string
	Prefix *string
	Suffix *string
}

// Names returns the literal name parts.
func (c *Contact) Names() NameParts {
	return NameParts{
		Family: c.familyName,
		Given:  c.givenName,
		Middle: c.middleName,
		Prefix: c.prefix,
		Suffix: c.suffix,
	}
}

// PhoneticNames returns the phonetic name parts. Prefix and Suffix are
// always nil; phonetic names carry neither.
func (c *Contact) PhoneticNames() NameParts {
	return NameParts{
		Family: c.phoneticFamilyName,
		Given:  c.phoneticGivenName,
		Middle: c.phoneticMiddleName,
	}
}

// FamilyName returns the family name, or "" when unset.
func (c *Contact) FamilyName() string { return deref(c.familyName) }

// GivenName returns the given name, or "" when unset.
func (c *Contact) GivenName() string { return deref(c.givenName) }

// FullName returns the full-name override, or "" when unset.
func (c *Contact) FullName() string { return deref(c.fullName) }

// PhoneticFullName returns the phonetic full name, or "" when unset.
func (c *Contact) PhoneticFullName() string { return deref(c.phoneticFullName) }

// Birthday returns the raw birthday string, or "" when unset.
func (c *Contact) Birthday() string { return deref(c.birthday) }

// Nicknames returns the accumulated nicknames in arrival order.
func (c *Contact) Nicknames() []string { return c.nicknames }

// Notes returns the accumulated notes in arrival order.
func (c *Contact) Notes() []string { return c.notes }

// Websites returns the accumulated website URLs in arrival order.
func (c *Contact) Websites() []string { return c.websites }

// Phones returns the accumulated phone entries in arrival order.
func (c *Contact) Phones() []PhoneEntry { return c.phones }

// Emails returns the accumulated email entries in arrival order.
func (c *Contact) Emails() []EmailEntry { return c.emails }

// Postals returns the accumulated postal entries in arrival order.
func (c *Contact) Postals() []PostalEntry { return c.postals }

// Organizations returns the merged organization entries.
func (c *Contact) Organizations() []OrganizationEntry { return c.organizations }

// IMs returns the accumulated instant-messaging entries in arrival order.
func (c *Contact) IMs() []IMEntry { return c.ims }

// Photos returns the accumulated photo entries in arrival order.
func (c *Contact) Photos() []PhotoEntry { return c.photos }

// Variant returns the locale variant the record was constructed with.
func (c *Contact) Variant() Variant { return c.cfg.Variant }

// Account returns the opaque owner reference, or nil.
func (c *Contact) Account() *Account { return c.cfg.Account }

// Consolidated reports whether Consolidate has run.
func (c *Contact) Consolidated() bool { return c.consolidated }

// DisplayName returns the synthesized display name. Before Consolidate it
// is always ""; after, it is the synthesized value, which may still be "".
func (c *Contact) DisplayName() string { return deref(c.displayName) }

// IsIgnorable reports whether the record carries nothing a sink would keep:
// true exactly when the synthesized display name is empty.
func (c *Contact) IsIgnorable() bool {
	return deref(c.displayName) == ""
}

// Consolidate finalizes the record: it synthesizes the display name and
// trims the phonetic full name. Calling it again is a no-op.
func (c *Contact) Consolidate() {
	if c.consolidated {
		return
	}
	c.displayName = strptr(c.synthesizeDisplayName())
	if c.phoneticFullName != nil {
		c.phoneticFullName = strptr(strings.TrimSpace(*c.phoneticFullName))
	}
	c.consolidated = true
}
