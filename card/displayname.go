package card

import "strings"

// synthesizeDisplayName picks the richest available source for the display
// name, in strict precedence: full name, literal name parts, phonetic name
// parts, first email, first phone, first postal address, empty string.
func (c *Contact) synthesizeDisplayName() string {
	if full := deref(c.fullName); full != "" {
		return full
	}
	if deref(c.familyName) != "" || deref(c.givenName) != "" {
		return c.nameFromParts()
	}
	if deref(c.phoneticFamilyName) != "" || deref(c.phoneticGivenName) != "" {
		return c.phoneticNameFromParts()
	}
	if len(c.emails) > 0 {
		return c.emails[0].Address
	}
	if len(c.phones) > 0 {
		return c.phones[0].Number
	}
	if len(c.postals) > 0 {
		return c.postals[0].FormattedAddress(c.cfg.Variant)
	}
	return ""
}

// nameFromParts joins the literal name parts with single spaces in the
// order selected by the variant.
//
// Japanese ordering keeps given-before-family only when both names are
// printable ASCII; otherwise the native family-first order applies.
func (c *Contact) nameFromParts() string {
	family := deref(c.familyName)
	given := deref(c.givenName)
	middle := deref(c.middleName)
	prefix := deref(c.prefix)
	suffix := deref(c.suffix)

	var parts []string
	switch c.cfg.Variant.nameOrder() {
	case nameOrderJapanese:
		if containsOnlyPrintableASCII(family) && containsOnlyPrintableASCII(given) {
			parts = []string{prefix, given, middle, family, suffix}
		} else {
			parts = []string{prefix, family, middle, given, suffix}
		}
	case nameOrderEurope:
		parts = []string{prefix, middle, given, family, suffix}
	default:
		parts = []string{prefix, given, middle, family, suffix}
	}
	return joinNonEmpty(parts)
}

// phoneticNameFromParts builds a name from the phonetic parts using the same
// locale ordering rule as literal names. Phonetic names carry no prefix or
// suffix.
func (c *Contact) phoneticNameFromParts() string {
	family := deref(c.phoneticFamilyName)
	given := deref(c.phoneticGivenName)
	middle := deref(c.phoneticMiddleName)

	var parts []string
	switch c.cfg.Variant.nameOrder() {
	case nameOrderJapanese:
		if containsOnlyPrintableASCII(family) && containsOnlyPrintableASCII(given) {
			parts = []string{given, middle, family}
		} else {
			parts = []string{family, middle, given}
		}
	case nameOrderEurope:
		parts = []string{middle, given, family}
	default:
		parts = []string{given, middle, family}
	}
	return joinNonEmpty(parts)
}

func joinNonEmpty(parts []string) string {
	var builder strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(part)
	}
	return builder.String()
}
