package card

import "strings"

// Vendor-specific phonetic name override property names.
const (
	propPhoneticFirstName  = "X-PHONETIC-FIRST-NAME"
	propPhoneticMiddleName = "X-PHONETIC-MIDDLE-NAME"
	propPhoneticLastName   = "X-PHONETIC-LAST-NAME"
)

// AddProperty consumes one tokenized property and folds it into the record.
//
// It may be called any number of times, in any order. Properties with an
// empty value list are dropped silently. Property names the dispatcher does
// not know (REV, UID, KEY, TZ, GEO, CLASS, PROFILE, CATEGORIES, SOURCE,
// PRODID, and anything else) are ignored without error.
func (c *Contact) AddProperty(p *Property) {
	values := p.Values()
	if len(values) == 0 {
		return
	}
	value := strings.TrimSpace(joinValues(values))

	switch name := p.Name(); name {
	case "VERSION":
		// Parsed upstream; carries no record state.
	case "FN":
		c.fullName = strptr(value)
	case "NAME":
		// Secondary display-name source; FN wins regardless of order.
		if c.fullName == nil {
			c.fullName = strptr(value)
		}
	case "N":
		c.applyStructuredName(values)
	case "SORT-STRING":
		c.phoneticFullName = strptr(value)
	case "NICKNAME", "X-NICKNAME":
		c.nicknames = append(c.nicknames, value)
	case "SOUND":
		if containsToken(p.Parameters(ParamType), tokenIRMCName) {
			c.applyPhoneticName(SplitValue(value, c.cfg.Version))
		}
	case "ADR":
		if allEmpty(values) {
			return
		}
		category, label, primary := resolveAddressType(p.Parameters(ParamType))
		c.postals = append(c.postals, newPostalEntry(category, values, label, primary))
	case "EMAIL":
		category, label, primary := resolveEmailType(p.Parameters(ParamType))
		c.emails = append(c.emails, EmailEntry{
			Category: category,
			Address:  value,
			Label:    label,
			Primary:  primary,
		})
	case "ORG":
		primary := containsToken(p.Parameters(ParamType), tokenPref)
		c.applyOrganization(OrganizationWork, values, primary)
	case "TITLE":
		c.applyTitle(value)
	case "ROLE":
		// Conflicts with TITLE; dropped.
	case "PHOTO", "LOGO":
		if containsToken(p.Parameters(ParamValue), "URL") {
			// Remote-reference photos are not supported.
			return
		}
		var format string
		primary := false
		for _, token := range p.Parameters(ParamType) {
			if token == tokenPref {
				primary = true
			} else if format == "" {
				format = token
			}
		}
		c.photos = append(c.photos, PhotoEntry{
			Format:  format,
			Data:    p.Bytes(),
			Primary: primary,
		})
	case "TEL":
		types := p.Parameters(ParamType)
		category, label := resolvePhoneType(types)
		c.phones = append(c.phones, PhoneEntry{
			Category: category,
			Number:   normalizePhone(value, c.cfg.Variant),
			Label:    label,
			Primary:  containsToken(types, tokenPref),
		})
	case propSkypePSTN:
		c.phones = append(c.phones, PhoneEntry{
			Category: PhoneOther,
			Number:   normalizePhone(value, c.cfg.Variant),
			Primary:  containsToken(p.Parameters(ParamType), tokenPref),
		})
	case "NOTE":
		c.notes = append(c.notes, value)
	case "URL":
		c.websites = append(c.websites, value)
	case propPhoneticFirstName:
		c.phoneticGivenName = strptr(value)
	case propPhoneticMiddleName:
		c.phoneticMiddleName = strptr(value)
	case propPhoneticLastName:
		c.phoneticFamilyName = strptr(value)
	case "BDAY":
		c.birthday = strptr(value)
	default:
		if protocol, ok := imProtocols[name]; ok {
			c.addIM(protocol, value, p.Parameters(ParamType))
		}
	}
}

// applyStructuredName maps positional segments onto the literal name parts.
// Position 0 is always set, so a single-segment name still yields a family
// name. Segments past the fifth are discarded.
func (c *Contact) applyStructuredName(values []string) {
	fields := [...]**string{&c.familyName, &c.givenName, &c.middleName, &c.prefix, &c.suffix}
	for i := 0; i < len(values) && i < len(fields); i++ {
		*fields[i] = strptr(values[i])
	}
}

// applyPhoneticName maps positional segments onto the phonetic name parts.
// Segments past the third are discarded.
func (c *Contact) applyPhoneticName(values []string) {
	fields := [...]**string{&c.phoneticFamilyName, &c.phoneticGivenName, &c.phoneticMiddleName}
	for i := 0; i < len(values) && i < len(fields); i++ {
		*fields[i] = strptr(values[i])
	}
}

func (c *Contact) addIM(protocol IMCategory, handle string, types []string) {
	category := protocol
	primary := false
	for _, token := range types {
		switch {
		case token == tokenPref:
			primary = true
		case strings.EqualFold(token, tokenHome):
			category = IMHome
		case strings.EqualFold(token, tokenWork):
			category = IMWork
		}
	}
	if category == "" {
		category = IMHome
	}
	c.ims = append(c.ims, IMEntry{
		Category: category,
		Handle:   handle,
		Primary:  primary,
	})
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
