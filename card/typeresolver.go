package card

import "strings"

// TYPE parameter tokens recognized across property kinds. Matching is
// case-insensitive unless a dispatch rule says otherwise.
const (
	tokenPref    = "PREF"
	tokenHome    = "HOME"
	tokenWork    = "WORK"
	tokenCell    = "CELL"
	tokenFax     = "FAX"
	tokenCompany = "COMPANY"
	tokenParcel  = "PARCEL"
	tokenDom     = "DOM"
	tokenIntl    = "INTL"

	// tokenIRMCName marks a SOUND property carrying a Japanese phonetic name.
	tokenIRMCName = "X-IRMC-N"
)

// Vendor-specific property names recognized by the dispatcher.
const (
	propSkypePSTN = "X-SKYPE-PSTNNUMBER"
)

// knownPhoneTypes maps uppercase TYPE tokens to phone categories. VOICE has
// no dedicated category and collapses into other.
var knownPhoneTypes = map[string]PhoneCategory{
	"HOME":         PhoneHome,
	"WORK":         PhoneWork,
	"CELL":         PhoneMobile,
	"PAGER":        PhonePager,
	"CAR":          PhoneCar,
	"ISDN":         PhoneISDN,
	"VOICE":        PhoneOther,
	"OTHER":        PhoneOther,
	"CALLBACK":     PhoneCallback,
	"COMPANY-MAIN": PhoneCompanyMain,
	"RADIO":        PhoneRadio,
	"TELEX":        PhoneTelex,
	"TTY-TDD":      PhoneTTYTDD,
	"ASSISTANT":    PhoneAssistant,
}

// imProtocols maps vendor-specific property names to IM categories. The
// second Google Talk spelling (with a space) is emitted by some exporters.
var imProtocols = map[string]IMCategory{
	"X-AIM":            IMAIM,
	"X-MSN":            IMMSN,
	"X-YAHOO":          IMYahoo,
	"X-ICQ":            IMICQ,
	"X-JABBER":         IMJabber,
	"X-SKYPE-USERNAME": IMSkype,
	"X-GOOGLE-TALK":    IMGoogleTalk,
	"X-GOOGLE TALK":    IMGoogleTalk,
}

// resolvePhoneType maps TEL type tokens to a category and custom label.
//
// The first unrecognized token wins the custom label; later unrecognized
// tokens are ignored once any category has been chosen. A FAX token acts as
// a modifier on the home/work/other result. PREF is handled by the caller.
func resolvePhoneType(tokens []string) (PhoneCategory, string) {
	var category PhoneCategory
	var label string
	isFax := false
	for _, raw := range tokens {
		token := strings.ToUpper(raw)
		switch token {
		case tokenPref:
			// Primary flag; not a category.
		case tokenFax:
			isFax = true
		default:
			if strings.HasPrefix(token, "X-") && category == "" {
				token = token[2:]
			}
			if known, ok := knownPhoneTypes[token]; ok {
				category = known
			} else if category == "" {
				category = PhoneCustom
				label = token
			}
		}
	}
	if category == "" {
		category = PhoneHome
	}
	if isFax {
		switch category {
		case PhoneHome:
			category = PhoneFaxHome
		case PhoneWork:
			category = PhoneFaxWork
		case PhoneOther:
			category = PhoneFaxOther
		}
	}
	return category, label
}

// resolveAddressType maps ADR type tokens to a category, custom label, and
// primary flag.
//
// PARCEL, DOM, and INTL are recognized tokens of the source format with no
// normalized category; they are intentionally discarded. An unrecognized
// token becomes a custom category only while no category has been chosen.
func resolveAddressType(tokens []string) (PostalCategory, string, bool) {
	var category PostalCategory
	label := ""
	primary := false
	for _, raw := range tokens {
		token := strings.ToUpper(raw)
		switch token {
		case tokenPref:
			primary = true
		case tokenHome:
			category = PostalHome
			label = ""
		case tokenWork, tokenCompany:
			// Some exporters emit COMPANY; treat it as WORK.
			category = PostalWork
			label = ""
		case tokenParcel, tokenDom, tokenIntl:
			// No normalized category exists for these.
		default:
			if category == "" {
				category = PostalCustom
				label = strings.TrimPrefix(token, "X-")
			}
		}
	}
	if category == "" {
		category = PostalHome
	}
	return category, label, primary
}

// resolveEmailType maps EMAIL type tokens to a category, custom label, and
// primary flag. The default category when nothing matched is other.
func resolveEmailType(tokens []string) (EmailCategory, string, bool) {
	var category EmailCategory
	var label string
	primary := false
	for _, raw := range tokens {
		token := strings.ToUpper(raw)
		switch token {
		case tokenPref:
			primary = true
		case tokenHome:
			category = EmailHome
		case tokenWork:
			category = EmailWork
		case tokenCell:
			category = EmailMobile
		default:
			if category == "" {
				category = EmailCustom
				label = strings.TrimPrefix(token, "X-")
			}
		}
	}
	if category == "" {
		category = EmailOther
	}
	return category, label, primary
}

// containsToken reports whether the token appears verbatim in the list.
// Used for the case-sensitive PREF checks on ORG, TEL, IM, and photo
// properties.
func containsToken(tokens []string, target string) bool {
	for _, token := range tokens {
		if token == target {
			return true
		}
	}
	return false
}
