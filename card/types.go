package card

// PhoneCategory is the normalized classification of a phone number.
type PhoneCategory string

const (
	// PhoneHome is a home phone number.
	PhoneHome PhoneCategory = "home"
	// PhoneWork is a work phone number.
	PhoneWork PhoneCategory = "work"
	// PhoneMobile is a cell/mobile number.
	PhoneMobile PhoneCategory = "mobile"
	// PhonePager is a pager number.
	PhonePager PhoneCategory = "pager"
	// PhoneCar is a car phone number.
	PhoneCar PhoneCategory = "car"
	// PhoneISDN is an ISDN number.
	PhoneISDN PhoneCategory = "isdn"
	// PhoneOther is a number with no more specific classification.
	PhoneOther PhoneCategory = "other"
	// PhoneCallback is a callback number.
	PhoneCallback PhoneCategory = "callback"
	// PhoneCompanyMain is a company main line.
	PhoneCompanyMain PhoneCategory = "company_main"
	// PhoneRadio is a radio phone number.
	PhoneRadio PhoneCategory = "radio"
	// PhoneTelex is a telex number.
	PhoneTelex PhoneCategory = "telex"
	// PhoneTTYTDD is a TTY/TDD number.
	PhoneTTYTDD PhoneCategory = "tty_tdd"
	// PhoneAssistant is an assistant's number.
	PhoneAssistant PhoneCategory = "assistant"
	// PhoneFaxHome is a home fax number.
	PhoneFaxHome PhoneCategory = "fax_home"
	// PhoneFaxWork is a work fax number.
	PhoneFaxWork PhoneCategory = "fax_work"
	// PhoneFaxOther is a fax number with no home/work classification.
	PhoneFaxOther PhoneCategory = "fax_other"
	// PhoneCustom carries an unrecognized type token in PhoneEntry.Label.
	PhoneCustom PhoneCategory = "custom"
)

// PhoneEntry is one accumulated phone number.
type PhoneEntry struct {
	Category PhoneCategory
	// Number is the canonical digit string, possibly locale-formatted.
	// It may be empty when the raw value carried no digits.
	Number string
	// Label is only meaningful when Category is PhoneCustom.
	Label   string
	Primary bool
}

// EmailCategory is the normalized classification of an email address.
type EmailCategory string

const (
	// EmailHome is a personal email address.
	EmailHome EmailCategory = "home"
	// EmailWork is a work email address.
	EmailWork EmailCategory = "work"
	// EmailMobile is a mobile email address.
	EmailMobile EmailCategory = "mobile"
	// EmailOther is an address with no recognized type token.
	EmailOther EmailCategory = "other"
	// EmailCustom carries an unrecognized type token in EmailEntry.Label.
	EmailCustom EmailCategory = "custom"
)

// EmailEntry is one accumulated email address.
type EmailEntry struct {
	Category EmailCategory
	Address  string
	// Label is only meaningful when Category is EmailCustom.
	Label   string
	Primary bool
}

// PostalCategory is the normalized classification of a postal address.
type PostalCategory string

const (
	// PostalHome is a home address.
	PostalHome PostalCategory = "home"
	// PostalWork is a work address.
	PostalWork PostalCategory = "work"
	// PostalCustom carries an unrecognized type token in PostalEntry.Label.
	PostalCustom PostalCategory = "custom"
)

// OrganizationCategory classifies an organization entry. The source format
// defines no categories beyond work.
type OrganizationCategory string

// OrganizationWork is the only organization category the source format knows.
const OrganizationWork OrganizationCategory = "work"

// OrganizationEntry is one accumulated organization.
//
// Company, Department, and Title are nil until the corresponding property
// fills them; an empty string means the property was supplied but empty.
// An entry is "open" (eligible to receive a later ORG fill) while Company
// and Department are both nil.
type OrganizationEntry struct {
	Category   OrganizationCategory
	Company    *string
	Department *string
	Title      *string
	Primary    bool
}

// open reports whether a later ORG value may fill this entry in place.
func (e *OrganizationEntry) open() bool {
	return e.Company == nil && e.Department == nil
}

// IMCategory classifies an instant-messaging handle.
//
// Most values name the protocol resolved from the vendor-specific property
// name. A TYPE=HOME or TYPE=WORK parameter overrides the protocol-derived
// category with the home/work names borrowed from the phone category space,
// matching the source data's behavior.
type IMCategory string

const (
	// IMAIM is an AOL Instant Messenger handle.
	IMAIM IMCategory = "aim"
	// IMMSN is an MSN Messenger handle.
	IMMSN IMCategory = "msn"
	// IMYahoo is a Yahoo Messenger handle.
	IMYahoo IMCategory = "yahoo"
	// IMICQ is an ICQ handle.
	IMICQ IMCategory = "icq"
	// IMJabber is a Jabber/XMPP handle.
	IMJabber IMCategory = "jabber"
	// IMSkype is a Skype username.
	IMSkype IMCategory = "skype"
	// IMGoogleTalk is a Google Talk handle.
	IMGoogleTalk IMCategory = "google_talk"
	// IMHome marks a handle whose TYPE parameter said HOME.
	IMHome IMCategory = "home"
	// IMWork marks a handle whose TYPE parameter said WORK.
	IMWork IMCategory = "work"
)

// IMEntry is one accumulated instant-messaging handle.
type IMEntry struct {
	Category IMCategory
	Handle   string
	Label    string
	Primary  bool
}

// PhotoEntry is one accumulated photo. Data is carried opaquely; the core
// never decodes it.
type PhotoEntry struct {
	// Format is the format token from the TYPE parameter (e.g. "JPEG"),
	// empty when the card supplied none.
	Format  string
	Data    []byte
	Primary bool
}
