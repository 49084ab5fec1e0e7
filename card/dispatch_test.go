package card

import (
	"testing"

	"github.com/nalgeon/be"
)

func prop(name string, values ...string) *Property {
	p := NewProperty()
	p.SetName(name)
	for _, v := range values {
		p.AddValue(v)
	}
	return p
}

func typedProp(name string, types []string, values ...string) *Property {
	p := prop(name, values...)
	for _, t := range types {
		p.AddParameter(ParamType, t)
	}
	return p
}

func TestAddPropertyEmptyValuesDropped(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("FN"))
	c.Consolidate()
	be.Equal(t, c.FullName(), "")
	be.True(t, c.IsIgnorable())
}

func TestFullNamePrecedence(t *testing.T) {
	// NAME fills full name only while FN has not.
	c := New(Config{})
	c.AddProperty(prop("NAME", "Nick Name"))
	be.Equal(t, c.FullName(), "Nick Name")
	c.AddProperty(prop("FN", "Real Name"))
	be.Equal(t, c.FullName(), "Real Name")
	c.AddProperty(prop("NAME", "Ignored"))
	be.Equal(t, c.FullName(), "Real Name")

	// FN overwrites an earlier FN.
	c = New(Config{})
	c.AddProperty(prop("FN", "First"))
	c.AddProperty(prop("FN", "Second"))
	be.Equal(t, c.FullName(), "Second")
}

func TestStructuredName(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("N", "Smith"))
	names := c.Names()
	be.Equal(t, deref(names.Family), "Smith")
	be.True(t, names.Given == nil)
	be.True(t, names.Middle == nil)
	be.True(t, names.Prefix == nil)
	be.True(t, names.Suffix == nil)

	c = New(Config{})
	c.AddProperty(prop("N", "Smith", "John"))
	names = c.Names()
	be.Equal(t, deref(names.Family), "Smith")
	be.Equal(t, deref(names.Given), "John")
	be.True(t, names.Middle == nil)

	c = New(Config{})
	c.AddProperty(prop("N", "Smith", "John", "Q", "Dr.", "Jr.", "extra"))
	names = c.Names()
	be.Equal(t, deref(names.Middle), "Q")
	be.Equal(t, deref(names.Prefix), "Dr.")
	be.Equal(t, deref(names.Suffix), "Jr.")
}

func TestSoundRequiresPhoneticMarker(t *testing.T) {
	c := New(Config{Version: Version21})
	c.AddProperty(typedProp("SOUND", []string{"WAVE"}, "ignored"))
	be.True(t, c.PhoneticNames().Family == nil)

	c.AddProperty(typedProp("SOUND", []string{"X-IRMC-N"}, "ヤマダ;タロウ"))
	phonetic := c.PhoneticNames()
	be.Equal(t, deref(phonetic.Family), "ヤマダ")
	be.Equal(t, deref(phonetic.Given), "タロウ")
	be.True(t, phonetic.Middle == nil)
}

func TestPhoneticOverrideProperties(t *testing.T) {
	c := New(Config{})
	c.AddProperty(typedProp("SOUND", []string{"X-IRMC-N"}, "A;B;C"))
	c.AddProperty(prop("X-PHONETIC-FIRST-NAME", "Given"))
	c.AddProperty(prop("X-PHONETIC-MIDDLE-NAME", "Middle"))
	c.AddProperty(prop("X-PHONETIC-LAST-NAME", "Family"))
	phonetic := c.PhoneticNames()
	be.Equal(t, deref(phonetic.Given), "Given")
	be.Equal(t, deref(phonetic.Middle), "Middle")
	be.Equal(t, deref(phonetic.Family), "Family")
}

func TestAddressAllEmptyDropped(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("ADR", "", "", "", "", "", "", ""))
	be.Equal(t, len(c.Postals()), 0)
}

func TestAddressTypes(t *testing.T) {
	c := New(Config{})
	c.AddProperty(typedProp("ADR", []string{"PREF", "WORK"}, "", "", "1 Main St"))
	c.AddProperty(typedProp("ADR", []string{"PARCEL", "DOM"}, "", "", "2 Side St"))
	c.AddProperty(typedProp("ADR", []string{"X-SUMMER"}, "", "", "3 Beach Rd"))

	postals := c.Postals()
	be.Equal(t, len(postals), 3)
	be.Equal(t, postals[0].Category, PostalWork)
	be.True(t, postals[0].Primary)
	be.Equal(t, postals[1].Category, PostalHome) // parcel/dom carry no category
	be.Equal(t, postals[2].Category, PostalCustom)
	be.Equal(t, postals[2].Label, "SUMMER")
}

func TestEmailTypes(t *testing.T) {
	c := New(Config{})
	c.AddProperty(typedProp("EMAIL", []string{"HOME"}, "a@example.com"))
	c.AddProperty(typedProp("EMAIL", []string{"CELL", "PREF"}, "b@example.com"))
	c.AddProperty(prop("EMAIL", "c@example.com"))
	c.AddProperty(typedProp("EMAIL", []string{"X-SCHOOL", "INTERNET"}, "d@example.com"))

	emails := c.Emails()
	be.Equal(t, len(emails), 4)
	be.Equal(t, emails[0].Category, EmailHome)
	be.Equal(t, emails[1].Category, EmailMobile)
	be.True(t, emails[1].Primary)
	be.Equal(t, emails[2].Category, EmailOther)
	// First unmatched token wins the custom label; later ones are ignored.
	be.Equal(t, emails[3].Category, EmailCustom)
	be.Equal(t, emails[3].Label, "SCHOOL")
}

func TestPhoneDispatch(t *testing.T) {
	c := New(Config{})
	c.AddProperty(typedProp("TEL", []string{"WORK", "FAX"}, "+1 (555) 010-0001"))
	c.AddProperty(typedProp("TEL", []string{"CELL", "PREF"}, "555.010.0002"))
	c.AddProperty(typedProp("TEL", []string{"X-YACHT"}, "5550100003"))
	c.AddProperty(typedProp("X-SKYPE-PSTNNUMBER", []string{"PREF"}, "5550100004"))

	phones := c.Phones()
	be.Equal(t, len(phones), 4)
	be.Equal(t, phones[0].Category, PhoneFaxWork)
	be.Equal(t, phones[0].Number, "+15550100001")
	be.Equal(t, phones[1].Category, PhoneMobile)
	be.True(t, phones[1].Primary)
	be.Equal(t, phones[2].Category, PhoneCustom)
	be.Equal(t, phones[2].Label, "YACHT")
	be.Equal(t, phones[3].Category, PhoneOther)
	be.True(t, phones[3].Primary)
}

func TestPhotoDispatch(t *testing.T) {
	urlPhoto := prop("PHOTO", "http://example.com/a.jpg")
	urlPhoto.AddParameter(ParamValue, "URL")

	inline := typedProp("PHOTO", []string{"PREF", "JPEG"}, "ignored-placeholder")
	inline.SetBytes([]byte{0xff, 0xd8})

	c := New(Config{})
	c.AddProperty(urlPhoto)
	c.AddProperty(inline)

	photos := c.Photos()
	be.Equal(t, len(photos), 1)
	be.Equal(t, photos[0].Format, "JPEG")
	be.True(t, photos[0].Primary)
	be.Equal(t, photos[0].Data, []byte{0xff, 0xd8})
}

func TestIMDispatch(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("X-JABBER", "user@jabber.example"))
	c.AddProperty(typedProp("X-SKYPE-USERNAME", []string{"WORK", "PREF"}, "skype.user"))
	c.AddProperty(prop("X-GOOGLE TALK", "gtalk.user"))

	ims := c.IMs()
	be.Equal(t, len(ims), 3)
	be.Equal(t, ims[0].Category, IMJabber)
	be.Equal(t, ims[1].Category, IMWork)
	be.True(t, ims[1].Primary)
	be.Equal(t, ims[2].Category, IMGoogleTalk)
}

func TestScalarAndListProperties(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("VERSION", "2.1"))
	c.AddProperty(prop("NICKNAME", "Johnny"))
	c.AddProperty(prop("X-NICKNAME", "JJ"))
	c.AddProperty(prop("NOTE", "first note"))
	c.AddProperty(prop("URL", "https://example.com"))
	c.AddProperty(prop("BDAY", "1990-01-02"))
	c.AddProperty(prop("SORT-STRING", "  sorted  "))
	c.AddProperty(prop("ROLE", "Manager"))
	c.AddProperty(prop("REV", "20080424T195243Z"))

	be.Equal(t, c.Nicknames(), []string{"Johnny", "JJ"})
	be.Equal(t, c.Notes(), []string{"first note"})
	be.Equal(t, c.Websites(), []string{"https://example.com"})
	be.Equal(t, c.Birthday(), "1990-01-02")
	be.Equal(t, len(c.Organizations()), 0) // ROLE is dropped

	c.Consolidate()
	be.Equal(t, c.PhoneticFullName(), "sorted")
}

func TestConsolidateLifecycle(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("FN", "Jane Doe"))
	be.Equal(t, c.DisplayName(), "")
	be.True(t, !c.Consolidated())

	c.Consolidate()
	be.True(t, c.Consolidated())
	be.Equal(t, c.DisplayName(), "Jane Doe")
	be.True(t, !c.IsIgnorable())

	// Repeated consolidation is a no-op.
	c.Consolidate()
	be.Equal(t, c.DisplayName(), "Jane Doe")
}

func TestEmptyRecordIsIgnorable(t *testing.T) {
	c := New(Config{})
	c.Consolidate()
	be.Equal(t, c.DisplayName(), "")
	be.True(t, c.IsIgnorable())
}

func TestAccountPassThrough(t *testing.T) {
	account := &Account{Name: "user@example.com", Type: "imap"}
	c := New(Config{Account: account})
	be.Equal(t, c.Account(), account)
	be.Equal(t, c.Variant(), VariantDefault)
}
