package card

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestResolvePhoneType(t *testing.T) {
	category, label := resolvePhoneType(nil)
	be.Equal(t, category, PhoneHome)
	be.Equal(t, label, "")

	category, _ = resolvePhoneType([]string{"cell"})
	be.Equal(t, category, PhoneMobile)

	category, _ = resolvePhoneType([]string{"VOICE"})
	be.Equal(t, category, PhoneOther)

	// X- prefix is stripped before the table lookup.
	category, _ = resolvePhoneType([]string{"X-CAR"})
	be.Equal(t, category, PhoneCar)

	// Neither token recognized: the first claims the custom label.
	category, label = resolvePhoneType([]string{"FOO", "BAR"})
	be.Equal(t, category, PhoneCustom)
	be.Equal(t, label, "FOO")

	category, label = resolvePhoneType([]string{"YACHT", "PAGER"})
	// First unmatched token claims the custom slot, but a later known token
	// still replaces the category.
	be.Equal(t, category, PhonePager)
	be.Equal(t, label, "YACHT")
}

func TestResolvePhoneTypeFaxModifier(t *testing.T) {
	category, _ := resolvePhoneType([]string{"FAX"})
	be.Equal(t, category, PhoneFaxHome)

	category, _ = resolvePhoneType([]string{"WORK", "FAX"})
	be.Equal(t, category, PhoneFaxWork)

	category, _ = resolvePhoneType([]string{"FAX", "VOICE"})
	be.Equal(t, category, PhoneFaxOther)

	// FAX does not modify non home/work/other categories.
	category, _ = resolvePhoneType([]string{"FAX", "CELL"})
	be.Equal(t, category, PhoneMobile)
}

func TestResolveAddressType(t *testing.T) {
	category, label, primary := resolveAddressType([]string{"PREF", "WORK"})
	be.Equal(t, category, PostalWork)
	be.Equal(t, label, "")
	be.True(t, primary)

	category, _, _ = resolveAddressType([]string{"COMPANY"})
	be.Equal(t, category, PostalWork)

	category, _, _ = resolveAddressType([]string{"PARCEL", "INTL", "DOM"})
	be.Equal(t, category, PostalHome)

	category, label, _ = resolveAddressType([]string{"X-SUMMER", "X-WINTER"})
	be.Equal(t, category, PostalCustom)
	be.Equal(t, label, "SUMMER")

	// A later HOME/WORK replaces an earlier custom category.
	category, label, _ = resolveAddressType([]string{"X-SUMMER", "HOME"})
	be.Equal(t, category, PostalHome)
	be.Equal(t, label, "")
}

func TestResolveEmailType(t *testing.T) {
	category, _, _ := resolveEmailType(nil)
	be.Equal(t, category, EmailOther)

	category, _, primary := resolveEmailType([]string{"pref", "cell"})
	be.Equal(t, category, EmailMobile)
	be.True(t, primary)

	category, label, _ := resolveEmailType([]string{"X-SCHOOL"})
	be.Equal(t, category, EmailCustom)
	be.Equal(t, label, "SCHOOL")
}

func TestContainsToken(t *testing.T) {
	be.True(t, containsToken([]string{"WORK", "PREF"}, "PREF"))
	// Exact match only.
	be.True(t, !containsToken([]string{"pref"}, "PREF"))
	be.True(t, !containsToken(nil, "PREF"))
}
