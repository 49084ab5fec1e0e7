package card

import "strings"

// postalSlotCount is fixed by the source format's ADR layout:
// PO box, extended address, street, locality, region, postal code, country.
const postalSlotCount = 7

// PostalEntry is one accumulated postal address in the fixed 7-slot layout.
//
// Each slot is nil when the card supplied fewer segments; an empty string
// means the segment was supplied but empty. The slot count is always 7:
// excess segments are discarded and missing ones stay nil.
type PostalEntry struct {
	POBox           *string
	ExtendedAddress *string
	Street          *string
	Locality        *string
	Region          *string
	PostalCode      *string
	Country         *string

	Category PostalCategory
	// Label is only meaningful when Category is PostalCustom.
	Label   string
	Primary bool
}

func newPostalEntry(category PostalCategory, values []string, label string, primary bool) PostalEntry {
	var slots [postalSlotCount]*string
	for i := 0; i < len(values) && i < postalSlotCount; i++ {
		slots[i] = strptr(values[i])
	}
	return PostalEntry{
		POBox:           slots[0],
		ExtendedAddress: slots[1],
		Street:          slots[2],
		Locality:        slots[3],
		Region:          slots[4],
		PostalCode:      slots[5],
		Country:         slots[6],
		Category:        category,
		Label:           label,
		Primary:         primary,
	}
}

func (e PostalEntry) slots() [postalSlotCount]*string {
	return [postalSlotCount]*string{
		e.POBox, e.ExtendedAddress, e.Street, e.Locality,
		e.Region, e.PostalCode, e.Country,
	}
}

// FormattedAddress renders the non-empty slots joined by single spaces.
//
// Under the Japan variant the slots are traversed country-first (slot 6
// down to slot 0); every other variant renders forward. This is the only
// rendering difference by locale.
func (e PostalEntry) FormattedAddress(variant Variant) string {
	slots := e.slots()
	var builder strings.Builder
	if variant.japaneseDevice() {
		for i := postalSlotCount - 1; i >= 0; i-- {
			appendAddressPart(&builder, slots[i])
		}
	} else {
		for i := 0; i < postalSlotCount; i++ {
			appendAddressPart(&builder, slots[i])
		}
	}
	return strings.TrimSpace(builder.String())
}

func appendAddressPart(builder *strings.Builder, part *string) {
	if part == nil || *part == "" {
		return
	}
	if builder.Len() > 0 {
		builder.WriteByte(' ')
	}
	builder.WriteString(*part)
}
