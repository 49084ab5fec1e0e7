package card

// Variant selects the locale conventions applied while normalizing a card.
//
// The variant is fixed at record construction and governs name ordering in
// display-name synthesis, postal rendering direction, and phone formatting.
type Variant string

const (
	// VariantDefault applies generic western conventions.
	VariantDefault Variant = "default"
	// VariantJapan applies Japanese name ordering, reversed postal rendering,
	// and Japanese national phone formatting.
	VariantJapan Variant = "japan"
	// VariantEurope applies European name ordering.
	VariantEurope Variant = "europe"
	// VariantJapanNaming applies Japanese name ordering only, keeping default
	// postal rendering and phone formatting.
	VariantJapanNaming Variant = "japan_naming"
)

// Version selects the vCard dialect the source card was written in.
//
// The version only affects how combined values are re-split in the SOUND
// phonetic-name special case; everything else is version-agnostic.
type Version string

const (
	// Version21 is vCard 2.1.
	Version21 Version = "2.1"
	// Version30 is vCard 3.0.
	Version30 Version = "3.0"
)

// Account is an opaque owner reference carried by a contact record.
//
// The core never interprets it; it exists only to be passed through to the
// downstream sink.
type Account struct {
	Name string
	Type string
}

// Config is the immutable configuration consumed at record construction.
type Config struct {
	Variant Variant
	Version Version
	Account *Account
}

func (c Config) normalized() Config {
	if c.Variant == "" {
		c.Variant = VariantDefault
	}
	if c.Version == "" {
		c.Version = Version21
	}
	return c
}

// japaneseDevice reports whether postal rendering and phone formatting follow
// Japanese conventions.
func (v Variant) japaneseDevice() bool {
	return v == VariantJapan
}

type nameOrder int

const (
	nameOrderDefault nameOrder = iota
	nameOrderJapanese
	nameOrderEurope
)

func (v Variant) nameOrder() nameOrder {
	switch v {
	case VariantJapan, VariantJapanNaming:
		return nameOrderJapanese
	case VariantEurope:
		return nameOrderEurope
	default:
		return nameOrderDefault
	}
}
