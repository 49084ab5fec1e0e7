// Package vcf tokenizes vCard 2.1 and 3.0 streams into card properties.
//
// The decoder handles line unfolding, parameter parsing (including the bare
// parameter tokens of vCard 2.1 and comma-separated TYPE lists of 3.0),
// quoted-printable and base64 transfer decoding, and the positional value
// splitting of compound properties. Normalization itself lives in the card
// package; this package only produces card.Property values and drives them
// through a contact record.
package vcf
