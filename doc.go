// Package vcardbox is a lightweight index for the vCard contact subpackages in
// this module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available subpackages:
//   - github.com/spachava753/vcardbox/card
//     The normalization core: accumulates tokenized vCard properties into one
//     consolidated contact record.
//   - github.com/spachava753/vcardbox/vcf
//     Tokenizer for raw vCard 2.1/3.0 text, producing card.Property values.
//   - github.com/spachava753/vcardbox/sqlitestore
//     SQLite-backed sink that persists consolidated contact records.
//   - github.com/spachava753/vcardbox/mailbox
//     IMAP/SMTP helpers for fetching vCard attachments and sharing contacts
//     by email.
//
// Discovery workflow for agents:
//   - Run: go doc github.com/spachava753/vcardbox
//   - Then drill in with:
//     go doc github.com/spachava753/vcardbox/card
//     go doc github.com/spachava753/vcardbox/vcf
//     go doc github.com/spachava753/vcardbox/sqlitestore
//     go doc github.com/spachava753/vcardbox/mailbox
package vcardbox
