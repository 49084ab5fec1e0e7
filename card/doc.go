// Package card accumulates tokenized contact-card properties into one
// normalized contact record.
//
// The package is the pure core of the pipeline: it performs no I/O, spawns
// nothing, and holds no locks. An upstream tokenizer (see the vcf package)
// produces Property values; the caller feeds each one to Contact.AddProperty
// in source order, calls Consolidate once, and hands the finished record to
// a Sink.
//
// The intended composition model is:
//
//	tokenize -> AddProperty (repeated) -> Consolidate -> Sink.Store
//
// # Normalization Rules
//
// Properties may repeat and arrive in any order, so accumulation is rule
// driven rather than a field copy:
//
//   - TYPE parameter tokens resolve to categories with a first-unmatched-
//     token-wins fallback to a custom label.
//   - ORG and TITLE merge into shared organization entries by filling the
//     first still-open entry, whichever property arrives first.
//   - Postal addresses always occupy a fixed 7-slot layout; formatting
//     direction depends on the locale variant.
//   - Phone numbers reduce to a canonical digit string, formatted for
//     Japanese devices when the variant asks for it.
//   - The display name is synthesized at Consolidate from the richest
//     available source: full name, name parts, phonetic parts, email,
//     phone, then postal address.
//
// # Concurrency
//
// A Contact is owned by one goroutine through its whole mutation sequence.
// After Consolidate it is read-only and safe to share.
package card
