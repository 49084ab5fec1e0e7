package card

import "strings"

// normalizePhone reduces raw phone text to a canonical digit string and
// applies locale formatting.
//
// Only ASCII digits survive, plus a leading + when it is the very first
// character of the trimmed input. The result is never reported as absent:
// an input with no digits yields an empty string, which is still stored.
func normalizePhone(raw string, variant Variant) string {
	trimmed := strings.TrimSpace(raw)
	var builder strings.Builder
	for i, ch := range trimmed {
		if (ch >= '0' && ch <= '9') || (i == 0 && ch == '+') {
			builder.WriteRune(ch)
		}
	}
	digits := builder.String()
	if variant.japaneseDevice() {
		return formatJapaneseNumber(digits)
	}
	// The source format carries no formatting hints; outside Japan the
	// canonical digit string is stored as-is.
	return digits
}

// formatJapaneseNumber hyphenates a Japanese national number.
//
// 11-digit numbers (mobile and IP phone prefixes) split 3-4-4. 10-digit
// numbers split 2-4-4 in the single-digit area codes (Tokyo 03, Osaka 06)
// and 3-3-4 elsewhere. International numbers and anything with an
// unexpected length are left untouched.
func formatJapaneseNumber(digits string) string {
	if !strings.HasPrefix(digits, "0") {
		return digits
	}
	switch len(digits) {
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case 10:
		if strings.HasPrefix(digits, "03") || strings.HasPrefix(digits, "06") {
			return digits[:2] + "-" + digits[2:6] + "-" + digits[6:]
		}
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	default:
		return digits
	}
}
