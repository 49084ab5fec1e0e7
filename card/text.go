package card

import "strings"

// joinValues combines value segments back into one string with the source
// format's segment separator.
func joinValues(values []string) string {
	if len(values) == 1 {
		return values[0]
	}
	return strings.Join(values, ";")
}

// SplitValue splits a combined value on unescaped semicolons and unescapes
// each segment with the version-appropriate rules.
//
// vCard 2.1 only defines escapes for backslash, semicolon, and colon; any
// other backslash sequence is kept literally. vCard 3.0 unescapes \n to a
// newline and passes every other escaped character through. The dispatcher
// uses it to re-split phonetic sound values; tokenizers use it to split
// compound property values.
func SplitValue(value string, version Version) []string {
	list := make([]string, 0, 3)
	var builder strings.Builder
	runes := []rune(value)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '\\' && i < len(runes)-1:
			next := runes[i+1]
			if version == Version30 {
				if next == 'n' || next == 'N' {
					builder.WriteByte('\n')
				} else {
					builder.WriteRune(next)
				}
				i++
			} else if next == '\\' || next == ';' || next == ':' {
				builder.WriteRune(next)
				i++
			} else {
				builder.WriteRune(ch)
			}
		case ch == ';':
			list = append(list, builder.String())
			builder.Reset()
		default:
			builder.WriteRune(ch)
		}
	}
	list = append(list, builder.String())
	return list
}

// containsOnlyPrintableASCII reports whether every rune is printable ASCII.
// The empty string qualifies.
func containsOnlyPrintableASCII(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}

func strptr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
