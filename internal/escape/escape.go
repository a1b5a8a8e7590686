// Package escape renders 16-bit code units for bracketed character-set
// notation such as [a-c\u0100].
//
// Printable ASCII passes through unchanged except for the characters that
// carry meaning inside a bracket expression, which are backslash-escaped.
// Common control characters use their mnemonic escapes and everything else
// falls back to a four-digit \uXXXX form.
package escape

const hexDigits = "0123456789abcdef"

// AppendChar appends the rendering of a single code unit to dst and
// returns the extended slice.
func AppendChar(dst []byte, u uint16) []byte {
	switch u {
	case '\t':
		return append(dst, '\\', 't')
	case '\n':
		return append(dst, '\\', 'n')
	case '\v':
		return append(dst, '\\', 'v')
	case '\f':
		return append(dst, '\\', 'f')
	case '\r':
		return append(dst, '\\', 'r')
	case '\\', '-', ']', '^', '[':
		return append(dst, '\\', byte(u))
	}
	if u >= 0x20 && u <= 0x7E {
		return append(dst, byte(u))
	}
	dst = append(dst, '\\', 'u')
	dst = append(dst, hexDigits[u>>12&0xF], hexDigits[u>>8&0xF], hexDigits[u>>4&0xF], hexDigits[u&0xF])
	return dst
}

// FormatChar returns the rendering of a single code unit as a string.
func FormatChar(u uint16) string {
	return string(AppendChar(nil, u))
}

// AppendRange appends the rendering of an inclusive range of code units to
// dst and returns the extended slice. Single-unit ranges render as the unit
// alone, every other range as the two bounds joined by a dash.
func AppendRange(dst []byte, lo, hi uint16) []byte {
	dst = AppendChar(dst, lo)
	if lo != hi {
		dst = append(dst, '-')
		dst = AppendChar(dst, hi)
	}
	return dst
}

// FormatRange returns the rendering of an inclusive range of code units
// as a string.
func FormatRange(lo, hi uint16) string {
	return string(AppendRange(nil, lo, hi))
}
