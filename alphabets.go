package charset

import (
	"sync"
	"unicode"
)

// Preset alphabets are computed on first use and shared afterwards;
// immutability makes the shared values safe to hand out.
var (
	asciiSet = sync.OnceValue(func() Set {
		return MustRange(0x00, 0x7F)
	})
	asciiDigitsSet = sync.OnceValue(func() Set {
		return MustRange('0', '9')
	})
	asciiLettersSet = sync.OnceValue(func() Set {
		return MustRange('A', 'Z').Union(MustRange('a', 'z'))
	})
	whitespaceSet = sync.OnceValue(func() Set {
		return Universal().Filter(func(u uint16) bool {
			return unicode.IsSpace(rune(u))
		})
	})
	assignedSet = sync.OnceValue(func() Set {
		return Universal().Filter(func(u uint16) bool {
			return unicode.In(rune(u),
				unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C)
		})
	})
)

// ASCII returns the set of all ASCII code units, 0x00 through 0x7F.
func ASCII() Set {
	return asciiSet()
}

// ASCIIDigits returns the set of the decimal digits '0' through '9'.
func ASCIIDigits() Set {
	return asciiDigitsSet()
}

// ASCIILetters returns the set of the letters 'A'-'Z' and 'a'-'z'.
func ASCIILetters() Set {
	return asciiLettersSet()
}

// Whitespace returns the set of all code units classified as white space
// by unicode.IsSpace, including space, tab, LF, CR and the Unicode space
// separators.
func Whitespace() Set {
	return whitespaceSet()
}

// Assigned returns the set of all code units with an assigned Unicode
// general category. Surrogate halves count as assigned: they carry the
// Cs category, and as UTF-16 code units they appear in well-formed text.
func Assigned() Set {
	return assignedSet()
}
