package charset

import "github.com/coregx/charset/internal/escape"

// String returns the set in bracketed character-class notation.
//
// Each range renders as its escaped lower bound, followed for multi-unit
// ranges by a dash and the escaped upper bound. Printable ASCII passes
// through, common controls use mnemonic escapes, and everything else
// renders as \uXXXX:
//
//	FromString("abc0").String() // [0a-c]
//	Universal().String()        // [\u0000-\uffff]
//	Empty().String()            // []
func (s Set) String() string {
	buf := make([]byte, 0, 2+6*s.NumRanges())
	buf = append(buf, '[')
	for i := 0; i < len(s.pairs); i += 2 {
		buf = escape.AppendRange(buf, s.pairs[i], s.pairs[i+1])
	}
	buf = append(buf, ']')
	return string(buf)
}

// String returns the range in the same escaped notation used by Set.String,
// without brackets.
func (r Range) String() string {
	return escape.FormatRange(r.Lo, r.Hi)
}
