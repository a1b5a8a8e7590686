package charset

// Scanner provides optimized run scanning of code-unit input against a
// single set. It is the lexer-facing primitive: find the longest run of
// member units, the shape of identifier, number, and whitespace tokens.
//
// A 256-entry lookup table answers membership for units below 0x100 in
// O(1); higher units fall back to the set's own membership test. Lexer
// input is overwhelmingly low units, so the hot path never searches.
type Scanner struct {
	// low is the lookup table for units 0x00-0xFF
	low [256]bool

	// set answers membership for units above 0xFF
	set Set
}

// NewScanner creates a scanner for the given set.
func NewScanner(s Set) *Scanner {
	sc := &Scanner{set: s}
	for i := 0; i < len(s.pairs); i += 2 {
		lo, hi := s.pairs[i], s.pairs[i+1]
		if lo > 0xFF {
			break
		}
		for u := lo; u <= min(hi, 0xFF); u++ {
			sc.low[u] = true
		}
	}
	return sc
}

// member reports whether u is in the scanned set.
func (sc *Scanner) member(u uint16) bool {
	if u < 0x100 {
		return sc.low[u]
	}
	return sc.set.Contains(u)
}

// AcceptRun scans forward from position at while units are members of the
// set and returns the position just past the run. If input[at] is not a
// member (or at is past the end), it returns at unchanged.
func (sc *Scanner) AcceptRun(input []uint16, at int) int {
	i := at
	for i < len(input) && sc.member(input[i]) {
		i++
	}
	return i
}

// Find locates the first run of member units at or after position at.
// It returns the run's bounds as a half-open interval [start, end), or
// (-1, -1, false) when no member occurs in the rest of the input.
func (sc *Scanner) Find(input []uint16, at int) (start, end int, ok bool) {
	for i := at; i < len(input); i++ {
		if sc.member(input[i]) {
			return i, sc.AcceptRun(input, i+1), true
		}
	}
	return -1, -1, false
}
