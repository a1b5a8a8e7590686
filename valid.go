package charset

// debugChecks gates internal canonical-form verification at construction
// time. It is off in normal builds; the checker itself is also exercised
// directly by tests against every operation's output.
const debugChecks = false

// isCanonical reports whether pairs is a valid canonical endpoint sequence:
// an even number of endpoints forming valid closed ranges, sorted ascending,
// with a gap of at least one unit between consecutive ranges.
func isCanonical(pairs []uint16) bool {
	if len(pairs)%2 != 0 {
		return false
	}
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i] > pairs[i+1] {
			return false
		}
		if i > 0 && int(pairs[i]) <= int(pairs[i-1])+1 {
			return false
		}
	}
	return true
}

// assertCanonical panics if pairs is not in canonical form. Reaching the
// panic indicates a bug in a construction path, never bad user input.
func assertCanonical(pairs []uint16) {
	if !isCanonical(pairs) {
		panic("charset: internal error: set not in canonical form")
	}
}
