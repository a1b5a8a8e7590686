package charset

import (
	"encoding/binary"

	"github.com/dchest/siphash"

	"github.com/coregx/charset/internal/conv"
)

// Fixed SipHash-2-4 keys ("charset" / "topology" as little-endian bytes)
// so content hashes are stable across processes and releases.
const (
	hashKey0 = 0x0063686172736574
	hashKey1 = 0x746f706f6c6f6779
)

// computeHash hashes the canonical endpoint sequence plus the element
// count, little-endian encoded, in a single pass.
func computeHash(pairs []uint16, size int) uint64 {
	buf := make([]byte, 0, 2*len(pairs)+4)
	for _, p := range pairs {
		buf = binary.LittleEndian.AppendUint16(buf, p)
	}
	buf = binary.LittleEndian.AppendUint32(buf, conv.IntToUint32(size))
	return siphash.Hash(hashKey0, hashKey1, buf)
}

// emptyHash serves the zero-value Set, which never went through a builder.
var emptyHash = computeHash(nil, 0)

// Hash64 returns a 64-bit content hash of the set, computed once at
// construction. Equal sets always hash equal; distinct sets collide only
// with SipHash probability. The hash is deterministic across processes,
// so it is usable as a cache or interning key for character classes.
func (s Set) Hash64() uint64 {
	if len(s.pairs) == 0 {
		return emptyHash
	}
	return s.hash
}
