package charset

import (
	"errors"
	"slices"
	"testing"
)

func TestTrivialTopology(t *testing.T) {
	top := TrivialTopology()
	if top.Len() != 1 {
		t.Errorf("Len() = %d, want 1", top.Len())
	}
	if got := top.Piece(0); got != (Range{0, 0xFFFF}) {
		t.Errorf("Piece(0) = %v, want the full domain", got)
	}
	if !top.Equal(Topology{}) {
		t.Error("TrivialTopology() not equal to the zero value")
	}
}

func TestNewTopology(t *testing.T) {
	top, err := NewTopology(0x64, 0x62, 0x64, 0x62)
	if err != nil {
		t.Fatalf("NewTopology() error = %v", err)
	}
	if !slices.Equal(top.cuts, []uint16{0x62, 0x64}) {
		t.Errorf("cuts = %v, want [0x62 0x64] (sorted, deduplicated)", top.cuts)
	}

	empty, err := NewTopology()
	if err != nil {
		t.Fatalf("NewTopology() error = %v", err)
	}
	if !empty.Equal(TrivialTopology()) {
		t.Error("NewTopology() with no cuts should be trivial")
	}
}

func TestNewTopology_InvalidCut(t *testing.T) {
	for _, pos := range []int{0, -1, 0x10000, 1 << 20} {
		_, err := NewTopology(pos)
		if err == nil {
			t.Errorf("NewTopology(%d) error = nil, want *CutError", pos)
			continue
		}
		if !errors.Is(err, ErrInvalidCut) {
			t.Errorf("NewTopology(%d) error does not match ErrInvalidCut: %v", pos, err)
		}
		var cerr *CutError
		if !errors.As(err, &cerr) {
			t.Errorf("NewTopology(%d) error = %T, want *CutError", pos, err)
			continue
		}
		if cerr.Position != pos {
			t.Errorf("CutError.Position = %d, want %d", cerr.Position, pos)
		}
	}
}

func TestTopologyOf(t *testing.T) {
	tests := []struct {
		name string
		s    Set
		want []uint16 // cut positions
	}{
		{"empty", Empty(), nil},
		{"universal", Universal(), nil},
		{"interior range", MustRange('b', 'c'), []uint16{'b', 'd'}},
		{"starts at domain min", MustRange(0, 'm'), []uint16{'m' + 1}},
		{"ends at domain max", MustRange('m', 0xFFFF), []uint16{'m'}},
		{"singleton", Singleton('c'), []uint16{'c', 'd'}},
		{
			"two ranges",
			mustRanges(Range{'a', 'f'}, Range{'p', 'z'}),
			[]uint16{'a', 'g', 'p', '{'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := TopologyOf(tt.s)
			if !slices.Equal(top.cuts, tt.want) {
				t.Errorf("TopologyOf() cuts = %v, want %v", top.cuts, tt.want)
			}
		})
	}
}

func TestRefine(t *testing.T) {
	a, err := NewTopology(10, 30)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewTopology(20, 30, 40)
	if err != nil {
		t.Fatal(err)
	}

	merged := a.Refine(b)
	if !slices.Equal(merged.cuts, []uint16{10, 20, 30, 40}) {
		t.Errorf("Refine() cuts = %v, want [10 20 30 40]", merged.cuts)
	}

	// Commutative.
	if !b.Refine(a).Equal(merged) {
		t.Error("Refine() not commutative")
	}
	// Idempotent.
	if !merged.Refine(merged).Equal(merged) {
		t.Error("Refine() with self changed the topology")
	}
	if !merged.Refine(b).Equal(merged) {
		t.Error("Refine() with an incorporated topology changed the result")
	}
	// Trivial partition is the identity.
	if !a.Refine(TrivialTopology()).Equal(a) || !TrivialTopology().Refine(a).Equal(a) {
		t.Error("Refine() with the trivial topology is not the identity")
	}
}

func TestRefineSet(t *testing.T) {
	s := mustRanges(Range{'a', 'f'}, Range{'p', 'z'})
	base, err := NewTopology(5, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := base.RefineSet(s), base.Refine(TopologyOf(s)); !got.Equal(want) {
		t.Errorf("RefineSet() = %v, want %v", got.cuts, want.cuts)
	}
}

func TestPiece(t *testing.T) {
	top, err := NewTopology('b', 'd')
	if err != nil {
		t.Fatal(err)
	}

	want := []Range{{0, 'a'}, {'b', 'c'}, {'d', 0xFFFF}}
	if top.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", top.Len(), len(want))
	}
	for i, wr := range want {
		if got := top.Piece(i); got != wr {
			t.Errorf("Piece(%d) = %v, want %v", i, got, wr)
		}
	}

	expectPanic(t, "Piece(-1)", func() { top.Piece(-1) })
	expectPanic(t, "Piece(Len())", func() { top.Piece(top.Len()) })
}

// TestPieces_Coverage tests the partition invariant: pieces are adjacent,
// start at the domain minimum, and end at the domain maximum.
func TestPieces_Coverage(t *testing.T) {
	tops := []Topology{
		TrivialTopology(),
		TopologyOf(MustRange('a', 'z')),
		TopologyOf(FromUnits(0, 1, 500, 0xFFFF)),
		TrivialTopology().RefineSet(ASCII()).RefineSet(Whitespace()).RefineSet(ASCIILetters()),
	}

	for i, top := range tops {
		var prev Range
		n := 0
		for piece := range top.Pieces() {
			if n == 0 {
				if piece.Lo != 0 {
					t.Errorf("topology %d: first piece starts at %#x, want 0", i, piece.Lo)
				}
			} else if int(piece.Lo) != int(prev.Hi)+1 {
				t.Errorf("topology %d: piece %d starts at %#x after %#x", i, n, piece.Lo, prev.Hi)
			}
			prev = piece
			n++
		}
		if prev.Hi != 0xFFFF {
			t.Errorf("topology %d: last piece ends at %#x, want 0xFFFF", i, prev.Hi)
		}
		if n != top.Len() {
			t.Errorf("topology %d: Pieces() yielded %d pieces, Len() = %d", i, n, top.Len())
		}
	}
}

func TestSets_Basis(t *testing.T) {
	top := TrivialTopology().RefineSet(MustRange('a', 'z')).RefineSet(ASCIIDigits())

	basis := top.Basis()
	if len(basis) != top.Len() {
		t.Fatalf("Basis() length = %d, want %d", len(basis), top.Len())
	}

	union := Empty()
	for i, piece := range basis {
		if piece.NumRanges() != 1 {
			t.Errorf("basis piece %d is not a single range: %v", i, piece)
		}
		if i > 0 && !piece.Disjoint(basis[i-1]) {
			t.Errorf("basis pieces %d and %d overlap", i-1, i)
		}
		union = union.Union(piece)
	}
	if !union.IsUniversal() {
		t.Errorf("union of basis pieces = %v, want the universal set", union)
	}
}

// TestRefinement_Uniformity tests that after refining with a set, every
// piece is either inside the set or disjoint from it, and the set is the
// union of the pieces inside it.
func TestRefinement_Uniformity(t *testing.T) {
	sets := []Set{
		MustRange('a', 'z'),
		ASCIIDigits(),
		FromUnits(0, 'A', 0x7FFF, 0xFFFF),
		Whitespace(),
	}
	top := RefineAll(TrivialTopology(), sets...)

	for _, s := range sets {
		rebuilt := Empty()
		for piece := range top.Sets() {
			switch piece.Relation(s) {
			case OverlapSubset, OverlapEqual:
				rebuilt = rebuilt.Union(piece)
			case OverlapEmpty:
				// Disjoint piece, not part of s.
			default:
				t.Fatalf("piece %v straddles the boundary of %v", piece, s)
			}
		}
		if !rebuilt.Equal(s) {
			t.Errorf("union of covering pieces = %v, want %v", rebuilt, s)
		}
	}
}

// TestRefinement_EndToEnd walks the full refinement scenario: {b,c}, then
// {c}, then every single letter.
func TestRefinement_EndToEnd(t *testing.T) {
	top := TrivialTopology().RefineSet(FromString("bc"))
	if top.Len() != 3 {
		t.Fatalf("after {b,c}: Len() = %d, want 3", top.Len())
	}
	want := []Range{{0, 'a'}, {'b', 'c'}, {'d', 0xFFFF}}
	for i, wr := range want {
		if got := top.Piece(i); got != wr {
			t.Errorf("after {b,c}: Piece(%d) = %v, want %v", i, got, wr)
		}
	}

	top = top.RefineSet(Singleton('c'))
	if top.Len() != 4 {
		t.Fatalf("after {c}: Len() = %d, want 4", top.Len())
	}
	want = []Range{{0, 'a'}, {'b', 'b'}, {'c', 'c'}, {'d', 0xFFFF}}
	for i, wr := range want {
		if got := top.Piece(i); got != wr {
			t.Errorf("after {c}: Piece(%d) = %v, want %v", i, got, wr)
		}
	}

	for u := uint16('a'); u <= 'z'; u++ {
		top = top.RefineSet(Singleton(u))
	}
	if got := top.Piece(0); got != (Range{0, 'a' - 1}) {
		t.Errorf("first piece = %v, want [0, 'a'-1]", got)
	}
	if got := top.Piece(top.Len() - 1); got != (Range{'z' + 1, 0xFFFF}) {
		t.Errorf("last piece = %v, want ['z'+1, 0xFFFF]", got)
	}
	// One piece per letter plus the two outer pieces.
	if top.Len() != 28 {
		t.Errorf("Len() = %d, want 28", top.Len())
	}
	for i, u := 1, uint16('a'); u <= 'z'; i, u = i+1, u+1 {
		if got := top.Piece(i); got != (Range{u, u}) {
			t.Errorf("Piece(%d) = %v, want single letter %c", i, got, rune(u))
		}
	}
}

// TestTopology_Reproducible tests that identical refinement histories
// produce structurally identical topologies.
func TestTopology_Reproducible(t *testing.T) {
	build := func() Topology {
		return TrivialTopology().
			RefineSet(ASCIILetters()).
			RefineSet(FromString("hello world")).
			RefineSet(MustRange(0x2000, 0x20FF))
	}
	a, b := build(), build()
	if !a.Equal(b) {
		t.Fatal("identical histories produced different topologies")
	}
	if !slices.Equal(a.cuts, b.cuts) {
		t.Fatalf("cut sequences differ: %v vs %v", a.cuts, b.cuts)
	}
}

func TestTopology_String(t *testing.T) {
	if got := TrivialTopology().String(); got != "Topology(1 pieces)" {
		t.Errorf("String() = %q", got)
	}
	top, err := NewTopology('a', 'n')
	if err != nil {
		t.Fatal(err)
	}
	if got := top.String(); got != "Topology(3 pieces)" {
		t.Errorf("String() = %q", got)
	}
}
