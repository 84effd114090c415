package board

import "testing"

func TestNumPolicyIndices(t *testing.T) {
	if NumPolicyIndices != 2062 {
		t.Fatalf("NumPolicyIndices = %d, want 2062", NumPolicyIndices)
	}
}

func TestPolicyIndexOrdering(t *testing.T) {
	if got := MoveFromNNIndex(0, NoTransform).String(); got != "a0a1" {
		t.Errorf("index 0 = %q, want \"a0a1\"", got)
	}
	if got := MoveFromNNIndex(NumPolicyIndices-1, NoTransform).String(); got != "i9i8" {
		t.Errorf("last index = %q, want \"i9i8\"", got)
	}
	for i := 1; i < NumPolicyIndices; i++ {
		prev := MoveFromNNIndex(i-1, NoTransform).String()
		cur := MoveFromNNIndex(i, NoTransform).String()
		if prev >= cur {
			t.Fatalf("index order broken at %d: %q >= %q", i, prev, cur)
		}
	}
}

func TestPolicyIndexBijection(t *testing.T) {
	for _, transform := range []int{NoTransform, FlipTransform} {
		seen := make(map[Move]bool, NumPolicyIndices)
		for i := 0; i < NumPolicyIndices; i++ {
			m := MoveFromNNIndex(i, transform)
			if seen[m] {
				t.Fatalf("transform %d: move %v appears twice", transform, m)
			}
			seen[m] = true
			if got := m.AsNNIndex(transform); got != uint16(i) {
				t.Fatalf("transform %d: AsNNIndex(%v) = %d, want %d", transform, m, got, i)
			}
		}
	}
}

func TestFlipTransformIsInvolution(t *testing.T) {
	for sq := A0; sq < NoSquare; sq++ {
		f := TransformSquare(sq, FlipTransform)
		if f.Rank() != sq.Rank() || f.File() != 8-sq.File() {
			t.Errorf("TransformSquare(%v) = %v", sq, f)
		}
		if TransformSquare(f, FlipTransform) != sq {
			t.Errorf("double flip of %v gives %v", sq, TransformSquare(f, FlipTransform))
		}
		if TransformSquare(sq, NoTransform) != sq {
			t.Errorf("NoTransform moved %v", sq)
		}
	}
}

// Every legal move in a sample of positions must have a policy index that
// maps back to the same move.
func TestLegalMovesHavePolicyIndices(t *testing.T) {
	fens := []string{
		StartposFEN,
		"r1ba1a3/4kn3/2n1b4/pNp1p1p1p/4c4/6P2/P1P2R2P/1CcC5/9/2BAKAB2 w - - 1 1",
		"1cbak4/9/n2a5/2p1p3p/5cp2/2n2N3/6PCP/3AB4/2C6/3A1K1N1 w - - 0 1",
		"4ka3/4a4/9/9/4N4/p8/9/4C3c/7n1/2BK5 w - - 0 1",
	}
	for _, fen := range fens {
		var b Board
		if _, _, err := b.SetFromFEN(fen); err != nil {
			t.Fatal(err)
		}
		for _, transform := range []int{NoTransform, FlipTransform} {
			for _, m := range b.GenerateLegalMoves() {
				idx := m.AsNNIndex(transform)
				if int(idx) >= NumPolicyIndices {
					t.Fatalf("move %v has out-of-range index %d", m, idx)
				}
				if back := MoveFromNNIndex(int(idx), transform); back != m {
					t.Fatalf("transform %d: %v -> %d -> %v", transform, m, idx, back)
				}
			}
		}
	}
}

func TestMoveEncoding(t *testing.T) {
	m := NewMove(H2, E2)
	if m.From() != H2 || m.To() != E2 {
		t.Errorf("NewMove round trip: %v", m)
	}
	if m.String() != "h2e2" {
		t.Errorf("String() = %q", m.String())
	}
	if m.Flip().String() != "h7e7" {
		t.Errorf("Flip() = %q", m.Flip().String())
	}
	if m.IsNull() {
		t.Error("real move reported as null")
	}
	if !Move(0).IsNull() {
		t.Error("zero move not null")
	}
}
