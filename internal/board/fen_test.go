package board

import "testing"

func TestInvalidFEN(t *testing.T) {
	invalid := []string{
		// Pawn on a non-pawn square.
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P2PP1P1P/1C5C1/9/RNBAKABNR w",
		// Black pawn too deep on its own side.
		"rrnbakabnr/9/1c5c1/p3p1p1p/3p5/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w",
		// Advisor outside the palace.
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/6A2/RNBAK1BNR w",
		// Bishop off its seven points.
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/6B2/RNBAKA1NR w",
		// King outside the palace.
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/6K2/RNBA1ABNR w",
	}
	for _, fen := range invalid {
		var b Board
		if _, _, err := b.SetFromFEN(fen); err == nil {
			t.Errorf("invalid FEN accepted: %q", fen)
		}
	}
}

func TestPartialFEN(t *testing.T) {
	var b Board
	rule50, moves, err := b.SetFromFEN("rnbakabnr//1c5c1/p1p1p1p1p///P1P1P1P1P/1C2K2C1")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b.GeneratePseudolegalMoves()); got != 28 {
		t.Errorf("pseudolegal moves = %d, want 28", got)
	}
	if rule50 != 0 || moves != 1 {
		t.Errorf("counters = %d, %d, want 0, 1", rule50, moves)
	}
}

func TestPartialFENWithSpaces(t *testing.T) {
	var b Board
	rule50, moves, err := b.SetFromFEN("    rnbakabnr//1c5c1/p1p1p1p1p///P1P1P1P1P/1C2K2C1    w   ")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b.GeneratePseudolegalMoves()); got != 28 {
		t.Errorf("pseudolegal moves = %d, want 28", got)
	}
	if rule50 != 0 || moves != 1 {
		t.Errorf("counters = %d, %d, want 0, 1", rule50, moves)
	}
}

func TestBoardToFEN(t *testing.T) {
	b := StartposBoard()
	if got := BoardToFEN(b); got != "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w" {
		t.Errorf("starting position serialized as %q", got)
	}
	b.Mirror()
	if got := BoardToFEN(b); got != "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR b" {
		t.Errorf("mirrored starting position serialized as %q", got)
	}
}

func TestParseMove(t *testing.T) {
	b := StartposBoard()
	m, err := b.ParseMove("h2e2")
	if err != nil {
		t.Fatal(err)
	}
	if m.From() != H2 || m.To() != E2 {
		t.Errorf("parsed %v", m)
	}

	// For black the input is in true orientation but the move is stored
	// from black's point of view.
	b.Mirror()
	m, err = b.ParseMove("h7e7")
	if err != nil {
		t.Fatal(err)
	}
	if m.From() != H2 || m.To() != E2 {
		t.Errorf("parsed black move %v", m)
	}

	if _, err := b.ParseMove("e3e4"); err == nil {
		t.Error("accepted a move from an empty square")
	}
	if _, err := b.ParseMove("h2"); err == nil {
		t.Error("accepted a truncated move")
	}
}

func TestFENSideToMove(t *testing.T) {
	var b Board
	if _, _, err := b.SetFromFEN(StartposFEN); err != nil {
		t.Fatal(err)
	}
	if b.Flipped() {
		t.Error("white to move parsed as flipped")
	}
	if _, _, err := b.SetFromFEN("rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR b - - 0 1"); err != nil {
		t.Fatal(err)
	}
	if !b.Flipped() {
		t.Error("black to move parsed as unflipped")
	}
	if _, _, err := b.SetFromFEN("rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x - - 0 1"); err == nil {
		t.Error("accepted an invalid side to move")
	}
}
