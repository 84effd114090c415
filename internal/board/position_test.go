package board

import "testing"

func historyFromFEN(t *testing.T, fen string, rule50Ply, gamePly int) *PositionHistory {
	t.Helper()
	var b Board
	if _, _, err := b.SetFromFEN(fen); err != nil {
		t.Fatalf("SetFromFEN(%q): %v", fen, err)
	}
	h := &PositionHistory{}
	h.Reset(b, rule50Ply, gamePly)
	return h
}

func appendMoves(t *testing.T, h *PositionHistory, moves ...string) {
	t.Helper()
	for _, ms := range moves {
		m, err := h.Last().Board().ParseMove(ms)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", ms, err)
		}
		h.Append(m)
	}
}

func TestPositionFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1",
		"r1ba1a3/4kn3/2n1b4/pNp1p1p1p/4c4/6P2/P1P2R2P/1CcC5/9/2BAKAB2 w - - 1 1",
		"1cbak4/9/n2a5/2p1p3p/5cp2/2n2N3/6PCP/3AB4/2C6/3A1K1N1 w - - 0 1",
		"5a3/3k5/3aR4/9/5r3/5n3/9/3A1A3/5K3/2BC2B2 w - - 2 30",
		"CRN1k1b2/3ca4/4ba3/9/2nr5/9/9/4B4/4A4/4KA3 w - - 1 8",
		"R1N1k1b2/9/3aba3/9/2nr5/2B6/9/4B4/4A4/4KA3 w - - 0 10",
		"C1nNk4/9/9/9/9/9/n1pp5/B3C4/9/3A1K3 w - - 0 1",
		"4ka3/4a4/9/9/4N4/p8/9/4C3c/7n1/2BK5 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Errorf("PositionFromFEN(%q): %v", fen, err)
			continue
		}
		if got := PositionToFEN(pos); got != fen {
			t.Errorf("round trip of %q gave %q", fen, got)
		}
	}
}

func TestComputeLastMoveRepetitions(t *testing.T) {
	h := historyFromFEN(t, "3k5/9/9/6c2/9/9/9/6R2/9/5K3 b", 2, 30)
	appendMoves(t, h, "g6h6", "g2h2", "h6g6", "h2g2")
	if got := h.PositionAt(h.Len() - 1).Repetitions(); got != 1 {
		t.Errorf("repetitions = %d, want 1", got)
	}

	appendMoves(t, h, "g6h6", "g2h2", "h6g6", "h2g2")
	if got := h.PositionAt(h.Len() - 1).Repetitions(); got != 2 {
		t.Errorf("repetitions = %d, want 2", got)
	}
	if got := h.Last().CycleLength(); got != 4 {
		t.Errorf("cycle length = %d, want 4", got)
	}
}

func TestDidRepeatSinceLastZeroingMove(t *testing.T) {
	t.Run("current", func(t *testing.T) {
		h := historyFromFEN(t, "3k5/9/9/6rC1/9/9/9/6R2/9/5K3 b - - 2 30", 2, 30)
		appendMoves(t, h, "g6h6", "g2h2", "h6g6", "h2g2", "g6h6")
		if !h.DidRepeatSinceLastZeroingMove() {
			t.Error("repetition at the current position not found")
		}
	})
	t.Run("before", func(t *testing.T) {
		h := historyFromFEN(t, "3k5/9/9/6rC1/9/9/9/5R3/9/5K3 b - - 2 30", 2, 30)
		appendMoves(t, h, "g6h6", "f2h2", "h6g6", "h2g2", "g6h6", "g2h2")
		if !h.DidRepeatSinceLastZeroingMove() {
			t.Error("repetition one ply back not found")
		}
	})
	t.Run("older", func(t *testing.T) {
		h := historyFromFEN(t, "3k5/9/9/6rC1/9/9/9/5R3/9/5K3 b - - 2 30", 2, 30)
		appendMoves(t, h, "g6b6", "f2b2", "b6h6", "b2h2", "h6g6", "h2g2", "g6h6", "g2h2")
		if !h.DidRepeatSinceLastZeroingMove() {
			t.Error("older repetition not found")
		}
	})
	t.Run("before zeroing move", func(t *testing.T) {
		h := historyFromFEN(t, "3k5/9/9/6rC1/9/9/9/6R2/9/5K3 b - - 2 30", 2, 30)
		appendMoves(t, h, "g6f6", "g2f2", "f6g6", "f2g2", "g6h6", "g2h2")
		if h.DidRepeatSinceLastZeroingMove() {
			t.Error("repetition before a capture must not count")
		}
	})
	t.Run("never repeated", func(t *testing.T) {
		h := historyFromFEN(t, "3k5/9/9/6rC1/9/9/9/6R2/9/5K3 b - - 2 30", 2, 30)
		appendMoves(t, h, "g6c6", "g2f2")
		if h.DidRepeatSinceLastZeroingMove() {
			t.Error("found a repetition in a non-repeating sequence")
		}
	})
}

func TestRuleJudgeWhiteChase(t *testing.T) {
	h := historyFromFEN(t, "3k5/9/9/6c2/9/9/9/6R2/9/5K3 b - - 2 30", 2, 30)
	appendMoves(t, h, "g6h6", "g2h2", "h6g6", "h2g2")
	if got := h.RuleJudge(); got != BlackWon {
		t.Errorf("RuleJudge() = %v, want %v", got, BlackWon)
	}
}

func TestRuleJudgeBlackChase(t *testing.T) {
	h := historyFromFEN(t, "3k5/9/7r1/9/9/9/9/6C2/9/5K3 b - - 2 30", 2, 30)
	appendMoves(t, h, "h7g7", "g2h2", "g7h7", "h2g2")
	if got := h.RuleJudge(); got != WhiteWon {
		t.Errorf("RuleJudge() = %v, want %v", got, WhiteWon)
	}

	h = historyFromFEN(t, "1rbakabnr/9/2n6/p1p3p1p/c8/4C4/P1P1P1PcP/1C2B1N2/3N5/R2AKABR1 w", 2, 30)
	appendMoves(t, h, "a0c0", "a5c5", "c0a0", "c5a5")
	if got := h.RuleJudge(); got != BlackWon {
		t.Errorf("RuleJudge() = %v, want %v", got, BlackWon)
	}
}

func TestRuleJudgeWhiteCheck(t *testing.T) {
	h := historyFromFEN(t, "3k5/9/9/9/9/9/9/3R5/9/5K3 b - - 2 30", 2, 30)
	appendMoves(t, h, "d9e9", "d2e2", "e9d9", "e2d2")
	if got := h.RuleJudge(); got != BlackWon {
		t.Errorf("RuleJudge() = %v, want %v", got, BlackWon)
	}
}

func TestRuleJudgeBlackCheck(t *testing.T) {
	h := historyFromFEN(t, "3k5/9/4r4/9/9/9/9/9/9/5K3 b - - 2 30", 2, 30)
	appendMoves(t, h, "e7f7", "f0e0", "f7e7", "e0f0")
	if got := h.RuleJudge(); got != WhiteWon {
		t.Errorf("RuleJudge() = %v, want %v", got, WhiteWon)
	}
}

func TestRuleJudgeDraw(t *testing.T) {
	// Mutual rook chase.
	h := historyFromFEN(t, "3k5/9/6r2/9/9/9/9/9/6R2/5K3 b - - 2 30", 2, 30)
	appendMoves(t, h, "g7h7", "g1h1", "h7g7", "h1g1")
	if got := h.RuleJudge(); got != Draw {
		t.Errorf("mutual chase: RuleJudge() = %v, want %v", got, Draw)
	}

	// Knight and pawn shuffling without any chase.
	h = historyFromFEN(t, "4c4/3k5/4b3b/9/9/2B4N1/4p4/3A5/2p1A4/5K3 w - - 2 30", 2, 30)
	appendMoves(t, h, "h4g2", "e3f3", "g2h4", "f3e3")
	if got := h.RuleJudge(); got != Draw {
		t.Errorf("harmless shuffle: RuleJudge() = %v, want %v", got, Draw)
	}

	// Rook and knight attack each other, both protected.
	h = historyFromFEN(t, "3k5/9/9/9/9/9/9/9/1r2ARn2/4K4 b", 2, 30)
	appendMoves(t, h, "b1b0", "e1d0", "b0b1", "d0e1")
	if got := h.RuleJudge(); got != Draw {
		t.Errorf("mutual attack: RuleJudge() = %v, want %v", got, Draw)
	}
}

func TestComputeGameResult(t *testing.T) {
	h := historyFromFEN(t, StartposFEN, 0, 0)
	if got := h.ComputeGameResult(); got != Undecided {
		t.Errorf("starting position: %v, want %v", got, Undecided)
	}

	// Bare kings cannot mate.
	h = historyFromFEN(t, "3k5/9/9/9/9/9/9/9/9/5K3 w - - 0 1", 0, 0)
	if got := h.ComputeGameResult(); got != Draw {
		t.Errorf("bare kings: %v, want %v", got, Draw)
	}

	// No-progress limit.
	h = historyFromFEN(t, "3k5/9/9/9/9/9/9/9/R8/5K3 w - - 0 1", 120, 200)
	if got := h.ComputeGameResult(); got != Draw {
		t.Errorf("no-progress limit: %v, want %v", got, Draw)
	}

	// Stalemate loses for the side with no moves.
	h = historyFromFEN(t, "3k5/9/9/9/9/9/9/4p4/3p1p3/4K4 w - - 0 1", 0, 0)
	if got := h.ComputeGameResult(); got != BlackWon {
		t.Errorf("stalemate: %v, want %v", got, BlackWon)
	}

	// A second repetition hands the position to the rule judge.
	h = historyFromFEN(t, "3k5/9/9/6c2/9/9/9/6R2/9/5K3 b - - 2 30", 2, 30)
	appendMoves(t, h, "g6h6", "g2h2", "h6g6", "h2g2",
		"g6h6", "g2h2", "h6g6", "h2g2")
	if got := h.Last().Repetitions(); got != 2 {
		t.Fatalf("repetitions = %d, want 2", got)
	}
	if got := h.ComputeGameResult(); got != BlackWon {
		t.Errorf("perpetual chase by white: %v, want %v", got, BlackWon)
	}
}

func TestGameResultString(t *testing.T) {
	if WhiteWon.String() != "1-0" || BlackWon.String() != "0-1" ||
		Draw.String() != "1/2-1/2" || Undecided.String() != "*" {
		t.Error("PGN result strings are wrong")
	}
	if WhiteWon.Negate() != BlackWon || Draw.Negate() != Draw {
		t.Error("Negate is wrong")
	}
}

func TestCheckStreakFreezesNoProgressClock(t *testing.T) {
	// A lone rook checking back and forth: the clock advances for the
	// first checks, then freezes once the streak passes the limit.
	h := historyFromFEN(t, "3k5/9/9/9/9/9/9/3R5/9/5K3 b - - 0 0", 0, 0)
	for i := 0; i < 8; i++ {
		appendMoves(t, h, "d9e9", "d2e2", "e9d9", "e2d2")
	}
	// Every white move checks, so eventually only black's replies tick
	// the counter.
	if got := h.Last().Rule50Ply(); got >= h.Len()-1 {
		t.Errorf("no-progress clock %d not slowed by the check streak (%d plies)",
			got, h.Len()-1)
	}
}
