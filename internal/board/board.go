package board

// Board represents a xiangqi position. Unlike most engines, the board is
// mirrored for black: piece bitboards are always from the side to move's
// perspective, with that side playing toward rank 9. Flipped reports
// whether the true orientation is currently swapped.
//
// Board values are comparable with ==; equality covers the piece identity
// board, so two positions reached by different piece shuffles compare
// unequal even when the same squares are occupied.
type Board struct {
	ours      BitBoard
	theirs    BitBoard
	rooks     BitBoard
	advisors  BitBoard
	cannons   BitBoard
	pawns     BitBoard
	knights   BitBoard
	bishops   BitBoard
	ourKing   Square
	theirKing Square
	flipped   bool

	// idBoard tracks which piece of each side stands on every square, in
	// true (unflipped) orientation. The repetition judge uses it to tell
	// chases of distinct pieces apart.
	idBoard [90]uint8
}

// Clear resets the board to empty.
func (b *Board) Clear() {
	*b = Board{ourKing: NoSquare, theirKing: NoSquare}
}

// Mirror swaps the two sides and flips all pieces to the opposite rank
// (what was on rank 0 appears on rank 9; files stay put).
func (b *Board) Mirror() {
	b.ours, b.theirs = b.theirs.Mirror(), b.ours.Mirror()
	b.rooks = b.rooks.Mirror()
	b.advisors = b.advisors.Mirror()
	b.cannons = b.cannons.Mirror()
	b.pawns = b.pawns.Mirror()
	b.knights = b.knights.Mirror()
	b.bishops = b.bishops.Mirror()
	b.ourKing, b.theirKing = b.theirKing.Flip(), b.ourKing.Flip()
	b.flipped = !b.flipped
}

// Ours returns all pieces of the side to move.
func (b *Board) Ours() BitBoard { return b.ours }

// Theirs returns all pieces of the side not to move.
func (b *Board) Theirs() BitBoard { return b.theirs }

// Rooks returns the rooks of both sides.
func (b *Board) Rooks() BitBoard { return b.rooks }

// Advisors returns the advisors of both sides.
func (b *Board) Advisors() BitBoard { return b.advisors }

// Cannons returns the cannons of both sides.
func (b *Board) Cannons() BitBoard { return b.cannons }

// Pawns returns the pawns of both sides.
func (b *Board) Pawns() BitBoard { return b.pawns }

// Knights returns the knights of both sides.
func (b *Board) Knights() BitBoard { return b.knights }

// Bishops returns the bishops of both sides.
func (b *Board) Bishops() BitBoard { return b.bishops }

// Kings returns both king squares as a bitboard.
func (b *Board) Kings() BitBoard {
	return SquareBB(b.ourKing).Or(SquareBB(b.theirKing))
}

// Flipped reports whether black is to move.
func (b *Board) Flipped() bool { return b.flipped }

// putPiece places a piece on the square.
func (b *Board) putPiece(sq Square, pt PieceType, theirs bool) {
	if theirs {
		b.theirs = b.theirs.Set(sq)
	} else {
		b.ours = b.ours.Set(sq)
	}
	switch pt {
	case Rook:
		b.rooks = b.rooks.Set(sq)
	case Advisor:
		b.advisors = b.advisors.Set(sq)
	case Cannon:
		b.cannons = b.cannons.Set(sq)
	case Pawn:
		b.pawns = b.pawns.Set(sq)
	case Knight:
		b.knights = b.knights.Set(sq)
	case Bishop:
		b.bishops = b.bishops.Set(sq)
	case King:
		if theirs {
			b.theirKing = sq
		} else {
			b.ourKing = sq
		}
	}
}

// GeneratePseudolegalMoves generates all moves for the side to move,
// possibly leaving its own king in check. Moves are emitted per source
// square in ascending square order.
func (b *Board) GeneratePseudolegalMoves() MoveList {
	result := make(MoveList, 0, 60)
	occupied := b.ours.Or(b.theirs)
	appendMoves := func(source Square, targets BitBoard) {
		for !targets.Empty() {
			result = append(result, NewMove(source, targets.PopLSB()))
		}
	}
	for pieces := b.ours; !pieces.Empty(); {
		source := pieces.PopLSB()
		switch {
		case b.rooks.IsSet(source):
			appendMoves(source, Attacks(Rook, source, occupied).AndNot(b.ours))
		case b.advisors.IsSet(source):
			appendMoves(source, Attacks(Advisor, source, BitBoard{}).AndNot(b.ours))
		case b.cannons.IsSet(source):
			// Quiet moves slide like a rook; captures need a screen.
			attacks := Attacks(Rook, source, occupied).AndNot(occupied)
			attacks = attacks.Or(Attacks(Cannon, source, occupied).And(b.theirs))
			appendMoves(source, attacks)
		case b.pawns.IsSet(source):
			appendMoves(source, Attacks(Pawn, source, BitBoard{}).AndNot(b.ours))
		case b.knights.IsSet(source):
			appendMoves(source, Attacks(Knight, source, occupied).AndNot(b.ours))
		case b.bishops.IsSet(source):
			appendMoves(source, Attacks(Bishop, source, occupied).AndNot(b.ours))
		case source == b.ourKing:
			appendMoves(source, Attacks(King, source, BitBoard{}).AndNot(b.ours))
		}
	}
	return result
}

// ApplyMove applies a move for the side to move. It does not flip the
// board. Returns true if the move captured, i.e. the no-progress counters
// should reset.
func (b *Board) ApplyMove(m Move) bool {
	from, to := m.From(), m.To()

	b.ours = b.ours.Clear(from).Set(to)

	capture := b.theirs.IsSet(to)
	if capture {
		b.theirs = b.theirs.Clear(to)
		b.rooks = b.rooks.Clear(to)
		b.advisors = b.advisors.Clear(to)
		b.cannons = b.cannons.Clear(to)
		b.pawns = b.pawns.Clear(to)
		b.knights = b.knights.Clear(to)
		b.bishops = b.bishops.Clear(to)
	}

	if from == b.ourKing {
		b.ourKing = to
		return capture
	}

	b.rooks = b.rooks.SetIf(to, b.rooks.IsSet(from)).Clear(from)
	b.advisors = b.advisors.SetIf(to, b.advisors.IsSet(from)).Clear(from)
	b.cannons = b.cannons.SetIf(to, b.cannons.IsSet(from)).Clear(from)
	b.pawns = b.pawns.SetIf(to, b.pawns.IsSet(from)).Clear(from)
	b.knights = b.knights.SetIf(to, b.knights.IsSet(from)).Clear(from)
	b.bishops = b.bishops.SetIf(to, b.bishops.IsSet(from)).Clear(from)

	// The identity board lives in true orientation.
	if b.flipped {
		from, to = from.Flip(), to.Flip()
	}
	b.idBoard[to] = b.idBoard[from]
	b.idBoard[from] = 0

	return capture
}

// checkersTo returns the pieces giving check to a king on ksq under the
// hypothetical occupancy. With our=true the attackers are their pieces
// checking our king; with our=false the roles swap.
func (b *Board) checkersTo(ksq Square, occupied BitBoard, our bool) BitBoard {
	var checkers BitBoard
	checkers = checkers.Or(Attacks(Rook, ksq, occupied).And(b.rooks))
	checkers = checkers.Or(Attacks(Cannon, ksq, occupied).And(b.cannons))
	pawnTo := pawnToTheirs
	if our {
		pawnTo = pawnToOurs
	}
	checkers = checkers.Or(Attacks(pawnTo, ksq, BitBoard{}).And(b.pawns))
	checkers = checkers.Or(Attacks(knightTo, ksq, occupied).And(b.knights))
	if our {
		return checkers.And(b.theirs)
	}
	return checkers.And(b.ours)
}

// recapturesTo returns their pieces that attack sq under the current
// occupancy.
func (b *Board) recapturesTo(sq Square) BitBoard {
	occupied := b.ours.Or(b.theirs)
	var attackers BitBoard
	attackers = attackers.Or(Attacks(Rook, sq, occupied).And(b.rooks))
	attackers = attackers.Or(Attacks(Advisor, sq, BitBoard{}).And(b.advisors))
	attackers = attackers.Or(Attacks(Cannon, sq, occupied).And(b.cannons))
	attackers = attackers.Or(Attacks(pawnToOurs, sq, BitBoard{}).And(b.pawns))
	attackers = attackers.Or(Attacks(knightTo, sq, occupied).And(b.knights))
	attackers = attackers.Or(Attacks(Bishop, sq, occupied).And(b.bishops))
	attackers = attackers.Or(Attacks(King, sq, BitBoard{}).And(SquareBB(b.theirKing)))
	return attackers.And(b.theirs)
}

// IsUnderCheck returns true if the king of the side to move is attacked.
func (b *Board) IsUnderCheck() bool {
	return !b.checkersTo(b.ourKing, b.ours.Or(b.theirs), true).Empty()
}

// IsLegalMove checks whether a pseudolegal move of the side to move leaves
// its king safe and the two generals separated.
func (b *Board) IsLegalMove(m Move) bool {
	return b.isLegalMoveFor(m, true)
}

func (b *Board) isLegalMoveFor(m Move, our bool) bool {
	occupied := b.ours.Or(b.theirs).Clear(m.From()).Set(m.To())

	ourKing, theirKing := b.ourKing, b.theirKing
	if !our {
		ourKing, theirKing = theirKing, ourKing
	}

	// Flying general: the two kings may never face each other on an open
	// file.
	ksq := ourKing
	if ourKing == m.From() {
		ksq = m.To()
	}
	if Attacks(Rook, ksq, occupied).IsSet(theirKing) {
		return false
	}

	// A king move is legal if the destination square is not attacked.
	if ksq != ourKing {
		return b.checkersTo(ksq, occupied, our).Empty()
	}

	// Any other move is legal if the king is not attacked afterwards. A
	// checker standing on the destination square counts as captured.
	checkers := b.checkersTo(ksq, occupied, our)
	checkers = checkers.Clear(m.To())
	return checkers.Empty()
}

// GenerateLegalMoves generates all legal moves for the side to move,
// preserving pseudolegal order.
func (b *Board) GenerateLegalMoves() MoveList {
	moves := b.GeneratePseudolegalMoves()
	legal := moves[:0]
	for _, m := range moves {
		if b.IsLegalMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsValid checks internal consistency: the piece bitboards must cover the
// occupancy exactly and be pairwise disjoint.
func (b *Board) IsValid() bool {
	all := b.ours.Or(b.theirs)
	bbs := []BitBoard{b.rooks, b.advisors, b.cannons, b.pawns, b.knights, b.bishops, b.Kings()}
	union := BitBoard{}
	for _, bb := range bbs {
		union = union.Or(bb)
	}
	if all.Or(union) != all {
		return false
	}
	for i := range bbs {
		for j := i + 1; j < len(bbs); j++ {
			if bbs[i].Intersects(bbs[j]) {
				return false
			}
		}
	}
	return true
}

// HasMatingMaterial checks whether at least one side can still deliver
// mate. Pawns, rooks and knights always can. Otherwise the cannon,
// advisor and bishop configuration decides, in a few cases only after
// verifying that an immediate mate actually exists.
func (b *Board) HasMatingMaterial() bool {
	if !b.pawns.Empty() || !b.rooks.Empty() || !b.knights.Empty() {
		return true
	}

	level := b.drawLevel()
	if level == noDraw {
		return true
	}
	if level == mateDraw {
		for _, m := range b.GenerateLegalMoves() {
			after := *b
			after.ApplyMove(m)
			after.Mirror()
			if len(after.GenerateLegalMoves()) == 0 {
				return true
			}
		}
	}
	return false
}

type drawLevel int

const (
	noDraw     drawLevel = iota // no drawing situation exists
	directDraw                  // a draw without any further checks
	mateDraw                    // draw unless an immediate mate exists
)

func (b *Board) drawLevel() drawLevel {
	switch b.cannons.PopCount() {
	case 0:
		return directDraw
	case 1:
		cannonSide, otherSide := b.ours, b.theirs
		if b.cannons.And(cannonSide).Empty() {
			cannonSide, otherSide = otherSide, cannonSide
		}
		// The cannon's side must have no advisors to use as screens.
		if b.advisors.And(cannonSide).Empty() {
			switch b.advisors.And(otherSide).PopCount() {
			case 0:
				return directDraw
			case 1:
				if b.bishops.And(cannonSide).Empty() {
					return directDraw
				}
				return mateDraw
			default:
				if b.bishops.And(cannonSide).Empty() {
					return mateDraw
				}
			}
		}
	}

	// One cannon each and no advisors at all.
	if b.cannons.And(b.ours).PopCount() == 1 &&
		b.cannons.And(b.theirs).PopCount() == 1 &&
		b.advisors.Empty() {
		if b.bishops.Empty() {
			return directDraw
		}
		return mateDraw
	}

	return noDraw
}

// String returns a printable diagram of the board in true orientation,
// with uppercase letters for white.
func (b *Board) String() string {
	board := *b
	if board.flipped {
		board.Mirror()
	}
	s := make([]byte, 0, 300)
	for rank := 9; rank >= 0; rank-- {
		s = append(s, byte('0'+rank), ' ')
		for file := 0; file < 9; file++ {
			c := pieceCharAt(&board, NewSquare(file, rank))
			if c == 0 {
				c = '.'
			}
			s = append(s, c, ' ')
		}
		s = append(s, '\n')
	}
	s = append(s, []byte("  a b c d e f g h i\n")...)
	return string(s)
}
