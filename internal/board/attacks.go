package board

// direction is a step expressed as (rank delta, file delta).
type direction struct{ rank, file int }

var (
	orthogonalDirections = [4]direction{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	diagonalDirections   = [4]direction{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
	bishopDirections     = [4]direction{{2, 2}, {-2, 2}, {2, -2}, {-2, -2}}
	knightDirections     = [8]direction{{-2, -1}, {-2, 1}, {2, -1}, {2, 1}, {1, -2}, {1, 2}, {-1, -2}, {-1, 2}}
)

// pseudoAttacks holds the occupancy-independent attack sets: pawns and the
// reverse pawn lookups, plus king and advisor steps inside the palaces.
// The knight entry keeps the unblocked jump set.
var pseudoAttacks [10][90]BitBoard

// slidingAttack walks the four orthogonal rays from sq. Rooks attack every
// square up to and including the first blocker. Cannons attack nothing
// before the first blocker (the screen) and everything behind it up to and
// including the second blocker.
func slidingAttack(pt PieceType, sq Square, occupied BitBoard) BitBoard {
	var attack BitBoard
	for _, d := range orthogonalDirections {
		hurdle := false
		for s := sq.offset(d.rank, d.file); s.IsValid(); s = s.offset(d.rank, d.file) {
			if pt == Rook || hurdle {
				attack = attack.Set(s)
			}
			if occupied.IsSet(s) {
				if pt == Cannon && !hurdle {
					hurdle = true
				} else {
					break
				}
			}
		}
	}
	return attack
}

// lameLeaperPathDir returns the single square that blocks the knight or
// bishop jump d from s. For knightTo the jump is reversed: the blocking
// square is adjacent to the destination rather than the origin.
func lameLeaperPathDir(pt PieceType, d direction, s Square) BitBoard {
	var b BitBoard
	to := s.offset(d.rank, d.file)
	if !to.IsValid() {
		return b
	}
	if pt == knightTo {
		s, to = to, s
		d.rank, d.file = -d.rank, -d.file
	}
	dr, df := 1, 1
	if d.rank < 0 {
		dr = -1
	}
	if d.file < 0 {
		df = -1
	}
	diff := abs(to.File()-s.File()) - abs(to.Rank()-s.Rank())
	switch {
	case diff > 0:
		s = s.offset(0, df)
	case diff < 0:
		s = s.offset(dr, 0)
	default:
		s = s.offset(dr, df)
	}
	return b.Set(s)
}

// lameLeaperPath returns the union of blocking squares for all jumps of a
// knight, knightTo or bishop on s.
func lameLeaperPath(pt PieceType, s Square) BitBoard {
	var b BitBoard
	for _, d := range leaperDirections(pt) {
		b = b.Or(lameLeaperPathDir(pt, d, s))
	}
	if pt == Bishop {
		b = b.And(Half[halfOf(s)])
	}
	return b
}

// lameLeaperAttack returns the jump destinations of a knight, knightTo or
// bishop on s that are not blocked by occupied.
func lameLeaperAttack(pt PieceType, s Square, occupied BitBoard) BitBoard {
	var b BitBoard
	for _, d := range leaperDirections(pt) {
		to := s.offset(d.rank, d.file)
		if to.IsValid() && !lameLeaperPathDir(pt, d, s).Intersects(occupied) {
			b = b.Set(to)
		}
	}
	if pt == Bishop {
		b = b.And(Half[halfOf(s)])
	}
	return b
}

func leaperDirections(pt PieceType) []direction {
	if pt == Bishop {
		return bishopDirections[:]
	}
	return knightDirections[:]
}

func halfOf(s Square) int {
	if s.Rank() > 4 {
		return 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// pawnAttacks returns the squares our pawn on s attacks: forward, plus
// sideways once it has crossed the river.
func pawnAttacks(s Square) BitBoard {
	var b BitBoard
	if to := s.offset(1, 0); to.IsValid() {
		b = b.Set(to)
	}
	if s.Rank() > 4 {
		if to := s.offset(0, -1); to.IsValid() {
			b = b.Set(to)
		}
		if to := s.offset(0, 1); to.IsValid() {
			b = b.Set(to)
		}
	}
	return b
}

// pawnAttacksTo returns the squares from which a pawn would attack s:
// pawnToOurs for their pawns attacking our side, pawnToTheirs the reverse.
func pawnAttacksTo(pt PieceType, s Square) BitBoard {
	ours := pt == pawnToOurs
	dr := -1
	if ours {
		dr = 1
	}
	var b BitBoard
	if to := s.offset(dr, 0); to.IsValid() {
		b = b.Set(to)
	}
	if (ours && s.Rank() < 5) || (!ours && s.Rank() > 4) {
		if to := s.offset(0, -1); to.IsValid() {
			b = b.Set(to)
		}
		if to := s.offset(0, 1); to.IsValid() {
			b = b.Set(to)
		}
	}
	return b
}

// Attacks returns the attack set for a piece of the given type on sq, with
// occupied as the blocker set. Pieces whose attacks are independent of
// occupancy come straight from the pseudo-attack tables.
func Attacks(pt PieceType, sq Square, occupied BitBoard) BitBoard {
	switch pt {
	case Rook:
		return rookAttacksTable[rookMagicParams[sq].Index(occupied)]
	case Cannon:
		return cannonAttacksTable[cannonMagicParams[sq].Index(occupied)]
	case Bishop:
		return bishopAttacksTable[bishopMagicParams[sq].Index(occupied)]
	case Knight:
		return knightAttacksTable[knightMagicParams[sq].Index(occupied)]
	case knightTo:
		return knightToAttacksTable[knightToMagicParams[sq].Index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

func init() {
	buildAttacksTable(Rook, &rookMagicParams, &rookMagics, rookAttacksTable)
	buildAttacksTable(Cannon, &cannonMagicParams, &rookMagics, cannonAttacksTable)
	buildAttacksTable(Bishop, &bishopMagicParams, &bishopMagics, bishopAttacksTable)
	buildAttacksTable(Knight, &knightMagicParams, &knightMagics, knightAttacksTable)
	buildAttacksTable(knightTo, &knightToMagicParams, &knightToMagics, knightToAttacksTable)

	for sq := A0; sq < NoSquare; sq++ {
		pseudoAttacks[Pawn][sq] = pawnAttacks(sq)
		pseudoAttacks[pawnToOurs][sq] = pawnAttacksTo(pawnToOurs, sq)
		pseudoAttacks[pawnToTheirs][sq] = pawnAttacksTo(pawnToTheirs, sq)

		// King and advisor steps exist only inside the palaces.
		if Palace.IsSet(sq) {
			var king, advisor BitBoard
			for _, d := range orthogonalDirections {
				if to := sq.offset(d.rank, d.file); to.IsValid() {
					king = king.Set(to)
				}
			}
			for _, d := range diagonalDirections {
				if to := sq.offset(d.rank, d.file); to.IsValid() {
					advisor = advisor.Set(to)
				}
			}
			pseudoAttacks[King][sq] = king.And(Palace)
			pseudoAttacks[Advisor][sq] = advisor.And(Palace)
		}

		pseudoAttacks[Knight][sq] = lameLeaperAttack(Knight, sq, BitBoard{})
	}
}
