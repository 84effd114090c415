package board

import "sort"

// Board transforms applied to the policy-index mapping.
const (
	NoTransform   = 0
	FlipTransform = 1 // horizontal mirror, file f becomes file 8-f
)

// The network's policy head scores moves through a dense index over every
// move a piece could ever make from our perspective: rook rays and knight
// jumps from every square, advisor steps between the five lower-palace
// points, and bishop jumps between the seven lower-half bishop points.
// Moves are numbered in the lexicographic order of their coordinate
// notation, which keeps the mapping stable across releases.
var (
	idxToMove = buildIdxToMove()
	moveToIdx = buildMoveToIdx()
)

// NumPolicyIndices is the number of distinct policy indices.
var NumPolicyIndices = len(idxToMove)

var advisorPoints = []Square{D0, F0, E1, D2, F2}
var bishopPoints = []Square{C0, G0, A2, E2, I2, C4, G4}

func buildIdxToMove() []Move {
	seen := make(map[Move]bool)
	for sq := A0; sq < NoSquare; sq++ {
		// Rook rays cover every other square of the same rank or file.
		for f := 0; f < 9; f++ {
			if f != sq.File() {
				seen[NewMove(sq, NewSquare(f, sq.Rank()))] = true
			}
		}
		for r := 0; r < 10; r++ {
			if r != sq.Rank() {
				seen[NewMove(sq, NewSquare(sq.File(), r))] = true
			}
		}
		for _, d := range knightDirections {
			if to := sq.offset(d.rank, d.file); to.IsValid() {
				seen[NewMove(sq, to)] = true
			}
		}
	}
	points := func(pts []Square, d int) {
		for _, from := range pts {
			for _, to := range pts {
				dr := from.Rank() - to.Rank()
				df := from.File() - to.File()
				if dr*dr+df*df == 2*d*d {
					seen[NewMove(from, to)] = true
				}
			}
		}
	}
	points(advisorPoints, 1)
	points(bishopPoints, 2)

	moves := make([]Move, 0, len(seen))
	for m := range seen {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})
	return moves
}

func buildMoveToIdx() []uint16 {
	res := make([]uint16, 128*128)
	for i, m := range idxToMove {
		res[m] = uint16(i)
	}
	return res
}

// TransformSquare applies a board transform to a square.
func TransformSquare(sq Square, transform int) Square {
	if transform&FlipTransform != 0 {
		return NewSquare(8-sq.File(), sq.Rank())
	}
	return sq
}

// AsNNIndex returns the policy index of the move under the given transform.
// The move must be one of the policy moves.
func (m Move) AsNNIndex(transform int) uint16 {
	if transform == 0 {
		return moveToIdx[m]
	}
	t := NewMove(TransformSquare(m.From(), transform),
		TransformSquare(m.To(), transform))
	return t.AsNNIndex(0)
}

// MoveFromNNIndex returns the move for a policy index under the given
// transform. The flip transform is its own inverse.
func MoveFromNNIndex(idx int, transform int) Move {
	m := idxToMove[idx]
	if transform == 0 {
		return m
	}
	return NewMove(TransformSquare(m.From(), transform),
		TransformSquare(m.To(), transform))
}
