package board

// Move encodes a move in 16 bits:
//   - bits 0-6:  "to" square
//   - bits 7-13: "from" square
//   - bits 14-15: reserved
//
// Like the board itself, moves are always from the side to move's
// perspective; Flip converts between the two orientations.
type Move uint16

// NewMove creates a move from source and destination squares.
func NewMove(from, to Square) Move {
	return Move(uint16(from)<<7 | uint16(to))
}

// From returns the source square.
func (m Move) From() Square {
	return Square(m >> 7 & 0x7F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & 0x7F)
}

// IsNull returns true for the zero move.
func (m Move) IsNull() bool {
	return m == 0
}

// Flip mirrors the ranks of both endpoints.
func (m Move) Flip() Move {
	return NewMove(m.From().Flip(), m.To().Flip())
}

// String returns the move in coordinate notation (e.g., "h2e2").
func (m Move) String() string {
	return m.From().String() + m.To().String()
}

// MoveList is a list of moves.
type MoveList []Move
