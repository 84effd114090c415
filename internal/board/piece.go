package board

// PieceType enumerates the xiangqi piece kinds. The numeric order matches
// the "racpnbk" FEN alphabet.
type PieceType uint8

const (
	Rook PieceType = iota
	Advisor
	Cannon
	Pawn
	Knight
	Bishop
	King
	pieceTypeNB
)

// Pseudo piece types used for reverse attack lookups: knightTo answers
// "which knights attack this square", the pawnTo pair does the same for
// pawns of either side.
const (
	knightTo     PieceType = 7
	pawnToOurs   PieceType = 8
	pawnToTheirs PieceType = 9
)

const pieceChars = "racpnbk"

// ParsePieceType converts a FEN piece letter (either case) to a PieceType.
// The second return value is false for unknown letters.
func ParsePieceType(c byte) (PieceType, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	for i := 0; i < len(pieceChars); i++ {
		if pieceChars[i] == c {
			return PieceType(i), true
		}
	}
	return pieceTypeNB, false
}

// IsValid returns true for the seven real piece types.
func (pt PieceType) IsValid() bool {
	return pt < pieceTypeNB
}

// Char returns the FEN letter for the piece, uppercase for white.
func (pt PieceType) Char(uppercase bool) byte {
	c := pieceChars[pt]
	if uppercase {
		c -= 'a' - 'A'
	}
	return c
}

// String returns the lowercase FEN letter for the piece.
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "?"
	}
	return string(pt.Char(false))
}
