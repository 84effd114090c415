package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartposFEN is the standard xiangqi starting position.
const StartposFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

var startposBoard = func() Board {
	var b Board
	if _, _, err := b.SetFromFEN(StartposFEN); err != nil {
		panic(err)
	}
	return b
}()

// StartposBoard returns the starting position.
func StartposBoard() Board { return startposBoard }

// SetFromFEN sets the position from a FEN string and returns the
// no-progress ply counter and the full move number. Partial FENs are
// accepted: parsing may stop after the board or any later field, leaving
// the remaining values at their defaults (white to move, counters 0 and 1).
func (b *Board) SetFromFEN(fen string) (rule50 int, moves int, err error) {
	b.Clear()
	rule50, moves = 0, 1
	pos := 0

	complain := func(msg string) error {
		return fmt.Errorf("bad fen string (%s): %q", msg, fen)
	}
	// skipWhitespace advances past spaces. When where is set, at least one
	// space must separate the previous field from the next. Returns true
	// when the string is exhausted.
	skipWhitespace := func(where string) (bool, error) {
		if where != "" && pos < len(fen) && fen[pos] != ' ' {
			return false, complain("space expected " + where)
		}
		for pos < len(fen) && fen[pos] == ' ' {
			pos++
		}
		return pos == len(fen), nil
	}

	if done, _ := skipWhitespace(""); done {
		return rule50, moves, nil
	}

	// Board placement, rank 9 down to rank 0.
	rank, file := 9, 0
	for ; pos < len(fen); pos++ {
		c := fen[pos]
		if c == ' ' {
			break
		}
		if c == '/' {
			if rank == 0 {
				return 0, 0, complain("too many ranks")
			}
			rank--
			file = 0
			continue
		}
		if c >= '0' && c <= '9' {
			file += int(c - '0')
			if file > 9 {
				return 0, 0, complain("too many files")
			}
			continue
		}
		piece, ok := ParsePieceType(c)
		if !ok {
			return 0, 0, complain("invalid character as piece")
		}
		if file > 8 {
			return 0, 0, complain("piece out of board")
		}
		sq := NewSquare(file, rank)
		theirs := c >= 'a' && c <= 'z'
		switch {
		case (piece == Advisor || piece == King) && !Palace.IsSet(sq):
			name := "advisor"
			if piece == King {
				name = "king"
			}
			return 0, 0, complain(name + " not in palace")
		case piece == Pawn && !PawnZone[boolToInt(theirs)].IsSet(sq):
			return 0, 0, complain("pawn in wrong place")
		case piece == Bishop && !BishopZone.IsSet(sq):
			return 0, 0, complain("bishop in wrong place")
		}
		b.putPiece(sq, piece, theirs)
		file++
	}
	if done, err := skipWhitespace("after the board"); err != nil {
		return 0, 0, err
	} else if done {
		return rule50, moves, nil
	}

	// Assign piece identities in square order, per side.
	var our, their uint8
	for all := b.ours.Or(b.theirs); !all.Empty(); {
		sq := all.PopLSB()
		if b.ours.IsSet(sq) {
			b.idBoard[sq] = our
			our++
		} else {
			b.idBoard[sq] = their
			their++
		}
	}

	// Side to move.
	switch side := fen[pos] | 0x20; side {
	case 'b':
		b.Mirror()
	case 'w':
	default:
		return 0, 0, complain("invalid side to move")
	}
	pos++
	if done, err := skipWhitespace("after side to move"); err != nil {
		return 0, 0, err
	} else if done {
		return rule50, moves, nil
	}

	// Castling and en passant fields exist only for FEN compatibility.
	if fen[pos] == '-' {
		pos++
	}
	if done, err := skipWhitespace("after castling"); err != nil {
		return 0, 0, err
	} else if done {
		return rule50, moves, nil
	}
	if fen[pos] == '-' {
		pos++
	}
	if done, err := skipWhitespace("after en passant"); err != nil {
		return 0, 0, err
	} else if done {
		return rule50, moves, nil
	}

	parseInt := func(into *int, errMsg string) error {
		end := strings.IndexByte(fen[pos:], ' ')
		if end < 0 {
			end = len(fen) - pos
		}
		num := fen[pos : pos+end]
		v, err := strconv.Atoi(num)
		if err != nil {
			return complain(errMsg)
		}
		*into = v
		pos += len(num)
		return nil
	}

	// No-progress halfmove clock.
	if err := parseInt(&rule50, "bad rule 60 halfmoves"); err != nil {
		return 0, 0, err
	}
	if done, err := skipWhitespace("after rule-60 clock"); err != nil {
		return 0, 0, err
	} else if done {
		return rule50, moves, nil
	}

	// Full move number.
	if err := parseInt(&moves, "bad total moves"); err != nil {
		return 0, 0, err
	}
	if done, err := skipWhitespace("after total moves"); err != nil {
		return 0, 0, err
	} else if !done {
		return 0, 0, complain("extra characters")
	}
	return rule50, moves, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func pieceCharAt(b *Board, sq Square) byte {
	if !b.ours.IsSet(sq) && !b.theirs.IsSet(sq) {
		return 0
	}
	var c byte
	switch {
	case b.rooks.IsSet(sq):
		c = 'R'
	case b.advisors.IsSet(sq):
		c = 'A'
	case b.cannons.IsSet(sq):
		c = 'C'
	case b.pawns.IsSet(sq):
		c = 'P'
	case b.knights.IsSet(sq):
		c = 'N'
	case b.bishops.IsSet(sq):
		c = 'B'
	case b.Kings().IsSet(sq):
		c = 'K'
	}
	if b.theirs.IsSet(sq) {
		c += 'a' - 'A' // lowercase for black
	}
	return c
}

// BoardToFEN serializes the placement and side-to-move fields.
func BoardToFEN(in Board) string {
	board := in
	blackToMove := board.flipped
	if blackToMove {
		board.Mirror()
	}
	var sb strings.Builder
	for rank := 9; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 9; file++ {
			piece := pieceCharAt(&board, NewSquare(file, rank))
			if piece == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if blackToMove {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	return sb.String()
}

// ParseMove parses a move in coordinate notation. The input is in true
// orientation (e.g. "e6e5" for a black pawn push); the returned move is
// from the side to move's perspective.
func (b *Board) ParseMove(moveStr string) (Move, error) {
	complain := func(reason string) error {
		return fmt.Errorf("invalid move (%s): %q", reason, moveStr)
	}
	if len(moveStr) != 4 {
		return 0, complain("wrong move size")
	}
	from, err1 := ParseSquare(moveStr[:2])
	to, err2 := ParseSquare(moveStr[2:])
	if err1 != nil || err2 != nil {
		return 0, complain("bad square")
	}
	if b.flipped {
		from, to = from.Flip(), to.Flip()
	}
	if !b.ours.IsSet(from) {
		return 0, complain("no piece to move")
	}
	return NewMove(from, to), nil
}
