package board

import (
	"strconv"
	"strings"
)

// GameResult is the outcome of a game.
type GameResult int8

const (
	Undecided GameResult = iota
	WhiteWon
	Draw
	BlackWon
)

// Negate swaps the winning side.
func (r GameResult) Negate() GameResult {
	switch r {
	case WhiteWon:
		return BlackWon
	case BlackWon:
		return WhiteWon
	default:
		return r
	}
}

// String returns the result in PGN-style notation.
func (r GameResult) String() string {
	switch r {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// checkStreakLimit is how many consecutive checking plies a side may
// accumulate before further checks stop advancing the no-progress clock.
const checkStreakLimit = 10

// noProgressPlyLimit is the no-progress ply count at which the game is
// drawn (the 60-move rule).
const noProgressPlyLimit = 120

// Position is a board together with the bookkeeping the repetition and
// no-progress rules need. The board is always from the side to move's
// perspective.
type Position struct {
	board Board

	// Plies without progress. Unlike the western fifty-move counter it
	// also freezes during long check streaks, see NewPosition.
	rule50Ply int
	// Number of half-moves since the beginning of the game.
	gamePly int

	// How many times the same position appeared earlier in the game, and
	// the cycle length of the most recent repetition. Set by the history.
	repetitions int
	cycleLength int

	// Consecutive plies on which each side delivered check, used to keep
	// perpetual checkers from running down the no-progress clock.
	usCheck   int
	themCheck int
}

// NewPosition creates the position reached from parent by move m.
func NewPosition(parent Position, m Move) Position {
	pos := Position{
		board:     parent.board,
		rule50Ply: parent.rule50Ply,
		gamePly:   parent.gamePly + 1,
		usCheck:   parent.themCheck,
		themCheck: parent.usCheck,
	}
	zeroing := pos.board.ApplyMove(m)
	pos.board.Mirror()

	// A checking side may stall the clock for at most checkStreakLimit
	// plies; past that its checks no longer freeze the counter, unless
	// the defender is locked in a mutual check sequence.
	underCheck := pos.board.IsUnderCheck()
	if underCheck {
		pos.themCheck++
	}
	if !underCheck || pos.themCheck <= checkStreakLimit {
		if pos.usCheck > checkStreakLimit && parent.board.IsUnderCheck() {
			pos.usCheck++
		} else {
			pos.rule50Ply++
		}
	}
	if zeroing {
		pos.rule50Ply = 0
		pos.usCheck = 0
		pos.themCheck = 0
	}
	return pos
}

// NewPositionFromBoard creates a root position from a board and clocks.
func NewPositionFromBoard(board Board, rule50Ply, gamePly int) Position {
	return Position{board: board, rule50Ply: rule50Ply, gamePly: gamePly}
}

// PositionFromFEN parses a full FEN into a root position.
func PositionFromFEN(fen string) (Position, error) {
	var board Board
	rule50, moves, err := board.SetFromFEN(fen)
	if err != nil {
		return Position{}, err
	}
	gamePly := 2*moves - 2
	if board.flipped {
		gamePly = 2*moves - 1
	}
	return NewPositionFromBoard(board, rule50, gamePly), nil
}

// Board returns the position's board.
func (p *Position) Board() *Board { return &p.board }

// Rule50Ply returns the no-progress ply counter.
func (p *Position) Rule50Ply() int { return p.rule50Ply }

// GamePly returns the number of half-moves played.
func (p *Position) GamePly() int { return p.gamePly }

// Repetitions returns how many times this position occurred before.
func (p *Position) Repetitions() int { return p.repetitions }

// CycleLength returns the ply distance of the most recent repetition.
func (p *Position) CycleLength() int { return p.cycleLength }

// IsBlackToMove reports whether black is to move.
func (p *Position) IsBlackToMove() bool { return p.board.flipped }

func (p *Position) setRepetitions(repetitions, cycleLength int) {
	p.repetitions = repetitions
	p.cycleLength = cycleLength
}

// Hash returns a hash of the position, including its repetition count.
func (p *Position) Hash() uint64 {
	return hashCat(p.board.Hash(), uint64(p.repetitions))
}

// PositionToFEN serializes a position as a full six-field FEN.
func PositionToFEN(p Position) string {
	var sb strings.Builder
	sb.WriteString(BoardToFEN(p.board))
	sb.WriteString(" - - ")
	sb.WriteString(strconv.Itoa(p.rule50Ply))
	sb.WriteByte(' ')
	offset := 2
	if p.IsBlackToMove() {
		offset = 1
	}
	sb.WriteString(strconv.Itoa((p.gamePly + offset) / 2))
	return sb.String()
}

// PositionHistory is the sequence of positions of one game. It maintains
// the repetition counters the game-result rules depend on.
type PositionHistory struct {
	positions []Position
}

// Reset starts a new history from a root board and clocks.
func (h *PositionHistory) Reset(board Board, rule50Ply, gamePly int) {
	h.positions = h.positions[:0]
	h.positions = append(h.positions, NewPositionFromBoard(board, rule50Ply, gamePly))
}

// ResetToPosition starts a new history from an existing position.
func (h *PositionHistory) ResetToPosition(pos Position) {
	h.positions = h.positions[:0]
	h.positions = append(h.positions, pos)
}

// Len returns the number of positions in the history.
func (h *PositionHistory) Len() int { return len(h.positions) }

// Last returns the current position.
func (h *PositionHistory) Last() *Position {
	return &h.positions[len(h.positions)-1]
}

// PositionAt returns the position at ply index idx.
func (h *PositionHistory) PositionAt(idx int) *Position {
	return &h.positions[idx]
}

// Append plays a move, pushing the resulting position and updating its
// repetition bookkeeping.
func (h *PositionHistory) Append(m Move) {
	h.positions = append(h.positions, NewPosition(*h.Last(), m))
	repetitions, cycleLength := h.computeLastMoveRepetitions()
	h.Last().setRepetitions(repetitions, cycleLength)
}

// Pop removes the most recent position.
func (h *PositionHistory) Pop() {
	h.positions = h.positions[:len(h.positions)-1]
}

// computeLastMoveRepetitions scans backwards through same-side positions
// for an identical board. The scan stops early once a zeroing move bounds
// the window.
func (h *PositionHistory) computeLastMoveRepetitions() (repetitions, cycleLength int) {
	last := h.Last()
	if last.rule50Ply < 4 {
		return 0, 0
	}
	for idx := len(h.positions) - 5; idx >= 0; idx -= 2 {
		pos := &h.positions[idx]
		if pos.board == last.board {
			return 1 + pos.repetitions, len(h.positions) - 1 - idx
		}
		if pos.rule50Ply < 2 {
			return 0, 0
		}
	}
	return 0, 0
}

// DidRepeatSinceLastZeroingMove reports whether any position since the
// last capture repeated an earlier one.
func (h *PositionHistory) DidRepeatSinceLastZeroingMove() bool {
	for i := len(h.positions) - 1; i >= 0; i-- {
		if h.positions[i].repetitions > 0 {
			return true
		}
		if h.positions[i].rule50Ply == 0 {
			return false
		}
	}
	return false
}

// HashLast returns a hash of the last n positions and the current
// no-progress clock, for caching evaluations that depend on recent
// history.
func (h *PositionHistory) HashLast(n int) uint64 {
	hash := uint64(n)
	for i := len(h.positions) - 1; i >= 0 && n > 0; i, n = i-1, n-1 {
		hash = hashCat(hash, h.positions[i].Hash())
	}
	return hashCat(hash, uint64(h.Last().rule50Ply))
}

// ComputeGameResult returns the game outcome at the current position, or
// Undecided if play continues. A side with no legal moves loses (both
// checkmate and stalemate). A second repetition invokes the rule judge,
// then insufficient mating material and the no-progress limit draw.
func (h *PositionHistory) ComputeGameResult() GameResult {
	last := h.Last()
	board := &last.board
	if len(board.GenerateLegalMoves()) == 0 {
		if last.IsBlackToMove() {
			return WhiteWon
		}
		return BlackWon
	}

	if last.repetitions >= 2 {
		result := h.RuleJudge()
		if last.IsBlackToMove() {
			return result
		}
		return result.Negate()
	}
	if !board.HasMatingMaterial() {
		return Draw
	}
	if last.rule50Ply >= noProgressPlyLimit {
		return Draw
	}
	return Undecided
}

// RuleJudge decides a repetition under the Asian rules, walking the
// repetition cycle backwards and accumulating, for both sides, whether
// every own move gave check and which pieces were chased on every own
// move. Perpetual check loses; one-sided perpetual chase loses; anything
// mutual or harmless is a draw. The result is from the perspective where
// black made the repetition move (callers negate for white).
//
// Must only be called when the last move actually repeated; a
// non-repetition sequence is a caller bug and panics.
func (h *PositionHistory) RuleJudge() GameResult {
	n := len(h.positions)
	last := h.Last()
	if last.rule50Ply < 4 {
		return Undecided
	}

	checkThem := last.board.IsUnderCheck()
	checkUs := h.positions[n-2].board.IsUnderCheck()
	chaseThem := last.board.ThemChased() &^ h.positions[n-2].board.UsChased()
	chaseUs := h.positions[n-2].board.ThemChased() &^ h.positions[n-3].board.UsChased()

	for idx := n - 3; idx >= 0; idx -= 2 {
		pos := &h.positions[idx]
		if pos.board.IsUnderCheck() {
			chaseThem, chaseUs = 0, 0
		} else {
			checkThem = false
		}

		if pos.board == last.board && pos.repetitions == 0 {
			switch {
			case checkThem || checkUs:
				switch {
				case !checkUs:
					return BlackWon
				case !checkThem:
					return WhiteWon
				default:
					return Draw
				}
			case chaseThem != 0 || chaseUs != 0:
				switch {
				case chaseUs == 0:
					return BlackWon
				case chaseThem == 0:
					return WhiteWon
				default:
					return Draw
				}
			default:
				return Draw
			}
		}

		if idx-1 >= 0 {
			if h.positions[idx-1].board.IsUnderCheck() {
				chaseThem, chaseUs = 0, 0
			} else {
				checkUs = false
			}
			chaseThem &= pos.board.ThemChased() &^ h.positions[idx-1].board.UsChased()
			if idx-2 >= 0 {
				chaseUs &= h.positions[idx-1].board.ThemChased() &^ h.positions[idx-2].board.UsChased()
			}
		}
	}

	panic("judging non-repetition move sequence")
}
