package board

import (
	"math/bits"
	"strings"
)

// BitBoard represents a 90-bit board as two 64-bit words. Bit i of the low
// word is square i for i < 64; bit j of the high word is square 64+j.
type BitBoard struct {
	lo, hi uint64
}

// Geometry masks. Initialized before any init function runs.
var (
	// FileMask[f] contains every square of file f (0 = file a).
	FileMask = fileMasks()
	// RankMask[r] contains every square of rank r.
	RankMask = rankMasks()
	// Palace covers both three-by-three palaces (files d-f, ranks 0-2 and 7-9).
	Palace = palaceMask()
	// Half splits the board at the river: Half[0] is ranks 0-4 (our side),
	// Half[1] is ranks 5-9.
	Half = halfMasks()
	// BishopZone holds the seven squares a bishop may occupy on each side.
	BishopZone = bishopZone()
	// PawnZone[0] holds the legal squares for our pawns, PawnZone[1] for
	// theirs: the far half plus the five pawn files on the two ranks before
	// the river.
	PawnZone = pawnZones()
)

func fileMasks() [9]BitBoard {
	var m [9]BitBoard
	for f := 0; f < 9; f++ {
		for r := 0; r < 10; r++ {
			m[f] = m[f].Set(NewSquare(f, r))
		}
	}
	return m
}

func rankMasks() [10]BitBoard {
	var m [10]BitBoard
	for r := 0; r < 10; r++ {
		for f := 0; f < 9; f++ {
			m[r] = m[r].Set(NewSquare(f, r))
		}
	}
	return m
}

func palaceMask() BitBoard {
	var m BitBoard
	for _, r := range []int{0, 1, 2, 7, 8, 9} {
		for f := 3; f <= 5; f++ {
			m = m.Set(NewSquare(f, r))
		}
	}
	return m
}

func halfMasks() [2]BitBoard {
	var m [2]BitBoard
	for r := 0; r < 10; r++ {
		m[r/5] = m[r/5].Or(RankMask[r])
	}
	return m
}

func bishopZone() BitBoard {
	var m BitBoard
	for _, sq := range []Square{C0, G0, A2, E2, I2, C4, G4, C5, G5, A7, E7, I7, C9, G9} {
		m = m.Set(sq)
	}
	return m
}

func pawnZones() [2]BitBoard {
	pawnFiles := FileMask[0].Or(FileMask[2]).Or(FileMask[4]).Or(FileMask[6]).Or(FileMask[8])
	ours := Half[1].Or(RankMask[3].Or(RankMask[4]).And(pawnFiles))
	theirs := Half[0].Or(RankMask[5].Or(RankMask[6]).And(pawnFiles))
	return [2]BitBoard{ours, theirs}
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) BitBoard {
	if sq < 64 {
		return BitBoard{lo: 1 << sq}
	}
	return BitBoard{hi: 1 << (sq - 64)}
}

// Set sets the bit at the given square.
func (b BitBoard) Set(sq Square) BitBoard {
	return b.Or(SquareBB(sq))
}

// Clear clears the bit at the given square.
func (b BitBoard) Clear(sq Square) BitBoard {
	return b.AndNot(SquareBB(sq))
}

// SetIf sets the bit at the given square when cond holds.
func (b BitBoard) SetIf(sq Square, cond bool) BitBoard {
	if cond {
		return b.Set(sq)
	}
	return b
}

// IsSet returns true if the bit at the given square is set.
func (b BitBoard) IsSet(sq Square) bool {
	return b.And(SquareBB(sq)) != BitBoard{}
}

// Or returns the union of two bitboards.
func (b BitBoard) Or(o BitBoard) BitBoard {
	return BitBoard{b.lo | o.lo, b.hi | o.hi}
}

// And returns the intersection of two bitboards.
func (b BitBoard) And(o BitBoard) BitBoard {
	return BitBoard{b.lo & o.lo, b.hi & o.hi}
}

// AndNot returns the squares of b that are not in o.
func (b BitBoard) AndNot(o BitBoard) BitBoard {
	return BitBoard{b.lo &^ o.lo, b.hi &^ o.hi}
}

// Intersects returns true if the two bitboards share any square.
func (b BitBoard) Intersects(o BitBoard) bool {
	return b.And(o) != BitBoard{}
}

// Empty returns true if no bits are set.
func (b BitBoard) Empty() bool {
	return b == BitBoard{}
}

// PopCount returns the number of set bits (population count).
func (b BitBoard) PopCount() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// LSB returns the least significant set square.
func (b BitBoard) LSB() Square {
	if b.lo != 0 {
		return Square(bits.TrailingZeros64(b.lo))
	}
	if b.hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.hi))
	}
	return NoSquare
}

// PopLSB removes and returns the least significant set square.
func (b *BitBoard) PopLSB() Square {
	sq := b.LSB()
	if sq != NoSquare {
		*b = b.Clear(sq)
	}
	return sq
}

// Shl shifts the 128-bit value left by n bits.
func (b BitBoard) Shl(n uint) BitBoard {
	switch {
	case n == 0:
		return b
	case n >= 128:
		return BitBoard{}
	case n >= 64:
		return BitBoard{0, b.lo << (n - 64)}
	default:
		return BitBoard{b.lo << n, b.hi<<n | b.lo>>(64-n)}
	}
}

// Shr shifts the 128-bit value right by n bits.
func (b BitBoard) Shr(n uint) BitBoard {
	switch {
	case n == 0:
		return b
	case n >= 128:
		return BitBoard{}
	case n >= 64:
		return BitBoard{b.hi >> (n - 64), 0}
	default:
		return BitBoard{b.lo>>n | b.hi<<(64-n), b.hi >> n}
	}
}

// Sub returns the wrapping 128-bit difference b-o. Together with And it
// drives the subset enumeration used when building the attack tables.
func (b BitBoard) Sub(o BitBoard) BitBoard {
	lo, borrow := bits.Sub64(b.lo, o.lo, 0)
	hi, _ := bits.Sub64(b.hi, o.hi, borrow)
	return BitBoard{lo, hi}
}

// Mul returns the low 128 bits of the product b*o.
func (b BitBoard) Mul(o BitBoard) BitBoard {
	hi, lo := bits.Mul64(b.lo, o.lo)
	hi += b.lo*o.hi + b.hi*o.lo
	return BitBoard{lo, hi}
}

// Mirror returns the bitboard with ranks flipped: what was on rank 0
// appears on rank 9 and so on, files unchanged. Implemented as a butterfly
// network over the 45/27/9 bit offsets.
func (b BitBoard) Mirror() BitBoard {
	seq1 := BitBoard{0x00001FFFFFFFFFFF, 0}
	seq2 := BitBoard{0x8000000007FC0000, 0xFF}
	seq3 := BitBoard{0x7FFFE0000003FFFF, 0}
	seq4 := BitBoard{0x003FE00FF80001FF, 0x1FF00}

	b = b.And(seq1).Shl(45).Or(b.Shr(45).And(seq1))
	fixed := b.And(seq2)
	b = b.And(seq3).Shl(27).Or(b.Shr(27).And(seq3))
	b = b.And(seq4).Shl(9).Or(b.Shr(9).And(seq4))
	return b.Or(fixed)
}

// Squares returns a slice of all set squares in ascending order.
func (b BitBoard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for !b.Empty() {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a visual representation of the bitboard.
func (b BitBoard) String() string {
	var s strings.Builder
	for rank := 9; rank >= 0; rank-- {
		s.WriteByte(byte('0' + rank))
		s.WriteByte(' ')
		for file := 0; file < 9; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				s.WriteString("1 ")
			} else {
				s.WriteString(". ")
			}
		}
		s.WriteByte('\n')
	}
	s.WriteString("  a b c d e f g h i\n")
	return s.String()
}
