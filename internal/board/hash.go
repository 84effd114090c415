package board

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of the board structure: piece bitboards, king
// squares and orientation. The value is not stable across releases and
// must never be persisted.
func (b *Board) Hash() uint64 {
	var buf [8*16 + 3]byte
	i := 0
	put := func(bb BitBoard) {
		binary.LittleEndian.PutUint64(buf[i:], bb.lo)
		binary.LittleEndian.PutUint64(buf[i+8:], bb.hi)
		i += 16
	}
	put(b.ours)
	put(b.theirs)
	put(b.rooks)
	put(b.advisors)
	put(b.cannons)
	put(b.pawns)
	put(b.knights)
	put(b.bishops)
	buf[i] = byte(b.ourKing)
	buf[i+1] = byte(b.theirKing)
	if b.flipped {
		buf[i+2] = 1
	}
	return xxhash.Sum64(buf[:])
}

// hashCat folds x into the running hash h.
func hashCat(h, x uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], h)
	binary.LittleEndian.PutUint64(buf[8:], x)
	return xxhash.Sum64(buf[:])
}
