package board

import "math/bits"

// We use so-called "fancy" magic bitboards: per square we keep the relevant
// occupancy mask and a 128-bit multiplier that hashes every subset of the
// mask into a dense slice of the shared attack table.

// Magic holds the magic parameters for one square.
type Magic struct {
	// Mask is the relevant occupancy mask.
	Mask BitBoard
	// Magic is the 128-bit multiplier.
	Magic BitBoard
	// Shift is 128 minus the number of mask bits.
	Shift uint8
	// PextShift is the number of mask bits in the low word, used by the
	// bit-extraction indexer.
	PextShift uint8
	// Offset of this square's slice in the attack table.
	Offset uint32
}

// Index computes the attack table index for the given occupancy.
func (m *Magic) Index(occupied BitBoard) uint32 {
	return m.Offset + uint32(occupied.And(m.Mask).Mul(m.Magic).Shr(uint(m.Shift)).lo)
}

// pextIndex computes an attack table index by extracting the mask bits of
// the occupancy directly. It enumerates the same subsets as Index but in a
// different order, so a table must be built with the indexer that reads it.
func (m *Magic) pextIndex(occupied BitBoard) uint32 {
	occ := occupied.And(m.Mask)
	return m.Offset + uint32(pext64(occ.hi, m.Mask.hi)<<m.PextShift|pext64(occ.lo, m.Mask.lo))
}

// pext64 is a software parallel bit extract.
func pext64(v, mask uint64) uint64 {
	var res uint64
	for i := 0; mask != 0; i++ {
		bit := mask & -mask
		if v&bit != 0 {
			res |= 1 << i
		}
		mask &= mask - 1
	}
	return res
}

// Magic parameters per square.
var (
	rookMagicParams     [90]Magic
	cannonMagicParams   [90]Magic
	bishopMagicParams   [90]Magic
	knightMagicParams   [90]Magic
	knightToMagicParams [90]Magic
)

// Attack tables, sized to the sum of subset counts over all squares.
var (
	rookAttacksTable     = make([]BitBoard, 0x108000)
	cannonAttacksTable   = make([]BitBoard, 0x108000)
	bishopAttacksTable   = make([]BitBoard, 0x228)
	knightAttacksTable   = make([]BitBoard, 0x380)
	knightToAttacksTable = make([]BitBoard, 0x3E0)
)

// buildAttacksTable fills params and table for one piece type by
// enumerating every occupancy subset of each square's mask. A destructive
// collision means the magic constant is wrong and is fatal.
func buildAttacksTable(pt PieceType, params *[90]Magic, magics *[90]BitBoard, table []BitBoard) {
	offset := uint32(0)
	for sq := A0; sq < NoSquare; sq++ {
		// Board edges are not relevant blockers unless the piece stands
		// on the edge itself. The knightTo masks keep the edges: the
		// blocking square of a reverse knight jump can sit there.
		edges := RankMask[0].Or(RankMask[9]).AndNot(RankMask[sq.Rank()]).
			Or(FileMask[0].Or(FileMask[8]).AndNot(FileMask[sq.File()]))

		var mask BitBoard
		switch pt {
		case Rook:
			mask = slidingAttack(Rook, sq, BitBoard{}).AndNot(edges)
		case Cannon:
			// Cannons share the rook masks (and magics).
			mask = rookMagicParams[sq].Mask
		case knightTo:
			mask = lameLeaperPath(pt, sq)
		default:
			mask = lameLeaperPath(pt, sq).AndNot(edges)
		}

		m := &params[sq]
		m.Mask = mask
		m.Magic = magics[sq]
		m.Shift = uint8(128 - mask.PopCount())
		m.PextShift = uint8(bits.OnesCount64(mask.lo))
		m.Offset = offset

		var b BitBoard
		for {
			var attacks BitBoard
			if pt == Rook || pt == Cannon {
				attacks = slidingAttack(pt, sq, b)
			} else {
				attacks = lameLeaperAttack(pt, sq, b)
			}
			idx := m.Index(b)
			if !table[idx].Empty() && table[idx] != attacks {
				panic("invalid magic number")
			}
			table[idx] = attacks
			b = b.Sub(mask).And(mask)
			if b.Empty() {
				break
			}
		}

		offset += 1 << mask.PopCount()
	}
	if int(offset) != len(table) {
		panic("attack table size mismatch")
	}
}
