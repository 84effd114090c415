package board

// Chase detection for the Asian repetition rules. A "chase" is a non-check
// attack on an enemy piece that the opponent cannot answer by a legal
// recapture. Chases are reported as a bitmap keyed by the chased piece's
// identity, so the rule judge can tell whether the same piece was hounded
// through a whole repetition cycle.

// makeChase returns the chase bit for the piece on the given square.
func (b *Board) makeChase(to Square) uint16 {
	if b.flipped {
		to = to.Flip()
	}
	return 1 << b.idBoard[to]
}

// UsChased returns the chase bitmap for the side to move: every opposing
// piece it currently chases. Attacks on kings and on pawns that have not
// crossed the river never count. Kings and pawns may chase freely, so
// they are not considered as attackers.
func (b *Board) UsChased() uint16 {
	var chase uint16
	occupied := b.ours.Or(b.theirs)

	addChase := func(attackerType PieceType, attacker BitBoard) {
		for fromSet := attacker.And(b.ours); !fromSet.Empty(); {
			from := fromSet.PopLSB()
			attacks := Attacks(attackerType, from, occupied).And(b.theirs)

			// Exclude checks and attacks on unpromoted pawns.
			attacks = attacks.AndNot(b.Kings().Or(b.pawns.And(Half[1])))

			// An attack on a stronger piece chases it outright, as long
			// as the capture would be legal.
			var candidates BitBoard
			if attackerType == Knight || attackerType == Cannon {
				candidates = attacks.And(b.rooks)
			}
			if attackerType == Advisor || attackerType == Bishop {
				candidates = attacks.And(b.rooks.Or(b.knights).Or(b.cannons))
			}
			attacks = attacks.AndNot(candidates)
			for !candidates.Empty() {
				to := candidates.PopLSB()
				if b.IsLegalMove(NewMove(from, to)) {
					chase |= b.makeChase(to)
				}
			}

			// Everything else chases only when the victim has no legal
			// recapture after the hypothetical exchange.
			for !attacks.Empty() {
				to := attacks.PopLSB()
				m := NewMove(from, to)
				if !b.IsLegalMove(m) {
					continue
				}
				after := *b
				after.ApplyMove(m)
				trueChase := true
				for recaptures := after.recapturesTo(to); !recaptures.Empty(); {
					s := recaptures.PopLSB()
					if after.isLegalMoveFor(NewMove(s, to), false) {
						trueChase = false
						break
					}
				}
				if !trueChase {
					continue
				}

				// Mutual attacks between equal pieces cancel out, unless
				// the attacked piece is pinned and could not take back.
				if attacker.IsSet(to) {
					if (attackerType == Knight && !Attacks(Knight, to, occupied).IsSet(from)) ||
						!b.isLegalMoveFor(NewMove(to, from), false) {
						chase |= b.makeChase(to)
					}
				} else {
					chase |= b.makeChase(to)
				}
			}
		}
	}

	addChase(Rook, b.rooks)
	addChase(Advisor, b.advisors)
	addChase(Cannon, b.cannons)
	addChase(Knight, b.knights)
	addChase(Bishop, b.bishops)

	return chase
}

// ThemChased returns the chase bitmap for the side not to move.
func (b *Board) ThemChased() uint16 {
	board := *b
	board.Mirror()
	return board.UsChased()
}
