package chess

// Attackers returns every piece of colour by that attacks sq, or nil when
// the square is not attacked. En passant is not considered.
func (b *Board) Attackers(sq Coord, by Colour) []*Piece {
	var attackers []*Piece

	for i, steps := range b.Crawl(sq, Orthogonals) {
		p := b.Get(sq.Offset(Orthogonals[i].Scale(steps)))
		if p.IsSentinel() || p.Colour != by {
			continue
		}
		if p.Kind == Rook || p.Kind == Queen || (p.Kind == King && steps == 1) {
			attackers = append(attackers, p)
		}
	}

	for i, steps := range b.Crawl(sq, Diagonals) {
		d := Diagonals[i]
		p := b.Get(sq.Offset(d.Scale(steps)))
		if p.IsSentinel() || p.Colour != by {
			continue
		}
		switch p.Kind {
		case Bishop, Queen:
			attackers = append(attackers, p)
		case King:
			if steps == 1 {
				attackers = append(attackers, p)
			}
		case Pawn:
			// Looking from the target, the pawn sits behind its own
			// forward direction.
			if steps == 1 && d.Rank == -by.Forward() {
				attackers = append(attackers, p)
			}
		}
	}

	for _, jump := range KnightJumps {
		p := b.Get(sq.Offset(jump))
		if p != nil && !p.IsSentinel() && p.Colour == by && p.Kind == Knight {
			attackers = append(attackers, p)
		}
	}

	return attackers
}

// IsAttacked reports whether any piece of colour by attacks sq.
func (b *Board) IsAttacked(sq Coord, by Colour) bool {
	return len(b.Attackers(sq, by)) > 0
}
