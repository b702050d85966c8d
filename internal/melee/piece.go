package melee

// Piece is a single man on the board. Kind and Color never change; Square is
// rewritten exactly once per capture in which the piece is the attacker.
type Piece struct {
	Kind   Kind
	Color  Color
	Square string
}

// Clone returns an independent copy.
func (p *Piece) Clone() *Piece {
	cp := *p
	return &cp
}

// Capture pairs an attacker with its target. Both fields are value snapshots
// of the pieces at generation time, so a Capture stays meaningful after the
// board it came from has been mutated or discarded.
type Capture struct {
	Attacker Piece
	Target   Piece
}

// Captures generates every legal capture available to p on b, in move-table
// order and, within a slide direction, in increasing step order.
func (p *Piece) Captures(b *Board) []Capture {
	var out []Capture
	for _, mv := range movesFor(p.Kind, p.Color) {
		switch mv.Mode {
		case Jump:
			sq, ok := offsetSquare(p.Square, mv, 1)
			if !ok {
				continue
			}
			if t := b.PieceAt(sq); t != nil && t.Color != p.Color {
				out = append(out, Capture{Attacker: *p, Target: *t})
			}
		case Slide:
			for steps := 1; steps < boardSize; steps++ {
				sq, ok := offsetSquare(p.Square, mv, steps)
				if !ok {
					break
				}
				t := b.PieceAt(sq)
				if t == nil {
					continue
				}
				// First occupied square ends the ray either way.
				if t.Color != p.Color {
					out = append(out, Capture{Attacker: *p, Target: *t})
				}
				break
			}
		}
	}
	return out
}
