package melee

import "fmt"

// Board holds the pieces still standing. Piece order is insertion order; it
// determines enumeration order during the search but carries no meaning.
// Invariant: no two pieces share a square.
type Board struct {
	pieces []*Piece
}

// NewBoard builds a board from an initial placement, validating kinds,
// colors, square labels and square uniqueness.
func NewBoard(placements []Piece) (*Board, error) {
	b := &Board{pieces: make([]*Piece, 0, len(placements))}
	seen := make(map[string]bool, len(placements))
	for _, pl := range placements {
		if !KnownKind(pl.Kind) {
			return nil, fmt.Errorf("unknown piece kind %q", pl.Kind)
		}
		if !KnownColor(pl.Color) {
			return nil, fmt.Errorf("unknown color %q", pl.Color)
		}
		if _, _, ok := ParseSquare(pl.Square); !ok {
			return nil, fmt.Errorf("bad square %q", pl.Square)
		}
		if seen[pl.Square] {
			return nil, fmt.Errorf("square %s occupied twice", pl.Square)
		}
		seen[pl.Square] = true
		b.pieces = append(b.pieces, pl.Clone())
	}
	return b, nil
}

// Len returns the number of pieces standing.
func (b *Board) Len() int { return len(b.pieces) }

// Pieces returns the live piece list in enumeration order.
func (b *Board) Pieces() []*Piece { return b.pieces }

// PieceAt returns the piece occupying square, or nil. If the uniqueness
// invariant were ever violated the first match would win; correct capture
// application never lets that happen.
func (b *Board) PieceAt(square string) *Piece {
	for _, p := range b.pieces {
		if p.Square == square {
			return p
		}
	}
	return nil
}

// Clone returns a board whose pieces are element-wise copies; the two boards
// share no mutable state afterwards.
func (b *Board) Clone() *Board {
	cp := &Board{pieces: make([]*Piece, len(b.pieces))}
	for i, p := range b.pieces {
		cp.pieces[i] = p.Clone()
	}
	return cp
}

// Apply executes a capture on this board: the piece on the target square is
// removed and the attacker moves from its origin square onto it. Returns true
// iff the piece count dropped by exactly one. A false return means the capture
// was derived from a different board state; the caller abandons that branch.
func (b *Board) Apply(c Capture) bool {
	before := len(b.pieces)
	attacker := b.PieceAt(c.Attacker.Square)
	if attacker == nil || attacker.Color != c.Attacker.Color || attacker.Kind != c.Attacker.Kind {
		return false
	}
	idx := -1
	for i, p := range b.pieces {
		if p.Square == c.Target.Square {
			idx = i
			break
		}
	}
	if idx < 0 || b.pieces[idx] == attacker {
		return false
	}
	b.pieces = append(b.pieces[:idx], b.pieces[idx+1:]...)
	attacker.Square = c.Target.Square
	return len(b.pieces) == before-1
}
