package melee

// Color identifies a side in the melee.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Kind identifies a piece type.
type Kind string

const (
	Bishop Kind = "bishop"
	King   Kind = "king"
	Knight Kind = "knight"
	Pawn   Kind = "pawn"
	Queen  Kind = "queen"
	Rook   Kind = "rook"
)

// Notation returns the single-letter board notation for the kind.
func (k Kind) Notation() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "?"
}

// MoveMode distinguishes single-step offsets from ray moves.
type MoveMode string

const (
	// Jump is a single fixed-offset move, legal only onto an enemy square.
	Jump MoveMode = "jump"
	// Slide is a ray scanned step by step until blocked by any piece or the edge.
	Slide MoveMode = "slide"
)

// Move is one direction of a piece's move table.
type Move struct {
	DX   int
	DY   int
	Mode MoveMode
}

func jump(dx, dy int) Move  { return Move{DX: dx, DY: dy, Mode: Jump} }
func slide(dx, dy int) Move { return Move{DX: dx, DY: dy, Mode: Slide} }

type tableKey struct {
	kind  Kind
	color Color
}

// moveTables maps (kind, color) to its direction list. Populated once; the
// color only matters for pawns, whose forward direction depends on the side.
var moveTables = map[tableKey][]Move{}

func init() {
	diagonal := []Move{slide(1, 1), slide(1, -1), slide(-1, 1), slide(-1, -1)}
	orthogonal := []Move{slide(1, 0), slide(-1, 0), slide(0, 1), slide(0, -1)}
	royal := []Move{
		jump(1, 1), jump(1, 0), jump(1, -1), jump(0, 1),
		jump(0, -1), jump(-1, 1), jump(-1, 0), jump(-1, -1),
	}
	knightly := []Move{
		jump(1, 2), jump(2, 1), jump(2, -1), jump(1, -2),
		jump(-1, -2), jump(-2, -1), jump(-2, 1), jump(-1, 2),
	}

	for _, c := range []Color{White, Black} {
		moveTables[tableKey{Bishop, c}] = diagonal
		moveTables[tableKey{Rook, c}] = orthogonal
		moveTables[tableKey{Queen, c}] = append(append([]Move{}, diagonal...), orthogonal...)
		moveTables[tableKey{King, c}] = royal
		moveTables[tableKey{Knight, c}] = knightly
	}
	moveTables[tableKey{Pawn, White}] = []Move{jump(-1, 1), jump(1, 1)}
	moveTables[tableKey{Pawn, Black}] = []Move{jump(-1, -1), jump(1, -1)}
}

func movesFor(kind Kind, color Color) []Move {
	return moveTables[tableKey{kind: kind, color: color}]
}

// KnownKind reports whether k names one of the six piece kinds.
func KnownKind(k Kind) bool {
	switch k {
	case Bishop, King, Knight, Pawn, Queen, Rook:
		return true
	}
	return false
}

// KnownColor reports whether c names one of the two sides.
func KnownColor(c Color) bool {
	return c == White || c == Black
}
