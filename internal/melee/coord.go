package melee

const boardSize = 8

// ParseSquare decodes an algebraic label ("a1".."h8") into file and rank
// coordinates, each in [1,8]. ok is false for anything else.
func ParseSquare(label string) (file, rank int, ok bool) {
	if len(label) != 2 {
		return 0, 0, false
	}
	file = int(label[0]-'a') + 1
	rank = int(label[1]-'1') + 1
	if file < 1 || file > boardSize || rank < 1 || rank > boardSize {
		return 0, 0, false
	}
	return file, rank, true
}

// FormatSquare encodes file and rank coordinates back into an algebraic label.
func FormatSquare(file, rank int) string {
	return string([]byte{byte('a' + file - 1), byte('1' + rank - 1)})
}

// offsetSquare applies a move direction scaled by steps to a square and
// returns the resulting label. ok is false when the result leaves the board;
// that is a normal outcome, not an error.
func offsetSquare(label string, mv Move, steps int) (string, bool) {
	file, rank, ok := ParseSquare(label)
	if !ok {
		return "", false
	}
	file += steps * mv.DX
	rank += steps * mv.DY
	if file < 1 || file > boardSize || rank < 1 || rank > boardSize {
		return "", false
	}
	return FormatSquare(file, rank), true
}
