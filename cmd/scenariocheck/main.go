package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kapu/chess-melee-go/internal/melee"
	"github.com/kapu/chess-melee-go/internal/scenario"
)

// scenariocheck validates a scenario file and prints the starting position.
// Usage: scenariocheck [path]; falls back to SCENARIO_FILE, then the embedded
// reference melee.
func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		path = strings.TrimSpace(os.Getenv("SCENARIO_FILE"))
	}

	var (
		sc  *scenario.Scenario
		err error
	)
	if path != "" {
		sc, err = scenario.LoadFile(path)
	} else {
		sc, err = scenario.Default()
	}
	if err != nil {
		log.Fatalf("scenario invalid: %v", err)
	}

	board, err := sc.Board()
	if err != nil {
		log.Fatalf("scenario invalid: %v", err)
	}

	white, black := sc.CountByColor()
	fmt.Printf("scenario %q ok: %d pieces (%d white, %d black)\n\n", sc.Name, board.Len(), white, black)
	fmt.Print(asciiBoard(board))
}

func asciiBoard(b *melee.Board) string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := 1; file <= 8; file++ {
			p := b.PieceAt(melee.FormatSquare(file, rank))
			switch {
			case p == nil:
				sb.WriteString(" .")
			case p.Color == melee.White:
				sb.WriteString(" " + p.Kind.Notation())
			default:
				sb.WriteString(" " + strings.ToLower(p.Kind.Notation()))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
