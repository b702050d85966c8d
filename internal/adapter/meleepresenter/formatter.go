package meleepresenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/kapu/chess-melee-go/internal/domain"
	"github.com/kapu/chess-melee-go/internal/melee"
	"github.com/kapu/chess-melee-go/pkg/meleedto"
)

// Formatter renders solver results into the console report format.
type Formatter struct{}

func NewFormatter() *Formatter { return &Formatter{} }

// CaptureLine renders one capture, e.g. "BishopWhite b4 -> PawnBlack e7".
func (f *Formatter) CaptureLine(c melee.Capture) string {
	return fmt.Sprintf("%s %s -> %s %s",
		pieceName(c.Attacker), c.Attacker.Square,
		pieceName(c.Target), c.Target.Square,
	)
}

// Solution renders a numbered solution block, captures in chronological order.
func (f *Formatter) Solution(n int, seq melee.Sequence) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Solution %d (%d captures):\n", n, len(seq))
	for _, c := range seq {
		sb.WriteString("  ")
		sb.WriteString(f.CaptureLine(c))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Summary renders the closing report for a run.
func (f *Formatter) Summary(run *domain.SolveRun) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Scenario: %s (%d pieces)\n", run.Scenario, run.Pieces)
	fmt.Fprintf(&sb, "Solutions found: %d\n", run.Solutions)
	fmt.Fprintf(&sb, "Dead ends: %d\n", run.DeadEnds)
	fmt.Fprintf(&sb, "Nodes visited: %d\n", run.Nodes)
	if !run.Exhausted {
		sb.WriteString("Search stopped before exhaustion\n")
	}
	fmt.Fprintf(&sb, "Elapsed: %s", run.Duration.Round(time.Millisecond))
	return sb.String()
}

// ToSolutionDTO converts an engine sequence into its storable shape.
func ToSolutionDTO(seq melee.Sequence) meleedto.SolutionDTO {
	dto := meleedto.SolutionDTO{Moves: make([]meleedto.CaptureDTO, 0, len(seq))}
	for _, c := range seq {
		dto.Moves = append(dto.Moves, meleedto.CaptureDTO{
			Attacker: pieceName(c.Attacker),
			From:     c.Attacker.Square,
			Target:   pieceName(c.Target),
			To:       c.Target.Square,
		})
	}
	return dto
}

func pieceName(p melee.Piece) string {
	return title(string(p.Kind)) + title(string(p.Color))
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
