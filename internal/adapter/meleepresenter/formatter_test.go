package meleepresenter

import (
	"strings"
	"testing"
	"time"

	"github.com/kapu/chess-melee-go/internal/domain"
	"github.com/kapu/chess-melee-go/internal/melee"
)

func sampleSequence() melee.Sequence {
	return melee.Sequence{
		{
			Attacker: melee.Piece{Kind: melee.Bishop, Color: melee.White, Square: "b4"},
			Target:   melee.Piece{Kind: melee.Pawn, Color: melee.Black, Square: "e7"},
		},
		{
			Attacker: melee.Piece{Kind: melee.King, Color: melee.Black, Square: "f6"},
			Target:   melee.Piece{Kind: melee.Bishop, Color: melee.White, Square: "e7"},
		},
	}
}

func TestCaptureLine(t *testing.T) {
	f := NewFormatter()
	got := f.CaptureLine(sampleSequence()[0])
	want := "BishopWhite b4 -> PawnBlack e7"
	if got != want {
		t.Fatalf("CaptureLine = %q, want %q", got, want)
	}
}

func TestSolutionBlock(t *testing.T) {
	f := NewFormatter()
	got := f.Solution(3, sampleSequence())
	if !strings.HasPrefix(got, "Solution 3 (2 captures):") {
		t.Fatalf("bad header: %q", got)
	}
	if !strings.Contains(got, "KingBlack f6 -> BishopWhite e7") {
		t.Fatalf("missing second capture: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatal("solution block has trailing newline")
	}
}

func TestSummary(t *testing.T) {
	f := NewFormatter()
	run := &domain.SolveRun{
		Scenario:  "reference-melee",
		Pieces:    12,
		Solutions: 64,
		DeadEnds:  1984,
		Nodes:     60000,
		Exhausted: true,
		Duration:  1503 * time.Millisecond,
	}
	got := f.Summary(run)
	for _, want := range []string{
		"Scenario: reference-melee (12 pieces)",
		"Solutions found: 64",
		"Dead ends: 1984",
		"Nodes visited: 60000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "stopped before exhaustion") {
		t.Error("exhausted run reported as stopped")
	}
}

func TestToSolutionDTO(t *testing.T) {
	dto := ToSolutionDTO(sampleSequence())
	if len(dto.Moves) != 2 {
		t.Fatalf("dto has %d moves, want 2", len(dto.Moves))
	}
	if dto.Moves[0].Attacker != "BishopWhite" || dto.Moves[0].To != "e7" {
		t.Fatalf("bad first move: %+v", dto.Moves[0])
	}
}

func TestPresenterSinks(t *testing.T) {
	var lines []string
	var images int
	p := NewPresenter(
		func(line string) error { lines = append(lines, line); return nil },
		func(png []byte) error { images++; return nil },
	)
	if err := p.Solution(1, sampleSequence()); err != nil {
		t.Fatalf("Solution: %v", err)
	}
	if err := p.Summary(&domain.SolveRun{Scenario: "s", Pieces: 2}); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if err := p.BoardImage([]byte{1, 2, 3}); err != nil {
		t.Fatalf("BoardImage: %v", err)
	}
	if len(lines) != 2 || images != 1 {
		t.Fatalf("lines=%d images=%d, want 2/1", len(lines), images)
	}
}
