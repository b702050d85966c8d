package melee

import "testing"

func TestNewBoardValidation(t *testing.T) {
	cases := []struct {
		name       string
		placements []Piece
	}{
		{"duplicate square", []Piece{{Rook, White, "a1"}, {Pawn, Black, "a1"}}},
		{"bad square", []Piece{{Rook, White, "j9"}}},
		{"unknown kind", []Piece{{Kind("dragon"), White, "a1"}}},
		{"unknown color", []Piece{{Rook, Color("green"), "a1"}}},
	}
	for _, tc := range cases {
		if _, err := NewBoard(tc.placements); err == nil {
			t.Errorf("%s: NewBoard accepted", tc.name)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	b := mustBoard(t, []Piece{
		{Rook, White, "a1"},
		{Queen, Black, "h8"},
	})
	cp := b.Clone()
	cp.PieceAt("a1").Square = "a5"
	if b.PieceAt("a1") == nil {
		t.Fatal("mutating clone moved the source piece")
	}
	if cp.PieceAt("a5") == nil || cp.PieceAt("a1") != nil {
		t.Fatal("clone did not take the mutation")
	}
}

func TestApplyCapture(t *testing.T) {
	b := mustBoard(t, []Piece{
		{Rook, White, "a1"},
		{Pawn, Black, "a4"},
		{King, Black, "h8"},
	})
	caps := b.PieceAt("a1").Captures(b)
	if len(caps) != 1 {
		t.Fatalf("captures = %d, want 1", len(caps))
	}
	before := b.Len()
	if !b.Apply(caps[0]) {
		t.Fatal("Apply failed")
	}
	if b.Len() != before-1 {
		t.Fatalf("piece count %d, want %d", b.Len(), before-1)
	}
	att := b.PieceAt("a4")
	if att == nil || att.Kind != Rook || att.Color != White {
		t.Fatalf("attacker not relocated to a4: %+v", att)
	}
	if b.PieceAt("a1") != nil {
		t.Fatal("attacker still findable on origin square")
	}
}

func TestApplyStaleCaptureFails(t *testing.T) {
	b := mustBoard(t, []Piece{
		{Rook, White, "a1"},
		{Pawn, Black, "a4"},
	})
	caps := b.PieceAt("a1").Captures(b)
	if len(caps) != 1 {
		t.Fatalf("captures = %d, want 1", len(caps))
	}
	if !b.Apply(caps[0]) {
		t.Fatal("first Apply failed")
	}
	if b.Apply(caps[0]) {
		t.Fatal("stale Apply succeeded")
	}
	if b.Len() != 1 {
		t.Fatalf("stale Apply changed the board: %d pieces", b.Len())
	}
}
