package scenario

import (
	"strings"
	"testing"
)

func TestDefaultScenario(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(s.Pieces) != 12 {
		t.Fatalf("default has %d pieces, want 12", len(s.Pieces))
	}
	white, black := s.CountByColor()
	if white != 6 || black != 6 {
		t.Fatalf("default split %d/%d, want 6/6", white, black)
	}
	b, err := s.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if b.Len() != 12 {
		t.Fatalf("board has %d pieces, want 12", b.Len())
	}
}

func TestParseNormalizes(t *testing.T) {
	doc := `
name: test
pieces:
  - { kind: Rook, color: WHITE, square: " A1 " }
  - { kind: king, color: black, square: h8 }
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Pieces[0].Kind != "rook" || s.Pieces[0].Color != "white" || s.Pieces[0].Square != "a1" {
		t.Fatalf("not normalized: %+v", s.Pieces[0])
	}
}

func TestParseRejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			"duplicate square",
			"pieces:\n  - {kind: rook, color: white, square: a1}\n  - {kind: king, color: black, square: a1}\n",
			"occupied twice",
		},
		{
			"unknown kind",
			"pieces:\n  - {kind: dragon, color: white, square: a1}\n  - {kind: king, color: black, square: h8}\n",
			"unknown kind",
		},
		{
			"bad square",
			"pieces:\n  - {kind: rook, color: white, square: z9}\n  - {kind: king, color: black, square: h8}\n",
			"bad square",
		},
		{
			"too few pieces",
			"pieces:\n  - {kind: rook, color: white, square: a1}\n",
			"at least 2",
		},
	}
	for _, tc := range cases {
		_, err := Parse([]byte(tc.doc))
		if err == nil {
			t.Errorf("%s: Parse accepted", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q, want it to mention %q", tc.name, err, tc.want)
		}
	}
}
