package render

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/kapu/chess-melee-go/internal/melee"
)

func testBoard(t *testing.T) *melee.Board {
	t.Helper()
	b, err := melee.NewBoard([]melee.Piece{
		{Kind: melee.Bishop, Color: melee.White, Square: "b4"},
		{Kind: melee.Queen, Color: melee.Black, Square: "d7"},
		{Kind: melee.King, Color: melee.Black, Square: "f6"},
	})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestRenderPNGDimensions(t *testing.T) {
	data, err := RenderPNG(context.Background(), testBoard(t), Options{Title: "reference-melee"})
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != TotalWidth || bounds.Dy() != TotalHeight {
		t.Fatalf("image %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), TotalWidth, TotalHeight)
	}
}

func TestRenderPNGNilBoard(t *testing.T) {
	if _, err := RenderPNG(context.Background(), nil, Options{}); err == nil {
		t.Fatal("RenderPNG accepted nil board")
	}
}

func TestRenderPNGCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderPNG(ctx, testBoard(t), Options{}); err == nil {
		t.Fatal("RenderPNG ignored cancelled context")
	}
}

func TestDiscGlyphCaches(t *testing.T) {
	a, err := discGlyph(melee.White, 64)
	if err != nil {
		t.Fatalf("discGlyph: %v", err)
	}
	b, err := discGlyph(melee.White, 64)
	if err != nil {
		t.Fatalf("discGlyph: %v", err)
	}
	if a != b {
		t.Fatal("glyph cache miss on identical key")
	}
}
