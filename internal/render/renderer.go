package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kapu/chess-melee-go/internal/melee"
)

const (
	squareSize   = 72
	boardSquares = 8
	boardPixels  = squareSize * boardSquares
	sideMargin   = 36
	topMargin    = 56
	bottomMargin = 36

	// TotalWidth and TotalHeight are the dimensions of a rendered snapshot.
	TotalWidth  = boardPixels + sideMargin*2
	TotalHeight = boardPixels + topMargin + bottomMargin
)

var (
	lightSquare         = color.RGBA{233, 207, 163, 255}
	darkSquare          = color.RGBA{187, 136, 96, 255}
	backgroundColor     = color.RGBA{28, 31, 46, 255}
	titleTextColor      = color.NRGBA{R: 236, G: 239, B: 255, A: 255}
	coordinateTextColor = color.NRGBA{R: 8, G: 214, B: 120, A: 255}
	whiteLetterColor    = color.NRGBA{R: 24, G: 26, B: 32, A: 255}
	blackLetterColor    = color.NRGBA{R: 244, G: 246, B: 250, A: 255}
)

// Options tunes a snapshot.
type Options struct {
	Title string
}

// RenderPNG renders the current position as a PNG image.
func RenderPNG(ctx context.Context, b *melee.Board, opts Options) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("board is nil")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	img := image.NewRGBA(image.Rect(0, 0, TotalWidth, TotalHeight))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, imagedraw.Src)

	origin := image.Point{X: sideMargin, Y: topMargin}
	drawSquares(img, origin)
	if err := drawPieces(img, b, origin); err != nil {
		return nil, err
	}
	drawCoordinates(img, origin)
	if opts.Title != "" {
		drawText(img, opts.Title, sideMargin, topMargin/2+4, titleTextColor)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func squareRect(file, rank int, origin image.Point) image.Rectangle {
	x := origin.X + (file-1)*squareSize
	y := origin.Y + (boardSquares-rank)*squareSize
	return image.Rect(x, y, x+squareSize, y+squareSize)
}

func drawSquares(img *image.RGBA, origin image.Point) {
	for file := 1; file <= boardSquares; file++ {
		for rank := 1; rank <= boardSquares; rank++ {
			fill := darkSquare
			if (file+rank)%2 == 1 {
				fill = lightSquare
			}
			imagedraw.Draw(img, squareRect(file, rank, origin), image.NewUniform(fill), image.Point{}, imagedraw.Src)
		}
	}
}

func drawPieces(img *image.RGBA, b *melee.Board, origin image.Point) error {
	const inset = 4
	for _, p := range b.Pieces() {
		file, rank, ok := melee.ParseSquare(p.Square)
		if !ok {
			return fmt.Errorf("piece on bad square %q", p.Square)
		}
		glyph, err := discGlyph(p.Color, squareSize-inset*2)
		if err != nil {
			return err
		}
		rect := squareRect(file, rank, origin).Inset(inset)
		imagedraw.Draw(img, rect, glyph, image.Point{}, imagedraw.Over)

		letter := whiteLetterColor
		if p.Color == melee.Black {
			letter = blackLetterColor
		}
		cx := rect.Min.X + rect.Dx()/2 - 3
		cy := rect.Min.Y + rect.Dy()/2 + 5
		drawText(img, p.Kind.Notation(), cx, cy, letter)
	}
	return nil
}

func drawCoordinates(img *image.RGBA, origin image.Point) {
	for file := 1; file <= boardSquares; file++ {
		label := string(rune('a' + file - 1))
		x := origin.X + (file-1)*squareSize + squareSize/2 - 3
		y := origin.Y + boardPixels + 18
		drawText(img, label, x, y, coordinateTextColor)
	}
	for rank := 1; rank <= boardSquares; rank++ {
		label := string(rune('0' + rank))
		x := origin.X - 18
		y := origin.Y + (boardSquares-rank)*squareSize + squareSize/2 + 5
		drawText(img, label, x, y, coordinateTextColor)
	}
}

func drawText(img *image.RGBA, text string, x, y int, c color.NRGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
