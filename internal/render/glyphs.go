package render

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/kapu/chess-melee-go/internal/melee"
)

// Piece discs are plain SVG so the rasterizer handles all scaling; the kind
// letter is stamped on top by the renderer.
const (
	whiteDiscSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 45 45">` +
		`<circle cx="22.5" cy="22.5" r="17" fill="#f8f8f4" stroke="#24262e" stroke-width="2.5"/>` +
		`<circle cx="22.5" cy="22.5" r="12.5" fill="none" stroke="#c8c8c0" stroke-width="1.5"/>` +
		`</svg>`
	blackDiscSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 45 45">` +
		`<circle cx="22.5" cy="22.5" r="17" fill="#24262e" stroke="#0c0d12" stroke-width="2.5"/>` +
		`<circle cx="22.5" cy="22.5" r="12.5" fill="none" stroke="#4a4d5a" stroke-width="1.5"/>` +
		`</svg>`
)

type glyphKey struct {
	color melee.Color
	size  int
}

var (
	glyphCache   = map[glyphKey]image.Image{}
	glyphCacheMu sync.RWMutex
)

func discGlyph(color melee.Color, size int) (image.Image, error) {
	key := glyphKey{color: color, size: size}

	glyphCacheMu.RLock()
	if img, ok := glyphCache[key]; ok {
		glyphCacheMu.RUnlock()
		return img, nil
	}
	glyphCacheMu.RUnlock()

	svg := whiteDiscSVG
	if color == melee.Black {
		svg = blackDiscSVG
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, fmt.Errorf("parse disc svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	glyphCacheMu.Lock()
	glyphCache[key] = rgba
	glyphCacheMu.Unlock()
	return rgba, nil
}
