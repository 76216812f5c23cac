package catalog

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

// Encoder serializes a rendered sprite.
type Encoder interface {
	Encode(w io.Writer, m image.Image) error
}

type rgbaPNG struct{}

func (rgbaPNG) Encode(w io.Writer, m image.Image) error { return png.Encode(w, m) }

// palettedPNG reduces the image to at most 256 colors with a median cut
// before encoding. Index 0 is always fully transparent.
type palettedPNG struct{}

func (palettedPNG) Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(append(make(color.Palette, 0, 256), color.Transparent), m)

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return png.Encode(w, pm)
}

var (
	// PNG writes full RGBA PNGs.
	PNG Encoder = rgbaPNG{}
	// PalettedPNG writes indexed PNGs.
	PalettedPNG Encoder = palettedPNG{}
)
