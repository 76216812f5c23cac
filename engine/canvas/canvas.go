// Package canvas is the drawing surface every composer paints on.
//
// All coordinates are logical. A canvas with scale s backs each logical pixel
// with an s×s block of physical pixels, and every write fills the whole block.
// Writes outside the logical grid are dropped.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/1siamBot/spriteforge/engine/palette"
)

// Canvas is a mutable RGBA surface at a fixed logical resolution.
type Canvas struct {
	img   *image.RGBA
	w, h  int
	scale int
}

// New allocates a transparent canvas of width×height logical pixels.
func New(width, height, scale int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %dx%d", width, height)
	}
	if scale < 1 {
		return nil, fmt.Errorf("canvas: scale must be >= 1, got %d", scale)
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width*scale, height*scale)),
		w:     width,
		h:     height,
		scale: scale,
	}, nil
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }
func (c *Canvas) Scale() int  { return c.scale }

// Image returns the physical surface. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// In reports whether (x, y) lies on the logical grid.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// SetPixel writes an opaque logical pixel.
func (c *Canvas) SetPixel(x, y int, col palette.Color) {
	c.SetPixelAlpha(x, y, col, 255)
}

// SetPixelAlpha writes a logical pixel with the given alpha. The value
// replaces whatever was there; nothing is blended.
func (c *Canvas) SetPixelAlpha(x, y int, col palette.Color, alpha uint8) {
	if !c.In(x, y) {
		return
	}
	rgba := col.RGBA(alpha)
	if c.scale == 1 {
		c.img.SetRGBA(x, y, rgba)
		return
	}
	x0, y0 := x*c.scale, y*c.scale
	for py := y0; py < y0+c.scale; py++ {
		for px := x0; px < x0+c.scale; px++ {
			c.img.SetRGBA(px, py, rgba)
		}
	}
}

// At reads back the logical pixel at (x, y). Off-grid reads are transparent.
func (c *Canvas) At(x, y int) color.RGBA {
	if !c.In(x, y) {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x*c.scale, y*c.scale)
}

// Sub returns a view of the same surface in which one design pixel covers
// factor×factor logical pixels. Composers drawn on a coarse grid use it to
// fill the full canvas.
func (c *Canvas) Sub(factor int) *Canvas {
	if factor < 1 {
		factor = 1
	}
	return &Canvas{
		img:   c.img,
		w:     c.w / factor,
		h:     c.h / factor,
		scale: c.scale * factor,
	}
}

// Paint visits every pixel of the half-open box [x0,x1)×[y0,y1) and writes
// the color fn returns when its second result is true.
func (c *Canvas) Paint(x0, y0, x1, y1 int, fn func(x, y int) (palette.Color, bool)) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if col, ok := fn(x, y); ok {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// FillRect fills a w×h rectangle with its top-left corner at (x, y).
func (c *Canvas) FillRect(x, y, w, h int, col palette.Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.SetPixel(px, py, col)
		}
	}
}

// FillCircle fills every pixel whose Euclidean distance to (cx, cy) is at
// most r.
func (c *Canvas) FillCircle(cx, cy int, r float64, col palette.Color) {
	c.FillCircleIn(cx, cy, r, cx-int(r), cy-int(r), cx+int(r)+1, cy+int(r)+1, col)
}

// FillCircleIn is FillCircle restricted to the half-open box [x0,x1)×[y0,y1).
func (c *Canvas) FillCircleIn(cx, cy int, r float64, x0, y0, x1, y1 int, col palette.Color) {
	c.Paint(x0, y0, x1, y1, func(x, y int) (palette.Color, bool) {
		return col, Dist(x, y, cx, cy) <= r
	})
}

// FillDiamond fills the pixels with |dx|+|dy| <= r around (cx, cy).
func (c *Canvas) FillDiamond(cx, cy, r int, col palette.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if abs(dx)+abs(dy) <= r {
				c.SetPixel(cx+dx, cy+dy, col)
			}
		}
	}
}

// FillTriangle fills the triangle with the given vertices, edges included.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col palette.Color) {
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			if pointInTriangle(px, py, x0, y0, x1, y1, x2, y2) {
				c.SetPixel(px, py, col)
			}
		}
	}
}

// Line draws from (x0, y0) to (x1, y1) inclusive by stepping
// max(|dx|,|dy|) times and rounding each point to the nearest pixel.
func (c *Canvas) Line(x0, y0, x1, y1 int, col palette.Color) {
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		c.SetPixel(x0, y0, col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := float64(x0) + t*float64(x1-x0)
		y := float64(y0) + t*float64(y1-y0)
		c.SetPixel(int(math.Round(x)), int(math.Round(y)), col)
	}
}

// Dist is the Euclidean distance between two grid points.
func Dist(x0, y0, x1, y1 int) float64 {
	dx, dy := float64(x0-x1), float64(y0-y1)
	return math.Sqrt(dx*dx + dy*dy)
}

func pointInTriangle(px, py, x0, y0, x1, y1, x2, y2 int) bool {
	d1 := sign(px, py, x0, y0, x1, y1)
	d2 := sign(px, py, x1, y1, x2, y2)
	d3 := sign(px, py, x2, y2, x0, y0)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(px, py, x0, y0, x1, y1 int) int {
	return (px-x1)*(y0-y1) - (x0-x1)*(py-y1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
