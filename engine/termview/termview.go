// Package termview shows sprites in a terminal using half-block cells: each
// cell carries two vertically stacked pixels, the upper one as foreground of
// '▀' and the lower one as background.
package termview

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// Step returns the smallest sampling step at which an image of size b fits
// into cols×rows cells, never less than min. A screen with no columns or
// rows fits nothing, so min is returned as is.
func Step(b image.Rectangle, cols, rows, min int) int {
	step := max(1, min)
	if cols < 1 || rows < 1 {
		return step
	}
	for b.Dx()/step > cols || (b.Dy()/step+1)/2 > rows {
		step++
	}
	return step
}

func toColor(c color.Color) (tcell.Color, bool) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return tcell.ColorDefault, false
	}
	// Un-premultiply so partly transparent smoke keeps its hue.
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)), true
}

// Draw paints m on s with its top-left cell at (x0, y0), sampling every
// step-th pixel. Cells off screen are skipped.
func Draw(s tcell.Screen, m image.Image, x0, y0, step int) {
	b := m.Bounds()
	w, h := s.Size()
	for py, row := b.Min.Y, 0; py < b.Max.Y; py, row = py+2*step, row+1 {
		for px, col := b.Min.X, 0; px < b.Max.X; px, col = px+step, col+1 {
			x, y := x0+col, y0+row
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			top, topOK := toColor(m.At(px, py))
			var bottom tcell.Color
			bottomOK := false
			if py+step < b.Max.Y {
				bottom, bottomOK = toColor(m.At(px, py+step))
			}

			st := tcell.StyleDefault
			switch {
			case topOK && bottomOK:
				s.SetContent(x, y, upperHalf, nil, st.Foreground(top).Background(bottom))
			case topOK:
				s.SetContent(x, y, upperHalf, nil, st.Foreground(top))
			case bottomOK:
				s.SetContent(x, y, lowerHalf, nil, st.Foreground(bottom))
			default:
				s.SetContent(x, y, ' ', nil, st)
			}
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// Show draws m with a caption underneath and waits for a key press,
// redrawing on resize. logical is the sprite's logical width; the image is
// sampled at no finer than one cell column per logical pixel.
func Show(s tcell.Screen, m image.Image, logical int, caption string) {
	minStep := 1
	if logical > 0 {
		minStep = max(1, m.Bounds().Dx()/logical)
	}
	redraw := func() {
		s.Clear()
		w, h := s.Size()
		step := Step(m.Bounds(), w, h-1, minStep)
		Draw(s, m, 0, 0, step)
		drawText(s, 0, h-1, caption)
		s.Show()
	}

	redraw()
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			redraw()
		case *tcell.EventKey:
			return
		case nil:
			return
		}
	}
}
