package compose

import (
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

var (
	strut      = palette.RGB(150, 150, 150)
	panelBlue  = palette.RGB(0, 100, 200)
	panelLight = palette.RGB(0, 150, 255)
)

func drawDome(c *canvas.Canvas, b palette.Palette) {
	const cx, cy, r = 32, 48, 24
	hull := b[0]

	c.Paint(0, 0, 64, 64, func(x, y int) (palette.Color, bool) {
		if y < cy-r/2 || canvas.Dist(x, y, cx, cy) > r {
			return hull, false
		}
		if y < cy-8 {
			return hull.Offset(30), true
		}
		return hull, true
	})

	c.FillCircleIn(cx, 32, 10, 24, 28, 41, 40, pool)
	for _, sx := range []int{16, 48} {
		box(c, sx, 38, sx+1, 47, pool)
	}

	for _, x := range []int{20, 44} {
		for y := 32; y < 52; y += 4 {
			c.SetPixel(x, y, cyan)
		}
	}
	for _, x := range []int{12, 52} {
		box(c, x, 40, x+1, 56, strut)
	}

	box(c, 28, 52, 37, 64, b.Index(1))
	c.SetPixel(24, 52, green)
	c.SetPixel(40, 52, green)

	antenna := palette.RGB(200, 200, 200)
	box(c, cx, 16, cx+1, 24, antenna)
	c.SetPixel(cx-4, 16, antenna)
	c.SetPixel(cx+4, 16, antenna)
}

func drawStation(c *canvas.Canvas, b palette.Palette) {
	body := b[0]
	hull := body.Offset(-20)

	box(c, 16, 24, 48, 40, body)
	box(c, 24, 16, 40, 24, hull)
	box(c, 24, 40, 40, 48, hull)

	box(c, 8, 28, 16, 36, gold)
	box(c, 48, 28, 56, 36, gold)
	box(c, 4, 28, 5, 36, hull)
	box(c, 56, 28, 57, 36, hull)

	cells := func(x, y int) (palette.Color, bool) {
		if (x+y)%2 == 0 {
			return panelBlue, true
		}
		return panelLight, true
	}
	c.Paint(0, 20, 8, 44, cells)
	c.Paint(56, 20, 64, 44, cells)

	dish := palette.RGB(180, 180, 180)
	box(c, 20, 12, 25, 13, dish)
	box(c, 30, 8, 35, 9, dish)
	box(c, 40, 12, 45, 13, dish)

	for x := 16; x < 48; x += 8 {
		c.SetPixel(x, 24, green)
		c.SetPixel(x, 36, green)
	}
	spin := palette.RGB(255, 100, 100)
	c.SetPixel(24, 32, spin)
	c.SetPixel(36, 32, spin)
}

// The remaining space buildings are laid out on a 16×16 grid and drawn
// through coarse.

func drawLab(c *canvas.Canvas, b palette.Palette) {
	wall := b[0]
	equipment := palette.RGB(150, 150, 150)

	frame(c, 2, 4, 14, 14, wall.Offset(-30), wall)

	core2 := palette.RGB(0, 200, 200)
	c.Paint(6, 7, 11, 11, func(x, y int) (palette.Color, bool) {
		if canvas.Dist(x, y, 8, 9) > 2 {
			return cyan, false
		}
		if (x+y)%2 == 0 {
			return cyan, true
		}
		return core2, true
	})

	field := palette.RGB(100, 255, 100)
	for _, p := range [][2]int{{5, 6}, {10, 6}, {5, 11}, {10, 11}} {
		c.SetPixel(p[0], p[1], field)
	}

	box(c, 3, 6, 5, 8, equipment)
	c.SetPixel(3, 5, white)
	box(c, 11, 6, 13, 8, equipment)
	c.SetPixel(11, 5, green)
	c.SetPixel(12, 5, green)

	box(c, 6, 5, 10, 6, equipment)
	beam := palette.RGB(255, 255, 0)
	c.SetPixel(7, 4, beam)
	c.SetPixel(8, 4, beam)

	box(c, 5, 12, 11, 13, equipment)
	for _, x := range []int{5, 7, 9, 10} {
		c.SetPixel(x, 11, cyan)
	}

	for _, p := range [][2]int{{2, 5}, {13, 5}, {2, 12}, {13, 12}} {
		c.SetPixel(p[0], p[1], orange)
	}

	conduit := palette.RGB(0, 150, 255)
	for _, p := range [][2]int{{5, 8}, {4, 7}, {11, 8}, {12, 7}} {
		c.SetPixel(p[0], p[1], conduit)
	}

	processor := palette.RGB(200, 200, 200)
	c.SetPixel(3, 4, processor)
	c.SetPixel(12, 4, processor)
}

func drawOrbitalFactory(c *canvas.Canvas, b palette.Palette) {
	box(c, 1, 5, 15, 14, b[0])

	machinery := palette.RGB(120, 120, 120)
	for _, bx := range []int{3, 12} {
		box(c, bx, 7, bx+1, 12, machinery)
	}

	belt := palette.RGB(100, 100, 100)
	for x := 5; x < 11; x++ {
		c.SetPixel(x, 9, belt)
		if x%2 == 0 {
			c.SetPixel(x, 8, orange)
		}
	}

	arm := palette.RGB(150, 150, 150)
	for _, p := range [][2]int{{4, 7}, {5, 6}, {11, 7}, {10, 6}} {
		c.SetPixel(p[0], p[1], arm)
	}

	box(c, 6, 5, 10, 6, cyan)

	heat := palette.RGB(255, 100, 100)
	for _, vx := range []int{4, 8, 12} {
		box(c, vx, 2, vx+1, 5, iron)
		c.SetPixel(vx, 1, heat)
	}

	for x := 2; x < 14; x += 3 {
		c.SetPixel(x, 6, green)
	}
}

func drawHabitat(c *canvas.Canvas, b palette.Palette) {
	shell := b[0]
	frame(c, 2, 3, 14, 15, shell.Offset(-40), shell)

	living := palette.RGB(200, 200, 255)
	for _, p := range [][2]int{{4, 5}, {9, 5}, {4, 10}, {9, 10}} {
		box(c, p[0], p[1], p[0]+3, p[1]+3, living)
	}

	box(c, 6, 8, 10, 10, palette.RGB(0, 255, 100))

	support := palette.RGB(100, 255, 255)
	c.SetPixel(3, 8, support)
	c.SetPixel(12, 8, support)

	for _, p := range [][2]int{{5, 4}, {10, 4}, {5, 13}, {10, 13}} {
		c.SetPixel(p[0], p[1], glass)
	}

	box(c, 7, 4, 9, 6, palette.RGB(255, 255, 200))

	recycler := palette.RGB(180, 180, 180)
	for _, p := range [][2]int{{3, 4}, {12, 4}, {3, 13}, {12, 13}} {
		c.SetPixel(p[0], p[1], recycler)
	}
}

func drawSolarArray(c *canvas.Canvas, _ palette.Palette) {
	box(c, 7, 6, 9, 12, gold)

	cells := func(x, y int) (palette.Color, bool) {
		if (x+y)%2 == 0 {
			return panelBlue, true
		}
		return panelLight, true
	}
	for _, q := range [][2]int{{1, 1}, {10, 1}, {1, 10}, {10, 10}} {
		c.Paint(q[0], q[1], q[0]+5, q[1]+5, cells)
	}

	for _, y := range []int{3, 12} {
		box(c, 6, y, 8, y+1, strut)
		box(c, 9, y, 11, y+1, strut)
	}
	for _, x := range []int{3, 12} {
		box(c, x, 6, x+1, 8, strut)
		box(c, x, 9, x+1, 11, strut)
	}

	power := palette.RGB(255, 255, 0)
	for _, p := range [][2]int{{5, 5}, {10, 5}, {5, 10}, {10, 10}} {
		c.SetPixel(p[0], p[1], power)
	}

	c.SetPixel(7, 8, white)
	c.SetPixel(8, 8, white)
}
