package compose

import (
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// Renaissance era.

func drawMansion(c *canvas.Canvas, b palette.Palette) {
	wall, accent := b[0], b.Index(1)

	box(c, 8, 20, 56, 56, wall)
	for _, y := range []int{20, 32, 44} {
		box(c, 8, y, 56, y+2, accent)
	}

	pane := palette.RGB(200, 200, 255)
	for _, w := range [][2]int{{16, 24}, {16, 36}, {40, 24}, {40, 36}} {
		wx, wy := w[0], w[1]
		c.Paint(wx-4, wy-4, wx+5, wy+5, func(x, y int) (palette.Color, bool) {
			return pane, y > wy-4 && canvas.Dist(x, y, wx, wy-2) <= 4
		})
	}

	for _, cx := range []int{24, 40} {
		box(c, cx-1, 44, cx+2, 56, palette.RGB(245, 245, 220))
	}

	c.FillCircleIn(32, 16, 8, 24, 8, 41, 20, accent)
}

func drawUniversity(c *canvas.Canvas, b palette.Palette) {
	stone := b.Index(2)

	box(c, 8, 16, 56, 56, stone)
	box(c, 28, 4, 36, 20, stone)
	c.FillCircleIn(32, 10, 2, 30, 8, 34, 12, white)
	c.SetPixel(32, 10, black)

	for wx := 16; wx < 48; wx += 8 {
		box(c, wx-2, 24, wx+3, 48, palette.RGB(180, 180, 200))
	}
}

func drawWorkshop(c *canvas.Canvas, b palette.Palette) {
	box(c, 12, 20, 52, 56, b.Index(3))

	pane := palette.RGB(220, 220, 255)
	c.Paint(16, 24, 48, 40, func(x, y int) (palette.Color, bool) {
		return pane, x%8 < 6 && y%8 < 6
	})

	box(c, 44, 12, 48, 24, palette.RGB(120, 120, 120))
}

// Industrial era.

func drawHouse(c *canvas.Canvas, b palette.Palette) {
	brick := b[0]
	brickDark := brick.Offset(-30)
	roof := b.Index(1)

	c.Paint(8, 24, 56, 56, func(x, y int) (palette.Color, bool) {
		if (x/3+y/2)%2 == 0 {
			return brick, true
		}
		return brickDark, true
	})

	roofRows(c, 12, 25, 32, 4, 60,
		func(y int) int { return (y - 12 + 1) * 3 },
		func(_, y, _ int) (palette.Color, bool) {
			if y%3 == 0 {
				return roof.Offset(-20), true
			}
			return roof, true
		})

	pane, sash := palette.RGB(255, 255, 200), palette.RGB(100, 100, 100)
	for _, w := range [][2]int{{16, 32}, {40, 32}, {16, 44}, {40, 44}} {
		frame(c, w[0], w[1], w[0]+8, w[1]+8, sash, pane)
	}

	c.Paint(28, 44, 36, 56, func(x, y int) (palette.Color, bool) {
		if x == 28 || x == 35 || y == 44 {
			return iron, true
		}
		return wood, true
	})
	c.SetPixel(34, 50, gold)

	box(c, 48, 8, 52, 20, brick)
	smoke := palette.RGB(128, 128, 128)
	for _, p := range [][2]int{{49, 7}, {50, 6}, {51, 5}} {
		c.SetPixel(p[0], p[1], smoke)
	}
}

func drawFactory(c *canvas.Canvas, b palette.Palette) {
	siding := b[0]
	metal := palette.RGB(105, 105, 105)
	soot := palette.RGB(64, 64, 64)

	c.Paint(4, 24, 60, 60, func(_, y int) (palette.Color, bool) {
		if y%4 == 0 {
			return siding.Offset(-20), true
		}
		return siding, true
	})

	for _, sx := range []int{16, 32, 48} {
		box(c, sx-3, 4, sx+4, 28, metal)
		for off := -6; off <= 6; off += 2 {
			c.SetPixel(sx+off/2, 3-abs(off)/2, soot)
		}
	}

	pane := palette.RGB(180, 180, 180)
	for wy := 28; wy < 52; wy += 8 {
		for wx := 8; wx < 56; wx += 8 {
			box(c, wx, wy, wx+6, wy+6, pane)
		}
	}

	box(c, 20, 56, 44, 60, iron)
}

func drawOffice(c *canvas.Canvas, b palette.Palette) {
	box(c, 16, 8, 48, 60, b[0])

	for fy := 12; fy < 56; fy += 4 {
		for wx := 20; wx < 44; wx += 4 {
			box(c, wx, fy, wx+3, fy+3, glass)
		}
	}

	box(c, 24, 52, 40, 60, glass)
	box(c, 28, 4, 36, 8, palette.RGB(120, 120, 120))
}

// Modern era.

func drawApartment(c *canvas.Canvas, b palette.Palette) {
	box(c, 8, 4, 56, 60, b[0])

	pane := b.Index(1)
	rail := palette.RGB(100, 100, 100)
	for floor := 8; floor < 56; floor += 6 {
		for apt := 12; apt < 52; apt += 8 {
			box(c, apt, floor, apt+6, floor+4, pane)
			if apt < 48 {
				box(c, apt, floor+4, apt+6, floor+5, rail)
			}
		}
	}
}

func drawMall(c *canvas.Canvas, b palette.Palette) {
	box(c, 4, 20, 60, 56, b.Index(2))
	box(c, 24, 32, 40, 56, glass)
	for x := 8; x < 56; x += 8 {
		box(c, x, 56, x+1, 60, white)
	}
}

func drawHospital(c *canvas.Canvas, _ palette.Palette) {
	box(c, 8, 12, 56, 56, palette.RGB(245, 245, 245))

	cross := palette.RGB(255, 0, 0)
	box(c, 28, 20, 36, 32, cross)
	box(c, 24, 24, 40, 28, cross)

	box(c, 16, 48, 24, 56, palette.RGB(255, 100, 100))
}
