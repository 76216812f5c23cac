package compose

import (
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

type buildFunc func(c *canvas.Canvas, b palette.Palette)

// buildingSets is keyed by era, then building type. Types are looked up per
// era, so the same name in two eras (factory) resolves to two composers.
var buildingSets = map[string]map[string]buildFunc{
	"primitive":   {"hut": drawHut, "tent": drawTent, "shrine": drawShrine},
	"ancient":     {"villa": drawVilla, "temple": drawTemple, "forum": drawForum},
	"medieval":    {"castle": drawCastle, "cathedral": drawCathedral, "blacksmith": drawBlacksmith},
	"renaissance": {"mansion": drawMansion, "university": drawUniversity, "workshop": drawWorkshop},
	"industrial":  {"house": drawHouse, "factory": drawFactory, "office": drawOffice},
	"modern":      {"apartment": drawApartment, "mall": drawMall, "hospital": drawHospital},
	"space": {
		"dome": drawDome, "station": drawStation,
		"lab": coarse(drawLab), "factory": coarse(drawOrbitalFactory),
		"habitat": coarse(drawHabitat), "solar_array": coarse(drawSolarArray),
	},
}

// BuildingTypes lists each era's buildings in catalog order.
var BuildingTypes = map[string][]string{
	"primitive":   {"hut", "tent", "shrine"},
	"ancient":     {"villa", "temple", "forum"},
	"medieval":    {"castle", "cathedral", "blacksmith"},
	"renaissance": {"mansion", "university", "workshop"},
	"industrial":  {"house", "factory", "office"},
	"modern":      {"apartment", "mall", "hospital"},
	"space":       {"dome", "station", "lab", "factory", "habitat", "solar_array"},
}

func registerBuildings() {
	for era, set := range buildingSets {
		for name, fn := range set {
			register(Buildings, era, name, 64, 64, func(c *canvas.Canvas, reg *palette.Registry, _ int) error {
				b, err := reg.Get(era, palette.RoleBuildings)
				if err != nil {
					return err
				}
				fn(c, b)
				return nil
			})
		}
	}
}

// coarse adapts a composer laid out on a 16×16 grid to the 64×64 canvas.
func coarse(fn buildFunc) buildFunc {
	return func(c *canvas.Canvas, b palette.Palette) {
		fn(c.Sub(4), b)
	}
}

// roofRows paints a stepped triangle: row y spans width(y) pixels centered
// on cx, clipped to [minX, maxX).
func roofRows(c *canvas.Canvas, y0, y1, cx, minX, maxX int, width func(y int) int, pick func(x, y, startX int) (palette.Color, bool)) {
	for y := y0; y < y1; y++ {
		w := width(y)
		sx := cx - w/2
		for x := sx; x < sx+w; x++ {
			if x < minX || x >= maxX {
				continue
			}
			if col, ok := pick(x, y, sx); ok {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// frame paints the border of [x0,x1)×[y0,y1) with edge and the inside with fill.
func frame(c *canvas.Canvas, x0, y0, x1, y1 int, edge, fill palette.Color) {
	c.Paint(x0, y0, x1, y1, func(x, y int) (palette.Color, bool) {
		if x == x0 || x == x1-1 || y == y0 || y == y1-1 {
			return edge, true
		}
		return fill, true
	})
}

// Primitive era.

func drawHut(c *canvas.Canvas, b palette.Palette) {
	thatch := b[0]
	thatchDark := thatch.Offset(-30)
	wall := b.Index(1)

	roofRows(c, 8, 29, 32, 8, 56,
		func(y int) int { return (y - 8 + 1) * 2 },
		func(x, y, _ int) (palette.Color, bool) {
			if (x+y)%3 == 0 {
				return thatchDark, true
			}
			return thatch, true
		})
	for x := 10; x < 54; x += 4 {
		box(c, x, 29, x+1, 32, thatchDark)
	}

	box(c, 12, 52, 52, 58, palette.RGB(120, 120, 120))

	c.Paint(14, 30, 50, 52, func(x, y int) (palette.Color, bool) {
		if (x/4+y/3)%2 == 0 {
			return wall, true
		}
		return wall.Offset(-15), true
	})

	c.Paint(26, 40, 38, 52, func(x, y int) (palette.Color, bool) {
		if x == 26 || x == 37 || y == 40 {
			return wood, true
		}
		return darkWood, true
	})
	c.SetPixel(35, 46, palette.RGB(150, 150, 150))
	c.SetPixel(27, 42, iron)
	c.SetPixel(27, 48, iron)

	for _, wx := range []int{18, 44} {
		frame(c, wx, 35, wx+6, 42, wood, shadow)
		box(c, wx-1, 36, wx, 41, wood)
		box(c, wx+6, 36, wx+7, 41, wood)
	}

	for _, bx := range []int{20, 32, 44} {
		box(c, bx, 28, bx+1, 32, wood)
	}
}

func drawTent(c *canvas.Canvas, b palette.Palette) {
	tent := b[0]
	dark, light := tent.Offset(-25), tent.Offset(20)
	const peak, base = 12, 48

	roofRows(c, peak, base+1, 32, 6, 58,
		func(y int) int { return (y - peak + 1) * 2 },
		func(x, y, sx int) (palette.Color, bool) {
			switch {
			case (x-sx)%8 == 0:
				return dark, true
			case (y-peak)%6 == 0:
				return light, true
			}
			return tent, true
		})

	roofRows(c, 18, 45, 32, 24, 41,
		func(y int) int { return y - 18 + 1 },
		func(int, int, int) (palette.Color, bool) { return dark, true })

	box(c, 32, 15, 33, 45, palette.RGB(120, 90, 60))

	rope := palette.RGB(139, 105, 70)
	for _, r := range [][4]int{{10, 20, 4, 50}, {54, 20, 60, 50}, {20, 15, 8, 52}, {44, 15, 56, 52}} {
		c.Line(r[0], r[1], r[2], r[3], rope)
	}
	for _, s := range [][2]int{{4, 50}, {60, 50}, {8, 52}, {56, 52}} {
		box(c, s[0], s[1], s[0]+1, s[1]+8, wood)
	}

	motif := tent.Offset(-40)
	for py := 25; py < 40; py += 8 {
		for px := 16; px < 48; px += 12 {
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					x, y := px+dx, py+dy
					if abs(dx)+abs(dy) == 2 && x >= 6 && x < 58 && y >= peak && y <= base {
						c.SetPixel(x, y, motif)
					}
				}
			}
		}
	}
}

func drawShrine(c *canvas.Canvas, b palette.Palette) {
	stone := palette.RGB(169, 169, 169)
	if len(b) > 2 {
		stone = b[2]
	}
	marble, marbleDark := palette.RGB(220, 220, 220), palette.RGB(180, 180, 180)

	for level, rows := range [][2]int{{56, 64}, {52, 56}, {48, 52}} {
		w := 48 - level*4
		sx := 32 - w/2
		c.Paint(sx, rows[0], sx+w, rows[1], func(x, y int) (palette.Color, bool) {
			if (x+y)%3 == 0 {
				return stone.Offset(-10), true
			}
			return stone, true
		})
	}

	for _, cx := range []int{14, 22, 32, 42, 50} {
		c.Paint(cx-2, 20, cx+3, 45, func(x, _ int) (palette.Color, bool) {
			if x == cx-2 || x == cx+2 {
				return marbleDark, true
			}
			return marble, true
		})
		box(c, cx-3, 17, cx+4, 20, marble)
		c.SetPixel(cx-2, 16, gold)
		c.SetPixel(cx+2, 16, gold)
		c.SetPixel(cx, 15, gold)
		box(c, cx-2, 45, cx+3, 48, marbleDark)
	}

	roofRows(c, 8, 17, 32, 10, 54,
		func(y int) int { return (y - 8 + 1) * 4 },
		func(int, int, int) (palette.Color, bool) { return marble, true })
	for fx := 20; fx < 45; fx += 8 {
		box(c, fx, 12, fx+1, 15, gold)
	}

	box(c, 12, 16, 52, 18, marble)
	c.Paint(12, 14, 52, 16, func(x, _ int) (palette.Color, bool) {
		if x%6 == 0 {
			return gold, true
		}
		return marble, true
	})

	frame(c, 26, 35, 39, 43, marbleDark, stone)
	flame := palette.RGB(255, 140, 0)
	for _, p := range [][2]int{{30, 32}, {32, 31}, {34, 32}, {31, 33}, {33, 33}} {
		c.SetPixel(p[0], p[1], flame)
	}
	for _, p := range [][2]int{{28, 36}, {36, 36}, {30, 38}, {34, 38}} {
		c.SetPixel(p[0], p[1], gold)
	}

	for step := 0; step < 3; step++ {
		sy, sw := 44+step*2, 20-step*2
		box(c, 32-sw/2, sy, 32-sw/2+sw, sy+2, marbleDark)
	}
}

// Ancient era.

func drawVilla(c *canvas.Canvas, b palette.Palette) {
	wall, roof, column := b[0], b.Index(1), b.Index(2)

	box(c, 8, 20, 56, 56, wall)
	c.Paint(6, 12, 58, 22, func(x, y int) (palette.Color, bool) {
		if y >= 20-abs(x-32)/4 {
			return roof, false
		}
		if (x+y)%3 == 0 {
			return roof.Offset(-20), true
		}
		return roof, true
	})

	for _, cx := range []int{16, 24, 40, 48} {
		box(c, cx-1, 32, cx+2, 48, column)
	}

	frame(c, 24, 36, 40, 48, pool, water)

	for x := 8; x < 56; x += 4 {
		for y := 48; y < 56; y += 4 {
			c.SetPixel(x, y, b.Index(3))
		}
	}
}

func drawTemple(c *canvas.Canvas, b palette.Palette) {
	marble, trim := b[0], b.Index(3)

	for level := 0; level < 3; level++ {
		box(c, 10-level*2, 54-level*2, 54+level*2, 58-level*2, marble)
	}

	for cx := 12; cx < 52; cx += 5 {
		c.Paint(cx-2, 24, cx+3, 48, func(x, _ int) (palette.Color, bool) {
			if x == cx-2 || x == cx+2 {
				return marble.Offset(-20), true
			}
			return marble, true
		})
	}

	for y := 8; y < 24; y++ {
		w := (y - 8) * 3
		for x := 32 - w/2; x < 32+w/2; x++ {
			if x >= 8 && x < 56 {
				c.SetPixel(x, y, marble)
			}
		}
	}

	c.Paint(10, 20, 54, 24, func(x, _ int) (palette.Color, bool) {
		if x%8 < 3 {
			return trim, true
		}
		return marble, true
	})
}

func drawForum(c *canvas.Canvas, b palette.Palette) {
	stone := b.Index(2)

	c.Paint(4, 40, 60, 60, func(x, y int) (palette.Color, bool) {
		if (x/4+y/4)%2 == 0 {
			return stone, true
		}
		return stone.Offset(-20), true
	})

	canopy, post := palette.RGB(178, 34, 34), palette.RGB(139, 69, 19)
	for _, sx := range []int{8, 24, 40} {
		const sy = 32
		c.Paint(sx-4, sy, sx+4, sy+8, func(x, y int) (palette.Color, bool) {
			if y == sy {
				return canopy, true
			}
			return post, x == sx-4 || x == sx+3
		})
	}

	c.Paint(28, 24, 36, 32, func(x, y int) (palette.Color, bool) {
		d := canvas.Dist(x, y, 32, 28)
		switch {
		case d > 4:
			return stone, false
		case d > 3:
			return stone, true
		}
		return pool, true
	})
	spout := palette.RGB(200, 200, 255)
	c.SetPixel(32, 26, spout)
	c.SetPixel(32, 25, spout)
}

// Medieval era.

func drawCastle(c *canvas.Canvas, b palette.Palette) {
	stone := b[0]

	c.Paint(16, 20, 48, 52, func(x, y int) (palette.Color, bool) {
		if (x/3+y/2)%3 == 0 {
			return stone.Offset(-20), true
		}
		return stone, true
	})

	for _, t := range [][2]int{{8, 16}, {56, 16}, {8, 48}, {56, 48}} {
		tx, ty := t[0], t[1]
		box(c, tx-4, ty-4, min(tx+4, 64), min(ty+12, 64), stone)
		for x := tx - 4; x < min(tx+4, 64); x += 2 {
			box(c, x, ty-6, x+1, ty-4, stone)
		}
	}

	c.Paint(28, 44, 36, 52, func(x, y int) (palette.Color, bool) {
		if x == 28 || x == 35 || y == 44 {
			return iron, true
		}
		return wood, true
	})

	box(c, 30, 8, 34, 16, b.Index(3))
}

func drawCathedral(c *canvas.Canvas, b palette.Palette) {
	stone := b[0]

	box(c, 12, 16, 52, 56, stone)

	for _, sx := range []int{20, 44} {
		for y := 4; y < 20; y++ {
			w := max(1, 4-(20-y)/3)
			box(c, sx-w, y, sx+w+1, y+1, stone)
		}
	}

	c.FillCircleIn(32, 28, 4, 28, 24, 37, 33, palette.RGB(100, 50, 200))

	c.Paint(28, 44, 37, 56, func(x, y int) (palette.Color, bool) {
		if x == 28 || x == 36 || y == 44 {
			return stone, true
		}
		return shadow, true
	})
}

func drawBlacksmith(c *canvas.Canvas, b palette.Palette) {
	planks, stone := b.Index(1), b.Index(2)
	soot := palette.RGB(64, 64, 64)

	c.Paint(12, 24, 52, 56, func(_, y int) (palette.Color, bool) {
		if y%4 == 0 {
			return planks.Offset(-20), true
		}
		return planks, true
	})

	box(c, 44, 8, 52, 28, stone)
	for i := 0; i < 5; i++ {
		c.SetPixel(48+i%3-1, 7-i, soot)
	}

	box(c, 18, 48, 24, 52, soot)

	glow, interior := palette.RGB(255, 100, 0), palette.RGB(40, 20, 10)
	c.Paint(28, 44, 36, 56, func(x, y int) (palette.Color, bool) {
		if x >= 30 && x <= 33 && y >= 46 && y <= 50 {
			return glow, true
		}
		return interior, true
	})
}
