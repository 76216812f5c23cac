package compose

import (
	"math"

	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// TerrainTypes in catalog order.
var TerrainTypes = []string{"grass", "desert", "snow", "water", "forest", "mountain", "swamp", "volcanic"}

var terrainTiles = map[string]func(c *canvas.Canvas, base palette.Color){
	"grass":  grassTile,
	"water":  waterTile,
	"forest": forestTile,
}

func registerTerrain() {
	for _, t := range TerrainTypes {
		tile, ok := terrainTiles[t]
		if !ok {
			tile = checkerTile
		}
		register(Terrain, "", t, 32, 32, func(c *canvas.Canvas, reg *palette.Registry, _ int) error {
			p, err := reg.Get(palette.DomainTerrain, t)
			if err != nil {
				return err
			}
			tile(c, p[0])
			return nil
		})
	}
}

func grassTile(c *canvas.Canvas, base palette.Color) {
	c.Paint(0, 0, 32, 32, func(x, y int) (palette.Color, bool) {
		v := (x*3+y*2)%5 - 2
		return base.Offset(v * 8), true
	})

	blade := palette.RGB(0, 120, 0)
	for i := 0; i < 15; i++ {
		bx, by := (i*7)%32, (i*11)%32
		box(c, bx, by, bx+1, min(by+3, 32), blade)
	}
}

func waterTile(c *canvas.Canvas, base palette.Color) {
	c.Paint(0, 0, 32, 32, func(x, y int) (palette.Color, bool) {
		wave := int(math.Sin(float64(x)*0.3+float64(y)*0.1) * 15)
		return base.Channels(wave, wave+10, wave+20), true
	})

	foam := palette.RGB(200, 220, 255)
	for i := 0; i < 8; i++ {
		fx, fy := (i*13)%32, (i*7)%32
		c.SetPixel(fx, fy, foam)
		c.SetPixel(fx+1, fy, foam)
	}
}

func forestTile(c *canvas.Canvas, base palette.Color) {
	c.Paint(0, 0, 32, 32, func(x, y int) (palette.Color, bool) {
		v := (x+y*2)%4 - 2
		return base.Offset(v * 10), true
	})

	canopy := palette.RGB(0, 80, 0)
	for _, t := range [][2]int{{8, 8}, {20, 12}, {5, 20}, {25, 6}, {15, 24}, {28, 18}} {
		tx, ty := t[0], t[1]
		box(c, tx-1, ty, tx+2, ty+6, wood)
		c.FillCircleIn(tx, ty-2, 3.5, tx-3, ty-4, tx+4, ty+1, canopy)
	}
}

// checkerTile darkens alternating 4×4 cells of the base color.
func checkerTile(c *canvas.Canvas, base palette.Color) {
	dark := base.Offset(-10)
	c.Paint(0, 0, 32, 32, func(x, y int) (palette.Color, bool) {
		if (x/4+y/4)%2 == 1 {
			return dark, true
		}
		return base, true
	})
}
