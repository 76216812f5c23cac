package compose

import (
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// VegetationStages lists each plant kind's stages in growth order. Crops
// share one progression.
var VegetationStages = map[string][]string{
	"tree":       {"seedling", "sapling", "mature", "old", "dead", "burnt"},
	"wheat":      cropStages,
	"corn":       cropStages,
	"vegetables": cropStages,
	"grass":      {"healthy", "dry", "dead", "burnt"},
	"flowers":    {"healthy", "wilted", "dead"},
	"bush":       {"healthy", "autumn", "dead"},
}

// VegetationKinds in catalog order.
var VegetationKinds = []string{"tree", "wheat", "corn", "vegetables", "grass", "flowers", "bush"}

var cropStages = []string{"seed", "sprout", "growing", "mature", "dead"}

type plantFunc func(c *canvas.Canvas, reg *palette.Registry) error

var plants = map[string]map[string]plantFunc{
	"tree": {
		"seedling": drawSeedling,
		"sapling":  drawSapling,
		"mature":   drawMatureTree,
		"old":      drawOldTree,
		"dead":     drawDeadTree,
		"burnt":    drawBurntTree,
	},
	"grass": {
		"healthy": grassPatch("healthy", 24, func(x, y int) bool { return (x*3+y)%4 != 0 }),
		"dry":     grassPatch("dry", 26, func(x, y int) bool { return (x*2+y)%3 != 0 }),
		"dead":    grassPatch("dead", 28, func(x, y int) bool { return (x+y)%2 == 0 }),
		"burnt":   grassPatch("burnt", 30, func(x, y int) bool { return (x*5+y)%7 == 0 }),
	},
	"flowers": {
		"healthy": drawFlowersHealthy,
		"wilted":  drawFlowersWilted,
		"dead":    drawFlowersDead,
	},
	"bush": {
		"healthy": bush("healthy", 8, 16, 24, 28, 8, false),
		"autumn":  bush("autumn", 8, 16, 24, 28, 8, false),
		"dead":    bush("dead", 10, 18, 22, 26, 6, true),
	},
}

func registerVegetation() {
	for crop, stages := range crops {
		m := make(map[string]plantFunc, len(stages))
		for stage, fn := range stages {
			m[stage] = cropPlant(crop, fn)
		}
		plants[crop] = m
	}
	for kind, stages := range plants {
		for stage, fn := range stages {
			register(Vegetation, kind, stage, 32, 32, func(c *canvas.Canvas, reg *palette.Registry, _ int) error {
				return fn(c, reg)
			})
		}
	}
}

func treeSet(reg *palette.Registry, state string) (palette.Palette, palette.Palette, error) {
	s, err := reg.Set(palette.TreeDomain(state), "trunk", "foliage")
	if err != nil {
		return nil, nil, err
	}
	return s.Role("trunk"), s.Role("foliage"), nil
}

func drawSeedling(c *canvas.Canvas, reg *palette.Registry) error {
	trunk, foliage, err := treeSet(reg, "healthy")
	if err != nil {
		return err
	}
	box(c, 16, 26, 17, 30, trunk[0])
	c.FillCircleIn(16, 25, 1.5, 15, 24, 18, 27, foliage[0])
	return nil
}

func drawSapling(c *canvas.Canvas, reg *palette.Registry) error {
	trunk, foliage, err := treeSet(reg, "healthy")
	if err != nil {
		return err
	}
	box(c, 15, 20, 18, 30, trunk[0])
	c.Paint(12, 12, 21, 22, func(x, y int) (palette.Color, bool) {
		return foliage.At(x + y), canvas.Dist(x, y, 16, 17) <= 5
	})
	return nil
}

func drawMatureTree(c *canvas.Canvas, reg *palette.Registry) error {
	trunk, foliage, err := treeSet(reg, "healthy")
	if err != nil {
		return err
	}
	c.Paint(14, 16, 19, 30, func(x, y int) (palette.Color, bool) {
		return trunk.At(x + y), true
	})
	c.Paint(8, 4, 25, 20, func(x, y int) (palette.Color, bool) {
		return foliage.At(x + y), canvas.Dist(x, y, 16, 12) <= 8
	})
	return nil
}

func drawOldTree(c *canvas.Canvas, reg *palette.Registry) error {
	trunk, foliage, err := treeSet(reg, "healthy")
	if err != nil {
		return err
	}
	c.Paint(14, 16, 19, 30, func(x, y int) (palette.Color, bool) {
		if x == 14 || x == 18 || y%3 == 0 {
			return trunk.Index(2), true
		}
		return trunk[0], true
	})
	c.Paint(8, 4, 25, 20, func(x, y int) (palette.Color, bool) {
		return foliage.At(x + y), (x+y)%3 != 0 && canvas.Dist(x, y, 16, 12) <= 8
	})
	return nil
}

func drawDeadTree(c *canvas.Canvas, reg *palette.Registry) error {
	trunk, foliage, err := treeSet(reg, "dead")
	if err != nil {
		return err
	}
	c.Paint(14, 16, 19, 30, func(x, y int) (palette.Color, bool) {
		return trunk.At(x + y), true
	})
	for _, br := range [][2]int{{10, 10}, {22, 12}, {12, 14}, {20, 16}} {
		bx, by := br[0], br[1]
		for i := 0; i < 3; i++ {
			c.SetPixel(bx+i, by, trunk.Index(1))
		}
		c.SetPixel(bx+2, by-1, foliage[0])
	}
	return nil
}

func drawBurntTree(c *canvas.Canvas, reg *palette.Registry) error {
	trunk, foliage, err := treeSet(reg, "burnt")
	if err != nil {
		return err
	}
	c.Paint(14, 16, 19, 30, func(x, y int) (palette.Color, bool) {
		return trunk.At(x + y), true
	})
	c.Paint(12, 8, 21, 16, func(x, y int) (palette.Color, bool) {
		return foliage.Index(1), (x+y)%4 == 0 && canvas.Dist(x, y, 16, 12) <= 4
	})
	return nil
}

// cropColors is a crop palette resolved for painting. Soil is the first
// seed color.
type cropColors struct {
	soil palette.Color
	palette.Set
}

type cropFunc func(c *canvas.Canvas, p cropColors)

// Seed, sprout and dead look alike for every crop; rows below the stalk
// line are soil in every stage after seed.
var crops = map[string]map[string]cropFunc{
	"wheat": {
		"seed":    cropSeed,
		"sprout":  cropSprout,
		"growing": wheatGrowing,
		"mature":  wheatMature,
		"dead":    cropDead,
	},
	"corn": {
		"seed":    cropSeed,
		"sprout":  cropSprout,
		"growing": cornGrowing,
		"mature":  cornMature,
		"dead":    cropDead,
	},
	"vegetables": {
		"seed":    cropSeed,
		"sprout":  cropSprout,
		"growing": vegetablesGrowing,
		"mature":  vegetablesMature,
		"dead":    cropDead,
	},
}

func cropPlant(crop string, fn cropFunc) plantFunc {
	return func(c *canvas.Canvas, reg *palette.Registry) error {
		s, err := reg.Set(palette.CropDomain(crop), cropStages...)
		if err != nil {
			return err
		}
		fn(c, cropColors{soil: s.Role("seed")[0], Set: s})
		return nil
	}
}

func cropSeed(c *canvas.Canvas, p cropColors) {
	c.Paint(14, 28, 19, 30, func(x, y int) (palette.Color, bool) {
		return p.soil, (x+y)%2 == 0
	})
}

func cropSprout(c *canvas.Canvas, p cropColors) {
	shoot := p.Role("sprout")[0]
	c.Paint(12, 22, 21, 30, func(x, y int) (palette.Color, bool) {
		if x%2 == 0 && y > 26 {
			return p.soil, true
		}
		return shoot, y < 28 && (x-16)%3 == 0
	})
}

func cropDead(c *canvas.Canvas, p cropColors) {
	wither := p.Role("dead")[0]
	c.Paint(10, 20, 23, 30, func(x, y int) (palette.Color, bool) {
		if y > 26 {
			return p.soil, true
		}
		return wither, (x+y)%3 == 0
	})
}

func wheatGrowing(c *canvas.Canvas, p cropColors) {
	grow := p.Role("growing")
	stalks(c, 10, 23, 2, 16, 24, p.soil, func(int, int) palette.Color { return grow[0] })
}

func wheatMature(c *canvas.Canvas, p cropColors) {
	ripe := p.Role("mature")
	stalks(c, 8, 25, 2, 12, 26, p.soil, func(_, y int) palette.Color {
		if y < 16 {
			return ripe[0]
		}
		return ripe.Index(1)
	})
}

func cornGrowing(c *canvas.Canvas, p cropColors) {
	grow := p.Role("growing")
	stalks(c, 12, 21, 3, 10, 26, p.soil, func(int, int) palette.Color { return grow[0] })
	for x := 12; x < 21; x += 3 {
		for y := 12; y < 20; y += 3 {
			c.SetPixel(x-1, y, grow.Index(1))
			c.SetPixel(x+1, y, grow.Index(1))
		}
	}
}

func cornMature(c *canvas.Canvas, p cropColors) {
	grow, ripe := p.Role("growing"), p.Role("mature")
	stalks(c, 12, 21, 3, 8, 26, p.soil, func(int, int) palette.Color { return grow[0] })
	for x := 12; x < 21; x += 3 {
		for _, y := range []int{14, 18} {
			box(c, x-1, y, x+2, y+1, ripe[0])
		}
	}
}

func vegetablesGrowing(c *canvas.Canvas, p cropColors) {
	grow := p.Role("growing")
	c.Paint(8, 18, 25, 30, func(x, y int) (palette.Color, bool) {
		if y > 26 {
			return p.soil, true
		}
		return grow[0], canvas.Dist(x, y, 16, 22) <= 6
	})
}

func vegetablesMature(c *canvas.Canvas, p cropColors) {
	ripe := p.Role("mature")
	c.Paint(8, 16, 25, 30, func(x, y int) (palette.Color, bool) {
		switch {
		case y > 26:
			return p.soil, true
		case canvas.Dist(x, y, 16, 22) > 7:
			return p.soil, false
		case (x+y)%3 == 0:
			return ripe.Index(1), true
		}
		return ripe[0], true
	})
}

// stalks draws vertical stalks every step columns in [x0,x1) from top down
// to row 29, with soil below soilLine.
func stalks(c *canvas.Canvas, x0, x1, step, top, soilLine int, soil palette.Color, stalk func(x, y int) palette.Color) {
	for x := x0; x < x1; x += step {
		for y := top; y < 30; y++ {
			if y > soilLine {
				c.SetPixel(x, y, soil)
			} else {
				c.SetPixel(x, y, stalk(x, y))
			}
		}
	}
}

func grassPatch(state string, top int, dense func(x, y int) bool) plantFunc {
	return func(c *canvas.Canvas, reg *palette.Registry) error {
		p, err := reg.Get(palette.DomainGrass, state)
		if err != nil {
			return err
		}
		c.Paint(0, top, 32, 32, func(x, y int) (palette.Color, bool) {
			return p.At(x + y), dense(x, y)
		})
		if state == "healthy" {
			for i := 0; i < 20; i++ {
				gx, gy := (i*7)%32, 20+(i*3)%8
				box(c, gx, gy, gx+1, min(gy+3, 32), p[0])
			}
		}
		return nil
	}
}

func drawFlowersHealthy(c *canvas.Canvas, reg *palette.Registry) error {
	p, err := reg.Get(palette.DomainFlowers, "healthy")
	if err != nil {
		return err
	}
	stem := p.Index(3)
	for i, f := range [][2]int{{8, 20}, {16, 18}, {24, 22}, {12, 26}, {20, 24}} {
		fx, fy := f[0], f[1]
		box(c, fx, fy, fx+1, min(fy+8, 32), stem)
		c.FillDiamond(fx, fy, 2, p.At(i%3))
		c.SetPixel(fx, fy, palette.RGB(255, 255, 0))
	}
	return nil
}

func drawFlowersWilted(c *canvas.Canvas, reg *palette.Registry) error {
	p, err := reg.Get(palette.DomainFlowers, "wilted")
	if err != nil {
		return err
	}
	for _, f := range [][2]int{{10, 24}, {18, 26}, {14, 28}} {
		fx, fy := f[0], f[1]
		for y := fy; y < min(fy+6, 32); y++ {
			c.SetPixel(fx+(y-fy), y, p[0])
		}
		c.SetPixel(fx, fy, p.Index(1))
		c.SetPixel(fx-1, fy+1, p.Index(1))
	}
	return nil
}

func drawFlowersDead(c *canvas.Canvas, reg *palette.Registry) error {
	p, err := reg.Get(palette.DomainFlowers, "dead")
	if err != nil {
		return err
	}
	for x := 8; x < 25; x += 4 {
		for y := 26; y < 30; y++ {
			if (x+y)%3 == 0 {
				c.SetPixel(x, y, p[0])
			}
		}
	}
	return nil
}

// bush draws a round shrub from the foliage of the matching tree state.
func bush(state string, x0, y0, x1, y1 int, r float64, sparse bool) plantFunc {
	return func(c *canvas.Canvas, reg *palette.Registry) error {
		_, foliage, err := treeSet(reg, state)
		if err != nil {
			return err
		}
		c.Paint(x0, y0, x1, y1, func(x, y int) (palette.Color, bool) {
			if sparse && (x+y)%2 != 0 {
				return foliage[0], false
			}
			return foliage.At(x + y), canvas.Dist(x, y, 16, 22) <= r
		})
		return nil
	}
}
