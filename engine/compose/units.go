package compose

import (
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// UnitTypes every era provides.
var UnitTypes = []string{"basic", "leader", "worker", "warrior"}

var unitAccents = map[string]func(c *canvas.Canvas, s palette.Set){
	"basic":   func(*canvas.Canvas, palette.Set) {},
	"leader":  drawLeader,
	"worker":  drawWorker,
	"warrior": drawWarrior,
}

func registerUnits() {
	for _, era := range palette.Eras {
		for _, t := range UnitTypes {
			accent := unitAccents[t]
			register(Units, era, t, 32, 32, func(c *canvas.Canvas, reg *palette.Registry, _ int) error {
				s, err := reg.Set(era, palette.RoleSkin, palette.RoleClothing, palette.RoleHair, palette.RoleTools)
				if err != nil {
					return err
				}
				drawHumanoid(c, s)
				accent(c, s)
				return nil
			})
		}
	}
}

func drawHumanoid(c *canvas.Canvas, s palette.Set) {
	skin := s.Role(palette.RoleSkin)[0]
	cloth := s.Role(palette.RoleClothing)

	c.FillCircleIn(16, 8, 4, 12, 4, 20, 12, skin)

	hair := s.Role(palette.RoleHair)[0]
	c.Paint(12, 2, 20, 8, func(x, y int) (palette.Color, bool) {
		return hair, y < 7 && canvas.Dist(x, y, 16, 5) <= 4.5
	})

	c.SetPixel(14, 8, black)
	c.SetPixel(18, 8, black)

	box(c, 10, 11, 22, 20, cloth[0])

	// Arms widen below the elbow; the forearm from y=18 down is bare skin.
	arm := func(y int) (int, palette.Color) {
		w := 2
		if y >= 16 {
			w = 3
		}
		if y < 18 {
			return w, cloth[0]
		}
		return w, skin
	}
	c.Paint(6, 12, 11, 22, func(x, y int) (palette.Color, bool) {
		w, col := arm(y)
		return col, x >= 10-w
	})
	c.Paint(21, 12, 26, 22, func(x, y int) (palette.Color, bool) {
		w, col := arm(y)
		return col, x <= 21+w
	})

	leg := cloth.Index(1)
	box(c, 11, 19, 16, 28, leg)
	box(c, 16, 19, 21, 28, leg)

	foot := cloth.Index(2)
	box(c, 10, 27, 16, 30, foot)
	box(c, 16, 27, 22, 30, foot)
}

func drawLeader(c *canvas.Canvas, _ palette.Set) {
	box(c, 12, 1, 20, 4, gold)
	for _, px := range []int{13, 16, 19} {
		c.SetPixel(px, 0, gold)
		c.SetPixel(px, -1, gold)
	}
	c.SetPixel(16, 2, palette.RGB(255, 0, 0))

	cape := palette.RGB(139, 0, 139)
	c.Paint(8, 12, 24, 26, func(x, y int) (palette.Color, bool) {
		if x >= 10 && x <= 21 {
			return cape, false
		}
		return cape, y-12 < 26-y-abs(x-16)
	})
}

func drawWarrior(c *canvas.Canvas, s palette.Set) {
	weapon := s.Role(palette.RoleTools)[0]
	box(c, 4, 4, 6, 24, weapon)
	box(c, 4, 0, 6, 5, weapon.Offset(50))

	armor := s.Role(palette.RoleClothing)[0].Offset(-30)
	box(c, 10, 11, 22, 18, armor)
	box(c, 8, 11, 11, 14, armor)
	box(c, 21, 11, 24, 14, armor)

	helmet := palette.RGB(120, 120, 120)
	c.Paint(12, 2, 20, 6, func(x, y int) (palette.Color, bool) {
		return helmet, canvas.Dist(x, y, 16, 5) <= 4.5
	})
}

func drawWorker(c *canvas.Canvas, s palette.Set) {
	tools := s.Role(palette.RoleTools)
	box(c, 24, 12, 28, 22, tools[0])
	box(c, 23, 8, 30, 13, tools.Index(1))

	box(c, 11, 16, 21, 24, palette.RGB(139, 90, 43))
	box(c, 10, 19, 22, 21, iron)
}
