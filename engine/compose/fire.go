package compose

import (
	"github.com/1siamBot/spriteforge/engine/anim"
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// FireSubtypes lists the fire category in catalog order: the five flame
// intensities followed by the ember and smoke sequences.
var FireSubtypes = append(append([]string(nil), anim.Intensities...), "ember", "smoke")

func registerFire() {
	for _, name := range anim.Intensities {
		e, _ := anim.FireIntensity(name)
		registerAnimated(Fire, "", name, 48, 48, e, func(c *canvas.Canvas, reg *palette.Registry, frame int) error {
			p, err := anim.Compute(e, frame)
			if err != nil {
				return err
			}
			return drawFlame(c, reg, name, p)
		})
	}
	registerAnimated(Fire, "", "ember", 32, 32, anim.Embers, func(c *canvas.Canvas, reg *palette.Registry, frame int) error {
		p, err := anim.Compute(anim.Embers, frame)
		if err != nil {
			return err
		}
		return drawEmbers(c, reg, p)
	})
	registerAnimated(Fire, "", "smoke", 32, 32, anim.FireSmoke, func(c *canvas.Canvas, reg *palette.Registry, frame int) error {
		p, err := anim.Compute(anim.FireSmoke, frame)
		if err != nil {
			return err
		}
		return drawDriftSmoke(c, reg, p)
	})
}

// drawFlame paints a flame tapering from its base row upward. The inner
// quarter of each row uses the core palette, the next quarter the outer
// palette, and the ragged edge is sparse.
func drawFlame(c *canvas.Canvas, reg *palette.Registry, intensity string, p anim.Params) error {
	s, err := reg.Set(palette.FireDomain(intensity), "core", "outer", "sparks")
	if err != nil {
		return err
	}
	core, outer, sparks := s.Role("core"), s.Role("outer"), s.Role("sparks")
	cx, cy := p.Center.X, p.Center.Y

	for y := cy; y > max(0, cy-p.Height); y-- {
		w := p.Width * (cy - y + 1) / p.Height
		for x := cx - w/2; x <= cx+w/2; x++ {
			hash := x + y + p.Cycle
			switch d := abs(x - cx); {
			case d < w/4:
				c.SetPixel(x, y, core.At(hash))
			case d < w/2:
				c.SetPixel(x, y, outer.At(hash))
			case hash%3 == 0:
				c.SetPixel(x, y, outer[0])
			}
		}
	}

	for _, sp := range p.Sparks {
		c.SetPixel(sp.Pos.X, sp.Pos.Y, sparks.At(sp.Index))
	}
	for _, tip := range p.Tips {
		c.SetPixel(tip.X, tip.Y, outer[0])
	}
	return nil
}

func drawEmbers(c *canvas.Canvas, reg *palette.Registry, p anim.Params) error {
	s, err := reg.Set(palette.DomainEmbers, string(anim.Hot), string(anim.Warm), string(anim.Cool))
	if err != nil {
		return err
	}
	for _, em := range p.Embers {
		col := s.At(string(em.Heat), em.Index)
		glow := col.Offset(-50)
		for dy := -em.Size; dy <= em.Size; dy++ {
			for dx := -em.Size; dx <= em.Size; dx++ {
				switch abs(dx) + abs(dy) {
				case 0:
					c.SetPixel(em.Pos.X+dx, em.Pos.Y+dy, col)
				case 1:
					c.SetPixel(em.Pos.X+dx, em.Pos.Y+dy, glow)
				}
			}
		}
	}
	return nil
}

// drawDriftSmoke paints a column of smoke that thins from a dense base to
// wisps at the top, shifted sideways by a sine wave and a per-frame drift.
func drawDriftSmoke(c *canvas.Canvas, reg *palette.Registry, p anim.Params) error {
	s, err := reg.Set(palette.DomainSmoke, "thick", "light", "wispy")
	if err != nil {
		return err
	}
	size := c.Width()
	for y := 0; y < c.Height(); y++ {
		density := float64(max(0, size-y)) / float64(size)
		for x := 0; x < size; x++ {
			sx := x + p.Wave(x) + p.Drift
			if sx < 0 || sx >= size {
				continue
			}
			d := abs(x - size/2)
			hash := x + y + p.Cycle
			switch {
			case density > 0.7 && d < 8:
				if hash%4 == 0 {
					c.SetPixel(sx, y, s.At("thick", x+y))
				}
			case density > 0.4 && d < 12:
				if hash%3 == 0 {
					c.SetPixel(sx, y, s.At("light", x+y))
				}
			case density > 0.1 && d < 16:
				if hash%5 == 0 {
					c.SetPixel(sx, y, s.At("wispy", x+y))
				}
			}
		}
	}
	return nil
}
