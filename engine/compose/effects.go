package compose

import (
	"math"

	"github.com/1siamBot/spriteforge/engine/anim"
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// EffectTypes in catalog order.
var EffectTypes = []string{"explosion", "smoke", "sparkle"}

var effectComposers = map[string]struct {
	effect anim.Effect
	draw   func(c *canvas.Canvas, reg *palette.Registry, p anim.Params) error
}{
	"explosion": {anim.Explosion, drawExplosion},
	"smoke":     {anim.SmokePuff, drawSmokePuff},
	"sparkle":   {anim.Sparkle, drawSparkle},
}

func registerEffects() {
	for name, ec := range effectComposers {
		registerAnimated(Effects, "", name, 48, 48, ec.effect, func(c *canvas.Canvas, reg *palette.Registry, frame int) error {
			p, err := anim.Compute(ec.effect, frame)
			if err != nil {
				return err
			}
			return ec.draw(c, reg, p)
		})
	}
}

func drawExplosion(c *canvas.Canvas, reg *palette.Registry, p anim.Params) error {
	s, err := reg.Set(palette.DomainEffects, "explosion", "debris")
	if err != nil {
		return err
	}
	rings := s.Role("explosion")
	debris := s.Role("debris")[0]
	last := len(rings) - 1
	r := float64(p.Radius)

	for x := 0; x < c.Width(); x++ {
		for y := 0; y < c.Height(); y++ {
			d := canvas.Dist(x, y, p.Center.X, p.Center.Y)
			if d <= r {
				i := min(int(d/4), last)
				if p.Shimmer && (x+y)%3 == 0 {
					i = min(i+1, last)
				}
				c.SetPixel(x, y, rings[i])
			}
			if p.Debris && d > r-4 && d < r+2 && (x*y+p.Frame)%5 == 0 {
				c.SetPixel(x, y, debris)
			}
		}
	}
	return nil
}

// drawSmokePuff draws three rising clouds. Alpha falls off toward each
// cloud's rim and across the sequence.
func drawSmokePuff(c *canvas.Canvas, reg *palette.Registry, p anim.Params) error {
	base, err := reg.Get(palette.DomainEffects, "smoke")
	if err != nil {
		return err
	}
	r := float64(p.CloudRadius)
	for _, cl := range p.Clouds {
		for x := max(0, cl.X-p.CloudRadius); x < min(c.Width(), cl.X+p.CloudRadius); x++ {
			for y := max(0, cl.Y-p.CloudRadius); y < min(c.Height(), cl.Y+p.CloudRadius); y++ {
				d := canvas.Dist(x, y, cl.X, cl.Y)
				if d > r {
					continue
				}
				alpha := int(255 * (1 - d/r) * p.Fade)
				if alpha <= 0 {
					continue
				}
				c.SetPixelAlpha(x, y, base[0].Offset(int(d/r*40)), uint8(alpha))
			}
		}
	}
	return nil
}

func drawSparkle(c *canvas.Canvas, reg *palette.Registry, p anim.Params) error {
	pal, err := reg.Get(palette.DomainEffects, "sparkle")
	if err != nil {
		return err
	}
	bright, star := pal[0], pal.Index(1)
	cx, cy := p.Center.X, p.Center.Y
	core := func() {
		box(c, cx-p.Core, cy-p.Core, cx+p.Core+1, cy+p.Core+1, bright)
	}

	switch p.Frame {
	case 0:
		core()
	case 1:
		core()
		for i := 1; i <= p.Reach; i++ {
			c.SetPixel(cx-i, cy, star)
			c.SetPixel(cx+i, cy, star)
			c.SetPixel(cx, cy-i, star)
			c.SetPixel(cx, cy+i, star)
		}
	case 2:
		for i := -p.Reach; i <= p.Reach; i++ {
			if abs(i) > 2 {
				c.SetPixel(cx+i, cy, star)
				c.SetPixel(cx, cy+i, star)
			}
			if abs(i) > 4 && abs(i) < 10 {
				c.SetPixel(cx+i, cy+i, star)
				c.SetPixel(cx+i, cy-i, star)
			}
		}
		core()
	case 3:
		r, d := p.Reach, int(math.Round(float64(p.Reach)*0.6))
		for _, o := range [][2]int{{0, 0}, {-d, -d}, {d, -d}, {-d, d}, {d, d}, {-r, 0}, {r, 0}, {0, -r}, {0, r}} {
			c.SetPixel(cx+o[0], cy+o[1], bright)
		}
	}
	return nil
}
