// Package compose paints sprites onto a canvas.
//
// Each (category, domain, subtype) has exactly one composer, registered in a
// closed table. Lookup is the only way in: an unregistered combination is a
// lookup miss and comes back as *UnknownVariantError before anything is
// drawn.
package compose

import (
	"fmt"
	"sort"

	"github.com/1siamBot/spriteforge/engine/anim"
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// Category is a top-level sprite family.
type Category string

const (
	Units      Category = "units"
	Buildings  Category = "buildings"
	Terrain    Category = "terrain"
	Vegetation Category = "vegetation"
	Effects    Category = "effects"
	Fire       Category = "fire"
)

// Categories in catalog order.
var Categories = []Category{Units, Buildings, Terrain, Vegetation, Effects, Fire}

// UnknownVariantError reports a combination with no registered composer.
type UnknownVariantError struct {
	Category Category
	Domain   string
	Subtype  string
	Frame    int
}

func (e *UnknownVariantError) Error() string {
	name := e.Subtype
	if e.Domain != "" {
		name = e.Domain + "/" + e.Subtype
	}
	return fmt.Sprintf("compose: unknown %s variant %q frame %d", e.Category, name, e.Frame)
}

type drawFunc func(c *canvas.Canvas, reg *palette.Registry, frame int) error

type entry struct {
	width, height int
	effect        anim.Effect
	animated      bool
	draw          drawFunc
}

type key struct {
	category Category
	domain   string
	subtype  string
}

// Variant is a resolved composer bound to one frame.
type Variant struct {
	Category Category
	Domain   string
	Subtype  string
	Frame    int
	Width    int
	Height   int

	e entry
}

// Frames is the sequence length for animated variants and 0 for still ones.
func (v Variant) Frames() int {
	if !v.e.animated {
		return 0
	}
	return v.e.effect.FrameCount()
}

// NewCanvas allocates a blank canvas of the variant's logical size.
func (v Variant) NewCanvas(scale int) (*canvas.Canvas, error) {
	return canvas.New(v.Width, v.Height, scale)
}

// Draw paints the variant onto c. Palette lookups are resolved before the
// first pixel is written, so a *palette.MissingPaletteError leaves c blank.
func (v Variant) Draw(c *canvas.Canvas, reg *palette.Registry) error {
	return v.e.draw(c, reg, v.Frame)
}

var table = map[key]entry{}

func register(cat Category, domain, subtype string, w, h int, fn drawFunc) {
	table[key{cat, domain, subtype}] = entry{width: w, height: h, draw: fn}
}

func registerAnimated(cat Category, domain, subtype string, w, h int, e anim.Effect, fn drawFunc) {
	table[key{cat, domain, subtype}] = entry{width: w, height: h, effect: e, animated: true, draw: fn}
}

// Lookup resolves a composer. Still sprites only accept frame 0; animated
// ones accept frames inside their effect's sequence.
func Lookup(cat Category, domain, subtype string, frame int) (Variant, error) {
	e, ok := table[key{cat, domain, subtype}]
	miss := &UnknownVariantError{Category: cat, Domain: domain, Subtype: subtype, Frame: frame}
	if !ok {
		return Variant{}, miss
	}
	if e.animated {
		if frame < 0 || frame >= e.effect.FrameCount() {
			return Variant{}, miss
		}
	} else if frame != 0 {
		return Variant{}, miss
	}
	return Variant{
		Category: cat,
		Domain:   domain,
		Subtype:  subtype,
		Frame:    frame,
		Width:    e.width,
		Height:   e.height,
		e:        e,
	}, nil
}

// Known lists every registered (category, domain, subtype) with its frame
// count, sorted. It is the closed set Lookup accepts.
func Known() []Variant {
	out := make([]Variant, 0, len(table))
	for k, e := range table {
		v := Variant{Category: k.category, Domain: k.domain, Subtype: k.subtype, Width: e.width, Height: e.height, e: e}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Domain != b.Domain {
			return a.Domain < b.Domain
		}
		return a.Subtype < b.Subtype
	})
	return out
}

func init() {
	registerUnits()
	registerBuildings()
	registerTerrain()
	registerVegetation()
	registerEffects()
	registerFire()
}

// Fixed accent colors shared by several composers.
var (
	black    = palette.RGB(0, 0, 0)
	white    = palette.RGB(255, 255, 255)
	gold     = palette.RGB(255, 215, 0)
	wood     = palette.RGB(101, 67, 33)
	darkWood = palette.RGB(80, 53, 26)
	iron     = palette.RGB(80, 80, 80)
	shadow   = palette.RGB(40, 40, 40)
	water    = palette.RGB(65, 105, 225)
	pool     = palette.RGB(100, 150, 255)
	glass    = palette.RGB(150, 200, 255)
	green    = palette.RGB(0, 255, 0)
	cyan     = palette.RGB(0, 255, 255)
	orange   = palette.RGB(255, 165, 0)
)

// box fills the half-open rectangle [x0,x1)×[y0,y1).
func box(c *canvas.Canvas, x0, y0, x1, y1 int, col palette.Color) {
	c.FillRect(x0, y0, x1-x0, y1-y0, col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
