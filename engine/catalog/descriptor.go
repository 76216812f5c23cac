// Package catalog enumerates every sprite the generator produces and writes
// them to disk.
package catalog

import (
	"fmt"
	"path"
	"strings"

	"github.com/1siamBot/spriteforge/engine/anim"
	"github.com/1siamBot/spriteforge/engine/canvas"
	"github.com/1siamBot/spriteforge/engine/compose"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// Descriptor identifies one output image. Domain is the era for units and
// buildings, the plant kind for vegetation, and empty otherwise. Subtype is
// the unit or building type, terrain type, growth stage or effect name.
type Descriptor struct {
	Category compose.Category
	Domain   string
	Subtype  string
	Frame    int
}

// Path is the slash-separated location of the image relative to the output
// root.
func (d Descriptor) Path() string {
	switch d.Category {
	case compose.Units:
		return path.Join(d.Domain, "unit_"+d.Subtype+".png")
	case compose.Buildings:
		return path.Join(d.Domain, "building_"+d.Subtype+".png")
	case compose.Terrain:
		return path.Join("terrain", d.Subtype+".png")
	case compose.Vegetation:
		return path.Join("vegetation", d.Domain+"_"+d.Subtype+".png")
	case compose.Effects:
		return fmt.Sprintf("effects/%s_frame_%d.png", d.Subtype, d.Frame)
	case compose.Fire:
		if _, ok := anim.FireIntensity(d.Subtype); ok {
			return fmt.Sprintf("fire/fire_%s_frame_%d.png", d.Subtype, d.Frame)
		}
		return fmt.Sprintf("fire/%s_frame_%d.png", d.Subtype, d.Frame)
	}
	return ""
}

// Key is Path without its extension. The digest ledger stores rows under it.
func (d Descriptor) Key() string {
	return strings.TrimSuffix(d.Path(), ".png")
}

func (d Descriptor) String() string { return d.Key() }

// group is the label progress is logged under: the era for per-era
// categories, the category otherwise.
func (d Descriptor) group() string {
	if d.Category == compose.Units || d.Category == compose.Buildings {
		return d.Domain
	}
	return string(d.Category)
}

// All returns the fixed catalog in generation order: per era its units then
// its buildings, followed by terrain, effects, vegetation and fire.
func All() []Descriptor {
	var out []Descriptor
	for _, era := range palette.Eras {
		for _, t := range compose.UnitTypes {
			out = append(out, Descriptor{Category: compose.Units, Domain: era, Subtype: t})
		}
		for _, t := range compose.BuildingTypes[era] {
			out = append(out, Descriptor{Category: compose.Buildings, Domain: era, Subtype: t})
		}
	}
	for _, t := range compose.TerrainTypes {
		out = append(out, Descriptor{Category: compose.Terrain, Subtype: t})
	}
	out = appendFrames(out, compose.Effects, compose.EffectTypes)
	for _, kind := range compose.VegetationKinds {
		for _, stage := range compose.VegetationStages[kind] {
			out = append(out, Descriptor{Category: compose.Vegetation, Domain: kind, Subtype: stage})
		}
	}
	return appendFrames(out, compose.Fire, compose.FireSubtypes)
}

func appendFrames(out []Descriptor, cat compose.Category, subtypes []string) []Descriptor {
	for _, s := range subtypes {
		v, err := compose.Lookup(cat, "", s, 0)
		if err != nil {
			continue
		}
		for f := 0; f < v.Frames(); f++ {
			out = append(out, Descriptor{Category: cat, Subtype: s, Frame: f})
		}
	}
	return out
}

// Scales holds the upscale factor per category. Units default to 2 and
// everything else to 1.
type Scales struct {
	Unit    int
	Default int
}

// DefaultScales returns the factors used when no override is given.
func DefaultScales() Scales {
	return Scales{Unit: 2, Default: 1}
}

// For returns the factor applied to cat.
func (s Scales) For(cat compose.Category) int {
	if cat == compose.Units {
		return s.Unit
	}
	return s.Default
}

// Render draws d onto a fresh canvas. An unknown descriptor fails with
// *compose.UnknownVariantError before a canvas is allocated.
func Render(reg *palette.Registry, d Descriptor, scales Scales) (*canvas.Canvas, error) {
	v, err := compose.Lookup(d.Category, d.Domain, d.Subtype, d.Frame)
	if err != nil {
		return nil, err
	}
	c, err := v.NewCanvas(scales.For(d.Category))
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", d, err)
	}
	if err := v.Draw(c, reg); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", d, err)
	}
	return c, nil
}
