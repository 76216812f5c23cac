// Package overview draws a labelled contact sheet of every sprite in a
// manifest.
package overview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/1siamBot/spriteforge/engine/atlas"
	"github.com/1siamBot/spriteforge/engine/palette"
)

// FileName is the sheet's name inside the output root.
const FileName = "overview.png"

const (
	margin     = 10
	gap        = 20
	lineHeight = 16
	labelSpace = 14
	sectionGap = 12
	glyphWidth = 7
)

var (
	background = color.RGBA{50, 50, 50, 255}
	titleColor = color.RGBA{255, 255, 255, 255}
	groupColor = color.RGBA{200, 200, 200, 255}
	labelColor = color.RGBA{150, 150, 150, 255}
)

type group struct {
	title   string
	entries []atlas.Entry
}

// groups orders the manifest the way the sheet shows it: each era's units
// and buildings, then terrain, vegetation, effects and fire.
func groups(m *atlas.Manifest) []group {
	var out []group
	for _, era := range palette.Eras {
		if len(m.Units[era]) > 0 {
			out = append(out, group{strings.ToUpper(era) + " UNITS", m.Units[era]})
		}
		if len(m.Buildings[era]) > 0 {
			out = append(out, group{strings.ToUpper(era) + " BUILDINGS", m.Buildings[era]})
		}
	}
	for _, g := range []group{
		{"TERRAIN", m.Terrain},
		{"VEGETATION", m.Vegetation},
		{"EFFECTS", m.Effects},
		{"FIRE", m.Fire},
	} {
		if len(g.entries) > 0 {
			out = append(out, g)
		}
	}
	return out
}

type placed struct {
	entry atlas.Entry
	at    image.Point
}

type heading struct {
	text string
	at   image.Point
}

// layout flows each group's thumbnails left to right, wrapping at width.
// Thumbnails are drawn at their logical size.
func layout(gs []group, width int) ([]placed, []heading, int) {
	var items []placed
	var heads []heading
	y := margin + lineHeight

	for _, g := range gs {
		heads = append(heads, heading{g.title, image.Pt(margin, y)})
		y += lineHeight

		x, rowH := margin, 0
		for _, e := range g.entries {
			w := e.Size[0]
			if x > margin && x+w > width-margin {
				x = margin
				y += rowH + labelSpace
				rowH = 0
			}
			items = append(items, placed{e, image.Pt(x, y)})
			x += w + gap
			rowH = max(rowH, e.Size[1])
		}
		y += rowH + labelSpace + sectionGap
	}
	return items, heads, y + margin
}

func label(e atlas.Entry) string {
	name := e.Name
	if n := max(3, (e.Size[0]+gap)/glyphWidth-1); len(name) > n {
		name = name[:n]
	}
	return name
}

func text(dst *image.RGBA, s string, c color.Color, x, baseline int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// Render draws the sheet for the sprites below root. Entries whose file
// cannot be read are left blank and returned in skipped.
func Render(root string, m *atlas.Manifest, width int) (sheet *image.RGBA, skipped []string) {
	items, heads, height := layout(groups(m), width)

	sheet = image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(sheet, sheet.Bounds(), image.NewUniform(background), image.Point{}, xdraw.Src)
	text(sheet, fmt.Sprintf("Sprite overview: %d sprites", len(items)), titleColor, margin, margin+12)

	for _, h := range heads {
		text(sheet, h.text, groupColor, h.at.X, h.at.Y+12)
	}
	for _, it := range items {
		src, err := load(filepath.Join(root, filepath.FromSlash(it.entry.File)))
		if err != nil {
			skipped = append(skipped, it.entry.File)
			continue
		}
		dst := image.Rectangle{Min: it.at, Max: it.at.Add(image.Pt(it.entry.Size[0], it.entry.Size[1]))}
		xdraw.NearestNeighbor.Scale(sheet, dst, src, src.Bounds(), xdraw.Over, nil)
		text(sheet, label(it.entry), labelColor, it.at.X, dst.Max.Y+12)
	}
	return sheet, skipped
}

// Write renders the sheet and stores it as root/overview.png.
func Write(root string, m *atlas.Manifest, width int) ([]string, error) {
	sheet, skipped := Render(root, m, width)

	f, err := os.Create(filepath.Join(root, FileName))
	if err != nil {
		return skipped, err
	}
	if err := png.Encode(f, sheet); err != nil {
		f.Close()
		return skipped, err
	}
	return skipped, f.Close()
}
