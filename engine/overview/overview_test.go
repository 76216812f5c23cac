package overview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/spriteforge/engine/atlas"
	"github.com/1siamBot/spriteforge/engine/catalog"
	"github.com/1siamBot/spriteforge/engine/palette"
)

func entries(n, size int) []atlas.Entry {
	out := make([]atlas.Entry, n)
	for i := range out {
		out[i] = atlas.Entry{Name: "e", File: "terrain/e.png", Size: [2]int{size, size}}
	}
	return out
}

func TestLayoutWraps(t *testing.T) {
	// 200 wide: 10 margin + 32 + 20 + 32 + 20 + 32 = 146, a fourth one
	// would end at 198 > 190.
	items, heads, height := layout([]group{{"TERRAIN", entries(5, 32)}}, 200)
	require.Len(t, heads, 1)
	require.Len(t, items, 5)

	assert.Equal(t, items[0].at.Y, items[2].at.Y)
	assert.Greater(t, items[3].at.Y, items[2].at.Y)
	assert.Equal(t, margin, items[3].at.X)
	assert.Greater(t, height, items[4].at.Y+32)
}

func TestLayoutSkipsEmptySections(t *testing.T) {
	m := &atlas.Manifest{
		Units:   map[string][]atlas.Entry{"space": entries(1, 32), "modern": {}},
		Terrain: entries(2, 32),
	}
	var titles []string
	for _, g := range groups(m) {
		titles = append(titles, g.title)
	}
	assert.Equal(t, []string{"SPACE UNITS", "TERRAIN"}, titles)
}

func TestWriteSheet(t *testing.T) {
	root := t.TempDir()
	l, _ := test.NewNullLogger()
	_, err := catalog.NewGenerator(palette.New(), catalog.WithLogger(l)).GenerateAll(root)
	require.NoError(t, err)
	m, err := atlas.Build(root)
	require.NoError(t, err)

	m.Terrain = append(m.Terrain, atlas.Entry{Name: "lava", File: "terrain/lava.png", Size: [2]int{32, 32}})
	skipped, err := Write(root, m, 900)
	require.NoError(t, err)
	assert.Equal(t, []string{"terrain/lava.png"}, skipped)

	f, err := os.Open(filepath.Join(root, FileName))
	require.NoError(t, err)
	defer f.Close()
	sheet, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 900, sheet.Bounds().Dx())

	// The first thumbnail (primitive basic unit) is drawn at logical size,
	// so the sheet pixel matches the sprite's top-left block.
	items, _, _ := layout(groups(m), 900)
	first := items[0]
	sprite := decode(t, filepath.Join(root, filepath.FromSlash(first.entry.File)))
	sx := sprite.Bounds().Dx() / first.entry.Size[0]
	for _, p := range []image.Point{{16, 16}, {15, 28}} {
		want := sprite.At(p.X*sx, p.Y*sx)
		_, _, _, a := want.RGBA()
		if a == 0xffff {
			r1, g1, b1, _ := want.RGBA()
			r2, g2, b2, _ := sheet.At(first.at.X+p.X, first.at.Y+p.Y).RGBA()
			assert.Equal(t, [3]uint32{r1, g1, b1}, [3]uint32{r2, g2, b2}, "%v", p)
		}
	}
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.NoError(t, err)
	return m
}
