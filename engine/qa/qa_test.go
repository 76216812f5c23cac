package qa

import (
	"image"
	"image/color"
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

func writePNG(t *testing.T, root, rel string, m image.Image) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	f, err := os.Create(p)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func solid(w, h int, a uint8) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(m.Pix); i += 4 {
		m.Pix[i-3], m.Pix[i] = 200, a
	}
	return m
}

func TestGeneratedTreePasses(t *testing.T) {
	root := t.TempDir()
	l, _ := test.NewNullLogger()
	_, err := catalog.NewGenerator(palette.New(), catalog.WithLogger(l)).GenerateAll(root)
	require.NoError(t, err)
	m, err := atlas.Build(root)
	require.NoError(t, err)
	require.NoError(t, m.Write(root))

	// A contact sheet at the root is not an orphan.
	writePNG(t, root, "overview.png", solid(4, 4, 255))

	rep, err := Check(root, m)
	require.NoError(t, err)
	assert.True(t, rep.OK(), "%v", rep.Issues)
	assert.Equal(t, 137, rep.Checked)
	assert.Equal(t, 137, rep.Good)
}

func TestIssues(t *testing.T) {
	root := t.TempDir()
	writePNG(t, root, "terrain/grass.png", solid(64, 64, 255))
	writePNG(t, root, "terrain/snow.png", solid(32, 32, 0))
	writePNG(t, root, "terrain/water.png", solid(48, 48, 255))
	writePNG(t, root, "terrain/desert.png", solid(64, 32, 255))
	require.NoError(t, os.WriteFile(filepath.Join(root, "terrain", "swamp.png"), []byte("not a png"), 0o644))
	writePNG(t, root, "fire/stray.png", solid(32, 32, 255))

	m := &atlas.Manifest{Terrain: []atlas.Entry{
		{Name: "grass", File: "terrain/grass.png", Size: [2]int{32, 32}},
		{Name: "snow", File: "terrain/snow.png", Size: [2]int{32, 32}},
		{Name: "water", File: "terrain/water.png", Size: [2]int{32, 32}},
		{Name: "desert", File: "terrain/desert.png", Size: [2]int{32, 32}},
		{Name: "swamp", File: "terrain/swamp.png", Size: [2]int{32, 32}},
		{Name: "forest", File: "terrain/forest.png", Size: [2]int{32, 32}},
	}}

	rep, err := Check(root, m)
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Checked)
	assert.Equal(t, 1, rep.Good)

	kinds := map[string]Kind{}
	for _, is := range rep.Issues {
		kinds[is.File] = is.Kind
	}
	assert.Equal(t, map[string]Kind{
		"terrain/snow.png":   Transparent,
		"terrain/water.png":  BadSize,
		"terrain/desert.png": BadSize,
		"terrain/swamp.png":  Undecodable,
		"terrain/forest.png": Missing,
		"fire/stray.png":     Orphan,
	}, kinds)
}

func TestPalettedTransparency(t *testing.T) {
	root := t.TempDir()
	pm := image.NewPaletted(image.Rect(0, 0, 32, 32), color.Palette{color.Transparent, color.White})
	writePNG(t, root, "fire/ember_frame_0.png", pm)

	m := &atlas.Manifest{Fire: []atlas.Entry{{Name: "ember_frame_0", File: "fire/ember_frame_0.png", Size: [2]int{32, 32}}}}
	rep, err := Check(root, m)
	require.NoError(t, err)
	require.Len(t, rep.Issues, 1)
	assert.Equal(t, Transparent, rep.Issues[0].Kind)

	pm.SetColorIndex(3, 3, 1)
	writePNG(t, root, "fire/ember_frame_0.png", pm)
	rep, err = Check(root, m)
	require.NoError(t, err)
	assert.True(t, rep.OK())
}
