package catalog

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/spriteforge/engine/compose"
	"github.com/1siamBot/spriteforge/engine/palette"
)

type memRecorder struct {
	mu   sync.Mutex
	rows map[string]string
}

func (m *memRecorder) Record(key, digest string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows == nil {
		m.rows = map[string]string{}
	}
	prev := m.rows[key]
	m.rows[key] = digest
	return prev, nil
}

func quietGenerator(t *testing.T, reg *palette.Registry, opts ...Option) (*Generator, *test.Hook) {
	t.Helper()
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return NewGenerator(reg, append([]Option{WithLogger(l)}, opts...)...), hook
}

func TestAllIsClosedAndUnique(t *testing.T) {
	all := All()
	require.Len(t, all, 137)

	seen := map[string]bool{}
	counts := map[compose.Category]int{}
	for _, d := range all {
		p := d.Path()
		require.NotEmpty(t, p)
		require.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true
		counts[d.Category]++

		_, err := compose.Lookup(d.Category, d.Domain, d.Subtype, d.Frame)
		require.NoError(t, err, d.String())
	}
	assert.Equal(t, map[compose.Category]int{
		compose.Units:      28,
		compose.Buildings:  24,
		compose.Terrain:    8,
		compose.Effects:    12,
		compose.Vegetation: 31,
		compose.Fire:       34,
	}, counts)
}

func TestDescriptorPath(t *testing.T) {
	tests := []struct {
		d    Descriptor
		want string
	}{
		{Descriptor{Category: compose.Units, Domain: "primitive", Subtype: "leader"}, "primitive/unit_leader.png"},
		{Descriptor{Category: compose.Buildings, Domain: "space", Subtype: "solar_array"}, "space/building_solar_array.png"},
		{Descriptor{Category: compose.Terrain, Subtype: "volcanic"}, "terrain/volcanic.png"},
		{Descriptor{Category: compose.Vegetation, Domain: "wheat", Subtype: "mature"}, "vegetation/wheat_mature.png"},
		{Descriptor{Category: compose.Effects, Subtype: "sparkle", Frame: 2}, "effects/sparkle_frame_2.png"},
		{Descriptor{Category: compose.Fire, Subtype: "large", Frame: 3}, "fire/fire_large_frame_3.png"},
		{Descriptor{Category: compose.Fire, Subtype: "ember", Frame: 5}, "fire/ember_frame_5.png"},
		{Descriptor{Category: compose.Fire, Subtype: "smoke", Frame: 7}, "fire/smoke_frame_7.png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.Path())
		})
	}
	assert.Equal(t, "fire/ember_frame_5", tests[6].d.Key())
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

func TestGenerateAllWritesCatalog(t *testing.T) {
	root := t.TempDir()
	g, _ := quietGenerator(t, palette.New())

	rep, err := g.GenerateAll(root)
	require.NoError(t, err)
	assert.Equal(t, 137, rep.Written)
	assert.Empty(t, rep.Failed)

	sizes := map[string]int{
		"medieval/unit_warrior.png":      64,
		"medieval/building_castle.png":   64,
		"terrain/water.png":              32,
		"vegetation/tree_old.png":        32,
		"effects/explosion_frame_0.png":  48,
		"fire/fire_dying_frame_1.png":    48,
		"fire/smoke_frame_4.png":         32,
		"space/building_solar_array.png": 64,
	}
	for rel, size := range sizes {
		m := decode(t, filepath.Join(root, filepath.FromSlash(rel)))
		assert.Equal(t, image.Rect(0, 0, size, size), m.Bounds(), rel)
	}

	leftovers, err := filepath.Glob(filepath.Join(root, "*", ".*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temporary files left behind")
}

func TestGenerateAllIsIdempotent(t *testing.T) {
	root := t.TempDir()
	rec := &memRecorder{}
	g, _ := quietGenerator(t, palette.New(), WithRecorder(rec))

	_, err := g.GenerateAll(root)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(root, "fire", "fire_large_frame_3.png"))
	require.NoError(t, err)

	rep, err := g.GenerateAll(root)
	require.NoError(t, err)
	assert.Empty(t, rep.Drifted)
	second, err := os.ReadFile(filepath.Join(root, "fire", "fire_large_frame_3.png"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, rec.rows, 137)
}

func TestDriftIsReported(t *testing.T) {
	rec := &memRecorder{rows: map[string]string{"terrain/grass": "0000"}}
	g, hook := quietGenerator(t, palette.New(), WithRecorder(rec))

	rep, err := g.GenerateAll(t.TempDir())
	require.NoError(t, err)
	require.Len(t, rep.Drifted, 1)
	assert.Equal(t, "terrain/grass", rep.Drifted[0].Key())

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["sprite"] == "terrain/grass.png" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestParallelMatchesSequential(t *testing.T) {
	seq, par := t.TempDir(), t.TempDir()
	g1, _ := quietGenerator(t, palette.New())
	g4, _ := quietGenerator(t, palette.New(), WithWorkers(4))

	_, err := g1.GenerateAll(seq)
	require.NoError(t, err)
	rep, err := g4.GenerateAll(par)
	require.NoError(t, err)
	require.Equal(t, 137, rep.Written)

	for _, d := range All() {
		a, err := os.ReadFile(filepath.Join(seq, filepath.FromSlash(d.Path())))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(par, filepath.FromSlash(d.Path())))
		require.NoError(t, err)
		require.True(t, bytes.Equal(a, b), d.Path())
	}
}

func TestUnknownDescriptorWritesNothing(t *testing.T) {
	root := t.TempDir()
	g, _ := quietGenerator(t, palette.New())

	d := Descriptor{Category: compose.Buildings, Domain: "primitive", Subtype: "castle"}
	err := g.GenerateOne(root, d)
	var uv *compose.UnknownVariantError
	require.True(t, errors.As(err, &uv))

	_, err = os.Stat(filepath.Join(root, "primitive", "building_castle.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestMissingPalettesAreReportedNotFatal(t *testing.T) {
	g, hook := quietGenerator(t, new(palette.Registry))

	rep, err := g.GenerateAll(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, rep.Written)
	require.Len(t, rep.Failed, 137)

	var mp *palette.MissingPaletteError
	assert.True(t, errors.As(rep.Failed[0].Err, &mp))

	errorsLogged := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			errorsLogged++
		}
	}
	assert.Equal(t, 137, errorsLogged)
}

func TestUncreatableRoot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	g, _ := quietGenerator(t, palette.New())
	_, err := g.GenerateAll(filepath.Join(file, "out"))
	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "mkdir", se.Op)
}

func TestScaleOverride(t *testing.T) {
	root := t.TempDir()
	g, _ := quietGenerator(t, palette.New(), WithScales(Scales{Unit: 1, Default: 3}))

	require.NoError(t, g.GenerateOne(root, Descriptor{Category: compose.Units, Domain: "space", Subtype: "basic"}))
	require.NoError(t, g.GenerateOne(root, Descriptor{Category: compose.Terrain, Subtype: "snow"}))

	assert.Equal(t, 32, decode(t, filepath.Join(root, "space", "unit_basic.png")).Bounds().Dx())
	assert.Equal(t, 96, decode(t, filepath.Join(root, "terrain", "snow.png")).Bounds().Dx())
}

func TestPalettedEncoder(t *testing.T) {
	root := t.TempDir()
	g, _ := quietGenerator(t, palette.New(), WithEncoder(PalettedPNG))

	d := Descriptor{Category: compose.Effects, Subtype: "explosion", Frame: 2}
	require.NoError(t, g.GenerateOne(root, d))

	m := decode(t, filepath.Join(root, filepath.FromSlash(d.Path())))
	pm, ok := m.(*image.Paletted)
	require.True(t, ok, "got %T", m)
	assert.LessOrEqual(t, len(pm.Palette), 256)

	_, _, _, a := pm.At(0, 0).RGBA()
	assert.Zero(t, a, "corner should stay transparent")
	_, _, _, a = pm.At(24, 24).RGBA()
	assert.NotZero(t, a, "center should be opaque")
}
