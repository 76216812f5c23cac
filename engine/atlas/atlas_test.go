package atlas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/spriteforge/engine/catalog"
	"github.com/1siamBot/spriteforge/engine/palette"
)

func generated(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	l, _ := test.NewNullLogger()
	_, err := catalog.NewGenerator(palette.New(), catalog.WithLogger(l)).GenerateAll(root)
	require.NoError(t, err)
	return root
}

func touch(t *testing.T, root, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, nil, 0o644))
}

func TestBuildListsEverySprite(t *testing.T) {
	root := generated(t)
	m, err := Build(root)
	require.NoError(t, err)

	assert.Len(t, m.Entries(), len(catalog.All()))
	assert.Empty(t, m.Skipped)
	for _, era := range palette.Eras {
		assert.Len(t, m.Units[era], 4, era)
	}
	assert.Len(t, m.Buildings["space"], 6)
	assert.Len(t, m.Terrain, 8)
	assert.Len(t, m.Effects, 12)
	assert.Len(t, m.Vegetation, 31)
	assert.Len(t, m.Fire, 34)

	for _, r := range m.Entries() {
		_, err := os.Stat(filepath.Join(root, filepath.FromSlash(r.File)))
		assert.NoError(t, err, r.File)
	}
}

func TestBuildSplitsEraStems(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "space/building_solar_array.png")
	touch(t, root, "space/unit_leader.png")
	touch(t, root, "space/icon_rocket.png")
	touch(t, root, "space/readme.txt")
	touch(t, root, "space/.building_dome.png-123")

	m, err := Build(root)
	require.NoError(t, err)

	assert.Equal(t, []Entry{{Name: "solar_array", File: "space/building_solar_array.png", Size: [2]int{64, 64}}}, m.Buildings["space"])
	assert.Equal(t, []Entry{{Name: "leader", File: "space/unit_leader.png", Size: [2]int{32, 32}}}, m.Units["space"])
	assert.Equal(t, []string{"space/icon_rocket.png"}, m.Skipped)
}

func TestBuildSizes(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "fire/fire_small_frame_0.png")
	touch(t, root, "fire/ember_frame_0.png")
	touch(t, root, "fire/smoke_frame_0.png")
	touch(t, root, "effects/sparkle_frame_1.png")
	touch(t, root, "terrain/snow.png")

	m, err := Build(root)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Name: "ember_frame_0", File: "fire/ember_frame_0.png", Size: [2]int{32, 32}},
		{Name: "fire_small_frame_0", File: "fire/fire_small_frame_0.png", Size: [2]int{48, 48}},
		{Name: "smoke_frame_0", File: "fire/smoke_frame_0.png", Size: [2]int{32, 32}},
	}, m.Fire)
	assert.Equal(t, [2]int{48, 48}, m.Effects[0].Size)
	assert.Equal(t, [2]int{32, 32}, m.Terrain[0].Size)
}

func TestMissingDirectoriesAreEmpty(t *testing.T) {
	root := t.TempDir()
	m, err := Build(root)
	require.NoError(t, err)
	require.NoError(t, m.Write(root))

	data, err := os.ReadFile(filepath.Join(root, FileName))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, k := range []string{"terrain", "effects", "vegetation", "fire"} {
		assert.JSONEq(t, `[]`, string(raw[k]), k)
	}
	var units map[string][]Entry
	require.NoError(t, json.Unmarshal(raw["units"], &units))
	assert.Len(t, units, len(palette.Eras))
	assert.Empty(t, units["modern"])
	assert.NotNil(t, units["modern"])
}

func TestManifestIsReproducible(t *testing.T) {
	root := generated(t)

	m1, err := Build(root)
	require.NoError(t, err)
	require.NoError(t, m1.Write(root))
	first, err := os.ReadFile(filepath.Join(root, FileName))
	require.NoError(t, err)

	// The manifest file itself sits at the root and must not be picked up.
	m2, err := Build(root)
	require.NoError(t, err)
	require.NoError(t, m2.Write(root))
	second, err := os.ReadFile(filepath.Join(root, FileName))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))

	loaded, err := Load(filepath.Join(root, FileName))
	require.NoError(t, err)
	assert.Equal(t, m1.Entries(), loaded.Entries())
}

func TestSequences(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"10", "2", "0", "1"} {
		touch(t, root, "fire/smoke_frame_"+f+".png")
	}
	touch(t, root, "effects/smoke_frame_0.png")
	touch(t, root, "effects/smoke_frame_1.png")

	m, err := Build(root)
	require.NoError(t, err)
	seq := m.Sequences()

	require.Len(t, seq, 2)
	var files []string
	for _, e := range seq["fire/smoke"] {
		files = append(files, e.File)
	}
	assert.Equal(t, []string{
		"fire/smoke_frame_0.png",
		"fire/smoke_frame_1.png",
		"fire/smoke_frame_2.png",
		"fire/smoke_frame_10.png",
	}, files)
	assert.Len(t, seq["effects/smoke"], 2)
}

func TestLoadRejectsGarbage(t *testing.T) {
	p := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}
