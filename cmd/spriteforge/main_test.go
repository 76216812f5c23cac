package main

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/1siamBot/spriteforge/engine/atlas"
	"github.com/1siamBot/spriteforge/engine/catalog"
	"github.com/1siamBot/spriteforge/engine/config"
)

// testApp keeps exit errors from ending the test binary.
func testApp() *cli.App {
	app := newApp()
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

func TestScalesAndEncoder(t *testing.T) {
	c := config.Default()
	assert.Equal(t, catalog.DefaultScales(), scales(c))
	assert.Equal(t, catalog.PNG, encoder(c))

	c.UnitScale, c.Scale, c.Paletted = 4, 2, true
	assert.Equal(t, catalog.Scales{Unit: 4, Default: 2}, scales(c))
	assert.Equal(t, catalog.PalettedPNG, encoder(c))
}

func TestGenerateThenVerify(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, testApp().Run([]string{"spriteforge", "--paletted", "--workers", "2", "generate", root}))

	m, err := atlas.Load(filepath.Join(root, atlas.FileName))
	require.NoError(t, err)
	assert.Len(t, m.Entries(), len(catalog.All()))

	f, err := os.Open(filepath.Join(root, "primitive", "unit_leader.png"))
	require.NoError(t, err)
	defer f.Close()
	img, _, err := image.Decode(f)
	require.NoError(t, err)
	assert.IsType(t, &image.Paletted{}, img)

	require.NoError(t, testApp().Run([]string{"spriteforge", "verify", root}))
}

func TestGenerateFailsOnUncreatableRoot(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := testApp().Run([]string{"spriteforge", "generate", filepath.Join(blocker, "out")})
	require.Error(t, err)

	var exit cli.ExitCoder
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 1, exit.ExitCode())
}
