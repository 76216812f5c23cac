package ledger

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/spriteforge/engine/catalog"
	"github.com/1siamBot/spriteforge/engine/palette"
)

func TestRecord(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "digests.db"))
	require.NoError(t, err)
	defer l.Close()

	prev, err := l.Record("terrain/grass", "aa")
	require.NoError(t, err)
	assert.Empty(t, prev)

	prev, err = l.Record("terrain/grass", "aa")
	require.NoError(t, err)
	assert.Equal(t, "aa", prev)

	prev, err = l.Record("terrain/grass", "bb")
	require.NoError(t, err)
	assert.Equal(t, "aa", prev)

	sha, ok, err := l.Digest("terrain/grass")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bb", sha)

	_, ok, err = l.Digest("terrain/snow")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedgerSurvivesReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "digests.db")
	l, err := Open(file)
	require.NoError(t, err)
	_, err = l.Record("space/unit_leader", "cafe")
	require.NoError(t, err)
	require.NoError(t, l.Close())

	l, err = Open(file)
	require.NoError(t, err)
	defer l.Close()
	sha, ok, err := l.Digest("space/unit_leader")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cafe", sha)
}

func TestGeneratorRunsAreStable(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "digests.db"))
	require.NoError(t, err)
	defer l.Close()

	log, _ := test.NewNullLogger()
	g := catalog.NewGenerator(palette.New(), catalog.WithRecorder(l), catalog.WithWorkers(4), catalog.WithLogger(log))
	root := t.TempDir()

	_, err = g.GenerateAll(root)
	require.NoError(t, err)
	n, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, len(catalog.All()), n)

	rep, err := g.GenerateAll(root)
	require.NoError(t, err)
	assert.Empty(t, rep.Drifted)
}
