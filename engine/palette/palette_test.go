package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKnownRole(t *testing.T) {
	r := New()
	p, err := r.Get("primitive", RoleSkin)
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.Equal(t, RGB(222, 184, 135), p[0])
}

func TestGetMissing(t *testing.T) {
	r := New()

	_, err := r.Get("bronze", RoleSkin)
	var mp *MissingPaletteError
	require.True(t, errors.As(err, &mp))
	assert.Equal(t, "bronze", mp.Domain)
	assert.Empty(t, mp.Role)

	_, err = r.Get("primitive", "armor")
	require.True(t, errors.As(err, &mp))
	assert.Equal(t, "armor", mp.Role)
	assert.Contains(t, err.Error(), "armor")
}

func TestGetReturnsCopy(t *testing.T) {
	r := New()
	p, err := r.Get("space", RoleBuildings)
	require.NoError(t, err)
	p[0] = RGB(1, 2, 3)

	again, err := r.Get("space", RoleBuildings)
	require.NoError(t, err)
	assert.Equal(t, RGB(192, 192, 192), again[0])
}

func TestEveryPaletteNonEmpty(t *testing.T) {
	r := New()
	for _, d := range r.Domains() {
		for _, role := range r.Roles(d) {
			p, err := r.Get(d, role)
			require.NoError(t, err)
			assert.NotEmpty(t, p, "%s/%s", d, role)
		}
	}
}

func TestErasHaveAllRoles(t *testing.T) {
	r := New()
	for _, era := range Eras {
		_, err := r.Set(era, RoleSkin, RoleClothing, RoleHair, RoleTools, RoleBuildings)
		require.NoError(t, err, era)
	}
}

func TestSetFailsOnFirstMissingRole(t *testing.T) {
	r := New()
	_, err := r.Set(DomainEmbers, "hot", "frozen", "cool")
	var mp *MissingPaletteError
	require.ErrorAs(t, err, &mp)
	assert.Equal(t, "frozen", mp.Role)
}

func TestAtWraps(t *testing.T) {
	p := Palette{RGB(1, 0, 0), RGB(2, 0, 0), RGB(3, 0, 0)}
	tests := []struct {
		i    int
		want uint8
	}{
		{0, 1}, {2, 3}, {3, 1}, {7, 2}, {-1, 3}, {-4, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.At(tt.i).R, "index %d", tt.i)
	}
}

func TestIndexFallsBackToFirst(t *testing.T) {
	p := Palette{RGB(1, 0, 0), RGB(2, 0, 0), RGB(3, 0, 0)}
	tests := []struct {
		i    int
		want uint8
	}{
		{0, 1}, {2, 3}, {3, 1}, {9, 1}, {-1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Index(tt.i).R, "index %d", tt.i)
	}

	// Primitive buildings carry three shades; the fourth rank is the base.
	b, err := New().Get("primitive", RoleBuildings)
	require.NoError(t, err)
	assert.Len(t, b, 3)
	assert.Equal(t, b[0], b.Index(3))
}

func TestOffsetClamps(t *testing.T) {
	c := RGB(250, 10, 128)
	assert.Equal(t, RGB(255, 60, 178), c.Offset(50))
	assert.Equal(t, RGB(220, 0, 98), c.Offset(-30))
	assert.Equal(t, RGB(255, 0, 138), c.Channels(20, -20, 10))
	assert.Equal(t, uint8(7), c.RGBA(7).A)
}
