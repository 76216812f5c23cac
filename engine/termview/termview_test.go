package termview

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/spriteforge/engine/catalog"
	"github.com/1siamBot/spriteforge/engine/compose"
	"github.com/1siamBot/spriteforge/engine/palette"
)

func screen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func cell(s tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	r, _, st, _ := s.GetContent(x, y)
	fg, bg, _ := st.Decompose()
	return r, fg, bg
}

func TestStep(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		cols, rows int
		min        int
		want       int
	}{
		{"fits", 32, 80, 24, 1, 1},
		{"honours minimum", 64, 80, 40, 2, 2},
		{"too tall", 64, 80, 16, 1, 2},
		{"too wide", 96, 40, 100, 1, 3},
		{"no rows", 64, 80, -1, 1, 1},
		{"no columns", 64, 0, 40, 2, 2},
		{"empty screen", 64, 0, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Step(image.Rect(0, 0, tt.size, tt.size), tt.cols, tt.rows, tt.min))
		})
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	s := screen(t, 10, 5)
	m := image.NewRGBA(image.Rect(0, 0, 2, 4))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	m.SetRGBA(0, 0, red)
	m.SetRGBA(0, 1, blue)
	m.SetRGBA(1, 1, blue)
	m.SetRGBA(1, 2, red)

	Draw(s, m, 1, 1, 1)

	r, fg, bg := cell(s, 1, 1)
	assert.Equal(t, upperHalf, r)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	r, fg, _ = cell(s, 2, 1)
	assert.Equal(t, lowerHalf, r)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), fg)

	r, fg, bg = cell(s, 2, 2)
	assert.Equal(t, upperHalf, r)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.ColorDefault, bg)

	r, _, _ = cell(s, 1, 2)
	assert.Equal(t, ' ', r)
}

func TestShowRendersSpriteAndQuitsOnKey(t *testing.T) {
	s := screen(t, 40, 20)
	c, err := catalog.Render(palette.New(), catalog.Descriptor{Category: compose.Units, Domain: "primitive", Subtype: "leader"}, catalog.DefaultScales())
	require.NoError(t, err)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	Show(s, c.Image(), 32, "primitive/unit_leader.png")

	// Sampled at one column per logical pixel: the crown spike at logical
	// x=13 fills both halves of column 13, row 0.
	gold := tcell.NewRGBColor(255, 215, 0)
	r, fg, bg := cell(s, 13, 0)
	assert.Equal(t, upperHalf, r)
	assert.Equal(t, gold, fg)
	assert.Equal(t, gold, bg)

	r, _, _ = cell(s, 0, 19)
	assert.Equal(t, 'p', r)
}

func TestShowOnScreenWithoutRows(t *testing.T) {
	// One line is left for the caption, so the sprite gets zero rows.
	s := screen(t, 40, 1)
	m := image.NewRGBA(image.Rect(0, 0, 64, 64))
	m.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})

	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	done := make(chan struct{})
	go func() {
		Show(s, m, 64, "big")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Show did not return")
	}
	r, _, _ := cell(s, 0, 0)
	assert.Equal(t, 'b', r)
}
