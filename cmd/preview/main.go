// Command preview opens a window that plays every generated animation and
// shows every still sprite of a sprite tree.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/1siamBot/spriteforge/engine/anim"
	"github.com/1siamBot/spriteforge/engine/atlas"
	"github.com/1siamBot/spriteforge/engine/config"
	"github.com/1siamBot/spriteforge/engine/input"
	"github.com/1siamBot/spriteforge/engine/render"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	columns   = 10
	cellSize  = 64
	labelSize = 16
	padding   = 12
	tileSize  = 32
)

type cell struct {
	name   string
	frames []*ebiten.Image
	size   [2]int
	player *anim.Player
}

type page struct {
	title string
	cells []cell
}

// Game implements ebiten.Game
type Game struct {
	sprites *render.SpriteManager
	pages   []page
	page    int
	camera  *render.Camera
	input   *input.InputState
	fps     float64
	paused  bool
}

func NewGame(sm *render.SpriteManager, m *atlas.Manifest, fps float64) *Game {
	g := &Game{
		sprites: sm,
		camera:  render.NewCamera(ScreenWidth, ScreenHeight),
		input:   input.NewInputState(),
		fps:     fps,
	}

	var seqs page
	seqs.title = "Animations"
	seqEntries := m.Sequences()
	for _, name := range sm.SequenceNames() {
		frames := sm.Sequences[name]
		seqs.cells = append(seqs.cells, cell{
			name:   name,
			frames: frames,
			size:   seqEntries[name][0].Size,
			player: &anim.Player{Frames: len(frames), Speed: fps, Loop: true},
		})
	}

	var stills page
	stills.title = "Stills"
	for _, r := range m.Entries() {
		img, ok := sm.Stills[r.File]
		if !ok {
			continue
		}
		stills.cells = append(stills.cells, cell{name: r.File, frames: []*ebiten.Image{img}, size: r.Size})
	}

	for _, p := range []page{seqs, stills} {
		if len(p.cells) > 0 {
			g.pages = append(g.pages, p)
		}
	}
	return g
}

func (g *Game) players(fn func(p *anim.Player)) {
	for _, c := range g.pages[g.page].cells {
		if c.player != nil {
			fn(c.player)
		}
	}
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.JustPressed(input.Quit) {
		return ebiten.Termination
	}
	if len(g.pages) == 0 {
		return nil
	}

	if g.input.JustPressed(input.Pause) {
		g.paused = !g.paused
	}
	if g.input.JustPressed(input.Restart) {
		g.players(func(p *anim.Player) { p.Reset() })
	}
	if g.input.JustPressed(input.NextPage) {
		g.page = (g.page + 1) % len(g.pages)
		g.camera.X, g.camera.Y = 0, 0
	}
	if g.input.JustPressed(input.Faster) {
		g.fps = math.Min(60, g.fps*1.5)
	}
	if g.input.JustPressed(input.Slower) {
		g.fps = math.Max(1, g.fps/1.5)
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.camera.Pan(g.input.PanX*g.camera.Speed*dt, g.input.PanY*g.camera.Speed*dt)
	if g.input.Dragging {
		g.camera.Pan(-float64(g.input.MouseDX), -float64(g.input.MouseDY))
	}
	if g.input.ScrollY != 0 {
		g.camera.ZoomAt(g.input.ScrollY*0.25, g.input.MouseX, g.input.MouseY)
	}

	if !g.paused {
		g.players(func(p *anim.Player) {
			p.Speed = g.fps
			p.Update(dt)
		})
	}
	return nil
}

// cellOrigin is the world position of the i-th cell's top-left corner.
func cellOrigin(i int) (float64, float64) {
	col, row := i%columns, i/columns
	return float64(padding + col*(cellSize+padding)), float64(padding + row*(cellSize+labelSize+padding))
}

func (g *Game) drawTerrain(screen *ebiten.Image) {
	cam := g.camera
	x0, y0 := cam.ScreenToWorld(0, 0)
	x1, y1 := cam.ScreenToWorld(cam.ScreenW, cam.ScreenH)
	for ty := int(y0) / tileSize; ty <= int(y1)/tileSize; ty++ {
		for tx := int(x0) / tileSize; tx <= int(x1)/tileSize; tx++ {
			tile := g.sprites.GetTerrainVariant(tx, ty)
			if tile == nil {
				return
			}
			sx, sy := cam.WorldToScreen(float64(tx*tileSize), float64(ty*tileSize))
			s := cam.Zoom * tileSize / float64(tile.Bounds().Dx())
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(s, s)
			op.GeoM.Translate(sx, sy)
			op.ColorScale.ScaleAlpha(0.3)
			screen.DrawImage(tile, op)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawTerrain(screen)
	if len(g.pages) == 0 {
		ebitenutil.DebugPrint(screen, "No sprites found. Run spriteforge generate first.\n[Esc] Quit")
		return
	}

	cam := g.camera
	p := g.pages[g.page]
	for i, c := range p.cells {
		wx, wy := cellOrigin(i)
		if !cam.Visible(wx, wy, cellSize, cellSize+labelSize) {
			continue
		}
		img := c.frames[0]
		if c.player != nil {
			img = c.frames[c.player.Frame]
		}
		// Fit the logical size into the cell, then apply camera zoom.
		fit := math.Min(1, float64(cellSize)/float64(max(c.size[0], c.size[1])))
		s := cam.Zoom * fit * float64(c.size[0]) / float64(img.Bounds().Dx())

		sx, sy := cam.WorldToScreen(wx, wy)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(img, op)

		_, ly := cam.WorldToScreen(wx, wy+cellSize)
		ebitenutil.DebugPrintAt(screen, filepath.Base(c.name), int(sx), int(ly)+2)
	}

	state := "playing"
	if g.paused {
		state = "paused"
	}
	info := fmt.Sprintf(
		"%s (%d/%d) | %d sprites | %.1f fps %s | Zoom: %.1fx\n"+
			"[Tab] Page [Space] Pause [R] Restart [+/-] Speed [WASD/Drag] Pan [Scroll] Zoom [Esc] Quit",
		p.title, g.page+1, len(g.pages), len(p.cells), g.fps, state, cam.Zoom,
	)
	ebitenutil.DebugPrint(screen, info)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.ScreenW, g.camera.ScreenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func run(c *cli.Context) error {
	log, err := config.NewLogger(os.Stderr, c.String("log-level"), c.String("log-format"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	root := c.Args().First()
	if root == "" {
		cfg, err := config.FromEnv()
		if err != nil {
			return cli.Exit(err, 1)
		}
		root = cfg.Output
	}

	m, err := atlas.Load(filepath.Join(root, atlas.FileName))
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("root", root).Info("no manifest, scanning tree")
		m, err = atlas.Build(root)
	}
	if err != nil {
		return cli.Exit(err, 1)
	}

	sm := render.NewSpriteManager(root, m, log)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("spriteforge preview: " + root)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(sm, m, c.Float64("fps"))); err != nil && !errors.Is(err, ebiten.Termination) {
		return cli.Exit(err, 1)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:      "preview",
		Usage:     "play generated sprite animations",
		ArgsUsage: "[ROOT]",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "fps",
				Usage: "animation frames per second",
				Value: 8,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				EnvVars: []string{config.EnvLogLevel},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				EnvVars: []string{config.EnvLogFormat},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
