package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/1siamBot/spriteforge/engine/atlas"
	"github.com/1siamBot/spriteforge/engine/catalog"
	"github.com/1siamBot/spriteforge/engine/config"
	"github.com/1siamBot/spriteforge/engine/ledger"
	"github.com/1siamBot/spriteforge/engine/overview"
	"github.com/1siamBot/spriteforge/engine/palette"
	"github.com/1siamBot/spriteforge/engine/qa"
	"github.com/1siamBot/spriteforge/engine/termview"
)

const overviewWidth = 900

// settings resolves the configuration: defaults, then .env and the
// environment, then any flag given on the command line.
func settings(c *cli.Context) (config.Config, *logrus.Logger, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, nil, err
	}
	if root := c.Args().First(); root != "" {
		cfg.Output = root
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("unit-scale") {
		cfg.UnitScale = c.Int("unit-scale")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Int("scale")
	}
	if c.IsSet("paletted") {
		cfg.Paletted = c.Bool("paletted")
	}
	if c.IsSet("ledger") {
		cfg.Ledger = c.String("ledger")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	log, err := config.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

func scales(cfg config.Config) catalog.Scales {
	return catalog.Scales{Unit: cfg.UnitScale, Default: cfg.Scale}
}

func encoder(cfg config.Config) catalog.Encoder {
	if cfg.Paletted {
		return catalog.PalettedPNG
	}
	return catalog.PNG
}

func writeManifest(root string, log logrus.FieldLogger) (*atlas.Manifest, error) {
	m, err := atlas.Build(root)
	if err != nil {
		return nil, err
	}
	for _, s := range m.Skipped {
		log.WithField("file", s).Warn("not listed in manifest")
	}
	if err := m.Write(root); err != nil {
		return nil, err
	}
	log.WithField("file", filepath.Join(root, atlas.FileName)).Info("manifest written")
	return m, nil
}

func generate(c *cli.Context) error {
	cfg, log, err := settings(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	opts := []catalog.Option{
		catalog.WithScales(scales(cfg)),
		catalog.WithWorkers(cfg.Workers),
		catalog.WithEncoder(encoder(cfg)),
		catalog.WithLogger(log),
	}
	if cfg.Ledger != "" {
		l, err := ledger.Open(cfg.Ledger)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer l.Close()
		opts = append(opts, catalog.WithRecorder(l))
	}

	report, err := catalog.NewGenerator(palette.New(), opts...).GenerateAll(cfg.Output)
	if err != nil {
		return cli.Exit(err, 1)
	}

	// Per-sprite failures were logged by the generator; the manifest lists
	// whatever made it to disk.
	if _, err := writeManifest(cfg.Output, log); err != nil {
		log.WithError(err).Error("manifest not written")
	}

	fmt.Printf("%d sprites written to %s", report.Written, cfg.Output)
	if n := len(report.Failed); n > 0 {
		fmt.Printf(", %d failed", n)
	}
	if n := len(report.Drifted); n > 0 {
		fmt.Printf(", %d changed since last run", n)
	}
	fmt.Println()
	return nil
}

func manifest(c *cli.Context) error {
	cfg, log, err := settings(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if _, err := writeManifest(cfg.Output, log); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func loadManifest(root string) (*atlas.Manifest, error) {
	m, err := atlas.Load(filepath.Join(root, atlas.FileName))
	if errors.Is(err, os.ErrNotExist) {
		return atlas.Build(root)
	}
	return m, err
}

func verify(c *cli.Context) error {
	cfg, log, err := settings(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	m, err := loadManifest(cfg.Output)
	if err != nil {
		return cli.Exit(err, 1)
	}

	report, err := qa.Check(cfg.Output, m)
	if err != nil {
		return cli.Exit(err, 1)
	}
	for _, issue := range report.Issues {
		log.WithFields(logrus.Fields{
			"file": issue.File,
			"kind": issue.Kind,
		}).Warn(issue.Detail)
	}

	fmt.Printf("%d/%d sprites good, %d issues\n", report.Good, report.Checked, len(report.Issues))
	if !report.OK() {
		return cli.Exit("verification failed", 1)
	}
	return nil
}

func writeOverview(c *cli.Context) error {
	cfg, log, err := settings(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	m, err := loadManifest(cfg.Output)
	if err != nil {
		return cli.Exit(err, 1)
	}

	skipped, err := overview.Write(cfg.Output, m, c.Int("width"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	for _, s := range skipped {
		log.WithField("file", s).Warn("left out of overview")
	}
	fmt.Println("  →", filepath.Join(cfg.Output, overview.FileName))
	return nil
}

func show(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
	file := c.Args().First()

	f, err := os.Open(file)
	if err != nil {
		return cli.Exit(err, 1)
	}
	m, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return cli.Exit(fmt.Errorf("%s: %w", file, err), 1)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := s.Init(); err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Fini()

	termview.Show(s, m, c.Int("size"), filepath.Base(file))
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "spriteforge"
	app.Usage = "procedural pixel-art sprite generator"
	app.Version = "1.0.0"
	app.ArgsUsage = "[ROOT]"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "workers",
			EnvVars: []string{config.EnvWorkers},
			Value:   1,
			Usage:   "sprites rendered in parallel",
		},
		&cli.IntFlag{
			Name:    "unit-scale",
			EnvVars: []string{config.EnvUnitScale},
			Value:   2,
			Usage:   "upscale factor for unit sprites",
		},
		&cli.IntFlag{
			Name:    "scale",
			EnvVars: []string{config.EnvScale},
			Value:   1,
			Usage:   "upscale factor for every other sprite",
		},
		&cli.BoolFlag{
			Name:    "paletted",
			EnvVars: []string{config.EnvPaletted},
			Usage:   "write indexed PNGs",
		},
		&cli.StringFlag{
			Name:    "ledger",
			EnvVars: []string{config.EnvLedger},
			Usage:   "sqlite file recording sprite digests",
		},
		&cli.StringFlag{
			Name:    "log-level",
			EnvVars: []string{config.EnvLogLevel},
			Value:   "info",
		},
		&cli.StringFlag{
			Name:    "log-format",
			EnvVars: []string{config.EnvLogFormat},
			Value:   "text",
			Usage:   "text or json",
		},
	}

	app.Action = generate

	app.Commands = []*cli.Command{
		{
			Name:      "generate",
			Usage:     "Render every sprite and write the atlas manifest",
			ArgsUsage: "[ROOT]",
			Action:    generate,
		},
		{
			Name:      "manifest",
			Usage:     "Rebuild the atlas manifest from the files on disk",
			ArgsUsage: "[ROOT]",
			Action:    manifest,
		},
		{
			Name:      "verify",
			Usage:     "Check every manifest entry exists and looks sane",
			ArgsUsage: "[ROOT]",
			Action:    verify,
		},
		{
			Name:      "overview",
			Usage:     "Write a labelled contact sheet of the whole tree",
			ArgsUsage: "[ROOT]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Value: overviewWidth,
					Usage: "sheet width in pixels",
				},
			},
			Action: writeOverview,
		},
		{
			Name:      "show",
			Usage:     "Draw a sprite in the terminal",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "size",
					Value: 32,
					Usage: "logical size of the sprite",
				},
			},
			Action: show,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
