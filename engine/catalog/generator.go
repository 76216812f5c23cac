package catalog

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/1siamBot/spriteforge/engine/palette"
)

// StorageError wraps a filesystem failure while writing a sprite.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("catalog: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Recorder stores the digest of each written sprite and returns the digest
// previously stored under the same key, or "" if there was none.
type Recorder interface {
	Record(key, digest string) (previous string, err error)
}

// Failure is one descriptor that could not be produced.
type Failure struct {
	Descriptor Descriptor
	Err        error
}

// Report summarizes a GenerateAll run.
type Report struct {
	Written  int
	Failed   []Failure
	Drifted  []Descriptor
	Duration time.Duration
}

// Generator renders catalog entries and writes them below a root directory.
type Generator struct {
	reg      *palette.Registry
	scales   Scales
	workers  int
	encoder  Encoder
	recorder Recorder
	log      logrus.FieldLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithScales overrides the per-category upscale factors.
func WithScales(s Scales) Option {
	return func(g *Generator) { g.scales = s }
}

// WithWorkers sets how many sprites are rendered at once. Values below 1
// mean sequential.
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = max(1, n) }
}

func WithEncoder(e Encoder) Option {
	return func(g *Generator) { g.encoder = e }
}

// WithRecorder enables digest recording and drift reporting.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Generator) { g.log = l }
}

// NewGenerator returns a sequential RGBA PNG generator using the default
// scales.
func NewGenerator(reg *palette.Registry, opts ...Option) *Generator {
	g := &Generator{
		reg:     reg,
		scales:  DefaultScales(),
		workers: 1,
		encoder: PNG,
		log:     logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(g)
	}
	g.log = g.log.WithField("component", "catalog")
	return g
}

// GenerateOne renders d and writes it to root. The file is written to a
// temporary name and renamed into place, so readers never see a partial
// image. Nothing is written when rendering fails.
func (g *Generator) GenerateOne(root string, d Descriptor) error {
	_, err := g.generate(root, d)
	return err
}

func (g *Generator) generate(root string, d Descriptor) (drifted bool, err error) {
	c, err := Render(g.reg, d, g.scales)
	if err != nil {
		return false, err
	}

	var buf bytes.Buffer
	if err := g.encoder.Encode(&buf, c.Image()); err != nil {
		return false, fmt.Errorf("catalog: encode %s: %w", d, err)
	}

	dst := filepath.Join(root, filepath.FromSlash(d.Path()))
	if err := writeFile(dst, buf.Bytes()); err != nil {
		return false, err
	}
	g.log.WithFields(logrus.Fields{"sprite": d.Path(), "bytes": buf.Len()}).Debug("wrote sprite")

	if g.recorder == nil {
		return false, nil
	}
	sum := sha1.Sum(buf.Bytes())
	digest := hex.EncodeToString(sum[:])
	prev, err := g.recorder.Record(d.Key(), digest)
	if err != nil {
		g.log.WithField("sprite", d.Path()).WithError(err).Warn("digest not recorded")
		return false, nil
	}
	if prev != "" && prev != digest {
		g.log.WithFields(logrus.Fields{"sprite": d.Path(), "was": prev, "now": digest}).Warn("sprite bytes changed since last run")
		return true, nil
	}
	return false, nil
}

func writeFile(dst string, data []byte) error {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "mkdir", Path: dir, Err: err}
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(dst)+"-*")
	if err != nil {
		return &StorageError{Op: "create", Path: dst, Err: err}
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return &StorageError{Op: "write", Path: dst, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &StorageError{Op: "close", Path: dst, Err: err}
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return &StorageError{Op: "chmod", Path: dst, Err: err}
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return &StorageError{Op: "rename", Path: dst, Err: err}
	}
	return nil
}

// subdirs lists the distinct top-level directories of ds in first-seen order.
func subdirs(ds []Descriptor) []string {
	var out []string
	seen := map[string]bool{}
	for _, d := range ds {
		dir, _, _ := strings.Cut(d.Path(), "/")
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	return out
}

// GenerateAll writes the whole catalog below root. A sprite that fails is
// logged and listed in the report; the run continues with the next one. The
// returned error is non-nil only when root itself cannot be created.
func (g *Generator) GenerateAll(root string) (Report, error) {
	start := time.Now()
	if err := os.MkdirAll(root, 0o755); err != nil {
		return Report{}, &StorageError{Op: "mkdir", Path: root, Err: err}
	}

	all := All()
	for _, dir := range subdirs(all) {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			g.log.WithField("dir", dir).WithError(err).Warn("cannot create directory")
		}
	}

	errs := make([]error, len(all))
	drift := make([]bool, len(all))

	var eg errgroup.Group
	eg.SetLimit(g.workers)
	group := ""
	for i, d := range all {
		if gr := d.group(); gr != group {
			group = gr
			g.log.WithField("group", gr).Info("generating")
		}
		eg.Go(func() error {
			drift[i], errs[i] = g.generate(root, d)
			return nil
		})
	}
	_ = eg.Wait()

	var rep Report
	for i, d := range all {
		switch {
		case errs[i] != nil:
			g.log.WithFields(logrus.Fields{"sprite": d.Path(), "error": errs[i]}).Error("sprite failed")
			rep.Failed = append(rep.Failed, Failure{Descriptor: d, Err: errs[i]})
		default:
			rep.Written++
			if drift[i] {
				rep.Drifted = append(rep.Drifted, d)
			}
		}
	}
	rep.Duration = time.Since(start)
	g.log.WithFields(logrus.Fields{
		"written":  rep.Written,
		"failed":   len(rep.Failed),
		"drifted":  len(rep.Drifted),
		"duration": rep.Duration.Round(time.Millisecond),
	}).Info("catalog generated")
	return rep, nil
}
