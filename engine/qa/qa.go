// Package qa checks a generated sprite tree against its manifest.
package qa

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/1siamBot/spriteforge/engine/atlas"
)

type Kind string

const (
	Missing     Kind = "missing"
	Undecodable Kind = "undecodable"
	BadSize     Kind = "bad-size"
	Transparent Kind = "transparent"
	Orphan      Kind = "orphan"
)

// Issue is one problem with one file. File is relative to the root.
type Issue struct {
	File   string
	Kind   Kind
	Detail string
}

func (i Issue) String() string {
	if i.Detail == "" {
		return fmt.Sprintf("%s: %s", i.File, i.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", i.File, i.Kind, i.Detail)
}

type Report struct {
	Checked int
	Good    int
	Issues  []Issue
}

func (r Report) OK() bool { return len(r.Issues) == 0 }

// Check verifies every manifest entry: the file exists, decodes, is an exact
// positive multiple of its logical size in both directions, and has at least
// one pixel that is not fully transparent. PNGs below root's subdirectories
// that the manifest does not mention are reported as orphans.
func Check(root string, m *atlas.Manifest) (Report, error) {
	records := m.Entries()
	issues := make([]*Issue, len(records))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i, r := range records {
		eg.Go(func() error {
			issues[i] = checkEntry(root, r.Entry)
			return nil
		})
	}
	_ = eg.Wait()

	rep := Report{Checked: len(records)}
	listed := make(map[string]bool, len(records))
	for i, r := range records {
		listed[r.File] = true
		if issues[i] != nil {
			rep.Issues = append(rep.Issues, *issues[i])
		} else {
			rep.Good++
		}
	}

	orphans, err := findOrphans(root, listed)
	if err != nil {
		return rep, err
	}
	rep.Issues = append(rep.Issues, orphans...)
	return rep, nil
}

func checkEntry(root string, e atlas.Entry) *Issue {
	f, err := os.Open(filepath.Join(root, filepath.FromSlash(e.File)))
	if err != nil {
		return &Issue{File: e.File, Kind: Missing}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return &Issue{File: e.File, Kind: Undecodable, Detail: err.Error()}
	}

	b := img.Bounds()
	w, h := e.Size[0], e.Size[1]
	if w <= 0 || h <= 0 || b.Dx() == 0 || b.Dx()%w != 0 || b.Dy()%h != 0 || b.Dx()/w != b.Dy()/h {
		return &Issue{File: e.File, Kind: BadSize, Detail: fmt.Sprintf("%dx%d for logical %dx%d", b.Dx(), b.Dy(), w, h)}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return nil
			}
		}
	}
	return &Issue{File: e.File, Kind: Transparent}
}

func findOrphans(root string, listed map[string]bool) ([]Issue, error) {
	var out []Issue
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") || filepath.Ext(p) != ".png" {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		// Files at the root itself (contact sheets) are not sprites.
		if !strings.Contains(rel, "/") || listed[rel] {
			return nil
		}
		out = append(out, Issue{File: rel, Kind: Orphan})
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out, err
}
