// Package atlas builds the sprite_atlas.json manifest by scanning a
// generated output tree.
package atlas

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/1siamBot/spriteforge/engine/palette"
)

// FileName is the manifest's name inside the output root.
const FileName = "sprite_atlas.json"

// Entry describes one image. File is relative to the output root and always
// uses forward slashes. Size is the logical size in pixels.
type Entry struct {
	Name string `json:"name"`
	File string `json:"file"`
	Size [2]int `json:"size"`
}

// Manifest lists every generated image by section. Units and buildings are
// keyed by era; every era is present even when its list is empty.
type Manifest struct {
	Units      map[string][]Entry `json:"units"`
	Buildings  map[string][]Entry `json:"buildings"`
	Terrain    []Entry            `json:"terrain"`
	Effects    []Entry            `json:"effects"`
	Vegetation []Entry            `json:"vegetation"`
	Fire       []Entry            `json:"fire"`

	// Skipped holds era-directory files whose prefix is neither unit nor
	// building. It is not serialized.
	Skipped []string `json:"-"`
}

// eraPrefixes maps the file-stem prefix in era directories to the manifest
// section it belongs to and that section's logical size.
var eraPrefixes = map[string]struct {
	units bool
	size  int
}{
	"unit":     {true, 32},
	"building": {false, 64},
}

func newManifest() *Manifest {
	m := &Manifest{
		Units:      make(map[string][]Entry, len(palette.Eras)),
		Buildings:  make(map[string][]Entry, len(palette.Eras)),
		Terrain:    []Entry{},
		Effects:    []Entry{},
		Vegetation: []Entry{},
		Fire:       []Entry{},
	}
	for _, era := range palette.Eras {
		m.Units[era] = []Entry{}
		m.Buildings[era] = []Entry{}
	}
	return m
}

// Build scans root. Missing directories yield empty sections. Entries in
// each list are sorted by file name.
func Build(root string) (*Manifest, error) {
	m := newManifest()

	for _, era := range palette.Eras {
		stems, err := pngStems(root, era)
		if err != nil {
			return nil, err
		}
		for _, stem := range stems {
			file := path.Join(era, stem+".png")
			prefix, name, ok := strings.Cut(stem, "_")
			p, known := eraPrefixes[prefix]
			if !ok || !known || name == "" {
				m.Skipped = append(m.Skipped, file)
				continue
			}
			e := Entry{Name: name, File: file, Size: [2]int{p.size, p.size}}
			if p.units {
				m.Units[era] = append(m.Units[era], e)
			} else {
				m.Buildings[era] = append(m.Buildings[era], e)
			}
		}
	}

	flat := []struct {
		dir  string
		dst  *[]Entry
		size func(stem string) int
	}{
		{"terrain", &m.Terrain, fixed(32)},
		{"effects", &m.Effects, fixed(48)},
		{"vegetation", &m.Vegetation, fixed(32)},
		{"fire", &m.Fire, fireSize},
	}
	for _, s := range flat {
		stems, err := pngStems(root, s.dir)
		if err != nil {
			return nil, err
		}
		for _, stem := range stems {
			n := s.size(stem)
			*s.dst = append(*s.dst, Entry{Name: stem, File: path.Join(s.dir, stem+".png"), Size: [2]int{n, n}})
		}
	}
	return m, nil
}

func fixed(n int) func(string) int {
	return func(string) int { return n }
}

// fireSize: flames are 48×48, embers and smoke 32×32.
func fireSize(stem string) int {
	if strings.HasPrefix(stem, "fire_") {
		return 48
	}
	return 32
}

// pngStems returns the sorted stems of the regular .png files in root/dir.
func pngStems(root, dir string) ([]string, error) {
	des, err := os.ReadDir(filepath.Join(root, dir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("atlas: scan %s: %w", dir, err)
	}
	var stems []string
	for _, de := range des {
		name := de.Name()
		if !de.Type().IsRegular() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".png" {
			continue
		}
		stems = append(stems, strings.TrimSuffix(name, ".png"))
	}
	sort.Strings(stems)
	return stems, nil
}

// Write stores the manifest as root/sprite_atlas.json. The output is
// indented and byte-identical for identical manifests.
func (m *Manifest) Write(root string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dst := filepath.Join(root, FileName)
	f, err := os.CreateTemp(root, "."+FileName+"-*")
	if err != nil {
		return fmt.Errorf("atlas: %w", err)
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0o644)
	}
	if err == nil {
		err = os.Rename(tmp, dst)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("atlas: write %s: %w", dst, err)
	}
	return nil
}

// Load reads a manifest written by Write.
func Load(file string) (*Manifest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	m := newManifest()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("atlas: %s: %w", file, err)
	}
	return m, nil
}

// Record is an entry together with where it sits in the manifest.
type Record struct {
	Section string
	Era     string
	Entry
}

// Entries flattens the manifest in serialization order.
func (m *Manifest) Entries() []Record {
	var out []Record
	for _, era := range sortedKeys(m.Units) {
		for _, e := range m.Units[era] {
			out = append(out, Record{"units", era, e})
		}
	}
	for _, era := range sortedKeys(m.Buildings) {
		for _, e := range m.Buildings[era] {
			out = append(out, Record{"buildings", era, e})
		}
	}
	for _, s := range []struct {
		name    string
		entries []Entry
	}{
		{"terrain", m.Terrain},
		{"effects", m.Effects},
		{"vegetation", m.Vegetation},
		{"fire", m.Fire},
	} {
		for _, e := range s.entries {
			out = append(out, Record{Section: s.name, Entry: e})
		}
	}
	return out
}

func sortedKeys(m map[string][]Entry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sequences groups the animated entries (effects and fire) by sequence,
// each ordered by frame number. A sequence is named by its file path up to
// the frame suffix: "fire/fire_large_frame_2.png" belongs to
// "fire/fire_large".
func (m *Manifest) Sequences() map[string][]Entry {
	type frame struct {
		n int
		e Entry
	}
	byName := map[string][]frame{}
	for _, e := range append(append([]Entry(nil), m.Effects...), m.Fire...) {
		name, num, ok := strings.Cut(strings.TrimSuffix(e.File, ".png"), "_frame_")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		byName[name] = append(byName[name], frame{n, e})
	}

	out := make(map[string][]Entry, len(byName))
	for name, frames := range byName {
		sort.Slice(frames, func(i, j int) bool { return frames[i].n < frames[j].n })
		seq := make([]Entry, len(frames))
		for i, f := range frames {
			seq[i] = f.e
		}
		out[name] = seq
	}
	return out
}
