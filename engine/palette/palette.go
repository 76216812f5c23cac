// Package palette holds the color tables every composer draws from.
//
// A Registry is built once with New and is read-only afterwards, so a single
// instance can be shared by any number of goroutines rendering sprites.
package palette

import (
	"fmt"
	"image/color"
	"sort"
)

// Color is an opaque RGB triple. Alpha is chosen per draw call by the canvas.
type Color struct {
	R, G, B uint8
}

// RGB is shorthand for building a Color literal.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

// Offset shifts every channel by d and clamps to [0,255]. Negative d darkens.
func (c Color) Offset(d int) Color {
	return Color{clampChannel(int(c.R) + d), clampChannel(int(c.G) + d), clampChannel(int(c.B) + d)}
}

// Channels shifts each channel by its own delta, clamped.
func (c Color) Channels(dr, dg, db int) Color {
	return Color{clampChannel(int(c.R) + dr), clampChannel(int(c.G) + dg), clampChannel(int(c.B) + db)}
}

// RGBA converts to an image color with the given alpha.
func (c Color) RGBA(alpha uint8) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, alpha}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Palette is an ordered, non-empty list of colors.
type Palette []Color

// At picks a color by position hash; the index wraps so any integer is valid.
func (p Palette) At(i int) Color {
	n := len(p)
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}

// Index returns p[i] for composers that pick a shade by rank. A palette
// shorter than i+1 yields its first color instead of failing, so a short
// table renders flatter rather than erroring; unlike a missing role this is
// never reported. Use At when the index comes from a coordinate hash.
func (p Palette) Index(i int) Color {
	if i >= 0 && i < len(p) {
		return p[i]
	}
	return p[0]
}

// MissingPaletteError reports a (domain, role) lookup with no table behind it.
type MissingPaletteError struct {
	Domain string
	Role   string
}

func (e *MissingPaletteError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("palette: unknown domain %q", e.Domain)
	}
	return fmt.Sprintf("palette: domain %q has no role %q", e.Domain, e.Role)
}

// Registry maps (domain, role) to palettes.
type Registry struct {
	tables map[string]map[string]Palette
}

// New builds the registry from the built-in tables.
func New() *Registry {
	r := &Registry{tables: make(map[string]map[string]Palette)}
	for domain, roles := range builtin() {
		dst := make(map[string]Palette, len(roles))
		for role, p := range roles {
			if len(p) == 0 {
				continue
			}
			dst[role] = append(Palette(nil), p...)
		}
		r.tables[domain] = dst
	}
	return r
}

// Get returns a copy of the palette for (domain, role).
func (r *Registry) Get(domain, role string) (Palette, error) {
	roles, ok := r.tables[domain]
	if !ok {
		return nil, &MissingPaletteError{Domain: domain}
	}
	p, ok := roles[role]
	if !ok {
		return nil, &MissingPaletteError{Domain: domain, Role: role}
	}
	return append(Palette(nil), p...), nil
}

// Set resolves several roles of one domain. It fails on the first missing role.
func (r *Registry) Set(domain string, roles ...string) (Set, error) {
	s := make(Set, len(roles))
	for _, role := range roles {
		p, err := r.Get(domain, role)
		if err != nil {
			return nil, err
		}
		s[role] = p
	}
	return s, nil
}

// Domains lists every registered domain in sorted order.
func (r *Registry) Domains() []string {
	out := make([]string, 0, len(r.tables))
	for d := range r.tables {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Roles lists the roles of a domain in sorted order.
func (r *Registry) Roles(domain string) []string {
	roles := r.tables[domain]
	out := make([]string, 0, len(roles))
	for role := range roles {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// Set is a resolved group of roles for one domain.
type Set map[string]Palette

// Role returns the palette for role. Roles are checked when the Set is built,
// so this only panics on a composer bug.
func (s Set) Role(role string) Palette {
	p, ok := s[role]
	if !ok {
		panic("palette: role " + role + " not resolved in set")
	}
	return p
}

// At is Role(role).At(i).
func (s Set) At(role string, i int) Color {
	return s.Role(role).At(i)
}
