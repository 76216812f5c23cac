// Package anim derives per-frame parameters for the animated sprite families.
//
// Every value in Params is a pure function of (Effect, frame). Nothing is
// carried from one frame to the next, so frames can be rendered in any order
// and on any goroutine.
package anim

import "fmt"

// Effect identifies one animated sequence.
type Effect int

const (
	Explosion Effect = iota
	Sparkle
	SmokePuff
	FireIgnition
	FireSmall
	FireMedium
	FireLarge
	FireDying
	Embers
	FireSmoke
)

var effectNames = [...]string{
	Explosion:    "explosion",
	Sparkle:      "sparkle",
	SmokePuff:    "smoke",
	FireIgnition: "fire_ignition",
	FireSmall:    "fire_small",
	FireMedium:   "fire_medium",
	FireLarge:    "fire_large",
	FireDying:    "fire_dying",
	Embers:       "ember",
	FireSmoke:    "fire_smoke",
}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return fmt.Sprintf("effect(%d)", int(e))
	}
	return effectNames[e]
}

// FrameCount is the fixed length of the effect's sequence.
func (e Effect) FrameCount() int {
	switch e {
	case Explosion, Sparkle, SmokePuff,
		FireIgnition, FireSmall, FireMedium, FireLarge, FireDying:
		return 4
	case Embers:
		return 6
	case FireSmoke:
		return 8
	}
	return 0
}

// IsFire reports whether e is one of the five flame intensities.
func (e Effect) IsFire() bool {
	return e >= FireIgnition && e <= FireDying
}

// Intensities lists the flame intensities from first spark to burn-out.
var Intensities = []string{"ignition", "small", "medium", "large", "dying"}

var fireByIntensity = map[string]Effect{
	"ignition": FireIgnition,
	"small":    FireSmall,
	"medium":   FireMedium,
	"large":    FireLarge,
	"dying":    FireDying,
}

// FireIntensity maps an intensity name to its effect.
func FireIntensity(name string) (Effect, bool) {
	e, ok := fireByIntensity[name]
	return e, ok
}

// Intensity returns the intensity name of a fire effect, or "".
func (e Effect) Intensity() string {
	if !e.IsFire() {
		return ""
	}
	return Intensities[e-FireIgnition]
}

// Sequence returns the frame indices of e in playback order.
func Sequence(e Effect) []int {
	n := e.FrameCount()
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// FrameRangeError reports a frame index outside an effect's sequence.
type FrameRangeError struct {
	Effect Effect
	Frame  int
}

func (e *FrameRangeError) Error() string {
	return fmt.Sprintf("anim: frame %d out of range for %s (0..%d)", e.Frame, e.Effect, e.Effect.FrameCount()-1)
}
