package anim

import (
	"image"
	"math"
)

// Heat is the glow band of an ember; the names double as palette roles.
type Heat string

const (
	Hot  Heat = "hot"
	Warm Heat = "warm"
	Cool Heat = "cool"
)

// Spark is a single bright pixel above a flame.
type Spark struct {
	Pos   image.Point
	Index int
}

// Ember is one glowing particle of the ember sequence.
type Ember struct {
	Pos   image.Point
	Heat  Heat
	Size  int
	Index int
}

// Params holds the frame-dependent geometry of one effect frame. Fields that
// do not apply to an effect are left zero.
type Params struct {
	Effect Effect
	Frame  int
	// Cycle is added to coordinate sums when picking palette entries so the
	// same texture shimmers from frame to frame.
	Cycle int

	Center image.Point

	// Flames.
	Height, Width int
	Sparks        []Spark
	Tips          []image.Point

	// Explosion.
	Radius  int
	Debris  bool
	Shimmer bool

	// Sparkle.
	Core, Reach int

	// Rising smoke puffs.
	Clouds      []image.Point
	CloudRadius int
	Fade        float64

	Embers []Ember

	// Drifting fire smoke.
	Drift int
}

type flameShape struct {
	height, heightStep int
	width, widthStep   int
}

var flameShapes = map[Effect]flameShape{
	FireIgnition: {12, 2, 8, 1},
	FireSmall:    {16, 3, 12, 2},
	FireMedium:   {24, 4, 18, 3},
	FireLarge:    {32, 5, 24, 4},
	FireDying:    {8, 1, 6, 1},
}

var emberSpots = []image.Point{
	{8, 8}, {24, 12}, {16, 20}, {28, 24}, {12, 28},
	{20, 6}, {6, 16}, {26, 18}, {14, 24}, {22, 30},
}

var sparkleCore = [4]int{2, 3, 2, 0}
var sparkleReach = [4]int{0, 7, 12, 10}

// Compute returns the parameters of frame for effect e.
func Compute(e Effect, frame int) (Params, error) {
	n := e.FrameCount()
	if n == 0 || frame < 0 || frame >= n {
		return Params{}, &FrameRangeError{Effect: e, Frame: frame}
	}
	p := Params{Effect: e, Frame: frame, Cycle: frame}

	switch {
	case e.IsFire():
		computeFlame(&p)
	case e == Explosion:
		p.Center = image.Pt(24, 24)
		p.Radius = min(frame*4+8, 20)
		p.Debris = frame > 0
		p.Shimmer = frame > 1
	case e == Sparkle:
		p.Center = image.Pt(24, 24)
		p.Core = sparkleCore[frame]
		p.Reach = sparkleReach[frame]
	case e == SmokePuff:
		p.CloudRadius = 8
		p.Fade = 1 - float64(frame)/4
		for cloud := 0; cloud < 3; cloud++ {
			p.Clouds = append(p.Clouds, image.Pt(24+(cloud-1)*8, 40-frame*6-cloud*4))
		}
	case e == Embers:
		for i, pos := range emberSpots {
			em := Ember{Pos: pos, Index: i, Size: 1}
			switch c := (frame + i) % 6; {
			case c < 2:
				em.Heat, em.Size = Hot, 2
			case c < 4:
				em.Heat = Warm
			default:
				em.Heat = Cool
			}
			p.Embers = append(p.Embers, em)
		}
	case e == FireSmoke:
		p.Drift = frame % 8
	}
	return p, nil
}

func computeFlame(p *Params) {
	shape := flameShapes[p.Effect]
	f := p.Frame
	p.Center = image.Pt(24, 36)
	p.Height = shape.height + shape.heightStep*f
	p.Width = shape.width + shape.widthStep*f

	count := 3 + f%3
	for i := 0; i < count; i++ {
		p.Sparks = append(p.Sparks, Spark{
			Pos:   image.Pt(p.Center.X+(i-count/2)*4+f%3, p.Center.Y-p.Height-5-i*2-f%4),
			Index: i,
		})
	}

	if p.Effect == FireMedium || p.Effect == FireLarge {
		top := p.Center.Y - p.Height
		p.Tips = []image.Point{
			{p.Center.X - 6, top + f%4},
			{p.Center.X + 6, top + (f+1)%4},
			{p.Center.X, top - 2 + (f+2)%3},
		}
	}
}

// Wave is the horizontal displacement of drifting smoke in column x.
func (p Params) Wave(x int) int {
	return int(math.Sin(float64(x+p.Frame)*0.3) * 3)
}
