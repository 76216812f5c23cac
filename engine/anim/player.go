package anim

// Player advances a frame cursor over a sequence of Frames frames at Speed
// frames per second. Looping is decided here, at playback; generation never
// wraps a sequence.
type Player struct {
	Frames   int
	Speed    float64
	Loop     bool
	Frame    int
	Finished bool

	timer float64
}

// NewPlayer starts a looping player for effect e.
func NewPlayer(e Effect, speed float64) *Player {
	return &Player{Frames: e.FrameCount(), Speed: speed, Loop: true}
}

// Update advances the cursor by dt seconds. It can step over several frames
// when dt spans more than one frame duration.
func (p *Player) Update(dt float64) {
	if p.Finished || p.Speed <= 0 || p.Frames <= 0 {
		return
	}
	p.timer += dt
	frameDur := 1.0 / p.Speed
	for p.timer >= frameDur {
		p.timer -= frameDur
		p.Frame++
		if p.Frame >= p.Frames {
			if p.Loop {
				p.Frame = 0
				continue
			}
			p.Frame = p.Frames - 1
			p.Finished = true
			p.timer = 0
			return
		}
	}
}

// Reset rewinds to the first frame.
func (p *Player) Reset() {
	p.Frame = 0
	p.Finished = false
	p.timer = 0
}
