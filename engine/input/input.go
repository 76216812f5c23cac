// Package input turns ebiten keyboard and mouse state into preview
// commands.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a preview command bound to one or more keys.
type Action int

const (
	Pause Action = iota
	Restart
	NextPage
	Faster
	Slower
	Quit
)

var bindings = map[Action][]ebiten.Key{
	Pause:    {ebiten.KeySpace, ebiten.KeyP},
	Restart:  {ebiten.KeyR},
	NextPage: {ebiten.KeyTab},
	Faster:   {ebiten.KeyEqual, ebiten.KeyKPAdd},
	Slower:   {ebiten.KeyMinus, ebiten.KeyKPSubtract},
	Quit:     {ebiten.KeyEscape, ebiten.KeyQ},
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	ScrollY          float64

	// Drag with the left button pans the view.
	DragStartX, DragStartY int
	Dragging               bool
	DragThreshold          int

	// Keyboard pan direction, each axis in [-1, 1].
	PanX, PanY float64
}

func NewInputState() *InputState {
	return &InputState{DragThreshold: 5}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevMouseX, s.prevMouseY = s.MouseX, s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	_, s.ScrollY = ebiten.Wheel()

	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.DragStartX, s.DragStartY = s.MouseX, s.MouseY
		s.Dragging = false
	}
	if leftDown && !s.Dragging {
		dx := s.MouseX - s.DragStartX
		dy := s.MouseY - s.DragStartY
		if dx*dx+dy*dy > s.DragThreshold*s.DragThreshold {
			s.Dragging = true
		}
	}
	if !leftDown {
		s.Dragging = false
	}

	s.PanX, s.PanY = 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		s.PanX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		s.PanX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		s.PanY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		s.PanY++
	}
}

// JustPressed reports whether any key bound to a went down this frame.
func (s *InputState) JustPressed(a Action) bool {
	for _, k := range bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
