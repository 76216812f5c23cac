package render

import "math"

// Camera is the preview viewport over a flat grid of sprite cells.
type Camera struct {
	X, Y    float64 // top-left of the view in world pixels
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	ScreenW int
	ScreenH int
	Speed   float64 // pan speed (screen pixels per second)
}

// NewCamera creates a camera at the origin with zoom 2, which shows a
// logical pixel as a 2×2 screen block.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    2.0,
		MinZoom: 0.5,
		MaxZoom: 8.0,
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   500,
	}
}

// Pan moves the camera by a screen-pixel delta.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.X = math.Max(0, c.X)
	c.Y = math.Max(0, c.Y)
}

// SetZoom sets zoom level with clamping.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms while keeping the world point under (screenX, screenY)
// fixed.
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	wx, wy := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	wx2, wy2 := c.ScreenToWorld(screenX, screenY)
	c.X += wx - wx2
	c.Y += wy - wy2
}

func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx - c.X) * c.Zoom, (wy - c.Y) * c.Zoom
}

func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	return float64(sx)/c.Zoom + c.X, float64(sy)/c.Zoom + c.Y
}

// Visible reports whether the world rectangle at (wx, wy) of size w×h
// overlaps the screen.
func (c *Camera) Visible(wx, wy, w, h float64) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	return sx+w*c.Zoom >= 0 && sy+h*c.Zoom >= 0 && sx <= float64(c.ScreenW) && sy <= float64(c.ScreenH)
}
