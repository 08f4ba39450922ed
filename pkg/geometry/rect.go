package geometry

import "github.com/df07/go-laser-maze/pkg/core"

// Rect represents an axis-aligned rectangle by its top-left corner and size.
// Rectangles are always tested against rays edge-wise, never as filled
// regions, so a ray originating inside one still hits its boundary.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a new rectangle
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Min returns the top-left corner
func (r Rect) Min() core.Vec2 {
	return core.NewVec2(r.X, r.Y)
}

// Max returns the bottom-right corner
func (r Rect) Max() core.Vec2 {
	return core.NewVec2(r.X+r.W, r.Y+r.H)
}

// Center returns the rectangle's center point
func (r Rect) Center() core.Vec2 {
	return core.NewVec2(r.X+r.W/2, r.Y+r.H/2)
}

// Edges returns the four boundary segments in a fixed order:
// top, right, bottom, left.
func (r Rect) Edges() [4]Segment {
	tl := core.NewVec2(r.X, r.Y)
	tr := core.NewVec2(r.X+r.W, r.Y)
	br := core.NewVec2(r.X+r.W, r.Y+r.H)
	bl := core.NewVec2(r.X, r.Y+r.H)
	return [4]Segment{
		NewSegment(tl, tr),
		NewSegment(tr, br),
		NewSegment(br, bl),
		NewSegment(bl, tl),
	}
}
