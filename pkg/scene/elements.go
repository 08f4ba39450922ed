package scene

import (
	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/geometry"
)

// Source represents a fixed laser emitter
type Source struct {
	ID        string
	Position  core.Vec2
	Direction core.Vec2 // unit length
}

// NewSource creates a new laser source; the direction is normalized
func NewSource(id string, position, direction core.Vec2) Source {
	return Source{ID: id, Position: position, Direction: direction.Normalize()}
}

// MirrorKind identifies the optical behavior of a mirror
type MirrorKind int

const (
	PlainMirror MirrorKind = iota
	BeamSplitter
	DiffractionGrating
)

// String returns the mirror kind name
func (k MirrorKind) String() string {
	switch k {
	case PlainMirror:
		return "plain"
	case BeamSplitter:
		return "splitter"
	case DiffractionGrating:
		return "grating"
	default:
		return "unknown"
	}
}

// Mirror represents a user-placed mirror segment. Only its position changes
// between simulations; the engine reads it per recompute.
type Mirror struct {
	ID     string
	P1, P2 core.Vec2
	Kind   MirrorKind
}

// Segment returns the mirror's geometry as a segment
func (m *Mirror) Segment() geometry.Segment {
	return geometry.NewSegment(m.P1, m.P2)
}

// Obstacle is an opaque scene element that absorbs rays without branching.
// It is a sealed sum type over the three obstacle shapes; consumers dispatch
// with an exhaustive type switch.
type Obstacle interface {
	isObstacle()
}

// LineObstacle is an opaque line segment
type LineObstacle struct {
	P1, P2 core.Vec2
}

// RectObstacle is an opaque axis-aligned rectangle
type RectObstacle struct {
	Rect geometry.Rect
}

// CircleObstacle is an opaque circle
type CircleObstacle struct {
	Center core.Vec2
	Radius float64
}

func (LineObstacle) isObstacle()   {}
func (RectObstacle) isObstacle()   {}
func (CircleObstacle) isObstacle() {}

// Detector represents a target region that registers legitimate hits.
// EntryAngle is one of 0, 90, 180, 270 degrees and selects the axis
// direction an incoming ray must travel within the acceptance cone.
type Detector struct {
	ID         string
	Rect       geometry.Rect
	EntryAngle int
}

// RequiredDirection maps the discrete entry angle to its axis unit vector
func (d *Detector) RequiredDirection() core.Vec2 {
	switch d.EntryAngle {
	case 90:
		return core.NewVec2(0, 1)
	case 180:
		return core.NewVec2(-1, 0)
	case 270:
		return core.NewVec2(0, -1)
	default: // 0
		return core.NewVec2(1, 0)
	}
}

// Wall is one of the four fixed arena boundary segments. Walls are always
// reflective; Normal points into the arena.
type Wall struct {
	Segment geometry.Segment
	Normal  core.Vec2
}
