package geometry

import (
	"math"

	"github.com/df07/go-laser-maze/pkg/core"
)

// Segment represents a finite line segment between two endpoints
type Segment struct {
	P1, P2 core.Vec2
}

// NewSegment creates a new segment
func NewSegment(p1, p2 core.Vec2) Segment {
	return Segment{P1: p1, P2: p2}
}

// Direction returns the (non-normalized) edge vector P2 - P1
func (s Segment) Direction() core.Vec2 {
	return s.P2.Subtract(s.P1)
}

// Normal returns a unit vector perpendicular to the segment.
// A degenerate (zero-length) segment yields the zero vector.
func (s Segment) Normal() core.Vec2 {
	d := s.Direction()
	return core.NewVec2(-d.Y, d.X).Normalize()
}

// Hit tests if a ray intersects the segment, solving the 2x2 linear system
// via cross-product identities. Returns the ray parameter t (equal to the
// distance from the origin when the ray direction is unit length) and the
// intersection point.
func (s Segment) Hit(ray core.Ray) (float64, core.Vec2, bool) {
	edge := s.Direction()

	// Parallel ray and segment never intersect
	denominator := ray.Direction.Cross(edge)
	if math.Abs(denominator) < core.Epsilon {
		return 0, core.Vec2{}, false
	}

	toStart := s.P1.Subtract(ray.Origin)
	t1 := toStart.Cross(edge) / denominator          // ray parameter
	t2 := toStart.Cross(ray.Direction) / denominator // segment parameter

	// The hit must not lie strictly behind the origin, and must fall on the
	// segment itself, both within tolerance
	if t1 < -core.Epsilon {
		return 0, core.Vec2{}, false
	}
	if t2 < -core.Epsilon || t2 > 1+core.Epsilon {
		return 0, core.Vec2{}, false
	}

	return t1, ray.At(t1), true
}
