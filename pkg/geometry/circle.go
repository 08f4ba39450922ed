package geometry

import (
	"math"

	"github.com/df07/go-laser-maze/pkg/core"
)

// Circle represents a circle by center and radius
type Circle struct {
	Center core.Vec2
	Radius float64
}

// NewCircle creates a new circle
func NewCircle(center core.Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Hit tests if a ray intersects the circle using the projection form.
// When the near root lies behind or on the origin (a ray leaving the rim, or
// starting inside), the far root is used instead, so a ray departing the
// circle's boundary does not immediately re-hit the surface it just left.
func (c Circle) Hit(ray core.Ray) (float64, core.Vec2, bool) {
	toCenter := c.Center.Subtract(ray.Origin)

	// Projection of the center onto the ray, and the squared perpendicular
	// distance from the center to the ray line
	proj := toCenter.Dot(ray.Direction)
	d2 := toCenter.LengthSquared() - proj*proj
	r2 := c.Radius * c.Radius
	if d2 > r2 {
		return 0, core.Vec2{}, false
	}

	halfChord := math.Sqrt(r2 - d2)
	t0 := proj - halfChord
	t1 := proj + halfChord

	t := t0
	if t < core.Epsilon {
		t = t1
	}
	if t < core.Epsilon {
		return 0, core.Vec2{}, false
	}

	return t, ray.At(t), true
}
