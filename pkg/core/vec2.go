package core

import "math"

// Epsilon is the geometric tolerance used by the whole engine. Intersection
// tests, normal orientation and the normalize degenerate case all compare
// against the same constant so near-threshold behavior is reproducible.
const Epsilon = 1e-6

// Vec2 represents a 2D vector, used both as a position and as a direction
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromAngle returns the unit vector at the given angle (radians)
func VecFromAngle(theta float64) Vec2 {
	return Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Subtract returns the difference of two vectors
func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Multiply returns the vector scaled by a scalar
func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// Length returns the magnitude of the vector
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D scalar cross product (z component of the 3D cross)
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Negate returns the negative of the vector
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Angle returns the signed plane angle of the vector in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns a unit vector in the same direction.
// A vector with magnitude below Epsilon normalizes to the zero vector;
// degenerate directions propagate instead of failing.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < Epsilon {
		return Vec2{}
	}
	return Vec2{v.X / length, v.Y / length}
}

// Reflect returns the direction reflected about the unit normal n:
// d - 2(d·n)n, re-normalized so accumulated rounding never drifts
// direction vectors away from unit length.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Subtract(n.Multiply(2 * v.Dot(n))).Normalize()
}

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec2
	Direction Vec2
}

// NewRay creates a new ray
func NewRay(origin, direction Vec2) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
