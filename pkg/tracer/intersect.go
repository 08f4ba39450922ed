package tracer

import (
	"math"

	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/geometry"
	"github.com/df07/go-laser-maze/pkg/scene"
)

// HitKind identifies the category of object a ray intersected. The declared
// order is the tie-break priority: when two candidates sit at exactly the
// same distance, the lower kind wins (Boundary, then Mirror, then Obstacle,
// then Detector).
type HitKind int

const (
	HitBoundary HitKind = iota
	HitMirror
	HitObstacle
	HitDetector
)

// String returns the hit kind name
func (k HitKind) String() string {
	switch k {
	case HitBoundary:
		return "boundary"
	case HitMirror:
		return "mirror"
	case HitObstacle:
		return "obstacle"
	case HitDetector:
		return "detector"
	default:
		return "unknown"
	}
}

// Intersection describes the nearest valid hit of a ray against the scene.
// Exactly one of Wall/Mirror/Obstacle/Detector is set, matching Kind.
// Produced fresh per query, never stored.
type Intersection struct {
	Point    core.Vec2
	Distance float64
	Kind     HitKind
	Wall     *scene.Wall
	Mirror   *scene.Mirror
	Obstacle scene.Obstacle
	Detector *scene.Detector
}

// ClosestIntersection returns the nearest valid intersection of the ray with
// the full candidate set: the four walls, all mirrors, all obstacles and all
// detector edges. Hits closer than Epsilon are discarded so a ray leaving a
// surface never re-hits it at its own origin. Categories are scanned in
// priority order and the best hit is replaced only on strictly smaller
// distance, which makes equal-distance ties deterministic.
func ClosestIntersection(s *scene.Scene, ray core.Ray) (Intersection, bool) {
	best := Intersection{Distance: math.Inf(1)}
	found := false

	for i := range s.Walls {
		wall := &s.Walls[i]
		if t, p, ok := wall.Segment.Hit(ray); ok && t > core.Epsilon && t < best.Distance {
			best = Intersection{Point: p, Distance: t, Kind: HitBoundary, Wall: wall}
			found = true
		}
	}

	for _, m := range s.Mirrors {
		if t, p, ok := m.Segment().Hit(ray); ok && t > core.Epsilon && t < best.Distance {
			best = Intersection{Point: p, Distance: t, Kind: HitMirror, Mirror: m}
			found = true
		}
	}

	for _, o := range s.Obstacles {
		if t, p, ok := obstacleHit(o, ray); ok && t < best.Distance {
			best = Intersection{Point: p, Distance: t, Kind: HitObstacle, Obstacle: o}
			found = true
		}
	}

	for _, d := range s.Detectors {
		for _, edge := range d.Rect.Edges() {
			if t, p, ok := edge.Hit(ray); ok && t > core.Epsilon && t < best.Distance {
				best = Intersection{Point: p, Distance: t, Kind: HitDetector, Detector: d}
				found = true
			}
		}
	}

	if !found {
		return Intersection{}, false
	}
	return best, true
}

// obstacleHit dispatches the ray test over the three obstacle shapes.
// Hits within Epsilon of the origin are already filtered out here so a rect
// edge at the origin does not mask the opposite edge.
func obstacleHit(o scene.Obstacle, ray core.Ray) (float64, core.Vec2, bool) {
	switch obs := o.(type) {
	case scene.LineObstacle:
		t, p, ok := geometry.NewSegment(obs.P1, obs.P2).Hit(ray)
		if !ok || t <= core.Epsilon {
			return 0, core.Vec2{}, false
		}
		return t, p, true
	case scene.RectObstacle:
		bestT := math.Inf(1)
		var bestP core.Vec2
		hit := false
		for _, edge := range obs.Rect.Edges() {
			if t, p, ok := edge.Hit(ray); ok && t > core.Epsilon && t < bestT {
				bestT, bestP, hit = t, p, true
			}
		}
		if !hit {
			return 0, core.Vec2{}, false
		}
		return bestT, bestP, true
	case scene.CircleObstacle:
		t, p, ok := geometry.NewCircle(obs.Center, obs.Radius).Hit(ray)
		if !ok || t <= core.Epsilon {
			return 0, core.Vec2{}, false
		}
		return t, p, true
	default:
		return 0, core.Vec2{}, false
	}
}
