package tracer

import (
	"math"

	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/scene"
)

// Segment is one drawn polyline piece of a traced laser path. Segment order
// within one source's output is queue insertion order, which does not match
// physical time-of-flight across branches.
type Segment struct {
	Start, End core.Vec2
}

// rayState is one pending unit of propagation work. budget is the number of
// interactions this lineage may still spend; it strictly decreases from
// parent to child.
type rayState struct {
	origin    core.Vec2
	direction core.Vec2
	budget    int
}

// stateKey is a rayState quantized for the visited set. Rounding origin and
// direction to the configured precision collapses numerically-identical
// states (resonant mirror pairs) that would otherwise be reprocessed.
type stateKey struct {
	ox, oy, dx, dy int64
	budget         int
}

// TraceResult holds one source's propagation output: the segments to draw,
// the detector ids this source legitimately hit, and trace counters.
type TraceResult struct {
	Segments []Segment
	Hits     map[string]struct{}

	StatesProcessed int
	Escapes         int
	MaxQueueLen     int
}

// Tracer runs the branching ray propagation state machine over an immutable
// scene snapshot. It holds no state between Trace calls and is safe to use
// from multiple goroutines.
type Tracer struct {
	scene   *scene.Scene
	quantum float64 // 10^KeyPrecision, the dedup rounding factor
}

// NewTracer creates a tracer for the given scene
func NewTracer(s *scene.Scene) *Tracer {
	return &Tracer{
		scene:   s,
		quantum: math.Pow(10, float64(s.Config.KeyPrecision)),
	}
}

func (t *Tracer) key(state rayState) stateKey {
	return stateKey{
		ox:     int64(math.Round(state.origin.X * t.quantum)),
		oy:     int64(math.Round(state.origin.Y * t.quantum)),
		dx:     int64(math.Round(state.direction.X * t.quantum)),
		dy:     int64(math.Round(state.direction.Y * t.quantum)),
		budget: state.budget,
	}
}

// Trace propagates one source's beam to exhaustion. A FIFO queue is seeded
// with the source ray at the full interaction budget; each dequeued state
// emits exactly one segment and spawns children according to what it hit:
//
//   - nothing: an escape segment twice the arena diagonal, no children
//   - obstacle: absorbed, no children
//   - detector: terminal; the id is recorded if the acceptance test passes
//   - wall: one reflected child
//   - mirror: children per mirror kind (up to three for a grating)
//
// Children are enqueued only while budget-1 > 0, but the incoming segment is
// always emitted, so a beam that exhausts its budget at a mirror is still
// drawn up to the mirror.
func (t *Tracer) Trace(source scene.Source) TraceResult {
	result := TraceResult{Hits: make(map[string]struct{})}
	cfg := t.scene.Config

	queue := []rayState{{origin: source.Position, direction: source.Direction, budget: cfg.MaxReflections}}
	visited := make(map[stateKey]bool)

	for len(queue) > 0 {
		if len(queue) > result.MaxQueueLen {
			result.MaxQueueLen = len(queue)
		}
		state := queue[0]
		queue = queue[1:]

		if state.budget <= 0 {
			continue
		}
		key := t.key(state)
		if visited[key] {
			continue
		}
		visited[key] = true
		result.StatesProcessed++

		ray := core.NewRay(state.origin, state.direction)
		hit, found := ClosestIntersection(t.scene, ray)
		if !found {
			// Escape to infinity; long enough to cross any view of the arena
			end := ray.At(2 * t.scene.Diagonal())
			result.Segments = append(result.Segments, Segment{Start: state.origin, End: end})
			result.Escapes++
			continue
		}

		result.Segments = append(result.Segments, Segment{Start: state.origin, End: hit.Point})

		switch hit.Kind {
		case HitObstacle:
			// Absorbed
		case HitDetector:
			if acceptsRay(hit.Detector, state.direction, cfg.AcceptanceDeg) {
				result.Hits[hit.Detector.ID] = struct{}{}
			}
		case HitBoundary:
			if state.budget-1 > 0 {
				reflected := state.direction.Reflect(hit.Wall.Normal)
				queue = append(queue, rayState{origin: hit.Point, direction: reflected, budget: state.budget - 1})
			}
		case HitMirror:
			if state.budget-1 > 0 {
				for _, dir := range mirrorChildren(hit.Mirror, state.direction, cfg.GratingK) {
					queue = append(queue, rayState{origin: hit.Point, direction: dir, budget: state.budget - 1})
				}
			}
		}
	}

	return result
}
