package simulator

import (
	"runtime"
	"sync"

	"github.com/df07/go-laser-maze/pkg/scene"
	"github.com/df07/go-laser-maze/pkg/tracer"
)

// Stats contains counters about one simulation, summed over all sources
type Stats struct {
	StatesProcessed int // Total ray states dequeued and processed
	SegmentsEmitted int // Total polyline segments across all sources
	Escapes         int // Segments that left the scene without a hit
	MaxQueueLen     int // Largest work queue observed by any source
}

// Result is the outcome of simulating every source in a scene
type Result struct {
	// SourceSegments holds each source's segments, parallel to scene.Sources
	SourceSegments [][]tracer.Segment
	// Hits is the global hit-set: detector ids legitimately hit by any source
	Hits map[string]struct{}
	// Complete is true when every detector in the scene has been hit
	Complete bool
	Stats    Stats
}

// HitDetector reports whether the given detector id is in the global hit-set
func (r *Result) HitDetector(id string) bool {
	_, ok := r.Hits[id]
	return ok
}

// Simulate runs the propagation engine for every source and aggregates the
// per-source results. It is a pure function of the scene snapshot: the caller
// re-invokes it after every scene mutation, and no state survives between
// calls.
func Simulate(s *scene.Scene) *Result {
	result := newResult(s)
	tr := tracer.NewTracer(s)

	for i, source := range s.Sources {
		result.merge(i, tr.Trace(source))
	}

	result.finish(s)
	return result
}

// SimulateParallel produces the same result as Simulate, tracing sources
// concurrently. Each source's propagation is independent and read-only over
// the scene, so results land in their own slot; only the hit-set union and
// stats need a lock. workers <= 0 means one worker per CPU.
func SimulateParallel(s *scene.Scene, workers int) *Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(s.Sources) {
		workers = len(s.Sources)
	}
	if workers <= 1 {
		return Simulate(s)
	}

	result := newResult(s)
	tr := tracer.NewTracer(s)

	indexes := make(chan int, len(s.Sources))
	for i := range s.Sources {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	var mu sync.Mutex
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				traced := tr.Trace(s.Sources[i])
				mu.Lock()
				result.merge(i, traced)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	result.finish(s)
	return result
}

func newResult(s *scene.Scene) *Result {
	return &Result{
		SourceSegments: make([][]tracer.Segment, len(s.Sources)),
		Hits:           make(map[string]struct{}),
	}
}

// merge stores one source's trace into its slot and unions its hit-set
func (r *Result) merge(index int, traced tracer.TraceResult) {
	r.SourceSegments[index] = traced.Segments
	for id := range traced.Hits {
		r.Hits[id] = struct{}{}
	}
	r.Stats.StatesProcessed += traced.StatesProcessed
	r.Stats.SegmentsEmitted += len(traced.Segments)
	r.Stats.Escapes += traced.Escapes
	if traced.MaxQueueLen > r.Stats.MaxQueueLen {
		r.Stats.MaxQueueLen = traced.MaxQueueLen
	}
}

// finish derives overall success: the hit-set must cover every detector id.
// Any source may satisfy any detector.
func (r *Result) finish(s *scene.Scene) {
	for _, id := range s.DetectorIDs() {
		if _, ok := r.Hits[id]; !ok {
			r.Complete = false
			return
		}
	}
	r.Complete = true
}
