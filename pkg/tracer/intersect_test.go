package tracer

import (
	"math"
	"testing"

	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/geometry"
	"github.com/df07/go-laser-maze/pkg/scene"
)

func emptyScene() *scene.Scene {
	return scene.NewScene(scene.DefaultConfig(800, 600))
}

func TestClosestIntersection_WallOnly(t *testing.T) {
	s := emptyScene()
	ray := core.NewRay(core.NewVec2(100, 300), core.NewVec2(1, 0))

	hit, found := ClosestIntersection(s, ray)
	if !found {
		t.Fatal("Expected a wall hit")
	}
	if hit.Kind != HitBoundary {
		t.Errorf("Expected boundary hit, got %v", hit.Kind)
	}
	if math.Abs(hit.Distance-700) > core.Epsilon {
		t.Errorf("Expected distance 700, got %v", hit.Distance)
	}
	if hit.Wall == nil || hit.Wall.Normal != core.NewVec2(-1, 0) {
		t.Errorf("Expected the right wall with inward normal (-1,0), got %+v", hit.Wall)
	}
}

func TestClosestIntersection_NearestWins(t *testing.T) {
	s := emptyScene()
	s.AddMirror("far", core.NewVec2(600, 200), core.NewVec2(600, 400), scene.PlainMirror)
	s.AddMirror("near", core.NewVec2(400, 200), core.NewVec2(400, 400), scene.PlainMirror)

	ray := core.NewRay(core.NewVec2(0, 300), core.NewVec2(1, 0))
	hit, found := ClosestIntersection(s, ray)
	if !found {
		t.Fatal("Expected a hit")
	}
	if hit.Kind != HitMirror || hit.Mirror.ID != "near" {
		t.Errorf("Expected the near mirror, got %v %+v", hit.Kind, hit.Mirror)
	}
	if math.Abs(hit.Distance-400) > core.Epsilon {
		t.Errorf("Expected distance 400, got %v", hit.Distance)
	}
}

func TestClosestIntersection_ObstacleShapes(t *testing.T) {
	tests := []struct {
		name     string
		obstacle scene.Obstacle
		wantT    float64
	}{
		{"Line", scene.LineObstacle{P1: core.NewVec2(200, 200), P2: core.NewVec2(200, 400)}, 200},
		{"Rect", scene.RectObstacle{Rect: geometry.NewRect(300, 250, 100, 100)}, 300},
		{"Circle", scene.CircleObstacle{Center: core.NewVec2(500, 300), Radius: 50}, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyScene()
			s.AddObstacle(tt.obstacle)

			ray := core.NewRay(core.NewVec2(0, 300), core.NewVec2(1, 0))
			hit, found := ClosestIntersection(s, ray)
			if !found {
				t.Fatal("Expected a hit")
			}
			if hit.Kind != HitObstacle {
				t.Fatalf("Expected obstacle hit, got %v", hit.Kind)
			}
			if math.Abs(hit.Distance-tt.wantT) > 1e-5 {
				t.Errorf("Expected distance %v, got %v", tt.wantT, hit.Distance)
			}
		})
	}
}

func TestClosestIntersection_DetectorEdges(t *testing.T) {
	s := emptyScene()
	s.AddDetector("d1", geometry.NewRect(400, 275, 50, 50), 0)

	ray := core.NewRay(core.NewVec2(0, 300), core.NewVec2(1, 0))
	hit, found := ClosestIntersection(s, ray)
	if !found || hit.Kind != HitDetector {
		t.Fatalf("Expected detector hit, got found=%v kind=%v", found, hit.Kind)
	}
	// Left edge is the nearest of the two crossed edges
	if math.Abs(hit.Distance-400) > core.Epsilon {
		t.Errorf("Expected distance 400, got %v", hit.Distance)
	}
}

func TestClosestIntersection_InsideDetector(t *testing.T) {
	// A ray starting inside a detector still hits its boundary, through the
	// far edge; the detector is never treated as a filled region.
	s := emptyScene()
	s.AddDetector("d1", geometry.NewRect(400, 275, 50, 50), 0)

	ray := core.NewRay(core.NewVec2(425, 300), core.NewVec2(1, 0))
	hit, found := ClosestIntersection(s, ray)
	if !found || hit.Kind != HitDetector {
		t.Fatalf("Expected detector hit from inside, got found=%v kind=%v", found, hit.Kind)
	}
	if math.Abs(hit.Distance-25) > core.Epsilon {
		t.Errorf("Expected distance 25 to the far edge, got %v", hit.Distance)
	}
}

func TestClosestIntersection_SelfHitExcluded(t *testing.T) {
	// A ray leaving a mirror surface must not re-hit it at distance zero
	s := emptyScene()
	s.AddMirror("m1", core.NewVec2(400, 200), core.NewVec2(400, 400), scene.PlainMirror)

	ray := core.NewRay(core.NewVec2(400, 300), core.NewVec2(-1, 0))
	hit, found := ClosestIntersection(s, ray)
	if !found {
		t.Fatal("Expected the left wall")
	}
	if hit.Kind != HitBoundary {
		t.Errorf("Expected boundary, got %v (self-hit not excluded?)", hit.Kind)
	}
	if math.Abs(hit.Distance-400) > core.Epsilon {
		t.Errorf("Expected distance 400, got %v", hit.Distance)
	}
}

func TestClosestIntersection_TieBreakPriority(t *testing.T) {
	// A mirror and an obstacle at exactly the same distance: the mirror wins
	// because categories are scanned in priority order and only strictly
	// closer candidates replace the current best.
	s := emptyScene()
	s.AddObstacle(scene.LineObstacle{P1: core.NewVec2(400, 300), P2: core.NewVec2(400, 400)})
	s.AddMirror("m1", core.NewVec2(400, 200), core.NewVec2(400, 300), scene.PlainMirror)

	ray := core.NewRay(core.NewVec2(0, 300), core.NewVec2(1, 0))
	hit, found := ClosestIntersection(s, ray)
	if !found {
		t.Fatal("Expected a hit")
	}
	if hit.Kind != HitMirror {
		t.Errorf("Expected the mirror to win the equal-distance tie, got %v", hit.Kind)
	}
}

func TestClosestIntersection_NothingAhead(t *testing.T) {
	// Only reachable with an origin outside the arena pointing away
	s := emptyScene()
	ray := core.NewRay(core.NewVec2(-10, -10), core.NewVec2(-1, 0))

	if _, found := ClosestIntersection(s, ray); found {
		t.Error("Expected no intersection for a ray leaving the arena's far side")
	}
}
