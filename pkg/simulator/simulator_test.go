package simulator

import (
	"reflect"
	"sort"
	"testing"

	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/geometry"
	"github.com/df07/go-laser-maze/pkg/scene"
)

func sortedHits(r *Result) []string {
	hits := make([]string, 0, len(r.Hits))
	for id := range r.Hits {
		hits = append(hits, id)
	}
	sort.Strings(hits)
	return hits
}

func TestSimulate_DefaultSceneCompletes(t *testing.T) {
	s := scene.NewDefaultScene()
	result := Simulate(s)

	if !result.Complete {
		t.Errorf("Expected the default scene to be solved, hits: %v", sortedHits(result))
	}
	if !result.HitDetector("detector-1") {
		t.Error("Expected detector-1 in the hit-set")
	}
	if len(result.SourceSegments) != 1 || len(result.SourceSegments[0]) == 0 {
		t.Errorf("Expected segments for the single source, got %v", result.SourceSegments)
	}
	if result.Stats.SegmentsEmitted == 0 || result.Stats.StatesProcessed == 0 {
		t.Errorf("Expected non-empty stats, got %+v", result.Stats)
	}
}

func TestSimulate_RemovingRoutingMirrorFlipsSuccess(t *testing.T) {
	s := scene.NewDefaultScene()
	if !Simulate(s).Complete {
		t.Fatal("Scene should start solved")
	}

	s.RemoveMirror("mirror-1")
	result := Simulate(s)
	if result.Complete {
		t.Error("Expected failure after removing the only routing mirror")
	}
	if result.HitDetector("detector-1") {
		t.Error("Detector should be unreachable without the mirror")
	}
}

func TestSimulate_SplitterSceneCompletes(t *testing.T) {
	result := Simulate(scene.NewSplitterScene())

	expected := []string{"detector-down", "detector-right"}
	if got := sortedHits(result); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected hits %v, got %v", expected, got)
	}
	if !result.Complete {
		t.Error("Expected the splitter scene to be solved")
	}
}

func TestSimulate_GratingSceneCompletes(t *testing.T) {
	result := Simulate(scene.NewGratingScene())

	expected := []string{"detector-minus", "detector-plus", "detector-zero"}
	if got := sortedHits(result); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected hits %v, got %v", expected, got)
	}
	if !result.Complete {
		t.Error("Expected the grating scene to be solved")
	}
}

func TestSimulate_AnySourceSatisfiesAnyDetector(t *testing.T) {
	// Two sources, two detectors, each source reaching one detector:
	// success is a union property, not a per-source pairing
	s := scene.NewScene(scene.DefaultConfig(800, 600))
	s.AddSource("laser-a", core.NewVec2(0, 100), core.NewVec2(1, 0))
	s.AddSource("laser-b", core.NewVec2(0, 500), core.NewVec2(1, 0))
	s.AddDetector("d-top", geometry.NewRect(400, 75, 50, 50), 0)
	s.AddDetector("d-bottom", geometry.NewRect(400, 475, 50, 50), 0)

	result := Simulate(s)
	if !result.Complete {
		t.Errorf("Expected union success, hits: %v", sortedHits(result))
	}
	if len(result.SourceSegments) != 2 {
		t.Errorf("Expected per-source segment lists, got %d", len(result.SourceSegments))
	}
}

func TestSimulate_NoDetectorsIsVacuouslyComplete(t *testing.T) {
	s := scene.NewScene(scene.DefaultConfig(800, 600))
	s.AddSource("laser-1", core.NewVec2(0, 300), core.NewVec2(1, 0))

	if !Simulate(s).Complete {
		t.Error("A scene without detectors is vacuously complete")
	}
}

func TestSimulateParallel_MatchesSequential(t *testing.T) {
	s := scene.NewScene(scene.DefaultConfig(800, 600))
	s.AddSource("laser-a", core.NewVec2(0, 100), core.NewVec2(1, 0))
	s.AddSource("laser-b", core.NewVec2(0, 300), core.NewVec2(1, 0))
	s.AddSource("laser-c", core.NewVec2(0, 500), core.NewVec2(1, 0))
	s.AddMirror("m1", core.NewVec2(360, 260), core.NewVec2(440, 340), scene.BeamSplitter)
	s.AddDetector("d1", geometry.NewRect(375, 520, 50, 50), 90)
	s.AddDetector("d2", geometry.NewRect(400, 75, 50, 50), 0)

	sequential := Simulate(s)
	parallel := SimulateParallel(s, 4)

	if !reflect.DeepEqual(sortedHits(sequential), sortedHits(parallel)) {
		t.Errorf("Hit-sets differ: %v vs %v", sortedHits(sequential), sortedHits(parallel))
	}
	if sequential.Complete != parallel.Complete {
		t.Errorf("Completion differs: %v vs %v", sequential.Complete, parallel.Complete)
	}
	if !reflect.DeepEqual(sequential.SourceSegments, parallel.SourceSegments) {
		t.Error("Per-source segments differ between sequential and parallel runs")
	}
	if sequential.Stats != parallel.Stats {
		t.Errorf("Stats differ: %+v vs %+v", sequential.Stats, parallel.Stats)
	}
}

func TestSimulateParallel_FallsBackForSingleSource(t *testing.T) {
	s := scene.NewDefaultScene()

	result := SimulateParallel(s, 8)
	if !result.Complete {
		t.Error("Expected the default scene solved via the parallel path")
	}
}
