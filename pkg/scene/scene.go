package scene

import (
	"math"

	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/geometry"
)

// Config contains the engine's fixed configuration constants
type Config struct {
	Width          float64 // Arena width
	Height         float64 // Arena height
	MaxReflections int     // Interaction budget per ray lineage
	GratingK       float64 // Grating constant (dimensionless, ~lambda/d)
	AcceptanceDeg  float64 // Detector acceptance half-angle in degrees
	KeyPrecision   int     // Decimal digits kept when quantizing dedup keys
}

// DefaultConfig returns the standard puzzle configuration
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:          width,
		Height:         height,
		MaxReflections: 12,
		GratingK:       0.35,
		AcceptanceDeg:  10,
		KeyPrecision:   3,
	}
}

// Scene contains all the elements needed for one simulation: an immutable
// snapshot of sources, mirrors, obstacles, detectors and the arena walls.
type Scene struct {
	Sources   []Source
	Mirrors   []*Mirror
	Obstacles []Obstacle
	Detectors []*Detector
	Walls     [4]Wall
	Config    Config
}

// NewScene creates an empty scene with the four boundary walls built from
// the configured arena size
func NewScene(config Config) *Scene {
	w, h := config.Width, config.Height
	return &Scene{
		Config: config,
		Walls: [4]Wall{
			// Top, right, bottom, left; normals point into the arena
			{Segment: geometry.NewSegment(core.NewVec2(0, 0), core.NewVec2(w, 0)), Normal: core.NewVec2(0, 1)},
			{Segment: geometry.NewSegment(core.NewVec2(w, 0), core.NewVec2(w, h)), Normal: core.NewVec2(-1, 0)},
			{Segment: geometry.NewSegment(core.NewVec2(w, h), core.NewVec2(0, h)), Normal: core.NewVec2(0, -1)},
			{Segment: geometry.NewSegment(core.NewVec2(0, h), core.NewVec2(0, 0)), Normal: core.NewVec2(1, 0)},
		},
	}
}

// Diagonal returns the length of the arena diagonal, used to size the
// escape-to-infinity segments
func (s *Scene) Diagonal() float64 {
	return math.Sqrt(s.Config.Width*s.Config.Width + s.Config.Height*s.Config.Height)
}

// AddSource adds a laser source to the scene
func (s *Scene) AddSource(id string, position, direction core.Vec2) {
	s.Sources = append(s.Sources, NewSource(id, position, direction))
}

// AddMirror adds a mirror of the given kind to the scene
func (s *Scene) AddMirror(id string, p1, p2 core.Vec2, kind MirrorKind) *Mirror {
	m := &Mirror{ID: id, P1: p1, P2: p2, Kind: kind}
	s.Mirrors = append(s.Mirrors, m)
	return m
}

// AddObstacle adds an opaque obstacle to the scene
func (s *Scene) AddObstacle(o Obstacle) {
	s.Obstacles = append(s.Obstacles, o)
}

// AddDetector adds a detector to the scene
func (s *Scene) AddDetector(id string, rect geometry.Rect, entryAngle int) *Detector {
	d := &Detector{ID: id, Rect: rect, EntryAngle: entryAngle}
	s.Detectors = append(s.Detectors, d)
	return d
}

// RemoveMirror removes the mirror with the given id, if present
func (s *Scene) RemoveMirror(id string) {
	for i, m := range s.Mirrors {
		if m.ID == id {
			s.Mirrors = append(s.Mirrors[:i], s.Mirrors[i+1:]...)
			return
		}
	}
}

// DetectorIDs returns the ids of all detectors in the scene
func (s *Scene) DetectorIDs() []string {
	ids := make([]string, 0, len(s.Detectors))
	for _, d := range s.Detectors {
		ids = append(ids, d.ID)
	}
	return ids
}
