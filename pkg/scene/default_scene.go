package scene

import (
	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/geometry"
)

// NewDefaultScene creates the introductory puzzle: one source, one plain
// mirror angled at 45 degrees routing the beam down into a single detector,
// with a couple of obstacles off the beam path.
func NewDefaultScene() *Scene {
	s := NewScene(DefaultConfig(800, 600))

	s.AddSource("laser-1", core.NewVec2(60, 300), core.NewVec2(1, 0))

	// 45-degree mirror: a horizontal beam at y=300 hits it at (400,300)
	// and reflects straight down
	s.AddMirror("mirror-1", core.NewVec2(360, 260), core.NewVec2(440, 340), PlainMirror)

	s.AddObstacle(RectObstacle{Rect: geometry.NewRect(200, 80, 120, 60)})
	s.AddObstacle(CircleObstacle{Center: core.NewVec2(600, 300), Radius: 40})

	// Catches the downward beam through its top edge
	s.AddDetector("detector-1", geometry.NewRect(375, 520, 50, 50), 90)

	return s
}

// NewSplitterScene creates a puzzle where a single beam must feed two
// detectors at once through a beam splitter: the reflected beam drops into
// one detector while the transmitted beam continues into the other.
func NewSplitterScene() *Scene {
	s := NewScene(DefaultConfig(800, 600))

	s.AddSource("laser-1", core.NewVec2(60, 300), core.NewVec2(1, 0))

	s.AddMirror("splitter-1", core.NewVec2(360, 260), core.NewVec2(440, 340), BeamSplitter)

	s.AddObstacle(LineObstacle{P1: core.NewVec2(300, 100), P2: core.NewVec2(500, 100)})

	s.AddDetector("detector-down", geometry.NewRect(375, 520, 50, 50), 90)
	s.AddDetector("detector-right", geometry.NewRect(700, 275, 50, 50), 0)

	return s
}

// NewGratingScene creates a puzzle around a diffraction grating at normal
// incidence: the zero order and the two first orders (±20.49 degrees at
// K=0.35) each land in their own detector. The acceptance half-angle is
// widened so the tilted first orders still satisfy the cone test.
func NewGratingScene() *Scene {
	config := DefaultConfig(800, 600)
	config.AcceptanceDeg = 25
	s := NewScene(config)

	s.AddSource("laser-1", core.NewVec2(100, 300), core.NewVec2(1, 0))

	// Vertical grating, normal incidence for the horizontal beam
	s.AddMirror("grating-1", core.NewVec2(500, 260), core.NewVec2(500, 340), DiffractionGrating)

	s.AddDetector("detector-zero", geometry.NewRect(700, 275, 50, 50), 0)
	s.AddDetector("detector-plus", geometry.NewRect(660, 340, 50, 60), 0)
	s.AddDetector("detector-minus", geometry.NewRect(660, 200, 50, 60), 0)

	return s
}
