package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/geometry"
	"github.com/df07/go-laser-maze/pkg/scene"
)

// PointDoc is an {x, y} coordinate pair in a scene document
type PointDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SourceDoc describes a laser source in a scene document
type SourceDoc struct {
	ID        string   `json:"id"`
	Position  PointDoc `json:"position"`
	Direction PointDoc `json:"direction"`
}

// MirrorDoc describes a mirror in a scene document
type MirrorDoc struct {
	ID   string   `json:"id"`
	P1   PointDoc `json:"p1"`
	P2   PointDoc `json:"p2"`
	Kind string   `json:"kind"` // "plain", "splitter" or "grating"
}

// ObstacleDoc describes an obstacle, tagged by Type
type ObstacleDoc struct {
	Type string `json:"type"` // "line", "rect" or "circle"

	// line fields
	P1 *PointDoc `json:"p1,omitempty"`
	P2 *PointDoc `json:"p2,omitempty"`

	// rect fields
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	W float64 `json:"w,omitempty"`
	H float64 `json:"h,omitempty"`

	// circle fields
	Center *PointDoc `json:"center,omitempty"`
	Radius float64   `json:"radius,omitempty"`
}

// DetectorDoc describes a detector in a scene document
type DetectorDoc struct {
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	W          float64 `json:"w"`
	H          float64 `json:"h"`
	EntryAngle int     `json:"entryAngle"`
}

// SceneDoc is the root of a JSON scene document. Config fields are optional
// and default to the standard puzzle configuration.
type SceneDoc struct {
	Width          float64  `json:"width"`
	Height         float64  `json:"height"`
	MaxReflections *int     `json:"maxReflections,omitempty"`
	GratingK       *float64 `json:"gratingK,omitempty"`
	AcceptanceDeg  *float64 `json:"acceptanceDeg,omitempty"`
	KeyPrecision   *int     `json:"keyPrecision,omitempty"`

	Sources   []SourceDoc   `json:"sources"`
	Mirrors   []MirrorDoc   `json:"mirrors"`
	Obstacles []ObstacleDoc `json:"obstacles"`
	Detectors []DetectorDoc `json:"detectors"`
}

// LoadScene reads and parses a JSON scene file
func LoadScene(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %v", err)
	}
	defer file.Close()
	return ParseScene(file)
}

// ParseScene parses a JSON scene document into a Scene, validating element
// kinds, entry angles and source directions along the way
func ParseScene(r io.Reader) (*scene.Scene, error) {
	var doc SceneDoc
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %v", err)
	}
	return BuildScene(&doc)
}

// BuildScene converts a parsed document into a Scene
func BuildScene(doc *SceneDoc) (*scene.Scene, error) {
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("invalid arena size %gx%g", doc.Width, doc.Height)
	}

	config := scene.DefaultConfig(doc.Width, doc.Height)
	if doc.MaxReflections != nil {
		config.MaxReflections = *doc.MaxReflections
	}
	if doc.GratingK != nil {
		config.GratingK = *doc.GratingK
	}
	if doc.AcceptanceDeg != nil {
		config.AcceptanceDeg = *doc.AcceptanceDeg
	}
	if doc.KeyPrecision != nil {
		config.KeyPrecision = *doc.KeyPrecision
	}

	s := scene.NewScene(config)

	for i, src := range doc.Sources {
		direction := vec(src.Direction)
		if direction.Normalize() == (core.Vec2{}) {
			return nil, fmt.Errorf("source %d (%q) has a zero direction", i, src.ID)
		}
		s.AddSource(src.ID, vec(src.Position), direction)
	}

	for i, m := range doc.Mirrors {
		kind, err := parseMirrorKind(m.Kind)
		if err != nil {
			return nil, fmt.Errorf("mirror %d (%q): %v", i, m.ID, err)
		}
		s.AddMirror(m.ID, vec(m.P1), vec(m.P2), kind)
	}

	for i, o := range doc.Obstacles {
		obstacle, err := parseObstacle(o)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %v", i, err)
		}
		s.AddObstacle(obstacle)
	}

	for i, d := range doc.Detectors {
		switch d.EntryAngle {
		case 0, 90, 180, 270:
		default:
			return nil, fmt.Errorf("detector %d (%q): entry angle must be 0, 90, 180 or 270, got %d", i, d.ID, d.EntryAngle)
		}
		s.AddDetector(d.ID, geometry.NewRect(d.X, d.Y, d.W, d.H), d.EntryAngle)
	}

	return s, nil
}

func vec(p PointDoc) core.Vec2 {
	return core.NewVec2(p.X, p.Y)
}

func parseMirrorKind(kind string) (scene.MirrorKind, error) {
	switch kind {
	case "plain", "":
		return scene.PlainMirror, nil
	case "splitter":
		return scene.BeamSplitter, nil
	case "grating":
		return scene.DiffractionGrating, nil
	default:
		return 0, fmt.Errorf("unknown mirror kind %q", kind)
	}
}

func parseObstacle(o ObstacleDoc) (scene.Obstacle, error) {
	switch o.Type {
	case "line":
		if o.P1 == nil || o.P2 == nil {
			return nil, fmt.Errorf("line obstacle needs p1 and p2")
		}
		return scene.LineObstacle{P1: vec(*o.P1), P2: vec(*o.P2)}, nil
	case "rect":
		if o.W <= 0 || o.H <= 0 {
			return nil, fmt.Errorf("rect obstacle needs positive w and h")
		}
		return scene.RectObstacle{Rect: geometry.NewRect(o.X, o.Y, o.W, o.H)}, nil
	case "circle":
		if o.Center == nil || o.Radius <= 0 {
			return nil, fmt.Errorf("circle obstacle needs a center and positive radius")
		}
		return scene.CircleObstacle{Center: vec(*o.Center), Radius: o.Radius}, nil
	default:
		return nil, fmt.Errorf("unknown obstacle type %q", o.Type)
	}
}
