package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-laser-maze/pkg/simulator"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"splitter scene", "splitter", false},
		{"grating scene", "grating", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"missing JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
				}
				if scene == nil {
					t.Errorf("Expected a scene for '%s', got nil", tt.sceneType)
				}
			}
		})
	}
}

func TestCreateScene_JSONFile(t *testing.T) {
	doc := `{
		"width": 800, "height": 600,
		"sources": [{"id": "s", "position": {"x": 10, "y": 300}, "direction": {"x": 1, "y": 0}}],
		"detectors": [{"id": "d", "x": 400, "y": 275, "w": 50, "h": 50, "entryAngle": 0}]
	}`
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := createScene(path)
	if err != nil {
		t.Fatalf("createScene(%q) failed: %v", path, err)
	}
	if !simulator.Simulate(s).Complete {
		t.Error("Expected the loaded scene to be solvable")
	}
}

func TestSceneBaseName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"default", "default"},
		{"scenes/maze.json", "maze"},
		{"maze.json", "maze"},
	}
	for _, tt := range tests {
		if got := sceneBaseName(tt.in); got != tt.expected {
			t.Errorf("sceneBaseName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestDrawSimulation(t *testing.T) {
	s, err := createScene("default")
	if err != nil {
		t.Fatal(err)
	}
	result := simulator.Simulate(s)

	img := drawSimulation(s, result)
	bounds := img.Bounds()
	if bounds.Dx() != int(s.Config.Width) || bounds.Dy() != int(s.Config.Height) {
		t.Errorf("Expected %vx%v image, got %vx%v",
			s.Config.Width, s.Config.Height, bounds.Dx(), bounds.Dy())
	}

	// The beam's first leg runs horizontally from the source; sample a pixel
	// on it to confirm segments are plotted
	if img.RGBAAt(200, 300) != colorBeam {
		t.Errorf("Expected beam color at (200,300), got %v", img.RGBAAt(200, 300))
	}
}
