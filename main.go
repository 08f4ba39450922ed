package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/df07/go-laser-maze/pkg/core"
	"github.com/df07/go-laser-maze/pkg/geometry"
	"github.com/df07/go-laser-maze/pkg/loaders"
	"github.com/df07/go-laser-maze/pkg/scene"
	"github.com/df07/go-laser-maze/pkg/simulator"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene name or path to a .json scene file")
	workers := flag.Int("workers", 1, "Trace sources in parallel with this many workers")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Laser Maze Simulator")
		fmt.Println("Usage: laser-maze [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-8s - %s\n", info.Name, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/trace_<timestamp>.png")
		return
	}

	selectedScene, err := createScene(*sceneName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Create output directory for this scene
	outputDir := filepath.Join("output", sceneBaseName(*sceneName))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	var result *simulator.Result
	if *workers > 1 {
		result = simulator.SimulateParallel(selectedScene, *workers)
	} else {
		result = simulator.Simulate(selectedScene)
	}
	simTime := time.Since(startTime)

	fmt.Printf("Simulation completed in %v\n", simTime)
	fmt.Printf("Processed %d ray states, emitted %d segments (%d escaped)\n",
		result.Stats.StatesProcessed, result.Stats.SegmentsEmitted, result.Stats.Escapes)

	hits := make([]string, 0, len(result.Hits))
	for id := range result.Hits {
		hits = append(hits, id)
	}
	sort.Strings(hits)
	fmt.Printf("Detectors hit: %d/%d %v\n", len(hits), len(selectedScene.Detectors), hits)
	if result.Complete {
		fmt.Println("Puzzle solved: every detector is lit")
	} else {
		fmt.Println("Puzzle unsolved: some detectors remain dark")
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("trace_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, drawSimulation(selectedScene, result)); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Trace saved as %s\n", filename)
}

// createScene builds a built-in scene by name, or loads a .json scene file
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("no scene specified")
	}
	if strings.HasSuffix(name, ".json") {
		return loaders.LoadScene(name)
	}
	return scene.CreateScene(name)
}

func sceneBaseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, ".json")
}

// Drawing colors for the trace visualization
var (
	colorBackground = color.RGBA{24, 24, 32, 255}
	colorWall       = color.RGBA{90, 90, 110, 255}
	colorObstacle   = color.RGBA{130, 130, 140, 255}
	colorMirror     = color.RGBA{140, 200, 255, 255}
	colorBeam       = color.RGBA{255, 210, 80, 255}
	colorDetectorOn = color.RGBA{90, 220, 120, 255}
	colorDetector   = color.RGBA{220, 90, 90, 255}
)

// drawSimulation renders the scene and the traced segments into an image
func drawSimulation(s *scene.Scene, result *simulator.Result) *image.RGBA {
	width := int(s.Config.Width)
	height := int(s.Config.Height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, colorBackground)
		}
	}

	for _, wall := range s.Walls {
		drawLine(img, wall.Segment.P1, wall.Segment.P2, colorWall)
	}

	for _, o := range s.Obstacles {
		switch obs := o.(type) {
		case scene.LineObstacle:
			drawLine(img, obs.P1, obs.P2, colorObstacle)
		case scene.RectObstacle:
			drawRect(img, obs.Rect, colorObstacle)
		case scene.CircleObstacle:
			drawCircle(img, obs.Center, obs.Radius, colorObstacle)
		}
	}

	for _, d := range s.Detectors {
		c := colorDetector
		if result.HitDetector(d.ID) {
			c = colorDetectorOn
		}
		drawRect(img, d.Rect, c)
	}

	for _, segments := range result.SourceSegments {
		for _, seg := range segments {
			drawLine(img, seg.Start, seg.End, colorBeam)
		}
	}

	// Mirrors last so they stay visible under dense beam bundles
	for _, m := range s.Mirrors {
		drawLine(img, m.P1, m.P2, colorMirror)
	}

	return img
}

// drawLine plots a line by stepping one pixel at a time along the longer axis
func drawLine(img *image.RGBA, from, to core.Vec2, c color.Color) {
	delta := to.Subtract(from)
	steps := int(math.Max(math.Abs(delta.X), math.Abs(delta.Y)))
	if steps == 0 {
		img.Set(int(from.X), int(from.Y), c)
		return
	}
	for i := 0; i <= steps; i++ {
		p := from.Add(delta.Multiply(float64(i) / float64(steps)))
		img.Set(int(p.X), int(p.Y), c)
	}
}

func drawRect(img *image.RGBA, r geometry.Rect, c color.Color) {
	for _, edge := range r.Edges() {
		drawLine(img, edge.P1, edge.P2, c)
	}
}

func drawCircle(img *image.RGBA, center core.Vec2, radius float64, c color.Color) {
	steps := int(2*math.Pi*radius) + 8
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		p := center.Add(core.VecFromAngle(theta).Multiply(radius))
		img.Set(int(p.X), int(p.Y), c)
	}
}
