package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/df07/go-laser-maze/pkg/loaders"
	"github.com/df07/go-laser-maze/pkg/scene"
	"github.com/df07/go-laser-maze/pkg/simulator"
)

// Server handles web requests for the laser maze simulator
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// PointJSON is an {x, y} pair in API responses
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SegmentJSON is one traced laser segment in API responses
type SegmentJSON struct {
	Start PointJSON `json:"start"`
	End   PointJSON `json:"end"`
}

// SimulateResponse is the result of one simulation run
type SimulateResponse struct {
	SourceSegments [][]SegmentJSON `json:"sourceSegments"` // Parallel to the request's sources
	Hits           []string        `json:"hits"`           // Detector ids hit by any source, sorted
	Complete       bool            `json:"complete"`       // True when every detector was hit
	Stats          StatsJSON       `json:"stats"`
}

// StatsJSON carries the simulation counters
type StatsJSON struct {
	StatesProcessed int `json:"statesProcessed"`
	SegmentsEmitted int `json:"segmentsEmitted"`
	Escapes         int `json:"escapes"`
	MaxQueueLen     int `json:"maxQueueLen"`
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.routes()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/simulate", s.handleSimulate)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scene.ListScenes())
}

// handleSimulate accepts a JSON scene document and returns the simulation
// result. The scene is rebuilt from scratch per request: the engine performs
// full recomputation, so clients resubmit the whole scene after each mirror
// move.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	sceneObj, err := loaders.ParseScene(r.Body)
	if err != nil {
		log.Printf("Rejected simulate request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := simulator.Simulate(sceneObj)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toResponse(result))
}

func toResponse(result *simulator.Result) SimulateResponse {
	resp := SimulateResponse{
		SourceSegments: make([][]SegmentJSON, len(result.SourceSegments)),
		Hits:           make([]string, 0, len(result.Hits)),
		Complete:       result.Complete,
		Stats: StatsJSON{
			StatesProcessed: result.Stats.StatesProcessed,
			SegmentsEmitted: result.Stats.SegmentsEmitted,
			Escapes:         result.Stats.Escapes,
			MaxQueueLen:     result.Stats.MaxQueueLen,
		},
	}

	for i, segments := range result.SourceSegments {
		resp.SourceSegments[i] = make([]SegmentJSON, 0, len(segments))
		for _, seg := range segments {
			resp.SourceSegments[i] = append(resp.SourceSegments[i], SegmentJSON{
				Start: PointJSON{X: seg.Start.X, Y: seg.Start.Y},
				End:   PointJSON{X: seg.End.X, Y: seg.End.Y},
			})
		}
	}

	for id := range result.Hits {
		resp.Hits = append(resp.Hits, id)
	}
	sort.Strings(resp.Hits)

	return resp
}
