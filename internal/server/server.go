// HTTP API for on-demand deconfliction checks
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/logging"
	"droneops-deconflict/internal/mission"
	"droneops-deconflict/internal/scenario"
	"droneops-deconflict/internal/viz"
)

// Server exposes the deconfliction engine over HTTP. Every request carries
// its own dataset, so the server itself is stateless.
type Server struct {
	buffer   float64
	parallel bool
	mux      *http.ServeMux
}

func NewServer(buffer float64, parallel bool) *Server {
	s := &Server{buffer: buffer, parallel: parallel, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/check", s.handleCheck)
	s.mux.HandleFunc("/scenarios", s.handleScenarios)
	s.mux.HandleFunc("/viz", s.handleViz)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logging.FromContext(ctx).Info("server listening", slog.String("addr", addr))
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) decodeDataset(w http.ResponseWriter, r *http.Request) (*mission.Dataset, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	defer r.Body.Close()
	var ds mission.Dataset
	if err := json.NewDecoder(r.Body).Decode(&ds); err != nil {
		http.Error(w, "invalid dataset: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if err := ds.Validate(); err != nil {
		http.Error(w, "invalid dataset: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &ds, true
}

func (s *Server) bufferFor(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("buffer")
	if raw == "" {
		return s.buffer, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.decodeDataset(w, r)
	if !ok {
		return
	}
	buffer, err := s.bufferFor(r)
	if err != nil {
		http.Error(w, "invalid buffer: "+err.Error(), http.StatusBadRequest)
		return
	}
	check := deconflict.CheckMissionSafety
	if s.parallel {
		check = deconflict.CheckMissionSafetyParallel
	}
	result := check(ds.Mission, ds.Schedules, buffer)
	logging.FromContext(r.Context()).Info("check complete",
		slog.String("status", string(result.Status)),
		slog.Int("conflicts", len(result.Details)))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.decodeDataset(w, r)
	if !ok {
		return
	}
	buffer, err := s.bufferFor(r)
	if err != nil {
		http.Error(w, "invalid buffer: "+err.Error(), http.StatusBadRequest)
		return
	}
	results := scenario.Run(ds, buffer)
	type scenarioResult struct {
		ScenarioID string            `json:"scenario_id"`
		DroneID    string            `json:"drone_id"`
		Expected   deconflict.Status `json:"expected"`
		Got        deconflict.Status `json:"got"`
		Pass       bool              `json:"pass"`
		Error      string            `json:"error,omitempty"`
	}
	out := struct {
		AllPassed bool             `json:"all_passed"`
		Scenarios []scenarioResult `json:"scenarios"`
	}{AllPassed: scenario.AllPassed(results)}
	for _, res := range results {
		sr := scenarioResult{
			ScenarioID: res.ScenarioID,
			DroneID:    res.DroneID,
			Expected:   res.Expected,
			Got:        res.Got,
			Pass:       res.Pass,
		}
		if res.Err != nil {
			sr.Error = res.Err.Error()
		}
		out.Scenarios = append(out.Scenarios, sr)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (s *Server) handleViz(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.decodeDataset(w, r)
	if !ok {
		return
	}
	buffer, err := s.bufferFor(r)
	if err != nil {
		http.Error(w, "invalid buffer: "+err.Error(), http.StatusBadRequest)
		return
	}
	result := deconflict.CheckMissionSafety(ds.Mission, ds.Schedules, buffer)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viz.RenderHTML(w, ds.Mission, ds.Schedules, result.Details); err != nil {
		logging.FromContext(r.Context()).Error("render failed", slog.Any("error", err))
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
