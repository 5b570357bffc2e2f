package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/viz"
)

type algorithmSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Kind   string `json:"kind"`
	BigO   string `json:"big_o"`
	Search bool   `json:"search"`
}

type algorithmDetail struct {
	catalog.Entry
	Kind    string            `json:"kind"`
	Search  bool              `json:"search"`
	Samples map[string]string `json:"samples"`
}

type runRequest struct {
	Algorithm string  `json:"algorithm"`
	Input     string  `json:"input"`
	Speed     float64 `json:"speed"`
	Target    *int    `json:"target,omitempty"`
}

type stateResponse struct {
	State     anim.RunState `json:"state"`
	Stats     anim.Stats    `json:"stats"`
	RunID     string        `json:"run_id,omitempty"`
	Algorithm string        `json:"algorithm,omitempty"`
	Speed     float64       `json:"speed"`
	Frame     *anim.Frame   `json:"frame,omitempty"`
}

type speedRequest struct {
	Speed float64 `json:"speed"`
}

type themeBody struct {
	Theme string `json:"theme"`
}

type selectedBody struct {
	Algorithm string `json:"algorithm"`
	Found     bool   `json:"found"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	names := s.registry.List()
	out := make([]algorithmSummary, 0, len(names))
	for _, name := range names {
		a, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		e := s.catalog.Lookup(name)
		out = append(out, algorithmSummary{
			ID:     name,
			Title:  e.Title,
			Kind:   a.Kind().String(),
			BigO:   s.catalog.Complexity(name),
			Search: algo.IsSearch(a),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAlgorithm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a, err := s.registry.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	e, ok := s.catalog.Find(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no catalog entry for %s", id))
		return
	}

	detail := algorithmDetail{
		Entry:   e,
		Kind:    a.Kind().String(),
		Search:  algo.IsSearch(a),
		Samples: make(map[string]string, len(catalog.Languages)),
	}
	for _, l := range catalog.Languages {
		code, err := s.catalog.Sample(id, l.Name)
		if err != nil {
			continue
		}
		detail.Samples[l.Name] = code
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Speed == 0 {
		req.Speed = s.ctrl.Speed()
	}

	err := s.ctrl.StartRequest(engine.Request{
		Algorithm: req.Algorithm,
		Input:     req.Input,
		Speed:     req.Speed,
		Target:    req.Target,
	})
	switch {
	case errors.Is(err, anim.ErrUnknownAlgorithm):
		writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusAccepted, s.snapshot())
}

// control adapts a parameterless controller transition to a handler that
// answers with the resulting state.
func (s *Server) control(fn func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn()
		writeJSON(w, http.StatusOK, s.snapshot())
	}
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	var req speedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.ctrl.SetSpeed(req.Speed); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) snapshot() stateResponse {
	resp := stateResponse{
		State:     s.ctrl.State(),
		Stats:     s.ctrl.Stats(),
		RunID:     s.ctrl.RunID(),
		Algorithm: s.ctrl.Algorithm(),
		Speed:     s.ctrl.Speed(),
	}
	if f, ok := s.ctrl.LastFrame(); ok {
		resp.Frame = &f
	}
	return resp
}

func (s *Server) requirePrefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.prefs == nil {
			writeError(w, http.StatusServiceUnavailable, errors.New("preferences are disabled"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	name, err := s.prefs.Theme(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: name})
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if _, ok := viz.LookupTheme(body.Theme); !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown theme %q", body.Theme))
		return
	}
	if err := s.prefs.SetTheme(r.Context(), body.Theme); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handlePutSelected(w http.ResponseWriter, r *http.Request) {
	var body selectedBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if _, err := s.registry.Get(body.Algorithm); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.prefs.SetSelected(r.Context(), body.Algorithm); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, selectedBody{Algorithm: body.Algorithm, Found: true})
}

func (s *Server) handleTakeSelected(w http.ResponseWriter, r *http.Request) {
	name, ok, err := s.prefs.TakeSelected(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, selectedBody{Algorithm: name, Found: ok})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	var hello *event
	if f, ok := s.ctrl.LastFrame(); ok {
		hello = &event{Type: "frame", Frame: &f}
	}
	s.hub.handle(w, r, hello, s.command)
}

// command applies a websocket control message to the controller.
func (s *Server) command(cmd command) error {
	switch cmd.Action {
	case "pause":
		s.ctrl.Pause()
	case "resume":
		s.ctrl.Resume()
	case "toggle":
		s.ctrl.Toggle()
	case "cancel":
		s.ctrl.Cancel()
	case "reset":
		s.ctrl.Reset()
	case "speed":
		return s.ctrl.SetSpeed(cmd.Speed)
	default:
		return fmt.Errorf("unknown action %q", cmd.Action)
	}
	return nil
}

// originChecker accepts requests without an Origin header (non-browser
// clients) and origins matching one of patterns. A pattern may hold a single
// "*" wildcard.
func originChecker(patterns []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, p := range patterns {
			if matchOrigin(p, origin) {
				return true
			}
		}
		return false
	}
}

func matchOrigin(pattern, origin string) bool {
	if pattern == "*" {
		return true
	}
	prefix, suffix, wild := strings.Cut(pattern, "*")
	if !wild {
		return pattern == origin
	}
	return len(origin) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(origin, prefix) &&
		strings.HasSuffix(origin, suffix)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
