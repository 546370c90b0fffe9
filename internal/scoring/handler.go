package scoring

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medsim-engine/internal/simerr"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	specialty := r.URL.Query().Get("specialty")
	writeJSON(w, map[string]interface{}{
		"scenarios": h.engine.AvailableScenarios(difficulty, specialty),
	})
}

type StartScenarioRequest struct {
	UserID     string `json:"user_id"`
	ScenarioID string `json:"scenario_id"`
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	sess, err := h.engine.StartScenario(r.Context(), req.UserID, req.ScenarioID)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{"session": sess})
}

type ActionRequest struct {
	SessionID string `json:"session_id"`
	Action    Action `json:"action"`
}

func (h *Handler) ProcessAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.engine.ProcessAction(r.Context(), req.SessionID, req.Action)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"result":    result,
		"next_step": result.NextStep,
	})
}

type CompleteRequest struct {
	SessionID string `json:"session_id"`
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	rep, err := h.engine.CompleteSimulation(r.Context(), req.SessionID)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"performance": map[string]interface{}{
			"score":      rep.Score,
			"max_score":  rep.MaxScore,
			"percentage": rep.Percentage,
			"grade":      rep.Grade,
			"duration":   rep.DurationMinutes,
		},
		"report":          rep,
		"recommendations": rep.Resources,
	})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/scenarios", h.Scenarios)
	r.Post("/scenario/start", h.Start)
	r.Post("/scenario/action", h.ProcessAction)
	r.Post("/scenario/complete", h.Complete)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(simerr.HTTPStatus(err))
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
