package simulation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medsim-engine/internal/report"
	"medsim-engine/internal/simerr"
)

type Handler struct {
	svc *Service
	pdf *report.PDFRenderer
}

func NewHandler(svc *Service, pdf *report.PDFRenderer) *Handler {
	return &Handler{svc: svc, pdf: pdf}
}

type StartRequest struct {
	UserID    string          `json:"user_id"`
	Condition string          `json:"condition"`
	Language  string          `json:"language"`
	Profile   *PatientProfile `json:"profile,omitempty"`
}

type StartResponse struct {
	Presentation string   `json:"presentation"`
	Session      *Session `json:"session"`
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Condition == "" {
		writeJSONError(w, simerr.Validation("user_id and condition are required"))
		return
	}

	opening, sess, err := h.svc.StartSimulation(r.Context(), req.UserID, req.Condition, req.Language, req.Profile)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, StartResponse{Presentation: opening, Session: sess})
}

type QuestionRequest struct {
	UserID   string `json:"user_id"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (h *Handler) Question(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		writeJSONError(w, simerr.Validation("user_id is required"))
		return
	}
	writeJSON(w, h.svc.HandleQuestion(r.Context(), req.UserID, req.Text, req.Language))
}

type EndRequest struct {
	UserID string `json:"user_id"`
}

func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	var req EndRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	farewell, rep, err := h.svc.EndSimulation(r.Context(), req.UserID)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{"message": farewell, "report": rep})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSONError(w, simerr.Validation("user_id is required"))
		return
	}
	sess := h.svc.GetStatus(userID)
	writeJSON(w, map[string]interface{}{"session": sess})
}

func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSONError(w, simerr.Validation("user_id is required"))
		return
	}
	rep := h.svc.LastReport(userID)
	if rep == nil {
		writeJSONError(w, simerr.NotFound("report", userID))
		return
	}
	data, err := h.pdf.Render(rep)
	if err != nil {
		http.Error(w, "Report rendering failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Write(data)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/simulation/start", h.Start)
	r.Post("/simulation/question", h.Question)
	r.Post("/simulation/end", h.End)
	r.Get("/simulation/status", h.Status)
	r.Get("/simulation/report/pdf", h.ReportPDF)
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
