package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/app"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/transport/assessdto"
)

type Handler struct {
	svc app.AssessService
}

func NewHandler(svc app.AssessService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in assessdto.AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json", "details": err.Error()})
		return
	}

	result, diag, err := h.svc.Assess(in.Inputs())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "assess failed", "details": err.Error()})
		return
	}

	resp := assessdto.AssessResponse{Result: result}
	if in.Debug {
		resp.Diagnostics = &diag
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in assessdto.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json", "details": err.Error()})
		return
	}

	analysis, err := h.svc.Analyze(in.RoutingDOT)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "analyze failed", "details": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, assessdto.AnalyzeResponse{Analysis: analysis})
}

func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := assessdto.QuestionsResponse{Order: h.svc.Order()}
	for _, q := range h.svc.Questions() {
		resp.Questions = append(resp.Questions, assessdto.FromQuestion(q))
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
