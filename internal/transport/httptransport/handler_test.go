package httptransport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/app"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/cache"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/routing"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/transport/assessdto"
)

const analyzeDOT = `digraph Q {
	Q1 [answers="1,2"]
	END

	Q1 -> END [cond="answer == 1"]
	Q1 -> END [cond="answer == 2"]
}`

func newTestHandler() *Handler {
	svc := app.NewService(
		decision.NewDefaultEngine(),
		routing.NewCompiler(),
		cache.NewMemo[*routing.Graph](16),
	)
	return NewHandler(svc)
}

func TestHandler_Assess(t *testing.T) {
	h := newTestHandler()

	body := `{"answers": [{"question_id": "Q1", "values": ["no_eu_connection"]}]}`
	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Assess(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp assessdto.AssessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Result.Classification != decision.OutOfScope {
		t.Fatalf("expected %s, got %s", decision.OutOfScope, resp.Result.Classification)
	}
	if resp.Diagnostics != nil {
		t.Fatalf("diagnostics must be omitted without debug, got %+v", resp.Diagnostics)
	}
}

func TestHandler_Assess_Debug(t *testing.T) {
	h := newTestHandler()

	body := `{"answers": [{"question_id": "Q1", "values": ["no_eu_connection"]}], "debug": true}`
	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Assess(rec, req)

	var resp assessdto.AssessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Diagnostics == nil || resp.Diagnostics.Passes < 1 {
		t.Fatalf("expected diagnostics with debug, got %+v", resp.Diagnostics)
	}
}

func TestHandler_Assess_InvalidJSON(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Assess(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid json") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_Assess_EmptyAnswers(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(`{"answers": []}`))
	rec := httptest.NewRecorder()
	h.Assess(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_Assess_MethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/assess", nil)
	rec := httptest.NewRecorder()
	h.Assess(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestHandler_Analyze(t *testing.T) {
	h := newTestHandler()

	body, err := json.Marshal(assessdto.AnalyzeRequest{RoutingDOT: analyzeDOT})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp assessdto.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Analysis == nil || resp.Analysis.TotalPaths != 2 {
		t.Fatalf("unexpected analysis: %+v", resp.Analysis)
	}
}

func TestHandler_Analyze_MissingDOT(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_Questions(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	rec := httptest.NewRecorder()
	h.Questions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp assessdto.QuestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Questions) != 12 {
		t.Fatalf("expected 12 questions, got %d", len(resp.Questions))
	}
	if len(resp.Order) == 0 || resp.Order[0] != "Q1" {
		t.Fatalf("unexpected recommended order: %v", resp.Order)
	}
}
