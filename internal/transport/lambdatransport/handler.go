package lambdatransport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/app"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/transport/assessdto"
)

type Handler struct {
	svc app.AssessService
}

func NewHandler(svc app.AssessService) *Handler {
	return &Handler{svc: svc}
}

// Handle routes on RawPath; the API Gateway proxies every route here.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	switch req.RawPath {
	case "/assess":
		return h.assess(req), nil
	case "/analyze":
		return h.analyze(req), nil
	case "/questions":
		return h.questions(), nil
	default:
		return jsonResp(http.StatusNotFound, map[string]any{"error": "unknown route", "path": req.RawPath}), nil
	}
}

func (h *Handler) assess(req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	body, err := readBody(req)
	if err != nil {
		return jsonResp(http.StatusBadRequest, map[string]any{"error": "invalid body", "details": err.Error()})
	}

	var in assessdto.AssessRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return jsonResp(http.StatusBadRequest, map[string]any{"error": "invalid json", "details": err.Error()})
	}

	result, diag, err := h.svc.Assess(in.Inputs())
	if err != nil {
		return jsonResp(http.StatusBadRequest, map[string]any{"error": "assess failed", "details": err.Error()})
	}

	resp := assessdto.AssessResponse{Result: result}
	if in.Debug {
		resp.Diagnostics = &diag
	}
	return jsonResp(http.StatusOK, resp)
}

func (h *Handler) analyze(req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	body, err := readBody(req)
	if err != nil {
		return jsonResp(http.StatusBadRequest, map[string]any{"error": "invalid body", "details": err.Error()})
	}

	var in assessdto.AnalyzeRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return jsonResp(http.StatusBadRequest, map[string]any{"error": "invalid json", "details": err.Error()})
	}

	analysis, err := h.svc.Analyze(in.RoutingDOT)
	if err != nil {
		return jsonResp(http.StatusBadRequest, map[string]any{"error": "analyze failed", "details": err.Error()})
	}

	return jsonResp(http.StatusOK, assessdto.AnalyzeResponse{Analysis: analysis})
}

func (h *Handler) questions() events.APIGatewayV2HTTPResponse {
	resp := assessdto.QuestionsResponse{Order: h.svc.Order()}
	for _, q := range h.svc.Questions() {
		resp.Questions = append(resp.Questions, assessdto.FromQuestion(q))
	}
	return jsonResp(http.StatusOK, resp)
}

func readBody(req events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func jsonResp(status int, body any) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       string(b),
	}
}
