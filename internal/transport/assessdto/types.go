// Package assessdto holds the wire types shared by the HTTP and Lambda
// transports.
package assessdto

import (
	"github.com/awmpietro/golang-aiact-compliance-case/internal/app"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/optimizer"
)

type AnswerDTO struct {
	QuestionID string   `json:"question_id"`
	Values     []string `json:"values"`
}

type AssessRequest struct {
	Answers []AnswerDTO `json:"answers"`
	Debug   bool        `json:"debug,omitempty"`
}

func (r AssessRequest) Inputs() []app.AnswerInput {
	out := make([]app.AnswerInput, 0, len(r.Answers))
	for _, a := range r.Answers {
		out = append(out, app.AnswerInput{QuestionID: a.QuestionID, Values: a.Values})
	}
	return out
}

type AssessResponse struct {
	Result      decision.ComplianceResult `json:"result"`
	Diagnostics *decision.Diagnostics     `json:"diagnostics,omitempty"`
}

type AnalyzeRequest struct {
	RoutingDOT string `json:"routing_dot"`
}

type AnalyzeResponse struct {
	Analysis *optimizer.Analysis `json:"analysis"`
}

type OptionDTO struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Terminal bool   `json:"terminal,omitempty"`
}

type QuestionDTO struct {
	ID             string      `json:"id"`
	Prompt         string      `json:"prompt"`
	Type           string      `json:"type"`
	Options        []OptionDTO `json:"options"`
	SkipConditions []string    `json:"skip_conditions,omitempty"`
}

type QuestionsResponse struct {
	Questions []QuestionDTO `json:"questions"`
	Order     []string      `json:"recommended_order"`
}

func FromQuestion(q decision.Question) QuestionDTO {
	dto := QuestionDTO{
		ID:     q.ID,
		Prompt: q.Prompt,
		Type:   string(q.Choice),
	}
	for _, o := range q.Options {
		dto.Options = append(dto.Options, OptionDTO{Value: o.Value, Label: o.Label, Terminal: o.Terminal})
	}
	for _, c := range q.SkipConditions {
		dto.SkipConditions = append(dto.SkipConditions, c.Raw)
	}
	return dto
}
