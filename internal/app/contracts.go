package app

import (
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/optimizer"
)

// AssessService is the surface the transports consume.
type AssessService interface {
	Assess(answers []AnswerInput) (decision.ComplianceResult, decision.Diagnostics, error)
	Analyze(routingDOT string) (*optimizer.Analysis, error)
	Questions() []decision.Question
	Order() []string
}
