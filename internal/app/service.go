package app

import (
	"fmt"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/cache"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/optimizer"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/routing"
)

type GraphCompiler interface {
	Compile(dot string) (*routing.Graph, error)
}

type GraphCache interface {
	GetOrCompute(key string, fn func() (*routing.Graph, error)) (*routing.Graph, error)
}

// AnswerInput is one answered question in submission order.
type AnswerInput struct {
	QuestionID string
	Values     []string
}

type Service struct {
	engine   *decision.Engine
	compiler GraphCompiler
	graphs   GraphCache
	maxDepth int
}

type ServiceOption func(*Service)

func WithMaxDepth(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxDepth = n
		}
	}
}

func NewService(engine *decision.Engine, compiler GraphCompiler, graphs GraphCache, opts ...ServiceOption) *Service {
	s := &Service{
		engine:   engine,
		compiler: compiler,
		graphs:   graphs,
		maxDepth: optimizer.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Assess replays the submitted answers in order on a fresh session and
// classifies the resulting state. Answers are applied as given; questions the
// engine would have pruned still count toward the path.
func (s *Service) Assess(answers []AnswerInput) (decision.ComplianceResult, decision.Diagnostics, error) {
	if len(answers) == 0 {
		return decision.ComplianceResult{}, decision.Diagnostics{}, fmt.Errorf("answers are required")
	}

	sess := s.engine.NewSession()
	for i, a := range answers {
		if a.QuestionID == "" {
			return decision.ComplianceResult{}, decision.Diagnostics{}, fmt.Errorf("answer %d: question_id is required", i)
		}
		if len(a.Values) == 0 {
			return decision.ComplianceResult{}, decision.Diagnostics{}, fmt.Errorf("answer %d (%s): values are required", i, a.QuestionID)
		}
		s.engine.Answer(sess, a.QuestionID, a.Values...)
	}

	return s.engine.Result(sess), sess.Diagnostics(), nil
}

// Analyze compiles (cached) the routing DOT and enumerates its paths.
func (s *Service) Analyze(routingDOT string) (*optimizer.Analysis, error) {
	if routingDOT == "" {
		return nil, fmt.Errorf("routing_dot is required")
	}

	graph, err := s.graphs.GetOrCompute(cache.SourceKey(routingDOT), func() (*routing.Graph, error) {
		return s.compiler.Compile(routingDOT)
	})
	if err != nil {
		return nil, err
	}

	return optimizer.NewAnalyzer(graph, optimizer.WithMaxDepth(s.maxDepth)).Analyze()
}

// Questions returns the catalogue in master order.
func (s *Service) Questions() []decision.Question {
	return s.engine.Questions()
}

// Order returns the recommended greedy question order against an empty state.
func (s *Service) Order() []string {
	ordered := optimizer.GreedyOrder(s.engine.Questions(), decision.NewState())
	out := make([]string, 0, len(ordered))
	for _, q := range ordered {
		out = append(out, q.ID)
	}
	return out
}
