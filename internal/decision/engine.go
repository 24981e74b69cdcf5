package decision

import "time"

// Engine traverses a fixed master question order, pruning questions via skip
// conditions and routing guards and deriving flags/obligations after every
// answer. The engine itself holds no per-assessment state and may be shared
// across concurrent sessions; each assessment owns one Session.
type Engine struct {
	questions map[string]Question
	order     []string
	rules     *Ruleset
	routing   RoutingTable
	observer  InferenceObserver
}

type EngineOption func(*Engine)

func WithInferenceObserver(obs InferenceObserver) EngineOption {
	return func(e *Engine) { e.observer = obs }
}

func NewEngine(questions []Question, order []string, rules *Ruleset, routing RoutingTable, opts ...EngineOption) *Engine {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	e := &Engine{questions: byID, order: order, rules: rules, routing: routing}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDefaultEngine wires the built-in EU AI Act catalogue.
func NewDefaultEngine(opts ...EngineOption) *Engine {
	return NewEngine(DefaultQuestions(), MasterOrder(), NewRuleset(DefaultRules()), DefaultRouting(), opts...)
}

// Session carries the mutable per-assessment state: current State, the ordered
// path of answered question ids and the convergence diagnostics of the last
// inference run. One session per concurrent assessment.
type Session struct {
	state State
	path  []string
	diag  Diagnostics
}

func (e *Engine) NewSession() *Session { return &Session{state: NewState()} }

func (s *Session) State() State { return s.state }

func (s *Session) Path() []string {
	out := make([]string, len(s.path))
	copy(out, s.path)
	return out
}

// Diagnostics reports how the most recent inference run converged.
func (s *Session) Diagnostics() Diagnostics { return s.diag }

// Reset discards all session state.
func (s *Session) Reset() {
	s.state = NewState()
	s.path = nil
	s.diag = Diagnostics{}
}

func (e *Engine) Question(id string) (Question, bool) {
	q, ok := e.questions[id]
	return q, ok
}

// Questions returns the catalogue in master order.
func (e *Engine) Questions() []Question {
	out := make([]Question, 0, len(e.order))
	for _, id := range e.order {
		if q, ok := e.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

// NextQuestion returns the next question to ask, or false when the assessment
// is over: a terminal flag is set or the order is exhausted.
func (e *Engine) NextQuestion(sess *Session) (Question, bool) {
	state := sess.state
	if state.Flag(FlagOutOfScope) || state.Flag(FlagExcluded) || state.Flag(FlagProhibited) {
		return Question{}, false
	}

	for _, id := range e.order {
		if state.Answered(id) {
			continue
		}
		q, ok := e.questions[id]
		if !ok {
			continue
		}
		if _, skip := q.Skippable(state); skip {
			continue
		}
		if !e.routing.Allows(id, state) {
			continue
		}
		return q, true
	}

	return Question{}, false
}

// Answer records the answer, appends to the path and runs inference to a
// fixed point. Unknown question ids and answers whose shape does not match
// the question's choice type are accepted as-is; the engine does not validate
// that the caller asked for the "correct" next question.
func (e *Engine) Answer(sess *Session, questionID string, values ...string) {
	start := time.Now()
	sess.state = sess.state.WithAnswer(NewAnswer(questionID, values...))
	sess.path = append(sess.path, questionID)
	sess.state, sess.diag = e.rules.Apply(sess.state)
	if e.observer != nil {
		e.observer.ObserveInference(questionID, sess.diag, time.Since(start))
	}
}

// Step is the stateless transition: it does not touch any session.
func (e *Engine) Step(state State, questionID string, values ...string) (State, Diagnostics) {
	return e.rules.Apply(state.WithAnswer(NewAnswer(questionID, values...)))
}

// Result classifies the current session state.
func (e *Engine) Result(sess *Session) ComplianceResult {
	classification, explanation := Classify(sess.state)
	return ComplianceResult{
		Classification: classification,
		Flags:          sess.state.Flags(),
		Obligations:    sess.state.Obligations(),
		QuestionsAsked: len(sess.path),
		PathTaken:      sess.Path(),
		Explanation:    explanation,
	}
}
