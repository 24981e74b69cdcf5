package decision

import (
	"fmt"
	"strings"
)

// Guard is one typed routing predicate. A question is asked only when every
// guard registered for it allows the current state. Guards express the
// regulatory branching that the skip-condition grammar cannot.
type Guard interface {
	Allows(s State) bool
	String() string
}

// RoutingTable maps a question id to its ordered guards.
type RoutingTable map[string][]Guard

// Allows reports whether all guards for the question pass. Questions without
// guards are always allowed.
func (t RoutingTable) Allows(questionID string, s State) bool {
	for _, g := range t[questionID] {
		if !g.Allows(s) {
			return false
		}
	}
	return true
}

// AnswerIs requires a prior single-choice answer to equal Value.
type AnswerIs struct {
	QuestionID string
	Value      string
}

func (g AnswerIs) Allows(s State) bool { return s.AnswerIs(g.QuestionID, g.Value) }
func (g AnswerIs) String() string {
	return fmt.Sprintf("answer(%s) == %s", g.QuestionID, g.Value)
}

// AnswerContainsAny requires a prior answer to include at least one of Values.
type AnswerContainsAny struct {
	QuestionID string
	Values     []string
}

func (g AnswerContainsAny) Allows(s State) bool {
	a, ok := s.Answer(g.QuestionID)
	return ok && a.ContainsAny(g.Values...)
}

func (g AnswerContainsAny) String() string {
	return fmt.Sprintf("answer(%s) in [%s]", g.QuestionID, strings.Join(g.Values, ", "))
}

// AnswerAnyExcept requires a prior answer with at least one selection other
// than Value.
type AnswerAnyExcept struct {
	QuestionID string
	Value      string
}

func (g AnswerAnyExcept) Allows(s State) bool { return s.AnswerAnyExcept(g.QuestionID, g.Value) }
func (g AnswerAnyExcept) String() string {
	return fmt.Sprintf("answer(%s) != %s", g.QuestionID, g.Value)
}

// FlagIs requires a flag to currently hold Want.
type FlagIs struct {
	Flag string
	Want bool
}

func (g FlagIs) Allows(s State) bool { return s.Flag(g.Flag) == g.Want }
func (g FlagIs) String() string      { return fmt.Sprintf("flag(%s) == %t", g.Flag, g.Want) }
