package decision

import (
	"sort"
	"strconv"
	"strings"
)

type flagEntry struct {
	Name  string
	Value bool
}

// State is an immutable snapshot of an assessment: recorded answers in ask
// order, derived boolean flags and accumulated obligations. Flags and
// obligations are kept sorted so equal derivations produce equal keys no
// matter in which order rules fired.
type State struct {
	answers     []Answer
	flags       []flagEntry
	obligations []string
}

func NewState() State { return State{} }

// WithAnswer returns a new State with the answer appended.
func (s State) WithAnswer(a Answer) State {
	answers := make([]Answer, len(s.answers)+1)
	copy(answers, s.answers)
	answers[len(s.answers)] = a
	return State{answers: answers, flags: s.flags, obligations: s.obligations}
}

// WithFlags returns a new State whose flag set is replaced by flags.
func (s State) WithFlags(flags map[string]bool) State {
	entries := make([]flagEntry, 0, len(flags))
	for name, v := range flags {
		entries = append(entries, flagEntry{Name: name, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return State{answers: s.answers, flags: entries, obligations: s.obligations}
}

// WithObligations returns a new State whose obligation set is replaced.
func (s State) WithObligations(obligations map[string]struct{}) State {
	names := make([]string, 0, len(obligations))
	for name := range obligations {
		names = append(names, name)
	}
	sort.Strings(names)
	return State{answers: s.answers, flags: s.flags, obligations: names}
}

// Answer returns the first recorded answer for the question, if any.
func (s State) Answer(questionID string) (Answer, bool) {
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

func (s State) Answered(questionID string) bool {
	_, ok := s.Answer(questionID)
	return ok
}

// AnswerIs reports whether the question was answered with exactly v.
func (s State) AnswerIs(questionID, v string) bool {
	a, ok := s.Answer(questionID)
	return ok && a.Is(v)
}

// AnswerContains reports whether v is among the question's selections.
func (s State) AnswerContains(questionID, v string) bool {
	a, ok := s.Answer(questionID)
	return ok && a.Contains(v)
}

// AnswerAnyExcept reports whether the question was answered with at least one
// selection other than v.
func (s State) AnswerAnyExcept(questionID, v string) bool {
	a, ok := s.Answer(questionID)
	return ok && a.AnyExcept(v)
}

// Flag returns the flag's value; unset flags read as false.
func (s State) Flag(name string) bool {
	for _, e := range s.flags {
		if e.Name == name {
			return e.Value
		}
	}
	return false
}

// Flags returns a copy of the flag map.
func (s State) Flags() map[string]bool {
	out := make(map[string]bool, len(s.flags))
	for _, e := range s.flags {
		out[e.Name] = e.Value
	}
	return out
}

// Obligations returns the obligation names, sorted.
func (s State) Obligations() []string {
	out := make([]string, len(s.obligations))
	copy(out, s.obligations)
	return out
}

func (s State) HasObligation(name string) bool {
	for _, o := range s.obligations {
		if o == name {
			return true
		}
	}
	return false
}

func (s State) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Key is a cheap canonical identity for the whole state, usable as a map key.
func (s State) Key() string {
	var b strings.Builder
	b.WriteString("a:")
	for _, a := range s.answers {
		b.WriteString(a.Key())
		b.WriteByte(';')
	}
	b.WriteString(s.ClassKey())
	return b.String()
}

// ClassKey identifies the classification-relevant part of the state: the flag
// set and the obligation set. States with equal ClassKeys classify identically.
func (s State) ClassKey() string {
	var b strings.Builder
	b.WriteString("f:")
	for _, e := range s.flags {
		b.WriteString(e.Name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatBool(e.Value))
		b.WriteByte(';')
	}
	b.WriteString("o:")
	for _, o := range s.obligations {
		b.WriteString(o)
		b.WriteByte(';')
	}
	return b.String()
}

func (s State) Equal(other State) bool {
	return s.Key() == other.Key()
}
