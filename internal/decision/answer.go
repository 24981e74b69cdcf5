package decision

import (
	"sort"
	"strings"
)

// Answer is an immutable recorded answer. Single-choice answers carry one
// value; multiple-choice answers carry the selected values in the order the
// caller gave them.
type Answer struct {
	QuestionID string
	Values     []string
}

func NewAnswer(questionID string, values ...string) Answer {
	vs := make([]string, len(values))
	copy(vs, values)
	return Answer{QuestionID: questionID, Values: vs}
}

// Is reports whether the answer is exactly the single value v.
func (a Answer) Is(v string) bool {
	return len(a.Values) == 1 && a.Values[0] == v
}

// Contains reports whether v is among the selections.
func (a Answer) Contains(v string) bool {
	for _, s := range a.Values {
		if s == v {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of vs is among the selections.
func (a Answer) ContainsAny(vs ...string) bool {
	for _, v := range vs {
		if a.Contains(v) {
			return true
		}
	}
	return false
}

// AnyExcept reports whether any selection differs from v.
func (a Answer) AnyExcept(v string) bool {
	for _, s := range a.Values {
		if s != v {
			return true
		}
	}
	return false
}

// Key is the canonical identity of the answer. Selections are sorted first so
// the same choices in a different order produce the same key.
func (a Answer) Key() string {
	vs := make([]string, len(a.Values))
	copy(vs, a.Values)
	sort.Strings(vs)
	return a.QuestionID + "=" + strings.Join(vs, "|")
}

// Equal is order-insensitive over selections.
func (a Answer) Equal(b Answer) bool {
	return a.Key() == b.Key()
}
