package decision

type ChoiceType string

const (
	SingleChoice   ChoiceType = "single_choice"
	MultipleChoice ChoiceType = "multiple_choice"
)

// Option is one selectable answer value. Terminal marks options whose
// selection alone is enough to end the assessment.
type Option struct {
	Value    string
	Label    string
	Terminal bool
}

// Question is static configuration, loaded once and never mutated.
type Question struct {
	ID                  string
	Prompt              string
	Choice              ChoiceType
	Options             []Option
	Priority            float64
	InformationGain     float64
	SkipConditions      []Condition
	TerminalProbability float64
}

// Skippable evaluates the skip conditions in order and returns the first that
// matches.
func (q Question) Skippable(s State) (Condition, bool) {
	for _, c := range q.SkipConditions {
		if c.Matches(s) {
			return c, true
		}
	}
	return Condition{}, false
}

// OptionValues returns the answer values in declaration order.
func (q Question) OptionValues() []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Value
	}
	return out
}
