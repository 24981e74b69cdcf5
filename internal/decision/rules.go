package decision

import "strings"

const (
	flagPrefix       = "flag_"
	obligationPrefix = "obligation_"

	// DefaultMaxPasses bounds the fixed-point loop. The evaluator does not
	// detect non-converging rule sets; it stops at the cap with whatever
	// partial derivation resulted.
	DefaultMaxPasses = 10
)

// Rule derives flags and obligations from state. When must be pure. Effect
// keys are prefixed flag_ or obligation_; flag effects assign the value,
// obligation effects with a true value add the (unprefixed) name to the
// obligation set.
type Rule struct {
	Name    string
	When    func(s State) bool
	Effects map[string]bool
}

// Diagnostics describes how a fixed-point run converged.
type Diagnostics struct {
	Passes int  `json:"passes"`
	Capped bool `json:"capped"`
}

// Ruleset is an ordered rule registry with a bounded fixed-point evaluator.
type Ruleset struct {
	rules     []Rule
	maxPasses int
}

type RulesetOption func(*Ruleset)

func WithMaxPasses(n int) RulesetOption {
	return func(rs *Ruleset) {
		if n > 0 {
			rs.maxPasses = n
		}
	}
}

func NewRuleset(rules []Rule, opts ...RulesetOption) *Ruleset {
	rs := &Ruleset{rules: rules, maxPasses: DefaultMaxPasses}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Add appends a rule; registration order is evaluation order.
func (rs *Ruleset) Add(r Rule) { rs.rules = append(rs.rules, r) }

func (rs *Ruleset) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Apply runs all rules to a fixed point. Within a pass rules run in
// registration order and each firing rule updates the working state before
// the next rule is evaluated. The loop exits when a full pass changes nothing
// or the pass cap is reached; either way the best derived state is returned.
func (rs *Ruleset) Apply(s State) (State, Diagnostics) {
	current := s
	diag := Diagnostics{}
	changed := true

	for changed && diag.Passes < rs.maxPasses {
		changed = false
		diag.Passes++

		for _, rule := range rs.rules {
			if !rule.When(current) {
				continue
			}

			flags := current.Flags()
			obligations := map[string]struct{}{}
			for _, o := range current.Obligations() {
				obligations[o] = struct{}{}
			}

			for key, value := range rule.Effects {
				switch {
				case strings.HasPrefix(key, flagPrefix):
					name := strings.TrimPrefix(key, flagPrefix)
					if prev, ok := flags[name]; !ok || prev != value {
						flags[name] = value
						changed = true
					}
				case strings.HasPrefix(key, obligationPrefix):
					name := strings.TrimPrefix(key, obligationPrefix)
					if _, ok := obligations[name]; value && !ok {
						obligations[name] = struct{}{}
						changed = true
					}
				}
			}

			current = current.WithFlags(flags).WithObligations(obligations)
		}
	}

	diag.Capped = changed && diag.Passes >= rs.maxPasses
	return current, diag
}
