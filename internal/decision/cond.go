package decision

import "strings"

type condKind int

const (
	condFlagEquals condKind = iota
	// condUnsupported covers every condition form the grammar cannot parse
	// ("!=", "not in", answer references). Such conditions never match; the
	// branching they were meant to express lives in the routing table.
	condUnsupported
)

// Condition is a parsed skip condition. The only interpretable shape is
// "<flag> == <True|False>".
type Condition struct {
	Raw  string
	kind condKind
	flag string
	want bool
}

// ParseCondition parses the narrow skip-condition grammar: split on "==",
// trim, right side must be the literal True or False. Anything else is kept
// verbatim as unsupported.
func ParseCondition(raw string) Condition {
	parts := strings.SplitN(raw, "==", 2)
	if len(parts) != 2 || strings.Contains(parts[1], "==") {
		return Condition{Raw: raw, kind: condUnsupported}
	}
	flag := strings.TrimSpace(parts[0])
	lit := strings.TrimSpace(parts[1])
	if flag == "" || (lit != "True" && lit != "False") {
		return Condition{Raw: raw, kind: condUnsupported}
	}
	return Condition{Raw: raw, kind: condFlagEquals, flag: flag, want: lit == "True"}
}

// Matches evaluates the condition against the state. Unsupported conditions
// never match.
func (c Condition) Matches(s State) bool {
	switch c.kind {
	case condFlagEquals:
		return s.Flag(c.flag) == c.want
	default:
		return false
	}
}

// Supported reports whether the condition parsed into an interpretable kind.
func (c Condition) Supported() bool { return c.kind != condUnsupported }

func (c Condition) String() string { return c.Raw }
