package routing

import (
	"fmt"
	"regexp"
	"strings"
)

// gographviz does not preserve edge declaration order, but routing semantics
// depend on it (first matching edge wins). Edges are re-extracted from the
// DOT text in source order.

type edgeSpec struct {
	From string
	To   string
	Cond string
	Set  string
}

func splitStatements(dot string) []string {
	var out []string
	var b strings.Builder
	inQuotes := false
	escape := false

	for _, r := range dot {
		if escape {
			b.WriteRune(r)
			escape = false
			continue
		}
		if r == '\\' && inQuotes {
			b.WriteRune(r)
			escape = true
			continue
		}
		if r == '"' {
			inQuotes = !inQuotes
			b.WriteRune(r)
			continue
		}
		if (r == ';' || r == '\n') && !inQuotes {
			s := strings.TrimSpace(b.String())
			if s != "" {
				out = append(out, s)
			}
			b.Reset()
			continue
		}
		b.WriteRune(r)
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

var edgeStmtRe = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*->\s*([A-Za-z_][A-Za-z0-9_]*)\s*(\[(.*)\])?\s*$`)
var condRe = regexp.MustCompile(`cond\s*=\s*"([^"]*)"`)
var setRe = regexp.MustCompile(`set\s*=\s*"([^"]*)"`)

func extractEdgesInTextOrder(dot string) ([]edgeSpec, error) {
	stmts := splitStatements(dot)
	out := make([]edgeSpec, 0)

	for _, s := range stmts {
		if !strings.Contains(s, "->") {
			continue
		}

		m := edgeStmtRe.FindStringSubmatch(s)
		if m == nil {
			return nil, fmt.Errorf("unsupported edge statement: %q", s)
		}

		spec := edgeSpec{From: m[1], To: m[2]}
		if len(m) >= 5 && m[4] != "" {
			if cm := condRe.FindStringSubmatch(m[4]); cm != nil {
				spec.Cond = strings.TrimSpace(cm[1])
			}
			if sm := setRe.FindStringSubmatch(m[4]); sm != nil {
				spec.Set = strings.TrimSpace(sm[1])
			}
		}

		out = append(out, spec)
	}

	return out, nil
}
