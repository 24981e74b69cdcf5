// internal/routing/compiler.go
package routing

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision/eval"
)

// Compiler turns a DOT questionnaire definition into a Graph. Nodes declare
// their answer keys via an answers="1,2,3" attribute and may carry
// set="k=v,..." assignments; edges carry cond="..." expressions over the
// answer just given plus accumulated flags, and optional set assignments.
type Compiler struct{}

func NewCompiler() *Compiler { return &Compiler{} }

func (c *Compiler) Compile(dot string) (*Graph, error) {
	ast, err := gographviz.ParseString(dot)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DOT: %w", err)
	}

	g := gographviz.NewGraph()
	if err := gographviz.Analyse(ast, g); err != nil {
		return nil, fmt.Errorf("failed to analyze DOT: %w", err)
	}

	graph := &Graph{
		Start: "Q1",
		Nodes: map[string]*Node{},
	}
	if start := getAttr(g.Attrs, "start"); start != "" {
		graph.Start = start
	}

	for _, n := range g.Nodes.Nodes {
		name := n.Name

		answers, err := ParseAnswerKeys(getAttr(n.Attrs, "answers"))
		if err != nil {
			return nil, fmt.Errorf("invalid answers in node %q: %w", name, err)
		}

		set, err := ParseAssignments(getAttr(n.Attrs, "set"))
		if err != nil {
			return nil, fmt.Errorf("invalid set in node %q: %w", name, err)
		}

		graph.Nodes[name] = &Node{
			ID:       name,
			Answers:  answers,
			Set:      set,
			Outgoing: []Edge{},
		}
	}

	if _, ok := graph.Nodes[graph.Start]; !ok {
		return nil, fmt.Errorf("missing start node %q", graph.Start)
	}

	orderedEdges, err := extractEdgesInTextOrder(dot)
	if err != nil {
		return nil, fmt.Errorf("failed to extract edge order from DOT: %w", err)
	}

	for _, e := range orderedEdges {
		fromNode, ok := graph.Nodes[e.From]
		if !ok {
			return nil, fmt.Errorf("edge references unknown source node %q", e.From)
		}
		if _, ok := graph.Nodes[e.To]; !ok && e.To != EndNode {
			return nil, fmt.Errorf("edge references unknown destination node %q", e.To)
		}

		cond := strings.TrimSpace(e.Cond)
		compiled, err := eval.Compile(cond)
		if err != nil {
			return nil, fmt.Errorf("invalid cond on edge %s->%s: %w", e.From, e.To, err)
		}

		set, err := ParseAssignments(e.Set)
		if err != nil {
			return nil, fmt.Errorf("invalid set on edge %s->%s: %w", e.From, e.To, err)
		}

		fromNode.Outgoing = append(fromNode.Outgoing, Edge{
			To:       e.To,
			Cond:     cond,
			Compiled: compiled,
			Set:      set,
		})
	}

	return graph, nil
}

// getAttr reads a Graphviz attribute, stripping surrounding quotes.
func getAttr(attrs gographviz.Attrs, key string) string {
	val, ok := attrs[gographviz.Attr(key)]
	if !ok {
		return ""
	}

	val = strings.TrimSpace(val)

	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		val = val[1 : len(val)-1]
	}

	return val
}
