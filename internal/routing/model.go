package routing

import "github.com/awmpietro/golang-aiact-compliance-case/internal/decision/eval"

// EndNode is the terminal pseudo-node: routes pointing at it end the
// questionnaire.
const EndNode = "END"

// Graph is a compiled data-driven questionnaire: nodes are questions with an
// enumerable answer key set, edges carry routing conditions over the answer
// just given plus accumulated flags.
type Graph struct {
	Start string
	Nodes map[string]*Node
}

type Node struct {
	ID string
	// Answers are the possible answer keys for the question, in declaration
	// order.
	Answers []int
	// Set assignments apply whenever the node is reached.
	Set      []Assignment
	Outgoing []Edge
}

// Edge is one routing rule. Edges are tried in source order; the first whose
// condition holds wins. An empty condition always matches.
type Edge struct {
	To       string
	Cond     string
	Compiled *eval.Compiled
	// Set assignments apply when the edge is taken.
	Set []Assignment
}

type Assignment struct {
	Key   string
	Value any
}

// Terminal reports whether the node routes directly to END on some edge.
func (n *Node) Terminal() bool {
	for _, e := range n.Outgoing {
		if e.To == EndNode {
			return true
		}
	}
	return false
}
