package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/routing"
)

// DefaultMaxDepth bounds path enumeration so malformed routing graphs with
// cycles cannot recurse unboundedly.
const DefaultMaxDepth = 20

// PathResult is one complete answer sequence through the routing graph.
type PathResult struct {
	Questions []string       `json:"questions"`
	Answers   []PathAnswer   `json:"answers"`
	Flags     map[string]any `json:"flags"`
	Length    int            `json:"length"`
}

type PathAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     int    `json:"answer"`
}

// QuestionStats aggregates how a question behaves across all enumerated paths.
type QuestionStats struct {
	ID                  string  `json:"id"`
	Visits              int     `json:"visits"`
	PathsThrough        int     `json:"paths_through"`
	AvgDepth            float64 `json:"avg_depth"`
	TerminalProbability float64 `json:"terminal_probability"`
	InformationGain     float64 `json:"information_gain"`
}

// Opportunity flags a question set tuning candidate.
type Opportunity struct {
	Kind        string   `json:"kind"`
	Questions   []string `json:"questions"`
	Description string   `json:"description"`
}

const (
	OpportunityEarlyTermination = "early_termination"
	OpportunityLowValue         = "low_value"
	OpportunityReorder          = "reorder"
)

type PathLengthSummary struct {
	Shortest int     `json:"shortest"`
	Longest  int     `json:"longest"`
	Average  float64 `json:"average"`
	Median   float64 `json:"median"`
}

// FlowEntry is one slot of the recommended optimized flow.
type FlowEntry struct {
	QuestionID          string  `json:"question_id"`
	Score               float64 `json:"score"`
	AvgDepth            float64 `json:"avg_depth"`
	TerminalProbability float64 `json:"terminal_probability"`
	InformationGain     float64 `json:"information_gain"`
}

// Analysis is the full path analysis report for a routing graph.
type Analysis struct {
	TotalPaths    int                       `json:"total_paths"`
	PathLengths   PathLengthSummary         `json:"path_lengths"`
	Stats         map[string]*QuestionStats `json:"question_stats"`
	Opportunities []Opportunity             `json:"opportunities"`
	Flow          []FlowEntry               `json:"optimized_flow"`
}

// Analyzer enumerates every reachable answer sequence through a routing graph
// and derives per-question statistics from the result.
type Analyzer struct {
	graph    *routing.Graph
	maxDepth int
	paths    []PathResult
	stats    map[string]*QuestionStats
}

type AnalyzerOption func(*Analyzer)

func WithMaxDepth(n int) AnalyzerOption {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxDepth = n
		}
	}
}

func NewAnalyzer(graph *routing.Graph, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{graph: graph, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Analyze() (*Analysis, error) {
	if a.graph == nil {
		return nil, fmt.Errorf("routing graph is nil")
	}

	a.paths = nil
	a.stats = map[string]*QuestionStats{}
	for id, n := range a.graph.Nodes {
		if id == routing.EndNode || len(n.Answers) == 0 {
			continue
		}
		a.stats[id] = &QuestionStats{ID: id}
	}

	a.enumerate(a.graph.Start, nil, nil, map[string]any{}, 0)
	a.calculateStats()

	return &Analysis{
		TotalPaths:    len(a.paths),
		PathLengths:   a.pathLengths(),
		Stats:         a.stats,
		Opportunities: a.opportunities(),
		Flow:          a.optimizedFlow(),
	}, nil
}

// Paths returns the enumerated paths from the last Analyze call.
func (a *Analyzer) Paths() []PathResult {
	out := make([]PathResult, len(a.paths))
	copy(out, a.paths)
	return out
}

func (a *Analyzer) enumerate(current string, path []string, answers []PathAnswer, flags map[string]any, depth int) {
	if depth > a.maxDepth {
		return
	}

	if current == routing.EndNode {
		a.paths = append(a.paths, PathResult{
			Questions: append([]string(nil), path...),
			Answers:   append([]PathAnswer(nil), answers...),
			Flags:     cloneFlags(flags),
			Length:    len(path),
		})
		return
	}

	node := a.graph.Nodes[current]
	if node == nil || len(node.Answers) == 0 {
		return
	}

	if st, ok := a.stats[current]; ok {
		st.Visits++
	}

	path = append(path, current)

	for _, answer := range node.Answers {
		newFlags := cloneFlags(flags)
		for _, assign := range node.Set {
			newFlags[assign.Key] = assign.Value
		}

		next := ""
		for _, edge := range node.Outgoing {
			vars := cloneFlags(newFlags)
			vars["answer"] = answer
			ok, err := edge.Compiled.Eval(vars)
			if err != nil || !ok {
				continue
			}
			for _, assign := range edge.Set {
				newFlags[assign.Key] = assign.Value
			}
			next = edge.To
			break
		}

		if next != "" {
			a.enumerate(next, path, append(answers, PathAnswer{QuestionID: current, Answer: answer}), newFlags, depth+1)
		}
	}
}

func (a *Analyzer) calculateStats() {
	total := len(a.paths)
	if total == 0 {
		return
	}

	for _, p := range a.paths {
		for i, qid := range p.Questions {
			if st, ok := a.stats[qid]; ok {
				st.PathsThrough++
				st.AvgDepth += float64(i + 1)
			}
		}
	}

	for qid, st := range a.stats {
		if st.PathsThrough > 0 {
			st.AvgDepth /= float64(st.PathsThrough)
		}

		terminal := 0
		for _, p := range a.paths {
			if len(p.Questions) > 0 && p.Questions[len(p.Questions)-1] == qid {
				terminal++
			}
		}
		through := st.PathsThrough
		if through < 1 {
			through = 1
		}
		st.TerminalProbability = float64(terminal) / float64(through)
	}

	a.calculateInformationGain()
}

// calculateInformationGain scores each question against the distribution of
// terminal flag states across all enumerated paths.
func (a *Analyzer) calculateInformationGain() {
	total := len(a.paths)
	if total == 0 {
		return
	}

	terminalCounts := map[string]int{}
	for _, p := range a.paths {
		terminalCounts[flagKey(p.Flags)]++
	}
	overall := Entropy(countProbs(terminalCounts, total))

	for qid, st := range a.stats {
		partitions := map[int][]PathResult{}
		for _, p := range a.paths {
			for _, ans := range p.Answers {
				if ans.QuestionID == qid {
					partitions[ans.Answer] = append(partitions[ans.Answer], p)
					break
				}
			}
		}
		if len(partitions) == 0 {
			continue
		}

		conditional := 0.0
		for _, paths := range partitions {
			prob := float64(len(paths)) / float64(total)
			counts := map[string]int{}
			for _, p := range paths {
				counts[flagKey(p.Flags)]++
			}
			conditional += prob * Entropy(countProbs(counts, len(paths)))
		}

		st.InformationGain = overall - conditional
	}
}

func (a *Analyzer) pathLengths() PathLengthSummary {
	if len(a.paths) == 0 {
		return PathLengthSummary{}
	}

	lengths := make([]int, len(a.paths))
	sum := 0
	for i, p := range a.paths {
		lengths[i] = p.Length
		sum += p.Length
	}
	sort.Ints(lengths)

	return PathLengthSummary{
		Shortest: lengths[0],
		Longest:  lengths[len(lengths)-1],
		Average:  float64(sum) / float64(len(lengths)),
		Median:   float64(lengths[len(lengths)/2]),
	}
}

func (a *Analyzer) opportunities() []Opportunity {
	var out []Opportunity

	highTerminal := a.selectStats(func(st *QuestionStats) bool {
		return st.TerminalProbability > 0.5
	})
	if len(highTerminal) > 0 {
		out = append(out, Opportunity{
			Kind:        OpportunityEarlyTermination,
			Questions:   highTerminal,
			Description: "Questions that often lead to END - good candidates for prioritization",
		})
	}

	lowIG := a.selectStats(func(st *QuestionStats) bool {
		return st.InformationGain < 0.1 && st.PathsThrough > 0
	})
	if len(lowIG) > 0 {
		out = append(out, Opportunity{
			Kind:        OpportunityLowValue,
			Questions:   lowIG,
			Description: "Questions with low information gain - consider merging",
		})
	}

	highIGLate := a.selectStats(func(st *QuestionStats) bool {
		return st.InformationGain > 0.5 && st.AvgDepth > 5
	})
	if len(highIGLate) > 0 {
		out = append(out, Opportunity{
			Kind:        OpportunityReorder,
			Questions:   highIGLate,
			Description: "High IG questions appearing late - consider moving earlier",
		})
	}

	return out
}

// optimizedFlow ranks questions for a recommended flow: early exits first,
// then discrimination power, then questions already asked early.
func (a *Analyzer) optimizedFlow() []FlowEntry {
	var out []FlowEntry
	for _, st := range a.stats {
		if st.PathsThrough == 0 {
			continue
		}
		score := st.TerminalProbability*2.0 + st.InformationGain*1.5 + 1.0/(st.AvgDepth+1)
		out = append(out, FlowEntry{
			QuestionID:          st.ID,
			Score:               score,
			AvgDepth:            st.AvgDepth,
			TerminalProbability: st.TerminalProbability,
			InformationGain:     st.InformationGain,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].QuestionID < out[j].QuestionID
	})

	return out
}

func (a *Analyzer) selectStats(keep func(*QuestionStats) bool) []string {
	var out []string
	for qid, st := range a.stats {
		if keep(st) {
			out = append(out, qid)
		}
	}
	sort.Strings(out)
	return out
}

func cloneFlags(m map[string]any) map[string]any {
	n := make(map[string]any, len(m)+1)
	for k, v := range m {
		n[k] = v
	}
	return n
}

func flagKey(flags map[string]any) string {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%v;", k, flags[k])
	}
	return b.String()
}

func countProbs(counts map[string]int, total int) []float64 {
	probs := make([]float64, 0, len(counts))
	for _, c := range counts {
		probs = append(probs, float64(c)/float64(total))
	}
	return probs
}
