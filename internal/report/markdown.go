// Package report renders suite and analysis results as markdown.
package report

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/harness"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/optimizer"
)

const suiteSource = `# Compliance Suite Report

Generated: {{.Timestamp.Format "2006-01-02 15:04:05"}}

| Metric | Value |
|--------|-------|
| Total scenarios | {{.Total}} |
| Passed | {{.Passed}} |
| Failed | {{.Failed}} |
| Pass rate | {{printf "%.1f" .PassRate}}% |
{{range .Categories}}
## {{.}}
{{range (index $.ByCategory .)}}
### {{if .Passed}}PASS{{else}}FAIL{{end}} {{.Scenario.Name}}

{{.Scenario.Description}}

- classification: {{.Result.Classification}}
- questions asked: {{.Result.QuestionsAsked}}
- path: {{join .Result.PathTaken " -> "}}
- obligations: {{len .Result.Obligations}}
- inference passes: {{.Diagnostics.Passes}}{{if .Diagnostics.Capped}} (capped){{end}}
{{- range .Errors}}
- ERROR: {{.}}
{{- end}}
{{end}}{{end}}`

var suiteTmpl = template.Must(template.New("suite").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(suiteSource))

// Suite renders a markdown report for a scenario suite run.
func Suite(r harness.SuiteReport) (string, error) {
	var b strings.Builder
	if err := suiteTmpl.Execute(&b, r); err != nil {
		return "", fmt.Errorf("failed to render suite report: %w", err)
	}
	return b.String(), nil
}

// Analysis renders a markdown report for a routing path analysis.
func Analysis(a *optimizer.Analysis) (string, error) {
	if a == nil {
		return "", fmt.Errorf("analysis is nil")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# Routing Analysis\n\n")
	fmt.Fprintf(&b, "Paths enumerated: %d\n\n", a.TotalPaths)
	fmt.Fprintf(&b, "| Path length | Value |\n|-------------|-------|\n")
	fmt.Fprintf(&b, "| Shortest | %d |\n", a.PathLengths.Shortest)
	fmt.Fprintf(&b, "| Longest | %d |\n", a.PathLengths.Longest)
	fmt.Fprintf(&b, "| Average | %.2f |\n", a.PathLengths.Average)
	fmt.Fprintf(&b, "| Median | %.0f |\n\n", a.PathLengths.Median)

	fmt.Fprintf(&b, "## Question statistics\n\n")
	fmt.Fprintf(&b, "| Question | Paths | Avg depth | Terminal prob | Info gain |\n")
	fmt.Fprintf(&b, "|----------|-------|-----------|---------------|----------|\n")
	ids := make([]string, 0, len(a.Stats))
	for id := range a.Stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		st := a.Stats[id]
		fmt.Fprintf(&b, "| %s | %d | %.2f | %.3f | %.4f |\n",
			st.ID, st.PathsThrough, st.AvgDepth, st.TerminalProbability, st.InformationGain)
	}

	if len(a.Opportunities) > 0 {
		fmt.Fprintf(&b, "\n## Optimization opportunities\n")
		for _, opp := range a.Opportunities {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n\nQuestions: %s\n",
				opp.Kind, opp.Description, strings.Join(opp.Questions, ", "))
		}
	}

	if len(a.Flow) > 0 {
		fmt.Fprintf(&b, "\n## Recommended flow\n\n")
		for i, entry := range a.Flow {
			fmt.Fprintf(&b, "%d. %s (score %.3f)\n", i+1, entry.QuestionID, entry.Score)
		}
	}

	return b.String(), nil
}
