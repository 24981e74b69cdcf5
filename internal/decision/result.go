package decision

import "fmt"

type Classification string

const (
	OutOfScope         Classification = "out_of_scope"
	Excluded           Classification = "excluded"
	Prohibited         Classification = "prohibited"
	ComplianceRequired Classification = "compliance_required"
)

// ComplianceResult is the final determination for an assessment.
type ComplianceResult struct {
	Classification Classification  `json:"classification"`
	Flags          map[string]bool `json:"flags"`
	Obligations    []string        `json:"obligations"`
	QuestionsAsked int             `json:"questions_asked"`
	PathTaken      []string        `json:"path_taken"`
	Explanation    string          `json:"explanation"`
}

// Classify reads the terminal flags in strict priority order:
// out_of_scope > excluded > prohibited > compliance_required.
func Classify(s State) (Classification, string) {
	switch {
	case s.Flag(FlagOutOfScope):
		return OutOfScope, "System is outside the scope of the EU AI Act"
	case s.Flag(FlagExcluded):
		return Excluded, "System is excluded from EU AI Act requirements"
	case s.Flag(FlagProhibited):
		return Prohibited, "System performs prohibited functions and cannot be placed on EU market"
	default:
		return ComplianceRequired, fmt.Sprintf("System requires compliance with %d obligations", len(s.Obligations()))
	}
}
