package decision

// Flag and obligation names used by the built-in EU AI Act catalogue. Flags
// and obligations are stored unprefixed; effect keys carry the flag_ /
// obligation_ prefixes.
const (
	FlagOutOfScope       = "out_of_scope"
	FlagExcluded         = "excluded"
	FlagProhibited       = "prohibited"
	FlagIsProvider       = "is_provider"
	FlagIsDeployer       = "is_deployer"
	FlagGPAI             = "gpai"
	FlagGPAISystemicRisk = "gpai_systemic_risk"
	FlagHighRisk         = "high_risk"
	FlagBecomesProvider  = "becomes_provider"

	ObligationAILiteracy                   = "ai_literacy"
	ObligationGPAIBase                     = "gpai_base"
	ObligationGPAISystemic                 = "gpai_systemic"
	ObligationProviderHighRisk             = "provider_high_risk"
	ObligationDeployerHighRisk             = "deployer_high_risk"
	ObligationHandover                     = "handover"
	ObligationFundamentalRights            = "fundamental_rights_assessment"
	ObligationTransparencyNaturalPersons   = "transparency_natural_persons"
	ObligationTransparencySynthetic        = "transparency_synthetic_content"
	ObligationTransparencyEmotionBiometric = "transparency_emotion_biometric"
	ObligationTransparencyResemblance      = "transparency_content_resemblance"
)

// MasterOrder is the fixed traversal order over the built-in question set.
func MasterOrder() []string {
	return []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q5A", "Q6", "Q6A", "Q6B", "Q7", "Q8", "Q9"}
}

func conds(raw ...string) []Condition {
	out := make([]Condition, len(raw))
	for i, r := range raw {
		out[i] = ParseCondition(r)
	}
	return out
}

// DefaultQuestions is the EU AI Act question set. Skip conditions on Q5A, Q6A
// and Q6B are legacy forms the grammar cannot parse and never match; the
// branching they describe is enforced by DefaultRouting.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:     "Q1",
			Prompt: "Does your AI system have ANY connection to the EU?",
			Choice: SingleChoice,
			Options: []Option{
				{Value: "no_eu_connection", Label: "No - System not placed on EU market, not used in EU, I'm not in EU", Terminal: true},
				{Value: "has_eu_connection", Label: "Yes - At least one of: placed on EU market, used in EU, I'm in EU"},
			},
			Priority:            1,
			InformationGain:     0.85,
			TerminalProbability: 0.30,
		},
		{
			ID:     "Q2",
			Prompt: "What is your primary role with this AI system?",
			Choice: MultipleChoice,
			Options: []Option{
				{Value: "provider", Label: "Provider - I develop/place the system on market under my name"},
				{Value: "deployer", Label: "Deployer - I use/operate the system"},
				{Value: "distributor", Label: "Distributor - I make available on EU market"},
				{Value: "importer", Label: "Importer - I'm in EU, placing system from outside EU"},
				{Value: "product_manufacturer", Label: "Product Manufacturer - AI integrated into my product"},
				{Value: "authorised_representative", Label: "Authorised Representative", Terminal: true},
			},
			Priority:        2,
			InformationGain: 0.92,
		},
		{
			ID:     "Q3",
			Prompt: "Does your system fall under ANY of these exclusion categories?",
			Choice: MultipleChoice,
			Options: []Option{
				{Value: "military_only", Label: "Exclusively for military purposes", Terminal: true},
				{Value: "personal_non_professional", Label: "Personal, non-professional use only", Terminal: true},
				{Value: "research_only", Label: "Scientific research & development only", Terminal: true},
				{Value: "open_source_not_deployed", Label: "Open source, not yet placed on market", Terminal: true},
				{Value: "third_country_law_enforcement", Label: "Third country authority", Terminal: true},
				{Value: "none", Label: "None of these apply"},
			},
			Priority:            3,
			InformationGain:     0.78,
			TerminalProbability: 0.15,
		},
		{
			ID:     "Q4",
			Prompt: "Does your system perform ANY of these PROHIBITED functions?",
			Choice: MultipleChoice,
			Options: []Option{
				{Value: "subliminal_manipulation", Label: "Subliminal manipulation", Terminal: true},
				{Value: "exploit_vulnerabilities", Label: "Exploiting vulnerabilities", Terminal: true},
				{Value: "social_scoring_public", Label: "Social scoring", Terminal: true},
				{Value: "predictive_policing_individual", Label: "Predictive policing", Terminal: true},
				{Value: "scraping_facial_recognition", Label: "Facial recognition scraping", Terminal: true},
				{Value: "emotion_recognition_workplace", Label: "Emotion recognition in workplace", Terminal: true},
				{Value: "biometric_categorization_sensitive", Label: "Biometric categorization", Terminal: true},
				{Value: "realtime_remote_biometric_public", Label: "Real-time biometric ID", Terminal: true},
				{Value: "none", Label: "None - my system does NOT do any of these"},
			},
			Priority:            4,
			InformationGain:     0.95,
			TerminalProbability: 0.05,
		},
		{
			ID:     "Q5",
			Prompt: "Are you placing a General Purpose AI MODEL on the EU market?",
			Choice: SingleChoice,
			Options: []Option{
				{Value: "yes_gpai", Label: "Yes - I'm placing a GPAI model on market"},
				{Value: "no_gpai", Label: "No - I'm working with AI systems/applications"},
			},
			Priority:        5,
			InformationGain: 0.88,
		},
		{
			ID:     "Q5A",
			Prompt: "Does your GPAI model have high-impact capabilities? (>10^25 FLOPs)",
			Choice: SingleChoice,
			Options: []Option{
				{Value: "yes_systemic", Label: "Yes - >10^25 FLOPs or Commission-designated"},
				{Value: "no_systemic", Label: "No - Below threshold"},
			},
			Priority:        5.1,
			InformationGain: 0.82,
			SkipConditions:  conds("Q5_answer != yes_gpai"),
		},
		{
			ID:     "Q6",
			Prompt: "Does your AI system fall under ANY high-risk category?",
			Choice: MultipleChoice,
			Options: []Option{
				{Value: "annex_i_section_a", Label: "Annex I Safety Components (Machinery, Medical, etc.)"},
				{Value: "annex_i_section_b", Label: "Annex I Transport & Aviation"},
				{Value: "annex_iii_biometrics", Label: "Biometric identification/categorization"},
				{Value: "annex_iii_critical_infra", Label: "Critical infrastructure"},
				{Value: "annex_iii_education", Label: "Education & vocational training"},
				{Value: "annex_iii_employment", Label: "Employment & HR"},
				{Value: "annex_iii_essential_services", Label: "Access to essential services"},
				{Value: "annex_iii_law_enforcement", Label: "Law enforcement"},
				{Value: "annex_iii_migration", Label: "Migration, asylum, border control"},
				{Value: "annex_iii_justice", Label: "Justice & democracy"},
				{Value: "none", Label: "None of these categories apply"},
			},
			Priority:        6,
			InformationGain: 0.91,
			// GPAI models follow the model track; the AI-system high-risk
			// chain (Q6/Q6A/Q6B) does not apply to them.
			SkipConditions: conds("gpai == True"),
		},
		{
			ID:     "Q6A",
			Prompt: "Is third-party conformity assessment required for your product?",
			Choice: SingleChoice,
			Options: []Option{
				{Value: "yes_required", Label: "Yes - third-party conformity assessment required"},
				{Value: "no_or_opt_out", Label: "No, or I can opt-out per Article 43(3)"},
			},
			Priority:        6.1,
			InformationGain: 0.87,
			SkipConditions:  conds("Q6_answer not in [annex_i_section_a, annex_i_section_b]"),
		},
		{
			ID:     "Q6B",
			Prompt: "Does your system pose significant risk to health, safety, or fundamental rights?",
			Choice: SingleChoice,
			Options: []Option{
				{Value: "yes_significant", Label: "Yes - poses significant risk (or profiles persons)"},
				{Value: "no_significant", Label: "No - meets exception criteria"},
			},
			Priority:        6.2,
			InformationGain: 0.84,
			SkipConditions:  conds("Q6_answer == none"),
		},
		{
			ID:     "Q7",
			Prompt: "What functions does your AI system perform? (Select all that apply)",
			Choice: MultipleChoice,
			Options: []Option{
				{Value: "interact_with_people", Label: "Interacts directly with people"},
				{Value: "generate_synthetic_content", Label: "Generates synthetic audio/image/video/text"},
				{Value: "emotion_recognition", Label: "Emotion recognition or biometric categorization"},
				{Value: "deepfake", Label: "Generates deepfakes"},
				{Value: "text_manipulation_public", Label: "Text manipulation for public interest"},
				{Value: "none", Label: "None of these apply"},
			},
			Priority:        7,
			InformationGain: 0.73,
		},
		{
			ID:     "Q8",
			Prompt: "Have you made substantial modifications to an existing AI system?",
			Choice: MultipleChoice,
			Options: []Option{
				{Value: "different_trademark", Label: "Applied different name/trademark"},
				{Value: "changed_purpose", Label: "Changed the intended purpose"},
				{Value: "substantial_modification", Label: "Made substantial modification"},
				{Value: "none", Label: "No modifications"},
			},
			Priority:        8,
			InformationGain: 0.45,
			SkipConditions:  conds("is_provider == True"),
		},
		{
			ID:     "Q9",
			Prompt: "Are you a public body or private entity providing public services?",
			Choice: SingleChoice,
			Options: []Option{
				{Value: "yes_public", Label: "Yes"},
				{Value: "no_private", Label: "No"},
			},
			Priority:        9,
			InformationGain: 0.35,
			SkipConditions:  conds("high_risk == False", "is_deployer == False"),
		},
	}
}

// DefaultRouting encodes the regulatory branching that generic skip
// conditions cannot express, as one declarative table.
func DefaultRouting() RoutingTable {
	return RoutingTable{
		"Q5A": {AnswerIs{QuestionID: "Q5", Value: "yes_gpai"}},
		"Q6A": {AnswerContainsAny{QuestionID: "Q6", Values: []string{"annex_i_section_a", "annex_i_section_b"}}},
		"Q6B": {AnswerAnyExcept{QuestionID: "Q6", Value: "none"}},
		"Q8":  {FlagIs{Flag: FlagIsProvider, Want: false}},
		"Q9":  {FlagIs{Flag: FlagHighRisk, Want: true}, FlagIs{Flag: FlagIsDeployer, Want: true}},
	}
}

// DefaultRules is the fixed inference catalogue. Registration order matters:
// later rules in the same pass observe effects of earlier ones.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    "provider_ai_literacy",
			When:    func(s State) bool { return s.AnswerContains("Q2", "provider") },
			Effects: map[string]bool{"flag_is_provider": true, "obligation_ai_literacy": true},
		},
		{
			Name:    "deployer_ai_literacy",
			When:    func(s State) bool { return s.AnswerContains("Q2", "deployer") },
			Effects: map[string]bool{"flag_is_deployer": true, "obligation_ai_literacy": true},
		},
		{
			Name:    "out_of_scope",
			When:    func(s State) bool { return s.AnswerIs("Q1", "no_eu_connection") },
			Effects: map[string]bool{"flag_out_of_scope": true},
		},
		{
			Name:    "excluded",
			When:    func(s State) bool { return s.AnswerAnyExcept("Q3", "none") },
			Effects: map[string]bool{"flag_excluded": true},
		},
		{
			Name:    "prohibited",
			When:    func(s State) bool { return s.AnswerAnyExcept("Q4", "none") },
			Effects: map[string]bool{"flag_prohibited": true},
		},
		{
			Name:    "gpai_base",
			When:    func(s State) bool { return s.AnswerIs("Q5", "yes_gpai") },
			Effects: map[string]bool{"flag_gpai": true, "obligation_gpai_base": true},
		},
		{
			Name:    "gpai_systemic",
			When:    func(s State) bool { return s.AnswerIs("Q5A", "yes_systemic") },
			Effects: map[string]bool{"flag_gpai_systemic_risk": true, "obligation_gpai_systemic": true},
		},
		{
			Name:    "high_risk_annex_i",
			When:    func(s State) bool { return s.AnswerIs("Q6A", "yes_required") },
			Effects: map[string]bool{"flag_high_risk": true},
		},
		{
			Name:    "high_risk_annex_iii",
			When:    func(s State) bool { return s.AnswerIs("Q6B", "yes_significant") },
			Effects: map[string]bool{"flag_high_risk": true},
		},
		{
			Name:    "provider_high_risk_obligations",
			When:    func(s State) bool { return s.Flag(FlagHighRisk) && s.Flag(FlagIsProvider) },
			Effects: map[string]bool{"obligation_provider_high_risk": true},
		},
		{
			Name:    "deployer_high_risk_obligations",
			When:    func(s State) bool { return s.Flag(FlagHighRisk) && s.Flag(FlagIsDeployer) },
			Effects: map[string]bool{"obligation_deployer_high_risk": true},
		},
		{
			Name:    "becomes_provider",
			When:    func(s State) bool { return s.AnswerAnyExcept("Q8", "none") },
			Effects: map[string]bool{"flag_becomes_provider": true, "flag_is_provider": true, "obligation_handover": true},
		},
		{
			Name: "fundamental_rights",
			When: func(s State) bool {
				return s.AnswerIs("Q9", "yes_public") && s.Flag(FlagHighRisk) && s.Flag(FlagIsDeployer)
			},
			Effects: map[string]bool{"obligation_fundamental_rights_assessment": true},
		},
		{
			Name:    "transparency_natural",
			When:    func(s State) bool { return s.AnswerContains("Q7", "interact_with_people") },
			Effects: map[string]bool{"obligation_transparency_natural_persons": true},
		},
		{
			Name:    "transparency_synthetic",
			When:    func(s State) bool { return s.AnswerContains("Q7", "generate_synthetic_content") },
			Effects: map[string]bool{"obligation_transparency_synthetic_content": true},
		},
		{
			Name:    "transparency_emotion",
			When:    func(s State) bool { return s.AnswerContains("Q7", "emotion_recognition") },
			Effects: map[string]bool{"obligation_transparency_emotion_biometric": true},
		},
		{
			Name: "transparency_deepfake",
			When: func(s State) bool {
				return s.AnswerContains("Q7", "deepfake") || s.AnswerContains("Q7", "text_manipulation_public")
			},
			Effects: map[string]bool{"obligation_transparency_content_resemblance": true},
		},
	}
}
