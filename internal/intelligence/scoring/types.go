package scoring

// ============================================================================
// Enumerations
// ============================================================================

// IssueSeverity ranks validation issues.
type IssueSeverity string

const (
	SeverityCritical IssueSeverity = "critical"
	SeverityMajor    IssueSeverity = "major"
	SeverityMinor    IssueSeverity = "minor"
)

// IssueType identifies the validation pass that raised an issue.
type IssueType string

const (
	IssueSemantic             IssueType = "semantic"
	IssueTerminology          IssueType = "terminology"
	IssueClinicalReasoning    IssueType = "clinical_reasoning"
	IssueAustralianCompliance IssueType = "australian_compliance"
	IssueFactualAccuracy      IssueType = "factual_accuracy"
)

// ============================================================================
// Result Model
// ============================================================================

// ValidationIssue is one problem found in the analysed text.
type ValidationIssue struct {
	Type        IssueType     `json:"type"`
	Severity    IssueSeverity `json:"severity"`
	Description string        `json:"description"`
	Suggestion  string        `json:"suggestion,omitempty"`
}

// AccuracyFlag annotates a finding that is informational rather than a
// defect.
type AccuracyFlag struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ConfidenceMetrics holds the nine named confidence sub-scores, each bounded
// to [0,1].
type ConfidenceMetrics struct {
	Overall              float64 `json:"overall"`
	Semantic             float64 `json:"semantic"`
	Terminology          float64 `json:"terminology"`
	ClinicalReasoning    float64 `json:"clinical_reasoning"`
	AustralianCompliance float64 `json:"australian_compliance"`
	FactualAccuracy      float64 `json:"factual_accuracy"`
	Coherence            float64 `json:"coherence"`
	TermDensity          float64 `json:"term_density"`
	Completeness         float64 `json:"completeness"`
}

// ValidationResult is the full outcome of a validation run. Computed fresh
// per call; cached by (text, config) hash.
type ValidationResult struct {
	IsValid                   bool              `json:"is_valid"`
	Confidence                ConfidenceMetrics `json:"confidence"`
	Issues                    []ValidationIssue `json:"issues"`
	Recommendations           []string          `json:"recommendations"`
	MedicalAccuracyFlags      []AccuracyFlag    `json:"medical_accuracy_flags"`
	AustralianComplianceFlags []AccuracyFlag    `json:"australian_compliance_flags"`
}

// Config controls a validation run.
type Config struct {
	// AustralianFocus enables the Australian-compliance pass.
	AustralianFocus bool `json:"australian_focus"`

	// StrictTerminology escalates terminology issues from minor to major.
	StrictTerminology bool `json:"strict_terminology"`
}

// passResult is one validation pass's contribution, merged by the
// orchestrator. Passes return their own lists; nothing is mutated in shared
// state.
type passResult struct {
	issueType       IssueType
	issues          []ValidationIssue
	accuracyFlags   []AccuracyFlag
	complianceFlags []AccuracyFlag
}

//Personal.AI order the ending
