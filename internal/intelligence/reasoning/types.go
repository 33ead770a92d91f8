package reasoning

import (
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
)

// ============================================================================
// Enumerations
// ============================================================================

// ReasoningType enumerates the eight recognised clinical reasoning patterns.
type ReasoningType string

const (
	ReasoningDiagnosticWorkup      ReasoningType = "diagnostic_workup"
	ReasoningTherapeuticDecision   ReasoningType = "therapeutic_decision"
	ReasoningRiskAssessment        ReasoningType = "risk_assessment"
	ReasoningProceduralIndication  ReasoningType = "procedural_indication"
	ReasoningFollowUpPlanning      ReasoningType = "follow_up_planning"
	ReasoningMedicationManagement  ReasoningType = "medication_management"
	ReasoningLifestyleModification ReasoningType = "lifestyle_modification"
	ReasoningReferralReasoning     ReasoningType = "referral_reasoning"
)

// AllReasoningTypes lists every reasoning type in detection order.
var AllReasoningTypes = []ReasoningType{
	ReasoningDiagnosticWorkup,
	ReasoningTherapeuticDecision,
	ReasoningRiskAssessment,
	ReasoningProceduralIndication,
	ReasoningFollowUpPlanning,
	ReasoningMedicationManagement,
	ReasoningLifestyleModification,
	ReasoningReferralReasoning,
}

// WorkflowAction enumerates the recognised clinical workflow actions.
type WorkflowAction string

const (
	ActionAssess      WorkflowAction = "assess"
	ActionInvestigate WorkflowAction = "investigate"
	ActionDiagnose    WorkflowAction = "diagnose"
	ActionTreat       WorkflowAction = "treat"
	ActionMonitor     WorkflowAction = "monitor"
	ActionRefer       WorkflowAction = "refer"
	ActionFollowUp    WorkflowAction = "follow_up"
	ActionEducate     WorkflowAction = "educate"
)

// CausalType enumerates cause-effect relationship categories.
type CausalType string

const (
	CausalDirectCause       CausalType = "direct_cause"
	CausalRiskFactor        CausalType = "risk_factor"
	CausalConsequence       CausalType = "consequence"
	CausalContraindication  CausalType = "contraindication"
	CausalIndication        CausalType = "indication"
	CausalTherapeuticEffect CausalType = "therapeutic_effect"
)

// Urgency tiers, highest first match wins.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyRoutine   Urgency = "routine"
)

// Complexity buckets derived from component and relationship counts.
type Complexity string

const (
	ComplexitySimple        Complexity = "simple"
	ComplexityModerate      Complexity = "moderate"
	ComplexityComplex       Complexity = "complex"
	ComplexityHighlyComplex Complexity = "highly_complex"
)

// ============================================================================
// Pattern Model
// ============================================================================

// WorkflowStep is one ordered action in a detected clinical workflow.
// Sequence numbers follow text-encounter order, which is not guaranteed to
// reflect true chronological order.
type WorkflowStep struct {
	Sequence      int            `json:"sequence"`
	Action        WorkflowAction `json:"action"`
	Rationale     string         `json:"rationale"`
	EvidenceLevel string         `json:"evidence_level"`
	Dependencies  []string       `json:"dependencies,omitempty"`
}

// CausalRelationship is a cause-effect pair with a bounded strength score.
type CausalRelationship struct {
	Cause             string     `json:"cause"`
	Effect            string     `json:"effect"`
	Strength          float64    `json:"strength"`
	Type              CausalType `json:"type"`
	Evidence          []string   `json:"evidence,omitempty"`
	ClinicalRelevance string     `json:"clinical_relevance,omitempty"`
}

// PatientFactor is a patient attribute extracted from the text that may
// influence clinical decisions.
type PatientFactor struct {
	Factor string `json:"factor"`
	Value  string `json:"value"`
	Impact string `json:"impact"`
}

// ClinicalContext summarises urgency, complexity, and patient factors for a
// detected pattern or a whole analysis.
type ClinicalContext struct {
	Urgency        Urgency         `json:"urgency"`
	Complexity     Complexity      `json:"complexity"`
	PatientFactors []PatientFactor `json:"patient_factors,omitempty"`
}

// AustralianCompliance carries Australian-practice annotations when the
// caller requests an Australian focus.
type AustralianCompliance struct {
	PBSRelevant        bool     `json:"pbs_relevant"`
	GuidelineMentions  []string `json:"guideline_mentions,omitempty"`
	TerminologyCorrect bool     `json:"terminology_correct"`
}

// ClinicalReasoningPattern is one detected higher-level reasoning structure.
type ClinicalReasoningPattern struct {
	Type                 ReasoningType                 `json:"type"`
	Confidence           float64                       `json:"confidence"`
	Components           []extractor.ClinicalComponent `json:"components"`
	Workflow             []WorkflowStep                `json:"workflow"`
	Relationships        []CausalRelationship          `json:"relationships"`
	ClinicalContext      ClinicalContext               `json:"clinical_context"`
	AustralianCompliance *AustralianCompliance         `json:"australian_compliance,omitempty"`
}

// Options control pattern detection.
type Options struct {
	// AustralianFocus attaches AustralianCompliance annotations to each
	// detected pattern.
	AustralianFocus bool

	// MinConfidence overrides the default retention threshold when positive.
	MinConfidence float64
}

//Personal.AI order the ending
