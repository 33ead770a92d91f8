package reasoning

import (
	"regexp"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
)

// ============================================================================
// Reasoning Pattern Templates
// ============================================================================

// reasoningTemplates holds each reasoning type's trigger regexes. A single
// template match is enough to construct a candidate pattern.
var reasoningTemplates = map[ReasoningType][]*regexp.Regexp{
	ReasoningDiagnosticWorkup: compileAll(
		`\b(?:work\s?up|workup)\s+(?:for|of)\b`,
		`\b(?:ordered|arranged|requested)\s+(?:an?\s+)?(?:echo|TTE|TOE|ECG|angiogram|bloods|EUC|FBC|LFT|troponin)`,
		`\bto (?:exclude|rule out|investigate|confirm)\b`,
		`\bdifferential(?:\s+diagnosis)?\s+includes\b`,
		`\bfurther investigations?\b`,
	),
	ReasoningTherapeuticDecision: compileAll(
		`\b(?:commenced|started|initiated|uptitrated|increased|ceased|stopped|withheld)\s+(?:on\s+)?[a-z]+`,
		`\bdecision\s+(?:was\s+)?(?:made\s+)?to\s+(?:treat|start|commence|cease)\b`,
		`\btreatment\s+(?:options?|plan)\b`,
		`\bwill\s+(?:treat|manage)\s+with\b`,
	),
	ReasoningRiskAssessment: compileAll(
		`\brisk\s+(?:of|for|assessment|stratification)\b`,
		`\b(?:CHA2?DS2?.?VASc|HAS.?BLED|TIMI|GRACE)\s+(?:score)?\b`,
		`\b(?:high|low|moderate|intermediate)\s+risk\b`,
		`\bincreases?\s+(?:the\s+)?risk\b`,
	),
	ReasoningProceduralIndication: compileAll(
		`\b(?:indicated|indication)\s+for\s+[a-z ]+`,
		`\bmeets\s+criteria\s+for\b`,
		`\b(?:suitable|candidate)\s+for\s+(?:TAVI|PCI|CABG|surgery|intervention|ablation|pacemaker)`,
		`\bproceed\s+(?:to|with)\b`,
	),
	ReasoningFollowUpPlanning: compileAll(
		`\b(?:review|follow.?up)\s+in\s+\d+\s+(?:days?|weeks?|months?)\b`,
		`\brepeat\s+(?:echo|TTE|bloods|ECG|EUC|FBC)\s+in\b`,
		`\bsurveillance\b`,
		`\bwill\s+(?:be\s+)?(?:seen|reviewed)\s+(?:again|in clinic)\b`,
	),
	ReasoningMedicationManagement: compileAll(
		`\b(?:uptitrate|down.?titrate|titrate|wean)\b`,
		`\b(?:dose|dosage)\s+(?:adjustment|increased|reduced|changed)\b`,
		`\bswitch(?:ed)?\s+(?:from|to)\s+[a-z]+`,
		`\bmonitor\s+(?:INR|potassium|renal function|eGFR|digoxin level)s?\b`,
		`\bmedication\s+(?:review|reconciliation|compliance)\b`,
	),
	ReasoningLifestyleModification: compileAll(
		`\bsmoking cessation\b`,
		`\b(?:advised|counselled|recommended)\s+(?:on\s+)?(?:diet|exercise|weight loss|fluid restriction|salt restriction|alcohol)`,
		`\blifestyle\s+(?:advice|modification|changes?)\b`,
		`\bcardiac rehabilitation\b`,
	),
	ReasoningReferralReasoning: compileAll(
		`\breferr(?:ed|al)\s+(?:to|for)\s+[a-z ]+`,
		`\b(?:cardiology|cardiothoracic|renal|endocrine|heart failure)\s+(?:opinion|input|review)\b`,
		`\bdiscussed?\s+(?:at|with)\s+(?:the\s+)?(?:heart team|MDT|multidisciplinary)\b`,
		`\bfor\s+(?:surgical|specialist)\s+(?:opinion|assessment)\b`,
	),
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}

// typeConfidenceModifier is added to the 0.7 base per reasoning type.
// Types with more distinctive trigger language earn higher modifiers.
var typeConfidenceModifier = map[ReasoningType]float64{
	ReasoningDiagnosticWorkup:      0.15,
	ReasoningTherapeuticDecision:   0.10,
	ReasoningRiskAssessment:        0.15,
	ReasoningProceduralIndication:  0.20,
	ReasoningFollowUpPlanning:      0.10,
	ReasoningMedicationManagement:  0.10,
	ReasoningLifestyleModification: 0.05,
	ReasoningReferralReasoning:     0.15,
}

// typeComponentAllowlist filters extracted components down to the categories
// relevant to each reasoning type.
var typeComponentAllowlist = map[ReasoningType][]extractor.ComponentCategory{
	ReasoningDiagnosticWorkup: {
		extractor.CategorySymptom, extractor.CategorySign,
		extractor.CategoryInvestigationResult, extractor.CategoryDiagnosis,
	},
	ReasoningTherapeuticDecision: {
		extractor.CategoryDiagnosis, extractor.CategoryMedication,
		extractor.CategoryProcedure, extractor.CategoryIndication,
		extractor.CategoryContraindication,
	},
	ReasoningRiskAssessment: {
		extractor.CategoryRiskFactor, extractor.CategoryDiagnosis,
		extractor.CategorySign, extractor.CategoryInvestigationResult,
	},
	ReasoningProceduralIndication: {
		extractor.CategoryProcedure, extractor.CategoryIndication,
		extractor.CategoryDiagnosis, extractor.CategoryContraindication,
	},
	ReasoningFollowUpPlanning: {
		extractor.CategoryInvestigationResult, extractor.CategoryDiagnosis,
		extractor.CategoryProcedure,
	},
	ReasoningMedicationManagement: {
		extractor.CategoryMedication, extractor.CategoryContraindication,
		extractor.CategoryIndication, extractor.CategoryInvestigationResult,
	},
	ReasoningLifestyleModification: {
		extractor.CategoryRiskFactor, extractor.CategoryDiagnosis,
	},
	ReasoningReferralReasoning: {
		extractor.CategoryDiagnosis, extractor.CategoryProcedure,
		extractor.CategoryIndication,
	},
}

// ============================================================================
// Workflow Step Connectives
// ============================================================================

// workflowConnective ties a trigger regex to a workflow action. Scanned in
// text order; each match yields a step with the next sequence number.
type workflowConnective struct {
	re     *regexp.Regexp
	action WorkflowAction
}

var workflowConnectives = []workflowConnective{
	{regexp.MustCompile(`(?i)\b(?:first|initially|on presentation|on assessment|examination reveals?)\b`), ActionAssess},
	{regexp.MustCompile(`(?i)\b(?:ordered|arranged|requested|investigate|work\s?up|bloods taken)\b`), ActionInvestigate},
	{regexp.MustCompile(`(?i)\b(?:diagnos(?:is|ed|tic)|confirmed|consistent with)\b`), ActionDiagnose},
	{regexp.MustCompile(`(?i)\b(?:treat(?:ed|ment)?|commenced|started|initiated|given)\b`), ActionTreat},
	{regexp.MustCompile(`(?i)\b(?:monitor(?:ed|ing)?|observe|watch|surveillance)\b`), ActionMonitor},
	{regexp.MustCompile(`(?i)\b(?:referr(?:ed|al)|discussed with)\b`), ActionRefer},
	{regexp.MustCompile(`(?i)\b(?:follow.?up|review in|repeat .{0,20} in|seen again)\b`), ActionFollowUp},
	{regexp.MustCompile(`(?i)\b(?:advised|counselled|educated|explained)\b`), ActionEducate},
}

// ============================================================================
// Urgency & Patient Factor Keywords
// ============================================================================

// urgencyKeywords is checked tier by tier; the first tier with a match wins.
var urgencyKeywords = []struct {
	level    Urgency
	keywords []string
}{
	{UrgencyEmergency, []string{"emergency", "immediately", "arrest", "stemi", "unstable", "resuscitation", "critical"}},
	{UrgencyUrgent, []string{"urgent", "urgently", "same day", "within 24 hours", "expedite", "acute"}},
}

// agePattern extracts the patient age token, e.g. "82 year old" or "aged 79".
var agePattern = regexp.MustCompile(`(?i)\b(?:(\d{1,3})[- ]?(?:year|yr)s?[- ]old|aged?\s+(\d{1,3})\b)`)

// elderlyAgeThreshold marks an age as a negative-impact patient factor.
const elderlyAgeThreshold = 75

//Personal.AI order the ending
