package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/reasoning"
)

// ============================================================================
// Validation Passes
// ============================================================================
//
// Each pass is a pure function from (text, components, config) to its own
// issue and flag lists. The orchestrator merges them; no pass sees another's
// output.

// longSentenceWords flags rambling sentences that suggest transcription
// run-on.
const longSentenceWords = 40

var sentenceSplit = regexp.MustCompile(`[.!?]+\s+|[.!?]+$`)

// contradictionPairs lists negation/assertion pairs that cannot both hold.
var contradictionPairs = [][2]*regexp.Regexp{
	{
		regexp.MustCompile(`(?i)\bdenies (?:any )?chest pain\b`),
		regexp.MustCompile(`(?i)\b(?:reports|complains of|ongoing) chest pain\b`),
	},
	{
		regexp.MustCompile(`(?i)\bno (?:peripheral )?oedema\b`),
		regexp.MustCompile(`(?i)\b(?:pitting|peripheral|marked) oedema (?:present|noted)\b`),
	},
	{
		regexp.MustCompile(`(?i)\bin sinus rhythm\b`),
		regexp.MustCompile(`(?i)\bin atrial fibrillation\b`),
	},
}

// semanticPass checks sentence-level coherence: run-on sentences and
// internal contradictions.
func semanticPass(text string, _ []extractor.ClinicalComponent, _ Config) passResult {
	result := passResult{issueType: IssueSemantic}

	for _, sentence := range sentenceSplit.Split(text, -1) {
		if words := len(strings.Fields(sentence)); words > longSentenceWords {
			result.issues = append(result.issues, ValidationIssue{
				Type:        IssueSemantic,
				Severity:    SeverityMinor,
				Description: fmt.Sprintf("sentence with %d words suggests a transcription run-on", words),
				Suggestion:  "split into shorter sentences",
			})
		}
	}

	for _, pair := range contradictionPairs {
		if pair[0].MatchString(text) && pair[1].MatchString(text) {
			result.issues = append(result.issues, ValidationIssue{
				Type:        IssueSemantic,
				Severity:    SeverityMajor,
				Description: "text asserts and negates the same finding",
				Suggestion:  "resolve the contradictory statements",
			})
		}
	}
	return result
}

// asrArtifacts are uncorrected transcription errors that should have been
// rewritten by the correction table.
var asrArtifacts = regexp.MustCompile(
	`(?i)\b(?:frizomide|fruzemide|UNEs?|FBEs?|my trial|try cuspid|tap see)\b`)

var usSpellings = regexp.MustCompile(
	`(?i)\b(?:furosemide|acetaminophen|epinephrine|norepinephrine|anemia|edema|hemoglobin|anesthesia)\b`)

// terminologyPass flags uncorrected ASR artifacts and US spellings.
func terminologyPass(text string, _ []extractor.ClinicalComponent, cfg Config) passResult {
	result := passResult{issueType: IssueTerminology}

	artifactSeverity := SeverityMinor
	if cfg.StrictTerminology {
		artifactSeverity = SeverityMajor
	}

	for _, artifact := range asrArtifacts.FindAllString(text, -1) {
		result.issues = append(result.issues, ValidationIssue{
			Type:        IssueTerminology,
			Severity:    artifactSeverity,
			Description: fmt.Sprintf("uncorrected transcription artifact %q", artifact),
			Suggestion:  "run the correction table over this text",
		})
	}
	for _, spelling := range usSpellings.FindAllString(text, -1) {
		result.issues = append(result.issues, ValidationIssue{
			Type:        IssueTerminology,
			Severity:    SeverityMinor,
			Description: fmt.Sprintf("US spelling %q in Australian clinical text", spelling),
			Suggestion:  "use the Australian spelling",
		})
	}
	return result
}

// reasoningPass checks that substantial component lists come with detectable
// reasoning structure.
func reasoningPass(text string, components []extractor.ClinicalComponent, cfg Config,
	detector reasoning.Detector) passResult {

	result := passResult{issueType: IssueClinicalReasoning}

	patterns := detector.DetectPatterns(text, components,
		reasoning.Options{AustralianFocus: cfg.AustralianFocus})

	if len(components) >= 5 && len(patterns) == 0 {
		result.issues = append(result.issues, ValidationIssue{
			Type:        IssueClinicalReasoning,
			Severity:    SeverityMinor,
			Description: "many clinical components but no recognisable reasoning structure",
			Suggestion:  "check that the plan and rationale were captured",
		})
	}
	for _, pattern := range patterns {
		result.accuracyFlags = append(result.accuracyFlags, AccuracyFlag{
			Type:        "reasoning_pattern",
			Description: fmt.Sprintf("detected %s (confidence %.2f)", pattern.Type, pattern.Confidence),
		})
	}
	return result
}

var brandNames = regexp.MustCompile(
	`(?i)\b(?:lasix|ventolin|panadol|coversyl|lipitor|zocor|plavix|eliquis|xarelto|coumadin)\b`)

// compliancePass flags departures from Australian prescribing conventions.
// Only runs when the config asks for an Australian focus.
func compliancePass(text string, _ []extractor.ClinicalComponent, cfg Config) passResult {
	result := passResult{issueType: IssueAustralianCompliance}
	if !cfg.AustralianFocus {
		return result
	}

	for _, brand := range brandNames.FindAllString(text, -1) {
		result.issues = append(result.issues, ValidationIssue{
			Type:        IssueAustralianCompliance,
			Severity:    SeverityMinor,
			Description: fmt.Sprintf("brand name %q; Australian convention prefers the generic", brand),
			Suggestion:  "substitute the generic medication name",
		})
	}
	if usSpellings.MatchString(text) {
		result.complianceFlags = append(result.complianceFlags, AccuracyFlag{
			Type:        "spelling",
			Description: "US spellings present",
		})
	} else if strings.TrimSpace(text) != "" {
		result.complianceFlags = append(result.complianceFlags, AccuracyFlag{
			Type:        "spelling",
			Description: "Australian spelling conventions followed",
		})
	}
	return result
}

// Physiological plausibility bounds. Values outside these ranges are almost
// certainly transcription errors rather than real measurements.
var (
	efPattern   = regexp.MustCompile(`(?i)\bEF\s+(?:of\s+)?(\d{1,3})\s*%?`)
	bpPattern   = regexp.MustCompile(`\b(\d{2,3})/(\d{2,3})\b`)
	hrPattern   = regexp.MustCompile(`(?i)\bheart rate\s+(?:of\s+)?(\d{2,3})\b`)
	dosePattern = regexp.MustCompile(`(?i)\bfrusemide\s+(\d+)\s*mg\b`)
)

// factualPass checks numeric plausibility of common measurements.
func factualPass(text string, _ []extractor.ClinicalComponent, _ Config) passResult {
	result := passResult{issueType: IssueFactualAccuracy}

	for _, m := range efPattern.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && (v > 85 || v < 5) {
			result.issues = append(result.issues, ValidationIssue{
				Type:        IssueFactualAccuracy,
				Severity:    SeverityCritical,
				Description: fmt.Sprintf("ejection fraction %d%% is outside the physiological range", v),
				Suggestion:  "verify the transcribed value",
			})
		}
	}
	for _, m := range bpPattern.FindAllStringSubmatch(text, -1) {
		systolic, err1 := strconv.Atoi(m[1])
		diastolic, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		if systolic < 50 || systolic > 300 || diastolic < 20 || diastolic > 200 {
			continue // not a blood pressure reading
		}
		if diastolic >= systolic {
			result.issues = append(result.issues, ValidationIssue{
				Type:        IssueFactualAccuracy,
				Severity:    SeverityMajor,
				Description: fmt.Sprintf("blood pressure %d/%d has diastolic above systolic", systolic, diastolic),
				Suggestion:  "verify the transcribed reading",
			})
		}
	}
	for _, m := range hrPattern.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && (v < 20 || v > 300) {
			result.issues = append(result.issues, ValidationIssue{
				Type:        IssueFactualAccuracy,
				Severity:    SeverityMajor,
				Description: fmt.Sprintf("heart rate %d is outside the plausible range", v),
				Suggestion:  "verify the transcribed value",
			})
		}
	}
	for _, m := range dosePattern.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && v > 500 {
			result.issues = append(result.issues, ValidationIssue{
				Type:        IssueFactualAccuracy,
				Severity:    SeverityCritical,
				Description: fmt.Sprintf("frusemide %dmg exceeds any plausible dose", v),
				Suggestion:  "verify the transcribed dose",
			})
		}
	}
	return result
}

//Personal.AI order the ending
