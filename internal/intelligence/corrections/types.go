package corrections

import (
	"fmt"
	"regexp"

	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// ============================================================================
// Enumerations
// ============================================================================

// Category identifies a correction rule group. Categories are applied in
// declaration order; the order of AllCategories is a correctness contract
// because later, more general rules may re-match output produced by earlier,
// narrower ones.
type Category string

const (
	CategoryMedication Category = "medication"
	CategoryPathology  Category = "pathology"
	CategoryLaboratory Category = "laboratory"
	CategoryCardiology Category = "cardiology"
	CategorySeverity   Category = "severity"
	CategoryValves     Category = "valves"
)

// AllCategories lists every category in application order.
var AllCategories = []Category{
	CategoryMedication,
	CategoryPathology,
	CategoryLaboratory,
	CategoryCardiology,
	CategorySeverity,
	CategoryValves,
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ============================================================================
// Rule Model
// ============================================================================

// Rule rewrites one transcription error into canonical clinical terminology.
// Pattern is a regular expression; Replacement may reference capture groups
// ($1, $2). Matching is case-insensitive unless MatchCase pins it, while the
// replacement text always carries its own canonical casing (e.g. "Swan-Ganz").
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	MatchCase   bool   `yaml:"match_case,omitempty"`

	compiled *regexp.Regexp
}

// compile builds the matcher. Rules are immutable after compilation.
func (r *Rule) compile() error {
	pattern := r.Pattern
	if !r.MatchCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeRuleTableInvalid,
			fmt.Sprintf("invalid correction pattern %q", r.Pattern))
	}
	r.compiled = re
	return nil
}

// apply performs a global find-and-replace. An unmatched rule is a no-op.
func (r *Rule) apply(text string) string {
	if r.compiled == nil {
		return text
	}
	return r.compiled.ReplaceAllString(text, r.Replacement)
}

// CategoryRules is one category's ordered rule list.
type CategoryRules struct {
	Name  Category `yaml:"name"`
	Rules []Rule   `yaml:"rules"`
}

// RuleTable is the full correction table. Loaded once at startup (or hot
// reloaded from disk); never mutated in place.
type RuleTable struct {
	Categories []CategoryRules `yaml:"categories"`

	// BrandGeneric maps brand medication names to their generic equivalents
	// (second medication pass).
	BrandGeneric map[string]string `yaml:"brand_generic,omitempty"`

	// SpellingAU maps US spellings to Australian spellings (third medication
	// pass).
	SpellingAU map[string]string `yaml:"spelling_au,omitempty"`

	// MedicationLexicon lists canonical medication names used as phonetic
	// correction targets (first medication pass).
	MedicationLexicon []string `yaml:"medication_lexicon,omitempty"`
}

// Validate checks category names and compiles every rule pattern.
func (t *RuleTable) Validate() error {
	if t == nil || len(t.Categories) == 0 {
		return errors.New(errors.ErrCodeRuleTableInvalid, "rule table has no categories")
	}
	seen := make(map[Category]bool, len(t.Categories))
	for i := range t.Categories {
		cat := &t.Categories[i]
		if !cat.Name.IsValid() {
			return errors.New(errors.ErrCodeCategoryUnknown,
				fmt.Sprintf("unknown correction category %q", cat.Name))
		}
		if seen[cat.Name] {
			return errors.New(errors.ErrCodeRuleTableInvalid,
				fmt.Sprintf("duplicate correction category %q", cat.Name))
		}
		seen[cat.Name] = true
		for j := range cat.Rules {
			if err := cat.Rules[j].compile(); err != nil {
				return err
			}
		}
	}
	return nil
}

// RuleCount returns the number of rules per category.
func (t *RuleTable) RuleCount() map[Category]int {
	counts := make(map[Category]int, len(t.Categories))
	for _, cat := range t.Categories {
		counts[cat.Name] = len(cat.Rules)
	}
	return counts
}

//Personal.AI order the ending
