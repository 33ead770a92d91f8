// Package corrections rewrites ASR transcription errors into canonical
// clinical terminology. Rules are grouped into ordered categories and applied
// by global find-and-replace; the medication category additionally composes
// three sequential passes (phonetic, brand-to-generic, US-to-Australian
// spelling), each operating on the output of the previous one.
package corrections

import (
	"strings"
	"sync"
	"unicode"

	"github.com/antzucaro/matchr"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
)

// phoneticThreshold is the minimum Jaro-Winkler score required for a
// phonetically-matched lexicon entry to replace an unrecognised token. Set
// high so ordinary English words are never rewritten into medication names.
const phoneticThreshold = 0.84

// Corrector applies the correction table to raw clinical text. Safe for
// concurrent use; Reload swaps the table atomically under a write lock.
type Corrector interface {
	// Apply runs the rule lists of the given categories against text, in
	// table-declaration order. An empty category list means all categories.
	// Never fails: unmatched rules are no-ops and empty text passes through.
	Apply(text string, categories ...Category) string

	// ApplyMedication runs the three-pass medication pipeline: phonetic
	// correction, then brand-to-generic mapping, then US-to-Australian
	// spelling. Each pass consumes the previous pass's output.
	ApplyMedication(text string) string

	// Reload replaces the active rule table. The new table is validated
	// before the swap; on failure the old table stays active.
	Reload(table *RuleTable) error

	// RuleCount reports the number of active rules per category.
	RuleCount() map[Category]int
}

type corrector struct {
	mu     sync.RWMutex
	table  *RuleTable
	logger logging.Logger

	// Derived from the table under the same lock.
	lexiconSet map[string]bool
}

// NewCorrector builds a Corrector over the given table. A nil table selects
// the built-in defaults.
func NewCorrector(table *RuleTable, log logging.Logger) (Corrector, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if table == nil {
		table = DefaultTable()
	} else if err := table.Validate(); err != nil {
		return nil, err
	}
	c := &corrector{logger: log}
	c.install(table)
	return c, nil
}

func (c *corrector) install(table *RuleTable) {
	lexicon := make(map[string]bool, len(table.MedicationLexicon))
	for _, name := range table.MedicationLexicon {
		lexicon[strings.ToLower(name)] = true
	}
	c.mu.Lock()
	c.table = table
	c.lexiconSet = lexicon
	c.mu.Unlock()
}

func (c *corrector) Reload(table *RuleTable) error {
	if err := table.Validate(); err != nil {
		return err
	}
	c.install(table)
	c.logger.Info("correction table reloaded",
		logging.Int("categories", len(table.Categories)))
	return nil
}

func (c *corrector) RuleCount() map[Category]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table.RuleCount()
}

func (c *corrector) Apply(text string, categories ...Category) string {
	if text == "" {
		return text
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	wanted := make(map[Category]bool, len(categories))
	for _, cat := range categories {
		wanted[cat] = true
	}

	// Iterate in table-declaration order regardless of the caller's order;
	// category ordering is part of the rewrite contract.
	for _, cat := range c.table.Categories {
		if len(wanted) > 0 && !wanted[cat.Name] {
			continue
		}
		for i := range cat.Rules {
			text = cat.Rules[i].apply(text)
		}
	}
	return text
}

func (c *corrector) ApplyMedication(text string) string {
	if text == "" {
		return text
	}
	text = c.applyPhonetic(text)
	text = c.applyWordMap(text, func(t *RuleTable) map[string]string { return t.BrandGeneric })
	text = c.applyWordMap(text, func(t *RuleTable) map[string]string { return t.SpellingAU })
	return text
}

// applyWordMap rewrites whole lowercase tokens found in the selected map.
func (c *corrector) applyWordMap(text string, pick func(*RuleTable) map[string]string) string {
	c.mu.RLock()
	mapping := pick(c.table)
	c.mu.RUnlock()
	if len(mapping) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	eachToken(text, func(token string, isWord bool) {
		if !isWord {
			b.WriteString(token)
			return
		}
		if canonical, ok := mapping[strings.ToLower(token)]; ok {
			b.WriteString(canonical)
			return
		}
		b.WriteString(token)
	})
	return b.String()
}

// applyPhonetic rewrites unrecognised alphabetic tokens that sound like a
// medication lexicon entry. Uses Double Metaphone overlap as a candidate
// filter and Jaro-Winkler similarity for ranked selection.
func (c *corrector) applyPhonetic(text string) string {
	c.mu.RLock()
	lexicon := c.table.MedicationLexicon
	lexiconSet := c.lexiconSet
	c.mu.RUnlock()
	if len(lexicon) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	eachToken(text, func(token string, isWord bool) {
		if !isWord || len(token) < 5 {
			b.WriteString(token)
			return
		}
		lower := strings.ToLower(token)
		if lexiconSet[lower] {
			b.WriteString(token)
			return
		}
		if canonical, ok := bestPhoneticMatch(lower, lexicon); ok {
			b.WriteString(canonical)
			return
		}
		b.WriteString(token)
	})
	return b.String()
}

// bestPhoneticMatch returns the lexicon entry with the highest Jaro-Winkler
// score among those sharing a Double Metaphone code with the token, provided
// the score clears phoneticThreshold.
func bestPhoneticMatch(token string, lexicon []string) (string, bool) {
	primary, secondary := matchr.DoubleMetaphone(token)

	var best string
	var bestScore float64
	for _, entry := range lexicon {
		ep, es := matchr.DoubleMetaphone(entry)
		if !codesOverlap(primary, secondary, ep, es) {
			continue
		}
		score := matchr.JaroWinkler(token, strings.ToLower(entry), false)
		if score > bestScore {
			best, bestScore = entry, score
		}
	}
	if bestScore >= phoneticThreshold {
		return best, true
	}
	return "", false
}

func codesOverlap(ap, as, bp, bs string) bool {
	if ap != "" && (ap == bp || ap == bs) {
		return true
	}
	if as != "" && (as == bp || as == bs) {
		return true
	}
	return false
}

// eachToken splits text into maximal runs of letters and everything else,
// preserving all characters so the rewritten output keeps its original
// punctuation and spacing.
func eachToken(text string, fn func(token string, isWord bool)) {
	runes := []rune(text)
	start := 0
	for start < len(runes) {
		isWord := unicode.IsLetter(runes[start])
		end := start + 1
		for end < len(runes) && unicode.IsLetter(runes[end]) == isWord {
			end++
		}
		fn(string(runes[start:end]), isWord)
		start = end
	}
}

//Personal.AI order the ending
