package corrections

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCorrector(t *testing.T) Corrector {
	t.Helper()
	c, err := NewCorrector(nil, nil)
	require.NoError(t, err)
	return c
}

func TestApplyMedicationCategory(t *testing.T) {
	c := newTestCorrector(t)

	out := c.Apply("frizomide 40mg BD", CategoryMedication)
	assert.Contains(t, out, "frusemide 40mg BD")
}

func TestApplyAllCategories(t *testing.T) {
	c := newTestCorrector(t)

	out := c.Apply("UNEs and FBE ordered")
	assert.Contains(t, out, "EUC")
	assert.Contains(t, out, "FBC")
	assert.NotContains(t, out, "UNE")
	assert.NotContains(t, out, "FBE")
}

func TestApplyCaseInsensitiveMatchCanonicalReplacement(t *testing.T) {
	c := newTestCorrector(t)

	out := c.Apply("swan ganz catheter inserted", CategoryCardiology)
	assert.Contains(t, out, "Swan-Ganz catheter")

	out = c.Apply("SWANN-GANZ readings stable", CategoryCardiology)
	assert.Contains(t, out, "Swan-Ganz readings")
}

func TestApplySeverityGrading(t *testing.T) {
	c := newTestCorrector(t)

	out := c.Apply("grade 2 on 4 systolic murmur", CategorySeverity)
	assert.Contains(t, out, "grade 2/4")
}

func TestApplyEmptyText(t *testing.T) {
	c := newTestCorrector(t)
	assert.Equal(t, "", c.Apply(""))
	assert.Equal(t, "", c.ApplyMedication(""))
}

func TestApplyNoMedicalContent(t *testing.T) {
	c := newTestCorrector(t)
	in := "the quick brown fox jumps over the lazy dog"
	assert.Equal(t, in, c.Apply(in))
}

func TestApplyIdempotent(t *testing.T) {
	c := newTestCorrector(t)

	once := c.Apply("UNEs and FBE ordered, frizomide 40mg BD, my trial valve")
	twice := c.Apply(once)
	assert.Equal(t, once, twice)
}

func TestApplyCategoryOrderIsTableOrder(t *testing.T) {
	c := newTestCorrector(t)

	// Passing categories in reverse order must not change the result.
	in := "frizomide for a ortic stenasis"
	forward := c.Apply(in, CategoryMedication, CategoryValves)
	reverse := c.Apply(in, CategoryValves, CategoryMedication)
	assert.Equal(t, forward, reverse)
	assert.Contains(t, forward, "frusemide")
	assert.Contains(t, forward, "aortic stenosis")
}

func TestApplyMedicationBrandToGeneric(t *testing.T) {
	c := newTestCorrector(t)

	out := c.ApplyMedication("commenced on Lasix 40mg daily")
	assert.Contains(t, out, "frusemide 40mg daily")
	assert.NotContains(t, out, "Lasix")
}

func TestApplyMedicationSpelling(t *testing.T) {
	c := newTestCorrector(t)

	out := c.ApplyMedication("furosemide and acetaminophen charted")
	assert.Contains(t, out, "frusemide")
	assert.Contains(t, out, "paracetamol")
}

func TestApplyMedicationSequentialComposition(t *testing.T) {
	c := newTestCorrector(t)

	// Brand pass output must still flow through the spelling pass.
	out := c.ApplyMedication("Coumadin ceased, furosemide continued")
	assert.Contains(t, out, "warfarin ceased")
	assert.Contains(t, out, "frusemide continued")
}

func TestApplyMedicationPhonetic(t *testing.T) {
	c := newTestCorrector(t)

	out := c.ApplyMedication("metoprololl 25mg BD")
	assert.Contains(t, out, "metoprolol 25mg BD")
}

func TestApplyMedicationLeavesOrdinaryWords(t *testing.T) {
	c := newTestCorrector(t)

	in := "patient reviewed in clinic today and remains stable"
	assert.Equal(t, in, c.ApplyMedication(in))
}

func TestRuleCount(t *testing.T) {
	c := newTestCorrector(t)
	counts := c.RuleCount()
	for _, cat := range AllCategories {
		assert.Greater(t, counts[cat], 0, "category %s has no rules", cat)
	}
}

func TestReloadRejectsInvalidTable(t *testing.T) {
	c := newTestCorrector(t)

	bad := &RuleTable{Categories: []CategoryRules{
		{Name: CategoryMedication, Rules: []Rule{{Pattern: "(", Replacement: "x"}}},
	}}
	require.Error(t, c.Reload(bad))

	// Old table must still be active.
	assert.Contains(t, c.Apply("frizomide", CategoryMedication), "frusemide")
}

func TestReloadSwapsTable(t *testing.T) {
	c := newTestCorrector(t)

	next := &RuleTable{Categories: []CategoryRules{
		{Name: CategoryMedication, Rules: []Rule{
			{Pattern: `\bcustomdrug\b`, Replacement: "frusemide"},
		}},
	}}
	require.NoError(t, c.Reload(next))

	assert.Contains(t, c.Apply("customdrug 40mg", CategoryMedication), "frusemide 40mg")
	// The built-in frizomide rule was replaced.
	assert.Equal(t, "frizomide", c.Apply("frizomide", CategoryMedication))
}

func TestLoadTableFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	yaml := `
categories:
  - name: medication
    rules:
      - pattern: '\bfrizomide\b'
        replacement: frusemide
  - name: pathology
    rules:
      - pattern: '\bUNEs?\b'
        replacement: EUC
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Len(t, table.Categories, 2)
	// Medication maps fall back to built-in data.
	assert.NotEmpty(t, table.BrandGeneric)
	assert.NotEmpty(t, table.MedicationLexicon)

	c, err := NewCorrector(table, nil)
	require.NoError(t, err)
	assert.Contains(t, c.Apply("frizomide and UNEs"), "frusemide and EUC")
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable("/nonexistent/rules.yaml")
	require.Error(t, err)
}

func TestLoadTableUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	yaml := `
categories:
  - name: radiology
    rules:
      - pattern: x
        replacement: y
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	_, err := LoadTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "radiology")
}

func TestValidateDuplicateCategory(t *testing.T) {
	table := &RuleTable{Categories: []CategoryRules{
		{Name: CategoryValves, Rules: []Rule{{Pattern: "a", Replacement: "b"}}},
		{Name: CategoryValves, Rules: []Rule{{Pattern: "c", Replacement: "d"}}},
	}}
	require.Error(t, table.Validate())
}

//Personal.AI order the ending
