package corrections

// ============================================================================
// Built-in Correction Table
// ============================================================================
//
// The default table ships with the rules most commonly needed for Australian
// cardiology dictation. Deployments extend or replace it via a YAML rules
// file (see LoadTable); the built-in data keeps the platform useful with zero
// configuration.

// DefaultTable returns a freshly-compiled copy of the built-in rule table.
func DefaultTable() *RuleTable {
	t := &RuleTable{
		Categories: []CategoryRules{
			{
				Name: CategoryMedication,
				Rules: []Rule{
					{Pattern: `\bfrizomide\b`, Replacement: "frusemide"},
					{Pattern: `\bfruzemide\b`, Replacement: "frusemide"},
					{Pattern: `\bfuros[ea]mide\b`, Replacement: "frusemide"},
					{Pattern: `\bmetapro+lol\b`, Replacement: "metoprolol"},
					{Pattern: `\bmeta?operalol\b`, Replacement: "metoprolol"},
					{Pattern: `\batorvastatine\b`, Replacement: "atorvastatin"},
					{Pattern: `\bapix?aban[de]\b`, Replacement: "apixaban"},
					{Pattern: `\bwarfrin\b`, Replacement: "warfarin"},
					{Pattern: `\bspirono?lactone?\b`, Replacement: "spironolactone"},
					{Pattern: `\bperindo?pril\b`, Replacement: "perindopril"},
					{Pattern: `\bclopidogrel{1,2}\b`, Replacement: "clopidogrel"},
					{Pattern: `\bb\.?d\.?\b`, Replacement: "BD"},
					{Pattern: `\bt\.?d\.?s\.?\b`, Replacement: "TDS"},
					{Pattern: `\bmane\b`, Replacement: "mane"},
					{Pattern: `(\d+)\s*milligrams?\b`, Replacement: "${1}mg"},
					{Pattern: `(\d+)\s*micrograms?\b`, Replacement: "${1}mcg"},
				},
			},
			{
				Name: CategoryPathology,
				Rules: []Rule{
					{Pattern: `\bUNEs?\b`, Replacement: "EUC"},
					{Pattern: `\bU\s*(?:and|&)\s*Es?\b`, Replacement: "EUC"},
					{Pattern: `\byou and ease\b`, Replacement: "EUC"},
					{Pattern: `\bFBEs?\b`, Replacement: "FBC"},
					{Pattern: `\bfull blood examination\b`, Replacement: "FBC"},
					{Pattern: `\bfull blood count\b`, Replacement: "FBC"},
					{Pattern: `\bliver function tests?\b`, Replacement: "LFT"},
					{Pattern: `\bthyroid function tests?\b`, Replacement: "TFT"},
					{Pattern: `\bsee reactive protein\b`, Replacement: "CRP"},
					{Pattern: `\bc[- ]reactive protein\b`, Replacement: "CRP"},
					{Pattern: `\bh\s*b\s*a\s*1\s*c\b`, Replacement: "HbA1c"},
					{Pattern: `\bhemoglobin a1c\b`, Replacement: "HbA1c"},
				},
			},
			{
				Name: CategoryLaboratory,
				Rules: []Rule{
					{Pattern: `\btroponins?\s+(?:eye|i)\b`, Replacement: "troponin I"},
					{Pattern: `\btroponins?\s+tea\b`, Replacement: "troponin T"},
					{Pattern: `\bbnp\b`, Replacement: "BNP"},
					{Pattern: `\bnt\s*pro\s*bnp\b`, Replacement: "NT-proBNP"},
					{Pattern: `\begfr\b`, Replacement: "eGFR"},
					{Pattern: `\binr\b`, Replacement: "INR"},
					{Pattern: `(\d+)\s*millimoles? per lit(?:re|er)\b`, Replacement: "${1} mmol/L"},
					{Pattern: `\bmillimoles? per lit(?:re|er)\b`, Replacement: "mmol/L"},
					{Pattern: `\bmicromoles? per lit(?:re|er)\b`, Replacement: "umol/L"},
				},
			},
			{
				Name: CategoryCardiology,
				Rules: []Rule{
					{Pattern: `\bejection fraction\b`, Replacement: "EF"},
					{Pattern: `\be\s+f\b`, Replacement: "EF"},
					{Pattern: `\btap\s*see\b`, Replacement: "TAPSE"},
					{Pattern: `\btapse\b`, Replacement: "TAPSE"},
					{Pattern: `\bpasp\b`, Replacement: "PASP"},
					{Pattern: `\bpulmonary artery systolic pressure\b`, Replacement: "PASP"},
					{Pattern: `\blved{1,2}\b`, Replacement: "LVEDD"},
					{Pattern: `\bleft ventricular end diastolic diameter\b`, Replacement: "LVEDD"},
					{Pattern: `\bswann?[ -]?ganz\b`, Replacement: "Swan-Ganz"},
					{Pattern: `\becho\s*cardiogram\b`, Replacement: "echocardiogram"},
					{Pattern: `\btransthoracic echo\b`, Replacement: "TTE"},
					{Pattern: `\btrans[- ]?[eo]esophageal echo\b`, Replacement: "TOE"},
					{Pattern: `\ba[- ]?fib\b`, Replacement: "AF"},
					{Pattern: `\batrial fib\b`, Replacement: "atrial fibrillation"},
				},
			},
			{
				Name: CategorySeverity,
				Rules: []Rule{
					// Murmur gradings dictated as "two on six".
					{Pattern: `\bgrade\s+(\d)\s+on\s+(\d)\b`, Replacement: "grade ${1}/${2}"},
					{Pattern: `\b(\d)\s+on\s+(\d)\s+murmur\b`, Replacement: "${1}/${2} murmur"},
					{Pattern: `\bnew york heart association\b`, Replacement: "NYHA"},
					{Pattern: `\bnyha\s+(?:class\s+)?(one|1|i)\b`, Replacement: "NYHA class I"},
					{Pattern: `\bnyha\s+(?:class\s+)?(two|2|ii)\b`, Replacement: "NYHA class II"},
					{Pattern: `\bnyha\s+(?:class\s+)?(three|3|iii)\b`, Replacement: "NYHA class III"},
					{Pattern: `\bnyha\s+(?:class\s+)?(four|4|iv)\b`, Replacement: "NYHA class IV"},
					{Pattern: `\bmildly to moderately\b`, Replacement: "mild-moderate"},
					{Pattern: `\bmoderately to severely\b`, Replacement: "moderate-severe"},
				},
			},
			{
				Name: CategoryValves,
				Rules: []Rule{
					{Pattern: `\bmy trial\b`, Replacement: "mitral"},
					{Pattern: `\bmightral\b`, Replacement: "mitral"},
					{Pattern: `\ba\s+ortic\b`, Replacement: "aortic"},
					{Pattern: `\bay?ortic\b`, Replacement: "aortic"},
					{Pattern: `\btry cuspid\b`, Replacement: "tricuspid"},
					{Pattern: `\bmitral regurg\b`, Replacement: "mitral regurgitation"},
					{Pattern: `\baortic regurg\b`, Replacement: "aortic regurgitation"},
					{Pattern: `\btricuspid regurg\b`, Replacement: "tricuspid regurgitation"},
					{Pattern: `\bsten[oa]sis\b`, Replacement: "stenosis"},
					{Pattern: `\bbio\s?prosthetic\b`, Replacement: "bioprosthetic"},
				},
			},
		},
		BrandGeneric:      defaultBrandGeneric(),
		SpellingAU:        defaultSpellingAU(),
		MedicationLexicon: defaultMedicationLexicon(),
	}
	// Built-in data must always compile; a panic here is a programming error.
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

// defaultBrandGeneric maps common brand names to Australian generic names.
func defaultBrandGeneric() map[string]string {
	return map[string]string{
		"lasix":    "frusemide",
		"ventolin": "salbutamol",
		"panadol":  "paracetamol",
		"coversyl": "perindopril",
		"lipitor":  "atorvastatin",
		"zocor":    "simvastatin",
		"plavix":   "clopidogrel",
		"eliquis":  "apixaban",
		"xarelto":  "rivaroxaban",
		"coumadin": "warfarin",
		"betaloc":  "metoprolol",
		"aldactone": "spironolactone",
	}
}

// defaultSpellingAU maps US spellings to their Australian equivalents.
func defaultSpellingAU() map[string]string {
	return map[string]string{
		"furosemide":     "frusemide",
		"acetaminophen":  "paracetamol",
		"epinephrine":    "adrenaline",
		"norepinephrine": "noradrenaline",
		"albuterol":      "salbutamol",
		"anemia":         "anaemia",
		"edema":          "oedema",
		"hemoglobin":     "haemoglobin",
		"anesthesia":     "anaesthesia",
		"esophageal":     "oesophageal",
	}
}

// defaultMedicationLexicon lists phonetic correction targets for the first
// medication pass. Unrecognised tokens that sound like one of these are
// rewritten to the canonical name.
func defaultMedicationLexicon() []string {
	return []string{
		"frusemide",
		"metoprolol",
		"atorvastatin",
		"simvastatin",
		"apixaban",
		"rivaroxaban",
		"warfarin",
		"spironolactone",
		"perindopril",
		"ramipril",
		"clopidogrel",
		"salbutamol",
		"paracetamol",
		"amiodarone",
		"digoxin",
		"bisoprolol",
		"candesartan",
		"irbesartan",
	}
}

//Personal.AI order the ending
