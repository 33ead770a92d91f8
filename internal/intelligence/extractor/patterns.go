package extractor

import "regexp"

// ============================================================================
// Category Pattern Libraries
// ============================================================================
//
// Each category owns an ordered list of compiled patterns. Matching is global
// and case-insensitive; every occurrence yields a component, so repeated
// mentions produce repeated components before deduplication.

var categoryPatterns = map[ComponentCategory][]*regexp.Regexp{
	CategorySymptom: compileAll(
		`\b(?:chest pain|chest tightness|chest discomfort)\b`,
		`\b(?:shortness of breath|dyspnoea|dyspnea|breathlessness)\b`,
		`\b(?:palpitations?)\b`,
		`\b(?:syncope|presyncope|dizziness|light-?headedness)\b`,
		`\b(?:fatigue|lethargy|malaise)\b`,
		`\b(?:orthopnoea|orthopnea|paroxysmal nocturnal dyspnoea|PND)\b`,
		`\b(?:nausea|vomiting)\b`,
		`\b(?:ankle swelling|leg swelling)\b`,
	),
	CategorySign: compileAll(
		`\b(?:grade\s+)?\d/\d\s+(?:systolic|diastolic|pansystolic|ejection)?\s*murmur\b`,
		`\b(?:elevated|raised)\s+JVP\b`,
		`\b(?:peripheral|pitting|pedal)\s+oedema\b`,
		`\b(?:bi)?basal crepitations\b`,
		`\b(?:irregularly irregular|regular)\s+(?:pulse|rhythm)\b`,
		`\bBP\s+\d{2,3}/\d{2,3}\b`,
		`\bheart rate\s+(?:of\s+)?\d{2,3}\b`,
		`\b(?:displaced|heaving)\s+apex beat\b`,
		`\bcyanosis\b`,
		`\bclubbing\b`,
	),
	CategoryInvestigationResult: compileAll(
		`\bEF\s+(?:of\s+)?\d{1,3}\s*%?\b`,
		`\bejection fraction\s+(?:of\s+)?\d{1,3}\s*%?\b`,
		`\btroponin\s+(?:I|T)?\s*(?:of\s+)?\d+(?:\.\d+)?\b`,
		`\b(?:NT-proBNP|BNP)\s+(?:of\s+)?\d+\b`,
		`\beGFR\s+(?:of\s+)?\d+\b`,
		`\bhaemoglobin\s+(?:of\s+)?\d+\b`,
		`\bHbA1c\s+(?:of\s+)?\d+(?:\.\d+)?\s*%?\b`,
		`\bTAPSE\s+(?:of\s+)?\d+(?:\.\d+)?\s*(?:mm)?\b`,
		`\bPASP\s+(?:of\s+)?\d+\s*(?:mmHg)?\b`,
		`\bmean gradient\s+(?:of\s+)?\d+\s*(?:mmHg)?\b`,
		`\bvalve area\s+(?:of\s+)?\d+(?:\.\d+)?\s*(?:cm2|cm²)?\b`,
		`\bINR\s+(?:of\s+)?\d+(?:\.\d+)?\b`,
	),
	CategoryDiagnosis: compileAll(
		`\b(?:severe|moderate|mild)?\s*aortic stenosis\b`,
		`\b(?:severe|moderate|mild)?\s*(?:mitral|aortic|tricuspid|pulmonary)\s+regurgitation\b`,
		`\b(?:mitral|tricuspid)\s+stenosis\b`,
		`\b(?:STEMI|NSTEMI|myocardial infarction|acute coronary syndrome)\b`,
		`\b(?:atrial fibrillation|atrial flutter|AF)\b`,
		`\b(?:heart failure|HFrEF|HFpEF|cardiomyopathy)\b`,
		`\b(?:hypertension|hypertensive)\b`,
		`\b(?:ischaemic|ischemic) heart disease\b`,
		`\bIHD\b`,
		`\b(?:complete|first degree|second degree) heart block\b`,
		`\bendocarditis\b`,
		`\bpericardial effusion\b`,
		`\bpulmonary embolism\b`,
		`\bdiabetes(?:\s+mellitus)?\b`,
	),
	CategoryProcedure: compileAll(
		`\b(?:transthoracic|transoesophageal)\s+echocardiogram\b`,
		`\b(?:TTE|TOE)\b`,
		`\bcoronary angiogra(?:m|phy)\b`,
		`\b(?:PCI|percutaneous coronary intervention)\b`,
		`\b(?:CABG|coronary artery bypass)\b`,
		`\b(?:TAVI|valve replacement|valve repair)\b`,
		`\bpacemaker insertion\b`,
		`\bcardioversion\b`,
		`\bstress (?:test|echo)\b`,
		`\bHolter monitor(?:ing)?\b`,
		`\bcardiac MRI\b`,
		`\bright heart catheteri[sz]ation\b`,
	),
	CategoryMedication: compileAll(
		`\b[a-z]+(?:olol|pril|sartan|statin|azide|mide|oxin|arin|aban|grel|actone|odarone)\s+\d+(?:\.\d+)?\s*(?:mg|mcg|g)\b`,
		`\b(?:frusemide|metoprolol|bisoprolol|atorvastatin|simvastatin|perindopril|ramipril|candesartan|irbesartan|warfarin|apixaban|rivaroxaban|clopidogrel|aspirin|spironolactone|digoxin|amiodarone)\b`,
		`\b(?:anticoagulation|antiplatelet|beta.?blocker|ACE inhibitor|diuretic)s?\b`,
		`\b\d+(?:\.\d+)?\s*(?:mg|mcg)\s+(?:daily|BD|TDS|QID|mane|nocte)\b`,
	),
	CategoryRiskFactor: compileAll(
		`\b(?:current|ex|former)[- ]smoker\b`,
		`\bsmoking history\b`,
		`\bfamily history of\s+[a-z ]+\b`,
		`\bhypercholesterolaemia\b`,
		`\bdyslipidaemia\b`,
		`\bobesity\b`,
		`\bsedentary lifestyle\b`,
		`\bexcess(?:ive)? alcohol\b`,
		`\bchronic kidney disease\b`,
	),
	CategoryContraindication: compileAll(
		`\bcontraindicat(?:ed|ion)\b`,
		`\ballerg(?:y|ic) to\s+[a-z]+\b`,
		`\bintoleran(?:t|ce)\s+(?:of|to)\s+[a-z]+\b`,
		`\bavoid(?:ed)?\s+(?:due to|because of|in view of)\b`,
		`\bnot suitable for\b`,
		`\bprevious adverse reaction\b`,
	),
	CategoryIndication: compileAll(
		`\bindicat(?:ed|ion)\s+for\b`,
		`\bmeets criteria for\b`,
		`\bwarrants?\s+[a-z ]+\b`,
		`\brequires?\s+(?:urgent\s+)?[a-z ]+\b`,
		`\breferred for\s+[a-z ]+\b`,
		`\bfor consideration of\s+[a-z ]+\b`,
	),
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}

// ============================================================================
// Confidence & Significance Tables
// ============================================================================

// categoryConfidenceBonus is added to the 0.6 base confidence per category.
// Categories with more specific pattern shapes earn higher bonuses.
var categoryConfidenceBonus = map[ComponentCategory]float64{
	CategorySymptom:             0.10,
	CategorySign:                0.15,
	CategoryInvestigationResult: 0.25,
	CategoryDiagnosis:           0.20,
	CategoryProcedure:           0.20,
	CategoryMedication:          0.25,
	CategoryRiskFactor:          0.10,
	CategoryContraindication:    0.15,
	CategoryIndication:          0.10,
}

// categoryDefaultSignificance applies when no critical keyword overrides it.
var categoryDefaultSignificance = map[ComponentCategory]Significance{
	CategorySymptom:             SignificanceModerate,
	CategorySign:                SignificanceModerate,
	CategoryInvestigationResult: SignificanceHigh,
	CategoryDiagnosis:           SignificanceHigh,
	CategoryProcedure:           SignificanceModerate,
	CategoryMedication:          SignificanceHigh,
	CategoryRiskFactor:          SignificanceLow,
	CategoryContraindication:    SignificanceCritical,
	CategoryIndication:          SignificanceModerate,
}

// criticalKeywords force critical significance regardless of category.
var criticalKeywords = []string{
	"severe",
	"critical",
	"emergency",
	"urgent",
	"acute",
	"stemi",
	"arrest",
	"unstable",
	"life-threatening",
}

// unitTokens are the measurement units that earn a confidence bonus.
var unitTokens = []string{"mg", "mcg", "mmhg", "mmol", "ml", "%", "cm"}

//Personal.AI order the ending
