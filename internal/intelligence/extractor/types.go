package extractor

// ============================================================================
// Enumerations
// ============================================================================

// ComponentCategory classifies an extracted clinical component.
type ComponentCategory string

const (
	CategorySymptom             ComponentCategory = "symptom"
	CategorySign                ComponentCategory = "sign"
	CategoryInvestigationResult ComponentCategory = "investigation_result"
	CategoryDiagnosis           ComponentCategory = "diagnosis"
	CategoryProcedure           ComponentCategory = "procedure"
	CategoryMedication          ComponentCategory = "medication"
	CategoryRiskFactor          ComponentCategory = "risk_factor"
	CategoryContraindication    ComponentCategory = "contraindication"
	CategoryIndication          ComponentCategory = "indication"
)

// AllCategories lists every component category in extraction order.
var AllCategories = []ComponentCategory{
	CategorySymptom,
	CategorySign,
	CategoryInvestigationResult,
	CategoryDiagnosis,
	CategoryProcedure,
	CategoryMedication,
	CategoryRiskFactor,
	CategoryContraindication,
	CategoryIndication,
}

// Significance ranks the clinical weight of a component.
type Significance string

const (
	SignificanceCritical      Significance = "critical"
	SignificanceHigh          Significance = "high"
	SignificanceModerate      Significance = "moderate"
	SignificanceLow           Significance = "low"
	SignificanceInformational Significance = "informational"
)

// ============================================================================
// Component Model
// ============================================================================

// Position is a half-open byte span [Start, End) into the source text.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ComponentRelationship links one component to another within the same
// analysis (populated by the reasoning layer, empty at extraction time).
type ComponentRelationship struct {
	TargetValue string  `json:"target_value"`
	Type        string  `json:"type"`
	Strength    float64 `json:"strength"`
}

// ClinicalComponent is one typed match pulled out of raw clinical text.
// Components are transient per analysis call, never persisted.
type ClinicalComponent struct {
	Category             ComponentCategory       `json:"category"`
	Value                string                  `json:"value"`
	Confidence           float64                 `json:"confidence"`
	Position             Position                `json:"position"`
	ClinicalSignificance Significance            `json:"clinical_significance"`
	Relationships        []ComponentRelationship `json:"relationships,omitempty"`
}

//Personal.AI order the ending
