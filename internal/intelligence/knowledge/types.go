package knowledge

// ============================================================================
// Enumerations
// ============================================================================

// ConceptType classifies a graph node.
type ConceptType string

const (
	ConceptCondition     ConceptType = "condition"
	ConceptSymptom       ConceptType = "symptom"
	ConceptSign          ConceptType = "sign"
	ConceptInvestigation ConceptType = "investigation"
	ConceptProcedure     ConceptType = "procedure"
	ConceptMedication    ConceptType = "medication"
	ConceptAnatomy       ConceptType = "anatomy"
	ConceptRiskFactor    ConceptType = "risk_factor"
	ConceptDiagnosis     ConceptType = "diagnosis"
)

// MedicalDomain groups concepts by specialty area.
type MedicalDomain string

const (
	DomainCardiology   MedicalDomain = "cardiology"
	DomainRespiratory  MedicalDomain = "respiratory"
	DomainRenal        MedicalDomain = "renal"
	DomainEndocrine    MedicalDomain = "endocrine"
	DomainHaematology  MedicalDomain = "haematology"
	DomainPharmacology MedicalDomain = "pharmacology"
	DomainGeneral      MedicalDomain = "general"
)

// RelationshipType enumerates the fifteen recognised edge types.
type RelationshipType string

const (
	RelCauses          RelationshipType = "causes"
	RelCausedBy        RelationshipType = "caused_by"
	RelTreats          RelationshipType = "treats"
	RelTreatedBy       RelationshipType = "treated_by"
	RelIndicates       RelationshipType = "indicates"
	RelIndicatedBy     RelationshipType = "indicated_by"
	RelContraindicates RelationshipType = "contraindicates"
	RelPrecedes        RelationshipType = "precedes"
	RelFollows         RelationshipType = "follows"
	RelAssociatedWith  RelationshipType = "associated_with"
	RelRiskFactorFor   RelationshipType = "risk_factor_for"
	RelDiagnosedBy     RelationshipType = "diagnosed_by"
	RelMonitoredBy     RelationshipType = "monitored_by"
	RelComplicationOf  RelationshipType = "complication_of"
	RelPartOf          RelationshipType = "part_of"
)

// ============================================================================
// Node & Edge Model
// ============================================================================

// ConceptProperty is a typed attribute of a concept.
type ConceptProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Evidence supports a relationship claim.
type Evidence struct {
	Source      string  `json:"source"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// MedicalConcept is a graph node. Concepts are append-only: created at
// initialization or via AddConcept, never deleted.
type MedicalConcept struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Type                 ConceptType       `json:"type"`
	Domain               MedicalDomain     `json:"domain"`
	Definition           string            `json:"definition,omitempty"`
	Aliases              []string          `json:"aliases,omitempty"`
	Properties           []ConceptProperty `json:"properties,omitempty"`
	AustralianVariant    string            `json:"australian_variant,omitempty"`
	ClinicalSignificance string            `json:"clinical_significance,omitempty"`
	Confidence           float64           `json:"confidence"`
}

// MedicalRelationship is a directed weighted edge. Its ID derives from
// (source, target, type) only, so re-adding the same edge is an overwrite.
type MedicalRelationship struct {
	ID                  string           `json:"id"`
	SourceConceptID     string           `json:"source_concept_id"`
	TargetConceptID     string           `json:"target_concept_id"`
	RelationshipType    RelationshipType `json:"relationship_type"`
	Strength            float64          `json:"strength"`
	Confidence          float64          `json:"confidence"`
	Evidence            []Evidence       `json:"evidence,omitempty"`
	Bidirectional       bool             `json:"bidirectional"`
	ClinicalRelevance   string           `json:"clinical_relevance,omitempty"`
	AustralianGuideline string           `json:"australian_guideline,omitempty"`
}

// ============================================================================
// Query & Derived Results
// ============================================================================

// QueryOptions bound and filter a graph traversal.
type QueryOptions struct {
	MaxDepth          int
	RelationshipTypes []RelationshipType
	Domains           []MedicalDomain
	IncludePathways   bool
	AustralianFocus   bool
}

// Pathway is a chain of concepts linked by sequential relationships.
type Pathway struct {
	ConceptIDs []string `json:"concept_ids"`
	Names      []string `json:"names"`
}

// QueryResult is the outcome of a graph query. An unresolvable concept name
// yields an empty result with zero confidence, not an error.
type QueryResult struct {
	Concepts      []MedicalConcept      `json:"concepts"`
	Relationships []MedicalRelationship `json:"relationships"`
	Pathways      []Pathway             `json:"pathways,omitempty"`
	Confidence    float64               `json:"confidence"`
	Reasoning     string                `json:"reasoning"`
}

// SimilarityScore reports weighted structural similarity between two
// concepts. Symmetric: score(A,B) equals score(B,A).
type SimilarityScore struct {
	ConceptA   string   `json:"concept_a"`
	ConceptB   string   `json:"concept_b"`
	Similarity float64  `json:"similarity"`
	Factors    []string `json:"factors,omitempty"`
}

// ConceptCluster is a derived group of tightly-connected concepts. Never
// stored; recomputed on demand.
type ConceptCluster struct {
	ID               string   `json:"id"`
	ConceptIDs       []string `json:"concept_ids"`
	CentralConceptID string   `json:"central_concept_id"`
	Cohesion         float64  `json:"cohesion"`
}

// GraphStats aggregates counts and averages over the whole store.
type GraphStats struct {
	ConceptCount        int                      `json:"concept_count"`
	RelationshipCount   int                      `json:"relationship_count"`
	ConceptsByDomain    map[MedicalDomain]int    `json:"concepts_by_domain"`
	ConceptsByType      map[ConceptType]int      `json:"concepts_by_type"`
	RelationshipsByType map[RelationshipType]int `json:"relationships_by_type"`
	AverageStrength     float64                  `json:"average_strength"`
	AverageConfidence   float64                  `json:"average_confidence"`
}

//Personal.AI order the ending
