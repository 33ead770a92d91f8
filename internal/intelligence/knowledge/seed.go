package knowledge

// seedConcepts returns the built-in starter concepts. The graph is designed
// to be grown at runtime, not shipped as a complete ontology; the seed list
// is illustrative.
func seedConcepts() []MedicalConcept {
	return []MedicalConcept{
		{
			Name:       "aortic stenosis",
			Type:       ConceptCondition,
			Domain:     DomainCardiology,
			Definition: "narrowing of the aortic valve restricting left ventricular outflow",
			Aliases:    []string{"AS", "aortic valve stenosis"},
			Properties: []ConceptProperty{
				{Name: "valve", Value: "aortic"},
				{Name: "severity_marker", Value: "mean gradient"},
			},
			ClinicalSignificance: "high",
			Confidence:           0.95,
		},
		{
			Name:       "myocardial infarction",
			Type:       ConceptCondition,
			Domain:     DomainCardiology,
			Definition: "myocardial necrosis from acute coronary occlusion",
			Aliases:    []string{"MI", "heart attack", "AMI"},
			Properties: []ConceptProperty{
				{Name: "marker", Value: "troponin"},
				{Name: "territory", Value: "coronary"},
			},
			ClinicalSignificance: "critical",
			Confidence:           0.95,
		},
	}
}

//Personal.AI order the ending
