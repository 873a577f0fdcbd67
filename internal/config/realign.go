package config

import "orgrealign/internal/model"

// RealignConfig is the read-only table set driving the organizational graph
// analyzer. Built once at startup and injected; never mutated afterwards.
type RealignConfig struct {
	// SectionWeights rate institutional impact and interconnectedness, 0-1.
	SectionWeights map[string]float64

	// DefaultSectionWeight applies to sections missing from SectionWeights.
	DefaultSectionWeight float64

	// DependencyMap is the hand-authored section dependency graph.
	DependencyMap map[string][]string

	// RedundancyKeywords mark question ids that probe redundant systems or
	// processes. Matching is case-sensitive substring, as in the question
	// bank naming convention.
	RedundancyKeywords []string

	// Tags marking AI-automatable and human-only work.
	AITag        string
	HumanOnlyTag string

	// BaseROI per recommendation category, in percent.
	BaseROI map[model.Category]float64

	// BaseCost per recommendation category, in dollars.
	BaseCost map[model.Category]float64

	// AITools recommends tooling per section for automation opportunities.
	AITools map[string][]string

	// DefaultAITools applies to sections missing from AITools.
	DefaultAITools []string
}

// DefaultRealignConfig returns the production analyzer tables.
func DefaultRealignConfig() *RealignConfig {
	return &RealignConfig{
		SectionWeights: map[string]float64{
			"Governance & Leadership":                          0.95,
			"Finance, Budget & Procurement":                    0.90,
			"Academic Programs & Curriculum":                   0.88,
			"Strategic Planning & Performance Management":      0.88,
			"Information Technology & Digital Learning":        0.85,
			"Risk Management & Compliance":                     0.85,
			"Faculty & Instructional Support":                  0.82,
			"Student Affairs & Success Services":               0.80,
			"Enrollment Management & Admissions":               0.78,
			"Human Resources & Talent Management":              0.75,
			"Innovation & Entrepreneurship":                    0.75,
			"Institutional Research, Planning & Effectiveness": 0.73,
			"Advancement & Fundraising":                        0.72,
			"Quality Assurance & Accreditation":                0.70,
			"Research & Scholarship":                           0.70,
			"Marketing, Communications & External Relations":   0.68,
			"Facilities & Campus Operations":                   0.65,
			"Continuing Education & Workforce Development":     0.60,
		},
		DefaultSectionWeight: 0.5,
		DependencyMap: map[string][]string{
			"Governance & Leadership":                   {"Strategic Planning & Performance Management", "Risk Management & Compliance"},
			"Finance, Budget & Procurement":             {"Governance & Leadership", "Information Technology & Digital Learning"},
			"Academic Programs & Curriculum":            {"Faculty & Instructional Support", "Quality Assurance & Accreditation"},
			"Information Technology & Digital Learning": {"Finance, Budget & Procurement", "Risk Management & Compliance"},
			"Faculty & Instructional Support":           {"Human Resources & Talent Management", "Academic Programs & Curriculum"},
			"Student Affairs & Success Services":        {"Enrollment Management & Admissions", "Academic Programs & Curriculum"},
			"Enrollment Management & Admissions":        {"Marketing, Communications & External Relations", "Information Technology & Digital Learning"},
		},
		RedundancyKeywords: []string{"Redundant", "Duplicate", "Overlapping"},
		AITag:              "AI",
		HumanOnlyTag:       "HO",
		BaseROI: map[model.Category]float64{
			model.CategoryRestructure:   25,
			model.CategoryAutomation:    40,
			model.CategoryConsolidation: 30,
			model.CategoryInvestment:    15,
			model.CategoryElimination:   20,
		},
		BaseCost: map[model.Category]float64{
			model.CategoryAutomation:    50000,
			model.CategoryRestructure:   100000,
			model.CategoryConsolidation: 30000,
			model.CategoryInvestment:    150000,
			model.CategoryElimination:   20000,
		},
		AITools: map[string][]string{
			"Finance, Budget & Procurement":             {"Robotic Process Automation", "Predictive Analytics", "Spend Analysis AI"},
			"Enrollment Management & Admissions":        {"Chatbots", "Predictive Modeling", "Application Processing AI"},
			"Student Affairs & Success Services":        {"Early Warning Systems", "Behavioral Analytics", "Personalized Intervention AI"},
			"Information Technology & Digital Learning": {"IT Service Management AI", "Learning Analytics", "Automated Provisioning"},
			"Human Resources & Talent Management":       {"Resume Screening AI", "Performance Analytics", "Predictive Retention"},
		},
		DefaultAITools: []string{"Process Automation", "Data Analytics", "Decision Support Systems"},
	}
}

// SectionWeight returns the importance weight for a section, falling back to
// the default for unlisted sections.
func (c *RealignConfig) SectionWeight(section string) float64 {
	if w, ok := c.SectionWeights[section]; ok {
		return w
	}
	return c.DefaultSectionWeight
}

// Dependencies returns the static dependency list for a section.
func (c *RealignConfig) Dependencies(section string) []string {
	if deps, ok := c.DependencyMap[section]; ok {
		return deps
	}
	return []string{}
}

// ToolsFor returns the recommended AI tools for a section.
func (c *RealignConfig) ToolsFor(section string) []string {
	if tools, ok := c.AITools[section]; ok {
		return tools
	}
	return c.DefaultAITools
}
