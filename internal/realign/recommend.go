package realign

import (
	"fmt"
	"math"
	"sort"

	"orgrealign/internal/model"
)

// Rule thresholds for recommendation generation. The three rules are
// independent: a single section can emit up to three recommendations.
const (
	criticalEfficiencyBelow = 40.0
	criticalWeightAbove     = 0.8
	automationReadinessOver = 70.0
	automationPotentialOver = 60.0
	consolidationRedundancy = 60.0
)

// generateRecommendations derives prioritized recommendations from section
// nodes, ordered by priority rank then expected ROI, both descending.
func (e *Engine) generateRecommendations(sections []string, nodes map[string]*model.OrganizationalNode) []model.RealignmentRecommendation {
	recommendations := []model.RealignmentRecommendation{}

	for _, section := range sections {
		node := nodes[section]
		weight := e.cfg.SectionWeight(section)

		if node.CurrentEfficiency < criticalEfficiencyBelow && weight > criticalWeightAbove {
			recommendations = append(recommendations, model.RealignmentRecommendation{
				Priority:                 model.PriorityCritical,
				Category:                 model.CategoryRestructure,
				Section:                  section,
				Title:                    fmt.Sprintf("Urgent Restructuring Required in %s", section),
				Description:              "Critical efficiency gaps detected. Immediate organizational restructuring recommended.",
				ImplementationComplexity: 8,
				ExpectedROI:              e.expectedROI(node, model.CategoryRestructure),
				TimeToImplement:          12,
				RiskLevel:                7,
				Dependencies:             node.Dependencies,
			})
		}

		if node.AIReadiness > automationReadinessOver && node.TransformationPotential > automationPotentialOver {
			recommendations = append(recommendations, model.RealignmentRecommendation{
				Priority:                 model.PriorityHigh,
				Category:                 model.CategoryAutomation,
				Section:                  section,
				Title:                    fmt.Sprintf("AI Automation Opportunity in %s", section),
				Description:              "High AI readiness detected. Implement intelligent automation systems.",
				ImplementationComplexity: 6,
				ExpectedROI:              e.expectedROI(node, model.CategoryAutomation),
				TimeToImplement:          8,
				RiskLevel:                4,
				Dependencies:             []string{"Information Technology & Digital Learning"},
				AIOpportunity: &model.AIOpportunity{
					AutomationPotential: node.AIReadiness,
					ToolsRequired:       e.cfg.ToolsFor(section),
					ImplementationCost:  e.implementationCost(node, model.CategoryAutomation),
				},
			})
		}

		if node.RedundancyScore > consolidationRedundancy {
			recommendations = append(recommendations, model.RealignmentRecommendation{
				Priority:                 model.PriorityMedium,
				Category:                 model.CategoryConsolidation,
				Section:                  section,
				Title:                    fmt.Sprintf("Eliminate Redundancies in %s", section),
				Description:              "Significant redundancies detected. Consolidate overlapping functions.",
				ImplementationComplexity: 5,
				ExpectedROI:              e.expectedROI(node, model.CategoryConsolidation),
				TimeToImplement:          6,
				RiskLevel:                3,
				Dependencies:             node.Dependencies,
			})
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Priority.Rank() != recommendations[j].Priority.Rank() {
			return recommendations[i].Priority.Rank() > recommendations[j].Priority.Rank()
		}
		return recommendations[i].ExpectedROI > recommendations[j].ExpectedROI
	})

	return recommendations
}

// expectedROI scales the category's base ROI by transformation potential,
// capped at 100 percent.
func (e *Engine) expectedROI(node *model.OrganizationalNode, category model.Category) float64 {
	base, ok := e.cfg.BaseROI[category]
	if !ok {
		base = 20
	}
	multiplier := node.TransformationPotential/100 + 1
	return math.Min(100, base*multiplier)
}

// implementationCost scales the category's base cost by the section's risk
// level.
func (e *Engine) implementationCost(node *model.OrganizationalNode, category model.Category) float64 {
	base, ok := e.cfg.BaseCost[category]
	if !ok {
		base = 50000
	}
	return base * (1 + node.RiskLevel/10)
}
