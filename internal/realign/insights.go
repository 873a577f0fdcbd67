package realign

import "orgrealign/internal/model"

// Organization-wide insight thresholds.
const (
	lowEfficiencyThreshold  = 60.0
	highAIReadinessLevel    = 75.0
	highAISectionsToTrigger = 3
)

// generateInsights emits the organization-wide findings. Only efficiency and
// ai_opportunity insights are produced; structural and risk stay reserved on
// the type.
func (e *Engine) generateInsights(sections []string, nodes []model.OrganizationalNode) []model.OptimizationInsight {
	insights := []model.OptimizationInsight{}
	if len(nodes) == 0 {
		return insights
	}

	avgEfficiency := meanOf(nodes, func(n model.OrganizationalNode) float64 { return n.CurrentEfficiency })
	if avgEfficiency < lowEfficiencyThreshold {
		insights = append(insights, model.OptimizationInsight{
			Type:             model.InsightEfficiency,
			Impact:           85,
			Confidence:       92,
			Description:      "Organization-wide efficiency below optimal threshold. Systematic improvements needed.",
			AffectedSections: sections,
		})
	}

	var highAI []string
	for _, node := range nodes {
		if node.AIReadiness > highAIReadinessLevel {
			highAI = append(highAI, node.Section)
		}
	}
	if len(highAI) > highAISectionsToTrigger {
		insights = append(insights, model.OptimizationInsight{
			Type:             model.InsightAIOpportunity,
			Impact:           90,
			Confidence:       88,
			Description:      "Multiple high-AI-readiness sections identified. Strategic AI implementation recommended.",
			AffectedSections: highAI,
		})
	}

	return insights
}

// organizationalHealth is the importance-weighted average of per-section
// composite health across all nodes.
func (e *Engine) organizationalHealth(nodes []model.OrganizationalNode) float64 {
	if len(nodes) == 0 {
		return 0
	}

	totalScore := 0.0
	totalWeight := 0.0
	for _, node := range nodes {
		weight := e.cfg.SectionWeight(node.Section)
		sectionHealth := node.CurrentEfficiency*0.4 +
			(100-node.RedundancyScore)*0.3 +
			node.AIReadiness*0.2 +
			(10-node.RiskLevel)*10*0.1

		totalScore += sectionHealth * weight
		totalWeight += weight
	}

	return totalScore / totalWeight
}

// roadmap buckets recommendations by priority into three sequential
// six-month phases. Low-priority recommendations stay outside the roadmap.
func (e *Engine) roadmap(recommendations []model.RealignmentRecommendation) []model.TransformationPhase {
	buckets := map[model.Priority][]model.RealignmentRecommendation{}
	for _, rec := range recommendations {
		buckets[rec.Priority] = append(buckets[rec.Priority], rec)
	}

	phases := []model.TransformationPhase{}
	plan := []struct {
		phase    int
		priority model.Priority
		name     string
		impact   string
	}{
		{1, model.PriorityCritical, "Crisis Resolution", "Stabilize operations and address critical inefficiencies"},
		{2, model.PriorityHigh, "Strategic Improvements", "Implement AI automation and eliminate major redundancies"},
		{3, model.PriorityMedium, "Optimization & Enhancement", "Fine-tune operations and maximize efficiency gains"},
	}
	for _, p := range plan {
		recs := buckets[p.priority]
		if len(recs) == 0 {
			continue
		}
		phases = append(phases, model.TransformationPhase{
			Phase:           p.phase,
			Name:            p.name,
			Duration:        6,
			Recommendations: recs,
			ExpectedImpact:  p.impact,
		})
	}

	return phases
}
