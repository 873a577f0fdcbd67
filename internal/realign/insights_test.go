package realign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgrealign/internal/model"
)

func aiSection(name string) []model.AssessmentResponse {
	return []model.AssessmentResponse{
		{QuestionID: name + "_q1", Value: 5, Section: name, Tags: []string{"AI"}},
		{QuestionID: name + "_q2", Value: 5, Section: name, Tags: []string{"AI"}},
	}
}

func TestEfficiencyInsight(t *testing.T) {
	engine := NewEngine(nil)

	// Fully scattered answers zero out efficiency organization-wide.
	input := append(responses("A", 1, 2, 3, 4, 5), responses("B", 1, 2, 3, 4, 5)...)
	result := engine.Analyze(input)

	require.Len(t, result.Insights, 1)
	insight := result.Insights[0]
	assert.Equal(t, model.InsightEfficiency, insight.Type)
	assert.Equal(t, 85, insight.Impact)
	assert.Equal(t, 92, insight.Confidence)
	assert.Equal(t, []string{"A", "B"}, insight.AffectedSections)
}

func TestNoEfficiencyInsightWhenHealthy(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.Analyze(responses("A", 5, 5, 5))
	assert.Empty(t, result.Insights)
}

func TestAIOpportunityInsightNeedsFourSections(t *testing.T) {
	engine := NewEngine(nil)

	three := append(aiSection("A"), append(aiSection("B"), aiSection("C")...)...)
	result := engine.Analyze(three)
	for _, insight := range result.Insights {
		assert.NotEqual(t, model.InsightAIOpportunity, insight.Type)
	}

	four := append(three, aiSection("D")...)
	result = engine.Analyze(four)

	var found *model.OptimizationInsight
	for i := range result.Insights {
		if result.Insights[i].Type == model.InsightAIOpportunity {
			found = &result.Insights[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 90, found.Impact)
	assert.Equal(t, 88, found.Confidence)
	assert.Equal(t, []string{"A", "B", "C", "D"}, found.AffectedSections)
}

func TestOrganizationalHealth(t *testing.T) {
	engine := NewEngine(nil)

	// Perfect section: full efficiency, full AI readiness, no redundancy,
	// no risk.
	result := engine.Analyze(aiSection("A"))
	assert.InDelta(t, 100, result.OrganizationalHealth, 1e-9)

	// Without the AI readiness contribution health tops out at 80.
	result = engine.Analyze(responses("A", 5, 5))
	assert.InDelta(t, 80, result.OrganizationalHealth, 1e-9)
}

func TestRoadmapPhases(t *testing.T) {
	engine := NewEngine(nil)

	input := append(criticalSection(), automationSection()...)
	result := engine.Analyze(input)

	require.Len(t, result.TransformationRoadmap, 3)
	assert.Equal(t, 1, result.TransformationRoadmap[0].Phase)
	assert.Equal(t, "Crisis Resolution", result.TransformationRoadmap[0].Name)
	assert.Equal(t, 2, result.TransformationRoadmap[1].Phase)
	assert.Equal(t, "Strategic Improvements", result.TransformationRoadmap[1].Name)
	assert.Equal(t, 3, result.TransformationRoadmap[2].Phase)
	assert.Equal(t, "Optimization & Enhancement", result.TransformationRoadmap[2].Name)

	for _, phase := range result.TransformationRoadmap {
		assert.Equal(t, 6, phase.Duration)
		assert.NotEmpty(t, phase.Recommendations)
	}
}

func TestRoadmapKeepsFixedPhaseNumbers(t *testing.T) {
	engine := NewEngine(nil)

	// Only a consolidation (medium) recommendation: a default-weight
	// section with pure redundancy findings.
	input := []model.AssessmentResponse{
		{QuestionID: "Redundant_tools", Value: 5, Section: "Misc"},
		{QuestionID: "misc_q1", Value: 5, Section: "Misc"},
	}
	result := engine.Analyze(input)

	require.Len(t, result.TransformationRoadmap, 1)
	assert.Equal(t, 3, result.TransformationRoadmap[0].Phase)
	assert.Equal(t, "Optimization & Enhancement", result.TransformationRoadmap[0].Name)
}

func TestRoadmapCoversAllNonLowRecommendations(t *testing.T) {
	engine := NewEngine(nil)

	input := append(criticalSection(), automationSection()...)
	result := engine.Analyze(input)

	total := 0
	for _, phase := range result.TransformationRoadmap {
		total += len(phase.Recommendations)
	}
	assert.Equal(t, len(result.Recommendations), total)
}
