// Package realign implements the organizational realignment analyzer:
// entropy-based efficiency scoring per section, redundancy detection,
// AI readiness with human-only constraints, risk-adjusted prioritization,
// and a phased transformation roadmap.
package realign

import (
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"orgrealign/internal/config"
	"orgrealign/internal/model"
)

// Engine analyzes tagged assessment responses into an organizational graph
// of per-section metrics and derived recommendations. Pure computation over
// injected read-only tables; safe for concurrent use.
type Engine struct {
	cfg *config.RealignConfig
}

// NewEngine creates an analyzer. A nil config selects the production tables.
func NewEngine(cfg *config.RealignConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultRealignConfig()
	}
	return &Engine{cfg: cfg}
}

// Analyze processes assessment responses into recommendations, insights,
// composite indices and a transformation roadmap. Deterministic: sections
// are processed in sorted-name order. Empty input yields an empty result.
func (e *Engine) Analyze(responses []model.AssessmentResponse) *model.AnalysisResult {
	grouped := groupBySection(responses)

	sections := make([]string, 0, len(grouped))
	for section := range grouped {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	nodes := make([]model.OrganizationalNode, len(sections))
	byName := make(map[string]*model.OrganizationalNode, len(sections))
	for i, section := range sections {
		nodes[i] = e.buildNode(section, grouped[section])
		byName[section] = &nodes[i]
	}

	recommendations := e.generateRecommendations(sections, byName)

	result := &model.AnalysisResult{
		Recommendations:       recommendations,
		Insights:              e.generateInsights(sections, nodes),
		OrganizationalHealth:  e.organizationalHealth(nodes),
		AIReadinessScore:      meanOf(nodes, func(n model.OrganizationalNode) float64 { return n.AIReadiness }),
		RedundancyIndex:       meanOf(nodes, func(n model.OrganizationalNode) float64 { return n.RedundancyScore }),
		TransformationRoadmap: e.roadmap(recommendations),
		Sections:              sections,
		Nodes:                 nodes,
		SectionCorrelations:   correlationMatrix(nodes),
	}
	return result
}

func groupBySection(responses []model.AssessmentResponse) map[string][]model.AssessmentResponse {
	grouped := make(map[string][]model.AssessmentResponse)
	for _, r := range responses {
		grouped[r.Section] = append(grouped[r.Section], r)
	}
	return grouped
}

// buildNode derives the full metric set for one section.
func (e *Engine) buildNode(section string, responses []model.AssessmentResponse) model.OrganizationalNode {
	efficiency := e.sectionEfficiency(responses)
	redundancy := e.redundancyScore(responses)
	aiReadiness := e.sectionAIReadiness(responses)

	return model.OrganizationalNode{
		ID:                      section,
		Section:                 section,
		CurrentEfficiency:       efficiency,
		RedundancyScore:         redundancy,
		AIReadiness:             aiReadiness,
		Dependencies:            e.cfg.Dependencies(section),
		RiskLevel:               e.riskLevel(responses),
		TransformationPotential: transformationPotential(efficiency, aiReadiness, redundancy),
	}
}

// sectionEfficiency scores a section by mean response level discounted by
// the Shannon entropy of its value distribution: a section is efficient only
// when scores are both high and consistent. Entropy is normalized by
// log2(5), the maximum for a 5-point scale.
func (e *Engine) sectionEfficiency(responses []model.AssessmentResponse) float64 {
	values := responseValues(responses)
	m := meanValues(values)

	normalizedEntropy := entropy(values) / math.Log2(5)
	efficiency := (m / 5) * (1 - normalizedEntropy) * 100

	return clamp(efficiency, 0, 100)
}

// entropy computes Shannon entropy (base 2) over the observed distinct
// response values.
func entropy(values []float64) float64 {
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	total := float64(len(values))
	var h float64
	for _, count := range counts {
		p := float64(count) / total
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// redundancyScore averages responses to redundancy-probing questions onto a
// 0-100 scale. Higher means more redundancy, which is worse. Sections with
// no redundancy-probing questions score 0.
func (e *Engine) redundancyScore(responses []model.AssessmentResponse) float64 {
	var matched []float64
	for _, r := range responses {
		for _, kw := range e.cfg.RedundancyKeywords {
			if strings.Contains(r.QuestionID, kw) {
				matched = append(matched, r.Value)
				break
			}
		}
	}
	if len(matched) == 0 {
		return 0
	}
	return (meanValues(matched) / 5) * 100
}

// sectionAIReadiness scores AI-tagged responses minus a constraint derived
// from human-only-tagged responses. Sections with no AI-tagged responses
// score 0 regardless of the constraint.
func (e *Engine) sectionAIReadiness(responses []model.AssessmentResponse) float64 {
	var ai, ho []float64
	for i := range responses {
		if responses[i].HasTag(e.cfg.AITag) {
			ai = append(ai, responses[i].Value)
		}
		if responses[i].HasTag(e.cfg.HumanOnlyTag) {
			ho = append(ho, responses[i].Value)
		}
	}
	if len(ai) == 0 {
		return 0
	}

	aiScore := meanValues(ai)
	hoConstraint := 0.0
	if len(ho) > 0 {
		inverted := make([]float64, len(ho))
		for i, v := range ho {
			inverted[i] = 6 - v
		}
		hoConstraint = meanValues(inverted)
	}

	return math.Max(0, (aiScore/5)*100-hoConstraint*5)
}

// riskLevel combines risk from low mean scores with risk from response
// variability, capped at 10.
func (e *Engine) riskLevel(responses []model.AssessmentResponse) float64 {
	values := responseValues(responses)
	m := meanValues(values)

	variance, err := stats.PopulationVariance(values)
	if err != nil {
		variance = 0
	}

	riskFromLowScores := (5 - m) * 2
	riskFromVariability := math.Sqrt(variance)

	return math.Min(10, riskFromLowScores+riskFromVariability)
}

// transformationPotential is highest for sections that are simultaneously
// inefficient, AI-ready and redundant.
func transformationPotential(efficiency, aiReadiness, redundancy float64) float64 {
	potential := (100-efficiency)*0.4 + aiReadiness*0.4 + redundancy*0.2
	return clamp(potential, 0, 100)
}

// correlationMatrix computes pairwise maturity correlations between section
// nodes, in node order. The diagonal stays 0.
func correlationMatrix(nodes []model.OrganizationalNode) [][]float64 {
	n := len(nodes)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i == j {
				continue
			}
			matrix[i][j] = nodeCorrelation(nodes[i], nodes[j])
		}
	}
	return matrix
}

func nodeCorrelation(a, b model.OrganizationalNode) float64 {
	factors := []float64{
		a.AIReadiness - b.AIReadiness,
		a.CurrentEfficiency - b.CurrentEfficiency,
		a.TransformationPotential - b.TransformationPotential,
	}
	sum := 0.0
	for _, f := range factors {
		sum += math.Abs(f)
	}
	return sum / float64(len(factors)) / 100
}

func responseValues(responses []model.AssessmentResponse) []float64 {
	values := make([]float64, len(responses))
	for i := range responses {
		values[i] = responses[i].Value
	}
	return values
}

func meanValues(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func meanOf(nodes []model.OrganizationalNode, metric func(model.OrganizationalNode) float64) float64 {
	if len(nodes) == 0 {
		return 0
	}
	sum := 0.0
	for _, n := range nodes {
		sum += metric(n)
	}
	return sum / float64(len(nodes))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
