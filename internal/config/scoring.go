package config

import "orgrealign/internal/model"

// Factor names used as sectionScores keys in scoring output.
const (
	FactorSpanControl = "spanControl"
	FactorCulture     = "culture"
	FactorTechFit     = "techFit"
	FactorReadiness   = "readiness"
)

// FactorRule classifies a question onto a factor by case-insensitive
// substring match of its id against Keywords.
type FactorRule struct {
	Factor   string
	Keywords []string
}

// TierThreshold maps an inclusive lower bound on the adjusted score to a
// tier name. Thresholds are checked in declaration order, highest first.
type TierThreshold struct {
	Min  float64
	Tier string
}

// ScoringConfig is the read-only table set driving the v2.1 scoring engine.
// Built once at startup and injected; never mutated afterwards.
type ScoringConfig struct {
	SegmentWeights    map[model.Segment]model.FactorWeight
	PeerDistributions map[model.Segment]model.PeerDistribution
	FactorRules       []FactorRule
	TierThresholds    []TierThreshold

	// BlankPenalty is subtracted from the base score per blank answer.
	// A raw value of exactly 0 counts as blank even though 0 is a legal
	// Likert answer on the 0-4 scale, so legitimate "strongly disagree"
	// answers are penalized identically to skipped questions. Kept as-is
	// for output parity with the production scorer.
	BlankPenalty float64

	// BlankCIPenalty widens the confidence interval per blank answer.
	BlankCIPenalty float64

	// NeutralFactorScore is assigned to a factor that received no answers.
	NeutralFactorScore float64
}

// DefaultScoringConfig returns the v2.1 production tables.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		SegmentWeights: map[model.Segment]model.FactorWeight{
			model.SegmentHigherEd:   {SpanControl: 0.25, Culture: 0.25, TechFit: 0.20, Readiness: 0.30},
			model.SegmentNonProfit:  {SpanControl: 0.20, Culture: 0.30, TechFit: 0.20, Readiness: 0.30},
			model.SegmentHealthcare: {SpanControl: 0.30, Culture: 0.20, TechFit: 0.25, Readiness: 0.25},
			model.SegmentGovernment: {SpanControl: 0.35, Culture: 0.15, TechFit: 0.20, Readiness: 0.30},
			model.SegmentForProfit:  {SpanControl: 0.30, Culture: 0.20, TechFit: 0.30, Readiness: 0.20},
		},
		PeerDistributions: map[model.Segment]model.PeerDistribution{
			model.SegmentHigherEd:   {Mean: 0.58, StdDev: 0.18, SampleSize: 487},
			model.SegmentNonProfit:  {Mean: 0.54, StdDev: 0.21, SampleSize: 203},
			model.SegmentHealthcare: {Mean: 0.62, StdDev: 0.16, SampleSize: 341},
			model.SegmentGovernment: {Mean: 0.51, StdDev: 0.19, SampleSize: 156},
			model.SegmentForProfit:  {Mean: 0.64, StdDev: 0.17, SampleSize: 672},
		},
		FactorRules: []FactorRule{
			{Factor: FactorSpanControl, Keywords: []string{"span", "control", "oversight", "governance"}},
			{Factor: FactorCulture, Keywords: []string{"culture", "team", "collab", "comm"}},
			{Factor: FactorTechFit, Keywords: []string{"tech", "digital", "system", "tool"}},
			{Factor: FactorReadiness, Keywords: []string{"ready", "change", "adapt", "transform"}},
		},
		TierThresholds: []TierThreshold{
			{Min: 0.80, Tier: model.TierTransforming},
			{Min: 0.65, Tier: model.TierGrowing},
			{Min: 0.50, Tier: model.TierDeveloping},
			{Min: 0.35, Tier: model.TierEstablishing},
			{Min: 0, Tier: model.TierEmerging},
		},
		BlankPenalty:       0.05,
		BlankCIPenalty:     0.02,
		NeutralFactorScore: 0.5,
	}
}

// Factors returns the factor names in scoring order.
func (c *ScoringConfig) Factors() []string {
	return []string{FactorSpanControl, FactorCulture, FactorTechFit, FactorReadiness}
}

// Weight returns the weight of a named factor for the given table.
func Weight(w model.FactorWeight, factor string) float64 {
	switch factor {
	case FactorSpanControl:
		return w.SpanControl
	case FactorCulture:
		return w.Culture
	case FactorTechFit:
		return w.TechFit
	case FactorReadiness:
		return w.Readiness
	}
	return 0
}
