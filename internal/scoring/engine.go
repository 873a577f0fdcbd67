package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"orgrealign/internal/config"
	"orgrealign/internal/model"
)

// ErrUnknownSegment is returned when a segment has no entry in the weight or
// peer-distribution tables. Callers validate with model.ParseSegment first.
var ErrUnknownSegment = errors.New("unknown segment")

// Engine is the v2.1 scoring engine: segment-based weights, confidence
// intervals, peer benchmarks, explainability. Pure computation over injected
// read-only tables; safe for concurrent use.
type Engine struct {
	cfg *config.ScoringConfig
}

// NewEngine creates a scoring engine. A nil config selects the production
// tables.
func NewEngine(cfg *config.ScoringConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultScoringConfig()
	}
	return &Engine{cfg: cfg}
}

// Score computes the v2.1 score for a set of raw 0-4 Likert answers.
// Empty answers are a valid input and produce a defined output.
func (e *Engine) Score(answers map[string]float64, segment model.Segment) (*model.AlgoOutput, error) {
	w, ok := e.cfg.SegmentWeights[segment]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSegment, segment)
	}
	dist, ok := e.cfg.PeerDistributions[segment]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSegment, segment)
	}

	keys := sortedKeys(answers)

	// Normalize the 0-4 scale onto [0,1], preserving key order.
	normalized := make([]float64, len(keys))
	for i, key := range keys {
		normalized[i] = answers[key] / 4
	}

	factorScores := e.classifyFactors(keys, normalized)

	base := 0.0
	for _, factor := range e.cfg.Factors() {
		base += config.Weight(w, factor) * factorScores[factor]
	}

	blanks := countBlanks(answers)
	score := math.Max(0, base-float64(blanks)*e.cfg.BlankPenalty)

	ci := stdDevPop(normalized)*1.96 + float64(blanks)*e.cfg.BlankCIPenalty
	percentile := e.peerPercentile(score, dist)
	tier := e.assignTier(score, ci, percentile)

	return &model.AlgoOutput{
		Score:          score,
		Tier:           tier,
		CI:             ci,
		PeerPercentile: percentile,
		Percentile:     percentile,
		Confidence:     e.confidenceIntervals(answers, factorScores),
		Explainability: e.explain(score, w, factorScores, ci, blanks, percentile, segment),
		SectionScores:  factorScores,
	}, nil
}

// classifyFactors groups normalized answers onto the four factors by keyword
// rules. A question id matching several rules contributes to every matching
// factor. If no question matches any rule, all values are split into four
// consecutive quartiles in key order. A factor with no values scores the
// neutral default.
func (e *Engine) classifyFactors(keys []string, normalized []float64) map[string]float64 {
	values := make(map[string][]float64, len(e.cfg.FactorRules))
	matchedAny := false
	for _, rule := range e.cfg.FactorRules {
		for i, key := range keys {
			if matchesRule(key, rule) {
				values[rule.Factor] = append(values[rule.Factor], normalized[i])
				matchedAny = true
			}
		}
	}

	if !matchedAny && len(normalized) > 0 {
		factors := e.cfg.Factors()
		quarter := (len(normalized) + 3) / 4
		for i, factor := range factors {
			lo := min(i*quarter, len(normalized))
			hi := min((i+1)*quarter, len(normalized))
			if i == len(factors)-1 {
				hi = len(normalized)
			}
			values[factor] = normalized[lo:hi]
		}
	}

	scores := make(map[string]float64, 4)
	for _, factor := range e.cfg.Factors() {
		if vs := values[factor]; len(vs) > 0 {
			scores[factor] = mean(vs)
		} else {
			scores[factor] = e.cfg.NeutralFactorScore
		}
	}
	return scores
}

func matchesRule(questionID string, rule config.FactorRule) bool {
	id := strings.ToLower(questionID)
	for _, kw := range rule.Keywords {
		if strings.Contains(id, kw) {
			return true
		}
	}
	return false
}

// countBlanks counts answers left blank. A raw value of exactly 0 counts as
// blank even though 0 is a legal answer on the 0-4 scale; see
// config.ScoringConfig.BlankPenalty.
func countBlanks(answers map[string]float64) int {
	blanks := 0
	for _, v := range answers {
		if v == 0 {
			blanks++
		}
	}
	return blanks
}

// peerPercentile ranks a score against the segment's peer distribution,
// clamped to [1,99] so results never read as exactly 0th or 100th.
func (e *Engine) peerPercentile(score float64, dist model.PeerDistribution) int {
	z := (score - dist.Mean) / dist.StdDev
	percentile := int(math.Round(NormalCDF(z) * 100))
	if percentile < 1 {
		percentile = 1
	}
	if percentile > 99 {
		percentile = 99
	}
	return percentile
}

// assignTier maps the peer-adjusted score onto a tier. The confidence
// interval parameter is accepted for signature compatibility but does not
// participate in the thresholds.
func (e *Engine) assignTier(score float64, _ float64, percentile int) string {
	adjusted := score*0.7 + float64(percentile)/100*0.3
	for _, th := range e.cfg.TierThresholds {
		if adjusted >= th.Min {
			return th.Tier
		}
	}
	return model.TierEmerging
}

// confidenceIntervals computes the overall confidence interval and
// per-section score bounds from response count and consistency.
func (e *Engine) confidenceIntervals(answers map[string]float64, sectionScores map[string]float64) model.ConfidenceReport {
	if len(answers) == 0 {
		return model.ConfidenceReport{Overall: 0, Sections: map[string][2]float64{}}
	}

	keys := sortedKeys(answers)
	raw := make([]float64, len(keys))
	for i, key := range keys {
		raw[i] = answers[key]
	}

	const baseError = 0.08
	inconsistency := math.Min(1, stdDevPop(raw)/2)
	consistency := 1 + inconsistency
	sampleSize := math.Sqrt(20 / float64(len(answers)))
	overall := math.Min(0.15, baseError*sampleSize*consistency)

	sections := make(map[string][2]float64, len(sectionScores))
	for _, section := range sortedKeys(sectionScores) {
		matched := 0
		for _, key := range keys {
			if strings.Contains(key, section) {
				matched++
			}
		}
		if matched < 1 {
			matched = 1
		}
		sectionError := baseError * math.Sqrt(5/float64(matched)) * consistency
		score := sectionScores[section]
		sections[section] = [2]float64{
			math.Max(0, score-sectionError),
			math.Min(1, score+sectionError),
		}
	}

	return model.ConfidenceReport{Overall: overall, Sections: sections}
}

// explain builds the ordered human-readable breakdown. Purely descriptive;
// nothing downstream parses these strings.
func (e *Engine) explain(score float64, w model.FactorWeight, factorScores map[string]float64, ci float64, blanks, percentile int, segment model.Segment) []model.Explanation {
	labels := map[string]string{
		config.FactorSpanControl: "Span of Control",
		config.FactorCulture:     "Culture",
		config.FactorTechFit:     "Tech Fit",
		config.FactorReadiness:   "Readiness",
	}

	out := []model.Explanation{
		{Label: "Overall Score", Detail: fmt.Sprintf("%.1f%% based on weighted factors for %s segment", score*100, segment)},
	}
	for _, factor := range e.cfg.Factors() {
		out = append(out, model.Explanation{
			Label:  labels[factor],
			Detail: fmt.Sprintf("Weight: %g, Score: %.1f%%", config.Weight(w, factor), factorScores[factor]*100),
		})
	}
	out = append(out,
		model.Explanation{Label: "Confidence", Detail: fmt.Sprintf("±%.1f%% (%d missing answers)", ci*100, blanks)},
		model.Explanation{Label: "Peer Comparison", Detail: fmt.Sprintf("%dth percentile in %s segment", percentile, segment)},
	)
	return out
}
