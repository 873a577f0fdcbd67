package scoring

import (
	"fmt"
	"math"
	"sort"

	"orgrealign/internal/model"
)

// ScoreAssessment is the legacy scoring path kept for older report code.
// It groups responses by their section label instead of the four-factor
// classification and maps the result onto the original three-level tier
// names. Empty input yields a fully zeroed result, never an error.
func (e *Engine) ScoreAssessment(responses []model.AssessmentResponse, segment model.Segment) *model.ScoreResult {
	if len(responses) == 0 {
		return &model.ScoreResult{
			TotalScore:          0,
			SectionScores:       map[string]float64{},
			ConfidenceIntervals: map[string][2]float64{},
			PeerBenchmark:       map[string]float64{},
			Explainability:      []model.Explanation{},
			Score:               0,
			Tier:                model.LegacyTierStrategic,
			CI:                  0,
			PeerPercentile:      0,
			Percentile:          0,
			Confidence:          model.ConfidenceReport{Overall: 0, Sections: map[string][2]float64{}},
		}
	}

	answers := make(map[string]float64, len(responses))
	for _, r := range responses {
		answers[r.QuestionID] = r.Value
	}

	sectionValues := make(map[string][]float64)
	for _, r := range responses {
		sectionValues[r.Section] = append(sectionValues[r.Section], r.Value/4)
	}
	sections := make([]string, 0, len(sectionValues))
	for section := range sectionValues {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	sectionScores := make(map[string]float64, len(sections))
	confidenceIntervals := make(map[string][2]float64, len(sections))
	peerBenchmark := make(map[string]float64, len(sections))
	explainability := make([]model.Explanation, 0, len(sections))
	totalScore := 0.0
	totalWeight := 0.0

	for _, section := range sections {
		values := sectionValues[section]
		avg := mean(values)
		score := avg // unit weight per section in the legacy path
		sectionScores[section] = score
		totalScore += score
		totalWeight++

		std := stdDevPop(values)
		confidenceIntervals[section] = [2]float64{avg - 2*std, avg + 2*std}

		// Placeholder benchmark retained from the legacy report format.
		peerBenchmark[section] = 0.6

		explainability = append(explainability, model.Explanation{
			Label:  section,
			Detail: fmt.Sprintf("Score: %.1f%% for %s", score*100, section),
		})
	}

	normalized := make([]float64, 0, len(answers))
	for _, key := range sortedKeys(answers) {
		normalized = append(normalized, answers[key]/4)
	}
	blanks := countBlanks(answers)
	ci := stdDevPop(normalized)*1.96 + float64(blanks)*e.cfg.BlankCIPenalty

	finalScore := 0.0
	if totalWeight > 0 {
		finalScore = math.Max(0, totalScore/totalWeight-float64(blanks)*e.cfg.BlankPenalty)
	}

	var tier string
	switch {
	case finalScore >= 0.75:
		tier = model.LegacyTierImplementation
	case finalScore >= 0.50:
		tier = model.LegacyTierTransformation
	default:
		tier = model.LegacyTierStrategic
	}

	percentile := 32
	if finalScore > 0.6 {
		percentile = 68
	}

	return &model.ScoreResult{
		TotalScore:          finalScore,
		SectionScores:       sectionScores,
		ConfidenceIntervals: confidenceIntervals,
		PeerBenchmark:       peerBenchmark,
		Explainability:      explainability,
		Score:               finalScore,
		Tier:                tier,
		CI:                  ci,
		PeerPercentile:      percentile,
		Percentile:          percentile,
		Confidence:          model.ConfidenceReport{Overall: ci, Sections: confidenceIntervals},
	}
}
