package model

// Five-level tiers assigned by the v2.1 scoring engine, ordered lowest to
// highest.
const (
	TierEmerging     = "EMERGING"
	TierEstablishing = "ESTABLISHING"
	TierDeveloping   = "DEVELOPING"
	TierGrowing      = "GROWING"
	TierTransforming = "TRANSFORMING"
)

// Legacy three-level tier names used by older report code paths.
const (
	LegacyTierStrategic      = "Strategic Assessment"
	LegacyTierTransformation = "Transformation Planning"
	LegacyTierImplementation = "Implementation Support"
)

// TierRank returns the ordering position of a v2.1 tier (0 = lowest).
// Unknown tiers rank below EMERGING.
func TierRank(tier string) int {
	switch tier {
	case TierEmerging:
		return 1
	case TierEstablishing:
		return 2
	case TierDeveloping:
		return 3
	case TierGrowing:
		return 4
	case TierTransforming:
		return 5
	}
	return 0
}

// Explanation is one labeled line of the human-readable scoring breakdown.
// Kept as an ordered list rather than a map so report templates render lines
// in a stable order.
type Explanation struct {
	Label  string `json:"label" bson:"label"`
	Detail string `json:"detail" bson:"detail"`
}

// ConfidenceReport holds the overall confidence interval plus per-section
// score bounds.
type ConfidenceReport struct {
	Overall  float64               `json:"overall" bson:"overall"`
	Sections map[string][2]float64 `json:"sections" bson:"sections"`
}

// AlgoOutput is the result of one v2.1 scoring engine invocation.
// PeerPercentile and Percentile carry the same value; both names are read by
// downstream report templates.
type AlgoOutput struct {
	Score          float64            `json:"score" bson:"score"`
	Tier           string             `json:"tier" bson:"tier"`
	CI             float64            `json:"ci" bson:"ci"`
	PeerPercentile int                `json:"peerPercentile" bson:"peerPercentile"`
	Percentile     int                `json:"percentile" bson:"percentile"`
	Confidence     ConfidenceReport   `json:"confidence" bson:"confidence"`
	Explainability []Explanation      `json:"explainability" bson:"explainability"`
	SectionScores  map[string]float64 `json:"sectionScores" bson:"sectionScores"`
}

// ScoreResult is the legacy-shaped scoring output. TotalScore aliases Score
// for backward compatibility with older report templates.
type ScoreResult struct {
	TotalScore          float64               `json:"totalScore" bson:"totalScore"`
	SectionScores       map[string]float64    `json:"sectionScores" bson:"sectionScores"`
	ConfidenceIntervals map[string][2]float64 `json:"confidenceIntervals" bson:"confidenceIntervals"`
	PeerBenchmark       map[string]float64    `json:"peerBenchmark" bson:"peerBenchmark"`
	Explainability      []Explanation         `json:"explainability" bson:"explainability"`
	Score               float64               `json:"score" bson:"score"`
	Tier                string                `json:"tier" bson:"tier"`
	CI                  float64               `json:"ci" bson:"ci"`
	PeerPercentile      int                   `json:"peerPercentile" bson:"peerPercentile"`
	Percentile          int                   `json:"percentile" bson:"percentile"`
	Confidence          ConfidenceReport      `json:"confidence" bson:"confidence"`
}
