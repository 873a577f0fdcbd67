package model

import (
	"fmt"
	"strings"
	"time"
)

// Segment is the organizational category an assessment is scored against.
// It selects the factor weight table and the peer distribution used for
// percentile lookup.
type Segment string

const (
	SegmentHigherEd   Segment = "HIGHER_ED"
	SegmentNonProfit  Segment = "NON_PROFIT"
	SegmentHealthcare Segment = "HEALTHCARE"
	SegmentGovernment Segment = "GOVERNMENT"
	SegmentForProfit  Segment = "FOR_PROFIT"
)

// Segments returns the closed set of valid segments.
func Segments() []Segment {
	return []Segment{
		SegmentHigherEd,
		SegmentNonProfit,
		SegmentHealthcare,
		SegmentGovernment,
		SegmentForProfit,
	}
}

// ParseSegment validates a segment string against the closed enumeration.
func ParseSegment(s string) (Segment, error) {
	seg := Segment(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Segments() {
		if seg == known {
			return seg, nil
		}
	}
	return "", fmt.Errorf("unknown segment %q", s)
}

// FactorWeight is the per-segment weighting of the four scored factors.
// Weights sum to 1.0 for every segment.
type FactorWeight struct {
	SpanControl float64 `json:"spanControl"`
	Culture     float64 `json:"culture"`
	TechFit     float64 `json:"techFit"`
	Readiness   float64 `json:"readiness"`
}

// PeerDistribution models peer scores in a segment as a normal distribution.
type PeerDistribution struct {
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"stdDev"`
	SampleSize int     `json:"sampleSize"`
}

// AssessmentResponse is one answered question. Value is a 0-4 normalized
// Likert answer for the scoring engine and a 1-5 raw Likert answer for the
// realignment analyzer; the engines do not reject out-of-range values.
type AssessmentResponse struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Value      float64  `json:"value" bson:"value"`
	Section    string   `json:"section" bson:"section"`
	Tags       []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// HasTag reports whether the response carries the given capability tag.
func (r *AssessmentResponse) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Assessment statuses
const (
	StatusSubmitted = "submitted"
	StatusScored    = "scored"
	StatusAnalyzed  = "analyzed"
)

// Assessment is one submitted organizational assessment.
type Assessment struct {
	ID           string               `json:"id" bson:"_id,omitempty"`
	Organization string               `json:"organization" bson:"organization"`
	Segment      Segment              `json:"segment" bson:"segment"`
	Responses    []AssessmentResponse `json:"responses" bson:"responses"`
	Status       string               `json:"status" bson:"status"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Answers flattens responses into the questionId -> value map consumed by
// the scoring engine. Later duplicates of a question id win, matching how
// the submission API overwrites re-answered questions.
func (a *Assessment) Answers() map[string]float64 {
	answers := make(map[string]float64, len(a.Responses))
	for _, r := range a.Responses {
		answers[r.QuestionID] = r.Value
	}
	return answers
}
