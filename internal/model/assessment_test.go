package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSegment(t *testing.T) {
	tests := []struct {
		in      string
		want    Segment
		wantErr bool
	}{
		{"HIGHER_ED", SegmentHigherEd, false},
		{"higher_ed", SegmentHigherEd, false},
		{"  For_Profit  ", SegmentForProfit, false},
		{"GOVERNMENT", SegmentGovernment, false},
		{"K12", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSegment(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAnswersLastDuplicateWins(t *testing.T) {
	a := &Assessment{
		Responses: []AssessmentResponse{
			{QuestionID: "q1", Value: 1},
			{QuestionID: "q2", Value: 2},
			{QuestionID: "q1", Value: 4},
		},
	}

	answers := a.Answers()
	assert.Len(t, answers, 2)
	assert.Equal(t, 4.0, answers["q1"])
	assert.Equal(t, 2.0, answers["q2"])
}

func TestHasTag(t *testing.T) {
	r := &AssessmentResponse{Tags: []string{"AI", "HO"}}
	assert.True(t, r.HasTag("AI"))
	assert.True(t, r.HasTag("HO"))
	assert.False(t, r.HasTag("ai"))
	assert.False(t, (&AssessmentResponse{}).HasTag("AI"))
}

func TestTierRankOrdering(t *testing.T) {
	tiers := []string{TierEmerging, TierEstablishing, TierDeveloping, TierGrowing, TierTransforming}
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, TierRank(tiers[i]), TierRank(tiers[i-1]))
	}
	assert.Zero(t, TierRank("bogus"))
}
