package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgrealign/internal/model"
	"orgrealign/internal/realign"
	"orgrealign/internal/scoring"
)

type fakeRepo struct {
	mu          sync.Mutex
	assessments map[string]*model.Assessment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{assessments: map[string]*model.Assessment{}}
}

func (r *fakeRepo) Create(_ context.Context, a *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assessments[a.ID] = a
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.assessments[id], nil
}

func (r *fakeRepo) ListBySegment(_ context.Context, segment model.Segment) ([]*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Assessment
	for _, a := range r.assessments {
		if a.Segment == segment {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.assessments[id]; ok {
		a.Status = status
	}
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.assessments, id)
	return nil
}

type fakeCache struct {
	mu       sync.Mutex
	scores   map[string]*model.AlgoOutput
	analyses map[string]*model.AnalysisResult
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		scores:   map[string]*model.AlgoOutput{},
		analyses: map[string]*model.AnalysisResult{},
	}
}

func (c *fakeCache) GetScore(_ context.Context, id string) (*model.AlgoOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scores[id], nil
}

func (c *fakeCache) SetScore(_ context.Context, id string, output *model.AlgoOutput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scores[id] = output
	return nil
}

func (c *fakeCache) GetAnalysis(_ context.Context, id string) (*model.AnalysisResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analyses[id], nil
}

func (c *fakeCache) SetAnalysis(_ context.Context, id string, result *model.AnalysisResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyses[id] = result
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.scores, id)
	delete(c.analyses, id)
	return nil
}

type broadcastCall struct {
	assessmentID string
	msgType      string
}

type fakeBroadcaster struct {
	mu    sync.Mutex
	calls []broadcastCall
}

func (b *fakeBroadcaster) BroadcastToDashboard(assessmentID string, msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, broadcastCall{assessmentID, msgType})
}

func newAssessmentService() (*AssessmentService, *fakeRepo, *fakeCache, *fakeBroadcaster) {
	repo := newFakeRepo()
	resultCache := newFakeCache()
	broadcaster := &fakeBroadcaster{}
	svc := NewAssessmentService(repo, resultCache, scoring.NewEngine(nil))
	svc.SetBroadcaster(broadcaster)
	return svc, repo, resultCache, broadcaster
}

func submitFixture(t *testing.T, svc *AssessmentService) *model.Assessment {
	t.Helper()
	assessment, err := svc.Submit(context.Background(), &SubmitAssessmentRequest{
		Organization: "Test University",
		Segment:      "HIGHER_ED",
		Responses: []model.AssessmentResponse{
			{QuestionID: "span_q1", Value: 3, Section: "Governance & Leadership"},
			{QuestionID: "culture_q1", Value: 4, Section: "Human Resources & Talent Management"},
			{QuestionID: "tech_q1", Value: 2, Section: "Information Technology & Digital Learning"},
			{QuestionID: "ready_q1", Value: 3, Section: "Strategic Planning & Performance Management"},
		},
	})
	require.NoError(t, err)
	return assessment
}

func TestSubmit(t *testing.T) {
	svc, repo, _, _ := newAssessmentService()

	assessment := submitFixture(t, svc)

	assert.NotEmpty(t, assessment.ID)
	assert.Equal(t, model.SegmentHigherEd, assessment.Segment)
	assert.Equal(t, model.StatusSubmitted, assessment.Status)

	stored, err := repo.GetByID(context.Background(), assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Test University", stored.Organization)
}

func TestSubmitRejectsUnknownSegment(t *testing.T) {
	svc, _, _, _ := newAssessmentService()

	_, err := svc.Submit(context.Background(), &SubmitAssessmentRequest{
		Organization: "Test",
		Segment:      "K12",
	})
	require.Error(t, err)
}

func TestGetNotFound(t *testing.T) {
	svc, _, _, _ := newAssessmentService()

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestScore(t *testing.T) {
	svc, repo, resultCache, broadcaster := newAssessmentService()
	assessment := submitFixture(t, svc)

	output, err := svc.Score(context.Background(), assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Greater(t, output.Score, 0.0)

	stored, _ := repo.GetByID(context.Background(), assessment.ID)
	assert.Equal(t, model.StatusScored, stored.Status)

	cached, _ := resultCache.GetScore(context.Background(), assessment.ID)
	assert.Equal(t, output, cached)

	require.Len(t, broadcaster.calls, 1)
	assert.Equal(t, broadcastCall{assessment.ID, "score_completed"}, broadcaster.calls[0])
}

func TestScoreReturnsCachedResult(t *testing.T) {
	svc, _, _, broadcaster := newAssessmentService()
	assessment := submitFixture(t, svc)

	first, err := svc.Score(context.Background(), assessment.ID)
	require.NoError(t, err)
	second, err := svc.Score(context.Background(), assessment.ID)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, broadcaster.calls, 1, "cache hits do not re-broadcast")
}

func TestScoreNotFound(t *testing.T) {
	svc, _, _, _ := newAssessmentService()

	_, err := svc.Score(context.Background(), "missing")
	require.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestGetScoreBeforeScoring(t *testing.T) {
	svc, _, _, _ := newAssessmentService()
	assessment := submitFixture(t, svc)

	output, err := svc.GetScore(context.Background(), assessment.ID)
	require.NoError(t, err)
	assert.Nil(t, output)
}

func TestScoreLegacy(t *testing.T) {
	svc, _, _, _ := newAssessmentService()
	assessment := submitFixture(t, svc)

	result, err := svc.ScoreLegacy(context.Background(), assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.SectionScores, 4)
	assert.Equal(t, result.TotalScore, result.Score)
}

func TestListBySegment(t *testing.T) {
	svc, _, _, _ := newAssessmentService()
	submitFixture(t, svc)
	submitFixture(t, svc)

	list, err := svc.ListBySegment(context.Background(), "HIGHER_ED")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := svc.ListBySegment(context.Background(), "GOVERNMENT")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.ListBySegment(context.Background(), "K12")
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	svc, repo, resultCache, _ := newAssessmentService()
	assessment := submitFixture(t, svc)

	_, err := svc.Score(context.Background(), assessment.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), assessment.ID))

	stored, _ := repo.GetByID(context.Background(), assessment.ID)
	assert.Nil(t, stored)
	cached, _ := resultCache.GetScore(context.Background(), assessment.ID)
	assert.Nil(t, cached)

	require.ErrorIs(t, svc.Delete(context.Background(), assessment.ID), ErrAssessmentNotFound)
}

func TestAnalyze(t *testing.T) {
	repo := newFakeRepo()
	resultCache := newFakeCache()
	broadcaster := &fakeBroadcaster{}

	assessmentSvc := NewAssessmentService(repo, resultCache, scoring.NewEngine(nil))
	analysisSvc := NewAnalysisService(repo, resultCache, realign.NewEngine(nil))
	analysisSvc.SetBroadcaster(broadcaster)

	assessment := submitFixture(t, assessmentSvc)

	result, err := analysisSvc.Analyze(context.Background(), assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Sections, 4)

	stored, _ := repo.GetByID(context.Background(), assessment.ID)
	assert.Equal(t, model.StatusAnalyzed, stored.Status)

	cached, _ := resultCache.GetAnalysis(context.Background(), assessment.ID)
	assert.Equal(t, result, cached)

	require.Len(t, broadcaster.calls, 1)
	assert.Equal(t, broadcastCall{assessment.ID, "analysis_completed"}, broadcaster.calls[0])

	again, err := analysisSvc.Analyze(context.Background(), assessment.ID)
	require.NoError(t, err)
	assert.Same(t, result, again)
}

func TestAnalyzeNotFound(t *testing.T) {
	analysisSvc := NewAnalysisService(newFakeRepo(), newFakeCache(), realign.NewEngine(nil))

	_, err := analysisSvc.Analyze(context.Background(), "missing")
	require.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestGetAnalysisBeforeAnalyzing(t *testing.T) {
	analysisSvc := NewAnalysisService(newFakeRepo(), newFakeCache(), realign.NewEngine(nil))

	result, err := analysisSvc.GetAnalysis(context.Background(), "whatever")
	require.NoError(t, err)
	assert.Nil(t, result)
}
