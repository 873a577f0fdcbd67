package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"orgrealign/internal/cache"
	"orgrealign/internal/model"
	"orgrealign/internal/repository"
	"orgrealign/internal/scoring"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrNoResponses        = errors.New("assessment has no responses")
)

// SubmitAssessmentRequest is the input for a new assessment submission.
type SubmitAssessmentRequest struct {
	Organization string                     `json:"organization"`
	Segment      string                     `json:"segment"`
	Responses    []model.AssessmentResponse `json:"responses"`
}

// AssessmentService manages the assessment lifecycle: submission, scoring
// and retrieval. All numeric work is delegated to the scoring engine; this
// layer owns validation, persistence and caching.
type AssessmentService struct {
	repo        repository.AssessmentRepo
	resultCache cache.ResultCache
	engine      *scoring.Engine
	broadcaster Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(repo repository.AssessmentRepo, resultCache cache.ResultCache, engine *scoring.Engine) *AssessmentService {
	return &AssessmentService{
		repo:        repo,
		resultCache: resultCache,
		engine:      engine,
	}
}

// SetBroadcaster injects the WebSocket broadcaster
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit validates and stores a new assessment. The segment must be one of
// the closed enumeration; response values are accepted as-is (the engines
// are defined for out-of-range values and the question banks own validation).
func (s *AssessmentService) Submit(ctx context.Context, req *SubmitAssessmentRequest) (*model.Assessment, error) {
	segment, err := model.ParseSegment(req.Segment)
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		ID:           uuid.New().String(),
		Organization: req.Organization,
		Segment:      segment,
		Responses:    req.Responses,
		Status:       model.StatusSubmitted,
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}

	return assessment, nil
}

// Get fetches an assessment by id.
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// ListBySegment returns all assessments for a peer segment, used by the
// admin dashboard to compare organizations against their cohort.
func (s *AssessmentService) ListBySegment(ctx context.Context, segment string) ([]*model.Assessment, error) {
	seg, err := model.ParseSegment(segment)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBySegment(ctx, seg)
}

// Delete removes an assessment and drops any cached results for it.
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.resultCache.Invalidate(ctx, id); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

// Score runs the v2.1 scoring engine for an assessment, caching the result.
// Re-scoring an already scored assessment returns the cached output.
func (s *AssessmentService) Score(ctx context.Context, id string) (*model.AlgoOutput, error) {
	if cached, err := s.resultCache.GetScore(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	assessment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	output, err := s.engine.Score(assessment.Answers(), assessment.Segment)
	if err != nil {
		return nil, err
	}

	if err := s.resultCache.SetScore(ctx, id, output); err != nil {
		return nil, fmt.Errorf("cache score: %w", err)
	}
	if err := s.repo.UpdateStatus(ctx, id, model.StatusScored); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToDashboard(id, "score_completed", output)
	}

	return output, nil
}

// GetScore returns the cached score for an assessment, or nil if it has not
// been scored yet.
func (s *AssessmentService) GetScore(ctx context.Context, id string) (*model.AlgoOutput, error) {
	return s.resultCache.GetScore(ctx, id)
}

// ScoreLegacy runs the legacy section-grouped scorer for older report
// templates. Not cached: legacy reports are generated rarely.
func (s *AssessmentService) ScoreLegacy(ctx context.Context, id string) (*model.ScoreResult, error) {
	assessment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.engine.ScoreAssessment(assessment.Responses, assessment.Segment), nil
}
