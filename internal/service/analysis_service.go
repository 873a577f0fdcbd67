package service

import (
	"context"
	"fmt"

	"orgrealign/internal/cache"
	"orgrealign/internal/model"
	"orgrealign/internal/realign"
	"orgrealign/internal/repository"
)

// AnalysisService runs the organizational realignment analyzer over stored
// assessments and caches the derived recommendations and roadmap.
type AnalysisService struct {
	repo        repository.AssessmentRepo
	resultCache cache.ResultCache
	engine      *realign.Engine
	broadcaster Broadcaster
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(repo repository.AssessmentRepo, resultCache cache.ResultCache, engine *realign.Engine) *AnalysisService {
	return &AnalysisService{
		repo:        repo,
		resultCache: resultCache,
		engine:      engine,
	}
}

// SetBroadcaster injects the WebSocket broadcaster
func (s *AnalysisService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Analyze builds the organizational graph for an assessment and derives
// recommendations, insights and the transformation roadmap. Results are
// cached; re-analyzing returns the cached result.
func (s *AnalysisService) Analyze(ctx context.Context, id string) (*model.AnalysisResult, error) {
	if cached, err := s.resultCache.GetAnalysis(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	result := s.engine.Analyze(assessment.Responses)

	if err := s.resultCache.SetAnalysis(ctx, id, result); err != nil {
		return nil, fmt.Errorf("cache analysis: %w", err)
	}
	if err := s.repo.UpdateStatus(ctx, id, model.StatusAnalyzed); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToDashboard(id, "analysis_completed", result)
	}

	return result, nil
}

// GetAnalysis returns the cached analysis for an assessment, or nil if it
// has not been analyzed yet.
func (s *AnalysisService) GetAnalysis(ctx context.Context, id string) (*model.AnalysisResult, error) {
	return s.resultCache.GetAnalysis(ctx, id)
}
