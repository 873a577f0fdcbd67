package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"orgrealign/internal/model"
)

// ResultCache handles Redis operations for computed scoring and analysis
// results. Misses return (nil, nil).
type ResultCache interface {
	GetScore(ctx context.Context, assessmentID string) (*model.AlgoOutput, error)
	SetScore(ctx context.Context, assessmentID string, output *model.AlgoOutput) error

	GetAnalysis(ctx context.Context, assessmentID string) (*model.AnalysisResult, error)
	SetAnalysis(ctx context.Context, assessmentID string, result *model.AnalysisResult) error

	Invalidate(ctx context.Context, assessmentID string) error
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache.
func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

// Key helpers
func (c *resultCache) scoreKey(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:score", assessmentID)
}

func (c *resultCache) analysisKey(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:analysis", assessmentID)
}

func (c *resultCache) GetScore(ctx context.Context, assessmentID string) (*model.AlgoOutput, error) {
	data, err := c.client.Get(ctx, c.scoreKey(assessmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var output model.AlgoOutput
	if err := json.Unmarshal([]byte(data), &output); err != nil {
		return nil, err
	}
	return &output, nil
}

func (c *resultCache) SetScore(ctx context.Context, assessmentID string, output *model.AlgoOutput) error {
	data, err := json.Marshal(output)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.scoreKey(assessmentID), data, c.ttl).Err()
}

func (c *resultCache) GetAnalysis(ctx context.Context, assessmentID string) (*model.AnalysisResult, error) {
	data, err := c.client.Get(ctx, c.analysisKey(assessmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *resultCache) SetAnalysis(ctx context.Context, assessmentID string, result *model.AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.analysisKey(assessmentID), data, c.ttl).Err()
}

func (c *resultCache) Invalidate(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, c.scoreKey(assessmentID), c.analysisKey(assessmentID)).Err()
}
