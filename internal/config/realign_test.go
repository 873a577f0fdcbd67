package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgrealign/internal/model"
)

func TestSectionWeightFallback(t *testing.T) {
	cfg := DefaultRealignConfig()

	assert.Equal(t, 0.95, cfg.SectionWeight("Governance & Leadership"))
	assert.Equal(t, cfg.DefaultSectionWeight, cfg.SectionWeight("Campus Parking"))
}

func TestSectionWeightsInRange(t *testing.T) {
	cfg := DefaultRealignConfig()

	for section, w := range cfg.SectionWeights {
		assert.Greater(t, w, 0.0, section)
		assert.LessOrEqual(t, w, 1.0, section)
	}
}

func TestDependenciesPointAtKnownSections(t *testing.T) {
	cfg := DefaultRealignConfig()

	for section, deps := range cfg.DependencyMap {
		require.NotEmpty(t, deps, section)
		for _, dep := range deps {
			_, ok := cfg.SectionWeights[dep]
			assert.True(t, ok, "%s depends on unknown section %s", section, dep)
		}
	}

	assert.Empty(t, cfg.Dependencies("Campus Parking"))
	assert.NotNil(t, cfg.Dependencies("Campus Parking"))
}

func TestToolsForFallback(t *testing.T) {
	cfg := DefaultRealignConfig()

	assert.Contains(t, cfg.ToolsFor("Finance, Budget & Procurement"), "Robotic Process Automation")
	assert.Equal(t, cfg.DefaultAITools, cfg.ToolsFor("Campus Parking"))
}

func TestROIAndCostTablesCoverAllCategories(t *testing.T) {
	cfg := DefaultRealignConfig()

	categories := []model.Category{
		model.CategoryRestructure,
		model.CategoryAutomation,
		model.CategoryConsolidation,
		model.CategoryInvestment,
		model.CategoryElimination,
	}
	for _, category := range categories {
		roi, ok := cfg.BaseROI[category]
		require.True(t, ok, category)
		assert.Greater(t, roi, 0.0, category)

		cost, ok := cfg.BaseCost[category]
		require.True(t, ok, category)
		assert.Greater(t, cost, 0.0, category)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://example:27017")
	t.Setenv("MONGO_DB", "testdb")
	t.Setenv("REDIS_ADDR", "example:6379")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "mongodb://example:27017", cfg.MongoURI)
	assert.Equal(t, "testdb", cfg.MongoDBName)
	assert.Equal(t, "example:6379", cfg.RedisAddr)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}
