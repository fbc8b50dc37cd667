package domain_test

import (
	"testing"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	base := domain.CacheKey("v1", domain.Answers{"q1": 2, "q2": -1})

	t.Run("stable across map order", func(t *testing.T) {
		assert.Equal(t, base, domain.CacheKey("v1", domain.Answers{"q2": -1, "q1": 2}))
	})

	t.Run("different bank version", func(t *testing.T) {
		assert.NotEqual(t, base, domain.CacheKey("v2", domain.Answers{"q1": 2, "q2": -1}))
	})

	t.Run("different answer", func(t *testing.T) {
		assert.NotEqual(t, base, domain.CacheKey("v1", domain.Answers{"q1": 1, "q2": -1}))
	})

	t.Run("unanswered differs from neutral", func(t *testing.T) {
		assert.NotEqual(t, base, domain.CacheKey("v1", domain.Answers{"q1": 2, "q2": -1, "q3": 0}))
	})

	assert.Len(t, base, 64)
}
