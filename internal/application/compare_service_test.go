package application_test

import (
	"context"
	"testing"

	"github.com/abdidvp/polaxis/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareService_Compare(t *testing.T) {
	svc := application.NewCompareService(application.NewClassifyService(openBank(t)))

	r, err := svc.Compare(context.Background(), loadAnswers(t, aliceFile), loadAnswers(t, bobFile))
	require.NoError(t, err)

	assert.Equal(t, "FACRN", r.A.Code)
	assert.Equal(t, "ELPSG", r.B.Code)
	assert.Equal(t, 0, r.SharedLetters)
	require.Len(t, r.Axes, 5)
	assert.False(t, r.Axes[0].SameSide)
	assert.Len(t, r.Questions, 20)
	assert.GreaterOrEqual(t, r.Similarity, 0.0)
	assert.Less(t, r.Similarity, 50.0)

	for _, q := range r.Questions {
		assert.True(t, q.Both(), q.QuestionID)
	}
}

func TestCompareService_SameAnswers(t *testing.T) {
	svc := application.NewCompareService(application.NewClassifyService(openBank(t), application.WithCache(newMemCache())))
	alice := loadAnswers(t, aliceFile)

	r, err := svc.Compare(context.Background(), alice, alice)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r.Similarity)
	assert.Equal(t, 5, r.SharedLetters)
}
