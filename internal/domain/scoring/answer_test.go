package scoring_test

import (
	"testing"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/abdidvp/polaxis/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestBaseValue_Table(t *testing.T) {
	assert.Equal(t, -1.0, scoring.BaseValue(-2))
	assert.Equal(t, -0.5, scoring.BaseValue(-1))
	assert.Equal(t, 0.0, scoring.BaseValue(0))
	assert.Equal(t, 0.5, scoring.BaseValue(1))
	assert.Equal(t, 1.0, scoring.BaseValue(2))
}

func TestBaseValue_OutOfRangeIsNeutral(t *testing.T) {
	assert.Equal(t, 0.0, scoring.BaseValue(3))
	assert.Equal(t, 0.0, scoring.BaseValue(-7))
	assert.Equal(t, 0.0, scoring.BaseValue(domain.InvalidAnswer))
}

func TestScoreAnswer_Unanswered(t *testing.T) {
	q := domain.Question{ID: "q1", Axis: "Economic", Direction: domain.DirectionRight}

	c, answered := scoring.ScoreAnswer(q, domain.Answers{"other": 2})

	assert.False(t, answered)
	assert.Equal(t, 0.0, c)
}

func TestScoreAnswer_RightAgree(t *testing.T) {
	q := domain.Question{ID: "q1", Direction: domain.DirectionRight, WeightAgree: ptr(2), WeightDisagree: ptr(3)}

	c, answered := scoring.ScoreAnswer(q, domain.Answers{"q1": 2})

	assert.True(t, answered)
	assert.Equal(t, 2.0, c)
}

func TestScoreAnswer_DisagreeUsesDisagreeWeight(t *testing.T) {
	q := domain.Question{ID: "q1", Direction: domain.DirectionRight, WeightAgree: ptr(2), WeightDisagree: ptr(3)}

	c, _ := scoring.ScoreAnswer(q, domain.Answers{"q1": -1})

	assert.Equal(t, -1.5, c)
}

func TestScoreAnswer_LeftDirectionFlipsSign(t *testing.T) {
	q := domain.Question{ID: "q1", Direction: domain.DirectionLeft}

	agree, _ := scoring.ScoreAnswer(q, domain.Answers{"q1": 2})
	disagree, _ := scoring.ScoreAnswer(q, domain.Answers{"q1": -1})

	assert.Equal(t, -1.0, agree)
	assert.Equal(t, 0.5, disagree)
}

func TestScoreAnswer_DirectionIsCaseInsensitive(t *testing.T) {
	q := domain.Question{ID: "q1", Direction: "left"}

	c, _ := scoring.ScoreAnswer(q, domain.Answers{"q1": 1})

	assert.Equal(t, -0.5, c)
}

func TestScoreAnswer_NeutralAnswerCountsAsAnswered(t *testing.T) {
	q := domain.Question{ID: "q1", Direction: domain.DirectionLeft, Weight: ptr(4)}

	c, answered := scoring.ScoreAnswer(q, domain.Answers{"q1": 0})

	assert.True(t, answered)
	assert.Equal(t, 0.0, c)
}

func TestScoreAnswer_WeightFallback(t *testing.T) {
	// weight_agree missing, weight present
	q := domain.Question{ID: "q1", Direction: domain.DirectionRight, Weight: ptr(3)}
	c, _ := scoring.ScoreAnswer(q, domain.Answers{"q1": 2})
	assert.Equal(t, 3.0, c)

	// negative weight_agree is invalid and falls through to weight
	q.WeightAgree = ptr(-1)
	c, _ = scoring.ScoreAnswer(q, domain.Answers{"q1": 2})
	assert.Equal(t, 3.0, c)

	// nothing valid falls back to 1
	q = domain.Question{ID: "q1", Direction: domain.DirectionRight}
	c, _ = scoring.ScoreAnswer(q, domain.Answers{"q1": 1})
	assert.Equal(t, 0.5, c)
}
