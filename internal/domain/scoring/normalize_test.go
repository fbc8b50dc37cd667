package scoring_test

import (
	"math"
	"testing"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/abdidvp/polaxis/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_BalancedAnswers(t *testing.T) {
	aggs, _ := scoring.Aggregate(twoRightQuestions("Economic"), domain.Answers{"q1": 2, "q2": -2}, nil)
	agg := aggs[domain.AxisEquityFreeMarket]
	assert.Equal(t, domain.AxisAggregate{A: 0, B: 2, C: 2, Questions: 2, Answered: 2}, agg)

	n := scoring.Normalize(agg)

	assert.Equal(t, 50.0, n.LeftPercent)
	assert.Equal(t, 50.0, n.RightPercent)
	// ((0-2)/4)*100; the raw score is measured against the disagree mass.
	assert.Equal(t, -50.0, n.RawNormalized)
}

func TestNormalize_PartiallyAnswered(t *testing.T) {
	aggs, _ := scoring.Aggregate(twoRightQuestions("Economic"), domain.Answers{"q1": 2}, nil)

	n := scoring.Normalize(aggs[domain.AxisEquityFreeMarket])

	assert.Equal(t, 75.0, n.LeftPercent)
	assert.Equal(t, 25.0, n.RightPercent)
	assert.Equal(t, -25.0, n.RawNormalized)
}

func TestNormalize_NeutralInvariance(t *testing.T) {
	for _, answers := range []domain.Answers{{}, {"q1": 0, "q2": 0}, {"q1": 0}} {
		aggs, _ := scoring.Aggregate(twoRightQuestions("Economic"), answers, nil)
		agg := aggs[domain.AxisEquityFreeMarket]
		assert.Equal(t, 0.0, agg.A)

		n := scoring.Normalize(agg)
		assert.Equal(t, 50.0, n.LeftPercent)
		assert.Equal(t, 50.0, n.RightPercent)
	}
}

func TestNormalize_EmptyAxisDefaults(t *testing.T) {
	n := scoring.Normalize(domain.AxisAggregate{})

	assert.Equal(t, domain.NormalizedAxis{LeftPercent: 50, RightPercent: 50, RawNormalized: 0}, n)
}

func TestNormalize_ClampsOvershoot(t *testing.T) {
	n := scoring.Normalize(domain.AxisAggregate{A: 10, B: 0, C: 1})
	assert.Equal(t, 100.0, n.LeftPercent)
	assert.Equal(t, 0.0, n.RightPercent)
	assert.Equal(t, 100.0, n.RawNormalized)

	n = scoring.Normalize(domain.AxisAggregate{A: -10, B: 1, C: 1})
	assert.Equal(t, 0.0, n.LeftPercent)
	assert.Equal(t, 100.0, n.RightPercent)
	assert.Equal(t, -100.0, n.RawNormalized)
}

func TestNormalize_NonFiniteFallsBack(t *testing.T) {
	n := scoring.Normalize(domain.AxisAggregate{A: math.NaN(), B: 1, C: 1})

	assert.Equal(t, 50.0, n.LeftPercent)
	assert.Equal(t, 50.0, n.RightPercent)
	assert.Equal(t, 0.0, n.RawNormalized)
}

func TestNormalize_InvariantsHoldAcrossGrid(t *testing.T) {
	for a := -6.0; a <= 6; a += 0.5 {
		for b := 0.0; b <= 4; b++ {
			for c := 0.0; c <= 4; c++ {
				n := scoring.Normalize(domain.AxisAggregate{A: a, B: b, C: c})
				assert.Equal(t, 100.0, math.Round(n.LeftPercent+n.RightPercent), "A=%v B=%v C=%v", a, b, c)
				assert.GreaterOrEqual(t, n.RawNormalized, -100.0)
				assert.LessOrEqual(t, n.RawNormalized, 100.0)
				assert.GreaterOrEqual(t, n.LeftPercent, 0.0)
				assert.LessOrEqual(t, n.LeftPercent, 100.0)
			}
		}
	}
}
