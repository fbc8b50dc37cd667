package scoring_test

import (
	"testing"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/abdidvp/polaxis/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(axis domain.Axis, left, raw float64) scoring.AxisPosition {
	return scoring.AxisPosition{
		Axis:       axis,
		Normalized: domain.NormalizedAxis{LeftPercent: left, RightPercent: 100 - left, RawNormalized: raw},
	}
}

var primary = []domain.Letter{'E', 'L', 'P', 'S', 'G'}

func TestSecondaries_CenterAxisComesFirst(t *testing.T) {
	positions := []scoring.AxisPosition{
		at(domain.AxisEquityFreeMarket, 35, 30),
		at(domain.AxisLibertarianAuthoritarian, 50, 0),
		at(domain.AxisProgressiveConservative, 80, 60),
		at(domain.AxisSecularReligious, 85, 70),
		at(domain.AxisGlobalismNationalism, 90, 80),
	}

	got := scoring.Secondaries(primary, positions)

	require.Len(t, got, 2)
	assert.Equal(t, domain.SecondaryArchetype{
		Name: "Technocratic Planner", Code: "EAPSG", MatchPercent: 100, FlippedAxis: "Libertarian vs. Authoritarian",
	}, got[0])
	assert.Equal(t, domain.SecondaryArchetype{
		Name: "Cosmopolitan Libertarian", Code: "FLPSG", MatchPercent: 70, FlippedAxis: "Equity vs. Free Market",
	}, got[1])
}

func TestSecondaries_ClosestOthersInCanonicalOrderOnTies(t *testing.T) {
	positions := []scoring.AxisPosition{
		at(domain.AxisEquityFreeMarket, 90, 40),
		at(domain.AxisLibertarianAuthoritarian, 90, 20),
		at(domain.AxisProgressiveConservative, 90, 20),
		at(domain.AxisSecularReligious, 90, 10),
		at(domain.AxisGlobalismNationalism, 90, 50),
	}

	got := scoring.Secondaries(primary, positions)

	require.Len(t, got, 2)
	assert.Equal(t, "Secular vs. Religious", got[0].FlippedAxis)
	assert.Equal(t, "Libertarian vs. Authoritarian", got[1].FlippedAxis)
}

func TestSecondaries_MoreThanTwoCentersTakesFirstTwo(t *testing.T) {
	positions := []scoring.AxisPosition{
		at(domain.AxisEquityFreeMarket, 80, 40),
		at(domain.AxisLibertarianAuthoritarian, 50, 0),
		at(domain.AxisProgressiveConservative, 50, 0.005),
		at(domain.AxisSecularReligious, 50, 0),
		at(domain.AxisGlobalismNationalism, 80, 40),
	}

	got := scoring.Secondaries(primary, positions)

	require.Len(t, got, 2)
	assert.Equal(t, "EAPSG", got[0].Code)
	assert.Equal(t, "ELCSG", got[1].Code)
}

func TestSecondaries_SingleAxis(t *testing.T) {
	got := scoring.Secondaries(primary, []scoring.AxisPosition{at(domain.AxisGlobalismNationalism, 60, 20)})

	require.Len(t, got, 1)
	assert.Equal(t, "ELPSN", got[0].Code)
}

func TestSecondaries_NoAxes(t *testing.T) {
	got := scoring.Secondaries(primary, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSecondaries_SkipsLettersOutsideAxis(t *testing.T) {
	letters := []domain.Letter{'X', 'L', 'P', 'S', 'G'}
	positions := []scoring.AxisPosition{
		at(domain.AxisEquityFreeMarket, 50, 0),
		at(domain.AxisLibertarianAuthoritarian, 50, 0),
	}

	got := scoring.Secondaries(letters, positions)

	require.Len(t, got, 1)
	assert.Equal(t, domain.UnknownArchetypeName, got[0].Name)
	assert.Equal(t, "XAPSG", got[0].Code)
}

func TestMatchPercent(t *testing.T) {
	tests := []struct {
		left float64
		want int
	}{
		{50, 100},
		{49.995, 100},
		{45, 90},
		{55, 90},
		{49, 95},
		{30, 60},
		{0, 60},
		{100, 60},
		{40, 80},
	}
	for _, tt := range tests {
		n := domain.NormalizedAxis{LeftPercent: tt.left, RightPercent: 100 - tt.left}
		assert.Equal(t, tt.want, scoring.MatchPercent(n), "left=%v", tt.left)
	}
}

func TestMatchPercent_AlwaysInBounds(t *testing.T) {
	for left := 0.0; left <= 100; left += 0.25 {
		m := scoring.MatchPercent(domain.NormalizedAxis{LeftPercent: left, RightPercent: 100 - left})
		assert.GreaterOrEqual(t, m, 60)
		assert.LessOrEqual(t, m, 100)
	}
}
