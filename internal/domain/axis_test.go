package domain_test

import (
	"testing"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxis_NamesAndPoles(t *testing.T) {
	assert.Equal(t, "Equity vs. Free Market", domain.AxisEquityFreeMarket.Name())
	assert.Equal(t, "Globalism vs. Nationalism", domain.AxisGlobalismNationalism.Name())
	assert.Equal(t, "Free Market", domain.AxisEquityFreeMarket.Right().Label())
	assert.Equal(t, domain.Letter('L'), domain.AxisLibertarianAuthoritarian.Left().Letter)
	assert.Equal(t, "Axis(9)", domain.Axis(9).Name())
}

func TestAxis_LetterPairsAreDistinct(t *testing.T) {
	seen := map[domain.Letter]bool{}
	for _, a := range domain.Axes {
		for _, l := range []domain.Letter{a.Left().Letter, a.Right().Letter} {
			assert.False(t, seen[l], "letter %s reused", l)
			seen[l] = true
		}
	}
	assert.Len(t, seen, 10)
}

func TestAxis_Opposite(t *testing.T) {
	l, ok := domain.AxisSecularReligious.Opposite('S')
	require.True(t, ok)
	assert.Equal(t, domain.Letter('R'), l)

	l, ok = domain.AxisSecularReligious.Opposite('R')
	require.True(t, ok)
	assert.Equal(t, domain.Letter('S'), l)

	_, ok = domain.AxisSecularReligious.Opposite('E')
	assert.False(t, ok)
}

func TestAxisResolver_Canonicalization(t *testing.T) {
	r := domain.DefaultAxisResolver()

	tests := []struct {
		label string
		want  domain.Axis
	}{
		{"Equity vs. Free Market", domain.AxisEquityFreeMarket},
		{"Equality vs. Markets", domain.AxisEquityFreeMarket},
		{"equity / free-market", domain.AxisEquityFreeMarket},
		{"Free Market vs Equity", domain.AxisEquityFreeMarket},
		{"EquityFreeMarket", domain.AxisEquityFreeMarket},
		{"LIBERTARIAN VERSUS AUTHORITARIAN", domain.AxisLibertarianAuthoritarian},
		{"Progressive vs. Traditional", domain.AxisProgressiveConservative},
		{"Ｓｅｃｕｌａｒ vs. Ｒｅｌｉｇｉｏｕｓ", domain.AxisSecularReligious},
		{"Global vs. National", domain.AxisGlobalismNationalism},
		{"economicAxis", domain.AxisEquityFreeMarket},
		{"economic_axis", domain.AxisEquityFreeMarket},
		{"economic-axis", domain.AxisEquityFreeMarket},
		{"Economic Axis", domain.AxisEquityFreeMarket},
		{"Equity vs. FreeMarket", domain.AxisEquityFreeMarket},
		{"secularVsReligious", domain.AxisSecularReligious},
		{"globalismNationalism", domain.AxisGlobalismNationalism},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(tt.label)
		if assert.True(t, ok, tt.label) {
			assert.Equal(t, tt.want, got, tt.label)
		}
	}
}

func TestAxisResolver_Unknown(t *testing.T) {
	r := domain.DefaultAxisResolver()

	for _, label := range []string{"", "vs.", "Axis", "Astrology", "Equity vs. Religion", "economicAstrology"} {
		_, ok := r.Resolve(label)
		assert.False(t, ok, label)
	}
}

func TestNewAxisResolver_ExtraAliases(t *testing.T) {
	r, err := domain.NewAxisResolver(map[string]string{"Money": "Economic"})
	require.NoError(t, err)

	got, ok := r.Resolve("money")
	require.True(t, ok)
	assert.Equal(t, domain.AxisEquityFreeMarket, got)
}

func TestAxisResolver_Fingerprint(t *testing.T) {
	assert.Empty(t, domain.DefaultAxisResolver().Fingerprint())

	money, err := domain.NewAxisResolver(map[string]string{"Money": "Economic"})
	require.NoError(t, err)
	sameFolded, err := domain.NewAxisResolver(map[string]string{"money": "Equity vs. Free Market"})
	require.NoError(t, err)
	social, err := domain.NewAxisResolver(map[string]string{"Money": "Social"})
	require.NoError(t, err)
	two, err := domain.NewAxisResolver(map[string]string{"Money": "Economic", "Faith": "Religion"})
	require.NoError(t, err)

	assert.Len(t, money.Fingerprint(), 64)
	assert.Equal(t, money.Fingerprint(), sameFolded.Fingerprint())
	assert.NotEqual(t, money.Fingerprint(), social.Fingerprint())
	assert.NotEqual(t, money.Fingerprint(), two.Fingerprint())
}

func TestNewAxisResolver_AliasToUnknownTarget(t *testing.T) {
	_, err := domain.NewAxisResolver(map[string]string{"Money": "Astrology"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Astrology")
}
