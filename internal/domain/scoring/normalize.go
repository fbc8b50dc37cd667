package scoring

import (
	"math"

	"github.com/abdidvp/polaxis/internal/domain"
)

// Normalize turns an axis aggregate into its display split and raw score.
//
//	displayLeft   = (A/C)*50 + 50, or 50 when C == 0, clamped to [0,100]
//	rawNormalized = ((A-B)/(B+C))*100, or 0 when B+C == 0, clamped to [-100,100]
//
// Non-finite intermediate values fall back to 50/50 and 0 respectively.
func Normalize(agg domain.AxisAggregate) domain.NormalizedAxis {
	displayLeft := 50.0
	if agg.C > 0 {
		displayLeft = (agg.A/agg.C)*50 + 50
	}
	if !finite(displayLeft) {
		displayLeft = 50
	}
	displayLeft = clamp(displayLeft, 0, 100)

	raw := 0.0
	if denom := agg.B + agg.C; denom != 0 {
		raw = ((agg.A - agg.B) / denom) * 100
	}
	if !finite(raw) {
		raw = 0
	}

	return domain.NormalizedAxis{
		LeftPercent:   round2(displayLeft),
		RightPercent:  round2(100 - displayLeft),
		RawNormalized: clamp(raw, -100, 100),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
