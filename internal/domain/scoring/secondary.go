package scoring

import (
	"math"
	"sort"

	"github.com/abdidvp/polaxis/internal/domain"
)

const (
	centerEpsilon   = 0.01
	maxSecondaries  = 2
	minMatchPercent = 60
	maxMatchPercent = 95
)

// AxisPosition pairs an axis with its normalized values.
type AxisPosition struct {
	Axis       domain.Axis
	Normalized domain.NormalizedAxis
}

func (p AxisPosition) distance() float64 {
	return math.Abs(p.Normalized.RawNormalized)
}

// Secondaries flips the axes closest to center and resolves the resulting
// codes. letters holds the primary letters in canonical order, indexed by
// axis. Exact-center axes come first, then the rest by ascending distance.
func Secondaries(letters []domain.Letter, positions []AxisPosition) []domain.SecondaryArchetype {
	if len(positions) == 0 {
		return []domain.SecondaryArchetype{}
	}

	var center, other []AxisPosition
	for _, p := range positions {
		if p.distance() < centerEpsilon {
			center = append(center, p)
		} else {
			other = append(other, p)
		}
	}
	sort.SliceStable(other, func(i, j int) bool {
		return other[i].distance() < other[j].distance()
	})

	candidates := center
	for _, p := range other {
		if len(candidates) >= maxSecondaries {
			break
		}
		candidates = append(candidates, p)
	}
	if len(candidates) > maxSecondaries {
		candidates = candidates[:maxSecondaries]
	}

	out := []domain.SecondaryArchetype{}
	seen := make(map[string]bool)
	for _, p := range candidates {
		flipped, ok := flipLetter(letters, p.Axis)
		if !ok {
			continue
		}
		arch := ResolveArchetype(flipped)
		if seen[arch.Code] {
			continue
		}
		seen[arch.Code] = true
		out = append(out, domain.SecondaryArchetype{
			Name:         arch.Name,
			Code:         arch.Code,
			MatchPercent: MatchPercent(p.Normalized),
			FlippedAxis:  p.Axis.Name(),
		})
	}
	return out
}

// MatchPercent scores how plausible a flip on an axis is. A dead-center
// axis scores 100; otherwise confidence decays linearly with distance and
// is held within [60, 95].
func MatchPercent(n domain.NormalizedAxis) int {
	axisScore := math.Min(n.LeftPercent, n.RightPercent)
	if math.Abs(axisScore-50) < centerEpsilon {
		return 100
	}
	match := math.Round(100 - (50-axisScore)*2)
	return int(clamp(match, minMatchPercent, maxMatchPercent))
}

func flipLetter(letters []domain.Letter, axis domain.Axis) ([]domain.Letter, bool) {
	i := int(axis)
	if i < 0 || i >= len(letters) {
		return nil, false
	}
	opposite, ok := axis.Opposite(letters[i])
	if !ok {
		return nil, false
	}
	flipped := make([]domain.Letter, len(letters))
	copy(flipped, letters)
	flipped[i] = opposite
	return flipped, true
}
