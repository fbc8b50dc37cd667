package scoring

import "github.com/abdidvp/polaxis/internal/domain"

// ResolveLetter picks the axis letter for a normalized split. Ties go to
// the right-hand letter.
func ResolveLetter(axis domain.Axis, n domain.NormalizedAxis) domain.Letter {
	if n.RightPercent >= n.LeftPercent {
		return axis.Right().Letter
	}
	return axis.Left().Letter
}

// ResolveArchetype joins letters in canonical axis order and looks the code
// up. Codes outside the table resolve to the "Unknown Archetype" sentinel.
func ResolveArchetype(letters []domain.Letter) domain.Archetype {
	buf := make([]byte, len(letters))
	for i, l := range letters {
		buf[i] = byte(l)
	}
	a, _ := domain.LookupArchetype(string(buf))
	return a
}
