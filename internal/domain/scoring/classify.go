package scoring

import "github.com/abdidvp/polaxis/internal/domain"

// Classify runs the whole pipeline in one pass. A nil resolver uses the
// built-in aliases. The result carries no timestamp or bank version; those
// belong to the caller.
func Classify(questions []domain.Question, answers domain.Answers, resolver *domain.AxisResolver) domain.Classification {
	aggs, issues := Aggregate(questions, answers, resolver)

	letters := make([]domain.Letter, 0, domain.AxisCount)
	positions := make([]AxisPosition, 0, domain.AxisCount)
	rows := make([]domain.AxisResult, 0, domain.AxisCount)
	answered := 0

	for _, axis := range domain.Axes {
		agg := aggs[axis]
		n := Normalize(agg)
		letter := ResolveLetter(axis, n)
		pole, _ := axis.PoleFor(letter)

		letters = append(letters, letter)
		positions = append(positions, AxisPosition{Axis: axis, Normalized: n})
		answered += agg.Answered

		row := domain.AxisResult{
			AxisName:      axis.Name(),
			LeftLabel:     axis.Left().Label(),
			RightLabel:    axis.Right().Label(),
			LeftPercent:   n.LeftPercent,
			RightPercent:  n.RightPercent,
			RawNormalized: n.RawNormalized,
			UserPosition:  pole.Label(),
			Letter:        letter.String(),
			Aggregate:     agg,
		}
		row.PositionStrength = domain.StrengthFor(row.DistanceFromCenter())
		rows = append(rows, row)
	}

	arch := ResolveArchetype(letters)
	return domain.Classification{
		Code:          arch.Code,
		Name:          arch.Name,
		Traits:        arch.Traits,
		Axes:          rows,
		Secondaries:   Secondaries(letters, positions),
		Issues:        issues,
		QuestionCount: len(questions),
		AnsweredCount: answered,
	}
}
