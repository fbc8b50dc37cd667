package scoring

import "github.com/abdidvp/polaxis/internal/domain"

// baseValues maps a raw answer to its signed base magnitude.
var baseValues = map[int]float64{
	-2: -1,
	-1: -0.5,
	0:  0,
	1:  0.5,
	2:  1,
}

// BaseValue returns the base magnitude of a raw answer. Values outside
// {-2..2} map to 0.
func BaseValue(answer int) float64 {
	return baseValues[answer]
}

// ScoreAnswer returns the signed weighted contribution of q's answer and
// whether the question was answered at all.
//
// Agree answers (base > 0) use the agree weight, disagree answers the
// disagree weight, and neutral answers contribute 0 with no weight applied.
// Left-direction questions flip the sign, since the underlying scale puts
// Left on the negative side.
func ScoreAnswer(q domain.Question, answers domain.Answers) (float64, bool) {
	v, ok := answers[q.ID]
	if !ok {
		return 0, false
	}
	base := BaseValue(v)
	if base == 0 {
		return 0, true
	}

	weight := q.DisagreeWeight()
	if base > 0 {
		weight = q.AgreeWeight()
	}

	contribution := base * weight
	if q.Direction.IsLeft() {
		contribution = -contribution
	}
	return contribution, true
}
