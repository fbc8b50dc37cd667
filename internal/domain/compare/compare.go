// Package compare diffs the classifications of two respondents who answered
// the same question bank.
package compare

import (
	"math"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/abdidvp/polaxis/internal/domain/scoring"
)

// Report is the side-by-side view of two classifications.
type Report struct {
	A             Side            `json:"a"`
	B             Side            `json:"b"`
	SharedLetters int             `json:"shared_letters"`
	Similarity    float64         `json:"similarity"`
	Axes          []AxisDelta     `json:"axes"`
	Questions     []QuestionDelta `json:"questions"`
}

// Side is one respondent's headline result.
type Side struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// AxisDelta compares one axis. Deltas are B minus A.
type AxisDelta struct {
	AxisName     string  `json:"axis_name"`
	LetterA      string  `json:"letter_a"`
	LetterB      string  `json:"letter_b"`
	LeftPercentA float64 `json:"left_percent_a"`
	LeftPercentB float64 `json:"left_percent_b"`
	DeltaLeft    float64 `json:"delta_left"`
	DeltaRaw     float64 `json:"delta_raw"`
	SameSide     bool    `json:"same_side"`
}

// QuestionDelta compares the answers to one question. Gap and Agreement are
// only meaningful when both respondents answered.
type QuestionDelta struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text,omitempty"`
	AnswerA    *int   `json:"answer_a,omitempty"`
	AnswerB    *int   `json:"answer_b,omitempty"`
	Gap        int    `json:"gap"`
	Agreement  bool   `json:"agreement"`
}

// Both reports whether both respondents answered the question.
func (q QuestionDelta) Both() bool { return q.AnswerA != nil && q.AnswerB != nil }

// Classifications carries both results so callers that already classified
// (for example through a cache) do not pay for it twice.
type Classifications struct {
	A, B domain.Classification
}

// Compare classifies both answer sets against questions and diffs them.
func Compare(questions []domain.Question, a, b domain.Answers, resolver *domain.AxisResolver) Report {
	return Diff(questions, a, b, Classifications{
		A: scoring.Classify(questions, a, resolver),
		B: scoring.Classify(questions, b, resolver),
	})
}

// Diff builds the report from two existing classifications.
func Diff(questions []domain.Question, a, b domain.Answers, cs Classifications) Report {
	r := Report{
		A:         Side{Code: cs.A.Code, Name: cs.A.Name},
		B:         Side{Code: cs.B.Code, Name: cs.B.Name},
		Axes:      []AxisDelta{},
		Questions: []QuestionDelta{},
	}

	var sum float64
	n := min(len(cs.A.Axes), len(cs.B.Axes))
	for i := 0; i < n; i++ {
		ra, rb := cs.A.Axes[i], cs.B.Axes[i]
		d := AxisDelta{
			AxisName:     ra.AxisName,
			LetterA:      ra.Letter,
			LetterB:      rb.Letter,
			LeftPercentA: ra.LeftPercent,
			LeftPercentB: rb.LeftPercent,
			DeltaLeft:    round2(rb.LeftPercent - ra.LeftPercent),
			DeltaRaw:     round2(rb.RawNormalized - ra.RawNormalized),
			SameSide:     ra.Letter == rb.Letter,
		}
		if d.SameSide {
			r.SharedLetters++
		}
		sum += math.Abs(rb.LeftPercent - ra.LeftPercent)
		r.Axes = append(r.Axes, d)
	}

	r.Similarity = 100
	if n > 0 {
		r.Similarity = round2(math.Max(0, math.Min(100, 100-sum/float64(n))))
	}

	for _, q := range questions {
		d := QuestionDelta{QuestionID: q.ID, Text: q.Text}
		if v, ok := a[q.ID]; ok {
			d.AnswerA = &v
		}
		if v, ok := b[q.ID]; ok {
			d.AnswerB = &v
		}
		if d.Both() {
			d.Gap = abs(*d.AnswerA - *d.AnswerB)
			d.Agreement = sign(*d.AnswerA) == sign(*d.AnswerB)
		}
		r.Questions = append(r.Questions, d)
	}
	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
