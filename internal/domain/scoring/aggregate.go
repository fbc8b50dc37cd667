package scoring

import (
	"fmt"

	"github.com/abdidvp/polaxis/internal/domain"
)

// Aggregates holds the (A, B, C) triple of every axis.
type Aggregates map[domain.Axis]domain.AxisAggregate

// Aggregate sums contributions and weight mass per canonical axis.
//
// B and C accumulate over every question on the axis, answered or not: they
// are the axis's maximum disagree/agree mass and serve as normalization
// denominators. Questions whose axis label does not resolve are left out and
// reported as error issues. All five axes are always present.
func Aggregate(questions []domain.Question, answers domain.Answers, resolver *domain.AxisResolver) (Aggregates, []domain.Issue) {
	if resolver == nil {
		resolver = domain.DefaultAxisResolver()
	}

	aggs := make(Aggregates, domain.AxisCount)
	for _, a := range domain.Axes {
		aggs[a] = domain.AxisAggregate{}
	}

	var issues []domain.Issue
	for _, q := range questions {
		axis, ok := resolver.Resolve(q.Axis)
		if !ok {
			issues = append(issues, domain.Issue{
				Severity:   domain.SeverityError,
				QuestionID: q.ID,
				Message:    fmt.Sprintf("axis %q does not match any known axis; question excluded", q.Axis),
			})
			continue
		}

		agg := aggs[axis]
		if c, answered := ScoreAnswer(q, answers); answered {
			agg.A += c
			agg.Answered++
		}
		agg.B += q.DisagreeWeight()
		agg.C += q.AgreeWeight()
		agg.Questions++
		aggs[axis] = agg
	}
	return aggs, issues
}
