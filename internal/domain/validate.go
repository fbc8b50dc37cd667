package domain

import (
	"fmt"
	"strings"
)

// ValidationReport is the result of checking a question bank.
type ValidationReport struct {
	Status        string         `json:"status"`
	BankVersion   string         `json:"bank_version,omitempty"`
	QuestionCount int            `json:"question_count"`
	Coverage      []AxisCoverage `json:"coverage"`
	Issues        []Issue        `json:"issues"`
}

// AxisCoverage counts the questions of one axis by direction.
type AxisCoverage struct {
	AxisName string `json:"axis_name"`
	Left     int    `json:"left"`
	Right    int    `json:"right"`
}

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// ValidateBank reports problems that would silently skew classification:
// unknown axes, unexpected directions, invalid weights and empty or one-sided
// axes. Only unknown axes and id problems are errors; with strict set,
// warnings fail the report too.
func ValidateBank(bank *QuestionBank, resolver *AxisResolver, strict bool) ValidationReport {
	if resolver == nil {
		resolver = DefaultAxisResolver()
	}
	r := ValidationReport{BankVersion: bank.Version, QuestionCount: len(bank.Questions), Issues: []Issue{}}

	var left, right [AxisCount]int
	seen := make(map[string]bool, len(bank.Questions))
	for i, q := range bank.Questions {
		if q.ID == "" {
			r.add(SeverityError, "", fmt.Sprintf("question #%d has no id", i+1))
		} else if seen[q.ID] {
			r.add(SeverityError, q.ID, "duplicate question id")
		}
		seen[q.ID] = true

		dir := strings.TrimSpace(string(q.Direction))
		if !strings.EqualFold(dir, string(DirectionLeft)) && !strings.EqualFold(dir, string(DirectionRight)) {
			r.add(SeverityWarning, q.ID, fmt.Sprintf("direction %q is not Left or Right; scored as Right", q.Direction))
		}
		for _, f := range []struct {
			name string
			w    *float64
		}{{"weight", q.Weight}, {"weight_agree", q.WeightAgree}, {"weight_disagree", q.WeightDisagree}} {
			if f.w != nil && !validWeight(*f.w) {
				r.add(SeverityWarning, q.ID, fmt.Sprintf("%s %v is not a finite non-negative number; falling back", f.name, *f.w))
			}
		}

		axis, ok := resolver.Resolve(q.Axis)
		if !ok {
			r.add(SeverityError, q.ID, fmt.Sprintf("axis %q does not match any known axis", q.Axis))
			continue
		}
		if q.Direction.IsLeft() {
			left[axis]++
		} else {
			right[axis]++
		}
	}

	for _, a := range Axes {
		r.Coverage = append(r.Coverage, AxisCoverage{AxisName: a.Name(), Left: left[a], Right: right[a]})
		switch {
		case left[a]+right[a] == 0:
			r.add(SeverityWarning, "", fmt.Sprintf("axis %q has no questions; it will always resolve to %s", a.Name(), a.Right().Letter))
		case left[a] == 0 || right[a] == 0:
			r.add(SeverityInfo, "", fmt.Sprintf("axis %q only has questions in one direction", a.Name()))
		}
	}

	r.Status = StatusPass
	for _, is := range r.Issues {
		if is.Severity == SeverityError || (strict && is.Severity == SeverityWarning) {
			r.Status = StatusFail
			break
		}
	}
	return r
}

func (r *ValidationReport) add(severity, id, msg string) {
	r.Issues = append(r.Issues, Issue{Severity: severity, QuestionID: id, Message: msg})
}
