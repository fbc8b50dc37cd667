package tui_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/tui"
	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/abdidvp/polaxis/internal/domain/compare"
)

func sampleClassification() *domain.Classification {
	return &domain.Classification{
		Code:          "FACRN",
		Name:          "Nationalist Patriarch",
		Traits:        []string{"Free Market", "Authority", "Conservative", "Religious", "Nationalist"},
		QuestionCount: 20,
		AnsweredCount: 18,
		Axes: []domain.AxisResult{
			{
				AxisName: "Economic", LeftLabel: "Equality", RightLabel: "Free Market",
				LeftPercent: 18.18, RightPercent: 81.82, RawNormalized: -80,
				UserPosition: "Free Market", PositionStrength: domain.StrengthExtreme, Letter: "F",
				Aggregate: domain.AxisAggregate{Questions: 4, Answered: 4},
			},
			{
				AxisName: "Governance", LeftLabel: "Liberty", RightLabel: "Authority",
				LeftPercent: 45, RightPercent: 55, RawNormalized: -5,
				UserPosition: "Authority", PositionStrength: domain.StrengthLeaning, Letter: "A",
			},
		},
		Secondaries: []domain.SecondaryArchetype{
			{Name: "Classical Liberal", Code: "FLCSG", MatchPercent: 75, FlippedAxis: "Governance"},
		},
		Issues: []domain.Issue{
			{Severity: domain.SeverityWarning, QuestionID: "x-1", Message: "answer out of range"},
			{Severity: domain.SeverityError, QuestionID: "x-2", Message: "unknown axis"},
		},
	}
}

func TestRenderClassification_Headline(t *testing.T) {
	out := tui.RenderClassification(sampleClassification())
	assert.Contains(t, out, "FACRN")
	assert.Contains(t, out, "Nationalist Patriarch")
	assert.Contains(t, out, "18 of 20 questions answered")
}

func TestRenderClassification_AxisRows(t *testing.T) {
	out := tui.RenderClassification(sampleClassification())
	assert.Contains(t, out, "Economic")
	assert.Contains(t, out, "Equality")
	assert.Contains(t, out, "Free Market")
	assert.Contains(t, out, "18.18%")
	assert.Contains(t, out, "Extreme Free Market")
	assert.Contains(t, out, "raw -80.00")
	assert.Contains(t, out, "█")
}

func TestRenderClassification_Secondaries(t *testing.T) {
	out := tui.RenderClassification(sampleClassification())
	assert.Contains(t, out, "Close alternatives")
	assert.Contains(t, out, "FLCSG")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "flip Governance")
}

func TestRenderClassification_ErrorsBeforeWarnings(t *testing.T) {
	out := tui.RenderClassification(sampleClassification())
	assert.Contains(t, out, "1 errors")
	assert.Contains(t, out, "1 warnings")
	assert.Less(t, strings.Index(out, "unknown axis"), strings.Index(out, "answer out of range"))
}

func TestRenderClassification_NoIssuesSection(t *testing.T) {
	c := sampleClassification()
	c.Issues = nil
	assert.NotContains(t, tui.RenderClassification(c), "Issues")
}

func TestRenderArchetypes_HighlightsCode(t *testing.T) {
	out := tui.RenderArchetypes(domain.AllArchetypes(), "ELPSG")
	assert.Contains(t, out, "32 codes")
	assert.Contains(t, out, "Utopian Cosmopolitan")
	assert.Contains(t, out, "›")
}

func TestRenderHistory(t *testing.T) {
	out := tui.RenderHistory([]domain.ResultEntry{
		{Timestamp: "2026-03-01T12:00:00Z", RespondentID: "alice", Code: "FACRN", Name: "Nationalist Patriarch"},
		{Timestamp: "2026-03-02T12:00:00Z", RespondentID: "alice", Code: "FAPRN", Name: "Civic Revivalist"},
	})
	assert.Contains(t, out, "2026-03-01")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "(was FACRN)")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No classification history found.")
}

func TestRenderComparison(t *testing.T) {
	a, b := 2, -2
	out := tui.RenderComparison(&compare.Report{
		A:             compare.Side{Code: "FACRN", Name: "Nationalist Patriarch"},
		B:             compare.Side{Code: "ELPSG", Name: "Utopian Cosmopolitan"},
		SharedLetters: 0,
		Similarity:    22.73,
		Axes: []compare.AxisDelta{
			{AxisName: "Economic", LetterA: "F", LetterB: "E", LeftPercentA: 18.18, LeftPercentB: 95.45, DeltaLeft: 77.27},
		},
		Questions: []compare.QuestionDelta{
			{QuestionID: "econ-1", Text: "The market allocates resources better than planners", AnswerA: &a, AnswerB: &b, Gap: 4},
		},
	})
	assert.Contains(t, out, "22.73% similar")
	assert.Contains(t, out, "Δ +77.27")
	assert.Contains(t, out, "econ-1")
	assert.Contains(t, out, "…")
}

func TestRenderDistribution(t *testing.T) {
	d := domain.ComputeDistribution([]string{"FACRN", "FACRN", "ELPSG", "bad"})
	out := tui.RenderDistribution(&d)
	assert.Contains(t, out, "4 results")
	assert.Contains(t, out, "1 invalid")
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "Letters")
}

func TestRenderDistribution_Empty(t *testing.T) {
	d := domain.ComputeDistribution(nil)
	assert.Contains(t, tui.RenderDistribution(&d), "No saved results.")
}

func TestRenderValidation(t *testing.T) {
	out := tui.RenderValidation(&domain.ValidationReport{
		Status:        domain.StatusFail,
		QuestionCount: 3,
		Coverage: []domain.AxisCoverage{
			{AxisName: "Economic", Left: 1, Right: 2},
			{AxisName: "Religion", Left: 0, Right: 0},
		},
		Issues: []domain.Issue{{Severity: domain.SeverityError, QuestionID: "q9", Message: "axis \"Space\" is not recognized"}},
	})
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "unversioned")
	assert.Contains(t, out, "no questions")
	assert.Contains(t, out, "q9")
}

func TestRenderValidation_Pass(t *testing.T) {
	out := tui.RenderValidation(&domain.ValidationReport{Status: domain.StatusPass, BankVersion: "2026.1"})
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "No issues found.")
}

func TestRenderBatchLine(t *testing.T) {
	assert.Contains(t, tui.RenderBatchLine("a.yaml", sampleClassification(), nil), "FACRN")
	assert.Contains(t, tui.RenderBatchLine("b.yaml", nil, errors.New("boom")), "boom")
}
