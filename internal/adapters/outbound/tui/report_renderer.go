package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/abdidvp/polaxis/internal/domain/compare"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

const questionTextWidth = 44

// RenderComparison renders two classifications side by side.
func RenderComparison(r *compare.Report) string {
	var b strings.Builder

	headline := codeStyle.Render(r.A.Code) + " " + titleStyle.Render(r.A.Name) +
		dimStyle.Render("  vs  ") +
		codeStyle.Render(r.B.Code) + " " + titleStyle.Render(r.B.Name)
	summary := dimStyle.Render(fmt.Sprintf("%d/%d letters shared  ·  %.2f%% similar",
		r.SharedLetters, len(r.Axes), r.Similarity))
	b.WriteString(boxStyle.Render(headline + "\n" + summary))
	b.WriteString("\n\n")

	b.WriteString("  " + sectionHeaderStyle.Render("Axes") + "\n")
	for _, d := range r.Axes {
		mark := passStyle.Render("=")
		if !d.SameSide {
			mark = failStyle.Render("≠")
		}
		fmt.Fprintf(&b, "    %s %s  %s %6.2f%%  %s %6.2f%%  %s\n",
			mark,
			padRight(d.AxisName, 14),
			codeStyle.Render(d.LetterA), d.LeftPercentA,
			codeStyle.Render(d.LetterB), d.LeftPercentB,
			faintStyle.Render(fmt.Sprintf("Δ %+.2f", d.DeltaLeft)),
		)
	}

	var split []compare.QuestionDelta
	for _, q := range r.Questions {
		if q.Both() && !q.Agreement {
			split = append(split, q)
		}
	}
	b.WriteString("\n  " + sectionHeaderStyle.Render("Disagreements") + "\n")
	if len(split) == 0 {
		b.WriteString("    " + hintStyle.Render("none") + "\n")
	}
	for _, q := range split {
		text := q.Text
		if text == "" {
			text = q.QuestionID
		}
		fmt.Fprintf(&b, "    %s  %s  %+d %+d\n",
			dimStyle.Render(padRight(q.QuestionID, 10)),
			runewidth.FillRight(runewidth.Truncate(text, questionTextWidth, "…"), questionTextWidth),
			*q.AnswerA, *q.AnswerB,
		)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderDistribution renders archetype and letter shares of saved results.
func RenderDistribution(d *domain.Distribution) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Distribution") + "  " +
		dimStyle.Render(fmt.Sprintf("%d results", d.Total)))
	if d.Invalid > 0 {
		b.WriteString("  " + warnTagStyle.Render(fmt.Sprintf("%d invalid", d.Invalid)))
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	if d.Total == 0 {
		b.WriteString("  " + dimStyle.Render("No saved results.") + "\n")
		return b.String()
	}

	b.WriteString("  " + sectionHeaderStyle.Render("Archetypes") + "\n")
	for _, c := range d.Codes {
		fmt.Fprintf(&b, "    %s  %s %s  %s\n",
			codeStyle.Render(c.Code),
			padRight(c.Name, 28),
			shareBar(c.Percent, 20),
			dimStyle.Render(fmt.Sprintf("%4d  %6.2f%%", c.Count, c.Percent)),
		)
	}

	b.WriteString("\n  " + sectionHeaderStyle.Render("Letters") + "\n")
	for _, l := range d.Letters {
		fmt.Fprintf(&b, "    %s  %s %s %s  %s\n",
			padRight(l.AxisName, 14),
			leftStyle.Render(l.LeftLetter),
			splitBar(l.LeftPercent, barWidth),
			rightStyle.Render(l.RightLetter),
			dimStyle.Render(fmt.Sprintf("%6.2f%% / %6.2f%%", l.LeftPercent, l.RightPercent)),
		)
	}
	b.WriteString("\n")
	return b.String()
}

func shareBar(percent float64, width int) string {
	filled := max(0, min(int(percent*float64(width)/100), width))
	return lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", width-filled))
}

// RenderValidation renders a question bank validation report.
func RenderValidation(r *domain.ValidationReport) string {
	var b strings.Builder

	status := passStyle.Bold(true).Render("PASS")
	if r.Status != domain.StatusPass {
		status = failStyle.Bold(true).Render("FAIL")
	}
	version := r.BankVersion
	if version == "" {
		version = "unversioned"
	}
	b.WriteString(boxStyle.Render(
		titleStyle.Render("Question bank") + "  " + status + "\n" +
			dimStyle.Render(fmt.Sprintf("%d questions  ·  %s", r.QuestionCount, version))))
	b.WriteString("\n\n")

	b.WriteString("  " + sectionHeaderStyle.Render("Coverage") + "\n")
	for _, c := range r.Coverage {
		count := dimStyle.Render(fmt.Sprintf("%2d left  %2d right", c.Left, c.Right))
		if c.Left+c.Right == 0 {
			count = warnTagStyle.Render("no questions")
		}
		fmt.Fprintf(&b, "    %s  %s\n", padRight(c.AxisName, 14), count)
	}

	if len(r.Issues) == 0 {
		b.WriteString("\n  " + passStyle.Render("No issues found.") + "\n\n")
		return b.String()
	}
	renderIssues(&b, r.Issues)
	b.WriteString("\n")
	return b.String()
}

// RenderBatchLine is one row of a batch run summary.
func RenderBatchLine(path string, c *domain.Classification, err error) string {
	if err != nil {
		return fmt.Sprintf("  %s  %s  %s\n", failStyle.Render("✗"), padRight(path, 32), dimStyle.Render(err.Error()))
	}
	return fmt.Sprintf("  %s  %s  %s  %s\n", passStyle.Render("✓"), padRight(path, 32), codeStyle.Render(c.Code), c.Name)
}
