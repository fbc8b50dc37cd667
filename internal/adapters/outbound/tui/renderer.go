package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abdidvp/polaxis/internal/domain"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	leftPole  = lipgloss.Color("#3B82F6") // blue
	rightPole = lipgloss.Color("#F97316") // orange
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	strengthColors = map[domain.PositionStrength]lipgloss.Color{
		domain.StrengthLeaning:   info,
		domain.StrengthInclined:  lipgloss.Color("#A3E635"), // lime
		domain.StrengthCommitted: warning,
		domain.StrengthExtreme:   danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	codeStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	leftStyle     = lipgloss.NewStyle().Foreground(leftPole)
	rightStyle    = lipgloss.NewStyle().Foreground(rightPole)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

const barWidth = 24

// RenderClassification formats a full classification for terminal output.
func RenderClassification(c *domain.Classification) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("polaxis")
	code := codeStyle.Render(c.Code)
	name := titleStyle.Render(c.Name)
	answered := dimStyle.Render(fmt.Sprintf("%d of %d questions answered", c.AnsweredCount, c.QuestionCount))

	header := title + "\n\n" + code + "  " + name + "\n" + answered
	if len(c.Traits) > 0 {
		header += "\n" + dimStyle.Render(strings.Join(c.Traits, " · "))
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	// ── Axes ──
	labelWidth := 0
	for _, r := range c.Axes {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.LeftLabel))
	}
	for _, r := range c.Axes {
		renderAxis(&b, r, labelWidth)
	}

	// ── Secondaries ──
	if len(c.Secondaries) > 0 {
		b.WriteString("\n  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Close alternatives") + "\n\n")
		for _, s := range c.Secondaries {
			fmt.Fprintf(&b, "    %s  %s  %s  %s\n",
				codeStyle.Render(s.Code),
				padRight(s.Name, 28),
				lipgloss.NewStyle().Foreground(matchColor(s.MatchPercent)).Render(fmt.Sprintf("%3d%%", s.MatchPercent)),
				faintStyle.Render("flip "+s.FlippedAxis),
			)
		}
	}

	renderIssues(&b, c.Issues)
	b.WriteString("\n")
	return b.String()
}

func renderAxis(b *strings.Builder, r domain.AxisResult, labelWidth int) {
	fmt.Fprintf(b, "  %s\n", titleStyle.Render(r.AxisName))

	strength := lipgloss.NewStyle().
		Foreground(strengthColor(r.PositionStrength)).
		Render(fmt.Sprintf("%s %s", r.PositionStrength, r.UserPosition))

	fmt.Fprintf(b, "    %s %s %s  %s\n",
		leftStyle.Render(padLeft(r.LeftLabel, labelWidth)),
		splitBar(r.LeftPercent, barWidth),
		rightStyle.Render(r.RightLabel),
		strength,
	)
	fmt.Fprintf(b, "    %s %s  %s\n",
		strings.Repeat(" ", labelWidth),
		dimStyle.Render(fmt.Sprintf("%6.2f%% / %6.2f%%", r.LeftPercent, r.RightPercent)),
		faintStyle.Render(fmt.Sprintf("raw %+.2f  %d/%d answered", r.RawNormalized, r.Aggregate.Answered, r.Aggregate.Questions)),
	)
}

// splitBar draws the left share in the left pole color and the rest in the
// right pole color.
func splitBar(leftPercent float64, width int) string {
	left := int(math.Round(leftPercent * float64(width) / 100))
	left = max(0, min(left, width))
	return leftStyle.Render(strings.Repeat("█", left)) +
		rightStyle.Render(strings.Repeat("█", width-left))
}

func renderIssues(b *strings.Builder, issues []domain.Issue) {
	if len(issues) == 0 {
		return
	}
	sorted := append([]domain.Issue(nil), issues...)
	sortBySeverity(sorted)

	errorCount, warnCount, infoCount := countSeverities(sorted)
	b.WriteString("\n  " + separatorLine + "\n\n")
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if errorCount > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errorCount)))
		b.WriteString("  ")
	}
	if warnCount > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnCount)))
		b.WriteString("  ")
	}
	if infoCount > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", infoCount)))
	}
	b.WriteString("\n\n")

	for _, issue := range sorted {
		renderIssue(b, issue)
	}
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := severityTag(issue.Severity)
	if issue.QuestionID != "" {
		fmt.Fprintf(b, "    %s %s  %s\n", tag, dimStyle.Render(issue.QuestionID), dimStyle.Render(issue.Message))
		return
	}
	fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render(issue.Message))
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func countSeverities(issues []domain.Issue) (errors, warnings, infos int) {
	for _, i := range issues {
		switch i.Severity {
		case domain.SeverityError:
			errors++
		case domain.SeverityWarning:
			warnings++
		default:
			infos++
		}
	}
	return
}

func sortBySeverity(issues []domain.Issue) {
	order := map[string]int{
		domain.SeverityError:   0,
		domain.SeverityWarning: 1,
		domain.SeverityInfo:    2,
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return order[issues[i].Severity] < order[issues[j].Severity]
	})
}

func strengthColor(s domain.PositionStrength) lipgloss.Color {
	if c, ok := strengthColors[s]; ok {
		return c
	}
	return fg
}

func matchColor(pct int) lipgloss.Color {
	switch {
	case pct >= 90:
		return success
	case pct >= 75:
		return lipgloss.Color("#A3E635") // lime
	default:
		return warning
	}
}

// padRight and padLeft measure display width so labels with wide runes
// still line up.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// RenderArchetypes lists the archetype table, marking highlight when set.
func RenderArchetypes(archetypes []domain.Archetype, highlight string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Archetypes") + "  " + dimStyle.Render(fmt.Sprintf("%d codes", len(archetypes))) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, a := range archetypes {
		marker := " "
		name := padRight(a.Name, 28)
		if a.Code == highlight {
			marker = codeStyle.Render("›")
			name = titleStyle.Render(name)
		}
		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			marker,
			codeStyle.Render(a.Code),
			name,
			faintStyle.Render(strings.Join(a.Traits, " · ")),
		)
	}
	return b.String()
}

// RenderHistory formats the local classification log for terminal output.
func RenderHistory(entries []domain.ResultEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No classification history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Classification History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}
		who := e.RespondentID
		if who == "" {
			who = "·"
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(padRight(who, 12)),
			codeStyle.Render(e.Code),
			e.Name,
		)
		if i > 0 && entries[i-1].Code != e.Code {
			line += "  " + dimStyle.Render("(was "+entries[i-1].Code+")")
		}

		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
