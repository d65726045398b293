package taking

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizbuddy/quizbuddy/internal/session"
	"github.com/quizbuddy/quizbuddy/internal/ui/components"
	"github.com/quizbuddy/quizbuddy/internal/ui/theme"
)

func (t *TakingScreen) View(width, height int) string {
	state := t.state
	q := state.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions to show")
	}

	var b strings.Builder

	answered := 0
	for i := range state.Questions {
		if state.Answered(state.Questions[i].ID) {
			answered++
		}
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", state.CurrentIndex+1, len(state.Questions)))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d answered", answered))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	barWidth := width - 8
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth > 0 {
		pct := float64(answered) / float64(len(state.Questions))
		bar := components.NewProgressBar("", pct, false, barWidth)
		b.WriteString("  " + bar.View())
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(t.answers.View()))
	b.WriteString("\n")

	switch {
	case state.SubmitPending():
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Submitting answers..."))
	case t.flash != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(t.flash))
	case session.IsLastQuestion(state) && state.Answered(q.ID):
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("Press S to submit the quiz"))
	}

	return b.String()
}
