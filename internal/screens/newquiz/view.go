package newquiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizbuddy/quizbuddy/internal/ui/theme"
)

func (n *NewQuizScreen) View(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Create a quiz from a page"))
	b.WriteString("\n\n")

	switch n.stage {
	case stageInput:
		b.WriteString(center.Foreground(theme.TextDim).Render("Paste the URL of the page to study"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, n.input.View()))
		b.WriteString("\n\n")
		if n.errMsg != "" {
			b.WriteString(center.Foreground(theme.Error).Render(n.errMsg))
			b.WriteString("\n")
		}

	case stageScanning, stageGenerating:
		b.WriteString(center.Foreground(theme.Accent).Render(n.status))
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.TextDim).Render("This can take a little while"))
		b.WriteString("\n")

	case stagePickLink:
		b.WriteString(center.Foreground(theme.TextDim).Render("The page has no readable content, but links to these PDFs:"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, n.linkMenu.View()))
		b.WriteString("\n")
	}

	return b.String()
}
