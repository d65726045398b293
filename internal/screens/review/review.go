package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizbuddy/quizbuddy/internal/router"
	"github.com/quizbuddy/quizbuddy/internal/screen"
	"github.com/quizbuddy/quizbuddy/internal/session"
	"github.com/quizbuddy/quizbuddy/internal/ui/layout"
	"github.com/quizbuddy/quizbuddy/internal/ui/theme"
)

// ReviewScreen pages through the completed attempt one question at a
// time, showing the user's pick against the correct answer with the
// explanation and source quote.
type ReviewScreen struct {
	title string
	items []session.ReviewItem
	index int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review screen over the built review items.
func New(title string, items []session.ReviewItem) *ReviewScreen {
	return &ReviewScreen{title: title, items: items}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Question"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if r.index > 0 {
			r.index--
		}
	case "right", "l":
		if r.index < len(r.items)-1 {
			r.index++
		}
	case "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	if len(r.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Nothing to review")
	}

	item := r.items[r.index]
	q := item.Question

	var b strings.Builder

	verdict := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct")
	if !item.Correct {
		verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Incorrect")
	}
	header := fmt.Sprintf("  Question %d of %d", r.index+1, len(r.items))
	headerLine := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header)
	rightPad := width - lipgloss.Width(headerLine) - lipgloss.Width(verdict) - 4
	if rightPad > 0 {
		headerLine += strings.Repeat(" ", rightPad) + verdict
	}
	b.WriteString(headerLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	textWidth := width - 8
	if textWidth < 20 {
		textWidth = 20
	}
	body := lipgloss.NewStyle().Width(textWidth).PaddingLeft(4)

	b.WriteString(body.Foreground(theme.Text).Bold(true).Render(q.Text))
	b.WriteString("\n\n")

	if item.Selected != nil {
		b.WriteString(body.Foreground(theme.Text).Render("Your answer: " + item.Selected.Text))
	} else {
		b.WriteString(body.Foreground(theme.TextDim).Render("Your answer: (none)"))
	}
	b.WriteString("\n")

	if item.CorrectAnswer != nil {
		b.WriteString(body.Foreground(theme.Success).Render("Correct answer: " + item.CorrectAnswer.Text))
		b.WriteString("\n")
	}

	// Explain the answer the user actually chose; fall back to the
	// correct one when nothing was recorded.
	explained := item.Selected
	if explained == nil {
		explained = item.CorrectAnswer
	}
	if explained != nil && explained.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(body.Foreground(theme.TextDim).Render(explained.Explanation))
		b.WriteString("\n")
	}
	if explained != nil && explained.Quote != "" {
		marker := lipgloss.NewStyle().Foreground(theme.Accent).Render("~ unverified")
		if explained.QuoteVerified {
			marker = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ found in source")
		}
		b.WriteString("\n")
		b.WriteString(body.Italic(true).Foreground(theme.TextDim).Render("“" + explained.Quote + "”"))
		b.WriteString("\n")
		b.WriteString(body.Render(marker))
		b.WriteString("\n")
	}

	return b.String()
}
