package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
	"github.com/quizbuddy/quizbuddy/internal/ui/theme"
)

// AnswerList presents one question's answers in their session display
// order. The highlighted row follows the cursor; the chosen answer is
// tracked by its stable ordinal, so re-shuffles never move a selection.
type AnswerList struct {
	Question        string
	Options         []quiz.Answer
	Highlight       int
	SelectedOrdinal int // 0 means nothing chosen yet
}

// NewAnswerList creates an answer list. selected is the previously
// recorded ordinal for this question, or 0.
func NewAnswerList(question string, options []quiz.Answer, selected int) AnswerList {
	highlight := 0
	for i, opt := range options {
		if selected != 0 && opt.Ordinal == selected {
			highlight = i
		}
	}
	return AnswerList{
		Question:        question,
		Options:         options,
		Highlight:       highlight,
		SelectedOrdinal: selected,
	}
}

// Init returns nil.
func (a AnswerList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and choosing.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.Highlight > 0 {
			a.Highlight--
		}
	case "down", "j":
		if a.Highlight < len(a.Options)-1 {
			a.Highlight++
		}
	case "enter", " ", "space":
		if a.Highlight >= 0 && a.Highlight < len(a.Options) {
			a.SelectedOrdinal = a.Options[a.Highlight].Ordinal
		}
	}

	return a, nil
}

// View renders the question and its options.
func (a AnswerList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Question) + "\n\n"

	labels := "ABCDEFGH"
	for i, opt := range a.Options {
		label := "?"
		if i < len(labels) {
			label = string(labels[i])
		}

		cursor := "  "
		if i == a.Highlight {
			cursor = "▸ "
		}
		mark := "( )"
		if opt.Ordinal == a.SelectedOrdinal && a.SelectedOrdinal != 0 {
			mark = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", cursor, mark, label, opt.Text)

		switch {
		case opt.Ordinal == a.SelectedOrdinal && a.SelectedOrdinal != 0:
			s += theme.Selected.Render(line) + "\n"
		case i == a.Highlight:
			s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
