package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizbuddy/quizbuddy/internal/router"
	"github.com/quizbuddy/quizbuddy/internal/screen"
	"github.com/quizbuddy/quizbuddy/internal/screens/review"
	"github.com/quizbuddy/quizbuddy/internal/session"
	"github.com/quizbuddy/quizbuddy/internal/ui/components"
	"github.com/quizbuddy/quizbuddy/internal/ui/layout"
	"github.com/quizbuddy/quizbuddy/internal/ui/theme"
)

// retakeFailedMsg reports that a retake attempt could not be opened.
type retakeFailedMsg struct {
	Err error
}

// ResultsScreen shows the attempt's score and offers review, retake or
// going home. The retake callback is supplied by the taking screen so
// the two packages stay decoupled.
type ResultsScreen struct {
	title    string
	state    *session.State
	retake   func() (screen.Screen, error)
	menu     components.Menu
	retaking bool
	errMsg   string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a completed session.
func New(title string, state *session.State, retake func() (screen.Screen, error)) *ResultsScreen {
	r := &ResultsScreen{
		title:  title,
		state:  state,
		retake: retake,
	}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "Review Answers", Action: r.openReview},
		{Label: "Retake Quiz", Action: r.startRetake, Disabled: retake == nil},
		{Label: "Home", Action: r.goHome},
	})
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case retakeFailedMsg:
		r.retaking = false
		r.errMsg = fmt.Sprintf("Couldn't start a new attempt: %v", msg.Err)
		return r, nil

	case tea.KeyMsg:
		if r.retaking {
			return r, nil
		}
		var cmd tea.Cmd
		r.menu, cmd = r.menu.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *ResultsScreen) openReview() tea.Cmd {
	rev := review.New(r.title, session.BuildReview(r.state))
	return func() tea.Msg { return router.PushScreenMsg{Screen: rev} }
}

func (r *ResultsScreen) startRetake() tea.Cmd {
	r.retaking = true
	r.errMsg = ""
	retake := r.retake
	return func() tea.Msg {
		s, err := retake()
		if err != nil {
			return retakeFailedMsg{Err: err}
		}
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func (r *ResultsScreen) goHome() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (r *ResultsScreen) View(width, height int) string {
	state := r.state
	pct := session.Percent(state.Score, state.TotalQuestions)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(r.title))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if pct < 50 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		scoreStyle.Render(fmt.Sprintf("Score: %d/%d (%d%%)", state.Score, state.TotalQuestions, pct))))
	b.WriteString("\n\n")

	if r.retaking {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Starting a new attempt..."))
		b.WriteString("\n\n")
	}
	if r.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(r.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.menu.View()))

	return b.String()
}
