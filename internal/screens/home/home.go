package home

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizbuddy/quizbuddy/internal/messenger"
	"github.com/quizbuddy/quizbuddy/internal/quiz"
	"github.com/quizbuddy/quizbuddy/internal/router"
	"github.com/quizbuddy/quizbuddy/internal/screen"
	"github.com/quizbuddy/quizbuddy/internal/screens/history"
	"github.com/quizbuddy/quizbuddy/internal/screens/newquiz"
	"github.com/quizbuddy/quizbuddy/internal/session"
	"github.com/quizbuddy/quizbuddy/internal/store"
	"github.com/quizbuddy/quizbuddy/internal/ui/components"
	"github.com/quizbuddy/quizbuddy/internal/ui/theme"
)

// HomeScreen is the entry screen: start a quiz, browse attempt history,
// or quit.
type HomeScreen struct {
	menu     components.Menu
	user     *quiz.User
	attempts int
	lastPct  int
	hasLast  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. user is nil when running the local
// backend without a login.
func New(svc quiz.Service, st *store.Store, bus *messenger.Bus, user *quiz.User) *HomeScreen {
	h := &HomeScreen{user: user}

	var staged *quiz.Fragment
	if st != nil {
		if recent, err := st.History(context.Background(), 10); err == nil {
			h.attempts = len(recent)
			if len(recent) > 0 {
				h.lastPct = session.Percent(recent[0].Score, recent[0].TotalQuestions)
				h.hasLast = true
			}
		}
		if frag, err := st.PendingFragment(context.Background()); err == nil {
			staged = &frag
		}
	}

	var items []components.MenuItem
	if staged != nil {
		frag := *staged
		label := frag.Label
		if label == "" {
			label = frag.Locator
		}
		items = append(items, components.MenuItem{
			Label: "Resume: " + label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					// The staged copy is consumed now; a failed clear
					// only means it is offered again next launch.
					if err := st.ClearPendingFragment(context.Background()); err != nil {
						fmt.Fprintf(os.Stderr, "warning: failed to clear staged content: %v\n", err)
					}
					return router.PushScreenMsg{Screen: newquiz.NewFromFragment(svc, st, bus, frag)}
				}
			},
		})
	}

	items = append(items, []components.MenuItem{
		{Label: "New Quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newquiz.New(svc, st, bus)}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		}, Disabled: st == nil},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}...)
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("QuizBuddy"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Turn any page into a quiz"))
	b.WriteString("\n\n")

	if h.user != nil {
		b.WriteString(center.Foreground(theme.Secondary).Render("Signed in as " + h.user.Email))
		b.WriteString("\n\n")
	}

	if h.attempts > 0 {
		stats := fmt.Sprintf("Recent attempts: %d", h.attempts)
		if h.hasLast {
			stats += fmt.Sprintf("        Last score: %d%%", h.lastPct)
		}
		b.WriteString(center.Foreground(theme.Text).Render(stats))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
