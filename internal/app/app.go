package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizbuddy/quizbuddy/internal/content"
	"github.com/quizbuddy/quizbuddy/internal/messenger"
	"github.com/quizbuddy/quizbuddy/internal/quiz"
	"github.com/quizbuddy/quizbuddy/internal/router"
	"github.com/quizbuddy/quizbuddy/internal/screen"
	"github.com/quizbuddy/quizbuddy/internal/screens/home"
	"github.com/quizbuddy/quizbuddy/internal/store"
	"github.com/quizbuddy/quizbuddy/internal/ui/layout"
)

// Options carries the wired-up collaborators for a TUI run.
type Options struct {
	Store   *store.Store
	Service quiz.Service
	Fetcher *content.Fetcher
	Bus     *messenger.Bus

	// User is the signed-in account, nil for the local backend.
	User *quiz.User
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	user   *quiz.User
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Service, opts.Store, opts.Bus, opts.User)
	return AppModel{
		router: router.New(homeScreen),
		user:   opts.User,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	email := ""
	if m.user != nil {
		email = m.user.Email
	}
	header := layout.RenderHeader(title, email, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// RegisterWorkers wires the page and background handlers onto the bus.
// The extraction pipeline runs through these so screen code never
// touches the network directly.
func RegisterWorkers(bus *messenger.Bus, fetcher *content.Fetcher, st *store.Store) error {
	if err := bus.Register(messenger.ActionExtractPage, func(ctx context.Context, payload any) (any, error) {
		rawURL, ok := payload.(string)
		if !ok {
			return nil, fmt.Errorf("extract-page wants a URL string, got %T", payload)
		}
		scan, err := fetcher.Scan(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		if !scan.Fragment.Empty() {
			// Notify the background worker; a failure to persist the
			// pending fragment never fails the extraction itself.
			if _, err := bus.Request(ctx, messenger.ActionContentReady, scan.Fragment); err != nil {
				fmt.Fprintf(os.Stderr, "warning: content-ready: %v\n", err)
			}
		}
		return scan, nil
	}); err != nil {
		return err
	}

	if err := bus.Register(messenger.ActionFindLinks, func(ctx context.Context, payload any) (any, error) {
		page, ok := payload.(*content.Page)
		if !ok {
			return nil, fmt.Errorf("find-links wants a page, got %T", payload)
		}
		return content.FindLinks(page.Doc, content.PDFLink), nil
	}); err != nil {
		return err
	}

	if err := bus.Register(messenger.ActionMarkLinks, func(ctx context.Context, payload any) (any, error) {
		page, ok := payload.(*content.Page)
		if !ok {
			return nil, fmt.Errorf("mark-links wants a page, got %T", payload)
		}
		return content.MarkLinks(page.Doc, content.PDFLink), nil
	}); err != nil {
		return err
	}

	return bus.Register(messenger.ActionContentReady, func(ctx context.Context, payload any) (any, error) {
		frag, ok := payload.(quiz.Fragment)
		if !ok {
			return nil, fmt.Errorf("content-ready wants a fragment, got %T", payload)
		}
		if st == nil {
			return nil, nil
		}
		return nil, st.SavePendingFragment(ctx, frag)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Bus != nil && opts.Fetcher != nil {
		if err := RegisterWorkers(opts.Bus, opts.Fetcher, opts.Store); err != nil {
			return err
		}
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
