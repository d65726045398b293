package newquiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizbuddy/quizbuddy/internal/content"
	"github.com/quizbuddy/quizbuddy/internal/messenger"
	"github.com/quizbuddy/quizbuddy/internal/quiz"
	"github.com/quizbuddy/quizbuddy/internal/router"
	"github.com/quizbuddy/quizbuddy/internal/screen"
	"github.com/quizbuddy/quizbuddy/internal/screens/taking"
	"github.com/quizbuddy/quizbuddy/internal/session"
	"github.com/quizbuddy/quizbuddy/internal/store"
	"github.com/quizbuddy/quizbuddy/internal/ui/components"
	"github.com/quizbuddy/quizbuddy/internal/ui/layout"
)

type stage int

const (
	stageInput stage = iota
	stageScanning
	stagePickLink
	stageGenerating
)

// scanDoneMsg carries the page scan result back from the worker bus.
type scanDoneMsg struct {
	Scan *content.PageScan
	Err  error
}

// quizReadyMsg carries a generated quiz with its question set and an
// open attempt, ready to hand to the taking screen.
type quizReadyMsg struct {
	Quiz      *quiz.Quiz
	Questions []quiz.Question
	Attempt   *quiz.Attempt
	Err       error
}

// NewQuizScreen collects a URL, extracts its content through the worker
// bus, and builds a quiz out of it. When the page itself has nothing to
// quiz on but links to PDFs, the user picks one of those instead.
type NewQuizScreen struct {
	svc quiz.Service
	st  *store.Store
	bus *messenger.Bus

	input    components.TextInput
	linkMenu components.Menu
	links    []content.Link

	// staged is a fragment handed over from an earlier background
	// scan; when set, Init skips the URL prompt and generates from it.
	staged *quiz.Fragment

	stage  stage
	status string
	errMsg string
}

var _ screen.Screen = (*NewQuizScreen)(nil)
var _ screen.KeyHintProvider = (*NewQuizScreen)(nil)

// New creates the quiz-creation screen.
func New(svc quiz.Service, st *store.Store, bus *messenger.Bus) *NewQuizScreen {
	return &NewQuizScreen{
		svc:   svc,
		st:    st,
		bus:   bus,
		input: components.NewTextInput("https://example.com/article", 60),
	}
}

// NewFromFragment creates the screen already generating from a staged
// fragment, skipping the URL prompt.
func NewFromFragment(svc quiz.Service, st *store.Store, bus *messenger.Bus, frag quiz.Fragment) *NewQuizScreen {
	n := New(svc, st, bus)
	n.staged = &frag
	return n
}

func (n *NewQuizScreen) Init() tea.Cmd {
	if n.staged != nil {
		frag := *n.staged
		n.staged = nil
		_, cmd := n.startGenerating(frag)
		return cmd
	}
	return n.input.Init()
}

func (n *NewQuizScreen) Title() string {
	return "New Quiz"
}

func (n *NewQuizScreen) KeyHints() []layout.KeyHint {
	switch n.stage {
	case stagePickLink:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Use PDF"},
			{Key: "Esc", Description: "Cancel"},
		}
	case stageScanning, stageGenerating:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
}

func (n *NewQuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scanDoneMsg:
		return n.handleScanDone(msg)

	case quizReadyMsg:
		return n.handleQuizReady(msg)

	case tea.KeyMsg:
		return n.handleKey(msg)
	}
	return n, nil
}

func (n *NewQuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch n.stage {
	case stageInput:
		if msg.String() == "enter" {
			rawURL := normalizeURL(n.input.Value())
			if rawURL == "" {
				n.errMsg = "Enter a page URL first"
				return n, nil
			}
			n.stage = stageScanning
			n.status = "Fetching and extracting the page..."
			n.errMsg = ""
			return n, n.scanPage(rawURL)
		}
		var cmd tea.Cmd
		n.input, cmd = n.input.Update(msg)
		return n, cmd

	case stagePickLink:
		var cmd tea.Cmd
		n.linkMenu, cmd = n.linkMenu.Update(msg)
		return n, cmd
	}
	return n, nil
}

func (n *NewQuizScreen) handleScanDone(msg scanDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		n.stage = stageInput
		n.errMsg = fmt.Sprintf("Couldn't read the page: %v", msg.Err)
		return n, nil
	}
	scan := msg.Scan

	if !scan.Fragment.Empty() {
		return n.startGenerating(scan.Fragment)
	}

	if len(scan.PDFLinks) > 0 {
		n.links = scan.PDFLinks
		items := make([]components.MenuItem, 0, len(scan.PDFLinks))
		for _, link := range scan.PDFLinks {
			link := link
			label := strings.TrimSpace(link.Text)
			if label == "" {
				label = link.Href
			}
			items = append(items, components.MenuItem{
				Label:  label,
				Action: func() tea.Cmd { return n.pickLink(link) },
			})
		}
		n.linkMenu = components.NewMenu(items)
		n.stage = stagePickLink
		n.status = ""
		return n, nil
	}

	n.stage = stageInput
	if len(scan.WordLinks) > 0 {
		n.errMsg = fmt.Sprintf("Nothing quizzable on that page; it links to %d Word document(s), but only pages and PDFs are supported", len(scan.WordLinks))
	} else {
		n.errMsg = "Nothing quizzable on that page, and no linked PDFs either"
	}
	return n, nil
}

func (n *NewQuizScreen) pickLink(link content.Link) tea.Cmd {
	frag := quiz.Fragment{
		Kind:    quiz.ContentPDF,
		Locator: link.Href,
		Label:   strings.TrimSpace(link.Text),
	}
	_, cmd := n.startGenerating(frag)
	return cmd
}

func (n *NewQuizScreen) startGenerating(frag quiz.Fragment) (screen.Screen, tea.Cmd) {
	n.stage = stageGenerating
	n.errMsg = ""
	if frag.Kind == quiz.ContentPDF {
		n.status = "Reading the PDF and generating questions..."
	} else {
		n.status = "Generating questions..."
	}
	return n, n.buildQuiz(frag)
}

func (n *NewQuizScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		n.stage = stageInput
		n.errMsg = fmt.Sprintf("Couldn't create the quiz: %v", msg.Err)
		return n, nil
	}
	state, err := session.Start(msg.Questions, msg.Attempt.ID)
	if err != nil {
		n.stage = stageInput
		n.errMsg = fmt.Sprintf("Quiz came back unusable: %v", err)
		return n, nil
	}
	tk := taking.New(n.svc, n.st, msg.Quiz.ID, msg.Quiz.Name, state)
	return n, func() tea.Msg { return router.ReplaceScreenMsg{Screen: tk} }
}

// scanPage runs the extraction through the worker bus so the page work
// happens off the UI loop, the same path the page workers use.
func (n *NewQuizScreen) scanPage(rawURL string) tea.Cmd {
	bus := n.bus
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		reply, err := bus.Request(ctx, messenger.ActionExtractPage, rawURL)
		if err != nil {
			return scanDoneMsg{Err: err}
		}
		scan, ok := reply.(*content.PageScan)
		if !ok {
			return scanDoneMsg{Err: fmt.Errorf("unexpected reply %T from page worker", reply)}
		}
		return scanDoneMsg{Scan: scan}
	}
}

func (n *NewQuizScreen) buildQuiz(frag quiz.Fragment) tea.Cmd {
	svc := n.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		qz, err := svc.CreateQuiz(ctx, frag)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		questions, err := svc.Questions(ctx, qz.ID)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		att, err := svc.StartAttempt(ctx, qz.ID)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		return quizReadyMsg{Quiz: qz, Questions: questions, Attempt: att}
	}
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	return raw
}
