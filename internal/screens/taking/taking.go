package taking

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
	"github.com/quizbuddy/quizbuddy/internal/router"
	"github.com/quizbuddy/quizbuddy/internal/screen"
	"github.com/quizbuddy/quizbuddy/internal/screens/results"
	"github.com/quizbuddy/quizbuddy/internal/session"
	"github.com/quizbuddy/quizbuddy/internal/store"
	"github.com/quizbuddy/quizbuddy/internal/ui/components"
	"github.com/quizbuddy/quizbuddy/internal/ui/layout"
)

// TakingScreen drives one quiz attempt. It owns the session state; every
// mutation goes through the session package so the ordering and selection
// rules live in one place.
type TakingScreen struct {
	svc    quiz.Service
	st     *store.Store
	quizID string
	title  string
	state  *session.State

	answers components.AnswerList
	flash   string
}

var _ screen.Screen = (*TakingScreen)(nil)
var _ screen.KeyHintProvider = (*TakingScreen)(nil)

// New creates a taking screen for an already-started session.
func New(svc quiz.Service, st *store.Store, quizID, title string, state *session.State) *TakingScreen {
	t := &TakingScreen{
		svc:    svc,
		st:     st,
		quizID: quizID,
		title:  title,
		state:  state,
	}
	t.rebuildAnswers()
	return t
}

func (t *TakingScreen) Init() tea.Cmd {
	return nil
}

func (t *TakingScreen) Title() string {
	return t.title
}

func (t *TakingScreen) KeyHints() []layout.KeyHint {
	if t.state.SubmitPending() {
		return []layout.KeyHint{
			{Key: "...", Description: "Submitting"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "←/→", Description: "Question"},
	}
	if session.IsLastQuestion(t.state) {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
	return hints
}

func (t *TakingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerSavedMsg:
		if msg.Err != nil {
			t.flash = fmt.Sprintf("Couldn't save answer: %v", msg.Err)
		}
		return t, nil

	case submitDoneMsg:
		if msg.Err != nil {
			session.FailSubmit(t.state)
			t.flash = fmt.Sprintf("Submit failed: %v", msg.Err)
			return t, nil
		}
		session.CompleteSubmit(t.state, *msg.Result)
		res := results.New(t.title, t.state, t.retakeFunc())
		return t, func() tea.Msg { return router.ReplaceScreenMsg{Screen: res} }

	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *TakingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if t.state.SubmitPending() {
		return t, nil
	}

	switch msg.String() {
	case "left", "h":
		t.flash = ""
		session.GoPrevious(t.state)
		t.rebuildAnswers()
		return t, nil

	case "right", "l":
		if err := session.GoNext(t.state); err != nil {
			if errors.Is(err, session.ErrAnswerRequired) {
				t.flash = "Choose an answer before moving on"
			}
			return t, nil
		}
		t.flash = ""
		t.rebuildAnswers()
		return t, nil

	case "s", "S":
		if !session.IsLastQuestion(t.state) {
			t.flash = "Submit is available on the last question"
			return t, nil
		}
		if err := session.Submit(t.state); err != nil {
			switch {
			case errors.Is(err, session.ErrAnswerRequired):
				t.flash = "Answer the question before submitting"
			case errors.Is(err, session.ErrSubmitInFlight):
				// already on its way
			default:
				t.flash = err.Error()
			}
			return t, nil
		}
		t.flash = ""
		return t, t.submitAttempt()
	}

	before := t.answers.SelectedOrdinal
	var cmd tea.Cmd
	t.answers, cmd = t.answers.Update(msg)
	if t.answers.SelectedOrdinal != before && t.answers.SelectedOrdinal != 0 {
		q := t.state.Current()
		if q != nil {
			session.SelectAnswer(t.state, q.ID, t.answers.SelectedOrdinal)
			t.flash = ""
			return t, tea.Batch(cmd, t.saveAnswer(q.ID, t.answers.SelectedOrdinal))
		}
	}
	return t, cmd
}

// rebuildAnswers refreshes the answer list for the current question,
// restoring any previously recorded selection by its stable ordinal.
func (t *TakingScreen) rebuildAnswers() {
	q := t.state.Current()
	if q == nil {
		t.answers = components.AnswerList{}
		return
	}
	displayed := t.state.DisplayedAnswers()
	opts := make([]quiz.Answer, len(displayed))
	for i, a := range displayed {
		opts[i] = *a
	}
	t.answers = components.NewAnswerList(q.Text, opts, t.state.Selections[q.ID])
}

// saveAnswer persists one selection in the background. A failure is
// surfaced but never blocks navigation.
func (t *TakingScreen) saveAnswer(questionID string, ordinal int) tea.Cmd {
	svc, attemptID := t.svc, t.state.AttemptID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return answerSavedMsg{Err: svc.SubmitAnswer(ctx, attemptID, questionID, ordinal)}
	}
}

func (t *TakingScreen) submitAttempt() tea.Cmd {
	svc, st := t.svc, t.st
	state := t.state
	quizID, title := t.quizID, t.title
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		res, err := svc.CompleteAttempt(ctx, state.AttemptID)
		if err != nil {
			return submitDoneMsg{Err: err}
		}
		if st != nil {
			rec := store.AttemptRecord{
				ID:             state.AttemptID,
				QuizID:         quizID,
				QuizTitle:      title,
				Score:          res.Score,
				TotalQuestions: res.TotalQuestions,
				StartedAt:      state.StartedAt,
				CompletedAt:    time.Now(),
			}
			if err := st.RecordAttempt(ctx, rec); err != nil {
				fmt.Fprintf(os.Stderr, "warning: recording attempt history: %v\n", err)
			}
		}
		return submitDoneMsg{Result: res}
	}
}

// retakeFunc builds the same quiz into a fresh attempt. It runs inside a
// results-screen command, so it may block on the backend.
func (t *TakingScreen) retakeFunc() func() (screen.Screen, error) {
	svc, st := t.svc, t.st
	quizID, title := t.quizID, t.title
	state := t.state
	return func() (screen.Screen, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		att, err := svc.StartAttempt(ctx, quizID)
		if err != nil {
			return nil, err
		}
		fresh, err := session.Retake(state, att.ID)
		if err != nil {
			return nil, err
		}
		return New(svc, st, quizID, title, fresh), nil
	}
}
