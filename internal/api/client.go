// Package api is the remote quiz backend client. Every response uses a
// {success, data, error} envelope; every failure surfaces as a
// *quiz.CollaboratorError and is fatal only to the current step.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/imroc/req/v3"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// Client talks to the remote quiz API with a bearer token.
type Client struct {
	http *req.Client
}

// New creates a Client for the API at baseURL. token may be empty for
// unauthenticated calls such as Login.
func New(baseURL, token string) *Client {
	c := req.C().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second).
		SetUserAgent("quizbuddy/1.0")
	if token != "" {
		c.SetCommonBearerAuthToken(token)
	}
	return &Client{http: c}
}

var _ quiz.Service = (*Client)(nil)

// envelope is the API's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// call performs one request and decodes the envelope's data into out
// (which may be nil when no payload is expected).
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	r := c.http.R().SetContext(ctx)
	if body != nil {
		r.SetBodyJsonMarshal(body)
	}

	resp, err := r.Send(method, path)
	if err != nil {
		return &quiz.CollaboratorError{Kind: quiz.KindTransport, Op: op, Err: err}
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &quiz.CollaboratorError{
			Kind: quiz.KindAuth, Op: op,
			Err: fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	var env envelope
	if err := json.Unmarshal(resp.Bytes(), &env); err != nil {
		return &quiz.CollaboratorError{
			Kind: quiz.KindRemote, Op: op,
			Err: fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err),
		}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &quiz.CollaboratorError{Kind: quiz.KindRemote, Op: op, Err: fmt.Errorf("%s", msg)}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &quiz.CollaboratorError{
				Kind: quiz.KindRemote, Op: op,
				Err: fmt.Errorf("decoding payload: %w", err),
			}
		}
	}
	return nil
}

// CreateQuiz submits extracted content for server-side generation.
func (c *Client) CreateQuiz(ctx context.Context, frag quiz.Fragment) (*quiz.Quiz, error) {
	var q quiz.Quiz
	if err := c.call(ctx, "create-quiz", http.MethodPost, "/quiz/create", frag, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Quiz fetches a single quiz's metadata.
func (c *Client) Quiz(ctx context.Context, quizID string) (*quiz.Quiz, error) {
	var q quiz.Quiz
	if err := c.call(ctx, "quiz", http.MethodGet, "/quiz/"+quizID, nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// UserQuizzes lists quizzes created by the signed-in user.
func (c *Client) UserQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	var qs []quiz.Quiz
	if err := c.call(ctx, "user-quizzes", http.MethodGet, "/quiz/user", nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// Questions fetches a quiz's full question set.
func (c *Client) Questions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	var qs []quiz.Question
	if err := c.call(ctx, "questions", http.MethodGet, "/quiz/"+quizID+"/questions", nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// StartAttempt opens a new attempt for the quiz.
func (c *Client) StartAttempt(ctx context.Context, quizID string) (*quiz.Attempt, error) {
	body := map[string]string{"quizId": quizID}
	var att quiz.Attempt
	if err := c.call(ctx, "start-attempt", http.MethodPost, "/quiz-attempt/start", body, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

// SubmitAnswer records one answer selection by its stable ordinal.
func (c *Client) SubmitAnswer(ctx context.Context, attemptID, questionID string, ordinal int) error {
	body := map[string]any{
		"attemptId":    attemptID,
		"questionId":   questionID,
		"answerNumber": ordinal,
	}
	return c.call(ctx, "submit-answer", http.MethodPost, "/quiz-attempt/answer", body, nil)
}

// CompleteAttempt closes the attempt and returns the score.
func (c *Client) CompleteAttempt(ctx context.Context, attemptID string) (*quiz.Result, error) {
	var res quiz.Result
	if err := c.call(ctx, "complete-attempt", http.MethodPost, "/quiz-attempt/"+attemptID+"/complete", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CurrentUser returns the account the token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*quiz.User, error) {
	var u quiz.User
	if err := c.call(ctx, "current-user", http.MethodGet, "/user/current", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Credentials is the payload returned by Login.
type Credentials struct {
	Token string    `json:"token"`
	User  quiz.User `json:"user"`
}

// Login exchanges an identity-provider token for an API bearer token.
func (c *Client) Login(ctx context.Context, idToken string) (*Credentials, error) {
	body := map[string]string{"idToken": idToken}
	var creds Credentials
	if err := c.call(ctx, "login", http.MethodPost, "/auth/google", body, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}
