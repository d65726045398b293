package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizbuddy/quizbuddy/internal/api"
	"github.com/quizbuddy/quizbuddy/internal/config"
	"github.com/quizbuddy/quizbuddy/internal/llm"
	"github.com/quizbuddy/quizbuddy/internal/pdftext"
	"github.com/quizbuddy/quizbuddy/internal/quiz"
	"github.com/quizbuddy/quizbuddy/internal/quizgen"
	"github.com/quizbuddy/quizbuddy/internal/store"
	"github.com/spf13/cobra"
)

// loadConfig reads settings, honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// buildService picks the quiz backend: the remote API when one is
// configured, otherwise local LLM generation. The returned user is nil
// for the local backend.
func buildService(ctx context.Context, cmd *cobra.Command, st *store.Store) (quiz.Service, *quiz.User, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	if cfg.UseRemote() {
		return buildRemote(ctx, cfg, st)
	}
	svc, err := buildLocal(ctx, cfg, st)
	return svc, nil, err
}

func buildRemote(ctx context.Context, cfg *config.Config, st *store.Store) (quiz.Service, *quiz.User, error) {
	token := cfg.API.Token
	if token == "" && st != nil {
		stored, err := st.Token(ctx)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, nil, fmt.Errorf("load stored token: %w", err)
		}
		token = stored
	}
	if token == "" {
		return nil, nil, fmt.Errorf("remote backend needs a token: run `quizbuddy login` or set api.token")
	}

	client := api.New(cfg.API.BaseURL, token)
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("verify login: %w", err)
	}
	return client, user, nil
}

func buildLocal(ctx context.Context, cfg *config.Config, st *store.Store) (quiz.Service, error) {
	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no backend available: set api.base_url for remote quizzes, or an LLM API key for local generation")
		}
		llmCfg = discovered
	}

	var logger llm.RequestLogger
	if st != nil {
		logger = st
	}
	provider, err := llm.NewProvider(ctx, llmCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build LLM provider: %w", err)
	}

	genCfg := quizgen.DefaultConfig()
	if cfg.Questions > 0 {
		genCfg.NumQuestions = cfg.Questions
	}
	gen := quizgen.New(provider, genCfg)
	return quizgen.NewLocalService(gen, pdftext.New()), nil
}
