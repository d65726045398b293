package cmd

import (
	"github.com/quizbuddy/quizbuddy/internal/app"
	"github.com/quizbuddy/quizbuddy/internal/content"
	"github.com/quizbuddy/quizbuddy/internal/messenger"
	"github.com/quizbuddy/quizbuddy/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizbuddy",
	Short: "Turn web pages into multiple-choice quizzes",
	Long:  "QuizBuddy — extract the readable content of a page (or a linked PDF) and quiz yourself on it in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZBUDDY_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides the default XDG location)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp wires the backend and starts the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, user, err := buildService(ctx, cmd, st)
	if err != nil {
		return err
	}

	bus := messenger.New()
	defer bus.Close()

	return app.Run(app.Options{
		Store:   st,
		Service: svc,
		Fetcher: content.NewFetcher(),
		Bus:     bus,
		User:    user,
	})
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZBUDDY_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
