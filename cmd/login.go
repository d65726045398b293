package cmd

import (
	"fmt"

	"github.com/quizbuddy/quizbuddy/internal/api"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the quiz API",
	Long:  "Exchanges a Google ID token for an API session and stores it locally. Obtain the ID token from your identity provider and pass it with --id-token.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.API.BaseURL == "" {
			return fmt.Errorf("api.base_url is not configured")
		}

		idToken, _ := cmd.Flags().GetString("id-token")
		if idToken == "" {
			return fmt.Errorf("--id-token is required")
		}

		client := api.New(cfg.API.BaseURL, "")
		creds, err := client.Login(ctx, idToken)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SaveToken(ctx, creds.Token); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		if err := st.SaveUser(ctx, creds.User); err != nil {
			return fmt.Errorf("store user: %w", err)
		}

		fmt.Printf("Signed in as %s\n", creds.User.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("id-token", "", "Google ID token to exchange for an API session")
}
