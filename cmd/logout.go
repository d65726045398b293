package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored API session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ClearToken(ctx); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		if err := st.ClearUser(ctx); err != nil {
			return fmt.Errorf("clear user: %w", err)
		}

		fmt.Println("Signed out.")
		return nil
	},
}
