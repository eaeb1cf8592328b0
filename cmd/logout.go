package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Long: `Remove the stored credential and identity.

Logging out with no active session is not an error.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	had := store.Authenticated()
	if err := store.Logout(); err != nil {
		return err
	}

	if had {
		printer.Success("Logged out")
	} else {
		printer.Info("No active session")
	}
	return nil
}
