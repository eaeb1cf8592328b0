package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist a session",
	Long: `Authenticate against the backend and persist the session locally.

The bearer token and identity summary are stored together in the session
file and reused by every subsequent command until logout or expiry.

Examples:
  evctl login --email rider@example.com`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("email", "", "account email address")
	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	tok, err := apiClient.Users.Login(ctx, api.LoginRequest{Email: email})
	if err != nil {
		return err
	}

	identity := session.Identity{
		ID:        tok.User.ID,
		Email:     tok.User.Email,
		Phone:     tok.User.Phone,
		FullName:  tok.User.FullName,
		Role:      string(tok.User.Role),
		KYCStatus: string(tok.User.KYCStatus),
	}
	if err := store.SaveLogin(tok.AccessToken, identity); err != nil {
		return err
	}

	printer.Success("Logged in as %s (%s)", identity.FullName, identity.Role)
	printer.PrintHints("login")
	return nil
}
