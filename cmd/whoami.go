package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	Long: `Display the identity stored in the local session.

With --token-info the bearer token's claims are decoded (without
signature verification) to show the subject and expiry. With --remote
the profile is fetched from the backend instead of the local copy.`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("token-info", false, "decode and display token claims")
	whoamiCmd.Flags().Bool("remote", false, "fetch the profile from the backend")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	remote, _ := cmd.Flags().GetBool("remote")
	tokenInfo, _ := cmd.Flags().GetBool("token-info")

	identity, _ := store.Identity()
	if remote {
		ctx, cancel := callCtx(cmd)
		defer cancel()

		user, err := apiClient.Users.Me(ctx)
		if err != nil {
			return err
		}
		identity.Email = user.Email
		identity.Phone = user.Phone
		identity.FullName = user.FullName
		identity.Role = string(user.Role)
		identity.KYCStatus = string(user.KYCStatus)
	}

	printer.KeyValue("User", identity.FullName)
	printer.KeyValue("Email", identity.Email)
	printer.KeyValue("Phone", identity.Phone)
	printer.KeyValue("Role", identity.Role)
	printer.KeyValue("KYC status", printer.StatusBadge(identity.KYCStatus))

	if tokenInfo {
		return printTokenClaims(store.Token())
	}
	return nil
}

// printTokenClaims decodes the bearer token without verifying it. The
// client has no signing key; this is display only.
func printTokenClaims(raw string) error {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return fmt.Errorf("decoding token: %w", err)
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		printer.KeyValue("Subject", sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		remaining := time.Until(exp.Time).Round(time.Second)
		printer.KeyValue("Expires", fmt.Sprintf("%s (%s)", exp.Time.Format(time.RFC3339), remaining))
	}
	return nil
}
