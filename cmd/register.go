package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Register a new account with the marketplace.

Examples:
  evctl register --email rider@example.com --phone +919900112233 --name "Test Rider"
  evctl register --email owner@example.com --phone +919900112234 --name "Fleet Owner" --role owner`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("email", "", "account email address")
	registerCmd.Flags().String("phone", "", "contact phone number")
	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().String("role", "passenger", "account role: passenger, driver, or owner")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("phone")
	_ = registerCmd.MarkFlagRequired("name")
}

func runRegister(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	user, err := apiClient.Users.Register(ctx, api.RegisterRequest{
		Email:    email,
		Phone:    phone,
		FullName: name,
		Role:     api.UserRole(role),
	})
	if err != nil {
		return err
	}

	printer.Success("Registered %s (%s)", user.FullName, user.Email)
	printer.Info("Run 'evctl login --email %s' to start a session", user.Email)
	return nil
}
