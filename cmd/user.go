package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/output"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Profile and account administration",
}

var userUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	Long: `Change your profile details. The stored session identity is refreshed
with the backend's response.

Examples:
  evctl user update --name "New Name" --phone +919900112299`,
	RunE: runUserUpdate,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts (admin)",
	RunE:  runUserList,
}

var userShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show an account (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserShow,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userUpdateCmd, userListCmd, userShowCmd)

	userUpdateCmd.Flags().String("name", "", "new full name")
	userUpdateCmd.Flags().String("phone", "", "new phone number")

	userListCmd.Flags().Int("limit", 50, "maximum accounts to list")
}

func runUserUpdate(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")

	req := api.UpdateMeRequest{}
	if name != "" {
		req.FullName = &name
	}
	if phone != "" {
		req.Phone = &phone
	}
	if req.FullName == nil && req.Phone == nil {
		return &output.CLIError{
			Summary:  "nothing to update",
			Detail:   "pass --name and/or --phone",
			ExitCode: output.ExitUsageError,
		}
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	user, err := apiClient.Users.UpdateMe(ctx, req)
	if err != nil {
		return err
	}

	// Keep the stored identity in sync with the profile.
	identity, _ := store.Identity()
	identity.FullName = user.FullName
	identity.Phone = user.Phone
	if err := store.SaveLogin(store.Token(), identity); err != nil {
		return err
	}

	printer.Success("Profile updated")
	printer.KeyValue("Name", user.FullName)
	printer.KeyValue("Phone", user.Phone)
	return nil
}

func runUserList(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	users, err := apiClient.Users.List(ctx, api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(users) == 0 {
		printer.Info("No accounts found")
		return nil
	}

	table := output.NewQuietTable([]string{"ID", "Name", "Email", "Role", "KYC"}, quiet)
	for _, u := range users {
		table.AddRow([]string{
			u.ID,
			u.FullName,
			u.Email,
			string(u.Role),
			printer.StatusBadge(string(u.KYCStatus)),
		})
	}
	table.Render()
	return nil
}

func runUserShow(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	user, err := apiClient.Users.Get(ctx, args[0])
	if err != nil {
		return err
	}

	printer.KeyValue("User", user.ID)
	printer.KeyValue("Name", user.FullName)
	printer.KeyValue("Email", user.Email)
	printer.KeyValue("Phone", user.Phone)
	printer.KeyValue("Role", string(user.Role))
	printer.KeyValue("KYC status", printer.StatusBadge(string(user.KYCStatus)))
	return nil
}
