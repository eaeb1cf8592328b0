package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/output"
)

var rentalCmd = &cobra.Command{
	Use:   "rental",
	Short: "Rent EVs from other owners",
}

var rentalCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Book a rental",
	Long: `Book a vehicle for a time window. Times are RFC 3339.

Examples:
  evctl rental create --vehicle 4f1c... \
    --from 2026-09-01T09:00:00+05:30 --to 2026-09-01T18:00:00+05:30`,
	RunE: runRentalCreate,
}

var rentalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your rentals",
	RunE:  runRentalList,
}

var rentalReturnCmd = &cobra.Command{
	Use:   "return <rental-id>",
	Short: "Return a rented vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  runRentalReturn,
}

var rentalStatusCmd = &cobra.Command{
	Use:   "status <rental-id>",
	Short: "Show rental details",
	Args:  cobra.ExactArgs(1),
	RunE:  runRentalStatus,
}

var rentalCancelCmd = &cobra.Command{
	Use:   "cancel <rental-id>",
	Short: "Cancel a rental",
	Args:  cobra.ExactArgs(1),
	RunE:  runRentalCancel,
}

func init() {
	rootCmd.AddCommand(rentalCmd)
	rentalCmd.AddCommand(rentalCreateCmd, rentalListCmd, rentalReturnCmd, rentalStatusCmd, rentalCancelCmd)

	rentalCreateCmd.Flags().String("vehicle", "", "vehicle listing id")
	rentalCreateCmd.Flags().String("from", "", "start time (RFC 3339)")
	rentalCreateCmd.Flags().String("to", "", "end time (RFC 3339)")
	_ = rentalCreateCmd.MarkFlagRequired("vehicle")
	_ = rentalCreateCmd.MarkFlagRequired("from")
	_ = rentalCreateCmd.MarkFlagRequired("to")

	rentalReturnCmd.Flags().String("notes", "", "return condition notes")
	rentalReturnCmd.Flags().StringSlice("photo", nil, "return photo URL (repeatable)")

	rentalListCmd.Flags().Int("limit", 50, "maximum rentals to list")
}

func parseRFC3339(flag, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &output.CLIError{
			Summary:    fmt.Sprintf("invalid --%s value %q", flag, value),
			Detail:     err.Error(),
			Suggestion: "use RFC 3339, e.g. 2026-09-01T09:00:00+05:30",
			ExitCode:   output.ExitUsageError,
		}
	}
	return t, nil
}

func runRentalCreate(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	vehicleID, _ := cmd.Flags().GetString("vehicle")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	start, err := parseRFC3339("from", from)
	if err != nil {
		return err
	}
	end, err := parseRFC3339("to", to)
	if err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	rental, err := apiClient.Rentals.Create(ctx, api.RentalCreate{
		VehicleID: vehicleID,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return err
	}

	printer.Success("Rental booked: %s", rental.ID)
	printer.KeyValue("Total", fmt.Sprintf("INR %.2f", rental.TotalAmount))
	printer.KeyValue("Deposit", fmt.Sprintf("INR %.2f", rental.DepositAmount))
	printer.KeyValue("Status", printer.StatusBadge(string(rental.Status)))
	printer.PrintHints("rental create")
	return nil
}

func runRentalList(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	rentals, err := apiClient.Rentals.List(ctx, api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(rentals) == 0 {
		printer.Info("No rentals found")
		return nil
	}

	table := output.NewQuietTable([]string{"ID", "Vehicle", "Start", "End", "Total", "Status"}, quiet)
	for _, r := range rentals {
		table.AddRow([]string{
			r.ID,
			r.VehicleID,
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			fmt.Sprintf("INR %.2f", r.TotalAmount),
			printer.StatusBadge(string(r.Status)),
		})
	}
	table.Render()
	return nil
}

func runRentalReturn(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	notes, _ := cmd.Flags().GetString("notes")
	photos, _ := cmd.Flags().GetStringSlice("photo")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	rental, err := apiClient.Rentals.Return(ctx, args[0], api.RentalReturn{
		ReturnPhotos: photos,
		ReturnNotes:  notes,
	})
	if err != nil {
		return err
	}

	printer.Success("Rental %s returned", rental.ID)
	printer.KeyValue("Status", printer.StatusBadge(string(rental.Status)))
	return nil
}

func runRentalCancel(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	status := api.RentalCancelled
	rental, err := apiClient.Rentals.Update(ctx, args[0], api.RentalUpdate{Status: &status})
	if err != nil {
		return err
	}

	printer.Success("Rental %s cancelled", rental.ID)
	return nil
}

func runRentalStatus(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	rental, err := apiClient.Rentals.Get(ctx, args[0])
	if err != nil {
		return err
	}

	printer.KeyValue("Rental", rental.ID)
	printer.KeyValue("Vehicle", rental.VehicleID)
	printer.KeyValue("Start", rental.StartTime.Format(time.RFC3339))
	printer.KeyValue("End", rental.EndTime.Format(time.RFC3339))
	printer.KeyValue("Total", fmt.Sprintf("INR %.2f", rental.TotalAmount))
	printer.KeyValue("Deposit", fmt.Sprintf("INR %.2f", rental.DepositAmount))
	printer.KeyValue("Status", printer.StatusBadge(string(rental.Status)))
	if rental.ReturnNotes != nil {
		printer.KeyValue("Return notes", *rental.ReturnNotes)
	}
	return nil
}
