package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/output"
)

var parcelCmd = &cobra.Command{
	Use:   "parcel",
	Short: "Send and track parcels",
}

var parcelSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a new parcel",
	Long: `Submit a parcel delivery between a pickup and drop point.

Examples:
  evctl parcel send --pickup 12.9716,77.5946 --pickup-address "MG Road" \
    --drop 12.9789,77.5917 --drop-address "Cubbon Park" \
    --recipient "A. Kumar" --recipient-phone +919900112233 --weight 2.5`,
	RunE: runParcelSend,
}

var parcelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your parcels",
	RunE:  runParcelList,
}

var parcelStatusCmd = &cobra.Command{
	Use:   "status <parcel-id>",
	Short: "Show parcel details",
	Args:  cobra.ExactArgs(1),
	RunE:  runParcelStatus,
}

var parcelUpdateCmd = &cobra.Command{
	Use:   "update <parcel-id>",
	Short: "Update a parcel's delivery status",
	Long: `Update the delivery status of a parcel (driver surface).

Examples:
  evctl parcel update 4f1c... --status in_progress
  evctl parcel update 4f1c... --status completed --final-fare 62.50`,
	Args: cobra.ExactArgs(1),
	RunE: runParcelUpdate,
}

func init() {
	rootCmd.AddCommand(parcelCmd)
	parcelCmd.AddCommand(parcelSendCmd, parcelListCmd, parcelStatusCmd, parcelUpdateCmd)

	parcelSendCmd.Flags().String("pickup", "", "pickup coordinates as lat,lng")
	parcelSendCmd.Flags().String("pickup-address", "", "pickup street address")
	parcelSendCmd.Flags().String("drop", "", "drop coordinates as lat,lng")
	parcelSendCmd.Flags().String("drop-address", "", "drop street address")
	parcelSendCmd.Flags().String("recipient", "", "recipient name")
	parcelSendCmd.Flags().String("recipient-phone", "", "recipient phone number")
	parcelSendCmd.Flags().Float64("weight", 0, "parcel weight in kg")
	_ = parcelSendCmd.MarkFlagRequired("pickup")
	_ = parcelSendCmd.MarkFlagRequired("pickup-address")
	_ = parcelSendCmd.MarkFlagRequired("drop")
	_ = parcelSendCmd.MarkFlagRequired("drop-address")
	_ = parcelSendCmd.MarkFlagRequired("recipient")
	_ = parcelSendCmd.MarkFlagRequired("recipient-phone")

	parcelListCmd.Flags().String("status", "", "filter by status")
	parcelListCmd.Flags().Int("limit", 50, "maximum parcels to list")

	parcelUpdateCmd.Flags().String("status", "", "new delivery status")
	parcelUpdateCmd.Flags().Float64("final-fare", 0, "final fare on completion")
	_ = parcelUpdateCmd.MarkFlagRequired("status")
}

func runParcelSend(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	pickup, _ := cmd.Flags().GetString("pickup")
	pickupAddr, _ := cmd.Flags().GetString("pickup-address")
	drop, _ := cmd.Flags().GetString("drop")
	dropAddr, _ := cmd.Flags().GetString("drop-address")
	recipient, _ := cmd.Flags().GetString("recipient")
	recipientPhone, _ := cmd.Flags().GetString("recipient-phone")
	weight, _ := cmd.Flags().GetFloat64("weight")

	pickupLat, pickupLng, err := parseLatLng(pickup)
	if err != nil {
		return err
	}
	dropLat, dropLng, err := parseLatLng(drop)
	if err != nil {
		return err
	}

	req := api.ParcelCreate{
		PickupLat:      pickupLat,
		PickupLng:      pickupLng,
		PickupAddress:  pickupAddr,
		DropLat:        dropLat,
		DropLng:        dropLng,
		DropAddress:    dropAddr,
		RecipientName:  recipient,
		RecipientPhone: recipientPhone,
	}
	if weight > 0 {
		req.WeightKg = &weight
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	parcel, err := apiClient.Parcels.Create(ctx, req)
	if err != nil {
		return err
	}

	printer.Success("Parcel created: %s", parcel.ID)
	printer.KeyValue("Status", printer.StatusBadge(string(parcel.Status)))
	printer.KeyValue("Estimated fare", formatFare(parcel.EstimatedFare))
	printer.PrintHints("parcel send")
	return nil
}

func runParcelList(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	parcels, err := apiClient.Parcels.List(ctx, api.RideStatus(status), api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(parcels) == 0 {
		printer.Info("No parcels found")
		return nil
	}

	table := output.NewQuietTable([]string{"ID", "From", "To", "Recipient", "Fare", "Status"}, quiet)
	for _, p := range parcels {
		table.AddRow([]string{
			p.ID,
			p.PickupAddress,
			p.DropAddress,
			p.RecipientName,
			formatFare(p.EstimatedFare),
			printer.StatusBadge(string(p.Status)),
		})
	}
	table.Render()
	return nil
}

func runParcelUpdate(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	status, _ := cmd.Flags().GetString("status")
	finalFare, _ := cmd.Flags().GetFloat64("final-fare")

	rideStatus := api.RideStatus(status)
	req := api.ParcelUpdate{Status: &rideStatus}
	if finalFare > 0 {
		req.FinalFare = &finalFare
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	parcel, err := apiClient.Parcels.Update(ctx, args[0], req)
	if err != nil {
		return err
	}

	printer.Success("Parcel %s updated", parcel.ID)
	printer.KeyValue("Status", printer.StatusBadge(string(parcel.Status)))
	return nil
}

func runParcelStatus(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	parcel, err := apiClient.Parcels.Get(ctx, args[0])
	if err != nil {
		return err
	}

	printer.KeyValue("Parcel", parcel.ID)
	printer.KeyValue("From", parcel.PickupAddress)
	printer.KeyValue("To", parcel.DropAddress)
	printer.KeyValue("Recipient", parcel.RecipientName)
	printer.KeyValue("Status", printer.StatusBadge(string(parcel.Status)))
	printer.KeyValue("Estimated fare", formatFare(parcel.EstimatedFare))
	if parcel.WeightKg != nil {
		printer.KeyValue("Weight", fmt.Sprintf("%.1f kg", *parcel.WeightKg))
	}
	return nil
}
