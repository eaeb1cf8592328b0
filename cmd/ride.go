package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/fare"
	"github.com/ev-platform/evctl/internal/output"
)

var rideCmd = &cobra.Command{
	Use:   "ride",
	Short: "Book and manage rides",
}

var rideBookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a new ride",
	Long: `Book a ride between a pickup and drop point.

Coordinates are given as "lat,lng" pairs. The backend calculates the
estimated fare; use 'evctl ride fare' for a local estimate first.

Examples:
  evctl ride book --pickup 12.9716,77.5946 --pickup-address "MG Road" \
    --drop 12.9789,77.5917 --drop-address "Cubbon Park" --type scooter`,
	RunE: runRideBook,
}

var rideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your rides",
	RunE:  runRideList,
}

var rideStatusCmd = &cobra.Command{
	Use:   "status <ride-id>",
	Short: "Show ride details",
	Args:  cobra.ExactArgs(1),
	RunE:  runRideStatus,
}

var rideCancelCmd = &cobra.Command{
	Use:   "cancel <ride-id>",
	Short: "Cancel a ride",
	Args:  cobra.ExactArgs(1),
	RunE:  runRideCancel,
}

var rideAssignCmd = &cobra.Command{
	Use:   "assign <ride-id>",
	Short: "Assign a driver to a paid ride",
	Args:  cobra.ExactArgs(1),
	RunE:  runRideAssign,
}

var rideFareCmd = &cobra.Command{
	Use:   "fare",
	Short: "Estimate a fare locally",
	Long: `Estimate the fare for a trip without contacting the backend.

Examples:
  evctl ride fare --pickup 12.9716,77.5946 --drop 12.9789,77.5917 --type scooter`,
	RunE: runRideFare,
}

func init() {
	rootCmd.AddCommand(rideCmd)
	rideCmd.AddCommand(rideBookCmd, rideListCmd, rideStatusCmd, rideCancelCmd, rideAssignCmd, rideFareCmd)

	rideBookCmd.Flags().String("pickup", "", "pickup coordinates as lat,lng")
	rideBookCmd.Flags().String("pickup-address", "", "pickup street address")
	rideBookCmd.Flags().String("drop", "", "drop coordinates as lat,lng")
	rideBookCmd.Flags().String("drop-address", "", "drop street address")
	rideBookCmd.Flags().String("type", "scooter", "vehicle type: car, bike, scooter, or cycle")
	_ = rideBookCmd.MarkFlagRequired("pickup")
	_ = rideBookCmd.MarkFlagRequired("pickup-address")
	_ = rideBookCmd.MarkFlagRequired("drop")
	_ = rideBookCmd.MarkFlagRequired("drop-address")

	rideListCmd.Flags().String("status", "", "filter by status")
	rideListCmd.Flags().Int("limit", 50, "maximum rides to list")

	rideFareCmd.Flags().String("pickup", "", "pickup coordinates as lat,lng")
	rideFareCmd.Flags().String("drop", "", "drop coordinates as lat,lng")
	rideFareCmd.Flags().String("type", "scooter", "vehicle type: car, bike, scooter, or cycle")
	_ = rideFareCmd.MarkFlagRequired("pickup")
	_ = rideFareCmd.MarkFlagRequired("drop")
}

// parseLatLng parses a "lat,lng" flag value.
func parseLatLng(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, &output.CLIError{
			Summary:  fmt.Sprintf("invalid coordinates %q: expected lat,lng", s),
			ExitCode: output.ExitUsageError,
		}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, &output.CLIError{
			Summary:  fmt.Sprintf("invalid latitude %q", parts[0]),
			ExitCode: output.ExitUsageError,
		}
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, &output.CLIError{
			Summary:  fmt.Sprintf("invalid longitude %q", parts[1]),
			ExitCode: output.ExitUsageError,
		}
	}
	return lat, lng, nil
}

func formatFare(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("INR %.2f", *f)
}

func runRideBook(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	pickup, _ := cmd.Flags().GetString("pickup")
	pickupAddr, _ := cmd.Flags().GetString("pickup-address")
	drop, _ := cmd.Flags().GetString("drop")
	dropAddr, _ := cmd.Flags().GetString("drop-address")
	vtype, _ := cmd.Flags().GetString("type")

	pickupLat, pickupLng, err := parseLatLng(pickup)
	if err != nil {
		return err
	}
	dropLat, dropLng, err := parseLatLng(drop)
	if err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	ride, err := apiClient.Rides.Create(ctx, api.RideCreate{
		PickupLat:     pickupLat,
		PickupLng:     pickupLng,
		PickupAddress: pickupAddr,
		DropLat:       dropLat,
		DropLng:       dropLng,
		DropAddress:   dropAddr,
		VehicleType:   api.VehicleType(vtype),
	})
	if err != nil {
		return err
	}

	printer.Success("Ride booked: %s", ride.ID)
	printer.KeyValue("Status", printer.StatusBadge(string(ride.Status)))
	printer.KeyValue("Estimated fare", formatFare(ride.EstimatedFare))
	printer.PrintHints("ride book")
	return nil
}

func runRideList(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	rides, err := apiClient.Rides.List(ctx, api.RideStatus(status), api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(rides) == 0 {
		printer.Info("No rides found")
		return nil
	}

	table := output.NewQuietTable([]string{"ID", "From", "To", "Type", "Fare", "Status"}, quiet)
	for _, r := range rides {
		table.AddRow([]string{
			r.ID,
			r.PickupAddress,
			r.DropAddress,
			string(r.VehicleType),
			formatFare(r.EstimatedFare),
			printer.StatusBadge(string(r.Status)),
		})
	}
	table.Render()
	printer.PrintHints("ride list")
	return nil
}

func runRideStatus(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	ride, err := apiClient.Rides.Get(ctx, args[0])
	if err != nil {
		return err
	}

	printer.KeyValue("Ride", ride.ID)
	printer.KeyValue("From", ride.PickupAddress)
	printer.KeyValue("To", ride.DropAddress)
	printer.KeyValue("Type", string(ride.VehicleType))
	printer.KeyValue("Status", printer.StatusBadge(string(ride.Status)))
	printer.KeyValue("Estimated fare", formatFare(ride.EstimatedFare))
	printer.KeyValue("Final fare", formatFare(ride.FinalFare))
	if ride.DriverID != nil {
		printer.KeyValue("Driver", *ride.DriverID)
	}
	return nil
}

func runRideCancel(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	ride, err := apiClient.Rides.Cancel(ctx, args[0])
	if err != nil {
		return err
	}

	printer.Success("Ride %s cancelled", ride.ID)
	return nil
}

func runRideAssign(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	ride, err := apiClient.Rides.AssignDriver(ctx, args[0])
	if err != nil {
		return err
	}

	printer.Success("Driver assigned to ride %s", ride.ID)
	if ride.DriverID != nil {
		printer.KeyValue("Driver", *ride.DriverID)
	}
	return nil
}

func runRideFare(cmd *cobra.Command, args []string) error {
	pickup, _ := cmd.Flags().GetString("pickup")
	drop, _ := cmd.Flags().GetString("drop")
	vtype, _ := cmd.Flags().GetString("type")

	pickupLat, pickupLng, err := parseLatLng(pickup)
	if err != nil {
		return err
	}
	dropLat, dropLng, err := parseLatLng(drop)
	if err != nil {
		return err
	}

	distance := fare.Distance(pickupLat, pickupLng, dropLat, dropLng)
	estimate := fare.Estimate(pickupLat, pickupLng, dropLat, dropLng, api.VehicleType(vtype))

	printer.KeyValue("Distance", fmt.Sprintf("%.2f km", distance))
	printer.KeyValue("Vehicle type", vtype)
	printer.KeyValue("Estimated fare", fmt.Sprintf("INR %.2f", estimate))
	return nil
}
