package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/output"
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Manage EV listings",
}

var vehicleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new vehicle listing",
	Long: `Register an EV for P2P rental. The listing stays pending until an
operator approves it.

Examples:
  evctl vehicle add --type scooter --make Ather --model 450X \
    --registration KA01AB1234 --hourly-rate 60 --daily-rate 500 --deposit 1000`,
	RunE: runVehicleAdd,
}

var vehicleListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search vehicle listings",
	RunE:  runVehicleList,
}

var vehicleMyCmd = &cobra.Command{
	Use:   "my",
	Short: "List your own listings",
	RunE:  runVehicleMy,
}

var vehicleApproveCmd = &cobra.Command{
	Use:   "approve <vehicle-id>",
	Short: "Approve a pending listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehicleApprove,
}

var vehicleRejectCmd = &cobra.Command{
	Use:   "reject <vehicle-id>",
	Short: "Reject a pending listing",
	Long: `Reject a pending vehicle listing. A reason is mandatory; nothing is
sent to the backend without one.

Examples:
  evctl vehicle reject 4f1c... --reason "registration number unreadable"`,
	Args: cobra.ExactArgs(1),
	RunE: runVehicleReject,
}

func init() {
	rootCmd.AddCommand(vehicleCmd)
	vehicleCmd.AddCommand(vehicleAddCmd, vehicleListCmd, vehicleMyCmd, vehicleApproveCmd, vehicleRejectCmd)

	vehicleAddCmd.Flags().String("type", "", "vehicle type: car, bike, scooter, or cycle")
	vehicleAddCmd.Flags().String("make", "", "manufacturer")
	vehicleAddCmd.Flags().String("model", "", "model name")
	vehicleAddCmd.Flags().Int("year", 0, "manufacturing year")
	vehicleAddCmd.Flags().String("registration", "", "registration number")
	vehicleAddCmd.Flags().Float64("battery", 0, "battery capacity in kWh")
	vehicleAddCmd.Flags().Float64("range", 0, "range in km")
	vehicleAddCmd.Flags().Float64("hourly-rate", 0, "hourly rental rate")
	vehicleAddCmd.Flags().Float64("daily-rate", 0, "daily rental rate")
	vehicleAddCmd.Flags().Float64("deposit", 0, "deposit amount")
	vehicleAddCmd.Flags().String("location", "", "vehicle location as lat,lng")
	_ = vehicleAddCmd.MarkFlagRequired("type")
	_ = vehicleAddCmd.MarkFlagRequired("make")
	_ = vehicleAddCmd.MarkFlagRequired("model")
	_ = vehicleAddCmd.MarkFlagRequired("registration")
	_ = vehicleAddCmd.MarkFlagRequired("hourly-rate")
	_ = vehicleAddCmd.MarkFlagRequired("daily-rate")

	vehicleListCmd.Flags().String("type", "", "filter by vehicle type")
	vehicleListCmd.Flags().Bool("pending", false, "only listings awaiting approval")
	vehicleListCmd.Flags().String("near", "", "center point as lat,lng")
	vehicleListCmd.Flags().Float64("radius", 10, "search radius in km (with --near)")
	vehicleListCmd.Flags().Int("limit", 50, "maximum listings to show")

	vehicleRejectCmd.Flags().String("reason", "", "reason for rejection (required)")
}

func runVehicleAdd(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	vtype, _ := cmd.Flags().GetString("type")
	makeName, _ := cmd.Flags().GetString("make")
	model, _ := cmd.Flags().GetString("model")
	year, _ := cmd.Flags().GetInt("year")
	registration, _ := cmd.Flags().GetString("registration")
	battery, _ := cmd.Flags().GetFloat64("battery")
	rangeKm, _ := cmd.Flags().GetFloat64("range")
	hourlyRate, _ := cmd.Flags().GetFloat64("hourly-rate")
	dailyRate, _ := cmd.Flags().GetFloat64("daily-rate")
	deposit, _ := cmd.Flags().GetFloat64("deposit")
	location, _ := cmd.Flags().GetString("location")

	req := api.VehicleCreate{
		VehicleType:        api.VehicleType(vtype),
		Make:               makeName,
		Model:              model,
		RegistrationNumber: registration,
		HourlyRate:         hourlyRate,
		DailyRate:          dailyRate,
		DepositAmount:      deposit,
	}
	if year > 0 {
		req.Year = &year
	}
	if battery > 0 {
		req.BatteryCapacity = &battery
	}
	if rangeKm > 0 {
		req.RangeKm = &rangeKm
	}
	if location != "" {
		lat, lng, err := parseLatLng(location)
		if err != nil {
			return err
		}
		req.LocationLat = &lat
		req.LocationLng = &lng
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	v, err := apiClient.Vehicles.Create(ctx, req)
	if err != nil {
		return err
	}

	printer.Success("Listing created: %s %s (%s)", v.Make, v.Model, v.ID)
	printer.KeyValue("Status", printer.StatusBadge(string(v.Status)))
	printer.PrintHints("vehicle add")
	return nil
}

func runVehicleList(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	vtype, _ := cmd.Flags().GetString("type")
	pending, _ := cmd.Flags().GetBool("pending")
	near, _ := cmd.Flags().GetString("near")
	radius, _ := cmd.Flags().GetFloat64("radius")
	limit, _ := cmd.Flags().GetInt("limit")

	filters := api.VehicleFilters{
		VehicleType: api.VehicleType(vtype),
		// The backend hides unapproved listings by default.
		IncludeUnapproved: pending,
	}
	if near != "" {
		lat, lng, err := parseLatLng(near)
		if err != nil {
			return err
		}
		filters.Lat = &lat
		filters.Lng = &lng
		filters.RadiusKm = &radius
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	vehicles, err := apiClient.Vehicles.List(ctx, filters, api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if pending {
		filtered := vehicles[:0]
		for _, v := range vehicles {
			if v.Status == api.ListingPending {
				filtered = append(filtered, v)
			}
		}
		vehicles = filtered
	}

	if len(vehicles) == 0 {
		printer.Info("No listings found")
		return nil
	}

	renderVehicleTable(vehicles)
	return nil
}

func runVehicleMy(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	vehicles, err := apiClient.Vehicles.MyListings(ctx)
	if err != nil {
		return err
	}

	if len(vehicles) == 0 {
		printer.Info("You have no listings")
		return nil
	}

	renderVehicleTable(vehicles)
	return nil
}

func renderVehicleTable(vehicles []api.Vehicle) {
	table := output.NewQuietTable([]string{"ID", "Type", "Make", "Model", "Reg", "Hourly", "Daily", "Status"}, quiet)
	for _, v := range vehicles {
		table.AddRow([]string{
			v.ID,
			string(v.VehicleType),
			v.Make,
			v.Model,
			v.RegistrationNumber,
			fmt.Sprintf("%.0f", v.HourlyRate),
			fmt.Sprintf("%.0f", v.DailyRate),
			printer.StatusBadge(string(v.Status)),
		})
	}
	table.Render()
}

func runVehicleApprove(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	v, err := apiClient.Vehicles.Approve(ctx, args[0])
	if err != nil {
		return err
	}

	printer.Success("Listing %s approved", v.ID)
	printer.PrintHints("vehicle approve")
	return nil
}

func runVehicleReject(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	reason, _ := cmd.Flags().GetString("reason")
	// The reason gate runs before any call is constructed.
	if strings.TrimSpace(reason) == "" {
		return &output.CLIError{
			Summary:    "rejection reason is required",
			Suggestion: "pass --reason with a short explanation for the owner",
			ExitCode:   output.ExitUsageError,
		}
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	v, err := apiClient.Vehicles.Reject(ctx, args[0], reason)
	if err != nil {
		return err
	}

	printer.Success("Listing %s rejected", v.ID)
	printer.PrintHints("vehicle reject")
	return nil
}
