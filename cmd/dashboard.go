package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/dashboard"
	"github.com/ev-platform/evctl/internal/output"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Operations overview",
	Long: `Display the operations dashboard: active rides, pending parcels,
listings awaiting approval, and the recent audit trail.

The sections are loaded together; if any one fails the whole refresh
fails and the previous view is not partially overwritten.

Examples:
  evctl dashboard                 # Single snapshot
  evctl dashboard --watch         # Refresh every 15s`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().BoolP("watch", "w", false, "refresh continuously")
	dashboardCmd.Flags().Duration("interval", 15*time.Second, "watch refresh interval")
	dashboardCmd.Flags().Int("audit-limit", 10, "audit events per snapshot")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	interval, _ := cmd.Flags().GetDuration("interval")
	auditLimit, _ := cmd.Flags().GetInt("audit-limit")

	loader := dashboard.NewLoader(apiClient, logger)
	loader.AuditLimit = auditLimit

	if watch {
		return watchDashboard(cmd.Context(), loader, interval)
	}

	return showDashboard(cmd, loader)
}

func showDashboard(cmd *cobra.Command, loader *dashboard.Loader) error {
	ctx, cancel := callCtx(cmd)
	defer cancel()

	snap, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	renderDashboard(snap)
	printer.PrintHints("dashboard")
	return nil
}

func watchDashboard(ctx context.Context, loader *dashboard.Loader, interval time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loader.Watch(ctx, interval, func(snap *dashboard.Snapshot, err error) {
		// Clear screen (ANSI escape)
		fmt.Print("\033[H\033[2J")
		if err != nil {
			// Polling continues; the failed refresh shows the default
			// state, never a partial one.
			printer.FormatError(output.ClassifyError(err))
			return
		}
		renderDashboard(snap)
	})
	return nil
}

func renderDashboard(snap *dashboard.Snapshot) {
	printer.Header(fmt.Sprintf("Operations at %s", snap.LoadedAt.Format(time.TimeOnly)))

	printer.Header(fmt.Sprintf("Active rides (%d)", len(snap.ActiveRides)))
	if len(snap.ActiveRides) == 0 {
		printer.Info("none")
	} else {
		table := output.NewQuietTable([]string{"ID", "From", "To", "Type", "Status"}, quiet)
		for _, r := range snap.ActiveRides {
			table.AddRow([]string{
				r.ID,
				r.PickupAddress,
				r.DropAddress,
				string(r.VehicleType),
				printer.StatusBadge(string(r.Status)),
			})
		}
		table.Render()
	}

	printer.Header(fmt.Sprintf("Pending parcels (%d)", len(snap.PendingParcels)))
	if len(snap.PendingParcels) == 0 {
		printer.Info("none")
	} else {
		table := output.NewQuietTable([]string{"ID", "From", "To", "Recipient"}, quiet)
		for _, p := range snap.PendingParcels {
			table.AddRow([]string{p.ID, p.PickupAddress, p.DropAddress, p.RecipientName})
		}
		table.Render()
	}

	printer.Header(fmt.Sprintf("Listings awaiting approval (%d)", len(snap.PendingListings)))
	if len(snap.PendingListings) == 0 {
		printer.Info("none")
	} else {
		table := output.NewQuietTable([]string{"ID", "Type", "Make", "Model", "Reg"}, quiet)
		for _, v := range snap.PendingListings {
			table.AddRow([]string{v.ID, string(v.VehicleType), v.Make, v.Model, v.RegistrationNumber})
		}
		table.Render()
	}

	printer.Header(fmt.Sprintf("Recent audit events (%d)", len(snap.RecentAudit)))
	if len(snap.RecentAudit) == 0 {
		printer.Info("none")
	} else {
		renderAuditTable(snap.RecentAudit)
	}
}
