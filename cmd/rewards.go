package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/output"
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Reward points balance and redemption",
}

var rewardsBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show your points balance",
	RunE:  runRewardsBalance,
}

var rewardsEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List your points history",
	RunE:  runRewardsEvents,
}

var rewardsRedeemCmd = &cobra.Command{
	Use:   "redeem",
	Short: "Redeem points",
	Long: `Spend reward points.

Examples:
  evctl rewards redeem --points 500 --type cashback`,
	RunE: runRewardsRedeem,
}

var rewardsReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a points-earning event",
	Long: `Report an event that accrues points. The backend owns the point
rules and decides how many points the event is worth.

Examples:
  evctl rewards report --event ride_completed --entity-type ride --entity-id abc123`,
	RunE: runRewardsReport,
}

func init() {
	rootCmd.AddCommand(rewardsCmd)
	rewardsCmd.AddCommand(rewardsBalanceCmd, rewardsEventsCmd, rewardsRedeemCmd, rewardsReportCmd)

	rewardsEventsCmd.Flags().Int("limit", 50, "maximum events to list")

	rewardsRedeemCmd.Flags().Int("points", 0, "points to redeem")
	rewardsRedeemCmd.Flags().String("type", "", "discount, cashback, or gift_card")
	_ = rewardsRedeemCmd.MarkFlagRequired("points")
	_ = rewardsRedeemCmd.MarkFlagRequired("type")

	rewardsReportCmd.Flags().String("event", "", "event type, e.g. ride_completed")
	rewardsReportCmd.Flags().String("entity-type", "", "related entity type")
	rewardsReportCmd.Flags().String("entity-id", "", "related entity id")
	_ = rewardsReportCmd.MarkFlagRequired("event")
}

func runRewardsBalance(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	account, err := apiClient.Rewards.Balance(ctx)
	if err != nil {
		return err
	}

	printer.KeyValue("Points", strconv.Itoa(account.PointsBalance))
	printer.KeyValue("Tier", account.Tier)
	printer.PrintHints("rewards balance")
	return nil
}

func runRewardsEvents(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	events, err := apiClient.Rewards.ListEvents(ctx, api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(events) == 0 {
		printer.Info("No reward events found")
		return nil
	}

	table := output.NewQuietTable([]string{"When", "Event", "Points"}, quiet)
	for _, e := range events {
		table.AddRow([]string{
			e.CreatedAt.Format(time.RFC3339),
			e.EventType,
			fmt.Sprintf("%+d", e.PointsEarned),
		})
	}
	table.Render()
	return nil
}

func runRewardsReport(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	eventType, _ := cmd.Flags().GetString("event")
	entityType, _ := cmd.Flags().GetString("entity-type")
	entityID, _ := cmd.Flags().GetString("entity-id")

	req := api.RewardEventCreate{EventType: eventType}
	if entityType != "" {
		req.EntityType = &entityType
	}
	if entityID != "" {
		req.EntityID = &entityID
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	event, err := apiClient.Rewards.CreateEvent(ctx, req)
	if err != nil {
		return err
	}

	printer.Success("Earned %d points (%s)", event.PointsEarned, event.EventType)
	return nil
}

func runRewardsRedeem(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	points, _ := cmd.Flags().GetInt("points")
	redemptionType, _ := cmd.Flags().GetString("type")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	redemption, err := apiClient.Rewards.Redeem(ctx, api.RedemptionRequest{
		Points:         points,
		RedemptionType: redemptionType,
	})
	if err != nil {
		return err
	}

	printer.Success("Redeemed %d points (%s)", redemption.PointsRedeemed, redemption.RedemptionID)
	printer.KeyValue("New balance", strconv.Itoa(redemption.NewBalance))
	return nil
}
