package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/output"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Payment intents and history",
}

var paymentIntentCmd = &cobra.Command{
	Use:   "intent",
	Short: "Create a payment intent",
	Long: `Request a payment intent for a ride, parcel, rental, or deposit.
The returned client secret completes the payment at the gateway.

Examples:
  evctl payment intent --entity-type ride --entity-id abc123 --amount 42.50`,
	RunE: runPaymentIntent,
}

var paymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your payments",
	RunE:  runPaymentList,
}

var paymentStatusCmd = &cobra.Command{
	Use:   "status <payment-id>",
	Short: "Show payment details",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaymentStatus,
}

func init() {
	rootCmd.AddCommand(paymentCmd)
	paymentCmd.AddCommand(paymentIntentCmd, paymentListCmd, paymentStatusCmd)

	paymentIntentCmd.Flags().String("entity-type", "", "ride, parcel, rental, or deposit")
	paymentIntentCmd.Flags().String("entity-id", "", "id of the entity being paid for")
	paymentIntentCmd.Flags().Float64("amount", 0, "amount to charge")
	_ = paymentIntentCmd.MarkFlagRequired("entity-type")
	_ = paymentIntentCmd.MarkFlagRequired("entity-id")
	_ = paymentIntentCmd.MarkFlagRequired("amount")

	paymentListCmd.Flags().Int("limit", 50, "maximum payments to list")
}

func runPaymentIntent(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	entityType, _ := cmd.Flags().GetString("entity-type")
	entityID, _ := cmd.Flags().GetString("entity-id")
	amount, _ := cmd.Flags().GetFloat64("amount")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	intent, err := apiClient.Payments.CreateIntent(ctx, api.PaymentIntentCreate{
		EntityType: entityType,
		EntityID:   entityID,
		Amount:     amount,
	})
	if err != nil {
		return err
	}

	printer.Success("Payment intent created: %s", intent.PaymentIntentID)
	printer.KeyValue("Amount", fmt.Sprintf("%s %.2f", intent.Currency, intent.Amount))
	printer.KeyValue("Status", printer.StatusBadge(intent.Status))
	if intent.ClientSecret != nil {
		printer.KeyValue("Client secret", *intent.ClientSecret)
	}
	return nil
}

func runPaymentList(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	payments, err := apiClient.Payments.List(ctx, api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(payments) == 0 {
		printer.Info("No payments found")
		return nil
	}

	table := output.NewQuietTable([]string{"ID", "Entity", "Amount", "Currency", "Status", "Created"}, quiet)
	for _, p := range payments {
		table.AddRow([]string{
			p.ID,
			p.EntityType + "/" + p.EntityID,
			fmt.Sprintf("%.2f", p.Amount),
			p.Currency,
			printer.StatusBadge(string(p.Status)),
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	table.Render()
	return nil
}

func runPaymentStatus(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	payment, err := apiClient.Payments.Get(ctx, args[0])
	if err != nil {
		return err
	}

	printer.KeyValue("Payment", payment.ID)
	printer.KeyValue("Intent", payment.PaymentIntentID)
	printer.KeyValue("Entity", payment.EntityType+"/"+payment.EntityID)
	printer.KeyValue("Amount", fmt.Sprintf("%s %.2f", payment.Currency, payment.Amount))
	printer.KeyValue("Status", printer.StatusBadge(string(payment.Status)))
	return nil
}
