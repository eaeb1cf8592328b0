package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/output"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the audit trail",
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent audit events (admin)",
	RunE:  runAuditList,
}

var auditMyCmd = &cobra.Command{
	Use:   "my",
	Short: "List audit events about your account",
	RunE:  runAuditMy,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditListCmd, auditMyCmd)

	auditListCmd.Flags().String("event-type", "", "filter by event type")
	auditListCmd.Flags().Int("limit", 50, "maximum events to list")

	auditMyCmd.Flags().Int("limit", 50, "maximum events to list")
}

func renderAuditTable(logs []api.AuditLog) {
	table := output.NewQuietTable([]string{"When", "Event", "Entity", "Action"}, quiet)
	for _, l := range logs {
		entity := "-"
		if l.EntityType != nil {
			entity = *l.EntityType
			if l.EntityID != nil {
				entity += "/" + *l.EntityID
			}
		}
		table.AddRow([]string{
			l.CreatedAt.Format(time.RFC3339),
			l.EventType,
			entity,
			l.Action,
		})
	}
	table.Render()
}

func runAuditList(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	eventType, _ := cmd.Flags().GetString("event-type")
	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	logs, err := apiClient.Audit.List(ctx, eventType, api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		printer.Info("No audit events found")
		return nil
	}
	renderAuditTable(logs)
	return nil
}

func runAuditMy(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := callCtx(cmd)
	defer cancel()

	logs, err := apiClient.Audit.MyEvents(ctx, api.ListOptions{Limit: limit})
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		printer.Info("No audit events found")
		return nil
	}
	renderAuditTable(logs)
	return nil
}
