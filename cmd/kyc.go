package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/output"
)

var kycCmd = &cobra.Command{
	Use:   "kyc",
	Short: "Compliance document submission and status",
}

var kycSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a compliance document",
	Long: `Submit a document record for verification.

Examples:
  evctl kyc submit --type license --url https://files.example.com/dl.pdf \
    --expiry 2028-05-31T00:00:00Z`,
	RunE: runKYCSubmit,
}

var kycStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your submitted documents",
	RunE:  runKYCStatus,
}

func init() {
	rootCmd.AddCommand(kycCmd)
	kycCmd.AddCommand(kycSubmitCmd, kycStatusCmd)

	kycSubmitCmd.Flags().String("type", "", "document type: license, rc, insurance, or fitness")
	kycSubmitCmd.Flags().String("url", "", "document URL")
	kycSubmitCmd.Flags().String("expiry", "", "document expiry (RFC 3339)")
	_ = kycSubmitCmd.MarkFlagRequired("type")
}

func runKYCSubmit(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	docType, _ := cmd.Flags().GetString("type")
	docURL, _ := cmd.Flags().GetString("url")
	expiry, _ := cmd.Flags().GetString("expiry")

	req := api.KYCDocumentCreate{
		DocumentType: docType,
		DocumentURL:  docURL,
	}
	if expiry != "" {
		t, err := parseRFC3339("expiry", expiry)
		if err != nil {
			return err
		}
		req.ExpiryDate = &t
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	doc, err := apiClient.Users.SubmitKYCDocument(ctx, req)
	if err != nil {
		return err
	}

	printer.Success("Document submitted: %s", doc.ID)
	printer.KeyValue("Type", doc.DocumentType)
	printer.KeyValue("Status", printer.StatusBadge(string(doc.Status)))
	printer.PrintHints("kyc submit")
	return nil
}

func runKYCStatus(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx, cancel := callCtx(cmd)
	defer cancel()

	docs, err := apiClient.Users.ListKYCDocuments(ctx)
	if err != nil {
		return err
	}

	identity, _ := store.Identity()
	printer.KeyValue("Account KYC", printer.StatusBadge(identity.KYCStatus))

	if len(docs) == 0 {
		printer.Info("No documents submitted")
		return nil
	}

	table := output.NewQuietTable([]string{"ID", "Type", "Status", "Expires"}, quiet)
	for _, d := range docs {
		expires := "-"
		if d.ExpiryDate != nil {
			expires = d.ExpiryDate.Format(time.DateOnly)
		}
		table.AddRow([]string{
			d.ID,
			d.DocumentType,
			printer.StatusBadge(string(d.Status)),
			expires,
		})
	}
	table.Render()
	return nil
}
