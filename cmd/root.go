// Package cmd contains all CLI commands for evctl
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ev-platform/evctl/internal/api"
	"github.com/ev-platform/evctl/internal/config"
	"github.com/ev-platform/evctl/internal/gateway"
	"github.com/ev-platform/evctl/internal/output"
	"github.com/ev-platform/evctl/internal/session"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	colorFlag string
	apiURL    string

	cfg       *config.Config
	logger    *slog.Logger
	printer   *output.Printer
	store     *session.Store
	apiClient *api.Client
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "evctl",
	Short: "EV marketplace client",
	Long: `evctl is the terminal client for the EV marketplace platform.

It covers the rider surface (ride booking, parcel delivery, P2P rentals,
wallet, rewards, compliance) and the operations surface (dashboard,
listing approvals, ride monitoring) against the platform backend.

Example usage:
  evctl login --email rider@example.com
  evctl ride book --pickup 12.9716,77.5946 --drop 12.9789,77.5917 --type scooter
  evctl vehicle list --pending
  evctl dashboard --watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .evctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, or never")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides config)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

// initApp loads configuration and wires the session store, request
// gateway, and API client. Pieces a test has already provided are left
// alone.
func initApp() error {
	var err error

	// Setup logger
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	if cfg == nil {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	// Printer
	if printer == nil {
		mode, err := output.ParseColorMode(colorFlag)
		if err != nil {
			return err
		}
		printer = output.NewPrinterWithOptions(output.PrinterOptions{
			ColorMode:    mode,
			ConfigColors: cfg.Output.Colors,
			Quiet:        quiet,
		})
	}

	// Session store: restore a prior session once at startup.
	if store == nil {
		store = session.NewStore(cfg.Session.File, logger)
		store.Restore()
	}

	// The gateway only classifies failures; the forced reaction to a 401
	// lives here, at composition: the store clears itself and the
	// top-level subscriber tells the user what happened.
	if apiClient == nil {
		baseURL := cfg.API.BaseURL
		if apiURL != "" {
			baseURL = apiURL
		}
		gw := gateway.New(
			gateway.WithBaseURL(baseURL),
			gateway.WithTimeout(cfg.API.Timeout),
			gateway.WithTokenSource(store),
			gateway.WithOnUnauthorized(store.Invalidate),
			gateway.WithLogger(logger),
			gateway.WithUserAgent("evctl/"+version),
		)
		apiClient = api.NewClient(gw)
		store.OnInvalidated(func() {
			printer.Warning("Session invalidated by the backend; run 'evctl login' to continue")
		})
	}

	logger.Debug("configuration loaded",
		"base_url", cfg.API.BaseURL,
		"timeout", cfg.API.Timeout,
		"session_file", cfg.Session.File,
		"authenticated", store.Authenticated(),
	)

	return nil
}

// callCtx bounds one request by the gateway's fixed ceiling. It
// inherits the command's context so cancelling the root cancels any
// in-flight call.
func callCtx(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, apiClient.Gateway().Timeout())
}

// requireSession rejects commands that need a login before any call is
// attempted.
func requireSession() error {
	if store.Authenticated() {
		return nil
	}
	return &output.CLIError{
		Summary:    "not logged in",
		Suggestion: "run 'evctl login' to start a session",
		ExitCode:   output.ExitAuthError,
	}
}
