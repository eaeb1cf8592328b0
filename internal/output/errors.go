package output

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/ev-platform/evctl/internal/gateway"
)

// Exit code constants
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitUsageError  = 2
	ExitAPIError    = 3
	ExitConfigError = 4
	ExitNetwork     = 5
	ExitAuthError   = 6
)

// CLIError is a structured error with user-facing context
type CLIError struct {
	Summary    string
	Detail     string
	Suggestion string
	ExitCode   int
}

// Error implements the error interface, returning the summary
func (e *CLIError) Error() string {
	return e.Summary
}

// ClassifyError maps a gateway or command error onto a structured CLI
// error with an exit code and, where useful, a next step.
func ClassifyError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	if errors.Is(err, gateway.ErrUnauthorized) {
		return &CLIError{
			Summary:    "session expired or not logged in",
			Detail:     err.Error(),
			Suggestion: "run 'evctl login' to start a new session",
			ExitCode:   ExitAuthError,
		}
	}

	if errors.Is(err, gateway.ErrNetwork) {
		return &CLIError{
			Summary:    err.Error(),
			Suggestion: "verify the backend address (EVCTL_API_URL) and your connection",
			ExitCode:   ExitNetwork,
		}
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return &CLIError{
			Summary:  apiErr.Error(),
			Detail:   fmt.Sprintf("backend returned status %d", apiErr.Status),
			ExitCode: ExitAPIError,
		}
	}

	return &CLIError{
		Summary:  err.Error(),
		ExitCode: ExitGeneral,
	}
}

// FormatError prints a structured error message to stderr
func (p *Printer) FormatError(e *CLIError) {
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			color.New(color.FgCyan).Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	} else {
		fmt.Fprintf(p.err, "[ERROR] %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	}
}
