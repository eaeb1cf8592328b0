package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ev-platform/evctl/internal/gateway"
)

func TestClassifyError_Unauthorized(t *testing.T) {
	err := &gateway.APIError{Status: 401, Detail: "Could not validate credentials"}

	cliErr := ClassifyError(err)
	if cliErr.ExitCode != ExitAuthError {
		t.Errorf("expected auth exit code, got %d", cliErr.ExitCode)
	}
	if !strings.Contains(cliErr.Suggestion, "evctl login") {
		t.Errorf("expected re-login suggestion, got %q", cliErr.Suggestion)
	}
}

func TestClassifyError_Network(t *testing.T) {
	cliErr := ClassifyError(gateway.ErrNetwork)
	if cliErr.ExitCode != ExitNetwork {
		t.Errorf("expected network exit code, got %d", cliErr.ExitCode)
	}
	if cliErr.Summary != "network error: check your connection" {
		t.Errorf("expected fixed network message, got %q", cliErr.Summary)
	}
}

func TestClassifyError_APIStatus(t *testing.T) {
	err := &gateway.APIError{Status: 404}

	cliErr := ClassifyError(err)
	if cliErr.ExitCode != ExitAPIError {
		t.Errorf("expected API exit code, got %d", cliErr.ExitCode)
	}
	if cliErr.Summary != "request failed with status 404" {
		t.Errorf("unexpected summary %q", cliErr.Summary)
	}
}

func TestClassifyError_PassthroughCLIError(t *testing.T) {
	orig := &CLIError{Summary: "no reason given", ExitCode: ExitUsageError}
	if got := ClassifyError(orig); got != orig {
		t.Error("expected existing CLIError to pass through unchanged")
	}
}

func TestClassifyError_Generic(t *testing.T) {
	cliErr := ClassifyError(errors.New("boom"))
	if cliErr.ExitCode != ExitGeneral {
		t.Errorf("expected general exit code, got %d", cliErr.ExitCode)
	}
	if cliErr.Summary != "boom" {
		t.Errorf("expected raw message, got %q", cliErr.Summary)
	}
}

func TestFormatError_NoColors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(false)
	p.SetWriters(&buf, &buf)

	p.FormatError(&CLIError{
		Summary:    "session expired",
		Detail:     "backend returned status 401",
		Suggestion: "run 'evctl login'",
	})

	out := buf.String()
	for _, want := range []string{"[ERROR] session expired", "Cause: backend returned status 401", "Suggestion: run 'evctl login'"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}
