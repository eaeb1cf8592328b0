package cmd

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
)

func TestCompletion_Bash(t *testing.T) {
	setupCLITest(t, http.NotFoundHandler())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"completion", "bash"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("completion bash failed: %v", err)
	}
	if !strings.Contains(buf.String(), "evctl") {
		t.Errorf("expected bash completion script for evctl, got %d bytes", buf.Len())
	}
}

func TestCompletion_RejectsUnknownShell(t *testing.T) {
	setupCLITest(t, http.NotFoundHandler())

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"completion", "tcsh"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for an unsupported shell")
	}
}
