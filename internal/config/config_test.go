package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdir changes into dir for the duration of the test, restoring the
// original working directory on cleanup. It mirrors testing.T.Chdir,
// which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("expected default base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("expected 30s default timeout, got %s", cfg.API.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info log level, got %q", cfg.Logging.Level)
	}
	if !cfg.Output.Colors {
		t.Error("expected colors enabled by default")
	}
	if cfg.Session.File == "" {
		t.Error("expected session file path to be resolved")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".evctl.yaml")
	content := `
api:
  base_url: https://api.example.com
  timeout: 10s
logging:
  level: debug
output:
  colors: false
`
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("expected configured base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.API.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
	if cfg.Output.Colors {
		t.Error("expected colors disabled")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EVCTL_API_URL", "http://staging.example.com:9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "http://staging.example.com:9000" {
		t.Errorf("expected env base URL, got %q", cfg.API.BaseURL)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".evctl.yaml")
	if err := os.WriteFile(cfgFile, []byte("api:\n  base_url: ftp://nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(cfgFile); err == nil {
		t.Fatal("expected error for non-http base URL")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".evctl.yaml")
	if err := os.WriteFile(cfgFile, []byte("logging:\n  level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(cfgFile); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestDefaultSessionFile_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got := DefaultSessionFile()
	want := filepath.Join(dir, "evctl", "session.json")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
