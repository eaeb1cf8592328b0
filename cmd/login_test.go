package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
)

func loginHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding login body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "token-abc",
			"token_type":   "bearer",
			"user": map[string]interface{}{
				"id":         "user-1",
				"email":      req.Email,
				"full_name":  "Test Rider",
				"role":       "passenger",
				"kyc_status": "pending",
			},
		})
	})
	return mux
}

func TestLogin_PersistsSession(t *testing.T) {
	buf := setupCLITest(t, loginHandler(t))

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"login", "--email", "rider@example.com"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if !store.Authenticated() {
		t.Error("expected store to be authenticated after login")
	}
	if store.Token() != "token-abc" {
		t.Errorf("expected token 'token-abc', got %q", store.Token())
	}
	id, ok := store.Identity()
	if !ok {
		t.Fatal("expected identity after login")
	}
	if id.Email != "rider@example.com" {
		t.Errorf("expected identity email to match login, got %q", id.Email)
	}

	// Token and identity land in the session file together.
	data, err := os.ReadFile(cfg.Session.File)
	if err != nil {
		t.Fatalf("reading session file: %v", err)
	}
	if !strings.Contains(string(data), "token-abc") || !strings.Contains(string(data), "rider@example.com") {
		t.Errorf("session file missing token or identity:\n%s", data)
	}

	if !strings.Contains(buf.String(), "Logged in as Test Rider") {
		t.Errorf("expected login confirmation, got:\n%s", buf.String())
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	buf := setupCLITest(t, http.NotFoundHandler())
	loginTestSession(t)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"logout"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if store.Authenticated() {
		t.Error("expected store to be anonymous after logout")
	}
	if _, err := os.Stat(cfg.Session.File); !os.IsNotExist(err) {
		t.Errorf("expected session file removed, stat err: %v", err)
	}
	if !strings.Contains(buf.String(), "Logged out") {
		t.Errorf("expected logout confirmation, got:\n%s", buf.String())
	}
}

func TestLogout_NoSession(t *testing.T) {
	buf := setupCLITest(t, http.NotFoundHandler())

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"logout"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("logout without session failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No active session") {
		t.Errorf("expected no-session message, got:\n%s", buf.String())
	}
}

func TestWhoami_Local(t *testing.T) {
	buf := setupCLITest(t, http.NotFoundHandler())
	loginTestSession(t)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"whoami"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("whoami failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "rider@example.com") {
		t.Errorf("expected whoami output to show email, got:\n%s", out)
	}
}
