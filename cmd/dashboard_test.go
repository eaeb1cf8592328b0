package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func dashboardHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/rides/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("status"); got != "in_progress" {
			t.Errorf("expected in_progress ride filter, got %q", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "ride-1", "pickup_address": "MG Road", "drop_address": "Cubbon Park", "vehicle_type": "scooter", "status": "in_progress"},
		})
	})
	mux.HandleFunc("/api/v1/parcels/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
	})
	mux.HandleFunc("/api/v1/vehicles/", func(w http.ResponseWriter, r *http.Request) {
		// The backend only includes unapproved listings when asked.
		if r.URL.Query().Get("available_only") != "false" {
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "veh-1", "vehicle_type": "scooter", "make": "Ather", "model": "450X", "registration_number": "KA01AB1234", "status": "pending"},
		})
	})
	mux.HandleFunc("/api/v1/audit/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
	})
	return mux
}

func TestDashboard_Snapshot(t *testing.T) {
	buf := setupCLITest(t, dashboardHandler(t))
	loginTestSession(t)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"dashboard"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	out := buf.String()
	for _, section := range []string{"Active rides (1)", "Pending parcels (0)", "Listings awaiting approval (1)", "Recent audit events (0)"} {
		if !strings.Contains(out, section) {
			t.Errorf("expected dashboard section %q, got:\n%s", section, out)
		}
	}
}

func TestDashboard_SectionFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/rides/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
	})
	mux.HandleFunc("/api/v1/parcels/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
	})
	mux.HandleFunc("/api/v1/vehicles/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "vehicle index unavailable"}`, http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/v1/audit/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
	})

	buf := setupCLITest(t, mux)
	loginTestSession(t)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"dashboard"})

	// One failed section fails the whole refresh; nothing partial renders.
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error when a dashboard section fails")
	}
	if strings.Contains(buf.String(), "Active rides") {
		t.Errorf("expected no partial dashboard output, got:\n%s", buf.String())
	}
}
