package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
)

func TestRideBook_Confirmation(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/rides/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding booking body: %v", err)
		}
		if body["vehicle_type"] != "scooter" {
			t.Errorf("expected vehicle_type scooter, got %v", body["vehicle_type"])
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":             "abc123",
			"status":         "created",
			"estimated_fare": 28.5,
		})
	})

	buf := setupCLITest(t, mux)
	loginTestSession(t)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{
		"ride", "book",
		"--pickup", "12.9716,77.5946", "--pickup-address", "MG Road",
		"--drop", "12.9789,77.5917", "--drop-address", "Cubbon Park",
		"--type", "scooter",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("ride book failed: %v", err)
	}

	// The confirmation carries the booking ID the backend assigned.
	if !strings.Contains(buf.String(), "abc123") {
		t.Errorf("expected confirmation to contain ride ID, got:\n%s", buf.String())
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer token on booking request, got %q", gotAuth)
	}
}

func TestRideBook_BadCoordinates(t *testing.T) {
	var calls int64
	setupCLITest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	loginTestSession(t)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{
		"ride", "book",
		"--pickup", "not-coordinates", "--pickup-address", "MG Road",
		"--drop", "12.9789,77.5917", "--drop-address", "Cubbon Park",
	})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for malformed coordinates")
	}
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("expected no backend calls for invalid input, got %d", n)
	}
}

func TestRideFare_Offline(t *testing.T) {
	var calls int64
	buf := setupCLITest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{
		"ride", "fare",
		"--pickup", "12.9716,77.5946",
		"--drop", "12.9789,77.5917",
		"--type", "scooter",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("ride fare failed: %v", err)
	}

	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("fare estimate must not contact the backend, got %d calls", n)
	}
	if !strings.Contains(buf.String(), "INR") {
		t.Errorf("expected fare estimate in output, got:\n%s", buf.String())
	}
}

func TestRideCancel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/rides/ride-9", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			var body map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["status"] != "cancelled" {
				t.Errorf("expected cancel to set status cancelled, got %v", body["status"])
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "ride-9",
			"status": "cancelled",
		})
	})

	buf := setupCLITest(t, mux)
	loginTestSession(t)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"ride", "cancel", "ride-9"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("ride cancel failed: %v", err)
	}
	if !strings.Contains(buf.String(), "cancelled") {
		t.Errorf("expected cancel confirmation, got:\n%s", buf.String())
	}
}
