package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ev-platform/evctl/internal/session"
)

// staticToken is a TokenSource returning a fixed credential.
type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestCall_Success(t *testing.T) {
	var gotPath, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"r-1","status":"created"}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))

	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := client.Get(context.Background(), "/rides/r-1", &out); err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	if gotPath != "/api/v1/rides/r-1" {
		t.Errorf("expected versioned path, got %q", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	if out.ID != "r-1" || out.Status != "created" {
		t.Errorf("unexpected decoded response: %+v", out)
	}
}

func TestCall_AuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithTokenSource(staticToken("tok-123")))
	if err := client.Get(context.Background(), "/users/me", nil); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestCall_NoAuthorizationHeaderWithoutSession(t *testing.T) {
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithTokenSource(staticToken("")))
	if err := client.Get(context.Background(), "/vehicles", nil); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if hadAuth {
		t.Error("expected no Authorization header without a session")
	}
}

func TestCall_ErrorStatus_BackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Ride must be paid before assignment"}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	err := client.Post(context.Background(), "/rides/r-1/assign", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.Status)
	}
	if apiErr.Error() != "Ride must be paid before assignment" {
		t.Errorf("expected backend detail message, got %q", apiErr.Error())
	}
}

func TestCall_ErrorStatus_GenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	err := client.Get(context.Background(), "/rides/missing", nil)

	if err == nil || err.Error() != "request failed with status 404" {
		t.Errorf("expected generic status message, got %v", err)
	}
}

func TestCall_Unauthorized_ClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer srv.Close()

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"), slog.Default())
	if err := store.SaveLogin("stale-token", session.Identity{ID: "u-1", Email: "a@b.c"}); err != nil {
		t.Fatal(err)
	}

	client := New(
		WithBaseURL(srv.URL),
		WithTokenSource(store),
		WithOnUnauthorized(store.Invalidate),
	)

	for _, call := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/rides"},
		{http.MethodPost, "/parcels"},
	} {
		if err := store.SaveLogin("stale-token", session.Identity{ID: "u-1"}); err != nil {
			t.Fatal(err)
		}
		err := client.Call(context.Background(), call.method, call.path, nil, nil)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("%s %s: expected ErrUnauthorized, got %v", call.method, call.path, err)
		}
		if store.Authenticated() {
			t.Errorf("%s %s: expected session cleared after 401", call.method, call.path)
		}
		if tok := store.Token(); tok != "" {
			t.Errorf("%s %s: expected empty token, got %q", call.method, call.path, tok)
		}
	}
}

func TestCall_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	client := New(WithBaseURL(srv.URL))
	err := client.Get(context.Background(), "/rides", nil)

	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if err.Error() != "network error: check your connection" {
		t.Errorf("expected fixed network message, got %q", err.Error())
	}
}

func TestCall_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release // never respond within the test timeout
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	const ceiling = 100 * time.Millisecond
	client := New(WithBaseURL(srv.URL), WithTimeout(ceiling))

	start := time.Now()
	err := client.Get(context.Background(), "/rides", nil)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork on timeout, got %v", err)
	}
	if err.Error() != "network error: check your connection" {
		t.Errorf("timeout must surface the fixed network message, got %q", err.Error())
	}
	if elapsed < ceiling {
		t.Errorf("call settled before the ceiling: %s < %s", elapsed, ceiling)
	}
}

func TestCall_ConstructionFailure(t *testing.T) {
	client := New(WithBaseURL("http://localhost:0"))

	// An invalid method cannot be turned into a request at all.
	err := client.Call(context.Background(), "BAD METHOD", "/rides", nil, nil)
	if err == nil {
		t.Fatal("expected construction error")
	}
	if errors.Is(err, ErrNetwork) {
		t.Error("construction failure must not be classified as a network error")
	}
}

func TestCall_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	if err := client.Get(context.Background(), "/rides", nil); err == nil {
		t.Fatal("expected error from 500 response")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("expected exactly one attempt, got %d", n)
	}
}
