// Package session owns the persisted login state for evctl.
//
// The store is the single source of truth for "who is logged in". The
// bearer token and the identity summary are always written and cleared
// together: they live in one session file, replaced atomically, so a
// restart can never observe one half of a login.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Identity is the summary of the logged-in user as returned by the backend.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	KYCStatus string `json:"kyc_status"`
}

// state is the on-disk session file layout.
type state struct {
	Token    string    `json:"token"`
	Identity *Identity `json:"identity"`
}

// Store holds the current session in memory and persists it to a single
// file. All mutation goes through SaveLogin, Logout, and Invalidate;
// everything else is read-only access.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	token    string
	identity *Identity
	restored bool

	subMu       sync.Mutex
	invalidated []func()
}

// NewStore creates a session store backed by the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Restore reads the persisted session, if any, into memory. It is called
// once at startup and never fails: a missing, unreadable, or partial
// session file simply leaves the store anonymous.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restored = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("session file unreadable, starting anonymous", "path", s.path, "error", err)
		}
		return
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.Debug("session file corrupt, starting anonymous", "path", s.path, "error", err)
		return
	}

	// Token and identity are only ever valid as a pair.
	if st.Token == "" || st.Identity == nil {
		s.logger.Debug("session file incomplete, starting anonymous", "path", s.path)
		return
	}

	s.token = st.Token
	s.identity = st.Identity
	s.logger.Debug("session restored", "user", st.Identity.Email)
}

// SaveLogin stores the credential and identity in memory and persists
// them together. Called after a successful backend login.
func (s *Store) SaveLogin(token string, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(state{Token: token, Identity: &id}); err != nil {
		return err
	}
	s.token = token
	s.identity = &id
	return nil
}

// Logout clears the in-memory and persisted session. It is idempotent:
// logging out with no active session is not an error.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// Invalidate clears the session like Logout and then notifies
// subscribers. The request gateway calls this when the backend answers
// 401; the top-level command surface subscribes to tell the user to log
// in again.
func (s *Store) Invalidate() {
	s.mu.Lock()
	had := s.token != ""
	if err := s.clearLocked(); err != nil {
		s.logger.Debug("failed to clear session file", "error", err)
	}
	s.mu.Unlock()

	if !had {
		return
	}
	s.subMu.Lock()
	subs := make([]func(), len(s.invalidated))
	copy(subs, s.invalidated)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// OnInvalidated registers a callback to run after a forced invalidation.
func (s *Store) OnInvalidated(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.invalidated = append(s.invalidated, fn)
}

// Token returns the current bearer token, or empty when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns the current identity and whether a session exists.
func (s *Store) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Restored reports whether Restore has run.
func (s *Store) Restored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restored
}

// clearLocked wipes memory and removes the session file. Caller holds mu.
func (s *Store) clearLocked() error {
	s.token = ""
	s.identity = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// persist writes the session file atomically with owner-only permissions.
// Caller holds mu.
func (s *Store) persist(st state) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}
