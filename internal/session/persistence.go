package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"

	"github.com/popkit-dev/popkit/internal/xdg"
)

// lockTimeout bounds how long an invocation waits for the state lock.
// Hook processes are short-lived; a stuck lock must not stall the host.
const lockTimeout = 2 * time.Second

// ErrLockTimeout is returned when the state lock cannot be acquired.
var ErrLockTimeout = errors.New("timed out waiting for session state lock")

// Store persists session state to a JSON file. Concurrent hook
// processes are serialized with a sidecar flock; writes go through a
// temp file and rename so readers never observe a partial document.
type Store struct {
	path string
}

// NewStore creates a store over the given state file path. A leading
// ~/ is expanded.
func NewStore(path string) *Store {
	return &Store{
		path: xdg.ExpandHome(path),
	}
}

// Path returns the resolved state file path.
func (s *Store) Path() string {
	return s.path
}

// Update loads the state, applies fn, and saves the result, all under
// the file lock.
func (s *Store) Update(fn func(*State) error) error {
	lock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer lock.Unlock() //nolint:errcheck // best-effort release

	state, err := s.load()
	if err != nil {
		return err
	}

	if err := fn(state); err != nil {
		return err
	}

	return s.save(state)
}

// Load returns the current state under a shared lock.
func (s *Store) Load() (*State, error) {
	lock, err := s.acquireLock()
	if err != nil {
		return nil, err
	}
	defer lock.Unlock() //nolint:errcheck // best-effort release

	return s.load()
}

func (s *Store) acquireLock() (*flock.Flock, error) {
	if err := xdg.EnsureParentDir(s.path); err != nil {
		return nil, err
	}

	lock := flock.New(s.path + ".lock")

	ctx, cancel := lockContext()
	defer cancel()

	ok, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire session state lock")
	}

	if !ok {
		return nil, ErrLockTimeout
	}

	return lock, nil
}

func lockContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), lockTimeout)
}

func (s *Store) load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}

		return nil, errors.Wrap(err, "failed to read session state")
	}

	state := NewState()

	if err := json.Unmarshal(data, state); err != nil {
		// A corrupt state file is discarded rather than wedging every
		// future invocation.
		return NewState(), nil
	}

	if state.Sessions == nil {
		state.Sessions = make(map[string]*Info)
	}

	return state, nil
}

func (s *Store) save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal session state")
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".sessions-*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp state file")
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to write temp state file")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to close temp state file")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to replace state file")
	}

	return nil
}
