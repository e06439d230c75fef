package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// Tracker applies session lifecycle events to the persisted state.
// Every method is a no-op when tracking is disabled; tracking failures
// are logged and swallowed so they can never affect the hook decision.
type Tracker struct {
	store  *Store
	config *config.SessionConfig
	logger logger.Logger
	now    func() time.Time
}

// NewTracker creates a tracker persisting through the given store.
func NewTracker(store *Store, cfg *config.SessionConfig, log logger.Logger) *Tracker {
	return &Tracker{
		store:  store,
		config: cfg,
		logger: log,
		now:    time.Now,
	}
}

// Start records a session start, purging expired sessions as a side
// effect. Returns the session ID, generating one when the host did not
// supply it.
func (t *Tracker) Start(sessionID, workDir string) string {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if !t.config.IsEnabled() {
		return sessionID
	}

	err := t.store.Update(func(state *State) error {
		now := t.now()

		if purged := state.Purge(now, t.config.GetMaxSessionAge()); purged > 0 {
			t.logger.Debug("purged expired sessions", "count", purged)
		}

		state.Put(&Info{
			ID:         sessionID,
			Status:     StatusActive,
			StartedAt:  now,
			LastSeenAt: now,
			WorkDir:    workDir,
		})

		return nil
	})
	if err != nil {
		t.logger.Error("failed to record session start", "error", err)
	}

	return sessionID
}

// RecordPrompt increments the prompt counter for the session.
func (t *Tracker) RecordPrompt(sessionID string) {
	t.touch(sessionID, func(info *Info) {
		info.PromptCount++
	})
}

// RecordCommand increments the command counter for the session.
func (t *Tracker) RecordCommand(sessionID string) {
	t.touch(sessionID, func(info *Info) {
		info.CommandCount++
	})
}

// Poison marks the session poisoned with a reason. Poisoning is
// sticky: once set, the reason is kept until the session ends.
func (t *Tracker) Poison(sessionID, reason string) {
	t.touch(sessionID, func(info *Info) {
		if info.Status == StatusPoisoned {
			return
		}

		info.Status = StatusPoisoned
		info.PoisonReason = reason
	})
}

// PoisonReason returns the poison reason for the session, or "" when
// the session is not poisoned or not tracked.
func (t *Tracker) PoisonReason(sessionID string) string {
	if sessionID == "" || !t.config.IsEnabled() {
		return ""
	}

	state, err := t.store.Load()
	if err != nil {
		t.logger.Error("failed to load session state", "error", err)

		return ""
	}

	info := state.Get(sessionID)
	if info == nil || info.Status != StatusPoisoned {
		return ""
	}

	return info.PoisonReason
}

// End marks the session ended.
func (t *Tracker) End(sessionID string) {
	t.touch(sessionID, func(info *Info) {
		info.Status = StatusEnded
		info.EndedAt = t.now()
	})
}

// List returns all tracked sessions.
func (t *Tracker) List() ([]*Info, error) {
	state, err := t.store.Load()
	if err != nil {
		return nil, err
	}

	sessions := make([]*Info, 0, len(state.Sessions))
	for _, info := range state.Sessions {
		sessions = append(sessions, info)
	}

	return sessions, nil
}

// touch applies fn to the session, creating a record first when the
// session was never started (the host may deliver events out of order).
func (t *Tracker) touch(sessionID string, fn func(*Info)) {
	if sessionID == "" || !t.config.IsEnabled() {
		return
	}

	err := t.store.Update(func(state *State) error {
		now := t.now()

		info := state.Get(sessionID)
		if info == nil {
			info = &Info{
				ID:        sessionID,
				Status:    StatusActive,
				StartedAt: now,
			}
			state.Put(info)
		}

		info.LastSeenAt = now
		fn(info)

		return nil
	})
	if err != nil {
		t.logger.Error("failed to update session state", "session", sessionID, "error", err)
	}
}
