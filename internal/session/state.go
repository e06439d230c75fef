// Package session tracks host session lifecycle across hook invocations.
package session

import (
	"time"
)

// Status is the lifecycle state of a tracked session.
type Status string

const (
	// StatusActive marks a session that has started and not ended.
	StatusActive Status = "active"

	// StatusPoisoned marks a session in which a blocking error occurred.
	// Subsequent tool use in a poisoned session is denied until the
	// session ends.
	StatusPoisoned Status = "poisoned"

	// StatusEnded marks a session that has terminated.
	StatusEnded Status = "ended"
)

// Info is the persisted record of one host session.
type Info struct {
	ID           string    `json:"id"`
	Status       Status    `json:"status"`
	StartedAt    time.Time `json:"started_at"`
	LastSeenAt   time.Time `json:"last_seen_at"`
	EndedAt      time.Time `json:"ended_at,omitempty"`
	WorkDir      string    `json:"work_dir,omitempty"`
	PromptCount  int       `json:"prompt_count"`
	CommandCount int       `json:"command_count"`
	PoisonReason string    `json:"poison_reason,omitempty"`
}

// IsActive returns true for sessions that have not ended.
func (i *Info) IsActive() bool {
	return i.Status == StatusActive || i.Status == StatusPoisoned
}

// Age returns the time since the session was last seen.
func (i *Info) Age(now time.Time) time.Duration {
	return now.Sub(i.LastSeenAt)
}

// State is the full persisted session table, keyed by session ID.
type State struct {
	Sessions map[string]*Info `json:"sessions"`
}

// NewState creates an empty state.
func NewState() *State {
	return &State{
		Sessions: make(map[string]*Info),
	}
}

// Get returns the session with the given ID, or nil.
func (s *State) Get(id string) *Info {
	return s.Sessions[id]
}

// Put stores the session, replacing any existing record.
func (s *State) Put(info *Info) {
	if s.Sessions == nil {
		s.Sessions = make(map[string]*Info)
	}

	s.Sessions[info.ID] = info
}

// Purge removes sessions last seen more than maxAge ago and returns
// how many were removed. Ended sessions are purged regardless of age.
func (s *State) Purge(now time.Time, maxAge time.Duration) int {
	purged := 0

	for id, info := range s.Sessions {
		if info.Status == StatusEnded || info.Age(now) > maxAge {
			delete(s.Sessions, id)

			purged++
		}
	}

	return purged
}
