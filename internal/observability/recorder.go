// Package observability records hook events to a JSONL log and
// optionally forwards them to an HTTP collector. Recording is strictly
// fire-and-forget: no failure here may surface in the hook decision.
package observability

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/popkit-dev/popkit/internal/xdg"
	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// Event is one JSONL record.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Event     string    `json:"event"`
	Tool      string    `json:"tool,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	WorkDir   string    `json:"work_dir,omitempty"`
	Decision  string    `json:"decision,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// Recorder appends events to the configured JSONL file and forwards
// them when a collector endpoint is set.
type Recorder struct {
	config    *config.ObservabilityConfig
	forwarder *Forwarder
	logger    logger.Logger
	now       func() time.Time
}

// NewRecorder creates a recorder for the given configuration.
func NewRecorder(cfg *config.ObservabilityConfig, log logger.Logger) *Recorder {
	return &Recorder{
		config:    cfg,
		forwarder: NewForwarder(cfg, log),
		logger:    log,
		now:       time.Now,
	}
}

// Record writes one event for the hook context and its decision.
func (r *Recorder) Record(hookCtx *hook.Context, decision, reason string) {
	if !r.config.IsEnabled() {
		return
	}

	event := Event{
		Timestamp: r.now().UTC(),
		Event:     hookCtx.EventType.String(),
		SessionID: hookCtx.SessionID,
		WorkDir:   hookCtx.WorkDir,
		Decision:  decision,
		Reason:    reason,
	}

	if hookCtx.ToolName != hook.ToolTypeUnknown {
		event.Tool = hookCtx.ToolName.String()
	}

	if err := r.append(event); err != nil {
		r.logger.Error("failed to append event", "error", err)
	}

	r.forwarder.Forward(event)
}

// append writes the event as one JSON line.
func (r *Recorder) append(event Event) error {
	path := xdg.ExpandHome(r.config.GetLogFile())

	if err := xdg.EnsureParentDir(path); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to open event log")
	}
	defer file.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	data = append(data, '\n')

	if _, err := file.Write(data); err != nil {
		return errors.Wrap(err, "failed to write event")
	}

	return nil
}
