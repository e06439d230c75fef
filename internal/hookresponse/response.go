// Package hookresponse builds and emits the JSON decision document.
package hookresponse

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
)

// Decision values recognized by the host.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
)

// Response is the single JSON document written to stdout. Exactly one
// Response is emitted per invocation, whatever the decision.
type Response struct {
	// Decision is "allow" or "deny".
	Decision string `json:"decision"`

	// Reason explains a deny. Present exactly when Decision is "deny".
	Reason string `json:"reason,omitempty"`

	// SystemMessage carries advisory text shown to the user without
	// affecting the decision (warnings, context notes).
	SystemMessage string `json:"systemMessage,omitempty"`

	// HookSpecificOutput carries event-scoped fields some host versions
	// read in preference to the top-level decision.
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// HookSpecificOutput mirrors the decision in the event-scoped form.
type HookSpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision,omitempty"`
	PermissionDecisionReason string `json:"permissionDecisionReason,omitempty"`
	AdditionalContext        string `json:"additionalContext,omitempty"`
}

// IsDeny returns true when the response denies the operation.
func (r *Response) IsDeny() bool {
	return r.Decision == DecisionDeny
}

// Writer emits at most one response to its destination. Later writes
// are rejected so a bug cannot corrupt the protocol stream with a
// second document.
type Writer struct {
	out     io.Writer
	mu      sync.Mutex
	written bool
}

// ErrAlreadyWritten is returned when a response was already emitted.
var ErrAlreadyWritten = errors.New("response already written")

// NewWriter creates a Writer emitting to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
	}
}

// Write marshals the response and writes it followed by a newline.
func (w *Writer) Write(response *Response) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.written {
		return ErrAlreadyWritten
	}

	data, err := json.Marshal(response)
	if err != nil {
		return errors.Wrap(err, "failed to marshal response")
	}

	data = append(data, '\n')

	if _, err := w.out.Write(data); err != nil {
		return errors.Wrap(err, "failed to write response")
	}

	w.written = true

	return nil
}

// Written reports whether a response has been emitted.
func (w *Writer) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.written
}
