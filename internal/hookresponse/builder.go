package hookresponse

import (
	"strings"

	"github.com/popkit-dev/popkit/internal/dispatcher"
	"github.com/popkit-dev/popkit/pkg/hook"
)

// Builder assembles a Response from dispatch outcomes.
type Builder struct {
	eventType     hook.EventType
	decision      string
	reason        string
	warnings      []string
	extraContext  []string
	systemMessage string
}

// NewBuilder creates a Builder defaulting to allow.
func NewBuilder(eventType hook.EventType) *Builder {
	return &Builder{
		eventType: eventType,
		decision:  DecisionAllow,
	}
}

// Allow marks the response as allowing the operation.
func (b *Builder) Allow() *Builder {
	b.decision = DecisionAllow
	b.reason = ""

	return b
}

// Deny marks the response as denying the operation with a reason.
// The first deny wins; later calls do not replace the reason.
func (b *Builder) Deny(reason string) *Builder {
	if b.decision == DecisionDeny {
		return b
	}

	b.decision = DecisionDeny
	b.reason = reason

	return b
}

// AddWarning appends an advisory message to the system message.
func (b *Builder) AddWarning(message string) *Builder {
	if message != "" {
		b.warnings = append(b.warnings, message)
	}

	return b
}

// AddContext appends text to the event-scoped additionalContext field
// (UserPromptSubmit and SessionStart events).
func (b *Builder) AddContext(text string) *Builder {
	if text != "" {
		b.extraContext = append(b.extraContext, text)
	}

	return b
}

// WithSystemMessage sets the system message directly, replacing any
// accumulated warnings.
func (b *Builder) WithSystemMessage(message string) *Builder {
	b.systemMessage = message

	return b
}

// FromDispatch folds a dispatch result into the builder: a block
// becomes a deny, non-blocking failures become warnings.
func (b *Builder) FromDispatch(result *dispatcher.DispatchResult) *Builder {
	if result == nil {
		return b
	}

	if result.Blocked {
		b.Deny(result.BlockReason)
	}

	for _, warning := range result.Warnings() {
		b.AddWarning(warning)
	}

	return b
}

// Build produces the final Response.
func (b *Builder) Build() *Response {
	response := &Response{
		Decision: b.decision,
		Reason:   b.reason,
	}

	switch {
	case b.systemMessage != "":
		response.SystemMessage = b.systemMessage
	case len(b.warnings) > 0:
		response.SystemMessage = strings.Join(b.warnings, "\n")
	}

	response.HookSpecificOutput = b.buildHookSpecificOutput()

	return response
}

// buildHookSpecificOutput emits the event-scoped mirror for events that
// define one.
func (b *Builder) buildHookSpecificOutput() *HookSpecificOutput {
	switch b.eventType {
	case hook.EventTypePreToolUse:
		return &HookSpecificOutput{
			HookEventName:            b.eventType.String(),
			PermissionDecision:       b.decision,
			PermissionDecisionReason: b.reason,
		}

	case hook.EventTypeUserPromptSubmit, hook.EventTypeSessionStart:
		if len(b.extraContext) == 0 {
			return nil
		}

		return &HookSpecificOutput{
			HookEventName:     b.eventType.String(),
			AdditionalContext: strings.Join(b.extraContext, "\n\n"),
		}

	default:
		return nil
	}
}
