// Package parser provides JSON input parsing for host hook invocations.
package parser

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/popkit-dev/popkit/pkg/hook"
)

var (
	// ErrEmptyInput is returned when the input is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidJSON is returned when the input is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// ToolInputEnvVar is consulted when stdin carries no input. Some host
// versions deliver the payload through the environment instead.
const ToolInputEnvVar = "POPKIT_TOOL_INPUT"

// JSONInput represents the raw JSON input structure.
type JSONInput struct {
	HookEventName    string          `json:"hook_event_name,omitempty"`
	Event            string          `json:"event,omitempty"`
	ToolName         string          `json:"tool_name,omitempty"`
	Tool             string          `json:"tool,omitempty"`
	ToolInput        json.RawMessage `json:"tool_input,omitempty"`
	Command          string          `json:"command,omitempty"`
	Prompt           string          `json:"prompt,omitempty"`
	NotificationType string          `json:"notification_type,omitempty"`
	SessionID        string          `json:"session_id,omitempty"`
	Cwd              string          `json:"cwd,omitempty"`
	ToolUseID        string          `json:"tool_use_id,omitempty"`
	TranscriptPath   string          `json:"transcript_path,omitempty"`
}

// JSONParser parses JSON input from stdin or the environment.
type JSONParser struct {
	reader io.Reader
}

// NewJSONParser creates a new JSONParser that reads from the given reader.
func NewJSONParser(reader io.Reader) *JSONParser {
	return &JSONParser{
		reader: reader,
	}
}

// Parse reads one JSON document and extracts the hook context.
//
// flagEvent is the event type supplied on the command line; when it is
// EventTypeUnknown, the event is taken from the document's
// hook_event_name field. An event name outside the known set yields
// EventTypeUnknown, which callers treat as allow (fail-open).
func (p *JSONParser) Parse(flagEvent hook.EventType) (*hook.Context, error) {
	jsonBytes, err := io.ReadAll(p.reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	if len(jsonBytes) == 0 {
		envInput := os.Getenv(ToolInputEnvVar)
		if envInput == "" {
			return nil, ErrEmptyInput
		}

		jsonBytes = []byte(envInput)
	}

	var input JSONInput

	if unmarshalErr := json.Unmarshal(jsonBytes, &input); unmarshalErr != nil {
		return nil, errors.CombineErrors(ErrInvalidJSON, unmarshalErr)
	}

	eventName := input.HookEventName
	if eventName == "" {
		// Older host versions send "event" instead of "hook_event_name".
		eventName = input.Event
	}

	eventType := flagEvent
	if eventType == hook.EventTypeUnknown && eventName != "" {
		if parsed, parseErr := hook.EventTypeString(eventName); parseErr == nil {
			eventType = parsed
		}
	}

	toolName := input.ToolName
	if toolName == "" {
		toolName = input.Tool
	}

	var toolInput hook.ToolInput

	if len(input.ToolInput) > 0 {
		if unmarshalErr := json.Unmarshal(input.ToolInput, &toolInput); unmarshalErr != nil {
			// Unparseable tool_input: fall back to the top-level command
			// so shell rules still see something.
			toolInput.Command = input.Command
		}
	} else {
		toolInput.Command = input.Command
	}

	parsedToolType, parseErr := hook.ToolTypeString(toolName)
	if parseErr != nil {
		// Unknown tool names pass through as ToolTypeUnknown.
		parsedToolType = hook.ToolTypeUnknown
	}

	return &hook.Context{
		EventType:        eventType,
		ToolName:         parsedToolType,
		ToolInput:        toolInput,
		Prompt:           input.Prompt,
		NotificationType: input.NotificationType,
		SessionID:        input.SessionID,
		WorkDir:          input.Cwd,
		ToolUseID:        input.ToolUseID,
		TranscriptPath:   input.TranscriptPath,
		RawJSON:          string(jsonBytes),
	}, nil
}
