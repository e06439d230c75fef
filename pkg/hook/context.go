// Package hook provides core types for host hook invocations.
package hook

import "encoding/json"

//go:generate enumer -type=EventType -trimprefix=EventType -json -text
//go:generate enumer -type=ToolType -trimprefix=ToolType -json -text

// EventType represents the lifecycle event that triggered the hook.
type EventType int

const (
	// EventTypeUnknown represents an event name outside the known set.
	// Unknown events are always allowed (fail-open).
	EventTypeUnknown EventType = iota

	// EventTypePreToolUse is triggered before a tool executes.
	EventTypePreToolUse

	// EventTypePostToolUse is triggered after a tool executes.
	EventTypePostToolUse

	// EventTypeUserPromptSubmit is triggered when the user submits a prompt.
	EventTypeUserPromptSubmit

	// EventTypeNotification is triggered for user notifications.
	EventTypeNotification

	// EventTypeStop is triggered when the main agent finishes responding.
	EventTypeStop

	// EventTypeSubagentStop is triggered when a subagent finishes.
	EventTypeSubagentStop

	// EventTypeSessionStart is triggered when a session begins.
	EventTypeSessionStart

	// EventTypeSessionEnd is triggered when a session terminates.
	EventTypeSessionEnd
)

// ToolType represents the tool being invoked by the host.
type ToolType int

const (
	// ToolTypeUnknown represents a tool name outside the known set.
	ToolTypeUnknown ToolType = iota

	// ToolTypeBash represents the shell execution tool.
	ToolTypeBash

	// ToolTypeWrite represents the file creation tool.
	ToolTypeWrite

	// ToolTypeEdit represents the file modification tool.
	ToolTypeEdit

	// ToolTypeMultiEdit represents the multi-file modification tool.
	ToolTypeMultiEdit

	// ToolTypeRead represents the file reading tool.
	ToolTypeRead

	// ToolTypeGlob represents the file pattern matching tool.
	ToolTypeGlob

	// ToolTypeGrep represents the content search tool.
	ToolTypeGrep

	// ToolTypeTask represents the subagent spawning tool.
	ToolTypeTask

	// ToolTypeWebFetch represents the URL fetching tool.
	ToolTypeWebFetch
)

// ToolInput contains the raw tool input data.
type ToolInput struct {
	// Command is the shell command for the Bash tool.
	Command string `json:"command,omitempty"`

	// FilePath is the file path for file operations.
	FilePath string `json:"file_path,omitempty"`

	// Path is an alternative field for file path.
	Path string `json:"path,omitempty"`

	// Content is the file content for the Write tool.
	Content string `json:"content,omitempty"`

	// OldString is the string to replace for the Edit tool.
	OldString string `json:"old_string,omitempty"`

	// NewString is the replacement string for the Edit tool.
	NewString string `json:"new_string,omitempty"`

	// Pattern is the search pattern for Grep/Glob tools.
	Pattern string `json:"pattern,omitempty"`

	// Additional fields stored as raw JSON.
	Additional map[string]json.RawMessage `json:"-"`
}

// Context represents the complete hook invocation context.
// One Context exists per process invocation and never outlives it.
type Context struct {
	// EventType is the lifecycle event that triggered the hook.
	EventType EventType

	// ToolName is the tool being invoked (tool-scoped events only).
	ToolName ToolType

	// ToolInput contains the tool-specific input parameters.
	ToolInput ToolInput

	// Prompt is the user prompt text (UserPromptSubmit events).
	Prompt string

	// NotificationType is the notification kind (Notification events).
	NotificationType string

	// SessionID is the unique identifier for the host session.
	SessionID string

	// WorkDir is the project working directory reported by the host.
	WorkDir string

	// ToolUseID is the unique identifier for this tool invocation.
	ToolUseID string

	// TranscriptPath is the path to the session transcript file.
	TranscriptPath string

	// RawJSON contains the original JSON input for advanced parsing.
	RawJSON string
}

// GetCommand returns the command from ToolInput.
func (c *Context) GetCommand() string {
	return c.ToolInput.Command
}

// GetFilePath returns the file path from ToolInput, preferring FilePath over Path.
func (c *Context) GetFilePath() string {
	if c.ToolInput.FilePath != "" {
		return c.ToolInput.FilePath
	}

	return c.ToolInput.Path
}

// GetContent returns the file content from ToolInput.
func (c *Context) GetContent() string {
	return c.ToolInput.Content
}

// IsBashTool returns true if the tool is Bash.
func (c *Context) IsBashTool() bool {
	return c.ToolName == ToolTypeBash
}

// IsFileTool returns true if the tool mutates files (Write, Edit, MultiEdit).
func (c *Context) IsFileTool() bool {
	return c.ToolName == ToolTypeWrite ||
		c.ToolName == ToolTypeEdit ||
		c.ToolName == ToolTypeMultiEdit
}

// HasSessionID returns true if a session ID is present.
func (c *Context) HasSessionID() bool {
	return c.SessionID != ""
}
