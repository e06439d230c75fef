package parser

import (
	"strings"

	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrEmptyCommand is returned when trying to parse an empty command.
	ErrEmptyCommand = errors.New("empty command")

	// ErrParseFailed is returned when parsing fails.
	ErrParseFailed = errors.New("failed to parse command")
)

// WriteOp represents a file write operation kind.
type WriteOp int

const (
	// WriteOpNone means no file write.
	WriteOpNone WriteOp = iota
	// WriteOpRedirect is an output redirection (>).
	WriteOpRedirect
	// WriteOpAppend is an append redirection (>>).
	WriteOpAppend
	// WriteOpHeredoc is a heredoc written through a redirection.
	WriteOpHeredoc
	// WriteOpTee is a write via the tee command.
	WriteOpTee
	// WriteOpCopy is a write via cp.
	WriteOpCopy
	// WriteOpMove is a write via mv.
	WriteOpMove
)

// FileWrite represents a file write detected in a command.
type FileWrite struct {
	Path      string
	Operation WriteOp
	Content   string // heredoc content when available
	Source    string // originating command name for command writes
	Location  Location
}

// Pipeline represents one pipe chain as an ordered list of command names.
type Pipeline struct {
	Commands []string
}

// ParseResult contains the results of parsing a Bash command.
type ParseResult struct {
	Commands   []Command   // All commands found, in source order
	FileWrites []FileWrite // All file write operations
	Pipelines  []Pipeline  // All pipe chains
}

// HasCommand checks if the parse result contains a command with the given name.
func (r *ParseResult) HasCommand(name string) bool {
	for _, cmd := range r.Commands {
		if cmd.Name == name {
			return true
		}
	}

	return false
}

// GetCommands returns all commands with the given name.
func (r *ParseResult) GetCommands(name string) []Command {
	result := make([]Command, 0)

	for _, cmd := range r.Commands {
		if cmd.Name == name {
			result = append(result, cmd)
		}
	}

	return result
}

// BashParser parses Bash commands using mvdan.cc/sh.
type BashParser struct {
	parser *syntax.Parser
}

// NewBashParser creates a new BashParser instance.
func NewBashParser() *BashParser {
	return &BashParser{
		parser: syntax.NewParser(),
	}
}

// Parse parses a Bash command string and extracts commands, file writes,
// and pipe chains.
func (p *BashParser) Parse(command string) (*ParseResult, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, ErrEmptyCommand
	}

	file, err := p.parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, errors.Wrap(ErrParseFailed, err.Error())
	}

	walker := &astWalker{
		commands:   make([]Command, 0),
		fileWrites: make([]FileWrite, 0),
	}

	syntax.Walk(file, walker.visit)

	return &ParseResult{
		Commands:   walker.commands,
		FileWrites: walker.fileWrites,
		Pipelines:  walker.pipelines,
	}, nil
}
