// Package parser provides Bash command parsing capabilities using mvdan.cc/sh
package parser

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Location represents position in source code.
type Location struct {
	Line   uint
	Column uint
}

// Command represents a parsed command with metadata.
type Command struct {
	Name     string   // Command name (e.g., "rm")
	Args     []string // Command arguments
	Location Location // Position in source
}

// String returns a string representation of the command.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	return fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))
}

// HasFlag reports whether the command carries the given flag, either as a
// standalone argument ("-f", "--force") or folded into a short flag group
// ("-rf" contains "-r" and "-f").
func (c *Command) HasFlag(flag string) bool {
	for _, arg := range c.Args {
		if arg == flag {
			return true
		}

		// Combined short flags: -rf matches -r and -f
		if len(flag) == 2 && flag[0] == '-' && flag[1] != '-' &&
			len(arg) > 2 && arg[0] == '-' && arg[1] != '-' {
			if strings.ContainsRune(arg[1:], rune(flag[1])) {
				return true
			}
		}
	}

	return false
}

// PositionalArgs returns arguments that are not flags.
func (c *Command) PositionalArgs() []string {
	args := make([]string, 0, len(c.Args))

	for _, arg := range c.Args {
		if !strings.HasPrefix(arg, "-") {
			args = append(args, arg)
		}
	}

	return args
}

// wordToString converts syntax.Word to string, handling quotes and expansions.
func wordToString(word *syntax.Word) string {
	if word == nil {
		return ""
	}

	var result strings.Builder

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			result.WriteString(p.Value)
		case *syntax.SglQuoted:
			result.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, dqPart := range p.Parts {
				if lit, ok := dqPart.(*syntax.Lit); ok {
					result.WriteString(lit.Value)
				}
			}
		case *syntax.ParamExp:
			// Keep parameter expansions visible so "$HOME" and "~"
			// style targets can still be inspected.
			result.WriteString("$" + p.Param.Value)
		}
	}

	return result.String()
}

// wordsToStrings converts a slice of syntax.Word to a string slice.
func wordsToStrings(words []*syntax.Word) []string {
	result := make([]string, 0, len(words))

	for _, word := range words {
		if s := wordToString(word); s != "" {
			result = append(result, s)
		}
	}

	return result
}
