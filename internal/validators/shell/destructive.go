// Package shell provides validators for shell command operations.
package shell

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/popkit-dev/popkit/internal/validator"
	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
	"github.com/popkit-dev/popkit/pkg/parser"
)

// RootDeleteReason is the exact reason reported for a recursive
// force-delete of the root path.
const RootDeleteReason = "refusing to run recursive force-delete on root path"

// shellNames are interpreters that make a piped download executable.
var shellNames = map[string]bool{
	"sh":   true,
	"bash": true,
	"zsh":  true,
	"dash": true,
	"ksh":  true,
}

// downloaderNames are commands that fetch remote content.
var downloaderNames = map[string]bool{
	"curl":  true,
	"wget":  true,
	"fetch": true,
}

// rawPatterns are checked against the raw command text. They cover
// constructs the AST walk does not surface (fork bombs) plus a safety
// net for commands mvdan fails to parse.
var rawPatterns = []*regexp.Regexp{
	regexp.MustCompile(`:\(\)\s*\{\s*:\|:`),     // fork bomb
	regexp.MustCompile(`\bsudo\s+rm\b`),          // privileged delete
	regexp.MustCompile(`\bmkfs(\.\w+)?\s`),       // filesystem format
	regexp.MustCompile(`\bdd\b.*\bof=/dev/`),     // raw device write
	regexp.MustCompile(`\bchmod\s+(-\w+\s+)*777\s+/\s*$`), // world-writable root
}

// DestructiveValidator denies shell commands known to destroy data:
// recursive force-deletes of root/home/workspace, privileged deletes,
// device-level writes, and piping downloads into a shell.
type DestructiveValidator struct {
	validator.BaseValidator
	config     *config.ShellConfig
	bashParser *parser.BashParser
	extra      []*regexp.Regexp
	allow      []*regexp.Regexp
}

// NewDestructiveValidator creates a new DestructiveValidator instance.
// Invalid configured patterns are skipped and logged rather than
// failing the whole hook.
func NewDestructiveValidator(log logger.Logger, cfg *config.ShellConfig) *DestructiveValidator {
	v := &DestructiveValidator{
		BaseValidator: *validator.NewBaseValidator("validate-destructive-commands", log),
		config:        cfg,
		bashParser:    parser.NewBashParser(),
	}

	if cfg != nil {
		v.extra = compilePatterns(log, cfg.ExtraPatterns)
		v.allow = compilePatterns(log, cfg.AllowList)
	}

	return v
}

func compilePatterns(log logger.Logger, patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			log.Error("skipping invalid pattern", "pattern", p, "error", err)

			continue
		}

		compiled = append(compiled, re)
	}

	return compiled
}

// Validate checks the command against the destructive rule set.
func (v *DestructiveValidator) Validate(_ context.Context, hookCtx *hook.Context) *validator.Result {
	log := v.Logger()

	if !v.config.IsEnabled() {
		return validator.Pass()
	}

	command := hookCtx.GetCommand()
	if command == "" {
		log.Debug("empty command, skipping validation")

		return validator.Pass()
	}

	for _, re := range v.allow {
		if re.MatchString(command) {
			log.Debug("command exempted by allow list", "pattern", re.String())

			return validator.Pass()
		}
	}

	if result := v.checkStructured(hookCtx, command); result != nil {
		return result
	}

	for _, re := range rawPatterns {
		if re.MatchString(command) {
			return validator.Fail(
				fmt.Sprintf("refusing to run destructive command (matched %q)", re.String()),
			)
		}
	}

	for _, re := range v.extra {
		if re.MatchString(command) {
			return validator.Fail(
				fmt.Sprintf("command matches configured deny pattern %q", re.String()),
			)
		}
	}

	return validator.Pass()
}

// checkStructured runs the AST-based rules. Returns nil when nothing
// matched or the command could not be parsed (the raw patterns still
// apply afterwards).
func (v *DestructiveValidator) checkStructured(
	hookCtx *hook.Context,
	command string,
) *validator.Result {
	result, err := v.bashParser.Parse(command)
	if err != nil {
		v.Logger().Debug("failed to parse command, falling back to raw patterns",
			"error", err,
		)

		return nil
	}

	for _, cmd := range result.GetCommands("rm") {
		if res := v.checkRemove(&cmd, hookCtx.WorkDir); res != nil {
			return res
		}
	}

	for _, pipe := range result.Pipelines {
		if res := checkPipeline(pipe); res != nil {
			return res
		}
	}

	return nil
}

// checkRemove inspects a single rm invocation.
func (v *DestructiveValidator) checkRemove(cmd *parser.Command, workDir string) *validator.Result {
	recursive := cmd.HasFlag("-r") || cmd.HasFlag("-R") || cmd.HasFlag("--recursive")
	forced := cmd.HasFlag("-f") || cmd.HasFlag("--force")

	if !recursive || !forced {
		return nil
	}

	for _, target := range cmd.PositionalArgs() {
		switch {
		case isRootPath(target):
			return validator.Fail(RootDeleteReason)

		case isHomePath(target):
			return validator.Fail(
				fmt.Sprintf("refusing to run recursive force-delete of home directory (%s)", target),
			)

		case isWorkspaceRoot(target, workDir):
			return validator.Fail(
				fmt.Sprintf("refusing to run recursive force-delete of the working tree (%s)", target),
			)
		}
	}

	return nil
}

// checkPipeline denies piping a downloader straight into a shell.
func checkPipeline(pipe parser.Pipeline) *validator.Result {
	for i := 0; i < len(pipe.Commands)-1; i++ {
		if downloaderNames[pipe.Commands[i]] && shellNames[pipe.Commands[i+1]] {
			return validator.Fail(
				fmt.Sprintf("refusing to pipe %s output into %s; download and inspect the script first",
					pipe.Commands[i], pipe.Commands[i+1]),
			)
		}
	}

	return nil
}

// cleanTarget collapses redundant separators and dot segments so
// spelling variants of the same target ("//", "/./", "~/") hit the
// same rule as the plain form.
func cleanTarget(target string) string {
	if target == "" {
		return target
	}

	return path.Clean(target)
}

func isRootPath(target string) bool {
	switch cleanTarget(target) {
	case "/", "/*":
		return true
	}

	return false
}

func isHomePath(target string) bool {
	switch cleanTarget(target) {
	case "~", "$HOME":
		return true
	}

	return strings.HasPrefix(target, "~/..") || strings.HasPrefix(target, "$HOME/..")
}

func isWorkspaceRoot(target, workDir string) bool {
	switch cleanTarget(target) {
	case ".", "..", "*":
		return true
	}

	return workDir != "" && cleanTarget(target) == cleanTarget(workDir)
}
