// Package file provides validators for file mutation operations.
package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/popkit-dev/popkit/internal/validator"
	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// WorkspaceValidator denies file writes that escape the working
// directory or land on a protected path. Protected paths are doublestar
// globs matched against the path relative to the workspace root.
type WorkspaceValidator struct {
	validator.BaseValidator
	config *config.FileConfig
}

// NewWorkspaceValidator creates a new WorkspaceValidator instance.
func NewWorkspaceValidator(log logger.Logger, cfg *config.FileConfig) *WorkspaceValidator {
	return &WorkspaceValidator{
		BaseValidator: *validator.NewBaseValidator("validate-workspace-writes", log),
		config:        cfg,
	}
}

// Validate checks the target path of a file mutation.
func (v *WorkspaceValidator) Validate(_ context.Context, hookCtx *hook.Context) *validator.Result {
	log := v.Logger()

	if !v.config.IsEnabled() {
		return validator.Pass()
	}

	target := hookCtx.GetFilePath()
	if target == "" {
		log.Debug("no file path, skipping validation")

		return validator.Pass()
	}

	rel, escapes := relativeToWorkspace(target, hookCtx.WorkDir)
	if escapes && !v.config.IsOutsideWorkspaceAllowed() {
		return validator.Fail(
			fmt.Sprintf("refusing to write outside the working directory (%s)", target),
		).AddDetail("path", target)
	}

	for _, pattern := range v.config.GetProtectedPaths() {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			log.Error("skipping invalid protected path pattern", "pattern", pattern, "error", err)

			continue
		}

		if matched {
			return validator.Fail(
				fmt.Sprintf("refusing to write protected path %s (matches %q)", rel, pattern),
			).AddDetail("pattern", pattern)
		}
	}

	return validator.Pass()
}

// Category returns CategoryIO: path resolution touches the filesystem
// layout even though no file contents are read.
func (*WorkspaceValidator) Category() validator.Category {
	return validator.CategoryIO
}

// relativeToWorkspace resolves target against workDir and reports
// whether it escapes the workspace. Paths are compared lexically; the
// host reports workDir as an absolute path.
func relativeToWorkspace(target, workDir string) (rel string, escapes bool) {
	cleaned := filepath.Clean(target)

	if !filepath.IsAbs(cleaned) {
		if workDir == "" {
			return filepath.ToSlash(cleaned), strings.HasPrefix(cleaned, "..")
		}

		cleaned = filepath.Join(workDir, cleaned)
	}

	if workDir == "" {
		return filepath.ToSlash(cleaned), false
	}

	relative, err := filepath.Rel(filepath.Clean(workDir), cleaned)
	if err != nil || relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(cleaned), true
	}

	return filepath.ToSlash(relative), false
}
