package secrets

import (
	"context"
	"fmt"
	"regexp"

	"github.com/popkit-dev/popkit/internal/validator"
	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// AssignmentValidator detects hardcoded credentials. Prompts carrying
// credentials are denied outright; credentials in file content only
// warn, since committing a test fixture is a judgment call the user
// sees in the system message.
type AssignmentValidator struct {
	validator.BaseValidator
	config *config.SecretsConfig
	extra  []*regexp.Regexp
}

// NewAssignmentValidator creates a new AssignmentValidator instance.
func NewAssignmentValidator(log logger.Logger, cfg *config.SecretsConfig) *AssignmentValidator {
	v := &AssignmentValidator{
		BaseValidator: *validator.NewBaseValidator("validate-secret-assignments", log),
		config:        cfg,
	}

	if cfg != nil {
		for _, p := range cfg.ExtraPatterns {
			re, err := regexp.Compile(p)
			if err != nil {
				log.Error("skipping invalid pattern", "pattern", p, "error", err)

				continue
			}

			v.extra = append(v.extra, re)
		}
	}

	return v
}

// Validate scans the prompt or file content for credential shapes.
func (v *AssignmentValidator) Validate(_ context.Context, hookCtx *hook.Context) *validator.Result {
	if !v.config.IsEnabled() {
		return validator.Pass()
	}

	if hookCtx.Prompt != "" {
		if label := findCredential(hookCtx.Prompt, v.extra); label != "" {
			return validator.Fail(
				fmt.Sprintf("prompt contains a credential (%s); remove it and reference a secret store instead", label),
			).AddDetail("kind", label)
		}
	}

	if content := contentToScan(hookCtx); content != "" {
		if label := findCredential(content, v.extra); label != "" {
			return validator.Warn(
				fmt.Sprintf("file content contains a credential (%s); consider an environment variable or secret store", label),
			).AddDetail("kind", label).AddDetail("path", hookCtx.GetFilePath())
		}
	}

	return validator.Pass()
}

// contentToScan returns the text a file mutation would write.
func contentToScan(hookCtx *hook.Context) string {
	if c := hookCtx.GetContent(); c != "" {
		return c
	}

	return hookCtx.ToolInput.NewString
}
