package file_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/internal/validator"
	"github.com/popkit-dev/popkit/internal/validators/file"
	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
)

var _ = Describe("WorkspaceValidator", func() {
	var (
		v   *file.WorkspaceValidator
		ctx context.Context
	)

	writeContext := func(path string) *hook.Context {
		return &hook.Context{
			EventType: hook.EventTypePreToolUse,
			ToolName:  hook.ToolTypeWrite,
			ToolInput: hook.ToolInput{FilePath: path},
			WorkDir:   "/home/user/project",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		v = file.NewWorkspaceValidator(logger.NewNoOpLogger(), &config.FileConfig{})
	})

	Describe("workspace escapes", func() {
		It("blocks an absolute path outside the workspace", func() {
			result := v.Validate(ctx, writeContext("/etc/passwd"))

			Expect(result.Passed).To(BeFalse())
			Expect(result.ShouldBlock).To(BeTrue())
			Expect(result.Message).To(ContainSubstring("outside the working directory"))
		})

		It("blocks a relative path traversing out of the workspace", func() {
			result := v.Validate(ctx, writeContext("../other-project/main.go"))

			Expect(result.Passed).To(BeFalse())
		})

		It("blocks a path that traverses out through an inner directory", func() {
			result := v.Validate(ctx, writeContext("src/../../escape.txt"))

			Expect(result.Passed).To(BeFalse())
		})

		It("allows a relative path inside the workspace", func() {
			result := v.Validate(ctx, writeContext("src/main.go"))

			Expect(result.Passed).To(BeTrue())
		})

		It("allows an absolute path inside the workspace", func() {
			result := v.Validate(ctx, writeContext("/home/user/project/src/main.go"))

			Expect(result.Passed).To(BeTrue())
		})

		It("allows escapes when configured", func() {
			allow := true
			v = file.NewWorkspaceValidator(logger.NewNoOpLogger(), &config.FileConfig{
				AllowOutsideWorkspace: &allow,
			})

			result := v.Validate(ctx, writeContext("/tmp/scratch.txt"))

			Expect(result.Passed).To(BeTrue())
		})
	})

	Describe("protected paths", func() {
		It("blocks writes into .git", func() {
			result := v.Validate(ctx, writeContext(".git/hooks/pre-commit"))

			Expect(result.Passed).To(BeFalse())
			Expect(result.Message).To(ContainSubstring("protected path"))
		})

		It("blocks writes to .env at any depth", func() {
			result := v.Validate(ctx, writeContext("deploy/staging/.env"))

			Expect(result.Passed).To(BeFalse())
		})

		It("blocks writes to .env variants", func() {
			result := v.Validate(ctx, writeContext(".env.production"))

			Expect(result.Passed).To(BeFalse())
		})

		It("blocks writes to private keys", func() {
			result := v.Validate(ctx, writeContext("keys/id_rsa"))

			Expect(result.Passed).To(BeFalse())
		})

		It("allows an ordinary dotfile", func() {
			result := v.Validate(ctx, writeContext(".editorconfig"))

			Expect(result.Passed).To(BeTrue())
		})

		It("honours configured protected paths over the defaults", func() {
			v = file.NewWorkspaceValidator(logger.NewNoOpLogger(), &config.FileConfig{
				ProtectedPaths: []string{"migrations/**"},
			})

			Expect(v.Validate(ctx, writeContext("migrations/0001_init.sql")).Passed).To(BeFalse())
			Expect(v.Validate(ctx, writeContext(".env")).Passed).To(BeTrue())
		})
	})

	Describe("configuration and edge cases", func() {
		It("skips validation when disabled", func() {
			disabled := false
			v = file.NewWorkspaceValidator(logger.NewNoOpLogger(), &config.FileConfig{
				Enabled: &disabled,
			})

			result := v.Validate(ctx, writeContext("/etc/passwd"))

			Expect(result.Passed).To(BeTrue())
		})

		It("passes when no file path is present", func() {
			result := v.Validate(ctx, &hook.Context{
				EventType: hook.EventTypePreToolUse,
				ToolName:  hook.ToolTypeWrite,
			})

			Expect(result.Passed).To(BeTrue())
		})

		It("reads the alternative path field", func() {
			hookCtx := writeContext("")
			hookCtx.ToolInput.Path = "/etc/hosts"

			result := v.Validate(ctx, hookCtx)

			Expect(result.Passed).To(BeFalse())
		})

		It("is an IO-category validator", func() {
			var _ validator.Validator = v

			Expect(v.Category()).To(Equal(validator.CategoryIO))
			Expect(v.Name()).To(Equal("validate-workspace-writes"))
		})
	})
})
