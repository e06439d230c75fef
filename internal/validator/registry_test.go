package validator_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/internal/validator"
	"github.com/popkit-dev/popkit/pkg/hook"
)

type namedValidator struct{ name string }

func (v namedValidator) Name() string { return v.name }

func (namedValidator) Validate(context.Context, *hook.Context) *validator.Result {
	return validator.Pass()
}

func (namedValidator) Category() validator.Category { return validator.CategoryCPU }

var _ = Describe("Registry", func() {
	bashCtx := &hook.Context{
		EventType: hook.EventTypePreToolUse,
		ToolName:  hook.ToolTypeBash,
	}

	It("returns matching validators in registration order", func() {
		registry := validator.NewRegistry()
		registry.Register(namedValidator{name: "first"}, validator.Always())
		registry.Register(namedValidator{name: "skipped"}, validator.ToolTypeIs(hook.ToolTypeWrite))
		registry.Register(namedValidator{name: "second"}, validator.ToolTypeIs(hook.ToolTypeBash))

		found := registry.FindValidators(bashCtx)

		Expect(found).To(HaveLen(2))
		Expect(found[0].Name()).To(Equal("first"))
		Expect(found[1].Name()).To(Equal("second"))
		Expect(registry.Count()).To(Equal(3))
	})

	It("combines predicates with And and Or", func() {
		both := validator.And(
			validator.EventTypeIs(hook.EventTypePreToolUse),
			validator.ToolTypeIs(hook.ToolTypeBash),
		)
		either := validator.Or(
			validator.ToolTypeIs(hook.ToolTypeWrite),
			validator.HasPrompt(),
		)

		Expect(both(bashCtx)).To(BeTrue())
		Expect(either(bashCtx)).To(BeFalse())
		Expect(either(&hook.Context{Prompt: "hi"})).To(BeTrue())
	})

	It("matches tool sets and negations", func() {
		fileTools := validator.ToolTypeIn(hook.ToolTypeWrite, hook.ToolTypeEdit)

		Expect(fileTools(&hook.Context{ToolName: hook.ToolTypeEdit})).To(BeTrue())
		Expect(fileTools(bashCtx)).To(BeFalse())
		Expect(validator.Not(fileTools)(bashCtx)).To(BeTrue())
	})
})

var _ = Describe("Result", func() {
	It("renders its verdict", func() {
		Expect(validator.Pass().String()).To(Equal("PASS"))
		Expect(validator.Fail("no").String()).To(Equal("BLOCK"))
		Expect(validator.Warn("hm").String()).To(Equal("WARN"))
	})

	It("accumulates details", func() {
		result := validator.Warn("careful").AddDetail("path", ".env")

		Expect(result.Details).To(HaveKeyWithValue("path", ".env"))
	})
})
