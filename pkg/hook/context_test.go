package hook_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/pkg/hook"
)

var _ = Describe("EventType", func() {
	It("parses host event names", func() {
		eventType, err := hook.EventTypeString("PreToolUse")

		Expect(err).NotTo(HaveOccurred())
		Expect(eventType).To(Equal(hook.EventTypePreToolUse))
	})

	It("parses case-insensitively", func() {
		eventType, err := hook.EventTypeString("sessionstart")

		Expect(err).NotTo(HaveOccurred())
		Expect(eventType).To(Equal(hook.EventTypeSessionStart))
	})

	It("rejects names outside the known set", func() {
		_, err := hook.EventTypeString("BrandNewEvent")

		Expect(err).To(HaveOccurred())
	})

	It("round-trips through String", func() {
		for _, eventType := range hook.EventTypeValues() {
			parsed, err := hook.EventTypeString(eventType.String())

			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(eventType))
		}
	})
})

var _ = Describe("Context", func() {
	It("prefers FilePath over Path", func() {
		ctx := &hook.Context{
			ToolInput: hook.ToolInput{FilePath: "a.txt", Path: "b.txt"},
		}

		Expect(ctx.GetFilePath()).To(Equal("a.txt"))
	})

	It("falls back to Path", func() {
		ctx := &hook.Context{ToolInput: hook.ToolInput{Path: "b.txt"}}

		Expect(ctx.GetFilePath()).To(Equal("b.txt"))
	})

	It("classifies file tools", func() {
		for _, tool := range []hook.ToolType{hook.ToolTypeWrite, hook.ToolTypeEdit, hook.ToolTypeMultiEdit} {
			Expect((&hook.Context{ToolName: tool}).IsFileTool()).To(BeTrue())
		}

		Expect((&hook.Context{ToolName: hook.ToolTypeBash}).IsFileTool()).To(BeFalse())
		Expect((&hook.Context{ToolName: hook.ToolTypeBash}).IsBashTool()).To(BeTrue())
	})
})
