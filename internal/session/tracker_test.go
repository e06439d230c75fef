package session_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/internal/session"
	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/logger"
)

var _ = Describe("Tracker", func() {
	var (
		statePath string
		tracker   *session.Tracker
	)

	BeforeEach(func() {
		statePath = filepath.Join(GinkgoT().TempDir(), "sessions.json")
		tracker = session.NewTracker(
			session.NewStore(statePath),
			&config.SessionConfig{StateFile: statePath},
			logger.NewNoOpLogger(),
		)
	})

	Describe("lifecycle", func() {
		It("records a started session", func() {
			id := tracker.Start("sess-1", "/work")

			Expect(id).To(Equal("sess-1"))

			sessions, err := tracker.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(1))
			Expect(sessions[0].Status).To(Equal(session.StatusActive))
			Expect(sessions[0].WorkDir).To(Equal("/work"))
		})

		It("generates an ID when the host supplies none", func() {
			id := tracker.Start("", "/work")

			Expect(id).NotTo(BeEmpty())

			sessions, err := tracker.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(1))
			Expect(sessions[0].ID).To(Equal(id))
		})

		It("counts prompts and commands", func() {
			tracker.Start("sess-1", "")
			tracker.RecordPrompt("sess-1")
			tracker.RecordPrompt("sess-1")
			tracker.RecordCommand("sess-1")

			sessions, err := tracker.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions[0].PromptCount).To(Equal(2))
			Expect(sessions[0].CommandCount).To(Equal(1))
		})

		It("marks ended sessions", func() {
			tracker.Start("sess-1", "")
			tracker.End("sess-1")

			sessions, err := tracker.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions[0].Status).To(Equal(session.StatusEnded))
			Expect(sessions[0].EndedAt).NotTo(BeZero())
		})

		It("creates a record for events arriving before the start", func() {
			tracker.RecordPrompt("sess-late")

			sessions, err := tracker.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(1))
			Expect(sessions[0].PromptCount).To(Equal(1))
		})
	})

	Describe("poisoning", func() {
		It("reports the poison reason", func() {
			tracker.Start("sess-1", "")
			tracker.Poison("sess-1", "blocking error in earlier command")

			Expect(tracker.PoisonReason("sess-1")).To(Equal("blocking error in earlier command"))
		})

		It("keeps the first poison reason", func() {
			tracker.Start("sess-1", "")
			tracker.Poison("sess-1", "first")
			tracker.Poison("sess-1", "second")

			Expect(tracker.PoisonReason("sess-1")).To(Equal("first"))
		})

		It("returns empty for healthy sessions", func() {
			tracker.Start("sess-1", "")

			Expect(tracker.PoisonReason("sess-1")).To(BeEmpty())
		})

		It("clears on session end", func() {
			tracker.Start("sess-1", "")
			tracker.Poison("sess-1", "bad")
			tracker.End("sess-1")

			Expect(tracker.PoisonReason("sess-1")).To(BeEmpty())
		})
	})

	Describe("expiry", func() {
		It("purges ended sessions on the next start", func() {
			tracker.Start("old", "")
			tracker.End("old")
			tracker.Start("new", "")

			sessions, err := tracker.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(1))
			Expect(sessions[0].ID).To(Equal("new"))
		})
	})

	Describe("persistence", func() {
		It("writes well-formed JSON", func() {
			tracker.Start("sess-1", "/work")

			data, err := os.ReadFile(statePath)
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]any
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded).To(HaveKey("sessions"))
		})

		It("recovers from a corrupt state file", func() {
			Expect(os.WriteFile(statePath, []byte("{not json"), 0o644)).To(Succeed())

			tracker.Start("sess-1", "")

			sessions, err := tracker.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(1))
		})

		It("survives a missing state file", func() {
			sessions, err := tracker.List()

			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(BeEmpty())
		})
	})

	Describe("disabled tracking", func() {
		It("records nothing", func() {
			disabled := false
			tracker = session.NewTracker(
				session.NewStore(statePath),
				&config.SessionConfig{Enabled: &disabled, StateFile: statePath},
				logger.NewNoOpLogger(),
			)

			id := tracker.Start("sess-1", "")

			Expect(id).To(Equal("sess-1"))
			Expect(statePath).NotTo(BeAnExistingFile())
		})
	})
})
