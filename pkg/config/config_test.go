package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/pkg/config"
)

var _ = Describe("Duration", func() {
	It("parses duration strings", func() {
		var d config.Duration

		Expect(d.UnmarshalText([]byte("90s"))).To(Succeed())
		Expect(d.ToDuration()).To(Equal(90 * time.Second))
	})

	It("round-trips through text", func() {
		d := config.Duration(36 * time.Hour)

		text, err := d.MarshalText()
		Expect(err).NotTo(HaveOccurred())

		var parsed config.Duration
		Expect(parsed.UnmarshalText(text)).To(Succeed())
		Expect(parsed).To(Equal(d))
	})

	It("rejects negative durations", func() {
		var d config.Duration

		err := d.UnmarshalText([]byte("-5m"))

		Expect(err).To(MatchError(config.ErrNegativeDuration))
	})

	It("rejects garbage", func() {
		var d config.Duration

		Expect(d.UnmarshalText([]byte("soon"))).NotTo(Succeed())
	})
})

var _ = Describe("defaults", func() {
	It("treats nil sections as enabled with default values", func() {
		var (
			shell   *config.ShellConfig
			file    *config.FileConfig
			secrets *config.SecretsConfig
			router  *config.RouterConfig
			sess    *config.SessionConfig
			obs     *config.ObservabilityConfig
			gh      *config.GitHubConfig
			notif   *config.NotificationConfig
		)

		Expect(shell.IsEnabled()).To(BeTrue())
		Expect(file.IsEnabled()).To(BeTrue())
		Expect(file.GetProtectedPaths()).To(Equal(config.DefaultProtectedPaths))
		Expect(file.IsOutsideWorkspaceAllowed()).To(BeFalse())
		Expect(secrets.IsEnabled()).To(BeTrue())
		Expect(router.IsEnabled()).To(BeTrue())
		Expect(router.GetThreshold()).To(BeNumerically("==", 1.0))
		Expect(router.GetMaxAgents()).To(Equal(5))
		Expect(sess.IsEnabled()).To(BeTrue())
		Expect(sess.GetStateFile()).To(Equal(config.DefaultSessionStateFile))
		Expect(sess.GetMaxSessionAge()).To(Equal(24 * time.Hour))
		Expect(obs.IsEnabled()).To(BeTrue())
		Expect(obs.GetForwardTimeout()).To(Equal(2 * time.Second))
		Expect(gh.IsEnabled()).To(BeFalse())
		Expect(gh.GetLabels()).To(Equal(config.DefaultLessonLabels))
		Expect(notif.IsBellEnabled()).To(BeTrue())
	})
})
