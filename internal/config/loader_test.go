package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/internal/config"
	pkgconfig "github.com/popkit-dev/popkit/pkg/config"
)

var _ = Describe("Loader", func() {
	writeConfig := func(dir, content string) string {
		path := filepath.Join(dir, "config.toml")
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

		return path
	}

	BeforeEach(func() {
		// Point the global layer at an empty directory so the developer's
		// real ~/.popkit never leaks into tests.
		GinkgoT().Setenv("POPKIT_HOME", GinkgoT().TempDir())
	})

	It("returns the defaults with no config files", func() {
		loader := &config.Loader{}

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Version).To(Equal(pkgconfig.CurrentConfigVersion))
		Expect(cfg.GetValidators().GetShell().IsEnabled()).To(BeTrue())
		Expect(cfg.GetRouter().GetThreshold()).To(BeNumerically("==", 1.0))
		Expect(cfg.GetRouter().GetMaxAgents()).To(Equal(5))
		Expect(cfg.Session.GetMaxSessionAge()).To(Equal(24 * time.Hour))
		Expect(cfg.Observability.GetForwardTimeout()).To(Equal(2 * time.Second))
		Expect(cfg.GitHub.IsEnabled()).To(BeFalse())
	})

	It("loads an explicit config file", func() {
		path := writeConfig(GinkgoT().TempDir(), `
[router]
threshold = 2.5
max_agents = 2

[session]
max_session_age = "1h"
`)

		loader := &config.Loader{ExplicitPath: path}

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Router.GetThreshold()).To(BeNumerically("==", 2.5))
		Expect(cfg.Router.GetMaxAgents()).To(Equal(2))
		Expect(cfg.Session.GetMaxSessionAge()).To(Equal(time.Hour))
	})

	It("overlays the project layer on the global layer", func() {
		globalHome := GinkgoT().TempDir()
		GinkgoT().Setenv("POPKIT_HOME", globalHome)
		writeConfig(globalHome, `
[router]
threshold = 3.0

[observability]
endpoint = "http://collector.internal/events"
`)

		workDir := GinkgoT().TempDir()
		projectDir := filepath.Join(workDir, ".popkit")
		Expect(os.Mkdir(projectDir, 0o755)).To(Succeed())
		writeConfig(projectDir, `
[router]
threshold = 0.5
`)

		loader := &config.Loader{WorkDir: workDir}

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Router.GetThreshold()).To(BeNumerically("==", 0.5))
		Expect(cfg.Observability.GetEndpoint()).To(Equal("http://collector.internal/events"))
	})

	It("lets the environment override files", func() {
		GinkgoT().Setenv("POPKIT_ROUTER__MAX_AGENTS", "1")
		GinkgoT().Setenv("POPKIT_OBSERVABILITY__ENABLED", "false")

		loader := &config.Loader{}

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Router.GetMaxAgents()).To(Equal(1))
		Expect(cfg.Observability.IsEnabled()).To(BeFalse())
	})

	It("rejects a malformed config file", func() {
		path := writeConfig(GinkgoT().TempDir(), "not toml [[[")

		loader := &config.Loader{ExplicitPath: path}

		_, err := loader.Load()

		Expect(err).To(HaveOccurred())
	})

	It("rejects a negative duration", func() {
		path := writeConfig(GinkgoT().TempDir(), `
[session]
max_session_age = "-5m"
`)

		loader := &config.Loader{ExplicitPath: path}

		_, err := loader.Load()

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("duration"))
	})
})

var _ = Describe("WriteDefault", func() {
	It("writes a loadable starter config", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.toml")

		Expect(config.WriteDefault(path, false)).To(Succeed())

		loader := &config.Loader{ExplicitPath: path}

		cfg, err := loader.Load()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Version).To(Equal(pkgconfig.CurrentConfigVersion))
		Expect(cfg.Session.GetStateFile()).To(Equal(pkgconfig.DefaultSessionStateFile))
	})

	It("refuses to overwrite without force", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.toml")
		Expect(os.WriteFile(path, []byte("version = 1\n"), 0o644)).To(Succeed())

		err := config.WriteDefault(path, false)

		Expect(err).To(MatchError(config.ErrConfigExists))
		Expect(config.WriteDefault(path, true)).To(Succeed())
	})
})

var _ = Describe("Schema", func() {
	It("renders a JSON schema for the config", func() {
		data, err := config.Schema()

		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"validators"`))
		Expect(string(data)).To(ContainSubstring(`"router"`))
	})
})
