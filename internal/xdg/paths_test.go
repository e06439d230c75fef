package xdg_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/internal/xdg"
)

var _ = Describe("Home", func() {
	It("honors the POPKIT_HOME override", func() {
		GinkgoT().Setenv("POPKIT_HOME", "/custom/popkit")

		home, err := xdg.Home()

		Expect(err).NotTo(HaveOccurred())
		Expect(home).To(Equal("/custom/popkit"))
	})

	It("defaults under the user home directory", func() {
		GinkgoT().Setenv("POPKIT_HOME", "")
		GinkgoT().Setenv("HOME", "/home/someone")

		home, err := xdg.Home()

		Expect(err).NotTo(HaveOccurred())
		Expect(home).To(Equal(filepath.Join("/home/someone", ".popkit")))
	})
})

var _ = Describe("ExpandHome", func() {
	It("routes ~/.popkit paths through the POPKIT_HOME override", func() {
		GinkgoT().Setenv("POPKIT_HOME", "/custom/popkit")

		expanded := xdg.ExpandHome("~/.popkit/state/sessions.json")

		Expect(expanded).To(Equal(filepath.Join("/custom/popkit", "state", "sessions.json")))
	})

	It("expands ~/.popkit itself through the override", func() {
		GinkgoT().Setenv("POPKIT_HOME", "/custom/popkit")

		Expect(xdg.ExpandHome("~/.popkit")).To(Equal("/custom/popkit"))
	})

	It("expands other ~/ paths against the user home", func() {
		GinkgoT().Setenv("POPKIT_HOME", "/custom/popkit")
		GinkgoT().Setenv("HOME", "/home/someone")

		Expect(xdg.ExpandHome("~/notes.txt")).To(Equal(filepath.Join("/home/someone", "notes.txt")))
	})

	It("does not treat a ~/.popkit-prefixed sibling as the popkit home", func() {
		GinkgoT().Setenv("POPKIT_HOME", "/custom/popkit")
		GinkgoT().Setenv("HOME", "/home/someone")

		Expect(xdg.ExpandHome("~/.popkit-backup/x")).To(
			Equal(filepath.Join("/home/someone", ".popkit-backup", "x")))
	})

	It("returns absolute paths unchanged", func() {
		Expect(xdg.ExpandHome("/var/log/popkit.log")).To(Equal("/var/log/popkit.log"))
	})
})

var _ = Describe("Config paths", func() {
	It("builds the global config path from the popkit home", func() {
		GinkgoT().Setenv("POPKIT_HOME", "/custom/popkit")

		path, err := xdg.GlobalConfigPath()

		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join("/custom/popkit", "config.toml")))
	})

	It("builds the project config path under the work dir", func() {
		Expect(xdg.ProjectConfigPath("/work/repo")).To(
			Equal(filepath.Join("/work/repo", ".popkit", "config.toml")))
	})
})
