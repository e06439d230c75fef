package router_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/internal/router"
	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/logger"
)

var _ = Describe("LoadTable", func() {
	var log = logger.NewNoOpLogger()

	It("returns the built-in table with no configuration", func() {
		table := router.LoadTable(nil, log)

		Expect(table).To(Equal(router.DefaultTable()))
	})

	It("overlays inline agents onto the built-in table", func() {
		cfg := &config.RouterConfig{
			Agents: []config.RouterAgent{
				{Name: "test-writer-fixer", Keywords: []string{"spec"}, Weight: 2.0},
				{Name: "custom-agent", Category: "local", Keywords: []string{"widget"}},
			},
		}

		table := router.LoadTable(cfg, log)

		byName := make(map[string]router.Agent)
		for _, a := range table {
			byName[a.Name] = a
		}

		Expect(byName["test-writer-fixer"].Keywords).To(Equal([]string{"spec"}))
		Expect(byName["test-writer-fixer"].Weight).To(BeNumerically("==", 2.0))
		Expect(byName["custom-agent"].Category).To(Equal("local"))
	})

	It("loads agent definition files from a directory", func() {
		dir := GinkgoT().TempDir()

		content := `---
name: db-tuner
category: operations
keywords:
  - vacuum
  - index bloat
weight: 1.5
---

Tunes slow databases.
`
		Expect(os.WriteFile(filepath.Join(dir, "db-tuner.md"), []byte(content), 0o644)).To(Succeed())

		table := router.LoadTable(&config.RouterConfig{AgentsDir: dir}, log)

		var found *router.Agent

		for i := range table {
			if table[i].Name == "db-tuner" {
				found = &table[i]

				break
			}
		}

		Expect(found).NotTo(BeNil())
		Expect(found.Category).To(Equal("operations"))
		Expect(found.Keywords).To(ConsistOf("vacuum", "index bloat"))
		Expect(found.Weight).To(BeNumerically("==", 1.5))
	})

	It("falls back to the file name when frontmatter has no name", func() {
		dir := GinkgoT().TempDir()

		content := "---\nkeywords: [widget]\n---\nbody\n"
		Expect(os.WriteFile(filepath.Join(dir, "widget-smith.md"), []byte(content), 0o644)).To(Succeed())

		table := router.LoadTable(&config.RouterConfig{AgentsDir: dir}, log)

		names := make([]string, 0, len(table))
		for _, a := range table {
			names = append(names, a.Name)
		}

		Expect(names).To(ContainElement("widget-smith"))
	})

	It("keeps the built-in table when the directory is unreadable", func() {
		table := router.LoadTable(&config.RouterConfig{AgentsDir: "/nonexistent/agents"}, log)

		Expect(table).To(Equal(router.DefaultTable()))
	})
})

var _ = Describe("DetectProject", func() {
	It("reports markers present in the working directory", func() {
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644)).To(Succeed())
		Expect(os.Mkdir(filepath.Join(dir, ".git"), 0o755)).To(Succeed())

		pc := router.DetectProject(dir)

		Expect(pc.InGit).To(BeTrue())
		Expect(pc.Annotation()).To(ContainSubstring("Go module"))
		Expect(pc.Annotation()).To(ContainSubstring("git repository"))
	})

	It("returns an empty annotation for an empty directory", func() {
		pc := router.DetectProject(GinkgoT().TempDir())

		Expect(pc.Annotation()).To(BeEmpty())
	})

	It("handles a missing working directory", func() {
		Expect(router.DetectProject("").Annotation()).To(BeEmpty())
	})
})
