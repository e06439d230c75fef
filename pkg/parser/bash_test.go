package parser_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/popkit-dev/popkit/pkg/parser"
)

var _ = Describe("BashParser", func() {
	var p *parser.BashParser

	BeforeEach(func() {
		p = parser.NewBashParser()
	})

	Describe("commands", func() {
		It("extracts a simple command with args", func() {
			result, err := p.Parse("rm -rf /tmp/build")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Commands).To(HaveLen(1))
			Expect(result.Commands[0].Name).To(Equal("rm"))
			Expect(result.Commands[0].Args).To(Equal([]string{"-rf", "/tmp/build"}))
		})

		It("extracts every command in a compound statement", func() {
			result, err := p.Parse("mkdir -p out && cp a.txt out; ls out")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.HasCommand("mkdir")).To(BeTrue())
			Expect(result.HasCommand("cp")).To(BeTrue())
			Expect(result.HasCommand("ls")).To(BeTrue())
		})

		It("resolves quoted words", func() {
			result, err := p.Parse(`rm "some file.txt" 'another.txt'`)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Commands[0].Args).To(Equal([]string{"some file.txt", "another.txt"}))
		})

		It("renders parameter expansions by name", func() {
			result, err := p.Parse("rm -rf $HOME")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Commands[0].Args).To(ContainElement("$HOME"))
		})

		It("rejects an empty command", func() {
			_, err := p.Parse("   ")

			Expect(err).To(MatchError(parser.ErrEmptyCommand))
		})

		It("reports a parse failure", func() {
			_, err := p.Parse("if true; then")

			Expect(err).To(MatchError(parser.ErrParseFailed))
		})
	})

	Describe("flags", func() {
		It("detects combined short flags", func() {
			result, err := p.Parse("rm -rf target")

			Expect(err).NotTo(HaveOccurred())

			cmd := result.Commands[0]
			Expect(cmd.HasFlag("-r")).To(BeTrue())
			Expect(cmd.HasFlag("-f")).To(BeTrue())
			Expect(cmd.HasFlag("-v")).To(BeFalse())
		})

		It("detects long flags", func() {
			result, err := p.Parse("rm --recursive --force target")

			Expect(err).NotTo(HaveOccurred())

			cmd := result.Commands[0]
			Expect(cmd.HasFlag("--recursive")).To(BeTrue())
			Expect(cmd.PositionalArgs()).To(Equal([]string{"target"}))
		})
	})

	Describe("pipelines", func() {
		It("records a two-stage pipe", func() {
			result, err := p.Parse("curl -s https://example.com | sh")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Pipelines).To(HaveLen(1))
			Expect(result.Pipelines[0].Commands).To(Equal([]string{"curl", "sh"}))
		})

		It("flattens longer chains in order", func() {
			result, err := p.Parse("cat access.log | grep 500 | wc -l")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Pipelines).To(HaveLen(1))
			Expect(result.Pipelines[0].Commands).To(Equal([]string{"cat", "grep", "wc"}))
		})

		It("records no pipeline for plain commands", func() {
			result, err := p.Parse("ls -la")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Pipelines).To(BeEmpty())
		})
	})

	Describe("file writes", func() {
		It("detects output redirection", func() {
			result, err := p.Parse("echo hello > greeting.txt")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.FileWrites).To(HaveLen(1))
			Expect(result.FileWrites[0].Path).To(Equal("greeting.txt"))
			Expect(result.FileWrites[0].Operation).To(Equal(parser.WriteOpRedirect))
		})

		It("detects append redirection", func() {
			result, err := p.Parse("echo more >> log.txt")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.FileWrites[0].Operation).To(Equal(parser.WriteOpAppend))
		})

		It("captures heredoc content written to a file", func() {
			result, err := p.Parse("cat > config.yaml <<EOF\nkey: value\nEOF")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.FileWrites).To(HaveLen(1))
			Expect(result.FileWrites[0].Operation).To(Equal(parser.WriteOpHeredoc))
			Expect(result.FileWrites[0].Content).To(ContainSubstring("key: value"))
		})

		It("detects tee targets", func() {
			result, err := p.Parse("echo x | tee out1.txt out2.txt")

			Expect(err).NotTo(HaveOccurred())

			paths := make([]string, 0)
			for _, w := range result.FileWrites {
				Expect(w.Operation).To(Equal(parser.WriteOpTee))
				paths = append(paths, w.Path)
			}

			Expect(paths).To(ConsistOf("out1.txt", "out2.txt"))
		})

		It("detects cp and mv destinations", func() {
			result, err := p.Parse("cp src.txt dst.txt && mv tmp.txt final.txt")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.FileWrites).To(HaveLen(2))
			Expect(result.FileWrites[0].Path).To(Equal("dst.txt"))
			Expect(result.FileWrites[0].Operation).To(Equal(parser.WriteOpCopy))
			Expect(result.FileWrites[1].Path).To(Equal("final.txt"))
			Expect(result.FileWrites[1].Operation).To(Equal(parser.WriteOpMove))
		})
	})
})
