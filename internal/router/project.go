package router

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// projectMarkers map marker files to a short description of what their
// presence says about the project.
var projectMarkers = []struct {
	file string
	note string
}{
	{"CLAUDE.md", "project instructions in CLAUDE.md"},
	{"go.mod", "Go module"},
	{"package.json", "Node.js project"},
	{"pyproject.toml", "Python project"},
	{"Cargo.toml", "Rust project"},
	{"Dockerfile", "containerized"},
	{".github/workflows", "GitHub Actions CI"},
}

// ProjectContext describes the markers detected in a working directory.
type ProjectContext struct {
	Notes []string
	InGit bool
}

// DetectProject inspects workDir for well-known marker files. Only
// existence is checked; contents are never read.
func DetectProject(workDir string) ProjectContext {
	var pc ProjectContext

	if workDir == "" {
		return pc
	}

	for _, marker := range projectMarkers {
		if _, err := os.Stat(filepath.Join(workDir, marker.file)); err == nil {
			pc.Notes = append(pc.Notes, marker.note)
		}
	}

	if _, err := os.Stat(filepath.Join(workDir, ".git")); err == nil {
		pc.InGit = true
	}

	return pc
}

// Annotation renders the detected markers as a context line, or ""
// when nothing was detected.
func (pc ProjectContext) Annotation() string {
	notes := pc.Notes
	if pc.InGit {
		notes = append(notes, "git repository")
	}

	if len(notes) == 0 {
		return ""
	}

	return fmt.Sprintf("Project context: %s.", strings.Join(notes, ", "))
}
