// Package github reports lessons learned as GitHub issues.
// Only the operator CLI reaches this package; the hook path never
// performs network calls beyond the observability forwarder.
package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	gogithub "github.com/google/go-github/v84/github"
	"github.com/pelletier/go-toml/v2"

	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// titleSymptomLimit caps how much of the symptom goes into the title.
const titleSymptomLimit = 50

var (
	// ErrReportingDisabled is returned when lesson reporting is off.
	ErrReportingDisabled = errors.New("lesson reporting is disabled")

	// ErrNoRepo is returned when no target repository is configured.
	ErrNoRepo = errors.New("no github repo configured")

	// ErrBadRepo is returned when the repo is not in owner/name form.
	ErrBadRepo = errors.New(`github repo must be in "owner/name" form`)
)

// Lesson is one lesson-learned report. It can be populated from flags
// or loaded from a TOML file (see LoadLesson).
type Lesson struct {
	// Type classifies the lesson (e.g. "build-failure", "flaky-test").
	Type string `toml:"type"`

	// Symptom is the observable problem, used in the issue title.
	Symptom string `toml:"symptom"`

	// RootCause describes what actually went wrong.
	RootCause string `toml:"root_cause"`

	// Fix describes the applied remedy.
	Fix string `toml:"fix"`

	// Prevention describes how to avoid a recurrence.
	Prevention string `toml:"prevention"`

	// Context carries surrounding detail (session, command, log
	// excerpts) that does not fit the other fields.
	Context string `toml:"context"`
}

// LoadLesson reads a lesson record from a TOML file.
func LoadLesson(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read lesson file")
	}

	var lesson Lesson

	if err := toml.Unmarshal(data, &lesson); err != nil {
		return nil, errors.Wrap(err, "failed to parse lesson file")
	}

	return &lesson, nil
}

// Title renders the issue title: "[Lesson Learned] type: symptom",
// with the symptom truncated on rune boundaries.
func (l *Lesson) Title() string {
	symptom := l.Symptom
	if runes := []rune(symptom); len(runes) > titleSymptomLimit {
		symptom = string(runes[:titleSymptomLimit])
	}

	return fmt.Sprintf("[Lesson Learned] %s: %s", l.Type, symptom)
}

// Body renders the issue body as markdown sections.
func (l *Lesson) Body() string {
	var sb strings.Builder

	section := func(heading, text string) {
		if text == "" {
			return
		}

		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", heading, text)
	}

	section("Symptom", l.Symptom)
	section("Root Cause", l.RootCause)
	section("Fix", l.Fix)
	section("Prevention", l.Prevention)
	section("Context", l.Context)

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// IssuesService is the slice of the GitHub issues API the reporter
// uses. Satisfied by *github.IssuesService.
type IssuesService interface {
	Create(
		ctx context.Context,
		owner, repo string,
		issue *gogithub.IssueRequest,
	) (*gogithub.Issue, *gogithub.Response, error)
}

// Reporter files lessons as GitHub issues.
type Reporter struct {
	issues IssuesService
	config *config.GitHubConfig
	logger logger.Logger
}

// NewReporter creates a reporter authenticated with the given token.
func NewReporter(token string, cfg *config.GitHubConfig, log logger.Logger) *Reporter {
	client := gogithub.NewClient(nil).WithAuthToken(token)

	return NewReporterWithService(client.Issues, cfg, log)
}

// NewReporterWithService creates a reporter over an explicit issues
// service. Used by tests.
func NewReporterWithService(issues IssuesService, cfg *config.GitHubConfig, log logger.Logger) *Reporter {
	return &Reporter{
		issues: issues,
		config: cfg,
		logger: log,
	}
}

// Report creates the issue and returns its URL.
func (r *Reporter) Report(ctx context.Context, lesson *Lesson) (string, error) {
	if !r.config.IsEnabled() {
		return "", ErrReportingDisabled
	}

	owner, repo, err := splitRepo(r.config.Repo)
	if err != nil {
		return "", err
	}

	labels := r.config.GetLabels()

	request := &gogithub.IssueRequest{
		Title:  gogithub.Ptr(lesson.Title()),
		Body:   gogithub.Ptr(lesson.Body()),
		Labels: &labels,
	}

	issue, _, err := r.issues.Create(ctx, owner, repo, request)
	if err != nil {
		return "", errors.Wrap(err, "failed to create issue")
	}

	r.logger.Info("filed lesson issue",
		"repo", r.config.Repo,
		"number", issue.GetNumber(),
	)

	return issue.GetHTMLURL(), nil
}

func splitRepo(repo string) (owner, name string, err error) {
	if repo == "" {
		return "", "", ErrNoRepo
	}

	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Wrapf(ErrBadRepo, "got %q", repo)
	}

	return parts[0], parts[1], nil
}
