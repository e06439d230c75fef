package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/popkit-dev/popkit/internal/config"
	"github.com/popkit-dev/popkit/internal/github"
	"github.com/popkit-dev/popkit/pkg/logger"
)

var (
	// ErrNoToken is returned when no GitHub token is available.
	ErrNoToken = errors.New("set GITHUB_TOKEN to file lesson issues")

	// ErrNoSymptom is returned when neither the flags nor the lesson
	// file provide a symptom.
	ErrNoSymptom = errors.New("a symptom is required (--symptom or the lesson file)")
)

func newLessonCmd() *cobra.Command {
	flagLesson := &github.Lesson{}

	cmd := &cobra.Command{
		Use:   "lesson [file]",
		Short: "File a lesson-learned issue on the configured repository",
		Long:  "Files a lesson-learned issue from a TOML lesson file, from flags, or both; flags override file fields.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := os.Getenv("GITHUB_TOKEN")
			if token == "" {
				return ErrNoToken
			}

			lesson := flagLesson

			if len(args) == 1 {
				loaded, err := github.LoadLesson(args[0])
				if err != nil {
					return err
				}

				overlayLessonFlags(cmd, loaded, flagLesson)
				lesson = loaded
			}

			if lesson.Symptom == "" {
				return ErrNoSymptom
			}

			if lesson.Type == "" {
				lesson.Type = "general"
			}

			workDir, _ := os.Getwd()

			cfg, err := (&internalconfig.Loader{
				ExplicitPath: configPath,
				WorkDir:      workDir,
			}).Load()
			if err != nil {
				return err
			}

			reporter := github.NewReporter(token, cfg.GitHub, logger.NewNoOpLogger())

			url, err := reporter.Report(cmd.Context(), lesson)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)

			return nil
		},
	}

	cmd.Flags().StringVar(&flagLesson.Type, "type", "general", "lesson classification")
	cmd.Flags().StringVar(&flagLesson.Symptom, "symptom", "", "observable problem")
	cmd.Flags().StringVar(&flagLesson.RootCause, "root-cause", "", "what actually went wrong")
	cmd.Flags().StringVar(&flagLesson.Fix, "fix", "", "applied remedy")
	cmd.Flags().StringVar(&flagLesson.Prevention, "prevention", "", "how to avoid a recurrence")
	cmd.Flags().StringVar(&flagLesson.Context, "context", "", "surrounding detail (session, command, logs)")

	return cmd
}

// overlayLessonFlags copies explicitly set flag values over the fields
// loaded from the lesson file.
func overlayLessonFlags(cmd *cobra.Command, base, flags *github.Lesson) {
	set := func(name string, dst *string, src string) {
		if cmd.Flags().Changed(name) {
			*dst = src
		}
	}

	set("type", &base.Type, flags.Type)
	set("symptom", &base.Symptom, flags.Symptom)
	set("root-cause", &base.RootCause, flags.RootCause)
	set("fix", &base.Fix, flags.Fix)
	set("prevention", &base.Prevention, flags.Prevention)
	set("context", &base.Context, flags.Context)
}
