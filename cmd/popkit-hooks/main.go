// Package main provides the popkit-hooks binary: the single-shot hook
// process the host runs around tool use and lifecycle events. It reads
// one JSON request on stdin, writes one JSON decision on stdout, and
// exits. Stdout carries nothing else; diagnostics go to stderr and the
// log file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/popkit-dev/popkit/internal/config"
	"github.com/popkit-dev/popkit/internal/hookresponse"
	"github.com/popkit-dev/popkit/internal/parser"
	"github.com/popkit-dev/popkit/internal/xdg"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
)

const (
	// ExitCodeSuccess means the hook ran to completion: a decision was
	// produced, whether allow or deny.
	ExitCodeSuccess = 0

	// ExitCodeFailure means the hook itself failed (malformed input,
	// internal fault). A fail-open allow is still emitted first.
	ExitCodeFailure = 1

	// ExitCodeCrash means a panic was recovered. Distinct from ordinary
	// failure so crashes stand out in host logs.
	ExitCodeCrash = 3
)

var (
	hookType   string
	debugMode  bool
	traceMode  bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "popkit-hooks",
	Short:         "popkit hook runner",
	Long:          "Evaluates one hook request from stdin and emits one JSON decision on stdout.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&hookType, "hook-type", "T", "",
		"hook event type; overrides hook_event_name from the input")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&traceMode, "trace", false, "enable trace logging")
	rootCmd.Flags().StringVar(&configPath, "config", "", "explicit config file path")
}

func main() {
	writer := hookresponse.NewWriter(os.Stdout)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			emitFailOpen(writer)
			os.Exit(ExitCodeCrash)
		}
	}()

	rootCmd.SetContext(withWriter(writer))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "popkit-hooks: %v\n", err)
		emitFailOpen(writer)
		os.Exit(ExitCodeFailure)
	}
}

// emitFailOpen writes the allow document if none has been written yet.
// The host must always receive a decision, even out of a crash path.
func emitFailOpen(writer *hookresponse.Writer) {
	if writer.Written() {
		return
	}

	_ = writer.Write(&hookresponse.Response{Decision: hookresponse.DecisionAllow})
}

func run(cmd *cobra.Command, _ []string) error {
	writer := writerFrom(cmd.Context())

	log, err := newLogger()
	if err != nil {
		// No log file is not a reason to fail the hook.
		log = logger.NewNoOpLogger()
	}

	flagEvent := hook.EventTypeUnknown

	if hookType != "" {
		parsed, parseErr := hook.EventTypeString(hookType)
		if parseErr != nil {
			// An unknown --hook-type means a host newer than this binary.
			// Fail open rather than break the session.
			log.Info("unknown hook type flag, allowing", "hookType", hookType)

			return writer.Write(&hookresponse.Response{Decision: hookresponse.DecisionAllow})
		}

		flagEvent = parsed
	}

	hookCtx, err := parser.NewJSONParser(os.Stdin).Parse(flagEvent)
	if err != nil {
		if errors.Is(err, parser.ErrEmptyInput) {
			log.Info("no input provided, allowing")

			return writer.Write(&hookresponse.Response{Decision: hookresponse.DecisionAllow})
		}

		// Malformed input: emit the fail-open allow, then report hook
		// failure through the exit code.
		emitFailOpen(writer)

		return errors.Wrap(err, "failed to parse input")
	}

	cfg, err := (&internalconfig.Loader{
		ExplicitPath: configPath,
		WorkDir:      hookCtx.WorkDir,
	}).Load()
	if err != nil {
		emitFailOpen(writer)

		return errors.Wrap(err, "failed to load config")
	}

	log.Info("hook invoked",
		"event", hookCtx.EventType.String(),
		"tool", hookCtx.ToolName.String(),
		"session", hookCtx.SessionID,
	)

	app := newApp(cfg, log)

	response := app.Handle(cmd.Context(), hookCtx)

	if err := writer.Write(response); err != nil {
		return errors.Wrap(err, "failed to write response")
	}

	return nil
}

func newLogger() (logger.Logger, error) {
	home, err := xdg.Home()
	if err != nil {
		return nil, err
	}

	return logger.NewFileLogger(
		filepath.Join(home, "logs", "hooks.log"),
		debugMode,
		traceMode,
	)
}
