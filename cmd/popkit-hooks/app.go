package main

import (
	"context"
	"fmt"
	"os"

	"github.com/popkit-dev/popkit/internal/dispatcher"
	"github.com/popkit-dev/popkit/internal/hookresponse"
	"github.com/popkit-dev/popkit/internal/observability"
	"github.com/popkit-dev/popkit/internal/router"
	"github.com/popkit-dev/popkit/internal/session"
	"github.com/popkit-dev/popkit/internal/validator"
	"github.com/popkit-dev/popkit/internal/validators/file"
	"github.com/popkit-dev/popkit/internal/validators/secrets"
	"github.com/popkit-dev/popkit/internal/validators/shell"
	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// app wires the per-invocation components behind one Handle call.
type app struct {
	config     *config.Config
	dispatcher *dispatcher.Dispatcher
	tracker    *session.Tracker
	recorder   *observability.Recorder
	router     *router.Engine
	logger     logger.Logger
}

func newApp(cfg *config.Config, log logger.Logger) *app {
	registry := buildRegistry(cfg, log)

	routerCfg := cfg.GetRouter()

	return &app{
		config: cfg,
		dispatcher: dispatcher.NewDispatcher(
			registry,
			dispatcher.NewSequentialExecutor(log),
			log,
		),
		tracker: session.NewTracker(
			session.NewStore(cfg.Session.GetStateFile()),
			cfg.Session,
			log,
		),
		recorder: observability.NewRecorder(cfg.Observability, log),
		router: router.NewEngine(
			router.LoadTable(routerCfg, log),
			routerCfg.GetThreshold(),
			routerCfg.GetMaxAgents(),
		),
		logger: log,
	}
}

// buildRegistry registers the built-in validators. Order matters: the
// first blocking verdict wins, so shell rules run before the general
// file rules.
func buildRegistry(cfg *config.Config, log logger.Logger) *validator.Registry {
	registry := validator.NewRegistry()
	validators := cfg.GetValidators()

	preToolUse := validator.EventTypeIs(hook.EventTypePreToolUse)

	registry.Register(
		shell.NewDestructiveValidator(log, validators.GetShell()),
		validator.And(preToolUse, validator.ToolTypeIs(hook.ToolTypeBash)),
	)

	registry.Register(
		secrets.NewAssignmentValidator(log, validators.Secrets),
		validator.Or(
			validator.And(preToolUse, validator.ToolTypeIn(
				hook.ToolTypeWrite, hook.ToolTypeEdit, hook.ToolTypeMultiEdit,
			)),
			validator.And(
				validator.EventTypeIs(hook.EventTypeUserPromptSubmit),
				validator.HasPrompt(),
			),
		),
	)

	registry.Register(
		file.NewWorkspaceValidator(log, validators.File),
		validator.And(preToolUse, validator.ToolTypeIn(
			hook.ToolTypeWrite, hook.ToolTypeEdit, hook.ToolTypeMultiEdit,
		)),
	)

	return registry
}

// Handle evaluates one hook request and produces the response.
// Unknown events are allowed untouched: a host newer than this binary
// must not have its sessions broken by it.
func (a *app) Handle(ctx context.Context, hookCtx *hook.Context) *hookresponse.Response {
	builder := hookresponse.NewBuilder(hookCtx.EventType)

	switch hookCtx.EventType {
	case hook.EventTypePreToolUse:
		a.handlePreToolUse(ctx, hookCtx, builder)
	case hook.EventTypePostToolUse:
		// Decision already happened; this event only feeds the log.
	case hook.EventTypeUserPromptSubmit:
		a.handlePrompt(ctx, hookCtx, builder)
	case hook.EventTypeNotification:
		a.handleNotification(hookCtx)
	case hook.EventTypeSessionStart:
		a.handleSessionStart(hookCtx, builder)
	case hook.EventTypeStop, hook.EventTypeSubagentStop:
		// Lifecycle markers; recorded below.
	case hook.EventTypeSessionEnd:
		a.tracker.End(hookCtx.SessionID)
	case hook.EventTypeUnknown:
		a.logger.Info("unknown event, allowing")
	}

	response := builder.Build()

	a.recorder.Record(hookCtx, response.Decision, response.Reason)

	return response
}

func (a *app) handlePreToolUse(
	ctx context.Context,
	hookCtx *hook.Context,
	builder *hookresponse.Builder,
) {
	if reason := a.tracker.PoisonReason(hookCtx.SessionID); reason != "" {
		builder.Deny(fmt.Sprintf("session has a pending blocking error: %s", reason))

		return
	}

	if hookCtx.IsBashTool() {
		a.tracker.RecordCommand(hookCtx.SessionID)
	}

	result := a.dispatcher.Dispatch(ctx, hookCtx)

	builder.FromDispatch(result)

	if result.Blocked {
		a.tracker.Poison(hookCtx.SessionID, result.BlockReason)

		a.logger.Info("blocked",
			"validator", result.BlockedBy,
			"reason", result.BlockReason,
		)
	}
}

func (a *app) handlePrompt(
	ctx context.Context,
	hookCtx *hook.Context,
	builder *hookresponse.Builder,
) {
	a.tracker.RecordPrompt(hookCtx.SessionID)

	builder.FromDispatch(a.dispatcher.Dispatch(ctx, hookCtx))

	if a.config.GetRouter().IsEnabled() {
		matches := a.router.Route(hookCtx.Prompt)
		builder.AddContext(router.Annotation(matches))
	}

	builder.AddContext(router.DetectProject(hookCtx.WorkDir).Annotation())
}

// handleNotification rings the terminal bell. The bell goes to stderr:
// stdout carries exactly one JSON document and nothing else.
func (a *app) handleNotification(hookCtx *hook.Context) {
	if !a.config.Notification.IsBellEnabled() {
		return
	}

	fmt.Fprint(os.Stderr, "\a")
	a.logger.Debug("notification bell sent", "type", hookCtx.NotificationType)
}

func (a *app) handleSessionStart(hookCtx *hook.Context, builder *hookresponse.Builder) {
	a.tracker.Start(hookCtx.SessionID, hookCtx.WorkDir)

	builder.AddContext(router.DetectProject(hookCtx.WorkDir).Annotation())
}
