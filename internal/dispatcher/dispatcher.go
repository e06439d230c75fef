// Package dispatcher selects and runs validators for a hook context.
package dispatcher

import (
	"context"

	"github.com/popkit-dev/popkit/internal/validator"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
	"github.com/popkit-dev/popkit/pkg/parser"
)

// DispatchResult aggregates the outcome of a dispatch.
type DispatchResult struct {
	// Results holds every validation result produced, in evaluation order.
	Results []NamedResult

	// Blocked is true when some validator produced a blocking failure.
	Blocked bool

	// BlockReason is the message of the first blocking failure.
	BlockReason string

	// BlockedBy is the name of the validator that produced the block.
	BlockedBy string
}

// Warnings returns the messages of non-blocking failures.
func (r *DispatchResult) Warnings() []string {
	warnings := make([]string, 0)

	for _, nr := range r.Results {
		if !nr.Result.Passed && !nr.Result.ShouldBlock {
			warnings = append(warnings, nr.Result.Message)
		}
	}

	return warnings
}

// Dispatcher routes hook contexts through the validator registry.
//
// Bash commands that write files through redirections or write
// commands (tee, cp, mv) are additionally dispatched as synthetic
// Write contexts, so file rules see every write regardless of the tool
// that performs it.
type Dispatcher struct {
	registry   *validator.Registry
	executor   Executor
	bashParser *parser.BashParser
	logger     logger.Logger
}

// NewDispatcher creates a dispatcher running validators through the
// given executor.
func NewDispatcher(registry *validator.Registry, executor Executor, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry:   registry,
		executor:   executor,
		bashParser: parser.NewBashParser(),
		logger:     log,
	}
}

// Dispatch runs every matching validator for the context and the
// synthetic contexts derived from it.
func (d *Dispatcher) Dispatch(ctx context.Context, hookCtx *hook.Context) *DispatchResult {
	result := &DispatchResult{}

	for _, candidate := range d.expandContexts(hookCtx) {
		validators := d.registry.FindValidators(candidate)
		if len(validators) == 0 {
			continue
		}

		d.logger.Debug("dispatching",
			"event", candidate.EventType.String(),
			"tool", candidate.ToolName.String(),
			"validators", len(validators),
		)

		for _, nr := range d.executor.Execute(ctx, validators, candidate) {
			result.Results = append(result.Results, nr)

			if nr.Result.ShouldBlock && !result.Blocked {
				result.Blocked = true
				result.BlockReason = nr.Result.Message
				result.BlockedBy = nr.Name
			}
		}

		if result.Blocked {
			break
		}
	}

	return result
}

// expandContexts returns the context itself plus synthetic Write
// contexts for file writes embedded in a Bash command.
func (d *Dispatcher) expandContexts(hookCtx *hook.Context) []*hook.Context {
	contexts := []*hook.Context{hookCtx}

	if !hookCtx.IsBashTool() || hookCtx.GetCommand() == "" {
		return contexts
	}

	parsed, err := d.bashParser.Parse(hookCtx.GetCommand())
	if err != nil {
		// Shell rules handle unparseable commands on the primary context.
		return contexts
	}

	for _, write := range parsed.FileWrites {
		synthetic := *hookCtx
		synthetic.ToolName = hook.ToolTypeWrite
		synthetic.ToolInput = hook.ToolInput{
			FilePath: write.Path,
			Content:  write.Content,
		}

		contexts = append(contexts, &synthetic)
	}

	return contexts
}
