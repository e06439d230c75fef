package dispatcher

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/popkit-dev/popkit/internal/validator"
	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// Executor runs a set of validators against a hook context.
type Executor interface {
	// Execute runs the validators and returns their results.
	Execute(ctx context.Context, validators []validator.Validator, hookCtx *hook.Context) []NamedResult
}

// NamedResult pairs a validation result with the validator that
// produced it.
type NamedResult struct {
	Name   string
	Result *validator.Result
}

// SequentialExecutor runs validators one at a time in registration
// order and stops at the first blocking result. Later validators never
// run once a rule has decided, so results reflect exactly one deciding
// rule.
type SequentialExecutor struct {
	logger logger.Logger
}

// NewSequentialExecutor creates a new SequentialExecutor.
func NewSequentialExecutor(log logger.Logger) *SequentialExecutor {
	return &SequentialExecutor{
		logger: log,
	}
}

// Execute runs validators in order, stopping at the first block.
func (e *SequentialExecutor) Execute(
	ctx context.Context,
	validators []validator.Validator,
	hookCtx *hook.Context,
) []NamedResult {
	results := make([]NamedResult, 0, len(validators))

	for _, v := range validators {
		result := runValidator(ctx, v, hookCtx, e.logger)
		results = append(results, NamedResult{Name: v.Name(), Result: result})

		if result.ShouldBlock {
			e.logger.Debug("stopping at first blocking result", "validator", v.Name())

			break
		}
	}

	return results
}

// ioPoolSize bounds concurrent filesystem-touching validators.
const ioPoolSize = 4

// ParallelExecutor runs validators concurrently, bounded by two
// weighted semaphores: the CPU pool sized to GOMAXPROCS and a small IO
// pool. Used for advisory (non-blocking) validator sets where ordering
// does not matter.
type ParallelExecutor struct {
	logger  logger.Logger
	cpuPool *semaphore.Weighted
	ioPool  *semaphore.Weighted
}

// NewParallelExecutor creates a new ParallelExecutor.
func NewParallelExecutor(log logger.Logger) *ParallelExecutor {
	return &ParallelExecutor{
		logger:  log,
		cpuPool: semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
		ioPool:  semaphore.NewWeighted(ioPoolSize),
	}
}

// Execute runs all validators concurrently and returns results in the
// validators' original order.
func (e *ParallelExecutor) Execute(
	ctx context.Context,
	validators []validator.Validator,
	hookCtx *hook.Context,
) []NamedResult {
	results := make([]NamedResult, len(validators))

	var wg sync.WaitGroup

	for i, v := range validators {
		pool := e.cpuPool
		if v.Category() == validator.CategoryIO {
			pool = e.ioPool
		}

		if err := pool.Acquire(ctx, 1); err != nil {
			results[i] = NamedResult{
				Name:   v.Name(),
				Result: validator.Pass(),
			}

			continue
		}

		wg.Add(1)

		go func(i int, v validator.Validator, pool *semaphore.Weighted) {
			defer wg.Done()
			defer pool.Release(1)

			results[i] = NamedResult{
				Name:   v.Name(),
				Result: runValidator(ctx, v, hookCtx, e.logger),
			}
		}(i, v, pool)
	}

	wg.Wait()

	return results
}

// runValidator executes a single validator, converting a panic into a
// pass. A misbehaving rule must not take the hook down with it.
func runValidator(
	ctx context.Context,
	v validator.Validator,
	hookCtx *hook.Context,
	log logger.Logger,
) (result *validator.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("validator panicked, treating as pass", "validator", v.Name(), "panic", r)

			result = validator.Pass()
		}
	}()

	result = v.Validate(ctx, hookCtx)
	if result == nil {
		result = validator.Pass()
	}

	return result
}
