// Package validator provides the validator interface and predicate registry.
package validator

import (
	"context"

	"github.com/popkit-dev/popkit/pkg/hook"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// Category represents the kind of workload a validator performs.
// Used to select the appropriate worker pool for parallel execution.
type Category int

const (
	// CategoryCPU is for pure computation validators (regex, parsing).
	CategoryCPU Category = iota

	// CategoryIO is for validators that touch the filesystem.
	CategoryIO
)

// String returns a string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryCPU:
		return "CPU"
	case CategoryIO:
		return "IO"
	default:
		return "Unknown"
	}
}

// Validator validates a hook context.
type Validator interface {
	// Name returns the validator name.
	Name() string

	// Validate validates the given context and returns a result.
	Validate(ctx context.Context, hookCtx *hook.Context) *Result

	// Category returns the validator's workload category.
	Category() Category
}

// Result represents the validation result.
type Result struct {
	// Passed indicates whether the validation passed.
	Passed bool

	// Message is the human-readable message. Non-empty whenever the
	// validation did not pass.
	Message string

	// Details contains additional details about the validation.
	Details map[string]string

	// ShouldBlock indicates whether this failure should block the
	// operation. Failures with ShouldBlock false are warnings.
	ShouldBlock bool
}

// Pass creates a passing validation result.
func Pass() *Result {
	return &Result{
		Passed:      true,
		ShouldBlock: false,
	}
}

// Fail creates a failing validation result that blocks the operation.
func Fail(message string) *Result {
	return &Result{
		Passed:      false,
		Message:     message,
		ShouldBlock: true,
	}
}

// Warn creates a failing validation result that only warns without blocking.
func Warn(message string) *Result {
	return &Result{
		Passed:      false,
		Message:     message,
		ShouldBlock: false,
	}
}

// AddDetail adds a detail to the result.
func (r *Result) AddDetail(key, value string) *Result {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}

	r.Details[key] = value

	return r
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.Passed {
		return "PASS"
	}

	if r.ShouldBlock {
		return "BLOCK"
	}

	return "WARN"
}

// BaseValidator provides common validator functionality.
type BaseValidator struct {
	name   string
	logger logger.Logger
}

// NewBaseValidator creates a new BaseValidator.
func NewBaseValidator(name string, log logger.Logger) *BaseValidator {
	return &BaseValidator{
		name:   name,
		logger: log,
	}
}

// Name returns the validator name.
func (v *BaseValidator) Name() string {
	return v.name
}

// Logger returns the logger.
//
//nolint:ireturn // interface for polymorphism
func (v *BaseValidator) Logger() logger.Logger {
	return v.logger
}

// Category returns the default category (CPU).
// Validators that perform I/O should override this.
func (*BaseValidator) Category() Category {
	return CategoryCPU
}
