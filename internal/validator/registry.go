package validator

import (
	"slices"

	"github.com/popkit-dev/popkit/pkg/hook"
)

// Predicate determines if a validator should be applied to a context.
type Predicate func(*hook.Context) bool

// Registration represents a validator registration with its predicate.
type Registration struct {
	Validator Validator
	Predicate Predicate
}

// Registry manages validator registrations and selection.
// Registration order is significant: the dispatcher evaluates validators
// in order and the first blocking verdict wins, so more specific rules
// must be registered before general ones.
type Registry struct {
	registrations []Registration
}

// NewRegistry creates a new empty validator registry.
func NewRegistry() *Registry {
	return &Registry{
		registrations: make([]Registration, 0),
	}
}

// Register adds a validator with a predicate to the registry.
func (r *Registry) Register(validator Validator, predicate Predicate) {
	r.registrations = append(r.registrations, Registration{
		Validator: validator,
		Predicate: predicate,
	})
}

// FindValidators returns all validators whose predicates match the
// context, in registration order.
func (r *Registry) FindValidators(ctx *hook.Context) []Validator {
	validators := make([]Validator, 0)

	for _, reg := range r.registrations {
		if reg.Predicate(ctx) {
			validators = append(validators, reg.Validator)
		}
	}

	return validators
}

// Count returns the number of registered validators.
func (r *Registry) Count() int {
	return len(r.registrations)
}

// Common Predicates

// EventTypeIs returns a predicate that matches the given event type.
func EventTypeIs(eventType hook.EventType) Predicate {
	return func(ctx *hook.Context) bool {
		return ctx.EventType == eventType
	}
}

// ToolTypeIs returns a predicate that matches the given tool type.
func ToolTypeIs(toolType hook.ToolType) Predicate {
	return func(ctx *hook.Context) bool {
		return ctx.ToolName == toolType
	}
}

// ToolTypeIn returns a predicate that matches any of the given tool types.
func ToolTypeIn(toolTypes ...hook.ToolType) Predicate {
	return func(ctx *hook.Context) bool {
		return slices.Contains(toolTypes, ctx.ToolName)
	}
}

// HasPrompt returns a predicate that matches contexts carrying a prompt.
func HasPrompt() Predicate {
	return func(ctx *hook.Context) bool {
		return ctx.Prompt != ""
	}
}

// Predicate Combinators

// And returns a predicate that matches if all predicates match.
func And(predicates ...Predicate) Predicate {
	return func(ctx *hook.Context) bool {
		for _, p := range predicates {
			if !p(ctx) {
				return false
			}
		}

		return true
	}
}

// Or returns a predicate that matches if any predicate matches.
func Or(predicates ...Predicate) Predicate {
	return func(ctx *hook.Context) bool {
		for _, p := range predicates {
			if p(ctx) {
				return true
			}
		}

		return false
	}
}

// Not returns a predicate that inverts the given predicate.
func Not(predicate Predicate) Predicate {
	return func(ctx *hook.Context) bool {
		return !predicate(ctx)
	}
}

// Always returns a predicate that always matches.
func Always() Predicate {
	return func(*hook.Context) bool {
		return true
	}
}
