// Package sferrors provides the structured compile-time and execution-time
// error taxonomy for pipeline compilation and execution.
package sferrors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information: a category, the
// offending name or location, and enough context to act on without
// re-running the compiler in verbose mode.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the position within the feature expression string
	// (e.g. "char 14"), when known.
	Location string

	// Field is the parameter name, for parameter-related errors.
	Field string

	// Context contains additional key-value context (transform name,
	// expected vs. actual format, node IDs).
	Context map[string]string

	// Hint provides actionable guidance.
	Hint string

	// Cause is the underlying sentinel error.
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying sentinel error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewParseError reports a malformed feature expression string.
func NewParseError(message, location, hint string) error {
	return &DetailError{
		Type:     "parse error",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrParse,
	}
}

// NewUnknownTransformError reports a transform name absent from the registry.
func NewUnknownTransformError(name, hint string) error {
	return &DetailError{
		Type:    "unknown transform",
		Message: fmt.Sprintf("transform %q is not registered", name),
		Field:   name,
		Hint:    hint,
		Cause:   ErrUnknownTransform,
	}
}

// NewInvalidParameterNameError reports a parameter absent from a transform's schema.
func NewInvalidParameterNameError(transform, param, hint string) error {
	return &DetailError{
		Type:    "invalid parameter name",
		Message: fmt.Sprintf("transform %q has no parameter %q", transform, param),
		Field:   param,
		Context: map[string]string{"transform": transform},
		Hint:    hint,
		Cause:   ErrInvalidParameterName,
	}
}

// NewInvalidParameterValueError reports a value a transform's validator rejected.
func NewInvalidParameterValueError(transform, param, value, hint string) error {
	return &DetailError{
		Type:    "invalid parameter value",
		Message: fmt.Sprintf("transform %q parameter %q rejected value %q", transform, param, value),
		Field:   param,
		Context: map[string]string{"transform": transform, "value": value},
		Hint:    hint,
		Cause:   ErrInvalidParameterValue,
	}
}

// NewIncompatibleFormatsError reports a parent output format that does not
// match a child's required input format with no converter available.
func NewIncompatibleFormatsError(parent, child, parentFormat, childFormat string) error {
	return &DetailError{
		Type:    "incompatible buffer formats",
		Message: fmt.Sprintf("%q produces %s but %q requires %s and no converter bridges them", parent, parentFormat, child, childFormat),
		Context: map[string]string{
			"parent":        parent,
			"child":         child,
			"parent_format": parentFormat,
			"child_format":  childFormat,
		},
		Cause: ErrIncompatibleFormats,
	}
}

// NewCorruptedTreeError reports an arena planner post-condition failure.
// This always indicates a planner bug, never bad user input.
func NewCorruptedTreeError(reason string, context map[string]string) error {
	return &DetailError{
		Type:    "corrupted allocation tree",
		Message: reason,
		Context: context,
		Hint:    "this indicates a bug in the arena planner; please file a report",
		Cause:   ErrCorruptedTree,
	}
}

// NewExecutionError reports a transform kernel failure at run time.
func NewExecutionError(transform, reason string) error {
	return &DetailError{
		Type:    "execution error",
		Message: reason,
		Field:   transform,
		Cause:   ErrExecution,
	}
}

// Wrap wraps an error with a sentinel error type, preserving errors.Is checks.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
