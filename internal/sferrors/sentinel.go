package sferrors

import "errors"

// Sentinel errors for the compile-time and execution-time error taxonomy.
var (
	// ErrParse indicates a malformed feature expression string.
	ErrParse = errors.New("parse error")

	// ErrUnknownTransform indicates a transform name absent from the registry.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrInvalidParameterName indicates a parameter name absent from a
	// transform's schema.
	ErrInvalidParameterName = errors.New("invalid parameter name")

	// ErrInvalidParameterValue indicates a parameter value a transform's
	// validator rejected.
	ErrInvalidParameterValue = errors.New("invalid parameter value")

	// ErrIncompatibleFormats indicates a parent's output format does not
	// match a child's required input format and no converter bridges them.
	ErrIncompatibleFormats = errors.New("incompatible buffer formats")

	// ErrCorruptedTree indicates an arena planner post-condition failed.
	// This is always a planner bug, never a consequence of user input.
	ErrCorruptedTree = errors.New("corrupted allocation tree")

	// ErrExecution indicates a transform kernel reported failure at
	// run time: fatal values, NaN, or overflow in a validated buffer.
	ErrExecution = errors.New("execution error")
)
