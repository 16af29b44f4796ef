package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file, template, or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrNoWorkspace indicates no project root could be resolved.
	ErrNoWorkspace = errors.New("no workspace is open")

	// ErrCancelled indicates the user dismissed an interactive prompt.
	ErrCancelled = errors.New("cancelled")
)
