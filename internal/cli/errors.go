// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for hexspect CLI commands.
//
// Every command handler returns an error; main maps it to a process exit
// code through GetExitCode so scripts can distinguish a malformed input
// from a value that simply does not fit the chosen width.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/hexspect/internal/hexconv"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified failure.
	ExitGeneralError = 1

	// ExitUsageError indicates invalid command-line usage.
	ExitUsageError = 2

	// ExitFormatError indicates malformed input (bad hex, bad number).
	ExitFormatError = 3

	// ExitRangeError indicates a value that does not fit its width.
	ExitRangeError = 4

	// ExitConfigError indicates a configuration problem.
	ExitConfigError = 5

	// ExitHistoryError indicates a history database problem.
	ExitHistoryError = 6

	// ExitNotFoundError indicates a missing resource (history entry, key).
	ExitNotFoundError = 7
)

// GetExitCode maps an error to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if hexconv.IsFormatError(err) {
		return ExitFormatError
	}
	if hexconv.IsRangeError(err) {
		return ExitRangeError
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return ExitUsageError
	}

	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return ExitNotFoundError
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		switch cmdErr.Command {
		case "config":
			return ExitConfigError
		case "history":
			return ExitHistoryError
		}
		return ExitGeneralError
	}

	return ExitGeneralError
}

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError wraps an error that occurred while executing a command.
type CommandError struct {
	Command string // which command failed ("hex", "history", ...)
	Action  string // what it was doing ("record", "open database", ...)
	Reason  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Command, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError indicates an invalid flag or argument value.
type ValidationError struct {
	Field   string
	Value   string
	Reason  string
	Example string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	if e.Example != "" {
		msg += fmt.Sprintf(" (example: %s)", e.Example)
	}
	return msg
}

// NotFoundError indicates a missing resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// =============================================================================
// ERROR CONSTRUCTION HELPERS
// =============================================================================

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(field, value, reason string) error {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// NewValidationErrorWithExample creates a validation error with an example.
func NewValidationErrorWithExample(field, value, reason, example string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Reason:  reason,
		Example: example,
	}
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// =============================================================================
// ERROR DISPLAY HELPERS
// =============================================================================

// DisplayError displays an error in a consistent format.
// In JSON mode, outputs a structured JSON error.
func DisplayError(err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		DisplayErrorJSON(err)
		return
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// DisplayErrorJSON outputs an error as JSON.
func DisplayErrorJSON(err error) {
	output := map[string]interface{}{
		"error":   err.Error(),
		"success": false,
	}

	var fmtErr *hexconv.FormatError
	var rngErr *hexconv.RangeError
	var valErr *ValidationError
	var nfErr *NotFoundError
	var cmdErr *CommandError

	switch {
	case errors.As(err, &fmtErr):
		output["error_type"] = "format_error"
		output["reason"] = fmtErr.Reason
		if fmtErr.Token != "" {
			output["token"] = fmtErr.Token
		}

	case errors.As(err, &rngErr):
		output["error_type"] = "range_error"
		output["reason"] = rngErr.Reason

	case errors.As(err, &valErr):
		output["error_type"] = "validation_error"
		output["field"] = valErr.Field
		output["value"] = valErr.Value
		output["reason"] = valErr.Reason
		if valErr.Example != "" {
			output["example"] = valErr.Example
		}

	case errors.As(err, &nfErr):
		output["error_type"] = "not_found_error"
		output["resource"] = nfErr.Resource
		output["id"] = nfErr.ID

	case errors.As(err, &cmdErr):
		output["error_type"] = "command_error"
		output["command"] = cmdErr.Command
		output["action"] = cmdErr.Action
		output["reason"] = cmdErr.Reason
		if cmdErr.Err != nil {
			output["underlying_error"] = cmdErr.Err.Error()
		}

	default:
		output["error_type"] = "generic_error"
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.Encode(output)
}

// HandleError displays and returns an error. Use this as the final step
// in a handler's error path.
func HandleError(err error, jsonMode bool) error {
	if err == nil {
		return nil
	}
	DisplayError(err, jsonMode)
	return err
}
