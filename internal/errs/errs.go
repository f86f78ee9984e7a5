// Package errs defines the error kinds the CLI distinguishes when deciding
// what to tell the user. Every kind is fatal for the run; the split exists so
// callers and tests can tell bad input, missing prerequisites and broken
// config files apart.
package errs

import "fmt"

// UserInputError reports a missing or unusable command argument.
type UserInputError struct {
	Msg string
}

func (e *UserInputError) Error() string {
	return e.Msg
}

// PreconditionError reports a prerequisite outside this tool's control that
// is not in place, such as a missing gateway install or config file.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return e.Msg
}

// ParseError reports a configuration document that could not be read as
// JSON. Nothing is written once one of these surfaces.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse config: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
