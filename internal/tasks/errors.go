package tasks

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDeclined is returned when a confirmation prompt is answered with no
var ErrDeclined = errors.New("declined")

// CycleError reports a dependency loop, first task repeated at the end
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Path, " -> "))
}

// UnknownTaskError names a task that is not declared
type UnknownTaskError struct {
	Name       string
	RequiredBy string
}

func (e *UnknownTaskError) Error() string {
	if e.RequiredBy == "" {
		return fmt.Sprintf("unknown task %q", e.Name)
	}

	return fmt.Sprintf("unknown task %q (dependency of %q)", e.Name, e.RequiredBy)
}

// MissingParamError is returned when a task parameter has no value
type MissingParamError struct {
	Task  string
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("task %q requires parameter %q", e.Task, e.Param)
}

// CommandError wraps a failing task command
type CommandError struct {
	Task    string
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("task %q: `%s` failed: %v", e.Task, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
