package release

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionUnchanged is returned when the new version equals the current one
	ErrVersionUnchanged = errors.New("version unchanged")
	// ErrToolMissing is returned when a required external binary is not on PATH
	ErrToolMissing = errors.New("required tool not found in PATH")
	// ErrDirtyTree is returned when a release starts with uncommitted changes
	ErrDirtyTree = errors.New("working tree has uncommitted changes")
	// ErrNoManifest is returned when no version manifest can be found
	ErrNoManifest = errors.New("no version manifest found")
	// ErrTagExists is returned when the release tag is already taken
	ErrTagExists = errors.New("tag already exists")
)

// InvalidVersionError indicates a malformed semantic version
type InvalidVersionError struct {
	Input string
	Err   error
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: expected X.Y.Z (e.g. 1.2.3): %v", e.Input, e.Err)
}

func (e *InvalidVersionError) Unwrap() error {
	return e.Err
}

// ToolMissingError names the binary that could not be found
type ToolMissingError struct {
	Tool string
	Hint string
}

func (e *ToolMissingError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s: %s", ErrToolMissing, e.Tool)
	}

	return fmt.Sprintf("%s: %s (%s)", ErrToolMissing, e.Tool, e.Hint)
}

func (e *ToolMissingError) Unwrap() error {
	return ErrToolMissing
}

// StepError reports which pipeline step failed
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
