package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Common error messages from git
const (
	errMsgNotRepository    = "not a git repository"
	errMsgNoUpstream       = "no upstream branch"
	errMsgAuthFailed       = "Authentication failed"
	errMsgPermissionDenied = "Permission denied"
	errMsgRefNotFound      = "couldn't find remote ref"
	errMsgConflict         = "CONFLICT"
	errMsgAlreadyExists    = "already exists"
	errMsgNothingToCommit  = "nothing to commit"
	errMsgDetachedHead     = "HEAD detached"
	errMsgNoSuchRemote     = "No such remote"
	errMsgNoTags           = "No names found"
	errMsgRejected         = "[rejected]"
)

// GitError represents a failed git invocation
type GitError struct {
	Args     []string
	ExitCode int
	Stderr   string
	err      error
}

func (e *GitError) Error() string {
	if e.Stderr == "" {
		return fmt.Errorf("git %s failed: %w", strings.Join(e.Args, " "), e.err).Error()
	}

	return fmt.Sprintf("git %s failed: %s", strings.Join(e.Args, " "), strings.TrimSpace(e.Stderr))
}

func (e *GitError) Unwrap() error {
	return e.err
}

// NewGitError creates a GitError from command output and error
func NewGitError(args []string, stderr string, err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		ExitCode: exitCode,
		Stderr:   stderr,
		Args:     args,
		err:      err,
	}
}

// IsNotRepository checks if the error indicates not a git repository
func IsNotRepository(err error) bool {
	return containsError(err, errMsgNotRepository)
}

// IsAuthRequired checks if the error indicates authentication is required
func IsAuthRequired(err error) bool {
	return containsError(err, errMsgAuthFailed) || containsError(err, errMsgPermissionDenied)
}

// IsNoUpstream checks if the error indicates no upstream branch configured
func IsNoUpstream(err error) bool {
	return containsError(err, errMsgNoUpstream)
}

// IsRefNotFound checks if the error indicates a ref was not found
func IsRefNotFound(err error) bool {
	return containsError(err, errMsgRefNotFound)
}

// IsConflict checks if the error indicates a merge conflict
func IsConflict(err error) bool {
	return containsError(err, errMsgConflict)
}

// IsAlreadyExists checks if the error indicates something already exists
func IsAlreadyExists(err error) bool {
	return containsError(err, errMsgAlreadyExists)
}

// IsNothingToCommit checks if the error indicates nothing to commit
func IsNothingToCommit(err error) bool {
	return containsError(err, errMsgNothingToCommit)
}

// IsDetachedHead checks if the error indicates HEAD is detached
func IsDetachedHead(err error) bool {
	return containsError(err, errMsgDetachedHead)
}

// IsNoSuchRemote checks if the error indicates the remote is not configured
func IsNoSuchRemote(err error) bool {
	return containsError(err, errMsgNoSuchRemote)
}

// IsNoTags checks if the error comes from `git describe` on a repository without tags
func IsNoTags(err error) bool {
	return containsError(err, errMsgNoTags) || containsError(err, "cannot describe anything")
}

// IsRejected checks if a push was rejected by the remote
func IsRejected(err error) bool {
	return containsError(err, errMsgRejected)
}

// containsError checks if the error contains a specific message
func containsError(err error, msg string) bool {
	if err == nil {
		return false
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return strings.Contains(strings.ToLower(gitErr.Stderr), strings.ToLower(msg))
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(msg))
}

// GetExitCode returns the exit code from a git error, or -1 if not available
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
