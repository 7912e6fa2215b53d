package hosting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inovacc/tuislider/internal/git"
)

// RemoteError wraps a failure against one remote
type RemoteError struct {
	Remote string
	Op     string
	Err    error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Remote, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Hint suggests a way out of common push and pull failures, or returns ""
func (e *RemoteError) Hint() string {
	switch {
	case git.IsRejected(e.Err):
		return fmt.Sprintf("%s has commits that are not in your branch; pull or run tuislider sync-gitea first", e.Remote)
	case git.IsNoUpstream(e.Err):
		return "the branch has no upstream; push it once with git push -u " + e.Remote
	case git.IsRefNotFound(e.Err):
		return fmt.Sprintf("the branch does not exist on %s yet; push it there first", e.Remote)
	case git.IsConflict(e.Err):
		return "resolve the merge conflicts, commit, then run the command again"
	case git.IsAuthRequired(e.Err):
		return fmt.Sprintf("%s refused the credentials; check your SSH key with tuislider remote check", e.Remote)
	}

	return ""
}

// PushOptions configures PushAll
type PushOptions struct {
	Tags   bool
	Force  bool
	Logger *slog.Logger

	// OnPushed is called after each successful remote
	OnPushed func(remote string)
}

// PushAll pushes branch to every remote in order and stops at the first failure.
// It returns the remotes that were pushed.
func PushAll(ctx context.Context, client *git.Client, remotes []string, branch string, opts PushOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pushed := make([]string, 0, len(remotes))

	for _, remote := range remotes {
		logger.Debug("pushing",
			slog.String("remote", remote),
			slog.String("branch", branch),
			slog.Bool("tags", opts.Tags),
		)

		err := client.Push(ctx, remote, branch, git.PushOptions{Tags: opts.Tags, Force: opts.Force})
		if err != nil {
			logger.Debug("push failed", slog.String("remote", remote), slog.Int("exit_code", git.GetExitCode(err)))
			return pushed, &RemoteError{Remote: remote, Op: "push", Err: err}
		}

		pushed = append(pushed, remote)

		if opts.OnPushed != nil {
			opts.OnPushed(remote)
		}
	}

	return pushed, nil
}

// SyncGitea fetches tags from one remote, pulls branch from it and pushes
// both, with tags, to another
func SyncGitea(ctx context.Context, client *git.Client, from, to, branch string) error {
	if err := client.Fetch(ctx, from); err != nil {
		return &RemoteError{Remote: from, Op: "fetch", Err: err}
	}

	if err := client.Pull(ctx, from, branch); err != nil {
		return &RemoteError{Remote: from, Op: "pull", Err: err}
	}

	if err := client.Push(ctx, to, branch, git.PushOptions{Tags: true}); err != nil {
		return &RemoteError{Remote: to, Op: "push", Err: err}
	}

	return nil
}
