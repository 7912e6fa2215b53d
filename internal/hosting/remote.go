// Package hosting manages the mirrored GitHub and Gitea remotes of a project.
package hosting

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/inovacc/tuislider/internal/git"
)

// Well-known remote names
const (
	RemoteGitHub = "origin"
	RemoteGitea  = "gitea"
)

// Remote describes one hosted copy of the repository
type Remote struct {
	Name  string
	Host  string
	Owner string
	Repo  string
	User  string // SSH user, "git" when empty
	Port  int    // SSH port, 22 when zero
}

func (r Remote) user() string {
	if r.User == "" {
		return "git"
	}

	return r.User
}

// SSHURL returns the scp-style URL, or an ssh:// URL when a port is set
func (r Remote) SSHURL() string {
	if r.Port != 0 && r.Port != 22 {
		return fmt.Sprintf("ssh://%s@%s:%s/%s/%s.git", r.user(), r.Host, strconv.Itoa(r.Port), r.Owner, r.Repo)
	}

	return fmt.Sprintf("%s@%s:%s/%s.git", r.user(), r.Host, r.Owner, r.Repo)
}

// HTTPSURL returns the web clone URL
func (r Remote) HTTPSURL() string {
	return fmt.Sprintf("https://%s/%s/%s.git", r.Host, r.Owner, r.Repo)
}

// WebURL returns the repository page URL
func (r Remote) WebURL() string {
	return fmt.Sprintf("https://%s/%s/%s", r.Host, r.Owner, r.Repo)
}

// Validate checks that the remote can produce URLs
func (r Remote) Validate() error {
	switch {
	case r.Name == "":
		return fmt.Errorf("remote: name is required")
	case r.Host == "":
		return fmt.Errorf("remote %s: host is required", r.Name)
	case r.Owner == "" || r.Repo == "":
		return fmt.Errorf("remote %s: owner and repo are required", r.Name)
	}

	return nil
}

// ParseURL reads host, owner and repo from an scp-style, ssh:// or https://
// remote URL
func ParseURL(name, raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)
	r := Remote{Name: name}

	var path string

	if !strings.Contains(raw, "://") {
		at := strings.Index(raw, "@")
		colon := strings.Index(raw, ":")

		if colon < 0 || colon < at {
			return r, fmt.Errorf("unrecognized remote URL %q", raw)
		}

		if at >= 0 {
			r.User = raw[:at]
		}

		r.Host = raw[at+1 : colon]
		path = raw[colon+1:]
	} else {
		u, err := url.Parse(raw)
		if err != nil {
			return r, fmt.Errorf("unrecognized remote URL %q: %w", raw, err)
		}

		r.Host = u.Hostname()
		path = u.Path

		if u.Scheme == "ssh" {
			r.User = u.User.Username()

			if p := u.Port(); p != "" {
				r.Port, _ = strconv.Atoi(p)
			}
		}
	}

	parts := strings.Split(strings.Trim(strings.TrimSuffix(path, ".git"), "/"), "/")
	if r.Host == "" || len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return r, fmt.Errorf("unrecognized remote URL %q", raw)
	}

	r.Owner, r.Repo = parts[0], parts[1]

	return r, nil
}

// SetupAction is what Setup did for a remote
type SetupAction string

const (
	ActionAdded     SetupAction = "added"
	ActionUpdated   SetupAction = "updated"
	ActionUnchanged SetupAction = "unchanged"
	ActionConflict  SetupAction = "conflict"
)

// SetupResult reports the outcome for one remote
type SetupResult struct {
	Remote     Remote
	Action     SetupAction
	CurrentURL string
	Err        error
}

// ConflictError indicates a remote already points somewhere else
type ConflictError struct {
	Remote      string
	CurrentURL  string
	ExpectedURL string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("remote %s points to %s, expected %s (use --force to update)",
		e.Remote, e.CurrentURL, e.ExpectedURL)
}

// SetupOptions configures Setup
type SetupOptions struct {
	Force  bool // Rewrite remotes that point elsewhere
	Logger *slog.Logger
}

// Setup makes every remote point at its SSH URL. Conflicts are reported in
// the results and do not stop the remaining remotes; git failures do.
func Setup(ctx context.Context, client *git.Client, remotes []Remote, opts SetupOptions) ([]SetupResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]SetupResult, 0, len(remotes))

	for _, r := range remotes {
		if err := r.Validate(); err != nil {
			return results, err
		}

		want := r.SSHURL()
		res := SetupResult{Remote: r}

		current, err := client.RemoteURL(ctx, r.Name)

		switch {
		case err != nil && git.IsNoSuchRemote(err):
			if err := client.AddRemote(ctx, r.Name, want); err != nil {
				return results, fmt.Errorf("add remote %s: %w", r.Name, err)
			}

			res.Action = ActionAdded
		case err != nil:
			return results, err
		case current == want:
			res.Action = ActionUnchanged
			res.CurrentURL = current
		case opts.Force:
			if err := client.SetRemoteURL(ctx, r.Name, want); err != nil {
				return results, fmt.Errorf("update remote %s: %w", r.Name, err)
			}

			res.Action = ActionUpdated
			res.CurrentURL = current
		default:
			res.Action = ActionConflict
			res.CurrentURL = current
			res.Err = &ConflictError{Remote: r.Name, CurrentURL: current, ExpectedURL: want}
		}

		logger.Debug("remote setup",
			slog.String("remote", r.Name),
			slog.String("url", want),
			slog.String("action", string(res.Action)),
		)

		results = append(results, res)
	}

	return results, nil
}

// VerifyRemote lists the branches a remote advertises
func VerifyRemote(ctx context.Context, client *git.Client, remote string) ([]string, error) {
	refs, err := client.LsRemote(ctx, remote)
	if err != nil {
		if git.IsAuthRequired(err) {
			return nil, fmt.Errorf("remote %s: authentication failed, check your SSH key: %w", remote, err)
		}

		return nil, fmt.Errorf("remote %s: %w", remote, err)
	}

	return refs, nil
}
