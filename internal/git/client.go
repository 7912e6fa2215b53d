// Package git provides a thin client around the git executable.
// Pattern inspired by github.com/cli/cli
package git

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// ErrGitNotFound is returned when no git executable is on PATH
var ErrGitNotFound = errors.New("git executable not found in PATH")

// Client wraps git operations for a single repository
type Client struct {
	RepoDir string // Repository directory
	GitPath string // Path to git executable
	Stderr  io.Writer
	Stdin   io.Reader
	Stdout  io.Writer
}

// NewClient creates a new git client bound to the current directory
func NewClient() *Client {
	gitPath, _ := exec.LookPath("git")

	return &Client{
		GitPath: gitPath,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}
}

// NewClientForRepo creates a client for a specific repository
func NewClientForRepo(repoDir string) *Client {
	c := NewClient()
	c.RepoDir = repoDir

	return c
}

// Available reports whether a git executable was found
func (c *Client) Available() bool {
	return c.GitPath != ""
}

// Command creates a git command.
// Note: Do not set Stdout/Stderr if you plan to use CombinedOutput()
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)

	if c.RepoDir != "" {
		cmd.Dir = c.RepoDir
	}

	return cmd
}

// output runs git and returns trimmed stdout, wrapping failures in a GitError
func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	if !c.Available() {
		return "", ErrGitNotFound
	}

	cmd := c.Command(ctx, args...)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", NewGitError(args, stderr.String(), err)
	}

	return strings.TrimSpace(string(out)), nil
}

// run runs git, capturing combined output for error reporting
func (c *Client) run(ctx context.Context, args ...string) error {
	if !c.Available() {
		return ErrGitNotFound
	}

	out, err := c.Command(ctx, args...).CombinedOutput()
	if err != nil {
		return NewGitError(args, string(out), err)
	}

	return nil
}

// runStreaming runs git with output attached to the client writers
func (c *Client) runStreaming(ctx context.Context, args ...string) error {
	if !c.Available() {
		return ErrGitNotFound
	}

	var stderr strings.Builder

	cmd := c.Command(ctx, args...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = &stderr

	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(c.Stderr, &stderr)
	}

	if err := cmd.Run(); err != nil {
		return NewGitError(args, stderr.String(), err)
	}

	return nil
}

// Init creates a repository in the client directory
func (c *Client) Init(ctx context.Context, branch string) error {
	args := []string{"init", "-q"}
	if branch != "" {
		args = append(args, "-b", branch)
	}

	return c.run(ctx, args...)
}

// SetConfig sets a repository-local config value
func (c *Client) SetConfig(ctx context.Context, key, value string) error {
	return c.run(ctx, "config", key, value)
}

// Root returns the top-level directory of the repository
func (c *Client) Root(ctx context.Context) (string, error) {
	return c.output(ctx, "rev-parse", "--show-toplevel")
}

// CurrentBranch returns the current branch name
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := c.output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}

	if branch == "HEAD" {
		return "", &GitError{Args: []string{"rev-parse"}, Stderr: errMsgDetachedHead}
	}

	return branch, nil
}

// Status returns the short git status
func (c *Client) Status(ctx context.Context) (string, error) {
	return c.output(ctx, "status", "--porcelain")
}

// IsClean reports whether the working tree has no uncommitted changes
func (c *Client) IsClean(ctx context.Context) (bool, error) {
	status, err := c.Status(ctx)
	if err != nil {
		return false, err
	}

	return status == "", nil
}

// Remote is a configured git remote
type Remote struct {
	Name     string
	FetchURL string
	PushURL  string
}

// Remotes lists configured remotes parsed from `git remote -v`
func (c *Client) Remotes(ctx context.Context) ([]Remote, error) {
	out, err := c.output(ctx, "remote", "-v")
	if err != nil {
		return nil, err
	}

	return ParseRemoteVerbose(out), nil
}

// ParseRemoteVerbose parses the output of `git remote -v`
func ParseRemoteVerbose(out string) []Remote {
	byName := make(map[string]*Remote)

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}

		r, ok := byName[fields[0]]
		if !ok {
			r = &Remote{Name: fields[0]}
			byName[fields[0]] = r
		}

		switch fields[2] {
		case "(fetch)":
			r.FetchURL = fields[1]
		case "(push)":
			r.PushURL = fields[1]
		}
	}

	remotes := make([]Remote, 0, len(byName))
	for _, r := range byName {
		remotes = append(remotes, *r)
	}

	sort.Slice(remotes, func(i, j int) bool { return remotes[i].Name < remotes[j].Name })

	return remotes
}

// RemoteURL returns the URL for a remote
func (c *Client) RemoteURL(ctx context.Context, remote string) (string, error) {
	return c.output(ctx, "remote", "get-url", remote)
}

// HasRemote reports whether a remote with the given name is configured
func (c *Client) HasRemote(ctx context.Context, remote string) (bool, error) {
	_, err := c.RemoteURL(ctx, remote)
	if err == nil {
		return true, nil
	}

	if IsNoSuchRemote(err) {
		return false, nil
	}

	return false, err
}

// AddRemote runs `git remote add`
func (c *Client) AddRemote(ctx context.Context, name, url string) error {
	return c.run(ctx, "remote", "add", name, url)
}

// SetRemoteURL runs `git remote set-url`
func (c *Client) SetRemoteURL(ctx context.Context, name, url string) error {
	return c.run(ctx, "remote", "set-url", name, url)
}

// LsRemote lists the heads advertised by a remote
func (c *Client) LsRemote(ctx context.Context, remote string) ([]string, error) {
	out, err := c.output(ctx, "ls-remote", "--heads", remote)
	if err != nil {
		return nil, err
	}

	var refs []string

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			refs = append(refs, fields[1])
		}
	}

	return refs, nil
}

// PushOptions configures push behavior
type PushOptions struct {
	SetUpstream bool
	Force       bool
	Tags        bool
}

// Push pushes a branch to a remote
func (c *Client) Push(ctx context.Context, remote, branch string, opts PushOptions) error {
	args := []string{"push"}

	if opts.SetUpstream {
		args = append(args, "-u")
	}

	if opts.Force {
		args = append(args, "--force")
	}

	if remote != "" {
		args = append(args, remote)
		if branch != "" {
			args = append(args, branch)
		}
	}

	if err := c.runStreaming(ctx, args...); err != nil {
		return err
	}

	if opts.Tags {
		tagArgs := []string{"push", "--tags"}
		if remote != "" {
			tagArgs = append(tagArgs, remote)
		}

		return c.runStreaming(ctx, tagArgs...)
	}

	return nil
}

// Pull pulls a branch from a remote
func (c *Client) Pull(ctx context.Context, remote, branch string) error {
	args := []string{"pull"}
	if remote != "" {
		args = append(args, remote)
		if branch != "" {
			args = append(args, branch)
		}
	}

	return c.runStreaming(ctx, args...)
}

// Fetch fetches from a remote
func (c *Client) Fetch(ctx context.Context, remote string) error {
	args := []string{"fetch", "--tags"}
	if remote != "" {
		args = append(args, remote)
	}

	return c.run(ctx, args...)
}

// Add stages the given paths
func (c *Client) Add(ctx context.Context, paths ...string) error {
	return c.run(ctx, append([]string{"add", "--"}, paths...)...)
}

// IsIgnored reports whether path is excluded by .gitignore
func (c *Client) IsIgnored(ctx context.Context, path string) bool {
	if !c.Available() {
		return false
	}

	return c.Command(ctx, "check-ignore", "-q", path).Run() == nil
}

// CommitOptions configures commit behavior
type CommitOptions struct {
	All bool // Stage all modified files before committing
}

// Commit creates a commit
func (c *Client) Commit(ctx context.Context, message string, opts CommitOptions) error {
	if opts.All {
		if err := c.run(ctx, "add", "-A"); err != nil {
			return fmt.Errorf("failed to stage files: %w", err)
		}
	}

	return c.run(ctx, "commit", "-m", message)
}

// Tag creates a git tag, annotated when message is not empty
func (c *Client) Tag(ctx context.Context, name, message string) error {
	if message != "" {
		return c.run(ctx, "tag", "-a", name, "-m", message)
	}

	return c.run(ctx, "tag", name)
}

// TagExists reports whether a tag exists locally
func (c *Client) TagExists(ctx context.Context, name string) (bool, error) {
	out, err := c.output(ctx, "tag", "--list", name)
	if err != nil {
		return false, err
	}

	return out == name, nil
}

// LatestTag returns the most recent tag reachable from HEAD, or "" when there is none
func (c *Client) LatestTag(ctx context.Context) (string, error) {
	tag, err := c.output(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		if IsNoTags(err) {
			return "", nil
		}

		return "", err
	}

	return tag, nil
}

// Log returns non-merge commits since the given revision (all history when empty)
func (c *Client) Log(ctx context.Context, since string) ([]Commit, error) {
	args := []string{"log", "--no-merges", "--format=%H%x1f%s%x1f%b%x1e"}
	if since != "" {
		args = append(args, since+"..HEAD")
	}

	out, err := c.output(ctx, args...)
	if err != nil {
		return nil, err
	}

	return ParseLog(out), nil
}

// Commit is a single log entry
type Commit struct {
	Hash    string
	Subject string
	Body    string
}

// ParseLog parses log output produced with the record/unit separator format used by Log
func ParseLog(out string) []Commit {
	var commits []Commit

	for _, record := range strings.Split(out, "\x1e") {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}

		parts := strings.SplitN(record, "\x1f", 3)
		if len(parts) < 2 {
			continue
		}

		commit := Commit{Hash: parts[0], Subject: parts[1]}
		if len(parts) == 3 {
			commit.Body = strings.TrimSpace(parts[2])
		}

		commits = append(commits, commit)
	}

	return commits
}
