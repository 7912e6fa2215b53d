package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/git"
	"github.com/inovacc/tuislider/internal/git/gittest"
	"github.com/inovacc/tuislider/internal/release"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty", input: "", wantErr: true},
		{name: "home", input: "~", want: home},
		{name: "home subdir", input: "~/projects", want: filepath.Join(home, "projects")},
		{name: "relative", input: "sub", want: filepath.Join(cwd, "sub")},
		{name: "absolute", input: filepath.Join(cwd, "abs"), want: filepath.Join(cwd, "abs")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"shorter than max", "test", 10, "test"},
		{"exact length", "test", 4, "test"},
		{"longer than max", "testing", 5, "te..."},
		{"max length 3", "testing", 3, "tes"},
		{"max length 2", "testing", 2, "te"},
		{"multibyte", "✅✅✅✅✅✅", 5, "✅✅..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateString(tt.input, tt.maxLen))
		})
	}
}

func TestCheckName(t *testing.T) {
	assert.Equal(t, "cargo clippy", checkName("cargo clippy --all-targets -- -D warnings"))
	assert.Equal(t, "true", checkName("true"))
}

func TestSummarizeRefs(t *testing.T) {
	assert.Equal(t, "(empty)", summarizeRefs(nil))
	assert.Equal(t, "refs/heads/main", summarizeRefs([]string{"refs/heads/main"}))
	assert.Equal(t, "a, b, c and 2 more", summarizeRefs([]string{"a", "b", "c", "d", "e"}))
}

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "tag", stepLabel(release.Step{Name: "tag"}))
	assert.Equal(t, "Tag v1.0.0", stepLabel(release.Step{Name: "tag", Description: "Tag v1.0.0"}))
}

func TestProjectRemotes_OwnerFromOrigin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".git/config", `[core]
	bare = false
[remote "origin"]
	url = https://github.com/orhun/tui-slider.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`)

	cfg := config.Default(dir)
	cfg.Remotes.GitHub.Repo = "tui-slider"
	cfg.Remotes.Gitea.Host = "git.example.com"
	cfg.Remotes.Gitea.Repo = "tui-slider"

	p := &project{Dir: dir, Config: cfg, Logger: slog.Default()}

	remotes, err := p.remotes()
	require.NoError(t, err)
	require.Len(t, remotes, 2)
	assert.Equal(t, "orhun", remotes[0].Owner)
	assert.Equal(t, "orhun", remotes[1].Owner)
	assert.Equal(t, "git@git.example.com:orhun/tui-slider.git", remotes[1].SSHURL())
}

func TestProjectRemotes_RepoFromOrigin(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "checkout")
	writeFile(t, dir, ".git/config", `[remote "origin"]
	url = git@github.com:orhun/tui-slider.git
`)
	writeFile(t, dir, ".tuislider.yaml", "remotes:\n  github:\n    owner: orhun\n  gitea:\n    host: git.example.com\n")

	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "checkout", cfg.Project.Name)

	p := &project{Dir: dir, Config: cfg, Logger: slog.Default()}

	remotes, err := p.remotes()
	require.NoError(t, err)
	require.Len(t, remotes, 2)
	assert.Equal(t, "tui-slider", remotes[0].Repo)
	assert.Equal(t, "git@git.example.com:orhun/tui-slider.git", remotes[1].SSHURL())
}

func TestProjectRemotes_RepoFallsBackToProjectName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tui-slider")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	cfg := config.Default(dir)
	cfg.Remotes.GitHub.Owner = "orhun"

	p := &project{Dir: dir, Config: cfg, Logger: slog.Default()}

	remotes, err := p.remotes()
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:orhun/tui-slider.git", remotes[0].SSHURL())
}

func TestProjectRemotes_NoOrigin(t *testing.T) {
	dir := t.TempDir()

	p := &project{Dir: dir, Config: config.Default(dir), Logger: slog.Default()}

	_, err := p.remotes()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "remotes.github.owner is not set"), err.Error())
}

func TestProjectRequireRepo(t *testing.T) {
	repo := gittest.NewRepo(t)
	ctx := context.Background()

	p := &project{Dir: repo.RepoDir, Config: config.Default(repo.RepoDir), Git: repo, Logger: slog.Default()}
	require.NoError(t, p.requireRepo(ctx))

	outside := t.TempDir()
	p = &project{Dir: outside, Config: config.Default(outside), Git: git.NewClientForRepo(outside), Logger: slog.Default()}
	assert.EqualError(t, p.requireRepo(ctx), outside+" is not a git repository")
}

func TestProjectBranch_DetachedHead(t *testing.T) {
	repo := gittest.NewRepo(t)
	ctx := context.Background()

	gittest.Commit(t, repo, "feat: one", map[string]string{"a.txt": "a"})
	require.NoError(t, repo.Command(ctx, "checkout", "-q", "--detach").Run())

	cfg := config.Default(repo.RepoDir)
	p := &project{Dir: repo.RepoDir, Config: cfg, Git: repo, Logger: slog.Default()}

	branch, err := p.branch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", branch, "a configured branch wins")

	cfg.Project.Branch = ""

	_, err = p.branch(ctx)
	assert.ErrorContains(t, err, "HEAD is detached")
}
