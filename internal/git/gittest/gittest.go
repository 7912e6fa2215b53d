// Package gittest creates throwaway repositories for tests.
package gittest

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inovacc/tuislider/internal/git"
)

// NewRepo initializes an empty repository on branch main in a temp dir.
// The test is skipped when git is not installed.
func NewRepo(t *testing.T) *git.Client {
	t.Helper()

	return NewRepoAt(t, t.TempDir())
}

// NewRepoAt initializes a repository in dir
func NewRepoAt(t *testing.T, dir string) *git.Client {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	c := git.NewClientForRepo(dir)
	c.Stdout = nil
	c.Stderr = nil

	ctx := context.Background()
	require.NoError(t, c.Init(ctx, "main"))

	for key, value := range map[string]string{
		"user.email":     "dev@example.com",
		"user.name":      "Dev",
		"commit.gpgsign": "false",
		"tag.gpgsign":    "false",
		"pull.rebase":    "false",
	} {
		require.NoError(t, c.SetConfig(ctx, key, value))
	}

	return c
}

// NewBareRepo initializes a bare repository usable as a push target
func NewBareRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()

	out, err := exec.Command("git", "init", "-q", "--bare", "-b", "main", dir).CombinedOutput()
	require.NoError(t, err, string(out))

	return dir
}

// Commit writes files and commits them with message
func Commit(t *testing.T, c *git.Client, message string, files map[string]string) {
	t.Helper()

	ctx := context.Background()

	for name, content := range files {
		path := filepath.Join(c.RepoDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	require.NoError(t, c.Commit(ctx, message, git.CommitOptions{All: true}))
}
