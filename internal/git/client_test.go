package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteVerbose(t *testing.T) {
	out := `gitea	git@gitea.example.com:josueh/tui-slider.git (fetch)
gitea	git@gitea.example.com:josueh/tui-slider.git (push)
origin	git@github.com:josueh/tui-slider.git (fetch)
origin	git@github.com:josueh/tui-slider-push.git (push)
`
	remotes := ParseRemoteVerbose(out)
	require.Len(t, remotes, 2)

	assert.Equal(t, "gitea", remotes[0].Name)
	assert.Equal(t, "git@gitea.example.com:josueh/tui-slider.git", remotes[0].FetchURL)
	assert.Equal(t, "origin", remotes[1].Name)
	assert.Equal(t, "git@github.com:josueh/tui-slider-push.git", remotes[1].PushURL)
}

func TestParseRemoteVerbose_Empty(t *testing.T) {
	assert.Empty(t, ParseRemoteVerbose(""))
	assert.Empty(t, ParseRemoteVerbose("garbage\n"))
}

func TestParseLog(t *testing.T) {
	out := "abc123\x1ffeat(slider): add vertical mode\x1fBREAKING CHANGE: new API\n\x1e\n" +
		"def456\x1ffix: clamp value\x1f\x1e\n"

	commits := ParseLog(out)
	require.Len(t, commits, 2)

	assert.Equal(t, "abc123", commits[0].Hash)
	assert.Equal(t, "feat(slider): add vertical mode", commits[0].Subject)
	assert.Equal(t, "BREAKING CHANGE: new API", commits[0].Body)
	assert.Equal(t, "fix: clamp value", commits[1].Subject)
	assert.Empty(t, commits[1].Body)
}

// initRepo creates a throwaway repository or skips when git is unavailable
func initRepo(t *testing.T) *Client {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	c := NewClientForRepo(dir)
	c.Stdout = nil
	c.Stderr = nil

	ctx := context.Background()
	for _, args := range [][]string{
		{"init", "-q", "-b", "main"},
		{"config", "user.email", "dev@example.com"},
		{"config", "user.name", "Dev"},
		{"config", "commit.gpgsign", "false"},
		{"config", "tag.gpgsign", "false"},
	} {
		require.NoError(t, c.run(ctx, args...))
	}

	return c
}

func TestClient_RemoteLifecycle(t *testing.T) {
	c := initRepo(t)
	ctx := context.Background()

	has, err := c.HasRemote(ctx, "gitea")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, c.AddRemote(ctx, "gitea", "git@gitea.example.com:me/repo.git"))

	err = c.AddRemote(ctx, "gitea", "git@gitea.example.com:me/repo.git")
	require.Error(t, err)
	assert.True(t, IsAlreadyExists(err))

	require.NoError(t, c.SetRemoteURL(ctx, "gitea", "git@gitea.example.com:me/other.git"))

	url, err := c.RemoteURL(ctx, "gitea")
	require.NoError(t, err)
	assert.Equal(t, "git@gitea.example.com:me/other.git", url)

	remotes, err := c.Remotes(ctx)
	require.NoError(t, err)
	require.Len(t, remotes, 1)

	cfg, err := ReadConfig(c.RepoDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"gitea"}, cfg.RemoteNames())
	assert.Equal(t, "git@gitea.example.com:me/other.git", cfg.Remote["gitea"].URL)

	_, err = c.RemoteURL(ctx, "origin")
	assert.True(t, IsNoSuchRemote(err))
}

func TestClient_Root(t *testing.T) {
	c := initRepo(t)
	ctx := context.Background()

	root, err := c.Root(ctx)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(c.RepoDir)
	require.NoError(t, err)
	assert.Equal(t, want, root)

	outside := NewClientForRepo(t.TempDir())
	_, err = outside.Root(ctx)
	require.Error(t, err)
	assert.True(t, IsNotRepository(err))
}

func TestClient_DetachedHead(t *testing.T) {
	c := initRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(c.RepoDir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, c.Commit(ctx, "feat: first", CommitOptions{All: true}))
	require.NoError(t, c.run(ctx, "checkout", "-q", "--detach"))

	_, err := c.CurrentBranch(ctx)
	require.Error(t, err)
	assert.True(t, IsDetachedHead(err))
}

func TestClient_CommitTagAndLog(t *testing.T) {
	c := initRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(c.RepoDir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, c.Commit(ctx, "feat: first", CommitOptions{All: true}))

	tag, err := c.LatestTag(ctx)
	require.NoError(t, err)
	assert.Empty(t, tag)

	require.NoError(t, c.Tag(ctx, "v0.1.0", "Release v0.1.0"))

	exists, err := c.TagExists(ctx, "v0.1.0")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, os.WriteFile(filepath.Join(c.RepoDir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, c.Add(ctx, "b.txt"))
	require.NoError(t, c.Commit(ctx, "fix: second", CommitOptions{}))

	clean, err := c.IsClean(ctx)
	require.NoError(t, err)
	assert.True(t, clean)

	commits, err := c.Log(ctx, "v0.1.0")
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "fix: second", commits[0].Subject)

	err = c.Commit(ctx, "chore: empty", CommitOptions{})
	require.Error(t, err)
	assert.True(t, IsNothingToCommit(err))

	branch, err := c.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}
