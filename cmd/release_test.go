package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/git"
	"github.com/inovacc/tuislider/internal/git/gittest"
	"github.com/inovacc/tuislider/internal/hosting"
	"github.com/inovacc/tuislider/internal/store"
	"github.com/inovacc/tuislider/internal/tasks"
)

const fixtureConfig = `project:
  name: tui-slider
remotes:
  github:
    owner: orhun
  gitea:
    host: git.example.com
changelog:
  tool: builtin
checks:
  - %s
`

type releaseFixture struct {
	repo    *git.Client
	dir     string
	origin  string
	mirror  string
	journal string
}

// newReleaseFixture creates a clean repository at 0.1.0 with origin and gitea
// remotes backed by bare repositories, and points the journal at a temp file
func newReleaseFixture(t *testing.T, check string) *releaseFixture {
	t.Helper()

	ctx := context.Background()
	repo := gittest.NewRepo(t)

	f := &releaseFixture{
		repo:    repo,
		dir:     repo.RepoDir,
		origin:  gittest.NewBareRepo(t),
		mirror:  gittest.NewBareRepo(t),
		journal: filepath.Join(t.TempDir(), "journal.bolt"),
	}

	require.NoError(t, repo.AddRemote(ctx, hosting.RemoteGitHub, f.origin))
	require.NoError(t, repo.AddRemote(ctx, hosting.RemoteGitea, f.mirror))

	gittest.Commit(t, repo, "feat: initial slider", map[string]string{
		"VERSION":         "0.1.0\n",
		".tuislider.yaml": fmt.Sprintf(fixtureConfig, check),
	})

	restore := journalPath
	journalPath = func() (string, error) { return f.journal, nil }
	t.Cleanup(func() { journalPath = restore })

	return f
}

func (f *releaseFixture) latestRecord(t *testing.T) *store.Record {
	t.Helper()

	journal, err := store.Open(f.journal)
	require.NoError(t, err)

	defer func() { _ = journal.Close() }()

	rec, err := journal.Latest()
	require.NoError(t, err)

	return rec
}

func (f *releaseFixture) version(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(f.dir, "VERSION"))
	require.NoError(t, err)

	return strings.TrimSpace(string(data))
}

func tagPushed(t *testing.T, bare, tag string) bool {
	t.Helper()

	exists, err := git.NewClientForRepo(bare).TagExists(context.Background(), tag)
	require.NoError(t, err)

	return exists
}

func stubCredentials(t *testing.T, creds hosting.Credentials) {
	t.Helper()

	restore := loadCredentials
	loadCredentials = func(string) (*hosting.Credentials, error) {
		c := creds
		return &c, nil
	}

	t.Cleanup(func() { loadCredentials = restore })
}

// giteaServer answers release creation with status and counts the calls
func giteaServer(t *testing.T, status int) (*httptest.Server, *int) {
	t.Helper()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		assert.Equal(t, "/api/v1/repos/orhun/tui-slider/releases", r.URL.Path)
		assert.Equal(t, "token gitea-secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if status == http.StatusCreated {
			_, _ = w.Write([]byte(`{"id": 3, "html_url": "https://git.example.com/orhun/tui-slider/releases/tag/v0.2.0"}`))
			return
		}

		_, _ = w.Write([]byte(`{"message": "internal error"}`))
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestReleaseCommand(t *testing.T) {
	f := newReleaseFixture(t, `"true"`)
	srv, calls := giteaServer(t, http.StatusCreated)
	stubCredentials(t, hosting.Credentials{GiteaToken: "gitea-secret", GiteaURL: srv.URL})

	out, err := execute(t, "", "release", "minor", "--dir", f.dir, "--yes")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Release 0.1.0 -> 0.2.0 (v0.2.0)")
	assert.Contains(t, out, "check -> bump -> changelog -> commit -> tag -> push -> publish")
	assert.Contains(t, out, "Released v0.2.0")
	assert.Contains(t, out, "https://git.example.com/orhun/tui-slider/releases/tag/v0.2.0")
	assert.NotContains(t, out, "partial release")
	assert.Equal(t, 1, *calls, "GitHub has no token and is skipped")

	assert.Equal(t, "0.2.0", f.version(t))
	assert.True(t, tagPushed(t, f.origin, "v0.2.0"))
	assert.True(t, tagPushed(t, f.mirror, "v0.2.0"))

	rec := f.latestRecord(t)
	assert.Equal(t, store.StatusSucceeded, rec.Status)
	assert.Equal(t, "v0.2.0", rec.Tag)
	assert.Equal(t, "0.1.0", rec.PreviousVersion)
	assert.Equal(t, []string{"origin", "gitea"}, rec.Remotes)
	assert.Equal(t, []string{"https://git.example.com/orhun/tui-slider/releases/tag/v0.2.0"}, rec.Published)
}

func TestReleaseCommand_PublishFailure(t *testing.T) {
	f := newReleaseFixture(t, `"true"`)
	srv, _ := giteaServer(t, http.StatusInternalServerError)
	stubCredentials(t, hosting.Credentials{GiteaToken: "gitea-secret", GiteaURL: srv.URL})

	out, err := execute(t, "", "release", "0.2.0", "--dir", f.dir, "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `step "publish" failed`)
	assert.Contains(t, out, "The working tree may hold a partial release")
	assert.True(t, tagPushed(t, f.origin, "v0.2.0"), "steps before publish are not rolled back")

	rec := f.latestRecord(t)
	assert.Equal(t, store.StatusFailed, rec.Status)
	assert.Equal(t, "v0.2.0", rec.Tag)
	assert.Contains(t, rec.Error, "gitea")
	assert.Empty(t, rec.Published)
	assert.False(t, rec.FinishedAt.IsZero())
}

func TestReleaseCommand_CheckFailure(t *testing.T) {
	f := newReleaseFixture(t, `"false"`)
	stubCredentials(t, hosting.Credentials{})

	out, err := execute(t, "", "release", "0.2.0", "--dir", f.dir, "--yes", "--no-publish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `step "check" failed`)
	assert.NotContains(t, out, "partial release")
	assert.Equal(t, "0.1.0", f.version(t))
	assert.False(t, tagPushed(t, f.origin, "v0.2.0"))

	rec := f.latestRecord(t)
	assert.Equal(t, store.StatusFailed, rec.Status)
	assert.Equal(t, "0.2.0", rec.Version)
}

func TestReleaseCommand_NotInteractive(t *testing.T) {
	f := newReleaseFixture(t, `"true"`)
	stubCredentials(t, hosting.Credentials{})

	restore := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = restore })

	_, err := execute(t, "", "release", "0.2.0", "--dir", f.dir)
	require.ErrorIs(t, err, errNotInteractive)
	assert.Equal(t, "0.1.0", f.version(t))
	assert.NoFileExists(t, f.journal)
}

// The built-in release task runs its dependencies and then hands the version
// to the release command, which must find the manifest still at the old
// version and the tree clean.
func TestDefaultReleaseTask(t *testing.T) {
	f := newReleaseFixture(t, `"true"`)
	stubCredentials(t, hosting.Credentials{})

	tf, err := tasks.Default()
	require.NoError(t, err)

	order, err := tf.Plan("release")
	require.NoError(t, err)

	var commands []string

	for _, task := range order {
		assert.NotEqual(t, "bump", task.Name, "the release command bumps the version itself")

		rendered, _, err := tasks.Render(task, map[string]string{"version": "0.2.0"})
		require.NoError(t, err)

		for _, c := range rendered {
			if rest, ok := strings.CutPrefix(c, "tuislider "); ok {
				commands = append(commands, rest)
			}
		}
	}

	require.Equal(t, []string{"release 0.2.0 --skip-checks --yes"}, commands)

	for _, c := range commands {
		out, err := execute(t, "", append(strings.Fields(c), "--dir", f.dir)...)
		require.NoError(t, err, out)
		assert.Contains(t, out, "Released v0.2.0")
	}

	assert.Equal(t, "0.2.0", f.version(t))
	assert.True(t, tagPushed(t, f.mirror, "v0.2.0"))
}

func TestProjectPublishers(t *testing.T) {
	tests := []struct {
		name       string
		githubHost string
		creds      hosting.Credentials
		wantHosts  []string
		wantAPI    string
		wantGitea  string
	}{
		{
			name:      "no tokens skips every host",
			creds:     hosting.Credentials{},
			wantHosts: nil,
		},
		{
			name:      "github.com uses the default API",
			creds:     hosting.Credentials{GitHubToken: "gh"},
			wantHosts: []string{"github"},
		},
		{
			name:       "enterprise host uses its v3 API",
			githubHost: "ghe.example.com",
			creds:      hosting.Credentials{GitHubToken: "gh"},
			wantHosts:  []string{"github"},
			wantAPI:    "https://ghe.example.com/api/v3/",
		},
		{
			name:      "gitea falls back to the remote host",
			creds:     hosting.Credentials{GiteaToken: "gt"},
			wantHosts: []string{"gitea"},
			wantGitea: "https://git.example.com",
		},
		{
			name:      "gitea prefers GITEA_URL",
			creds:     hosting.Credentials{GitHubToken: "gh", GiteaToken: "gt", GiteaURL: "http://localhost:3000"},
			wantHosts: []string{"github", "gitea"},
			wantGitea: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubCredentials(t, tt.creds)

			dir := filepath.Join(t.TempDir(), "tui-slider")
			require.NoError(t, os.MkdirAll(dir, 0o755))

			cfg := config.Default(dir)
			cfg.Remotes.GitHub.Owner = "orhun"
			cfg.Remotes.Gitea.Host = "git.example.com"

			if tt.githubHost != "" {
				cfg.Remotes.GitHub.Host = tt.githubHost
			}

			p := &project{Dir: dir, Config: cfg, Logger: slog.New(slog.DiscardHandler)}

			publishers, err := p.publishers()
			require.NoError(t, err)

			var hosts []string

			for _, pub := range publishers {
				hosts = append(hosts, pub.Host())

				switch pub := pub.(type) {
				case *hosting.GitHubPublisher:
					assert.Equal(t, tt.wantAPI, pub.APIURL)
					assert.Equal(t, "orhun", pub.Owner)
					assert.Equal(t, "tui-slider", pub.Repo)
				case *hosting.GiteaPublisher:
					assert.Equal(t, tt.wantGitea, pub.BaseURL)
					assert.Equal(t, "tui-slider", pub.Repo)
				}
			}

			assert.Equal(t, tt.wantHosts, hosts)
		})
	}
}

func TestPushAllCommand(t *testing.T) {
	f := newReleaseFixture(t, `"true"`)
	require.NoError(t, f.repo.Tag(context.Background(), "v0.1.0", "Release v0.1.0"))

	out, err := execute(t, "", "push-all", "--tags", "--dir", f.dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "• git push origin main --tags")
	assert.Contains(t, out, "• git push gitea main --tags")
	assert.False(t, tagPushed(t, f.origin, "v0.1.0"))

	out, err = execute(t, "", "push-all", "--tags", "--dir", f.dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "✅ pushed main to origin")
	assert.Contains(t, out, "✅ pushed main to gitea")
	assert.Contains(t, out, "Push completed successfully!")
	assert.True(t, tagPushed(t, f.origin, "v0.1.0"))
	assert.True(t, tagPushed(t, f.mirror, "v0.1.0"))
}

func TestPushAllCommand_RejectedHint(t *testing.T) {
	f := newReleaseFixture(t, `"true"`)
	ctx := context.Background()

	other := gittest.NewRepo(t)
	require.NoError(t, other.AddRemote(ctx, hosting.RemoteGitea, f.mirror))
	gittest.Commit(t, other, "feat: diverged", map[string]string{"x.txt": "x"})
	_, err := hosting.PushAll(ctx, other, []string{hosting.RemoteGitea}, "main", hosting.PushOptions{})
	require.NoError(t, err)

	out, err := execute(t, "", "push-all", "--dir", f.dir)

	var remoteErr *hosting.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, hosting.RemoteGitea, remoteErr.Remote)
	assert.Contains(t, out, "✅ pushed main to origin")
	assert.Contains(t, out, "Hint: gitea has commits that are not in your branch")
}

func TestSyncGiteaCommand(t *testing.T) {
	ctx := context.Background()
	upstream := gittest.NewBareRepo(t)
	mirror := gittest.NewBareRepo(t)

	author := gittest.NewRepo(t)
	require.NoError(t, author.AddRemote(ctx, hosting.RemoteGitHub, upstream))
	gittest.Commit(t, author, "feat: one", map[string]string{"a.txt": "a"})
	require.NoError(t, author.Tag(ctx, "v0.1.0", "Release v0.1.0"))
	_, err := hosting.PushAll(ctx, author, []string{hosting.RemoteGitHub}, "main", hosting.PushOptions{Tags: true})
	require.NoError(t, err)

	local := gittest.NewRepo(t)
	dir := local.RepoDir
	writeFile(t, dir, ".tuislider.yaml", "remotes:\n  github:\n    owner: orhun\n")

	_, err = execute(t, "", "sync-gitea", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Gitea remote configured")

	writeFile(t, dir, ".tuislider.yaml", "remotes:\n  github:\n    owner: orhun\n  gitea:\n    host: git.example.com\n")
	require.NoError(t, local.AddRemote(ctx, hosting.RemoteGitHub, upstream))

	_, err = execute(t, "", "sync-gitea", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git remote gitea is missing")

	require.NoError(t, local.AddRemote(ctx, hosting.RemoteGitea, mirror))

	out, err := execute(t, "", "sync-gitea", "--dir", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "• git fetch --tags origin")
	assert.Contains(t, out, "• git pull origin main")
	assert.Contains(t, out, "• git push gitea main --tags")

	out, err = execute(t, "", "sync-gitea", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "✅ gitea is in sync with origin")
	assert.True(t, tagPushed(t, mirror, "v0.1.0"))

	refs, err := hosting.VerifyRemote(ctx, local, hosting.RemoteGitea)
	require.NoError(t, err)
	assert.Equal(t, []string{"refs/heads/main"}, refs)
}

func TestSyncGiteaCommand_MissingBranchHint(t *testing.T) {
	ctx := context.Background()

	local := gittest.NewRepo(t)
	dir := local.RepoDir
	gittest.Commit(t, local, "feat: one", map[string]string{
		".tuislider.yaml": "remotes:\n  github:\n    owner: orhun\n  gitea:\n    host: git.example.com\n",
	})
	require.NoError(t, local.AddRemote(ctx, hosting.RemoteGitHub, gittest.NewBareRepo(t)))
	require.NoError(t, local.AddRemote(ctx, hosting.RemoteGitea, gittest.NewBareRepo(t)))

	out, err := execute(t, "", "sync-gitea", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "Hint: the branch does not exist on origin yet")
}
