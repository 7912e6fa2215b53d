package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/tuislider/internal/git/gittest"
	"github.com/inovacc/tuislider/internal/store"
)

// resetFlags restores every flag to its default so tests do not leak state
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}

		f.Changed = false
	}

	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer

	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	err := rootCmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		verbose bool
		want    string
		wantErr bool
	}{
		{name: "text", format: "text", want: "level=INFO"},
		{name: "default", format: "", want: "level=INFO"},
		{name: "json", format: "json", want: `"level":"INFO"`},
		{name: "verbose", format: "text", verbose: true, want: "level=DEBUG"},
		{name: "invalid", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger, err := newLogger(&buf, tt.format, tt.verbose)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			logger.Debug("probe")
			logger.Info("probe")

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tuislider 0.1.0 ("), out)
}

func TestInvalidLogFormat(t *testing.T) {
	_, err := execute(t, "", "version", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-format")
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".git/config", "[remote \"origin\"]\n\turl = git@github.com:orhun/tui-slider.git\n")

	out, err := execute(t, "", "config", "init", "--dir", dir, "--gitea-host", "git.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, ".tuislider.yaml")
	assert.FileExists(t, filepath.Join(dir, ".tuislider.yaml"))

	out, err = execute(t, "", "config", "show", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "owner: orhun")
	assert.Contains(t, out, "host: git.example.com")

	_, err = execute(t, "", "config", "init", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestTaskList_BuiltinTasks(t *testing.T) {
	out, err := execute(t, "", "task", "list", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Taskfile.default.hcl")
	assert.Contains(t, out, "release <version>")
	assert.Contains(t, out, "after fmt, clippy, test, build")
}

func TestTaskRun_DryRun(t *testing.T) {
	out, err := execute(t, "", "task", "run", "release", "0.2.0", "--dry-run", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "$ cargo fmt --all -- --check")
	assert.Contains(t, out, "$ tuislider release 0.2.0 --skip-checks --yes")
	assert.NotContains(t, out, "$ tuislider bump")
	assert.Contains(t, out, "# confirm: Release v0.2.0 to GitHub and Gitea?")
	assert.NotContains(t, out, "completed")
}

const confirmTaskfile = `
task "hello" {
  confirm  = "Say hello?"
  commands = ["echo hello > hello.txt"]
}
`

func TestTaskRun_Confirmation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Taskfile.hcl", confirmTaskfile)

	_, err := execute(t, "", "task", "run", "hello", "--dir", dir)
	require.ErrorIs(t, err, errNotInteractive)
	assert.NoFileExists(t, filepath.Join(dir, "hello.txt"))

	restore := isInteractive
	isInteractive = func() bool { return true }
	t.Cleanup(func() { isInteractive = restore })

	out, err := execute(t, "y\n", "task", "run", "hello", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Say hello? [y/N]")
	assert.Contains(t, out, "Task hello completed")
	assert.FileExists(t, filepath.Join(dir, "hello.txt"))
}

func TestBumpCommand(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "Cargo.toml", "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n")

	out, err := execute(t, "", "bump", "minor", "--dir", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "0.1.0 -> 0.2.0")

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `version = "0.1.0"`)

	out, err = execute(t, "", "bump", "v1.0.0", "--dir", dir, "--skip-lockfile")
	require.NoError(t, err)
	assert.Contains(t, out, "Bumped 0.1.0 -> 1.0.0")

	data, err = os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `version = "1.0.0"`)

	_, err = execute(t, "", "bump", "not-a-version", "--dir", dir)
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".tuislider.yaml", "checks:\n  - \"true\"\n  - echo checked\n")

	out, err := execute(t, "", "check", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "checked")
	assert.Contains(t, out, "✅ echo checked")
	assert.Contains(t, out, "All checks passed")

	writeFile(t, dir, ".tuislider.yaml", "checks:\n  - \"false\"\n  - echo unreachable\n")

	out, err = execute(t, "", "check", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "❌ false")
	assert.NotContains(t, out, "unreachable\n")
}

func TestDemoInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "demo", "init", "--dir", dir, "--only", "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "progress.tape")

	tape := filepath.Join(dir, "examples", "vhs", "progress.tape")
	assert.FileExists(t, tape)
	assert.NoFileExists(t, filepath.Join(dir, "examples", "vhs", "gallery.tape"))

	out, err = execute(t, "", "demo", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "progress")
	assert.Contains(t, out, "✓ tape")
}

func TestHistoryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.bolt")

	out, err := execute(t, "", "history", "--journal", path, "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)

	journal, err := store.Open(path)
	require.NoError(t, err)

	rec := &store.Record{Version: "0.2.0", PreviousVersion: "0.1.0", Tag: "v0.2.0"}
	require.NoError(t, journal.Save(rec))
	rec.Finish(nil)
	require.NoError(t, journal.Save(rec))
	require.NoError(t, journal.Close())

	out, err = execute(t, "", "history", "--journal", path)
	require.NoError(t, err)
	assert.Contains(t, out, "v0.2.0")
	assert.Contains(t, out, "0.1.0 -> 0.2.0")
	assert.Contains(t, out, "succeeded")

	out, err = execute(t, "", "history", rec.ID, "--journal", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "succeeded"`)
}

func TestRemoteSetupAndList(t *testing.T) {
	client := gittest.NewRepo(t)
	dir := client.RepoDir

	writeFile(t, dir, ".tuislider.yaml", `
project:
  name: tui-slider
remotes:
  github:
    owner: orhun
  gitea:
    host: git.example.com
`)

	out, err := execute(t, "", "remote", "setup", "--dir", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "origin -> git@github.com:orhun/tui-slider.git")
	assert.Contains(t, out, "gitea -> git@git.example.com:orhun/tui-slider.git")

	_, err = execute(t, "", "remote", "setup", "--dir", dir)
	require.NoError(t, err)

	out, err = execute(t, "", "remote", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "git@github.com:orhun/tui-slider.git ✓")
	assert.Contains(t, out, "git@git.example.com:orhun/tui-slider.git ✓")

	writeFile(t, dir, ".tuislider.yaml", "remotes:\n  github:\n    owner: someone-else\n    repo: tui-slider\n")

	_, err = execute(t, "", "remote", "setup", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force")

	_, err = execute(t, "", "remote", "setup", "--dir", dir, "--force")
	require.NoError(t, err)
}
