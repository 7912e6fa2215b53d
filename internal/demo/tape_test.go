package demo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/tuislider/internal/release"
)

func TestInit_WritesEveryShowcase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vhs")

	res, err := Init(dir, InitOptions{})
	require.NoError(t, err)

	assert.Len(t, res.Written, len(Showcases())+1)
	assert.Empty(t, res.Skipped)

	data, err := os.ReadFile(filepath.Join(dir, "horizontal.tape"))
	require.NoError(t, err)

	tape := string(data)
	assert.Contains(t, tape, `Output "examples/vhs/output/horizontal.gif"`)
	assert.Contains(t, tape, `Set Theme "Catppuccin Mocha"`)
	assert.Contains(t, tape, "Set FontSize 16")
	assert.Contains(t, tape, `Type "tuislider demo show horizontal"`)
	assert.Contains(t, tape, "Right 5")

	gallery, err := os.ReadFile(filepath.Join(dir, "gallery.tape"))
	require.NoError(t, err)
	assert.Contains(t, string(gallery), `Type "tuislider demo show vertical-positioning"`)
}

func TestInit_CustomData(t *testing.T) {
	dir := t.TempDir()

	_, err := Init(dir, InitOptions{
		Only:      []string{"steps"},
		Binary:    "./bin/tuislider",
		OutputDir: "docs/gifs/",
		Theme:     "Dracula",
		Width:     640,
	})
	require.NoError(t, err)

	tapes, err := Tapes(dir)
	require.NoError(t, err)
	require.Len(t, tapes, 1, "gallery is only written for a full init")

	data, err := os.ReadFile(tapes[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `Output "docs/gifs/steps.gif"`)
	assert.Contains(t, string(data), `Set Theme "Dracula"`)
	assert.Contains(t, string(data), "Set Width 640")
	assert.Contains(t, string(data), "Set Height 800")
	assert.Contains(t, string(data), `Type "./bin/tuislider demo show steps"`)
}

func TestInit_SkipsExistingUnlessForced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.tape")
	require.NoError(t, os.WriteFile(path, []byte("# hand edited\n"), 0o644))

	res, err := Init(dir, InitOptions{Only: []string{"custom"}})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, res.Skipped)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "# hand edited\n", string(data))

	res, err = Init(dir, InitOptions{Only: []string{"custom"}, Force: true})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, res.Written)

	data, _ = os.ReadFile(path)
	assert.Contains(t, string(data), "Custom Styles")
}

func TestInit_UnknownShowcase(t *testing.T) {
	_, err := Init(t.TempDir(), InitOptions{Only: []string{"sparkles"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown showcase")
}

func TestTapes_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.tape", "a.tape", "notes.md", "c.tape"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "d.tape"), 0o755))

	tapes, err := Tapes(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.tape"),
		filepath.Join(dir, "b.tape"),
		filepath.Join(dir, "c.tape"),
	}, tapes)
}

func TestRender_ToolMissing(t *testing.T) {
	_, err := Render(context.Background(), t.TempDir(), RenderOptions{
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, release.ErrToolMissing)
}

// fakeVHS writes a script that fails for tapes whose path contains failOn
func fakeVHS(t *testing.T, failOn string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}

	script := "#!/bin/sh\n"
	if failOn != "" {
		script += "case \"$1\" in *" + failOn + "*) echo boom >&2; exit 1;; esac\n"
	}

	script += "exit 0\n"

	path := filepath.Join(t.TempDir(), "vhs")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

func TestRender_ReturnsDeclaredOutputs(t *testing.T) {
	vhs := fakeVHS(t, "")
	work := t.TempDir()
	dir := filepath.Join(work, "examples", "vhs")

	_, err := Init(dir, InitOptions{Only: []string{"horizontal", "vertical"}})
	require.NoError(t, err)

	gifs, err := Render(context.Background(), dir, RenderOptions{
		WorkDir:   work,
		OutputDir: filepath.Join(work, DefaultOutputDir),
		lookPath:  func(string) (string, error) { return vhs, nil },
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(work, DefaultOutputDir, "horizontal.gif"),
		filepath.Join(work, DefaultOutputDir, "vertical.gif"),
	}, gifs)
	assert.DirExists(t, filepath.Join(work, DefaultOutputDir))
}

func TestRender_HaltsOnFirstFailure(t *testing.T) {
	vhs := fakeVHS(t, "handles")
	dir := t.TempDir()

	_, err := Init(dir, InitOptions{Only: []string{"alignment", "handles", "horizontal"}})
	require.NoError(t, err)

	gifs, err := Render(context.Background(), dir, RenderOptions{
		lookPath: func(string) (string, error) { return vhs, nil },
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vhs handles failed")
	assert.Equal(t, []string{"examples/vhs/output/alignment.gif"}, gifs)
}

func TestRender_OnlyUnknownTape(t *testing.T) {
	vhs := fakeVHS(t, "")
	dir := t.TempDir()

	_, err := Init(dir, InitOptions{Only: []string{"custom"}})
	require.NoError(t, err)

	_, err = Render(context.Background(), dir, RenderOptions{
		Only:     []string{"missing"},
		lookPath: func(string) (string, error) { return vhs, nil },
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `tape "missing" not found`)
}
