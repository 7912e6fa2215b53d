// Package demo generates VHS tapes for the slider showcases, renders them to
// GIFs with the vhs binary and hosts the interactive showcases themselves.
package demo

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/inovacc/tuislider/internal/release"
)

//go:embed templates/*.tape.tmpl
var templatesFS embed.FS

const (
	// TapeExt is the extension of files Render picks up
	TapeExt = ".tape"

	// GalleryTape is the tape recording every showcase in sequence
	GalleryTape = "gallery"

	DefaultBinary    = "tuislider"
	DefaultOutputDir = "examples/vhs/output"
	DefaultTheme     = "Catppuccin Mocha"
	DefaultFontSize  = 16
	DefaultWidth     = 1200
	DefaultHeight    = 800
)

var templates = template.Must(
	template.New("tapes").Funcs(sprig.TxtFuncMap()).ParseFS(templatesFS, "templates/*.tape.tmpl"),
)

// TapeData is passed to the tape templates
type TapeData struct {
	Name        string
	Title       string
	Description string
	Keys        []string
	Showcases   []Showcase

	Binary    string
	OutputDir string
	Theme     string
	FontSize  int
	Width     int
	Height    int
}

// InitOptions configures tape generation
type InitOptions struct {
	Force     bool     // Overwrite existing tapes
	Only      []string // Showcase names; empty means all plus the gallery
	Binary    string
	OutputDir string
	Theme     string
	FontSize  int
	Width     int
	Height    int
	Logger    *slog.Logger
}

func (o InitOptions) data() TapeData {
	d := TapeData{
		Binary:    o.Binary,
		OutputDir: o.OutputDir,
		Theme:     o.Theme,
		FontSize:  o.FontSize,
		Width:     o.Width,
		Height:    o.Height,
	}

	if d.Binary == "" {
		d.Binary = DefaultBinary
	}

	if d.OutputDir == "" {
		d.OutputDir = DefaultOutputDir
	}

	if d.Theme == "" {
		d.Theme = DefaultTheme
	}

	if d.FontSize <= 0 {
		d.FontSize = DefaultFontSize
	}

	if d.Width <= 0 {
		d.Width = DefaultWidth
	}

	if d.Height <= 0 {
		d.Height = DefaultHeight
	}

	return d
}

// InitResult lists what Init wrote and what it left alone
type InitResult struct {
	Written []string
	Skipped []string
}

// Init renders one tape per showcase into dir, creating it when missing.
// Existing tapes are kept unless opts.Force is set.
func Init(dir string, opts InitOptions) (*InitResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	selected, err := selectShowcases(opts.Only)
	if err != nil {
		return nil, err
	}

	base := opts.data()
	result := &InitResult{}

	write := func(name, tmpl string, data TapeData) error {
		path := filepath.Join(dir, name+TapeExt)

		if _, err := os.Stat(path); err == nil && !opts.Force {
			logger.Debug("tape exists, skipping", slog.String("path", path))
			result.Skipped = append(result.Skipped, path)

			return nil
		}

		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}

		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		logger.Debug("tape written", slog.String("path", path))
		result.Written = append(result.Written, path)

		return nil
	}

	for _, s := range selected {
		data := base
		data.Name = s.Name
		data.Title = s.Title
		data.Description = s.Description
		data.Keys = s.Keys

		if err := write(s.Name, "showcase.tape.tmpl", data); err != nil {
			return result, err
		}
	}

	if len(opts.Only) == 0 {
		data := base
		data.Name = GalleryTape
		data.Showcases = selected

		if err := write(GalleryTape, "gallery.tape.tmpl", data); err != nil {
			return result, err
		}
	}

	return result, nil
}

func selectShowcases(only []string) ([]Showcase, error) {
	all := Showcases()
	if len(only) == 0 {
		return all, nil
	}

	selected := make([]Showcase, 0, len(only))

	for _, name := range only {
		s, ok := ShowcaseByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown showcase %q (available: %s)", name, strings.Join(ShowcaseNames(), ", "))
		}

		selected = append(selected, s)
	}

	return selected, nil
}

// Tapes lists the .tape files in dir sorted by name
func Tapes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var tapes []string

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != TapeExt {
			continue
		}

		tapes = append(tapes, filepath.Join(dir, e.Name()))
	}

	slices.Sort(tapes)

	return tapes, nil
}

// TapeName is the file name of a tape without directory or extension
func TapeName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), TapeExt)
}

// RenderOptions configures Render
type RenderOptions struct {
	Only      []string // Tape names without extension; empty renders all
	OutputDir string   // Created before rendering when set
	WorkDir   string   // Directory vhs runs in; tape Output paths are relative to it
	Binary    string
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger

	lookPath func(string) (string, error)
}

// Render runs vhs for each selected tape in order and returns the GIFs the
// tapes declare. It stops at the first failing tape.
func Render(ctx context.Context, dir string, opts RenderOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lookPath := opts.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	binary := opts.Binary
	if binary == "" {
		binary = "vhs"
	}

	vhs, err := lookPath(binary)
	if err != nil {
		return nil, &release.ToolMissingError{Tool: binary, Hint: "go install github.com/charmbracelet/vhs@latest"}
	}

	tapes, err := Tapes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list tapes in %s: %w", dir, err)
	}

	tapes, err = filterTapes(tapes, opts.Only)
	if err != nil {
		return nil, err
	}

	if len(tapes) == 0 {
		return nil, fmt.Errorf("no tapes found in %s (run `demo init` first)", dir)
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", opts.OutputDir, err)
		}
	}

	var gifs []string

	for _, tape := range tapes {
		if err := ctx.Err(); err != nil {
			return gifs, err
		}

		abs, err := filepath.Abs(tape)
		if err != nil {
			return gifs, err
		}

		outputs, err := tapeOutputs(abs)
		if err != nil {
			return gifs, err
		}

		logger.Info("rendering tape", slog.String("tape", TapeName(tape)))

		cmd := exec.CommandContext(ctx, vhs, abs)
		cmd.Dir = opts.WorkDir
		cmd.Stdout = opts.Stdout
		cmd.Stderr = opts.Stderr

		if err := cmd.Run(); err != nil {
			return gifs, fmt.Errorf("vhs %s failed: %w", TapeName(tape), err)
		}

		for _, out := range outputs {
			if !filepath.IsAbs(out) && opts.WorkDir != "" {
				out = filepath.Join(opts.WorkDir, out)
			}

			gifs = append(gifs, out)
		}
	}

	return gifs, nil
}

func filterTapes(tapes, only []string) ([]string, error) {
	if len(only) == 0 {
		return tapes, nil
	}

	byName := make(map[string]string, len(tapes))
	for _, t := range tapes {
		byName[TapeName(t)] = t
	}

	selected := make([]string, 0, len(only))

	for _, name := range only {
		t, ok := byName[strings.TrimSuffix(name, TapeExt)]
		if !ok {
			return nil, fmt.Errorf("tape %q not found", name)
		}

		selected = append(selected, t)
	}

	return selected, nil
}

// tapeOutputs reads the Output directives of a tape
func tapeOutputs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var outputs []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		rest, ok := strings.CutPrefix(line, "Output ")
		if !ok {
			continue
		}

		outputs = append(outputs, strings.Trim(strings.TrimSpace(rest), `"'`))
	}

	return outputs, scanner.Err()
}
