package release

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is a file that carries the project version
type Manifest interface {
	Path() string
	ReadVersion() (string, error)
	WriteVersion(v string) error
}

// CargoManifest is a Rust Cargo.toml
type CargoManifest struct {
	path string
}

type cargoFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

var (
	tableHeaderRe  = regexp.MustCompile(`^\s*\[\[?([^\[\]]+)\]\]?\s*(#.*)?$`)
	cargoVersionRe = regexp.MustCompile(`^(\s*version\s*=\s*")([^"]*)(".*)$`)
)

func NewCargoManifest(path string) *CargoManifest {
	return &CargoManifest{path: path}
}

func (m *CargoManifest) Path() string { return m.path }

func (m *CargoManifest) read() (*cargoFile, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", m.path, err)
	}

	var f cargoFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", m.path, err)
	}

	return &f, nil
}

// CrateName returns [package].name
func (m *CargoManifest) CrateName() (string, error) {
	f, err := m.read()
	if err != nil {
		return "", err
	}

	return f.Package.Name, nil
}

func (m *CargoManifest) ReadVersion() (string, error) {
	f, err := m.read()
	if err != nil {
		return "", err
	}

	if f.Package.Version == "" {
		return "", fmt.Errorf("%s: [package].version is not set", m.path)
	}

	return f.Package.Version, nil
}

// WriteVersion replaces the first version line of the [package] table and
// leaves every other byte of the file untouched.
func (m *CargoManifest) WriteVersion(v string) error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", m.path, err)
	}

	lines := bytes.SplitAfter(data, []byte("\n"))
	table := ""
	replaced := false

	for i, line := range lines {
		body := strings.TrimRight(string(line), "\r\n")

		if match := tableHeaderRe.FindStringSubmatch(body); match != nil {
			table = strings.TrimSpace(match[1])
			continue
		}

		if table != "package" {
			continue
		}

		if match := cargoVersionRe.FindStringSubmatch(body); match != nil {
			eol := string(line)[len(body):]
			lines[i] = []byte(match[1] + v + match[3] + eol)
			replaced = true

			break
		}
	}

	if !replaced {
		return fmt.Errorf("%s: no version line in [package]", m.path)
	}

	return writeFilePreservingMode(m.path, bytes.Join(lines, nil))
}

// GoVersionFile is a Go source file declaring `Version = "..."`
type GoVersionFile struct {
	path string
}

var goVersionRe = regexp.MustCompile(`(?m)^(\s*(?:const\s+)?Version\s*(?:string\s*)?=\s*")([^"]*)(")`)

func NewGoVersionFile(path string) *GoVersionFile {
	return &GoVersionFile{path: path}
}

func (m *GoVersionFile) Path() string { return m.path }

func (m *GoVersionFile) ReadVersion() (string, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", m.path, err)
	}

	match := goVersionRe.FindSubmatch(data)
	if match == nil {
		return "", fmt.Errorf("%s: no Version declaration", m.path)
	}

	return string(match[2]), nil
}

func (m *GoVersionFile) WriteVersion(v string) error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", m.path, err)
	}

	loc := goVersionRe.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("%s: no Version declaration", m.path)
	}

	// loc[4:6] spans the quoted value
	var out bytes.Buffer
	out.Write(data[:loc[4]])
	out.WriteString(v)
	out.Write(data[loc[5]:])

	return writeFilePreservingMode(m.path, out.Bytes())
}

// PlainVersionFile is a file holding nothing but the version, e.g. VERSION
type PlainVersionFile struct {
	path string
}

func NewPlainVersionFile(path string) *PlainVersionFile {
	return &PlainVersionFile{path: path}
}

func (m *PlainVersionFile) Path() string { return m.path }

func (m *PlainVersionFile) ReadVersion() (string, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", m.path, err)
	}

	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", fmt.Errorf("%s is empty", m.path)
	}

	return v, nil
}

func (m *PlainVersionFile) WriteVersion(v string) error {
	return writeFilePreservingMode(m.path, []byte(v+"\n"))
}

// Manifest files probed by DetectManifest, in order
var manifestCandidates = []string{
	"Cargo.toml",
	"VERSION",
	filepath.Join("internal", "version", "version.go"),
}

// DetectManifest returns the manifest at path, resolved against dir, or the
// first known manifest found in dir when path is empty.
func DetectManifest(dir, path string) (Manifest, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}

		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}

		return manifestFor(path), nil
	}

	for _, candidate := range manifestCandidates {
		p := filepath.Join(dir, candidate)
		if _, err := os.Stat(p); err == nil {
			return manifestFor(p), nil
		}
	}

	return nil, fmt.Errorf("%w in %s", ErrNoManifest, dir)
}

func manifestFor(path string) Manifest {
	switch {
	case strings.EqualFold(filepath.Base(path), "Cargo.toml"):
		return NewCargoManifest(path)
	case filepath.Ext(path) == ".go":
		return NewGoVersionFile(path)
	default:
		return NewPlainVersionFile(path)
	}
}

func writeFilePreservingMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
