package release

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/inovacc/tuislider/internal/git"
)

// ChangelogMode selects which part of history is written
type ChangelogMode string

const (
	ModeFull       ChangelogMode = "full"
	ModeUnreleased ChangelogMode = "unreleased"
	ModeLatest     ChangelogMode = "latest"
)

// Changelog tool names accepted in configuration
const (
	ToolGitCliff = "git-cliff"
	ToolBuiltin  = "builtin"
	ToolAuto     = "auto"
)

// DefaultChangelogFile is written when no file is configured
const DefaultChangelogFile = "CHANGELOG.md"

// ChangelogOptions configures a changelog run
type ChangelogOptions struct {
	Dir  string
	File string
	Tag  string // Tag for unreleased commits, e.g. v1.2.0
	Mode ChangelogMode
}

func (o ChangelogOptions) path() string {
	file := o.File
	if file == "" {
		file = DefaultChangelogFile
	}

	if filepath.IsAbs(file) {
		return file
	}

	return filepath.Join(o.Dir, file)
}

// Generator writes a changelog file
type Generator interface {
	Name() string
	Generate(ctx context.Context, opts ChangelogOptions) error
}

// CliffGenerator delegates to the git-cliff binary
type CliffGenerator struct {
	Binary string
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func NewCliffGenerator() *CliffGenerator {
	return &CliffGenerator{Binary: ToolGitCliff, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (g *CliffGenerator) Name() string { return ToolGitCliff }

// Available reports whether the binary is on PATH
func (g *CliffGenerator) Available() bool {
	_, err := exec.LookPath(g.binary())
	return err == nil
}

func (g *CliffGenerator) binary() string {
	if g.Binary == "" {
		return ToolGitCliff
	}

	return g.Binary
}

// Args returns the git-cliff arguments for opts
func (g *CliffGenerator) Args(opts ChangelogOptions) []string {
	var args []string

	if opts.Tag != "" {
		args = append(args, "--tag", opts.Tag)
	}

	switch opts.Mode {
	case ModeUnreleased:
		args = append(args, "--unreleased")
	case ModeLatest:
		args = append(args, "--latest")
	}

	file := opts.File
	if file == "" {
		file = DefaultChangelogFile
	}

	return append(args, "-o", file)
}

func (g *CliffGenerator) Generate(ctx context.Context, opts ChangelogOptions) error {
	bin, err := exec.LookPath(g.binary())
	if err != nil {
		return &ToolMissingError{Tool: g.binary(), Hint: "cargo install git-cliff"}
	}

	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	args := g.Args(opts)
	logger.Debug("running git-cliff", slog.Any("args", args))

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = g.Stdout
	cmd.Stderr = g.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git-cliff failed: %w", err)
	}

	return nil
}

// ConventionalCommit is a parsed `type(scope)!: subject` message
type ConventionalCommit struct {
	Type     string
	Scope    string
	Breaking bool
	Subject  string
}

var conventionalRe = regexp.MustCompile(`^([a-zA-Z]+)(?:\(([^)]*)\))?(!)?:\s*(.+)$`)

// ParseConventionalCommit parses the first line of a commit message
func ParseConventionalCommit(line string) (ConventionalCommit, bool) {
	line = strings.TrimSpace(strings.SplitN(line, "\n", 2)[0])

	match := conventionalRe.FindStringSubmatch(line)
	if match == nil {
		return ConventionalCommit{}, false
	}

	return ConventionalCommit{
		Type:     strings.ToLower(match[1]),
		Scope:    match[2],
		Breaking: match[3] == "!",
		Subject:  strings.TrimSpace(match[4]),
	}, true
}

// Sections in output order
var changelogGroups = []struct {
	title string
	types []string
}{
	{"Features", []string{"feat"}},
	{"Bug Fixes", []string{"fix"}},
	{"Documentation", []string{"doc", "docs"}},
	{"Performance", []string{"perf"}},
	{"Refactor", []string{"refactor"}},
	{"Styling", []string{"style"}},
	{"Testing", []string{"test"}},
	{"Miscellaneous Tasks", []string{"chore", "ci", "build"}},
}

func groupFor(commitType string) string {
	for _, g := range changelogGroups {
		for _, t := range g.types {
			if t == commitType {
				return g.title
			}
		}
	}

	return "Miscellaneous Tasks"
}

// RenderSection builds the Markdown section for one version. Commits that are
// not conventional and release commits are left out.
func RenderSection(version string, date time.Time, commits []git.Commit) string {
	grouped := make(map[string][]string)

	for _, c := range commits {
		cc, ok := ParseConventionalCommit(c.Subject)
		if !ok {
			continue
		}

		if cc.Type == "chore" && cc.Scope == "release" {
			continue
		}

		if strings.Contains(c.Body, "BREAKING CHANGE:") {
			cc.Breaking = true
		}

		var b strings.Builder
		b.WriteString("- ")

		if cc.Scope != "" {
			fmt.Fprintf(&b, "*(%s)* ", cc.Scope)
		}

		if cc.Breaking {
			b.WriteString("[**breaking**] ")
		}

		b.WriteString(cc.Subject)

		title := groupFor(cc.Type)
		grouped[title] = append(grouped[title], b.String())
	}

	var out strings.Builder

	fmt.Fprintf(&out, "## [%s] - %s\n", strings.TrimPrefix(version, TagPrefix), date.Format("2006-01-02"))

	for _, g := range changelogGroups {
		entries := grouped[g.title]
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(&out, "\n### %s\n\n", g.title)

		for _, e := range entries {
			out.WriteString(e)
			out.WriteByte('\n')
		}
	}

	return out.String()
}

const changelogHeader = "# Changelog\n\nAll notable changes to this project will be documented in this file.\n"

// BuiltinGenerator renders conventional commits since the last tag
type BuiltinGenerator struct {
	Git    *git.Client
	Now    func() time.Time
	Logger *slog.Logger
}

func NewBuiltinGenerator(client *git.Client) *BuiltinGenerator {
	return &BuiltinGenerator{Git: client, Now: time.Now}
}

func (g *BuiltinGenerator) Name() string { return ToolBuiltin }

// Generate prepends a section for opts.Tag (or "Unreleased") to the file
func (g *BuiltinGenerator) Generate(ctx context.Context, opts ChangelogOptions) error {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	since, err := g.Git.LatestTag(ctx)
	if err != nil {
		return err
	}

	commits, err := g.Git.Log(ctx, since)
	if err != nil {
		return err
	}

	logger.Debug("building changelog",
		slog.String("since", since),
		slog.Int("commits", len(commits)),
	)

	version := opts.Tag
	if version == "" {
		version = "Unreleased"
	}

	section := RenderSection(version, now(), commits)

	path := opts.path()

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	return writeFilePreservingMode(path, []byte(PrependSection(string(existing), section)))
}

// PrependSection inserts section above the newest entry, keeping any
// preamble that precedes the first "## " heading.
func PrependSection(existing, section string) string {
	if strings.TrimSpace(existing) == "" {
		return changelogHeader + "\n" + section
	}

	if strings.HasPrefix(existing, "## ") {
		return section + "\n" + existing
	}

	idx := strings.Index(existing, "\n## ")
	if idx < 0 {
		return strings.TrimRight(existing, "\n") + "\n\n" + section
	}

	return existing[:idx+1] + section + "\n" + existing[idx+1:]
}

// ReleaseNotes extracts the body of the "## [version]" section from a changelog
func ReleaseNotes(changelog, version string) string {
	version = strings.TrimPrefix(version, TagPrefix)
	heading := "## [" + version + "]"

	start := strings.Index(changelog, heading)
	if start < 0 {
		return ""
	}

	body := changelog[start+len(heading):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		return ""
	}

	if end := strings.Index(body, "\n## "); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body)
}

// NewGenerator resolves a configured tool name. "auto" prefers git-cliff and
// falls back to the builtin generator when the binary is missing.
func NewGenerator(tool string, client *git.Client, logger *slog.Logger) (Generator, error) {
	cliff := NewCliffGenerator()
	cliff.Logger = logger

	builtin := NewBuiltinGenerator(client)
	builtin.Logger = logger

	switch tool {
	case ToolGitCliff:
		return cliff, nil
	case ToolBuiltin:
		return builtin, nil
	case ToolAuto, "":
		if cliff.Available() {
			return cliff, nil
		}

		return builtin, nil
	default:
		return nil, fmt.Errorf("unknown changelog tool %q (want %s, %s or %s)", tool, ToolGitCliff, ToolBuiltin, ToolAuto)
	}
}
