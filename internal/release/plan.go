package release

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/inovacc/tuislider/internal/git"
)

// Step names used by the release pipeline
const (
	StepCheck     = "check"
	StepBump      = "bump"
	StepChangelog = "changelog"
	StepCommit    = "commit"
	StepTag       = "tag"
	StepPush      = "push"
	StepPublish   = "publish"
)

// ReleaseOptions configures a full release
type ReleaseOptions struct {
	Dir           string
	Manifest      string
	Version       string
	Kind          BumpKind
	ChangelogFile string
	AllowDirty    bool
	SkipLockfile  bool

	Git       *git.Client
	Changelog Generator

	// Optional hooks; a nil hook drops its step from the plan
	Check   func(ctx context.Context) error
	Push    func(ctx context.Context, tag string) error
	Publish func(ctx context.Context, tag, notes string) error

	Reporter Reporter
	DryRun   bool
	Logger   *slog.Logger
}

// ReleasePlan is a resolved release: the version pair and the steps to get there
type ReleasePlan struct {
	Old      *semver.Version
	New      *semver.Version
	Tag      string
	Manifest Manifest
	Pipeline *Pipeline
}

// CommitMessage is the message of the release commit
func CommitMessage(tag string) string {
	return fmt.Sprintf("chore(release): prepare for %s", tag)
}

// PlanRelease resolves the target version and builds the pipeline
// check -> bump -> changelog -> commit -> tag -> push -> publish.
func PlanRelease(ctx context.Context, opts ReleaseOptions) (*ReleasePlan, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if opts.Git == nil {
		return nil, fmt.Errorf("release: git client is required")
	}

	bump, err := Bump(ctx, BumpOptions{
		Dir:      opts.Dir,
		Manifest: opts.Manifest,
		Version:  opts.Version,
		Kind:     opts.Kind,
		DryRun:   true,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	oldV, err := ParseVersion(bump.Old)
	if err != nil {
		return nil, err
	}

	newV, err := ParseVersion(bump.New)
	if err != nil {
		return nil, err
	}

	manifestPath, err := filepath.Abs(bump.Path)
	if err != nil {
		return nil, err
	}

	tag := TagName(newV)

	exists, err := opts.Git.TagExists(ctx, tag)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, fmt.Errorf("%w: %s", ErrTagExists, tag)
	}

	changelogOpts := ChangelogOptions{Dir: opts.Dir, File: opts.ChangelogFile, Tag: tag}

	plan := &ReleasePlan{
		Old:      oldV,
		New:      newV,
		Tag:      tag,
		Manifest: manifestFor(manifestPath),
		Pipeline: &Pipeline{Reporter: opts.Reporter, DryRun: opts.DryRun, Logger: logger},
	}

	p := plan.Pipeline

	p.Add(StepCheck, "Check working tree", func(ctx context.Context) error {
		if !opts.AllowDirty {
			clean, err := opts.Git.IsClean(ctx)
			if err != nil {
				return err
			}

			if !clean {
				return ErrDirtyTree
			}
		}

		if opts.Check != nil {
			return opts.Check(ctx)
		}

		return nil
	})

	p.Add(StepBump, fmt.Sprintf("Bump version %s → %s", bump.Old, bump.New), func(ctx context.Context) error {
		_, err := Bump(ctx, BumpOptions{
			Dir:          opts.Dir,
			Manifest:     manifestPath,
			Version:      bump.New,
			SkipLockfile: opts.SkipLockfile,
			Logger:       logger,
		})

		return err
	})

	if opts.Changelog != nil {
		p.Add(StepChangelog, fmt.Sprintf("Generate changelog (%s)", opts.Changelog.Name()), func(ctx context.Context) error {
			return opts.Changelog.Generate(ctx, changelogOpts)
		})
	}

	p.Add(StepCommit, "Commit release", func(ctx context.Context) error {
		paths := []string{manifestPath}

		if opts.Changelog != nil {
			paths = append(paths, changelogOpts.path())
		}

		lock := filepath.Join(filepath.Dir(manifestPath), "Cargo.lock")
		if _, err := os.Stat(lock); err == nil && !opts.Git.IsIgnored(ctx, lock) {
			paths = append(paths, lock)
		}

		if err := opts.Git.Add(ctx, paths...); err != nil {
			return err
		}

		err := opts.Git.Commit(ctx, CommitMessage(tag), git.CommitOptions{})
		if git.IsNothingToCommit(err) {
			logger.Warn("release commit skipped, nothing to commit", slog.String("tag", tag))
			return nil
		}

		return err
	})

	p.Add(StepTag, "Tag "+tag, func(ctx context.Context) error {
		err := opts.Git.Tag(ctx, tag, "Release "+tag)
		if git.IsAlreadyExists(err) {
			return fmt.Errorf("%w: %s", ErrTagExists, tag)
		}

		return err
	})

	if opts.Push != nil {
		p.Add(StepPush, "Push to remotes", func(ctx context.Context) error {
			return opts.Push(ctx, tag)
		})
	}

	if opts.Publish != nil {
		p.Add(StepPublish, "Publish release", func(ctx context.Context) error {
			var notes string

			if data, err := os.ReadFile(changelogOpts.path()); err == nil {
				notes = ReleaseNotes(string(data), newV.String())
			}

			return opts.Publish(ctx, tag, notes)
		})
	}

	return plan, nil
}
