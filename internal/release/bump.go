package release

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
)

// BumpOptions configures a version bump
type BumpOptions struct {
	Dir          string   // Project root
	Manifest     string   // Manifest path; detected when empty
	Version      string   // Explicit target version
	Kind         BumpKind // Used when Version is empty
	DryRun       bool     // Compute the new version without writing
	SkipLockfile bool     // Do not run `cargo update` after a Cargo.toml bump
	Logger       *slog.Logger

	lookPath func(string) (string, error)
}

// BumpResult describes a completed (or planned) bump
type BumpResult struct {
	Old             string
	New             string
	Path            string
	LockfileUpdated bool
}

// Bump validates the target version and rewrites the manifest
func Bump(ctx context.Context, opts BumpOptions) (*BumpResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lookPath := opts.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	manifest, err := DetectManifest(opts.Dir, opts.Manifest)
	if err != nil {
		return nil, err
	}

	oldRaw, err := manifest.ReadVersion()
	if err != nil {
		return nil, err
	}

	current, err := ParseVersion(oldRaw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifest.Path(), err)
	}

	kind := opts.Kind
	if opts.Version != "" {
		kind = BumpExplicit
	}

	if kind == "" {
		kind = BumpPatch
	}

	next, err := NextVersion(current, kind, opts.Version)
	if err != nil {
		return nil, err
	}

	result := &BumpResult{Old: current.String(), New: next.String(), Path: manifest.Path()}

	if next.Equal(current) {
		return result, fmt.Errorf("%w: %s", ErrVersionUnchanged, result.New)
	}

	logger.Debug("bumping version",
		slog.String("manifest", manifest.Path()),
		slog.String("old", result.Old),
		slog.String("new", result.New),
		slog.Bool("dry_run", opts.DryRun),
	)

	if opts.DryRun {
		return result, nil
	}

	if err := manifest.WriteVersion(result.New); err != nil {
		return nil, err
	}

	cargo, ok := manifest.(*CargoManifest)
	if !ok || opts.SkipLockfile {
		return result, nil
	}

	cargoPath, err := lookPath("cargo")
	if err != nil {
		logger.Warn("cargo not found, Cargo.lock not refreshed")
		return result, nil
	}

	crate, err := cargo.CrateName()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, cargoPath, "update", "-p", crate)
	cmd.Dir = filepath.Dir(cargo.Path())

	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("cargo update -p %s failed: %w: %s", crate, err, out)
	}

	result.LockfileUpdated = true

	return result, nil
}
