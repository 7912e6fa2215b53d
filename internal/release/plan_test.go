package release

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/tuislider/internal/git"
	"github.com/inovacc/tuislider/internal/git/gittest"
)

func TestPlanRelease(t *testing.T) {
	repo := gittest.NewRepo(t)
	ctx := context.Background()
	dir := repo.RepoDir

	gittest.Commit(t, repo, "feat: initial slider", map[string]string{"VERSION": "0.1.0\n"})

	var pushedTag, publishedNotes string

	plan, err := PlanRelease(ctx, ReleaseOptions{
		Dir:       dir,
		Kind:      BumpMinor,
		Git:       repo,
		Changelog: NewBuiltinGenerator(repo),
		Push: func(_ context.Context, tag string) error {
			pushedTag = tag
			return nil
		},
		Publish: func(_ context.Context, _ string, notes string) error {
			publishedNotes = notes
			return nil
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "0.1.0", plan.Old.String())
	assert.Equal(t, "0.2.0", plan.New.String())
	assert.Equal(t, "v0.2.0", plan.Tag)
	assert.Equal(t,
		[]string{StepCheck, StepBump, StepChangelog, StepCommit, StepTag, StepPush, StepPublish},
		plan.Pipeline.Names(),
	)

	require.NoError(t, plan.Pipeline.Run(ctx))

	data, err := os.ReadFile(filepath.Join(dir, "VERSION"))
	require.NoError(t, err)
	assert.Equal(t, "0.2.0\n", string(data))

	exists, err := repo.TagExists(ctx, "v0.2.0")
	require.NoError(t, err)
	assert.True(t, exists)

	clean, err := repo.IsClean(ctx)
	require.NoError(t, err)
	assert.True(t, clean)

	commits, err := repo.Log(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, commits)
	assert.Equal(t, CommitMessage("v0.2.0"), commits[0].Subject)

	assert.Equal(t, "v0.2.0", pushedTag)
	assert.Contains(t, publishedNotes, "initial slider")
}

func TestPlanRelease_DirtyTree(t *testing.T) {
	repo := gittest.NewRepo(t)
	ctx := context.Background()

	gittest.Commit(t, repo, "feat: initial", map[string]string{"VERSION": "1.0.0\n"})
	require.NoError(t, os.WriteFile(filepath.Join(repo.RepoDir, "scratch.txt"), []byte("x"), 0o644))

	plan, err := PlanRelease(ctx, ReleaseOptions{Dir: repo.RepoDir, Version: "1.0.1", Git: repo})
	require.NoError(t, err)

	err = plan.Pipeline.Run(ctx)
	require.ErrorIs(t, err, ErrDirtyTree)

	data, err := os.ReadFile(filepath.Join(repo.RepoDir, "VERSION"))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0\n", string(data), "bump must not run after a failed check")
}

func TestPlanRelease_ExistingTag(t *testing.T) {
	repo := gittest.NewRepo(t)
	ctx := context.Background()

	gittest.Commit(t, repo, "feat: initial", map[string]string{"VERSION": "1.0.0\n"})
	require.NoError(t, repo.Tag(ctx, "v1.1.0", ""))

	_, err := PlanRelease(ctx, ReleaseOptions{Dir: repo.RepoDir, Kind: BumpMinor, Git: repo})
	require.ErrorIs(t, err, ErrTagExists)
	assert.ErrorContains(t, err, "v1.1.0")
}

func TestPlanRelease_TagCreatedMidRelease(t *testing.T) {
	repo := gittest.NewRepo(t)
	ctx := context.Background()

	gittest.Commit(t, repo, "feat: initial", map[string]string{"VERSION": "1.0.0\n"})

	plan, err := PlanRelease(ctx, ReleaseOptions{
		Dir:     repo.RepoDir,
		Version: "1.0.1",
		Git:     repo,
		Check: func(ctx context.Context) error {
			return repo.Tag(ctx, "v1.0.1", "")
		},
	})
	require.NoError(t, err)

	err = plan.Pipeline.Run(ctx)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepTag, stepErr.Step)
	assert.ErrorIs(t, err, ErrTagExists)
}

// committingGenerator writes the changelog and commits every pending change,
// leaving the release commit step with nothing to do
type committingGenerator struct {
	repo *git.Client
}

func (g committingGenerator) Name() string { return "committing" }

func (g committingGenerator) Generate(ctx context.Context, opts ChangelogOptions) error {
	if err := os.WriteFile(opts.path(), []byte("# Changelog\n"), 0o644); err != nil {
		return err
	}

	return g.repo.Commit(ctx, "docs: changelog", git.CommitOptions{All: true})
}

func TestPlanRelease_NothingToCommit(t *testing.T) {
	repo := gittest.NewRepo(t)
	ctx := context.Background()

	gittest.Commit(t, repo, "feat: initial", map[string]string{"VERSION": "1.0.0\n"})

	plan, err := PlanRelease(ctx, ReleaseOptions{
		Dir:       repo.RepoDir,
		Version:   "1.0.1",
		Git:       repo,
		Changelog: committingGenerator{repo: repo},
	})
	require.NoError(t, err)
	require.NoError(t, plan.Pipeline.Run(ctx))

	exists, err := repo.TagExists(ctx, "v1.0.1")
	require.NoError(t, err)
	assert.True(t, exists)

	commits, err := repo.Log(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "docs: changelog", commits[0].Subject)
}
