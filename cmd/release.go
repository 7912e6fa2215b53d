package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/application"
	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/hosting"
	"github.com/inovacc/tuislider/internal/release"
	"github.com/inovacc/tuislider/internal/store"
)

var releaseCmd = &cobra.Command{
	Use:   "release <version|major|minor|patch>",
	Short: "Release a new version to every remote",
	Long: `Run the full release: checks, version bump, changelog, release commit,
annotated tag, push to every remote and a release on GitHub and Gitea.

The pipeline stops at the first failing step. Every attempt is recorded in the
release journal (see tuislider history).

Tokens are read from GITHUB_TOKEN or GH_TOKEN (falling back to gh auth) and
GITEA_TOKEN with GITEA_URL.

Examples:
  tuislider release 0.2.0
  tuislider release minor --dry-run
  tuislider release 1.0.0 --skip-checks --yes
  tuislider release patch --no-publish`,
	Args: cobra.ExactArgs(1),
	RunE: runRelease,
}

// Replaced in tests
var (
	journalPath     = application.JournalPath
	loadCredentials = hosting.LoadCredentials
)

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.Flags().Bool("skip-checks", false, "Skip the configured checks")
	releaseCmd.Flags().Bool("allow-dirty", false, "Release from a working tree with uncommitted changes")
	releaseCmd.Flags().Bool("skip-lockfile", false, "Do not run cargo update after the bump")
	releaseCmd.Flags().Bool("no-push", false, "Commit and tag locally without pushing")
	releaseCmd.Flags().Bool("no-publish", false, "Do not create hosted releases")
	releaseCmd.Flags().Bool("draft", false, "Create the hosted releases as drafts")
}

type releaseFlags struct {
	SkipChecks   bool
	AllowDirty   bool
	SkipLockfile bool
	NoPush       bool
	NoPublish    bool
	Draft        bool
}

func extractReleaseFlags(cmd *cobra.Command) releaseFlags {
	var f releaseFlags

	f.SkipChecks, _ = cmd.Flags().GetBool("skip-checks")
	f.AllowDirty, _ = cmd.Flags().GetBool("allow-dirty")
	f.SkipLockfile, _ = cmd.Flags().GetBool("skip-lockfile")
	f.NoPush, _ = cmd.Flags().GetBool("no-push")
	f.NoPublish, _ = cmd.Flags().GetBool("no-publish")
	f.Draft, _ = cmd.Flags().GetBool("draft")

	return f
}

func runRelease(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	rf := extractReleaseFlags(cmd)

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	if err := p.requireRepo(ctx); err != nil {
		return err
	}

	gen, err := release.NewGenerator(p.Config.Changelog.Tool, p.Git, p.Logger)
	if err != nil {
		return err
	}

	branch, err := p.branch(ctx)
	if err != nil {
		return err
	}

	remotes := p.Config.RemoteNames()
	rec := &store.Record{Remotes: remotes, DryRun: flags.DryRun}

	reporter := newStepReporter(cmd)
	defer reporter.Close()

	opts := release.ReleaseOptions{
		Dir:           p.Dir,
		Manifest:      config.Resolve(p.Dir, p.Config.Project.Manifest),
		ChangelogFile: p.Config.Changelog.File,
		AllowDirty:    rf.AllowDirty,
		SkipLockfile:  rf.SkipLockfile,
		Git:           p.Git,
		Changelog:     gen,
		Reporter:      reporter,
		DryRun:        flags.DryRun,
		Logger:        p.Logger,
	}

	if opts.Kind = release.ParseBumpKind(args[0]); opts.Kind == release.BumpExplicit {
		opts.Version = args[0]
	}

	if !rf.SkipChecks && len(p.Config.Checks) > 0 {
		opts.Check = func(ctx context.Context) error {
			pipeline := checkPipeline(p.Dir, p.Config.Checks, cmd.OutOrStdout(), cmd.ErrOrStderr())
			pipeline.Logger = p.Logger

			return pipeline.Run(ctx)
		}
	}

	if !rf.NoPush {
		opts.Push = func(ctx context.Context, _ string) error {
			_, err := hosting.PushAll(ctx, p.Git, remotes, branch, hosting.PushOptions{Tags: true, Logger: p.Logger})
			return err
		}
	}

	if !rf.NoPush && !rf.NoPublish {
		publishers, err := p.publishers()
		if err != nil {
			return err
		}

		opts.Publish = func(ctx context.Context, tag, notes string) error {
			req := hosting.ReleaseRequest{Tag: tag, Body: notes, Target: branch, Draft: rf.Draft}

			for _, pub := range publishers {
				created, err := pub.Publish(ctx, req)
				if err != nil {
					return fmt.Errorf("%s: %w", pub.Host(), err)
				}

				rec.Published = append(rec.Published, created.URL)
			}

			return nil
		}
	}

	plan, err := release.PlanRelease(ctx, opts)
	if err != nil {
		return err
	}

	rec.Version = plan.New.String()
	rec.PreviousVersion = plan.Old.String()
	rec.Tag = plan.Tag

	_, _ = fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Release %s -> %s (%s)", plan.Old, plan.New, plan.Tag)))
	_, _ = fmt.Fprintln(out, dimStyle.Render("Steps: "+strings.Join(plan.Pipeline.Names(), " -> ")))

	if !flags.DryRun {
		ok, err := promptConfirm(cmd, fmt.Sprintf("Release %s to %s?", plan.Tag, strings.Join(remotes, " and ")))
		if err != nil {
			return err
		}

		if !ok {
			_, _ = fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	journal := openJournal(p.Logger)
	if journal != nil {
		defer func() { _ = journal.Close() }()

		saveRecord(journal, rec, p.Logger)
	}

	runErr := plan.Pipeline.Run(ctx)

	rec.Finish(runErr)

	if journal != nil {
		saveRecord(journal, rec, p.Logger)
	}

	if runErr != nil {
		var stepErr *release.StepError
		if errors.As(runErr, &stepErr) && stepErr.Step != release.StepCheck && stepErr.Step != release.StepBump {
			_, _ = fmt.Fprintln(out, warnStyle.Render("The working tree may hold a partial release; inspect git status and git tag before retrying."))
		}

		return withHint(cmd, runErr)
	}

	if flags.DryRun {
		return nil
	}

	_, _ = fmt.Fprintln(out, okStyle.Render("Released "+plan.Tag))

	for _, url := range rec.Published {
		_, _ = fmt.Fprintln(out, "  "+dimStyle.Render(url))
	}

	return nil
}

// publishers returns a publisher for every host that has credentials.
// Hosts without a token are skipped with a warning.
func (p *project) publishers() ([]hosting.Publisher, error) {
	remotes, err := p.remotes()
	if err != nil {
		return nil, err
	}

	creds, err := loadCredentials(p.Config.Remotes.GitHub.Host)
	if err != nil {
		return nil, err
	}

	var publishers []hosting.Publisher

	for _, r := range remotes {
		switch r.Name {
		case hosting.RemoteGitHub:
			if creds.GitHubToken == "" {
				p.Logger.Warn("no GitHub token, skipping GitHub release (set GITHUB_TOKEN or run gh auth login)")
				continue
			}

			pub := &hosting.GitHubPublisher{Token: creds.GitHubToken, Owner: r.Owner, Repo: r.Repo, Logger: p.Logger}
			if r.Host != "github.com" {
				pub.APIURL = "https://" + r.Host + "/api/v3/"
			}

			p.Logger.Debug("github publisher", slog.String("token_source", string(creds.GitHubSource)))
			publishers = append(publishers, pub)
		case hosting.RemoteGitea:
			if creds.GiteaToken == "" {
				p.Logger.Warn("no Gitea token, skipping Gitea release (set GITEA_TOKEN)")
				continue
			}

			baseURL := creds.GiteaURL
			if baseURL == "" {
				baseURL = "https://" + r.Host
			}

			publishers = append(publishers, &hosting.GiteaPublisher{
				BaseURL: baseURL,
				Token:   creds.GiteaToken,
				Owner:   r.Owner,
				Repo:    r.Repo,
				Logger:  p.Logger,
			})
		}
	}

	return publishers, nil
}

// openJournal opens the release journal; a journal that cannot be opened only
// disables history
func openJournal(logger *slog.Logger) *store.Journal {
	path, err := journalPath()
	if err != nil {
		logger.Warn("release journal unavailable", slog.String("error", err.Error()))
		return nil
	}

	journal, err := store.Open(path)
	if err != nil {
		logger.Warn("release journal unavailable", slog.String("path", path), slog.String("error", err.Error()))
		return nil
	}

	return journal
}

func saveRecord(journal *store.Journal, rec *store.Record, logger *slog.Logger) {
	if err := journal.Save(rec); err != nil {
		logger.Warn("failed to record release", slog.String("error", err.Error()))
	}
}
