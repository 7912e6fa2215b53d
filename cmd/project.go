package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/ctxlog"
	"github.com/inovacc/tuislider/internal/git"
	"github.com/inovacc/tuislider/internal/hosting"
)

// project bundles what most commands need: the resolved project directory,
// its configuration and a git client bound to it
type project struct {
	Dir    string
	Config *config.Config
	Git    *git.Client
	Logger *slog.Logger
}

func loadProject(cmd *cobra.Command) (*project, error) {
	dir, err := expandPath(flags.Dir)
	if err != nil {
		return nil, err
	}

	var cfgPath string
	if flags.Config != "" {
		if cfgPath, err = expandPath(flags.Config); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(dir, cfgPath)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(cmd.Context())
	logger.Debug("project loaded",
		slog.String("dir", dir),
		slog.String("config", cfg.File),
		slog.String("project", cfg.Project.Name),
	)

	client := git.NewClientForRepo(dir)
	client.Stdin = cmd.InOrStdin()
	client.Stdout = cmd.OutOrStdout()
	client.Stderr = cmd.ErrOrStderr()

	return &project{Dir: dir, Config: cfg, Git: client, Logger: logger}, nil
}

// requireRepo fails unless git is installed and Dir is inside a repository
func (p *project) requireRepo(ctx context.Context) error {
	if !p.Git.Available() {
		return git.ErrGitNotFound
	}

	root, err := p.Git.Root(ctx)
	if git.IsNotRepository(err) {
		return fmt.Errorf("%s is not a git repository", p.Dir)
	}

	if err != nil {
		return err
	}

	p.Logger.Debug("repository", slog.String("root", root))

	return nil
}

// remotes returns the configured hosting remotes. An owner or repository
// missing from the config is taken from the current origin URL in
// .git/config; a repository still unknown falls back to the project name.
func (p *project) remotes() ([]hosting.Remote, error) {
	remotes := p.Config.HostingRemotes()
	github := &remotes[0]

	if github.Owner == "" || github.Repo == "" {
		origin, err := p.originRemote()

		switch {
		case err == nil:
			p.Logger.Debug("remote taken from origin", slog.String("owner", origin.Owner), slog.String("repo", origin.Repo))

			if github.Owner == "" {
				github.Owner = origin.Owner
			}

			if github.Repo == "" {
				github.Repo = origin.Repo
			}
		case github.Owner == "":
			return nil, fmt.Errorf("remotes.github.owner is not set and %w", err)
		}
	}

	if github.Repo == "" {
		github.Repo = p.Config.Project.Name
	}

	for i := 1; i < len(remotes); i++ {
		if remotes[i].Owner == "" {
			remotes[i].Owner = github.Owner
		}

		if remotes[i].Repo == "" {
			remotes[i].Repo = github.Repo
		}
	}

	for _, r := range remotes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	return remotes, nil
}

func (p *project) originRemote() (hosting.Remote, error) {
	rc, err := git.ReadConfig(p.Dir)
	if err != nil {
		return hosting.Remote{}, fmt.Errorf("origin could not be read: %w", err)
	}

	section, ok := rc.Remote[hosting.RemoteGitHub]
	if !ok {
		return hosting.Remote{}, fmt.Errorf("no %s remote is configured", hosting.RemoteGitHub)
	}

	return hosting.ParseURL(hosting.RemoteGitHub, section.URL)
}

// branch returns the configured release branch, or the checked out one when
// the config leaves it empty
func (p *project) branch(ctx context.Context) (string, error) {
	if p.Config.Project.Branch != "" {
		return p.Config.Project.Branch, nil
	}

	branch, err := p.Git.CurrentBranch(ctx)
	if git.IsDetachedHead(err) {
		return "", fmt.Errorf("HEAD is detached; check out a branch or set project.branch")
	}

	return branch, err
}
