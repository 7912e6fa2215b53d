package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/hosting"
)

var syncGiteaCmd = &cobra.Command{
	Use:   "sync-gitea",
	Short: "Pull from GitHub and push to the Gitea mirror",
	Long: `Bring the Gitea mirror up to date: fetch tags and pull the release branch
from origin, then push it with all tags to the gitea remote.`,
	Args: cobra.NoArgs,
	RunE: runSyncGitea,
}

func init() {
	rootCmd.AddCommand(syncGiteaCmd)
}

func runSyncGitea(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	if _, ok := p.Config.GiteaRemote(); !ok {
		return fmt.Errorf("no Gitea remote configured (set remotes.gitea.host)")
	}

	if err := p.requireRepo(ctx); err != nil {
		return err
	}

	for _, name := range []string{hosting.RemoteGitHub, hosting.RemoteGitea} {
		has, err := p.Git.HasRemote(ctx, name)
		if err != nil {
			return err
		}

		if !has {
			return fmt.Errorf("git remote %s is missing (run tuislider remote setup)", name)
		}
	}

	branch, err := p.branch(ctx)
	if err != nil {
		return err
	}

	if flags.DryRun {
		_, _ = fmt.Fprintf(out, "• git fetch --tags %s\n", hosting.RemoteGitHub)
		_, _ = fmt.Fprintf(out, "• git pull %s %s\n", hosting.RemoteGitHub, branch)
		_, _ = fmt.Fprintf(out, "• git push %s %s --tags\n", hosting.RemoteGitea, branch)

		return nil
	}

	if err := hosting.SyncGitea(ctx, p.Git, hosting.RemoteGitHub, hosting.RemoteGitea, branch); err != nil {
		return withHint(cmd, err)
	}

	_, _ = fmt.Fprintln(out, okStyle.Render("✅ "+hosting.RemoteGitea+" is in sync with "+hosting.RemoteGitHub))

	return nil
}
