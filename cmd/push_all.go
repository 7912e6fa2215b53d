package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/hosting"
)

var pushAllCmd = &cobra.Command{
	Use:   "push-all",
	Short: "Push the release branch to every remote",
	Long: `Push the release branch to origin and then to the Gitea mirror, stopping at
the first remote that fails.

Examples:
  tuislider push-all
  tuislider push-all --tags`,
	Args: cobra.NoArgs,
	RunE: runPushAll,
}

func init() {
	rootCmd.AddCommand(pushAllCmd)
	pushAllCmd.Flags().Bool("tags", false, "Push all tags as well")
	pushAllCmd.Flags().BoolP("force", "f", false, "Force push (use with caution)")
}

func runPushAll(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	if err := p.requireRepo(ctx); err != nil {
		return err
	}

	branch, err := p.branch(ctx)
	if err != nil {
		return err
	}

	tags, _ := cmd.Flags().GetBool("tags")
	force, _ := cmd.Flags().GetBool("force")
	remotes := p.Config.RemoteNames()

	if flags.DryRun {
		for _, r := range remotes {
			_, _ = fmt.Fprintf(out, "• git push %s %s%s\n", r, branch, tagSuffix(tags))
		}

		return nil
	}

	_, err = hosting.PushAll(ctx, p.Git, remotes, branch, hosting.PushOptions{
		Tags:   tags,
		Force:  force,
		Logger: p.Logger,
		OnPushed: func(remote string) {
			_, _ = fmt.Fprintln(out, okStyle.Render("✅ pushed "+branch+" to "+remote))
		},
	})
	if err != nil {
		return withHint(cmd, err)
	}

	_, _ = fmt.Fprintln(out, okStyle.Render("Push completed successfully!"))

	return nil
}

func tagSuffix(tags bool) string {
	if tags {
		return " --tags"
	}

	return ""
}
