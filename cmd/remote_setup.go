package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/hosting"
)

var remoteSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Point origin at GitHub and gitea at the Gitea mirror",
	Long: `Add or update the git remotes described in .tuislider.yaml.

Missing remotes are added. A remote that already points somewhere else is
left alone and reported, unless --force is given.

Examples:
  tuislider remote setup
  tuislider remote setup --force
  tuislider remote setup --dry-run`,
	RunE: runRemoteSetup,
}

func init() {
	remoteCmd.AddCommand(remoteSetupCmd)
	remoteSetupCmd.Flags().BoolP("force", "f", false, "Rewrite remotes that point elsewhere")
}

func runRemoteSetup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	if err := p.requireRepo(ctx); err != nil {
		return err
	}

	remotes, err := p.remotes()
	if err != nil {
		return err
	}

	if _, ok := p.Config.GiteaRemote(); !ok {
		_, _ = fmt.Fprintln(out, warnStyle.Render("remotes.gitea.host is not set, only origin is configured"))
	}

	if flags.DryRun {
		for _, r := range remotes {
			_, _ = fmt.Fprintf(out, "• %s -> %s\n", r.Name, r.SSHURL())
		}

		return nil
	}

	force, _ := cmd.Flags().GetBool("force")

	results, err := hosting.Setup(ctx, p.Git, remotes, hosting.SetupOptions{Force: force, Logger: p.Logger})

	conflicts := 0

	for _, res := range results {
		url := res.Remote.SSHURL()

		switch res.Action {
		case hosting.ActionAdded:
			_, _ = fmt.Fprintln(out, okStyle.Render("✅ added ")+res.Remote.Name+" "+dimStyle.Render(url))
		case hosting.ActionUpdated:
			_, _ = fmt.Fprintln(out, okStyle.Render("✅ updated ")+res.Remote.Name+" "+dimStyle.Render(res.CurrentURL+" -> "+url))
		case hosting.ActionUnchanged:
			_, _ = fmt.Fprintln(out, dimStyle.Render("• "+res.Remote.Name+" already points to "+url))
		case hosting.ActionConflict:
			conflicts++

			_, _ = fmt.Fprintln(out, errStyle.Render("❌ ")+res.Err.Error())
		}
	}

	if err != nil {
		return err
	}

	if conflicts > 0 {
		return fmt.Errorf("%d remote(s) point elsewhere (use --force to update)", conflicts)
	}

	_, _ = fmt.Fprintln(out, dimStyle.Render("Verify access with: tuislider remote check"))

	return nil
}
