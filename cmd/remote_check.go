package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/hosting"
)

var remoteCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify SSH keys and connectivity to every host",
	Long: `Check that an SSH key exists, that every host accepts it (ssh -T) and that
every configured remote answers git ls-remote.`,
	RunE: runRemoteCheck,
}

func init() {
	remoteCmd.AddCommand(remoteCheckCmd)
	remoteCheckCmd.Flags().Bool("skip-ssh", false, "Skip the ssh -T probe")
}

func runRemoteCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	if err := p.requireRepo(ctx); err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	keys, err := hosting.CheckSSHKeys(home)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, titleStyle.Render("SSH keys"))

	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %s %s %s\n", k.Type, k.Fingerprint, dimStyle.Render(k.Path))
	}

	remotes, err := p.remotes()
	if err != nil {
		return err
	}

	skipSSH, _ := cmd.Flags().GetBool("skip-ssh")
	failed := 0

	_, _ = fmt.Fprintln(out, titleStyle.Render("Remotes"))

	for _, r := range remotes {
		if !skipSSH {
			user := r.User
			if user == "" {
				user = "git"
			}

			if _, err := hosting.CheckConnectivity(ctx, r.Host, user); err != nil {
				failed++

				_, _ = fmt.Fprintln(out, errStyle.Render("❌ ssh "+r.Host+": ")+err.Error())

				continue
			}

			_, _ = fmt.Fprintln(out, okStyle.Render("✅ ssh "+r.Host))
		}

		refs, err := hosting.VerifyRemote(ctx, p.Git, r.Name)
		if err != nil {
			failed++

			_, _ = fmt.Fprintln(out, errStyle.Render("❌ ")+err.Error())

			continue
		}

		_, _ = fmt.Fprintln(out, okStyle.Render("✅ "+r.Name)+" "+dimStyle.Render(summarizeRefs(refs)))
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}

	return nil
}

func summarizeRefs(refs []string) string {
	if len(refs) == 0 {
		return "(empty)"
	}

	const shown = 3
	if len(refs) <= shown {
		return strings.Join(refs, ", ")
	}

	return fmt.Sprintf("%s and %d more", strings.Join(refs[:shown], ", "), len(refs)-shown)
}
