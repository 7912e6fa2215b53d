package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/git"
)

var remoteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the remotes recorded in .git/config",
	Long: `List the remotes of the project repository and compare them with the
remotes expected by .tuislider.yaml. Reads .git/config directly.`,
	RunE: runRemoteList,
}

func init() {
	remoteCmd.AddCommand(remoteListCmd)
}

func runRemoteList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	rc, err := git.ReadConfig(p.Dir)
	if err != nil {
		return err
	}

	names := rc.RemoteNames()
	if len(names) == 0 {
		printEmptyResult(cmd, "remotes", "tuislider remote setup")
		return nil
	}

	expected := make(map[string]string)

	if remotes, err := p.remotes(); err == nil {
		for _, r := range remotes {
			expected[r.Name] = r.SSHURL()
		}
	}

	for _, name := range names {
		url := rc.Remote[name].URL

		mark := ""

		switch want, ok := expected[name]; {
		case !ok:
		case want == url:
			mark = okStyle.Render(" ✓")
		default:
			mark = warnStyle.Render(" (expected " + want + ")")
		}

		_, _ = fmt.Fprintf(out, "%-8s %s%s\n", name, url, mark)
	}

	return nil
}
