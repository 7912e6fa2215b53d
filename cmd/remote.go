package cmd

import "github.com/spf13/cobra"

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Manage the GitHub and Gitea remotes",
	Long: `Configure and verify the two remotes every release is pushed to.

Available Commands:
  setup   Point origin at GitHub and gitea at the Gitea mirror
  list    Show the remotes recorded in .git/config
  check   Verify SSH keys and connectivity to every host`,
}

func init() {
	rootCmd.AddCommand(remoteCmd)
}
