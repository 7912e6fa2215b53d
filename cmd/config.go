package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the project configuration",
	Long: `Manage .tuislider.yaml, the per-project configuration.

Every key can be overridden from the environment with a TUISLIDER_ prefix,
e.g. TUISLIDER_PROJECT_BRANCH=trunk or TUISLIDER_REMOTES_GITEA_HOST=git.example.com.

Available Commands:
  show   Print the effective configuration
  init   Write a configuration file with the defaults`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
