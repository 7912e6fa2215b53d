package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/application"
	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/ctxlog"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the defaults",
	Long: `Write .tuislider.yaml to the project directory. Owner and repository are
filled in from the origin remote when it exists.

Examples:
  tuislider config init
  tuislider config init --gitea-host git.example.com --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
	configInitCmd.Flags().String("gitea-host", "", "Host of the Gitea mirror")
	configInitCmd.Flags().Int("gitea-port", 0, "SSH port of the Gitea mirror")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	dir, err := expandPath(flags.Dir)
	if err != nil {
		return err
	}

	p := &project{Dir: dir, Config: config.Default(dir), Logger: ctxlog.FromContext(cmd.Context())}

	if origin, err := p.originRemote(); err == nil {
		p.Config.Remotes.GitHub.Host = origin.Host
		p.Config.Remotes.GitHub.Owner = origin.Owner
		p.Config.Remotes.GitHub.Repo = origin.Repo
		p.Config.Remotes.Gitea.Owner = origin.Owner
		p.Config.Remotes.Gitea.Repo = origin.Repo
	}

	p.Config.Remotes.Gitea.Host, _ = cmd.Flags().GetString("gitea-host")
	p.Config.Remotes.Gitea.Port, _ = cmd.Flags().GetInt("gitea-port")

	path := filepath.Join(dir, application.ConfigFileName)
	if flags.Config != "" {
		if path, err = expandPath(flags.Config); err != nil {
			return err
		}
	}

	force, _ := cmd.Flags().GetBool("force")

	if err := config.Write(path, p.Config, force); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✅ ")+path)

	return nil
}
