package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/tasks"
)

var taskInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in Taskfile to the project",
	Args:  cobra.NoArgs,
	RunE:  runTaskInit,
}

func init() {
	taskCmd.AddCommand(taskInitCmd)
	taskInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing Taskfile")
}

func runTaskInit(cmd *cobra.Command, _ []string) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	path := config.Resolve(p.Dir, p.Config.Tasks.File)

	if force, _ := cmd.Flags().GetBool("force"); fileExists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, tasks.DefaultSource(), 0o644); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✅ ")+path)

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
