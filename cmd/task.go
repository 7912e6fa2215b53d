package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/tasks"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Run chained project tasks from Taskfile.hcl",
	Long: `Run named tasks declared in Taskfile.hcl. Dependencies run first, each task
once. Without a Taskfile the built-in tasks are used (build, test, fmt,
clippy, check-all, bump, release, demos, publish and more).

Available Commands:
  list   List the tasks
  run    Run a task and its dependencies
  init   Write the built-in Taskfile to the project`,
}

func init() {
	rootCmd.AddCommand(taskCmd)
}

// loadTaskfile reads the configured Taskfile, or the built-in one when the
// project has none
func loadTaskfile(p *project) (*tasks.Taskfile, error) {
	path := config.Resolve(p.Dir, p.Config.Tasks.File)

	if fileExists(path) {
		return tasks.Load(path)
	}

	p.Logger.Debug("no taskfile, using built-in tasks", slog.String("path", path))

	return tasks.Default()
}
