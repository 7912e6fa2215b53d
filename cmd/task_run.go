package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/tasks"
)

var taskRunCmd = &cobra.Command{
	Use:   "run <task> [args...]",
	Short: "Run a task and its dependencies",
	Long: `Run a task after its dependencies. Positional arguments fill the task
parameters in order. Confirmations are asked before anything runs.

Examples:
  tuislider task run check-all
  tuislider task run release 0.2.0
  tuislider task run release 0.2.0 --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskRun,
}

func init() {
	taskCmd.AddCommand(taskRunCmd)
}

func runTaskRun(cmd *cobra.Command, args []string) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	tf, err := loadTaskfile(p)
	if err != nil {
		return err
	}

	reporter := newStepReporter(cmd)
	defer reporter.Close()

	runner := &tasks.Runner{
		Taskfile: tf,
		Dir:      p.Dir,
		DryRun:   flags.DryRun,
		Yes:      flags.Yes,
		Stdin:    cmd.InOrStdin(),
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
		Reporter: reporter,
		Logger:   p.Logger,
		Confirm: func(prompt string) (bool, error) {
			return promptConfirm(cmd, prompt)
		},
	}

	if err := runner.Run(cmd.Context(), args[0], args[1:]); err != nil {
		return err
	}

	if !flags.DryRun {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Task "+args[0]+" completed"))
	}

	return nil
}
