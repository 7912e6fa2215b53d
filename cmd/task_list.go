package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the tasks",
	Args:    cobra.NoArgs,
	RunE:    runTaskList,
}

func init() {
	taskCmd.AddCommand(taskListCmd)
}

func runTaskList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	tf, err := loadTaskfile(p)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, dimStyle.Render("Tasks from "+tf.Path))

	for _, t := range tf.Tasks {
		name := t.Name
		for _, param := range t.Params {
			name += " <" + param + ">"
		}

		line := fmt.Sprintf("  %-24s %s", name, t.Description)

		if len(t.Deps) > 0 {
			line += dimStyle.Render(" (after " + strings.Join(t.Deps, ", ") + ")")
		}

		_, _ = fmt.Fprintln(out, line)
	}

	return nil
}
