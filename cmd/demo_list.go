package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/demo"
)

var demoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the showcases and their tapes",
	Args:    cobra.NoArgs,
	RunE:    runDemoList,
}

func init() {
	demoCmd.AddCommand(demoListCmd)
}

func runDemoList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	dir := config.Resolve(p.Dir, p.Config.Demo.Dir)

	for _, s := range demo.Showcases() {
		mark := dimStyle.Render("(no tape)")
		if _, err := os.Stat(filepath.Join(dir, s.Name+demo.TapeExt)); err == nil {
			mark = okStyle.Render("✓ tape")
		}

		_, _ = fmt.Fprintf(out, "%-22s %-40s %s\n", s.Name, s.Description, mark)
	}

	return nil
}
