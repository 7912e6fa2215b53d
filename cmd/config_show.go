package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(p.Config)
	if err != nil {
		return err
	}

	source := "built-in defaults"
	if p.Config.File != "" {
		source = p.Config.File
	}

	_, _ = fmt.Fprintln(out, dimStyle.Render("# "+source))
	_, _ = fmt.Fprint(out, string(data))

	return nil
}
