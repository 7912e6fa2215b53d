package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/demo"
)

var demoShowCmd = &cobra.Command{
	Use:   "show <showcase>",
	Short: "Run a showcase interactively",
	Long: `Open a slider showcase full screen. Use the arrow keys to move between
sliders and change values, ? for help and q to quit.

Showcases: ` + strings.Join(demo.ShowcaseNames(), ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: demo.ShowcaseNames(),
	RunE:      runDemoShow,
}

func init() {
	demoCmd.AddCommand(demoShowCmd)
}

func runDemoShow(cmd *cobra.Command, args []string) error {
	s, ok := demo.ShowcaseByName(args[0])
	if !ok {
		return fmt.Errorf("unknown showcase %q (available: %s)", args[0], strings.Join(demo.ShowcaseNames(), ", "))
	}

	return s.Run(cmd.Context())
}
