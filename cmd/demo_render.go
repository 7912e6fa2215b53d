package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/demo"
)

var demoRenderCmd = &cobra.Command{
	Use:   "render [tape...]",
	Short: "Record the tapes with vhs",
	Long: `Run vhs on every tape in demo.dir, or only the named tapes, writing GIFs to
demo.output. Stops at the first tape that fails.

Examples:
  tuislider demo render
  tuislider demo render horizontal vertical`,
	RunE: runDemoRender,
}

func init() {
	demoCmd.AddCommand(demoRenderCmd)
}

func runDemoRender(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	dir := config.Resolve(p.Dir, p.Config.Demo.Dir)

	if flags.DryRun {
		tapes, err := demo.Tapes(dir)
		if err != nil {
			return err
		}

		for _, t := range tapes {
			_, _ = fmt.Fprintf(out, "• vhs %s\n", t)
		}

		return nil
	}

	gifs, err := demo.Render(cmd.Context(), dir, demo.RenderOptions{
		Only:      args,
		OutputDir: config.Resolve(p.Dir, p.Config.Demo.Output),
		WorkDir:   p.Dir,
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
		Logger:    p.Logger,
	})

	for _, gif := range gifs {
		_, _ = fmt.Fprintln(out, okStyle.Render("✅ ")+gif)
	}

	return err
}
