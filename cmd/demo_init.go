package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/demo"
)

var demoInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a VHS tape for every showcase",
	Long: `Render the built-in tape templates into demo.dir (examples/vhs by default),
one tape per showcase plus a gallery tape. Existing tapes are kept unless
--force is given.

Examples:
  tuislider demo init
  tuislider demo init --only progress,steps --force
  tuislider demo init --theme Dracula --width 1000`,
	Args: cobra.NoArgs,
	RunE: runDemoInit,
}

func init() {
	demoCmd.AddCommand(demoInitCmd)
	demoInitCmd.Flags().BoolP("force", "f", false, "Overwrite existing tapes")
	demoInitCmd.Flags().StringSlice("only", nil, "Only write these showcases")
	demoInitCmd.Flags().String("binary", demo.DefaultBinary, "Command the tapes run")
	demoInitCmd.Flags().String("theme", "", "VHS theme (default from config)")
	demoInitCmd.Flags().Int("font-size", demo.DefaultFontSize, "Terminal font size")
	demoInitCmd.Flags().Int("width", demo.DefaultWidth, "Recording width in pixels")
	demoInitCmd.Flags().Int("height", demo.DefaultHeight, "Recording height in pixels")
}

func runDemoInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	opts := demo.InitOptions{OutputDir: p.Config.Demo.Output, Theme: p.Config.Demo.Theme, Logger: p.Logger}
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.Only, _ = cmd.Flags().GetStringSlice("only")
	opts.Binary, _ = cmd.Flags().GetString("binary")
	opts.FontSize, _ = cmd.Flags().GetInt("font-size")
	opts.Width, _ = cmd.Flags().GetInt("width")
	opts.Height, _ = cmd.Flags().GetInt("height")

	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		opts.Theme = theme
	}

	dir := config.Resolve(p.Dir, p.Config.Demo.Dir)

	if flags.DryRun {
		_, _ = fmt.Fprintf(out, "• write tapes to %s\n", dir)
		return nil
	}

	res, err := demo.Init(dir, opts)
	if err != nil {
		return err
	}

	for _, path := range res.Written {
		_, _ = fmt.Fprintln(out, okStyle.Render("✅ ")+path)
	}

	for _, path := range res.Skipped {
		_, _ = fmt.Fprintln(out, dimStyle.Render("• kept "+path))
	}

	if len(res.Skipped) > 0 {
		_, _ = fmt.Fprintln(out, dimStyle.Render("Use --force to overwrite existing tapes"))
	}

	return nil
}
