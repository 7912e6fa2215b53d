package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/config"
	"github.com/inovacc/tuislider/internal/release"
)

var bumpCmd = &cobra.Command{
	Use:   "bump <version|major|minor|patch>",
	Short: "Set the crate version",
	Long: `Validate a new semantic version and write it to the project manifest
(Cargo.toml by default). After a Cargo.toml change, cargo update refreshes
Cargo.lock when cargo is installed.

Examples:
  tuislider bump 0.2.0
  tuislider bump v1.0.0-rc.1
  tuislider bump minor
  tuislider bump patch --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runBump,
}

func init() {
	rootCmd.AddCommand(bumpCmd)
	bumpCmd.Flags().Bool("skip-lockfile", false, "Do not run cargo update after the bump")
}

func runBump(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	opts := release.BumpOptions{
		Dir:      p.Dir,
		Manifest: config.Resolve(p.Dir, p.Config.Project.Manifest),
		Kind:     release.ParseBumpKind(args[0]),
		DryRun:   flags.DryRun,
		Logger:   p.Logger,
	}

	if opts.Kind == release.BumpExplicit {
		opts.Version = args[0]
	}

	opts.SkipLockfile, _ = cmd.Flags().GetBool("skip-lockfile")

	res, err := release.Bump(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if flags.DryRun {
		_, _ = fmt.Fprintf(out, "• %s: %s -> %s\n", res.Path, res.Old, res.New)
		return nil
	}

	_, _ = fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("✅ Bumped %s -> %s", res.Old, res.New))+" "+dimStyle.Render(res.Path))

	if res.LockfileUpdated {
		_, _ = fmt.Fprintln(out, dimStyle.Render("  Cargo.lock refreshed"))
	}

	return nil
}
