package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/release"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Regenerate CHANGELOG.md",
	Long: `Regenerate the changelog with git-cliff. When changelog.tool is auto and
git-cliff is not installed, a built-in generator writes a section from the
conventional commits since the last tag.

Examples:
  tuislider changelog
  tuislider changelog --tag v0.2.0
  tuislider changelog --unreleased
  tuislider changelog --tool builtin`,
	Args: cobra.NoArgs,
	RunE: runChangelog,
}

func init() {
	rootCmd.AddCommand(changelogCmd)
	changelogCmd.Flags().String("tag", "", "Tag to assign to unreleased commits")
	changelogCmd.Flags().Bool("unreleased", false, "Only write unreleased changes")
	changelogCmd.Flags().Bool("latest", false, "Only write the latest release")
	changelogCmd.Flags().String("tool", "", "git-cliff, builtin or auto (default from config)")
	changelogCmd.MarkFlagsMutuallyExclusive("unreleased", "latest")
}

func runChangelog(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	tool, _ := cmd.Flags().GetString("tool")
	if tool == "" {
		tool = p.Config.Changelog.Tool
	}

	gen, err := release.NewGenerator(tool, p.Git, p.Logger)
	if err != nil {
		return err
	}

	opts := release.ChangelogOptions{Dir: p.Dir, File: p.Config.Changelog.File, Mode: release.ModeFull}

	if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
		v, err := release.ParseVersion(tag)
		if err != nil {
			return err
		}

		opts.Tag = release.TagName(v)
	}

	if unreleased, _ := cmd.Flags().GetBool("unreleased"); unreleased {
		opts.Mode = release.ModeUnreleased
	}

	if latest, _ := cmd.Flags().GetBool("latest"); latest {
		opts.Mode = release.ModeLatest
	}

	if flags.DryRun {
		if cliff, ok := gen.(*release.CliffGenerator); ok {
			_, _ = fmt.Fprintf(out, "• git-cliff %s\n", strings.Join(cliff.Args(opts), " "))
		} else {
			_, _ = fmt.Fprintf(out, "• %s changelog -> %s\n", gen.Name(), opts.File)
		}

		return nil
	}

	if cliff, ok := gen.(*release.CliffGenerator); ok {
		cliff.Stdout = out
		cliff.Stderr = cmd.ErrOrStderr()
	}

	if err := gen.Generate(cmd.Context(), opts); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, okStyle.Render("✅ "+opts.File+" updated")+" "+dimStyle.Render("("+gen.Name()+")"))

	return nil
}
