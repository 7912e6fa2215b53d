package cmd

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/release"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"check-all"},
	Short:   "Run every configured check",
	Long: `Run the commands listed under checks in .tuislider.yaml, in order, stopping
at the first failure. The defaults are cargo fmt, clippy, test and build.

Examples:
  tuislider check
  tuislider check --dry-run`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	if len(p.Config.Checks) == 0 {
		printEmptyResult(cmd, "checks", "add a checks list to "+configFileHint(p))
		return nil
	}

	reporter := newStepReporter(cmd)
	defer reporter.Close()

	pipeline := checkPipeline(p.Dir, p.Config.Checks, cmd.OutOrStdout(), cmd.ErrOrStderr())
	pipeline.Reporter = reporter
	pipeline.DryRun = flags.DryRun
	pipeline.Logger = p.Logger

	if err := pipeline.Run(cmd.Context()); err != nil {
		return err
	}

	if !flags.DryRun {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("All checks passed"))
	}

	return nil
}

// checkPipeline runs each check through sh -c in dir
func checkPipeline(dir string, checks []string, stdout, stderr io.Writer) *release.Pipeline {
	pipeline := &release.Pipeline{}

	for _, check := range checks {
		pipeline.Add(checkName(check), check, func(ctx context.Context) error {
			return runShell(ctx, dir, check, stdout, stderr)
		})
	}

	return pipeline
}

// checkName is the first two words of a check, e.g. "cargo clippy"
func checkName(check string) string {
	fields := strings.Fields(check)
	if len(fields) > 2 {
		fields = fields[:2]
	}

	return strings.Join(fields, " ")
}

func runShell(ctx context.Context, dir, line string, stdout, stderr io.Writer) error {
	c := exec.CommandContext(ctx, "sh", "-c", line)
	c.Dir = dir
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", line, err)
	}

	return nil
}

func configFileHint(p *project) string {
	if p.Config.File != "" {
		return p.Config.File
	}

	return ".tuislider.yaml"
}
