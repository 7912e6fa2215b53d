package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/application"
	"github.com/inovacc/tuislider/internal/ctxlog"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	Config    string
	Dir       string
	Verbose   bool
	LogFormat string
	Yes       bool
	DryRun    bool
}

var flags globalFlags

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Slider widget demos and dual-hosting release tooling",
	Long: `tuislider ships a terminal slider widget library together with the tooling
used to maintain it: version bumps, changelogs, releases pushed to GitHub and
a Gitea mirror, VHS demo recordings and a Taskfile of chained tasks.

Configuration is read from .tuislider.yaml in the project directory and can be
overridden with TUISLIDER_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd.ErrOrStderr(), flags.LogFormat, flags.Verbose)
		if err != nil {
			return err
		}

		slog.SetDefault(logger)
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, errStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.Config, "config", "", "Config file (default: <dir>/"+application.ConfigFileName+")")
	pf.StringVarP(&flags.Dir, "dir", "C", ".", "Project directory")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flags.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVarP(&flags.Yes, "yes", "y", false, "Answer yes to every confirmation")
	pf.BoolVarP(&flags.DryRun, "dry-run", "n", false, "Print what would happen without changing anything")
}

// newLogger builds the process logger. Logs go to w so they never mix with
// command output on stdout.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (want text or json)", format)
	}
}
