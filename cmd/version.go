package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/application"
	"github.com/inovacc/tuislider/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s/%s, %s)\n",
			application.AppName, version.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
