package cmd

import "github.com/spf13/cobra"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive slider showcases and VHS recordings",
	Long: `Run the slider showcases in the terminal and record them as GIFs with VHS.

Available Commands:
  list     List the showcases and their tapes
  show     Run a showcase interactively
  init     Write a VHS tape for every showcase
  render   Record the tapes with vhs`,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
