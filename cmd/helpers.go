package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inovacc/tuislider/internal/hosting"
	"github.com/inovacc/tuislider/internal/tasks"
)

// errNotInteractive is returned when a confirmation is needed but stdin is not a terminal
var errNotInteractive = errors.New("confirmation required but stdin is not a terminal (rerun with --yes)")

// isInteractive reports whether prompts can be answered; replaced in tests
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptConfirm asks a yes/no question unless --yes was given
func promptConfirm(cmd *cobra.Command, prompt string) (bool, error) {
	if flags.Yes {
		return true, nil
	}

	if !isInteractive() {
		return false, errNotInteractive
	}

	return tasks.AskYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
}

// withHint prints the recovery hint of a remote failure and returns err unchanged
func withHint(cmd *cobra.Command, err error) error {
	var remoteErr *hosting.RemoteError
	if errors.As(err, &remoteErr) {
		if hint := remoteErr.Hint(); hint != "" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("Hint: "+hint))
		}
	}

	return err
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// printEmptyResult prints a "no results" message with a create hint
func printEmptyResult(cmd *cobra.Command, resourceType, createCmd string) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "No %s found.\n", resourceType)
	_, _ = fmt.Fprintln(out, dimStyle.Render("Create them with: "+createCmd))
}

// truncateString truncates a string to maxLen runes with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}
