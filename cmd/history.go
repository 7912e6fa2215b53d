package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/inovacc/tuislider/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show past release attempts",
	Long: `List the release journal, newest first, or show one record by ID.

Examples:
  tuislider history
  tuislider history --limit 5
  tuislider history --latest --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "l", 20, "Maximum number of records (0 for all)")
	historyCmd.Flags().Bool("latest", false, "Show only the most recent record")
	historyCmd.Flags().Bool("json", false, "Output as JSON")
	historyCmd.Flags().String("journal", "", "Journal file (default: application directory)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, _ := cmd.Flags().GetString("journal")
	if path == "" {
		var err error
		if path, err = journalPath(); err != nil {
			return err
		}
	}

	journal, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = journal.Close() }()

	limit, _ := cmd.Flags().GetInt("limit")
	latest, _ := cmd.Flags().GetBool("latest")
	asJSON, _ := cmd.Flags().GetBool("json")

	var records []store.Record

	switch {
	case len(args) == 1:
		rec, err := journal.Get(args[0])
		if err != nil {
			return err
		}

		records = []store.Record{*rec}
	case latest:
		rec, err := journal.Latest()
		if errors.Is(err, store.ErrNotFound) {
			break
		}

		if err != nil {
			return err
		}

		records = []store.Record{*rec}
	default:
		if records, err = journal.List(limit); err != nil {
			return err
		}
	}

	if asJSON {
		if records == nil {
			records = []store.Record{}
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(records)
	}

	if len(records) == 0 {
		printEmptyResult(cmd, "releases", "tuislider release <version>")
		return nil
	}

	for _, r := range records {
		_, _ = fmt.Fprintln(out, formatRecord(r))
	}

	return nil
}

func formatRecord(r store.Record) string {
	status := string(r.Status)

	switch r.Status {
	case store.StatusSucceeded:
		status = okStyle.Render("✅ " + status)
	case store.StatusFailed:
		status = errStyle.Render("❌ " + status)
	default:
		status = dimStyle.Render("• " + status)
	}

	line := fmt.Sprintf("%s  %-10s %s -> %s  %s",
		r.StartedAt.Local().Format("2006-01-02 15:04"),
		r.Tag,
		r.PreviousVersion,
		r.Version,
		status,
	)

	if d := r.Duration(); d > 0 {
		line += dimStyle.Render(" " + d.Round(time.Second).String())
	}

	line += dimStyle.Render("  " + r.ID[:min(8, len(r.ID))])

	if r.Error != "" {
		line += "\n    " + truncateString(r.Error, 100)
	}

	return line
}
