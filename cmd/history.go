package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/afscreen/internal/application"
	"github.com/inovacc/afscreen/internal/encoding"
	"github.com/inovacc/afscreen/internal/model"
	"github.com/inovacc/afscreen/internal/store"
	"github.com/spf13/cobra"
)

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List previous generation runs",
	Long: `Lists recorded runs, newest first. Pass a run id to show its details,
including the chunk files that were written.

Examples:
  afscreen history
  afscreen history --limit 5
  afscreen history --json
  afscreen history 3f2b9c1e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of runs to list (0 for all)")
	historyCmd.Flags().Bool("json", false, "print the runs as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := application.Path(application.HistoryFileName)
	if err != nil {
		return err
	}

	s, err := store.Open(currentConfig().History.Backend, path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() { _ = s.Close() }()

	return showHistory(cmd, s, args)
}

func showHistory(cmd *cobra.Command, s store.Store, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	if len(args) == 1 {
		run, err := s.GetRun(args[0])
		if err != nil {
			return err
		}

		if asJSON {
			return encoding.EncodePretty(cmd.OutOrStdout(), run)
		}

		printRun(cmd, run)

		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")

	runs, err := s.ListRuns(limit)
	if err != nil {
		return err
	}

	if asJSON {
		if runs == nil {
			runs = []model.Run{}
		}

		return encoding.EncodePretty(cmd.OutOrStdout(), runs)
	}

	return printRuns(cmd, runs)
}

func printRuns(cmd *cobra.Command, runs []model.Run) error {
	out := cmd.OutOrStdout()

	if len(runs) == 0 {
		printEmptyResult(out, "runs", "afscreen generate")
		return nil
	}

	for _, run := range runs {
		dest := run.Destination
		if dest == "" {
			dest = "stdout"
		}

		_, _ = fmt.Fprintf(out, "%s  %s  %s  %s\n",
			okStyle.Render(run.ID),
			run.CreatedAt.Local().Format(time.DateTime),
			fmt.Sprintf("%d×%d=%d jobs", run.Targets, run.Chains, run.Jobs),
			dimStyle.Render(dest))
	}

	return nil
}

func printRun(cmd *cobra.Command, run *model.Run) {
	items := map[string]string{
		"ID":              run.ID,
		"Created":         run.CreatedAt.Local().Format(time.DateTime),
		"CSV":             run.CSVPath,
		"Name column":     run.NameColumn,
		"Sequence column": run.SequenceColumn,
		"Targets":         strconv.Itoa(run.Targets),
		"Chains":          strconv.Itoa(run.Chains),
		"Jobs":            strconv.Itoa(run.Jobs),
		"Skipped rows":    joinInts(run.SkippedRows),
		"Destination":     run.Destination,
	}
	order := []string{"ID", "Created", "CSV", "Name column", "Sequence column",
		"Targets", "Chains", "Jobs", "Skipped rows", "Destination"}

	for i, f := range run.Files {
		key := fmt.Sprintf("File %d", i+1)
		items[key] = f
		order = append(order, key)
	}

	printInfoBox(cmd.OutOrStdout(), "Run", items, order)
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "none"
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
