package cli

import (
	"errors"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
	historyDays  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded invocations",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent invocations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [invocation-id]",
	Short: "Show one invocation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old invocations",
	Long: `Delete invocations older than --days. Without --days the configured
history.retention_days is used.`,
	Args: cobra.NoArgs,
	RunE: runHistoryPrune,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of invocations")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyPruneCmd.Flags().IntVar(&historyDays, "days", 0, "age in days (0 = configured retention)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	list, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if historyJSON {
		return printJSON(cmd, list)
	}

	if len(list) == 0 {
		cmd.Println("No invocations recorded.")
		return nil
	}

	for i := range list {
		inv := &list[i]
		status := string(inv.Status)
		if inv.StatusCode != 0 {
			status = status + " " + strconv.Itoa(inv.StatusCode)
		}
		cmd.Printf("  %s  %s  %-40s %-14s %s\n",
			inv.ID, inv.StartedAt.Local().Format(time.DateTime), inv.BlockID, status,
			inv.Duration.Round(time.Millisecond))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	inv, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, inv)
}

func runHistoryPrune(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	removed, err := historyService.Prune(cmd.Context(), historyDays)
	if err != nil {
		return err
	}
	cmd.Printf("Removed %d invocations.\n", removed)
	return nil
}
