package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule/history"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/pkg/export"
)

var (
	historyDate   string
	historySince  string
	historyLimit  int
	historyStats  bool
	historyOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query past scheduling runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDate, "date", "", "filter by shift date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "only runs created on or after this date (YYYY-MM-DD)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum number of records (0 = all)")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "append the roster fairness report")
	historyCmd.Flags().StringVar(&historyOutput, "output", "csv", "output format: csv or json")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	q := history.Query{Date: historyDate, Limit: historyLimit}
	if historySince != "" {
		since, err := time.Parse("2006-01-02", historySince)
		if err != nil {
			return fmt.Errorf("invalid --since date %q", historySince)
		}
		q.Since = since
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	recs, err := svc.History(ctx, q)
	if err != nil {
		return err
	}
	switch historyOutput {
	case "json":
		err = export.WriteHistoryJSON(cmd.OutOrStdout(), recs)
	case "csv":
		err = export.WriteHistoryCSV(cmd.OutOrStdout(), recs)
	default:
		return fmt.Errorf("unknown output format %q", historyOutput)
	}
	if err != nil {
		return err
	}
	if historyStats {
		r, err := svc.Fairness(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Fairness: mean=%.2f stddev=%.2f min=%d max=%d spread=%d (%d athletes)\n",
			r.Mean, r.StdDev, r.Min, r.Max, r.Spread(), r.Athletes)
	}
	return nil
}
