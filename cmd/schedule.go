package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/logger"
)

var (
	scheduleDate    string
	scheduleVerbose bool
	scheduleDryRun  bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule one team for a shift date",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&scheduleDate, "date", "d", "", "shift date (YYYY-MM-DD or weekday name)")
	scheduleCmd.Flags().BoolVarP(&scheduleVerbose, "verbose", "v", false, "print the ranked candidates and fairness report")
	scheduleCmd.Flags().BoolVar(&scheduleDryRun, "dry-run", false, "compute the team without writing anything back")
	_ = scheduleCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	date, err := resolveDate(scheduleDate, time.Now())
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.MetricsAddr() != "" {
		go func() {
			if err := svc.StartMetricsServer(ctx); err != nil {
				logger.New("main").Errorf("metrics server: %v", err)
			}
		}()
	}

	if scheduleVerbose {
		ranked, _, err := svc.Ranked(ctx, date)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Ranked candidates for %s:\n", date.Format("2006-01-02"))
		for i, c := range ranked {
			leader := ""
			if c.LeaderQualified {
				leader = " (leader-qualified)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-24s %-8s shifts=%d%s\n", i+1, c.Name, c.Experience, c.ShiftsCompleted, leader)
		}
	}

	res, err := svc.RunOnce(ctx, date, scheduleDryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range res.Outcome.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	team := res.Outcome.Team
	fmt.Fprintf(out, "Team for %s (%s):\n", date.Format("2006-01-02"), res.Outcome.Strategy)
	fmt.Fprintf(out, "  Leader: %s (%s, %d shifts)\n", team.Leader.Name, team.Leader.Experience, team.Leader.ShiftsCompleted)
	for _, m := range team.Members {
		fmt.Fprintf(out, "  Member: %s (%s, %d shifts)\n", m.Name, m.Experience, m.ShiftsCompleted)
	}
	fmt.Fprintf(out, "  Varsity: %d\n", team.VarsityCount())
	if scheduleDryRun {
		fmt.Fprintln(out, "dry run: no writeback applied")
	}
	if scheduleVerbose {
		r := res.Report
		fmt.Fprintf(out, "Fairness after run: mean=%.2f stddev=%.2f spread=%d (%d athletes)\n",
			r.Mean, r.StdDev, r.Spread(), r.Athletes)
	}
	return nil
}
