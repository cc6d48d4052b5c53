package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var checkDate string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Pre-flight data quality check without scheduling",
	Long: `Fetches both worksheets and reports duplicate submissions, unknown or
deactivated submitters, and active athletes who have not responded.
Exits non-zero when anything is found.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkDate, "date", "d", "", "shift date (YYYY-MM-DD or weekday name)")
	_ = checkCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	date, err := resolveDate(checkDate, time.Now())
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	report, err := svc.Check(ctx, date)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d candidate(s) for %s\n", report.Candidates, date.Format("2006-01-02"))
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	for _, name := range report.NotResponded {
		fmt.Fprintf(out, "no response: %s\n", name)
	}
	if n := report.Findings(); n > 0 {
		return fmt.Errorf("check found %d issue(s)", n)
	}
	fmt.Fprintln(out, "ok")
	return nil
}
