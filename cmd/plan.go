package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/pkg/export"
)

var (
	planFrom   string
	planDays   int
	planOutput string
	planApply  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview a multi-date schedule",
	Long: `Schedules consecutive dates with fairness deltas carried forward, so an
athlete assigned on one date ranks lower on the next. The default is a pure
preview; --apply persists the writeback for every scheduled date.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planFrom, "from", "", "first shift date (YYYY-MM-DD or weekday name)")
	planCmd.Flags().IntVar(&planDays, "days", 7, "number of consecutive dates to plan")
	planCmd.Flags().StringVar(&planOutput, "output", "csv", "output format: csv or json")
	planCmd.Flags().BoolVar(&planApply, "apply", false, "persist deltas and assignments for scheduled dates")
	_ = planCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	from, err := resolveDate(planFrom, time.Now())
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	plan, err := svc.PlanRange(ctx, from, planDays)
	if err != nil {
		return err
	}
	switch planOutput {
	case "json":
		err = export.WritePlanJSON(cmd.OutOrStdout(), plan)
	case "csv":
		err = export.WritePlanCSV(cmd.OutOrStdout(), plan)
	default:
		return fmt.Errorf("unknown output format %q", planOutput)
	}
	if err != nil {
		return err
	}
	if planApply {
		if err := svc.ApplyPlan(ctx, plan); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "applied %d scheduled date(s)\n", len(plan.Scheduled()))
	}
	return nil
}
