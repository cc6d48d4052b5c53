// Package export renders multi-date plans and history records for the CLI.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule/history"
)

// PlanRow is the flat, serializable view of one plan entry.
type PlanRow struct {
	Date     string   `json:"date"`
	Leader   string   `json:"leader,omitempty"`
	Members  []string `json:"members,omitempty"`
	Varsity  int      `json:"varsity_count,omitempty"`
	Strategy string   `json:"strategy,omitempty"`
	Warnings int      `json:"warnings"`
	Error    string   `json:"error,omitempty"`
}

// PlanRows flattens a plan for export.
func PlanRows(plan schedule.Plan) []PlanRow {
	rows := make([]PlanRow, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		row := PlanRow{Date: model.DateKey(e.Date), Warnings: len(e.Warnings)}
		if e.Err != nil {
			row.Error = e.Err.Error()
		} else {
			row.Leader = e.Team.Leader.Name
			for _, m := range e.Team.Members {
				row.Members = append(row.Members, m.Name)
			}
			row.Varsity = e.Team.VarsityCount()
			row.Strategy = string(e.Strategy)
		}
		rows = append(rows, row)
	}
	return rows
}

// WritePlanJSON writes the plan to w in JSON format.
func WritePlanJSON(w io.Writer, plan schedule.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(PlanRows(plan))
}

// WritePlanCSV writes the plan to w in CSV format, one row per date.
func WritePlanCSV(w io.Writer, plan schedule.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "leader", "members", "varsity_count", "strategy", "warnings", "error"}); err != nil {
		return err
	}
	for _, row := range PlanRows(plan) {
		rec := []string{
			row.Date,
			row.Leader,
			strings.Join(row.Members, "; "),
			strconv.Itoa(row.Varsity),
			row.Strategy,
			strconv.Itoa(row.Warnings),
			row.Error,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHistoryJSON writes history records to w in JSON format.
func WriteHistoryJSON(w io.Writer, recs []history.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

// WriteHistoryCSV writes history records to w in CSV format.
func WriteHistoryCSV(w io.Writer, recs []history.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "date", "leader", "members", "varsity_count", "strategy", "warnings", "outcome", "created_at"}); err != nil {
		return err
	}
	for _, r := range recs {
		rec := []string{
			r.RunID,
			r.Date,
			r.LeaderID,
			strings.Join(r.MemberIDs, "; "),
			strconv.Itoa(r.VarsityCount),
			r.Strategy,
			strconv.Itoa(r.WarningCount),
			r.Outcome,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
