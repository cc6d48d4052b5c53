package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule"
)

func samplePlan() schedule.Plan {
	leader := model.Candidate{RosterEntry: model.RosterEntry{ID: "lena ruiz", Name: "Lena Ruiz", Experience: model.Varsity, LeaderQualified: true}}
	member := model.Candidate{RosterEntry: model.RosterEntry{ID: "ana kim", Name: "Ana Kim", Experience: model.Novice}}
	return schedule.Plan{Entries: []schedule.PlanEntry{
		{
			Date:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			Team:     model.Team{Leader: leader, Members: []model.Candidate{member}},
			Strategy: schedule.StrategyGreedy,
		},
		{
			Date: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
			Err:  errors.New("not enough candidates for a full team"),
		},
	}}
}

func TestWritePlanCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlanCSV(&buf, samplePlan()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "2026-01-05") || !strings.Contains(lines[1], "Lena Ruiz") {
		t.Errorf("scheduled row malformed: %s", lines[1])
	}
	if !strings.Contains(lines[2], "not enough candidates") {
		t.Errorf("failed row should carry the error: %s", lines[2])
	}
}

func TestWritePlanJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlanJSON(&buf, samplePlan()); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var rows []PlanRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Leader != "Lena Ruiz" || rows[0].Varsity != 1 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Error == "" {
		t.Errorf("second row should carry the error")
	}
}
