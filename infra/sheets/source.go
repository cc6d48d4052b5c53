package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// Records worksheet column layout, after the header row.
const (
	colName = iota
	colCompleted
	colExperience
	colPosition
	colActive
)

// Responses worksheet column layout, after the header row.
const (
	colTimestamp = iota
	colRespName
	colDays
)

var timestampLayouts = []string{
	time.RFC3339,
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
}

// FetchRoster reads the records worksheet into roster entries. Rows that
// cannot be parsed are skipped with a warning log; the fetch itself only
// fails when the sheet cannot be read.
func (c *Client) FetchRoster(ctx context.Context) ([]model.RosterEntry, error) {
	rows, err := c.getValues(ctx, c.cfg.RecordsWorksheet)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	var entries []model.RosterEntry
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		entry, err := parseRosterRow(row)
		if err != nil {
			c.log.Warnf("records row %d skipped: %v", i+1, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseRosterRow(row []string) (model.RosterEntry, error) {
	if len(row) <= colExperience {
		return model.RosterEntry{}, fmt.Errorf("expected at least %d columns, got %d", colExperience+1, len(row))
	}
	name := strings.TrimSpace(row[colName])
	if name == "" {
		return model.RosterEntry{}, fmt.Errorf("empty name")
	}
	completed, err := strconv.Atoi(strings.TrimSpace(row[colCompleted]))
	if err != nil || completed < 0 {
		return model.RosterEntry{}, fmt.Errorf("bad completed count %q", row[colCompleted])
	}
	exp, err := model.ParseExperience(row[colExperience])
	if err != nil {
		return model.RosterEntry{}, err
	}
	entry := model.RosterEntry{
		ID:              model.NormalizeID(name),
		Name:            name,
		Experience:      exp,
		ShiftsCompleted: completed,
		Active:          true,
	}
	if len(row) > colPosition {
		entry.LeaderQualified = strings.EqualFold(strings.TrimSpace(row[colPosition]), "Leader")
	}
	if len(row) > colActive {
		entry.Active = parseBoolDefaultTrue(row[colActive])
	}
	return entry, nil
}

func parseBoolDefaultTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "no", "0":
		return false
	default:
		return true
	}
}

// FetchSubmissions reads the responses worksheet and synthesizes one
// availability submission per respondent whose chosen weekdays include the
// target date's. Rows with an unparseable timestamp keep their sheet order
// as a synthetic timestamp so duplicate resolution still favors later rows.
func (c *Client) FetchSubmissions(ctx context.Context, targetDate time.Time) ([]model.AvailabilitySubmission, error) {
	rows, err := c.getValues(ctx, c.cfg.ResponsesWorksheet)
	if err != nil {
		return nil, fmt.Errorf("submissions: %w", err)
	}
	weekday := targetDate.Weekday().String()
	var subs []model.AvailabilitySubmission
	for i, row := range rows {
		if i == 0 || len(row) <= colDays {
			continue
		}
		name := strings.TrimSpace(row[colRespName])
		if name == "" {
			continue
		}
		if !weekdayListed(row[colDays], weekday) {
			continue
		}
		ts, ok := parseTimestamp(row[colTimestamp])
		if !ok {
			c.log.Warnf("responses row %d: unparseable timestamp %q, using row order", i+1, row[colTimestamp])
			ts = time.Time{}.Add(time.Duration(i) * time.Second)
		}
		subs = append(subs, model.AvailabilitySubmission{
			AthleteID:   model.NormalizeID(name),
			ShiftDate:   targetDate,
			SubmittedAt: ts,
			Available:   true,
		})
	}
	return subs, nil
}

func weekdayListed(days, weekday string) bool {
	for _, d := range strings.Split(days, ",") {
		if strings.EqualFold(strings.TrimSpace(d), weekday) {
			return true
		}
	}
	return false
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
