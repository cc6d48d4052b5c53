package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// Assignment is the row appended to the assignments worksheet after an
// applied run.
type Assignment struct {
	RunID    string
	Date     string
	Leader   string
	Members  []string
	Strategy string
}

// ApplyDeltas increments the Completed cell for each listed athlete. The
// records worksheet is re-read so row positions reflect the sheet as it is
// now, not as it was at fetch time.
func (c *Client) ApplyDeltas(ctx context.Context, ids []string) error {
	rows, err := c.getValues(ctx, c.cfg.RecordsWorksheet)
	if err != nil {
		return fmt.Errorf("apply deltas: %w", err)
	}
	rowByID := make(map[string]int, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) <= colCompleted {
			continue
		}
		rowByID[model.NormalizeID(row[colName])] = i
	}
	// Resolve every athlete before the first write so a bad ID cannot
	// leave the sheet half-incremented.
	for _, id := range ids {
		if _, ok := rowByID[id]; !ok {
			return fmt.Errorf("apply deltas: athlete %s not found in %s", id, c.cfg.RecordsWorksheet)
		}
	}
	for _, id := range ids {
		i := rowByID[id]
		completed, err := strconv.Atoi(strings.TrimSpace(rows[i][colCompleted]))
		if err != nil {
			return fmt.Errorf("apply deltas: athlete %s has bad completed count %q", id, rows[i][colCompleted])
		}
		// Sheet rows are 1-based and the completed count lives in column B.
		cell := fmt.Sprintf("%s!B%d", c.cfg.RecordsWorksheet, i+1)
		if err := c.updateValues(ctx, cell, [][]string{{strconv.Itoa(completed + 1)}}); err != nil {
			return fmt.Errorf("apply deltas: %w", err)
		}
		c.log.Debugf("incremented completed count for %s", id)
	}
	return nil
}

// AppendAssignment records the scheduled team on the assignments worksheet.
func (c *Client) AppendAssignment(ctx context.Context, a Assignment) error {
	row := append([]string{a.RunID, a.Date, a.Leader}, a.Members...)
	row = append(row, a.Strategy)
	if err := c.appendValues(ctx, c.cfg.AssignmentsWorksheet, [][]string{row}); err != nil {
		return fmt.Errorf("append assignment: %w", err)
	}
	return nil
}
