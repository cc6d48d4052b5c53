package config

import (
	"fmt"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/auth"
)

// SheetsConfig defines the spreadsheet backend: which document to read,
// which worksheets hold the roster and the responses, and the credentials
// for reads (API key) and writes (OAuth2 client credentials).
type SheetsConfig struct {
	SpreadsheetID        string    `json:"spreadsheet_id"`
	APIKey               string    `json:"api_key"`
	BaseURL              string    `json:"base_url"`
	TimeoutSeconds       int       `json:"timeout_seconds"`
	ResponsesWorksheet   string    `json:"responses_worksheet"`
	RecordsWorksheet     string    `json:"records_worksheet"`
	AssignmentsWorksheet string    `json:"assignments_worksheet"`
	Auth                 auth.Conf `json:"auth"`
}

// SetDefaults applies sane defaults.
func (c *SheetsConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://sheets.googleapis.com"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.ResponsesWorksheet == "" {
		c.ResponsesWorksheet = "Responses"
	}
	if c.RecordsWorksheet == "" {
		c.RecordsWorksheet = "Records"
	}
	if c.AssignmentsWorksheet == "" {
		c.AssignmentsWorksheet = "Assignments"
	}
}

// Validate checks mandatory fields.
func (c SheetsConfig) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet_id is required")
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
