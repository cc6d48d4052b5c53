package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/config"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

func testConfig(baseURL string) config.SheetsConfig {
	cfg := config.SheetsConfig{SpreadsheetID: "sheet123", APIKey: "key", BaseURL: baseURL}
	cfg.SetDefaults()
	return cfg
}

func recordsFixture() [][]string {
	return [][]string{
		{"Name", "Completed", "Experience", "Position", "Active"},
		{"Lena Ruiz", "2", "Varsity", "Leader", "TRUE"},
		{" Ana Kim ", "0", "novice", "Member", ""},
		{"Brett Cole", "5", "Varsity", "Member", "FALSE"},
		{"Drew Ames", "not-a-number", "Varsity", "Member", "TRUE"},
		{"Eli Shaw", "1", "Wizard", "Member", "TRUE"},
	}
}

func TestFetchRoster(t *testing.T) {
	mock := NewServerMock(map[string][][]string{"Records": recordsFixture()})
	defer mock.Close()
	client := NewClient(testConfig(mock.URL()))

	entries, err := client.FetchRoster(context.Background())
	require.NoError(t, err)
	// Drew (bad count) and Eli (unknown experience) are skipped.
	require.Len(t, entries, 3)

	roster := model.NewRoster(entries)
	lena := roster["lena ruiz"]
	require.Equal(t, model.Varsity, lena.Experience)
	require.True(t, lena.LeaderQualified)
	require.True(t, lena.Active)
	require.Equal(t, 2, lena.ShiftsCompleted)

	ana := roster["ana kim"]
	require.Equal(t, "Ana Kim", ana.Name, "names are trimmed")
	require.False(t, ana.LeaderQualified)
	require.True(t, ana.Active, "blank active defaults to true")

	require.False(t, roster["brett cole"].Active)
}

func TestFetchSubmissions_WeekdaySynthesis(t *testing.T) {
	responses := [][]string{
		{"Timestamp", "Name", "Days", "Replacement"},
		{"2026-01-04 18:00:00", "Ana Kim", "Monday, Wednesday", "TRUE"},
		{"1/4/2026 19:30:00", "Brett Cole", "monday", "TRUE"},
		{"2026-01-04T20:00:00Z", "Lena Ruiz", "Tuesday", "TRUE"},
		{"2026-01-04 21:00:00", "Eli Shaw", "", "TRUE"},
	}
	mock := NewServerMock(map[string][][]string{"Responses": responses})
	defer mock.Close()
	client := NewClient(testConfig(mock.URL()))

	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // a Monday
	subs, err := client.FetchSubmissions(context.Background(), monday)
	require.NoError(t, err)
	require.Len(t, subs, 2, "only Monday respondents synthesized")

	byID := make(map[string]model.AvailabilitySubmission, len(subs))
	for _, s := range subs {
		require.True(t, s.Available)
		require.True(t, model.SameDay(s.ShiftDate, monday))
		byID[s.AthleteID] = s
	}
	require.Contains(t, byID, "ana kim")
	require.Contains(t, byID, "brett cole")
	require.Equal(t, time.Date(2026, 1, 4, 18, 0, 0, 0, time.UTC), byID["ana kim"].SubmittedAt)
	require.Equal(t, time.Date(2026, 1, 4, 19, 30, 0, 0, time.UTC), byID["brett cole"].SubmittedAt)
}

func TestFetchSubmissions_TimestampFallback(t *testing.T) {
	responses := [][]string{
		{"Timestamp", "Name", "Days", "Replacement"},
		{"garbage", "Ana Kim", "Monday", "TRUE"},
		{"also garbage", "Ana Kim", "Monday", "TRUE"},
	}
	mock := NewServerMock(map[string][][]string{"Responses": responses})
	defer mock.Close()
	client := NewClient(testConfig(mock.URL()))

	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	subs, err := client.FetchSubmissions(context.Background(), monday)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	// Later sheet rows get later synthetic timestamps, so duplicate
	// resolution keeps the later row.
	require.True(t, subs[1].SubmittedAt.After(subs[0].SubmittedAt))
}

func TestFetchRoster_WorksheetMissing(t *testing.T) {
	mock := NewServerMock(nil)
	defer mock.Close()
	client := NewClient(testConfig(mock.URL()))

	_, err := client.FetchRoster(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
}
