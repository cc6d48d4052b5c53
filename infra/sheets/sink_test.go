package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyDeltas(t *testing.T) {
	mock := NewServerMock(map[string][][]string{"Records": recordsFixture()})
	defer mock.Close()
	client := NewClient(testConfig(mock.URL()))

	err := client.ApplyDeltas(context.Background(), []string{"lena ruiz", "ana kim"})
	require.NoError(t, err)

	rows := mock.Rows("Records")
	require.Equal(t, "3", rows[1][colCompleted], "Lena 2 -> 3")
	require.Equal(t, "1", rows[2][colCompleted], "Ana 0 -> 1")
	require.Equal(t, []string{"Records!B2", "Records!B3"}, mock.Updates(), "one update per athlete, exactly once")
}

func TestApplyDeltas_UnknownAthlete(t *testing.T) {
	mock := NewServerMock(map[string][][]string{"Records": recordsFixture()})
	defer mock.Close()
	client := NewClient(testConfig(mock.URL()))

	err := client.ApplyDeltas(context.Background(), []string{"nobody"})
	require.Error(t, err)
	require.Empty(t, mock.Updates(), "no partial writes before the lookup fails")
}

func TestAppendAssignment(t *testing.T) {
	mock := NewServerMock(map[string][][]string{"Assignments": {}})
	defer mock.Close()
	client := NewClient(testConfig(mock.URL()))

	err := client.AppendAssignment(context.Background(), Assignment{
		RunID:    "run1",
		Date:     "2026-01-05",
		Leader:   "Lena Ruiz",
		Members:  []string{"Ana Kim", "Brett Cole"},
		Strategy: "greedy",
	})
	require.NoError(t, err)

	appended := mock.Appends("Assignments")
	require.Len(t, appended, 1)
	require.Equal(t, []string{"run1", "2026-01-05", "Lena Ruiz", "Ana Kim", "Brett Cole", "greedy"}, appended[0])
}
