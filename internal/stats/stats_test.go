package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/attendance-tracker/internal/attendance"
	"github.com/username/attendance-tracker/internal/calendar"
	"github.com/username/attendance-tracker/pkg/dateutil"
)

func date(t *testing.T, s string) dateutil.Date {
	t.Helper()
	d, err := dateutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func markPresent(t *testing.T, r attendance.Roster, index int, day, at string) attendance.Roster {
	t.Helper()
	clock, err := dateutil.ParseClock(at)
	require.NoError(t, err)

	r, err = r.SetStatus(index, date(t, day))
	require.NoError(t, err)
	r, err = r.SetArrivalTime(index, date(t, day), clock)
	require.NoError(t, err)
	return r
}

func ashaRoster(t *testing.T) attendance.Roster {
	t.Helper()
	r, err := attendance.NewRoster().AddWorker("Asha")
	require.NoError(t, err)
	return r
}

func TestCompute_NoRecords(t *testing.T) {
	result, err := ComputeStrings(ashaRoster(t), "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	assert.Equal(t, 7, result.Range.TotalDays)
	assert.Equal(t, 1, result.Range.SundayCount)
	require.Len(t, result.Workers, 1)
	assert.Equal(t, WorkerStats{
		Name:        "Asha",
		PresentDays: 0,
		AbsentDays:  6,
		LateDays:    0,
		WorkingDays: 6,
		SundayCount: 1,
	}, result.Workers[0])
}

func TestCompute_PresentAndLate(t *testing.T) {
	r := ashaRoster(t)
	r = markPresent(t, r, 0, "2024-01-03", "09:00")
	r = markPresent(t, r, 0, "2024-01-04", "10:30")

	result, err := ComputeStrings(r, "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	assert.Equal(t, WorkerStats{
		Name:        "Asha",
		PresentDays: 2,
		AbsentDays:  4,
		LateDays:    1,
		WorkingDays: 6,
		SundayCount: 1,
	}, result.Workers[0])
}

func TestCompute_AbsentRecordCountsAsAbsent(t *testing.T) {
	r := ashaRoster(t)
	// Edited time without marking present leaves an Absent record
	r, err := r.SetArrivalTime(0, date(t, "2024-01-02"), dateutil.Clock{Hour: 11})
	require.NoError(t, err)

	result, err := ComputeStrings(r, "2024-01-01", "2024-01-06")
	require.NoError(t, err)

	ws := result.Workers[0]
	assert.Equal(t, 0, ws.PresentDays)
	assert.Equal(t, 0, ws.LateDays)
	assert.Equal(t, ws.WorkingDays, ws.AbsentDays)
}

func TestCompute_OnlySundays(t *testing.T) {
	r := ashaRoster(t)
	r, err := r.AddWorker("Ravi")
	require.NoError(t, err)

	result, err := ComputeStrings(r, "2024-01-07", "2024-01-07")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Range.TotalDays)
	assert.Equal(t, 0, result.Range.WorkingDays)
	for _, ws := range result.Workers {
		assert.Equal(t, 0, ws.AbsentDays, ws.Name)
	}
}

func TestCompute_PresentOnSundayStillCounts(t *testing.T) {
	r := markPresent(t, ashaRoster(t), 0, "2024-01-07", "10:00")

	result, err := ComputeStrings(r, "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	ws := result.Workers[0]
	assert.Equal(t, 1, ws.PresentDays)
	assert.Equal(t, 1, ws.LateDays)
	assert.Equal(t, 6, ws.AbsentDays)
}

func TestCompute_RosterOrderAndDaily(t *testing.T) {
	r := ashaRoster(t)
	r, err := r.AddWorker("Ravi")
	require.NoError(t, err)
	r = markPresent(t, r, 1, "2024-01-02", "09:15")

	result, err := ComputeStrings(r, "2024-01-01", "2024-01-03")
	require.NoError(t, err)

	require.Len(t, result.Workers, 2)
	assert.Equal(t, "Asha", result.Workers[0].Name)
	assert.Equal(t, "Ravi", result.Workers[1].Name)

	require.Len(t, result.Daily, 3)
	assert.Equal(t, DayStats{Date: date(t, "2024-01-02"), Present: 1, Late: 1, Absent: 1}, result.Daily[1])
	assert.Equal(t, 2, result.Daily[0].Absent)
}

func TestCompute_NoWorkersInMidRange(t *testing.T) {
	result, err := Compute(attendance.NewRoster(), date(t, "2024-02-28"), date(t, "2024-03-01"))
	require.NoError(t, err)
	assert.Empty(t, result.Workers)
	assert.Equal(t, 3, result.Range.TotalDays)
}

func TestCompute_InvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"inverted", "2024-01-07", "2024-01-01"},
		{"malformed", "2024-01-01", "2024-01-32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeStrings(ashaRoster(t), tt.start, tt.end)
			assert.ErrorIs(t, err, calendar.ErrInvalidRange)
			assert.Nil(t, result)
		})
	}
}

func TestCompute_TotalsAcrossRanges(t *testing.T) {
	start := dateutil.Date{Year: 2023, Month: time.November, Day: 20}
	for days := 0; days < 60; days += 7 {
		end := start.AddDays(days)
		result, err := Compute(ashaRoster(t), start, end)
		require.NoError(t, err)

		assert.Equal(t, days+1, result.Range.TotalDays)
		assert.Equal(t, result.Range.TotalDays, result.Range.SundayCount+result.Range.WorkingDays)
		assert.Equal(t, result.Range.WorkingDays, result.Workers[0].AbsentDays)
	}
}

func TestCompute_SnapshotIsolation(t *testing.T) {
	r := ashaRoster(t)
	result, err := ComputeStrings(r, "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	_ = markPresent(t, r, 0, "2024-01-03", "09:00")
	assert.Equal(t, 0, result.Workers[0].PresentDays)
}
