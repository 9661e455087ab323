package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/attendance-tracker/internal/attendance"
	"github.com/username/attendance-tracker/internal/stats"
)

func statsFor(t *testing.T, workers int) *stats.Result {
	t.Helper()
	r := attendance.NewRoster()
	for i := 0; i < workers; i++ {
		var err error
		r, err = r.AddWorker(fmt.Sprintf("Worker %02d", i))
		require.NoError(t, err)
	}
	result, err := stats.ComputeStrings(r, "2024-01-01", "2024-01-07")
	require.NoError(t, err)
	return result
}

func texts(instructions []Instruction) []string {
	var out []string
	for _, in := range instructions {
		if in.Kind == PlaceText {
			out = append(out, in.Text)
		}
	}
	return out
}

func countBreaks(instructions []Instruction) int {
	n := 0
	for _, in := range instructions {
		if in.Kind == PageBreak {
			n++
		}
	}
	return n
}

func TestRender_SingleWorker(t *testing.T) {
	layout := DefaultLayout()
	instructions := Render(statsFor(t, 1), layout)

	assert.Equal(t, []string{
		"Attendance Report",
		"From: 2024-01-01  To: 2024-01-07",
		"Working Days: 6  Sundays: 1",
		"Name", "Present", "Absent", "Late Days", "Working", "Sundays",
		"Worker 00", "0", "6", "0", "6", "1",
	}, texts(instructions))

	header := instructions[3:9]
	row := instructions[9:15]
	for i := range header {
		assert.Equal(t, layout.Columns[i], header[i].Column)
		assert.Equal(t, layout.HeaderRow, header[i].Row)
		assert.Equal(t, layout.Columns[i], row[i].Column)
		assert.Equal(t, layout.FirstRow, row[i].Row)
		assert.Equal(t, 0, row[i].Page)
	}
	assert.Equal(t, 0, countBreaks(instructions))
}

func TestRender_NoWorkers(t *testing.T) {
	instructions := Render(statsFor(t, 0), DefaultLayout())
	assert.Len(t, instructions, 9)
	assert.Equal(t, 0, countBreaks(instructions))
}

func TestRender_Pagination(t *testing.T) {
	layout := DefaultLayout()
	// First page holds rows at 50..280, later pages 20..280
	firstPage := int((layout.PageBottom-layout.FirstRow)/layout.RowStep) + 1
	nextPage := int((layout.PageBottom-layout.PageTop)/layout.RowStep) + 1

	tests := []struct {
		name       string
		workers    int
		wantBreaks int
	}{
		{"fits first page", firstPage, 0},
		{"one row over", firstPage + 1, 1},
		{"fills second page", firstPage + nextPage, 1},
		{"spills to third page", firstPage + nextPage + 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := statsFor(t, tt.workers)
			instructions := Render(result, layout)

			assert.Equal(t, tt.wantBreaks, countBreaks(instructions))

			headerCount := 0
			page := 0
			rowIndex := 0
			for _, in := range instructions {
				switch {
				case in.Kind == PageBreak:
					page++
					assert.Equal(t, page, in.Page)
				case in.Text == "Name":
					headerCount++
				case in.Column == layout.Columns[0] && strings.HasPrefix(in.Text, "Worker "):
					require.Less(t, rowIndex, len(result.Workers))
					assert.Equal(t, result.Workers[rowIndex].Name, in.Text)
					assert.Equal(t, page, in.Page)
					assert.LessOrEqual(t, in.Row, layout.PageBottom)
					rowIndex++
				}
			}
			assert.Equal(t, 1, headerCount, "header is printed once")
			assert.Equal(t, tt.workers, rowIndex, "rows keep input order")
		})
	}
}

func TestRender_PageBreakResetsToTop(t *testing.T) {
	layout := DefaultLayout()
	result := statsFor(t, 30)
	instructions := Render(result, layout)

	for i, in := range instructions {
		if in.Kind != PageBreak {
			continue
		}
		require.Less(t, i+1, len(instructions))
		next := instructions[i+1]
		assert.Equal(t, layout.PageTop, next.Row)
		assert.Equal(t, in.Page, next.Page)
	}
}

func TestRender_RepeatHeader(t *testing.T) {
	layout := DefaultLayout()
	layout.RepeatHeader = true
	instructions := Render(statsFor(t, 30), layout)

	headers := 0
	for _, in := range instructions {
		if in.Text == "Name" {
			headers++
			if in.Page > 0 {
				assert.Equal(t, layout.PageTop, in.Row)
			}
		}
	}
	assert.Equal(t, countBreaks(instructions)+1, headers)
}
