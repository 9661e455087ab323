package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/username/attendance-tracker/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	sundayStyle = numberStyle.Faint(true)
)

// Table renders the per-worker statistics as a terminal table
func Table(result *stats.Result) string {
	rows := make([][]string, 0, len(result.Workers))
	for _, ws := range result.Workers {
		rows = append(rows, workerRow(ws))
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			}
			return numberStyle
		}).
		String()
}

// DailyTable renders the per-day breakdown; Sundays are dimmed
func DailyTable(result *stats.Result) string {
	rows := make([][]string, 0, len(result.Daily))
	for _, day := range result.Daily {
		weekday := day.Date.Weekday().String()[:3]
		rows = append(rows, []string{
			day.Date.String(),
			weekday,
			strconv.Itoa(day.Present),
			strconv.Itoa(day.Late),
			strconv.Itoa(day.Absent),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Day", "Present", "Late", "Absent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(result.Daily) && result.Daily[row].IsSunday:
				return sundayStyle
			case col < 2:
				return cellStyle
			}
			return numberStyle
		}).
		String()
}
