package report

import (
	"fmt"
	"strconv"

	"github.com/username/attendance-tracker/internal/stats"
)

// Kind distinguishes draw instructions
type Kind int

const (
	PlaceText Kind = iota + 1
	PageBreak
)

// Instruction is one step for a document writer: either a line of text at
// (Column, Row) on Page, or a break to a new page.
type Instruction struct {
	Kind   Kind
	Text   string
	Column float64
	Row    float64
	Page   int
}

// Headers are the fixed column labels of the report table
var Headers = []string{"Name", "Present", "Absent", "Late Days", "Working", "Sundays"}

// Layout holds the table coordinates in page units (A4 millimetres by default)
type Layout struct {
	Columns    [6]float64
	TitleRow   float64
	RangeRow   float64
	InfoRow    float64
	HeaderRow  float64
	FirstRow   float64
	RowStep    float64
	PageTop    float64 // first row position after a page break
	PageBottom float64 // a row placed below this starts a new page
	// RepeatHeader prints the header row again at the top of every new page.
	// Off by default: the header appears on the first page only.
	RepeatHeader bool
}

// DefaultLayout returns the A4 portrait layout
func DefaultLayout() Layout {
	return Layout{
		Columns:    [6]float64{10, 60, 90, 120, 150, 180},
		TitleRow:   10,
		RangeRow:   20,
		InfoRow:    30,
		HeaderRow:  40,
		FirstRow:   50,
		RowStep:    10,
		PageTop:    20,
		PageBottom: 280,
	}
}

// Render turns statistics into draw instructions: title, date range, range
// info, header row, then one row per worker in input order, breaking pages when
// the next row would fall below PageBottom.
func Render(result *stats.Result, layout Layout) []Instruction {
	r := &renderer{layout: layout}

	left := layout.Columns[0]
	r.text("Attendance Report", left, layout.TitleRow)
	r.text(fmt.Sprintf("From: %s  To: %s", result.Range.Start, result.Range.End), left, layout.RangeRow)
	r.text(fmt.Sprintf("Working Days: %d  Sundays: %d", result.Range.WorkingDays, result.Range.SundayCount), left, layout.InfoRow)
	r.row(Headers, layout.HeaderRow)

	y := layout.FirstRow
	for _, ws := range result.Workers {
		if y > layout.PageBottom {
			r.pageBreak()
			y = layout.PageTop
			if layout.RepeatHeader {
				r.row(Headers, y)
				y += layout.RowStep
			}
		}
		r.row(workerRow(ws), y)
		y += layout.RowStep
	}

	return r.out
}

func workerRow(ws stats.WorkerStats) []string {
	return []string{
		ws.Name,
		strconv.Itoa(ws.PresentDays),
		strconv.Itoa(ws.AbsentDays),
		strconv.Itoa(ws.LateDays),
		strconv.Itoa(ws.WorkingDays),
		strconv.Itoa(ws.SundayCount),
	}
}

type renderer struct {
	layout Layout
	page   int
	out    []Instruction
}

func (r *renderer) text(s string, x, y float64) {
	r.out = append(r.out, Instruction{Kind: PlaceText, Text: s, Column: x, Row: y, Page: r.page})
}

func (r *renderer) row(cells []string, y float64) {
	for i, cell := range cells {
		r.text(cell, r.layout.Columns[i], y)
	}
}

// pageBreak starts a new page; the instruction carries the new page index
func (r *renderer) pageBreak() {
	r.page++
	r.out = append(r.out, Instruction{Kind: PageBreak, Page: r.page})
}
