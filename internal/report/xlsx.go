package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Attendance"

// XLSXWriter lays instructions out on a single worksheet. Each distinct
// (page, row) becomes one sheet row and each layout column one sheet column;
// page breaks are dropped.
type XLSXWriter struct {
	Layout Layout
}

// NewXLSXWriter returns a writer that maps columns of layout
func NewXLSXWriter(layout Layout) *XLSXWriter {
	return &XLSXWriter{Layout: layout}
}

// Extension returns "xlsx"
func (x *XLSXWriter) Extension() string {
	return "xlsx"
}

// Write renders instructions as a workbook to w
func (x *XLSXWriter) Write(w io.Writer, instructions []Instruction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetColWidth(xlsxSheet, "A", "A", 28); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	sheetRow := 0
	lastPage, lastRow := -1, -1.0
	for _, in := range instructions {
		if in.Kind != PlaceText {
			continue
		}
		if in.Page != lastPage || in.Row != lastRow {
			sheetRow++
			lastPage, lastRow = in.Page, in.Row
		}

		col := x.column(in.Column)
		cell, err := excelize.CoordinatesToCellName(col, sheetRow)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}

		var value interface{} = in.Text
		if col > 1 {
			if n, err := strconv.Atoi(in.Text); err == nil {
				value = n
			}
		}
		if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", cell, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// column returns the 1-based sheet column for an x position
func (x *XLSXWriter) column(pos float64) int {
	for i, c := range x.Layout.Columns {
		if c == pos {
			return i + 1
		}
	}
	return 1
}
