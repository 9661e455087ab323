package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// PDFWriter draws instructions onto A4 pages
type PDFWriter struct {
	FontFamily string
	FontSize   float64
}

// NewPDFWriter returns a writer using the Helvetica core font
func NewPDFWriter() *PDFWriter {
	return &PDFWriter{FontFamily: "Helvetica", FontSize: 12}
}

// Extension returns "pdf"
func (p *PDFWriter) Extension() string {
	return "pdf"
}

// Write renders instructions as a PDF document to w
func (p *PDFWriter) Write(w io.Writer, instructions []Instruction) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(p.FontFamily, "", p.FontSize)

	// Core fonts are cp1252; worker names may hold any UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, in := range instructions {
		switch in.Kind {
		case PageBreak:
			pdf.AddPage()
		case PlaceText:
			pdf.Text(in.Column, in.Row, tr(in.Text))
		default:
			return fmt.Errorf("unknown instruction kind %d", in.Kind)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
