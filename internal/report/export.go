package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/username/attendance-tracker/internal/stats"
	"go.uber.org/zap"
)

// Writer turns draw instructions into a document
type Writer interface {
	Write(w io.Writer, instructions []Instruction) error
	Extension() string
}

// FileName returns attendance_<start>_to_<end>.<ext>
func FileName(start, end, ext string) string {
	return fmt.Sprintf("attendance_%s_to_%s.%s", start, end, ext)
}

// Exporter renders statistics and writes the document into a directory
type Exporter struct {
	outputDir string
	layout    Layout
	logger    *zap.Logger
}

// NewExporter creates an exporter writing into outputDir
func NewExporter(outputDir string, layout Layout, logger *zap.Logger) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		layout:    layout,
		logger:    logger,
	}
}

// Export writes the report for result with writer and returns the file path
func (e *Exporter) Export(result *stats.Result, writer Writer) (string, error) {
	instructions := Render(result, e.layout)

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	name := FileName(result.Range.Start.String(), result.Range.End.String(), writer.Extension())
	path := filepath.Join(e.outputDir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if err := writer.Write(f, instructions); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close report file: %w", err)
	}

	e.logger.Info("Report exported",
		zap.String("path", path),
		zap.String("start", result.Range.Start.String()),
		zap.String("end", result.Range.End.String()),
		zap.Int("workers", len(result.Workers)),
		zap.Int("instructions", len(instructions)))

	return path, nil
}
