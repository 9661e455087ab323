package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/attendance-tracker/internal/config"
	"github.com/username/attendance-tracker/internal/report"
	"github.com/username/attendance-tracker/internal/stats"
	"github.com/username/attendance-tracker/pkg/dateutil"
	"go.uber.org/zap"
)

// rangeFlags select the report period
type rangeFlags struct {
	from  string
	to    string
	month string
	week  bool
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Start date (YYYY-MM-DD), default first day of this month")
	cmd.Flags().StringVar(&f.to, "to", "", "End date (YYYY-MM-DD), default today")
	cmd.Flags().StringVar(&f.month, "month", "", "Whole month (YYYY-MM)")
	cmd.Flags().BoolVar(&f.week, "week", false, "Current week, Monday to Sunday")
	cmd.MarkFlagsMutuallyExclusive("month", "week", "from")
	cmd.MarkFlagsMutuallyExclusive("month", "week", "to")
}

// resolve returns the literal start and end strings of the period
func (f *rangeFlags) resolve(today dateutil.Date) (string, string, error) {
	switch {
	case f.month != "":
		start, err := dateutil.ParseMonth(f.month)
		if err != nil {
			return "", "", err
		}
		return start.String(), dateutil.EndOfMonth(start).String(), nil

	case f.week:
		return dateutil.StartOfWeek(today).String(), dateutil.EndOfWeek(today).String(), nil
	}

	from, to := f.from, f.to
	if from == "" {
		from = dateutil.StartOfMonth(today).String()
	}
	if to == "" {
		to = today.String()
	}
	return from, to, nil
}

func statsCmd() *cobra.Command {
	var period rangeFlags
	var daily bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print attendance statistics for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := period.resolve(dateutil.Today())
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			result, err := stats.ComputeStrings(s.store.Snapshot(), start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n📊 Attendance %s to %s\n", start, end)
			fmt.Fprintf(out, "  Total days:   %d\n", result.Range.TotalDays)
			fmt.Fprintf(out, "  Working days: %d\n", result.Range.WorkingDays)
			fmt.Fprintf(out, "  Sundays:      %d\n\n", result.Range.SundayCount)
			fmt.Fprintln(out, report.Table(result))

			if daily {
				fmt.Fprintln(out, "\n📅 Per-day breakdown:")
				fmt.Fprintln(out, report.DailyTable(result))
				fmt.Fprintln(out, "Legend: absences are not counted on Sundays.")
			}
			return nil
		},
	}

	period.register(cmd)
	cmd.Flags().BoolVar(&daily, "daily", false, "Also print the per-day breakdown")

	return cmd
}

func reportCmd() *cobra.Command {
	var period rangeFlags
	var format string
	var outDir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export an attendance report document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := period.resolve(dateutil.Today())
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if format == "" {
				format = s.cfg.Report.Format
			}
			if err := config.ValidateFormat(format); err != nil {
				return err
			}
			if outDir == "" {
				outDir = s.cfg.Report.OutputDir
			}

			result, err := stats.ComputeStrings(s.store.Snapshot(), start, end)
			if err != nil {
				return err
			}

			layout := report.DefaultLayout()
			layout.RepeatHeader = s.cfg.Report.RepeatHeader

			var writer report.Writer = report.NewPDFWriter()
			if format == "xlsx" {
				writer = report.NewXLSXWriter(layout)
			}

			path, err := report.NewExporter(outDir, layout, logger).Export(result, writer)
			if err != nil {
				return fmt.Errorf("failed to export report: %w", err)
			}

			logger.Info("Report generated",
				zap.String("format", format),
				zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Report written to %s\n", path)
			return nil
		},
	}

	period.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", "Document format: pdf or xlsx (default from config)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default from config)")

	return cmd
}
