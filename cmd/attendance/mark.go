package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/attendance-tracker/pkg/dateutil"
)

func markCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "mark INDEX",
		Short: "Toggle a worker between Present and Absent on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.store.SetStatus(cmd.Context(), index, date); err != nil {
				return err
			}

			w, _ := s.store.Snapshot().Worker(index)
			rec, _ := w.Record(date)
			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s (%s)\n", w.Name(), date, rec.Status, rec.Time)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD), default today")

	return cmd
}

func timeCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "time INDEX HH:MM",
		Short: "Set a worker's arrival time on a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			at, err := dateutil.ParseClock(args[1])
			if err != nil {
				return err
			}
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.store.SetArrivalTime(cmd.Context(), index, date, at); err != nil {
				return err
			}

			w, _ := s.store.Snapshot().Worker(index)
			rec, _ := w.Record(date)
			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s (%s)\n", w.Name(), date, rec.Status, rec.Time)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD), default today")

	return cmd
}

func parseDateFlag(s string) (dateutil.Date, error) {
	if s == "" {
		return dateutil.Today(), nil
	}
	return dateutil.ParseDate(s)
}
