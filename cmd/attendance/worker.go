package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func workerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage the roster",
	}

	cmd.AddCommand(workerAddCmd())
	cmd.AddCommand(workerRemoveCmd())
	cmd.AddCommand(workerListCmd())
	cmd.AddCommand(workerShowCmd())

	return cmd
}

func workerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a worker to the end of the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.store.AddWorker(cmd.Context(), args[0]); err != nil {
				return err
			}

			roster := s.store.Snapshot()
			w, _ := roster.Worker(roster.Len() - 1)
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Added [%d] %s\n", roster.Len()-1, w.Name())
			return nil
		},
	}
}

func workerRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove INDEX",
		Short: "Remove a worker and all of their records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			w, err := s.store.Snapshot().Worker(index)
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to remove %q and %d record(s) without --yes", w.Name(), w.RecordCount())
			}

			if err := s.store.RemoveWorker(cmd.Context(), index); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "🗑  Removed %s\n", w.Name())
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm removal")

	return cmd
}

func workerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workers with their roster index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			roster := s.store.Snapshot()
			if roster.Len() == 0 {
				fmt.Fprintln(out, "Roster is empty")
				return nil
			}
			for i, w := range roster.Workers() {
				fmt.Fprintf(out, "  [%d] %s (%d record(s))\n", i, w.Name(), w.RecordCount())
			}
			return nil
		},
	}
}

func workerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show INDEX",
		Short: "Show every recorded date of a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			w, err := s.store.Snapshot().Worker(index)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", w.Name())
			for _, date := range w.Dates() {
				rec, _ := w.Record(date)
				late := ""
				if rec.IsLate() {
					late = "  late"
				}
				fmt.Fprintf(out, "  %s %s  %-7s %s%s\n",
					date, date.Weekday().String()[:3], rec.Status, rec.Time, late)
			}
			return nil
		},
	}
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid worker index %q", s)
	}
	return index, nil
}
