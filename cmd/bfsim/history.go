package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nickandperla.net/bfsim"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		limit  int
		source string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show journaled runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := bfsim.NewPersistence(a.config.Persistence)
			if err != nil {
				return err
			}
			defer journal.Shutdown()

			runs, err := journal.Recent(source, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tSOURCE\tEXECUTED\tSTATUS\tOUTPUT")
			for _, run := range runs {
				status := "halted"
				if run.MachineError != nil {
					status = *run.MachineError
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%q\n",
					run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Source, run.InstructionsExecuted, status, run.Output)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			metrics, err := journal.QueryMetrics(source)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d runs, %d halted, %d failed, avg %.1f / max %d instructions executed\n",
				metrics.Total, metrics.Halted, metrics.Failed, metrics.AvgInstructionsExecuted, metrics.MaxInstructionsExecuted)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", bfsim.DEFAULT_RECENT_LIMIT, "Number of runs to show")
	cmd.Flags().StringVar(&source, "source", "", "Only show runs from this source (run, repl, suite/<name>/<case>)")
	return cmd
}
