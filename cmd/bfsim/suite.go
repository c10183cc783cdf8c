package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/bfsim"
)

func newSuiteCommand(a *app) *cobra.Command {
	var workers uint

	cmd := &cobra.Command{
		Use:   "suite <file>...",
		Short: "Run suite files and report each case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if workers == 0 {
				workers = a.config.Workers
			}

			journal, err := a.openJournal()
			if err != nil {
				return err
			}
			if journal != nil {
				defer journal.Shutdown()
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				suite, err := bfsim.LoadSuite(path)
				if err != nil {
					return err
				}

				machine := suite.Machine
				if machine == nil {
					machine = a.config.Machine
				}

				log := a.log.WithField("suite", suite.Name)
				var persistor bfsim.EvaluationPersistor
				if journal != nil {
					persistor = bfsim.JournalPersistor(journal, suite.Name)
				}

				engine := bfsim.NewSuiteEngine(workers, bfsim.NewEvaluator(machine, log), persistor, log)
				report := engine.RunSuite(ctx, suite)

				for _, eval := range report.Evaluations {
					switch eval.Outcome {
					case bfsim.Passed:
						fmt.Fprintf(out, "PASS %s/%s\n", suite.Name, eval.Case.Name)
					case bfsim.Failed:
						fmt.Fprintf(out, "FAIL %s/%s (distance %d): %s\n", suite.Name, eval.Case.Name, eval.Distance, eval.Reason)
					default:
						fmt.Fprintf(out, "%s %s/%s: %s\n", eval.Outcome, suite.Name, eval.Case.Name, eval.Reason)
					}
				}

				log.WithFields(logrus.Fields{
					"passed": report.Counts[bfsim.Passed],
					"failed": report.Counts[bfsim.Failed],
					"errors": report.Counts[bfsim.Errored],
				}).Info("Suite finished")

				if !report.OK() {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d suites failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().UintVarP(&workers, "workers", "w", 0, "Number of concurrent machines (default from config)")
	return cmd
}
