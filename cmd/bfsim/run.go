package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/bfsim"
)

func newRunCommand(a *app) *cobra.Command {
	var (
		expr      string
		input     string
		inputFile string
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a program and print its output",
		Long: `Run a program read from file, or given with -e.

Input comes from --input, --input-file, or stdin when stdin is not a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := readProgram(expr, args)
			if err != nil {
				return err
			}

			in, err := readInput(cmd, input, inputFile)
			if err != nil {
				return err
			}

			journal, err := a.openJournal()
			if err != nil {
				return err
			}
			if journal != nil {
				defer journal.Shutdown()
			}

			result := bfsim.Execute(program, in, a.config.Machine, a.log.WithField("command", "run"))
			a.record(journal, "run", result)

			if _, err := io.WriteString(cmd.OutOrStdout(), result.Output); err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"instructions": result.InstructionCount,
				"executed":     result.InstructionsExecuted,
				"duration":     result.Duration,
			}).Info("Run finished")

			return result.Err
		},
	}

	cmd.Flags().StringVarP(&expr, "exec", "e", "", "Program text to run instead of a file")
	cmd.Flags().StringVar(&input, "input", "", "Input text for the program")
	cmd.Flags().StringVar(&inputFile, "input-file", "", "Read program input from this file ('-' for stdin)")
	return cmd
}

func readProgram(expr string, args []string) (string, error) {
	switch {
	case expr != "" && len(args) > 0:
		return "", fmt.Errorf("Give either a program file or -e, not both")
	case expr != "":
		return expr, nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("Unable to load program: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("No program given")
}

func readInput(cmd *cobra.Command, input, inputFile string) (string, error) {
	if cmd.Flags().Changed("input") {
		return input, nil
	}

	switch {
	case inputFile == "-":
		return readAll(cmd.InOrStdin())
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("Unable to load input: %w", err)
		}
		return string(data), nil
	case !bfsim.IsInteractive(os.Stdin):
		return readAll(cmd.InOrStdin())
	}
	return "", nil
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("Unable to read input: %w", err)
	}
	return string(data), nil
}
