package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/bfsim"
)

const replHelp = `Each line is run as a program on a fresh machine.
  :input <text>  set the input used by following programs
  :input         clear the input
  :help          show this help
  :quit          leave (as does Ctrl-D)
`

func newReplCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run programs interactively, one line at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := a.openJournal()
			if err != nil {
				return err
			}
			if journal != nil {
				defer journal.Shutdown()
			}
			return a.repl(cmd.OutOrStdout(), journal)
		},
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bfsim_history")
}

func (a *app) repl(out io.Writer, journal *bfsim.Persistence) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := historyPath()
	if f, err := os.Open(history); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			a.log.WithError(err).Debug("Unable to read REPL history")
		}
		f.Close()
	}
	defer func() {
		if history == "" {
			return
		}
		f, err := os.Create(history)
		if err != nil {
			a.log.WithError(err).Debug("Unable to save REPL history")
			return
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			a.log.WithError(err).Debug("Unable to save REPL history")
		}
	}()

	session := a.newReplSession(out, journal)
	fmt.Fprint(out, replHelp)

	for {
		text, err := line.Prompt("bf> ")
		if err == io.EOF || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		line.AppendHistory(text)

		if session.handle(text) {
			return nil
		}
	}
}

// replSession holds what carries over between REPL lines.
type replSession struct {
	app     *app
	out     io.Writer
	journal *bfsim.Persistence
	log     *logrus.Entry
	input   string
}

func (a *app) newReplSession(out io.Writer, journal *bfsim.Persistence) *replSession {
	return &replSession{
		app:     a,
		out:     out,
		journal: journal,
		log:     a.log.WithField("command", "repl"),
	}
}

// handle runs one trimmed line and reports whether the session should end.
func (s *replSession) handle(text string) bool {
	switch {
	case text == ":quit" || text == ":q":
		return true
	case text == ":help":
		fmt.Fprint(s.out, replHelp)
		return false
	case text == ":input":
		s.input = ""
		return false
	case strings.HasPrefix(text, ":input "):
		s.input = strings.TrimPrefix(text, ":input ")
		return false
	case strings.HasPrefix(text, ":"):
		fmt.Fprintf(s.out, "unknown command %s\n", text)
		return false
	}

	result := bfsim.Execute(text, s.input, s.app.config.Machine, s.log)
	s.app.record(s.journal, "repl", result)

	fmt.Fprintf(s.out, "%q\n", result.Output)
	if result.Err != nil {
		fmt.Fprintf(s.out, "error: %v\n", result.Err)
	}
	return false
}
