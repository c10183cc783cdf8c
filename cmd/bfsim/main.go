package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/bfsim"
)

/*
	Read config file (TOML or YAML), falling back to defaults when the
	default ./config.toml does not exist.

	Subcommands:
		run      run one program
		repl     run programs line by line
		suite    run suite files concurrently
		history  show journaled runs
*/

type app struct {
	configPath string
	logLevel   string
	profileDir string
	journal    bool

	config   *bfsim.ToolConfig
	log      *logrus.Logger
	profiler interface{ Stop() }
}

const defaultConfigPath = "./config.toml"

func main() {
	a := &app{}
	if err := a.execute(newRootCommand(a)); err != nil {
		os.Exit(1)
	}
}

// execute runs root and stops the profiler whether or not the command failed.
func (a *app) execute(root *cobra.Command) error {
	defer a.stopProfile()
	return root.Execute()
}

func (a *app) stopProfile() {
	if a.profiler != nil {
		a.profiler.Stop()
		a.profiler = nil
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "bfsim",
		Short:             "Brainfuck tape interpreter",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", defaultConfigPath, "The config file for bfsim to use (.toml, .yaml or .yml)")
	flags.StringVar(&a.logLevel, "log-level", "", "Override the configured log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.profileDir, "profile", "", "Write a CPU profile into this directory")
	flags.BoolVar(&a.journal, "journal", false, "Record runs in the sqlite journal")

	root.AddCommand(
		newRunCommand(a),
		newReplCommand(a),
		newSuiteCommand(a),
		newHistoryCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	config, err := bfsim.LoadToolConfig(a.configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("config") {
			return err
		}
		config = bfsim.DefaultToolConfig()
	}
	a.config = config

	level := config.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.log, err = bfsim.NewLogger(level); err != nil {
		return err
	}

	if a.profileDir != "" {
		a.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(a.profileDir), profile.Quiet, profile.NoShutdownHook)
	}

	a.log.WithField("config", a.configPath).Debug("Configuration loaded")
	return nil
}

// openJournal returns nil when journaling is off.
func (a *app) openJournal() (*bfsim.Persistence, error) {
	if !a.journal {
		return nil, nil
	}
	p, err := bfsim.NewPersistence(a.config.Persistence)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (a *app) record(p *bfsim.Persistence, source string, result *bfsim.RunResult) {
	if p == nil {
		return
	}
	if id, err := p.Record(source, result); err != nil {
		a.log.WithError(err).Warn("Failed to journal run")
	} else {
		a.log.WithField("id", id).Debug("Run journaled")
	}
}
