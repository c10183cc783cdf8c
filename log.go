package bfsim

import (
	"io"
	"os"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger on stderr. Colors are only used when stderr
// is a terminal.
func NewLogger(level string) (*logrus.Logger, error) {
	return newLogger(level, colorable.NewColorableStderr(), isTerminal(os.Stderr))
}

func newLogger(level string, out io.Writer, colors bool) (*logrus.Logger, error) {
	if level == "" {
		level = DEFAULT_LOG_LEVEL
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      colors,
		DisableColors:    !colors,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05",
		QuoteEmptyFields: true,
	})
	return logger, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether f is attached to a terminal rather than a
// pipe or file.
func IsInteractive(f *os.File) bool {
	return isTerminal(f)
}
