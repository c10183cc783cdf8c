package bfsim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("warn", &buf, false)
	if err != nil {
		t.Fatalf("Unexpected failure calling newLogger(). %v", err)
	}

	if logger.GetLevel() != logrus.WarnLevel {
		t.Errorf("Logger level [%v] is not warn", logger.GetLevel())
	}

	logger.Info("hidden")
	logger.WithField("case", "echo").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "case=echo") {
		t.Errorf("Warn message missing or without fields: %s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Colors used on a non-terminal writer: %q", out)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	if logger, err := NewLogger(""); err != nil || logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Empty level did not default to info. %v", err)
	}

	if _, err := NewLogger("chatty"); err == nil {
		t.Errorf("Unexpected success calling NewLogger() with an unknown level")
	}
}
