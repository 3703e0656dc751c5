package nsgifts

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
)

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	logger := &NoopLogger{}

	// Must accept any call without side effects
	logger.Errorf("error %d", 1)
	logger.Warnf("warn %s", "x")
	logger.Debugf("debug")
}

func TestLogrusLogger(t *testing.T) {
	t.Parallel()

	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	logger := NewLogrusLogger(base)

	logger.Errorf("request failed: %s", "boom")
	logger.Warnf("retrying %d", 2)
	logger.Debugf("POST %s", "/api/v1/user")

	entries := hook.AllEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}

	if entries[0].Level != logrus.ErrorLevel {
		t.Errorf("expected error level, got %v", entries[0].Level)
	}

	if entries[0].Message != "request failed: boom" {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}

	if entries[0].Data["component"] != "nsgifts" {
		t.Errorf("expected component=nsgifts, got %v", entries[0].Data["component"])
	}
}

func TestNewLogrusLogger_NilUsesStandard(t *testing.T) {
	t.Parallel()

	if NewLogrusLogger(nil) == nil {
		t.Fatal("expected logger to be created")
	}
}
