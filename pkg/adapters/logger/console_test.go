package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/framepump/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, ports.LevelWarn, false)

	log.Debug("debug line %d", 1)
	log.Info("info line %d", 2)
	log.Warn("warn line %d", 3)
	log.Error("error line %d", 4)

	got := buf.String()
	if strings.Contains(got, "debug line") || strings.Contains(got, "info line") {
		t.Errorf("expected debug and info to be filtered, got %q", got)
	}
	if got != "warn line 3\nerror line 4\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, ports.LevelQuiet, false)

	log.Error("error line")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestConsoleLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, ports.LevelDebug, false).WithComponent("pump")

	log.Info("frame %d", 7)

	if got := buf.String(); got != "[pump] frame 7\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_ComponentSharesWriter(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriter(&buf, ports.LevelInfo, false)
	child := root.WithComponent("bitstream")

	root.Info("first")
	child.Info("second")

	if got := buf.String(); got != "first\n[bitstream] second\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_Color(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, ports.LevelDebug, true)

	log.Warn("careful")

	got := buf.String()
	if !strings.HasPrefix(got, colorYellow) || !strings.Contains(got, colorReset) {
		t.Errorf("expected yellow warning, got %q", got)
	}

	buf.Reset()
	log.Info("plain")
	if got := buf.String(); got != "plain\n" {
		t.Errorf("expected uncolored info, got %q", got)
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("nothing %d", 1)
	if log.WithComponent("x") == nil {
		t.Error("expected a logger from WithComponent")
	}
}
