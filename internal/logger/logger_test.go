package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func resetLogger() {
	Init(Options{})
}

func TestInit(t *testing.T) {
	t.Run("default level is info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{Output: buf})
		defer resetLogger()

		Info("info line")
		Debug("debug line")

		out := buf.String()
		if !strings.Contains(out, "info line") {
			t.Error("Info should be logged at the default level")
		}
		if strings.Contains(out, "debug line") {
			t.Error("Debug should not be logged at the default level")
		}
	})

	t.Run("debug enables debug level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{Debug: true, Output: buf})
		defer resetLogger()

		Debug("debug line")
		if !strings.Contains(buf.String(), "debug line") {
			t.Error("Debug should be logged when Debug=true")
		}
	})

	t.Run("quiet shows only errors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{Quiet: true, Output: buf})
		defer resetLogger()

		Info("info line")
		Warn("warn line")
		Error("error line")

		out := buf.String()
		if strings.Contains(out, "info line") || strings.Contains(out, "warn line") {
			t.Error("Info and Warn should be suppressed when Quiet=true")
		}
		if !strings.Contains(out, "error line") {
			t.Error("Error should be logged when Quiet=true")
		}
	})

	t.Run("quiet overrides debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{Debug: true, Quiet: true, Output: buf})
		defer resetLogger()

		Debug("debug line")
		if strings.Contains(buf.String(), "debug line") {
			t.Error("Quiet should take precedence over Debug")
		}
	})

	t.Run("json handler", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{JSON: true, Output: buf})
		defer resetLogger()

		Info("json line", "key", "value")

		out := buf.String()
		if !strings.Contains(out, `"msg":"json line"`) {
			t.Errorf("expected JSON output, got %q", out)
		}
		if !strings.Contains(out, `"key":"value"`) {
			t.Errorf("expected structured attribute, got %q", out)
		}
	})

	t.Run("custom logger overrides options", func(t *testing.T) {
		buf := &bytes.Buffer{}
		custom := slog.New(slog.NewTextHandler(buf, nil))
		Init(Options{Quiet: true, Logger: custom})
		defer resetLogger()

		Info("via custom")
		if !strings.Contains(buf.String(), "via custom") {
			t.Error("custom logger should be used as-is")
		}
	})
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer resetLogger()

	Warn("installed")
	if !strings.Contains(buf.String(), "installed") {
		t.Error("SetLogger should replace the package logger")
	}
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	l := With("component", "test")
	if l == nil {
		t.Fatal("With() returned nil")
	}
	l.Info("attr line")

	out := buf.String()
	if !strings.Contains(out, "attr line") || !strings.Contains(out, "component") {
		t.Errorf("expected message with attributes, got %q", out)
	}
}
