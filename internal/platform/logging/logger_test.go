package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestNewJSONTo_WritesFieldsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(&buf, LevelInfo)

	logger.With("component", "clubs").ErrorContext(context.Background(), "register club failed", "league_id", 5, "error", errors.New("duplicate club"))

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["msg"] != "register club failed" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["level"] != "ERROR" {
		t.Fatalf("unexpected level: %v", line["level"])
	}
	if line["component"] != "clubs" {
		t.Fatalf("expected component field, got %v", line["component"])
	}
	if line["error"] != "duplicate club" {
		t.Fatalf("unexpected error field: %v", line["error"])
	}
}

func TestNewJSONTo_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(&buf, LevelWarn)

	logger.Info("skipped")
	logger.Debug("skipped too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("kept")
	if !strings.Contains(buf.String(), `"msg":"kept"`) {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want %s", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("does not panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}
