package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "optional lookup failed", "fixture_id", int64(1001), "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected log count: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != traceID.String() || fields["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %#v", fields)
	}
	if fields["fixture_id"] != int64(1001) {
		t.Fatalf("unexpected fixture_id: %#v", fields["fixture_id"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %#v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelWarn)
	logger := FromZap(zap.New(core)).With("component", "test")

	logger.Info("dropped")
	logger.Error("kept")

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "kept" {
		t.Fatalf("unexpected entries: %#v", entries)
	}
	if entries[0].ContextMap()["component"] != "test" {
		t.Fatalf("expected With fields on entry")
	}
}

func TestNew_JSONIncludesServiceFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Format: FormatJSON, Output: &buf, Service: "football-hub", Version: "dev"})
	logger.Info("started", "addr", ":8080")

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["service"] != "football-hub" || line["version"] != "dev" || line["msg"] != "started" {
		t.Fatalf("unexpected log line: %#v", line)
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Format: FormatConsole, Output: &buf})
	logger.Debug("cache miss", "key", "fixture:1001")

	if !strings.Contains(buf.String(), "cache miss") || strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("unexpected console output: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"DEBUG":   LevelDebug,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q): got=%s want=%s", raw, got, want)
		}
	}
}
