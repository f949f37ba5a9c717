package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	l.Infof(ctx, "checked %d items", 3)
	l.Info(context.Background(), "no id")

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "checked 3 items" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()[string(RequestIDKey)]; got != "req-42" {
		t.Errorf("expected request_id field, got %v", got)
	}
	if _, ok := entries[1].ContextMap()[string(RequestIDKey)]; ok {
		t.Errorf("did not expect request_id on entry without id")
	}
}

func TestInitModes(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDebug, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		if Init(cfg) == nil {
			t.Errorf("Init(%+v) returned nil", cfg)
		}
	}
}
