package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = Init("info", "console") })

	if err := Init("debug", "json"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !Log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug level not enabled")
	}
	if err := Init("loud", "console"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := Init("info", "yaml"); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}
