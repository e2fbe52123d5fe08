package logging

import (
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
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a nop when no level is set")
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	defer SetLogger(nil)

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogStateChange("dlg", true)
	LogAssemblerRebuild("dlg", 2, true)
	LogFocusTrap("dlg", false, "")
	LogScope("inner", "outer", 1)

	if got := logs.Len(); got != 4 {
		t.Fatalf("logged %d entries, want 4", got)
	}

	state := logs.FilterMessage("Modal state changed").All()
	if len(state) != 1 {
		t.Fatalf("state entries = %d, want 1", len(state))
	}
	fields := state[0].ContextMap()
	if fields["mount_id"] != "dlg" || fields["state"] != "open" {
		t.Errorf("state fields = %v", fields)
	}

	if logs.FilterMessage("Focus trap deactivated").Len() != 1 {
		t.Error("missing focus trap entry")
	}
	if logs.FilterField(zap.Int("depth", 1)).Len() != 1 {
		t.Error("missing scope entry")
	}
}
