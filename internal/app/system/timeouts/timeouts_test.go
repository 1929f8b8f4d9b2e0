package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Probe: 500 * time.Millisecond})
	if Probe() != 500*time.Millisecond {
		t.Errorf("Probe = %v", Probe())
	}
	if Short() != DefaultShort {
		t.Errorf("Short changed to %v", Short())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)
	t.Setenv("TIMEOUT_SUBMIT", "45s")
	t.Setenv("TIMEOUT_PING", "nonsense")
	t.Setenv("TIMEOUT_SHORT", "-1s")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("configured %d, want 1", n)
	}
	got := Current()
	if got.Submit != 45*time.Second || got.Ping != DefaultPing || got.Short != DefaultShort {
		t.Errorf("Current = %+v", got)
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "probe chain")
	<-ctx.Done()
	cancel()

	if logs.FilterMessage("operation timed out").Len() != 1 {
		t.Error("expected one timeout warning")
	}
}
