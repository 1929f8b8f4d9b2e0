// Package timeouts provides centralized timeout values for handler operations.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and lookups
//   - Medium: list queries and writes
//   - Probe: one HEAD request against a media candidate
//   - Submit: the whole contact submission (store + notification mail)
//
// Values can be changed at startup with Configure or ConfigureFromEnv.
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultProbe  = 3 * time.Second
	DefaultSubmit = 20 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	probe  = DefaultProbe
	submit = DefaultSubmit
)

func get(d *time.Duration) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return *d
}

func Ping() time.Duration   { return get(&ping) }
func Short() time.Duration  { return get(&short) }
func Medium() time.Duration { return get(&medium) }
func Probe() time.Duration  { return get(&probe) }
func Submit() time.Duration { return get(&submit) }

// Config holds timeout values. Zero values are ignored.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Probe  time.Duration
	Submit time.Duration
}

// Configure overrides the non-zero values in cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	set := func(dst *time.Duration, v time.Duration) {
		if v > 0 {
			*dst = v
		}
	}
	set(&ping, cfg.Ping)
	set(&short, cfg.Short)
	set(&medium, cfg.Medium)
	set(&probe, cfg.Probe)
	set(&submit, cfg.Submit)
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping, short, medium, probe, submit = DefaultPing, DefaultShort, DefaultMedium, DefaultProbe, DefaultSubmit
}

// ConfigureFromEnv reads TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM,
// TIMEOUT_PROBE and TIMEOUT_SUBMIT (Go durations, e.g. "5s"). Invalid or
// non-positive values are skipped. It returns how many were applied.
func ConfigureFromEnv() int {
	var cfg Config
	n := 0
	for name, dst := range map[string]*time.Duration{
		"TIMEOUT_PING":   &cfg.Ping,
		"TIMEOUT_SHORT":  &cfg.Short,
		"TIMEOUT_MEDIUM": &cfg.Medium,
		"TIMEOUT_PROBE":  &cfg.Probe,
		"TIMEOUT_SUBMIT": &cfg.Submit,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
			n++
		}
	}
	Configure(cfg)
	return n
}

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Short: short, Medium: medium, Probe: probe, Submit: submit}
}

// WithTimeout is context.WithTimeout whose cancel func logs when the
// deadline was what ended the operation.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Submit(), h.Log, "contact submit")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
