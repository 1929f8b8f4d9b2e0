package bootstrap

import (
	"strings"
	"testing"
	"time"
)

func validConfig() AppConfig {
	return AppConfig{
		MongoURI:           "mongodb://localhost:27017",
		CSRFKey:            strings.Repeat("k", 32),
		AssetWarmInterval:  10 * time.Minute,
		ContactRateLimit:   5,
		ContactRateWindow:  15 * time.Minute,
		UploadMaxBytes:     1 << 20,
		FileMaxAge:         48 * time.Hour,
		DefaultLanguage:    "en",
		ContactSubmitDelay: time.Second,
	}
}

func TestValidateAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*AppConfig) {}},
		{name: "french default", mutate: func(c *AppConfig) { c.DefaultLanguage = "fr" }},
		{name: "unknown language", mutate: func(c *AppConfig) { c.DefaultLanguage = "de" }, wantErr: "default_language"},
		{name: "zero upload size", mutate: func(c *AppConfig) { c.UploadMaxBytes = 0 }, wantErr: "upload_max_bytes"},
		{name: "zero rate limit", mutate: func(c *AppConfig) { c.ContactRateLimit = 0 }, wantErr: "contact_rate_limit"},
		{name: "zero rate window", mutate: func(c *AppConfig) { c.ContactRateWindow = 0 }, wantErr: "contact_rate_limit"},
		{name: "zero warm interval", mutate: func(c *AppConfig) { c.AssetWarmInterval = 0 }, wantErr: "asset_warm_interval"},
		{name: "file age below session lifetime", mutate: func(c *AppConfig) { c.FileMaxAge = time.Hour }, wantErr: "file_max_age"},
		{name: "short csrf key", mutate: func(c *AppConfig) { c.CSRFKey = "short" }, wantErr: "csrf_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := validateAppConfig(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateAppConfig() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("validateAppConfig() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAppConfig_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.DefaultLanguage = "xx"
	cfg.CSRFKey = ""

	err := validateAppConfig(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"default_language", "csrf_key"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
