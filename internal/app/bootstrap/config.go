// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/orsonvision/internal/app/system/formsession"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/limits"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: ORSONVISION_MONGO_URI, ORSONVISION_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "orson_vision", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 50, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 2, Desc: "MongoDB min connection pool size"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "orsonvision-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_dir", Default: "./data/sessions", Desc: "Directory for form session files"},
	{Name: "csrf_key", Default: "dev-only-csrf-key-0123456789ABCDEF", Desc: "CSRF authentication key (32+ chars)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of the site"},

	// Media
	{Name: "asset_base_url", Default: "", Desc: "Origin that relative asset URLs are probed against (blank: base_url)"},
	{Name: "asset_manifest", Default: "", Desc: "Optional YAML file with asset fallback tables"},
	{Name: "asset_warm_interval", Default: "10m", Desc: "How often asset fallback chains are re-probed"},
	{Name: "asset_warm_delay", Default: "2s", Desc: "Delay before the first asset warm pass"},
	{Name: "asset_probe_timeout", Default: "0s", Desc: "Timeout for one asset HEAD request (0: TIMEOUT_PROBE, default 3s)"},
	{Name: "asset_warm_concurrency", Default: 4, Desc: "Asset keys probed at once"},

	// Contact pipeline
	{Name: "contact_submit_delay", Default: "1s", Desc: "Simulated submit delay when no store is wired"},
	{Name: "contact_rate_limit", Default: 5, Desc: "Contact submissions allowed per client IP per window"},
	{Name: "contact_rate_window", Default: "15m", Desc: "Contact rate limit window"},
	{Name: "trust_proxy", Default: false, Desc: "Take the client IP from X-Forwarded-For/X-Real-IP (enable only behind a proxy that sets them)"},
	{Name: "upload_dir", Default: "./data/uploads", Desc: "Directory for contact attachments"},
	{Name: "upload_max_bytes", Default: limits.DefaultUploadBytes, Desc: "Maximum size of one attachment in bytes"},
	{Name: "file_max_age", Default: "48h", Desc: "Unsubmitted attachments and session files older than this are deleted"},
	{Name: "file_sweep_interval", Default: "1h", Desc: "How often stale form files are swept (0 disables)"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@orsonvision.com", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Orson Vision", Desc: "From display name"},
	{Name: "mail_notify_to", Default: "", Desc: "Inbox notified of new enquiries (blank disables)"},

	{Name: "default_language", Default: "en", Desc: "Language used when the visitor expresses no preference (en or fr)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, ORSONVISION_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ORSONVISION", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		SessionKey:       appValues.String("session_key"),
		SessionName:      appValues.String("session_name"),
		SessionDomain:    appValues.String("session_domain"),
		SessionDir:       appValues.String("session_dir"),
		CSRFKey:          appValues.String("csrf_key"),

		BaseURL: appValues.String("base_url"),

		// Media
		AssetBaseURL:         appValues.String("asset_base_url"),
		AssetManifest:        appValues.String("asset_manifest"),
		AssetWarmInterval:    appValues.Duration("asset_warm_interval", 10*time.Minute),
		AssetWarmDelay:       appValues.Duration("asset_warm_delay", 2*time.Second),
		AssetProbeTimeout:    appValues.Duration("asset_probe_timeout", 0),
		AssetWarmConcurrency: appValues.Int("asset_warm_concurrency"),

		// Contact pipeline
		ContactSubmitDelay: appValues.Duration("contact_submit_delay", time.Second),
		ContactRateLimit:   appValues.Int("contact_rate_limit"),
		ContactRateWindow:  appValues.Duration("contact_rate_window", 15*time.Minute),
		TrustProxy:         appValues.Bool("trust_proxy"),
		UploadDir:          appValues.String("upload_dir"),
		UploadMaxBytes:     int64(appValues.Int("upload_max_bytes")),
		FileMaxAge:         appValues.Duration("file_max_age", 48*time.Hour),
		FileSweepInterval:  appValues.Duration("file_sweep_interval", time.Hour),

		// Email/SMTP
		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),
		MailNotifyTo: appValues.String("mail_notify_to"),

		DefaultLanguage: appValues.String("default_language"),
	}

	if appCfg.AssetBaseURL == "" {
		appCfg.AssetBaseURL = appCfg.BaseURL
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return validateAppConfig(appCfg)
}

func validateAppConfig(appCfg AppConfig) error {
	var errs []error
	if _, ok := i18n.ParseLang(appCfg.DefaultLanguage); !ok {
		errs = append(errs, fmt.Errorf("default_language %q is not supported (use en or fr)", appCfg.DefaultLanguage))
	}
	if appCfg.UploadMaxBytes <= 0 {
		errs = append(errs, fmt.Errorf("upload_max_bytes must be positive, got %d", appCfg.UploadMaxBytes))
	}
	if appCfg.ContactRateLimit <= 0 || appCfg.ContactRateWindow <= 0 {
		errs = append(errs, errors.New("contact_rate_limit and contact_rate_window must be positive"))
	}
	if appCfg.FileMaxAge < formsession.Lifetime {
		errs = append(errs, fmt.Errorf("file_max_age must be at least the %s form session lifetime", formsession.Lifetime))
	}
	if appCfg.AssetWarmInterval <= 0 {
		errs = append(errs, errors.New("asset_warm_interval must be positive"))
	}
	if len(appCfg.CSRFKey) < 32 {
		errs = append(errs, errors.New("csrf_key must be at least 32 characters"))
	}
	return errors.Join(errs...)
}
