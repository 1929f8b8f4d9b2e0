// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging and request body limits. AppConfig carries what is specific to
// the agency site: its database, the visitor form session, media lookup,
// the contact pipeline and outgoing mail.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Form session configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: orsonvision-session)
	SessionDomain string // Cookie domain (blank means current host)
	SessionDir    string // Directory for server-side session files

	CSRFKey string // 32+ byte key for gorilla/csrf

	// Base URL of the public site
	BaseURL string

	// Media
	AssetBaseURL         string        // origin that relative asset URLs are probed against (blank: BaseURL)
	AssetManifest        string        // optional YAML file overriding the built-in fallback tables
	AssetWarmInterval    time.Duration // how often the fallback chains are re-probed
	AssetWarmDelay       time.Duration // wait before the first pass so a self-hosted origin is listening
	AssetProbeTimeout    time.Duration // per HEAD request; zero uses timeouts.Probe()
	AssetWarmConcurrency int           // keys probed at once during a warm pass

	// Contact pipeline
	ContactSubmitDelay time.Duration // simulated delay when no store is wired
	ContactRateLimit   int           // submissions per client IP per window
	ContactRateWindow  time.Duration
	TrustProxy         bool // client IP from X-Forwarded-For / X-Real-IP
	UploadDir          string
	UploadMaxBytes     int64         // per attachment
	FileMaxAge         time.Duration // pending attachments and session files older than this are swept
	FileSweepInterval  time.Duration // zero disables the sweep

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string // From email address
	MailFromName string // From display name
	MailNotifyTo string // studio inbox for new enquiries (blank disables notifications)

	DefaultLanguage string // "en" or "fr"
}
