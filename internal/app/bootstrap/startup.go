// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/orsonvision/internal/app/features/contact"
	"github.com/dalemusser/orsonvision/internal/app/resources"
	"github.com/dalemusser/orsonvision/internal/app/store/contacts"
	"github.com/dalemusser/orsonvision/internal/app/system/assets"
	"github.com/dalemusser/orsonvision/internal/app/system/formsession"
	"github.com/dalemusser/orsonvision/internal/app/system/mailer"
	"github.com/dalemusser/orsonvision/internal/app/system/ratelimit"
	"github.com/dalemusser/orsonvision/internal/app/system/timeouts"
	"github.com/dalemusser/orsonvision/internal/app/system/uploads"
	"github.com/dalemusser/orsonvision/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It loads
// shared templates, builds the asset resolver and starts its warmer, and
// assembles the contact pipeline.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Runtime == nil {
		return errors.New("startup: runtime not allocated by ConnectDB")
	}
	rt := deps.Runtime

	resources.LoadSharedTemplates()

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n))
	}

	// Media
	var manifest assets.Manifest
	if appCfg.AssetManifest != "" {
		m, err := assets.LoadManifest(appCfg.AssetManifest)
		if err != nil {
			logger.Error("asset manifest load failed", zap.String("path", appCfg.AssetManifest), zap.Error(err))
			return err
		}
		manifest = m
		logger.Info("asset manifest loaded", zap.String("path", appCfg.AssetManifest))
	}
	video, image := manifest.Tables()
	rt.Assets = assets.New(assets.Options{
		Video:        video,
		Image:        image,
		BaseURL:      appCfg.AssetBaseURL,
		ProbeTimeout: appCfg.AssetProbeTimeout,
		Concurrency:  appCfg.AssetWarmConcurrency,
	}, logger.Named("assets"))
	rt.Warmer = workers.NewAssetWarmer(rt.Assets, logger.Named("warmer"), appCfg.AssetWarmInterval)
	rt.Warmer.InitialDelay = appCfg.AssetWarmDelay
	rt.Warmer.Start()

	// Contact pipeline
	rt.Limiter = ratelimit.NewSubmitLimiter(appCfg.ContactRateLimit, appCfg.ContactRateWindow, appCfg.TrustProxy)

	forms, err := formsession.NewManager(formsession.Options{
		Key:    appCfg.SessionKey,
		Name:   appCfg.SessionName,
		Domain: appCfg.SessionDomain,
		Dir:    appCfg.SessionDir,
		Secure: coreCfg.Env == "prod",
	}, logger)
	if err != nil {
		logger.Error("form session manager init failed", zap.Error(err))
		return err
	}
	rt.Forms = forms

	up, err := uploads.New(appCfg.UploadDir, appCfg.UploadMaxBytes, logger.Named("uploads"))
	if err != nil {
		logger.Error("upload store init failed", zap.Error(err))
		return err
	}
	rt.Uploads = up

	if appCfg.FileSweepInterval > 0 {
		rt.Sweep = workers.NewFileSweep(logger.Named("sweep"), appCfg.FileSweepInterval, appCfg.FileMaxAge,
			up.PendingDir(), appCfg.SessionDir)
		rt.Sweep.Start()
	}

	rt.Mailer = mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger.Named("mailer"))
	if appCfg.MailNotifyTo == "" {
		logger.Info("contact notifications disabled (mail_notify_to is empty)")
	}

	rt.Contacts = contacts.New(deps.MongoDatabase)
	rt.Submitter = contact.NewSubmitter(rt.Contacts, rt.Uploads, rt.Mailer, appCfg.MailNotifyTo, logger.Named("contact"))
	return nil
}
