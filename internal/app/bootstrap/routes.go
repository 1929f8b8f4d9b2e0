// internal/app/bootstrap/routes.go
package bootstrap

import (
	"errors"
	"net/http"

	assetapifeature "github.com/dalemusser/orsonvision/internal/app/features/assetapi"
	careersfeature "github.com/dalemusser/orsonvision/internal/app/features/careers"
	contactfeature "github.com/dalemusser/orsonvision/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/orsonvision/internal/app/features/errors"
	healthfeature "github.com/dalemusser/orsonvision/internal/app/features/health"
	homefeature "github.com/dalemusser/orsonvision/internal/app/features/home"
	industriesfeature "github.com/dalemusser/orsonvision/internal/app/features/industries"
	journeyfeature "github.com/dalemusser/orsonvision/internal/app/features/journey"
	languagefeature "github.com/dalemusser/orsonvision/internal/app/features/language"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The router negotiates the visitor's
// language, applies CSRF protection to form posts, and mounts the public
// pages, the contact flow and the asset lookup API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	rt := deps.Runtime
	if rt == nil || rt.Assets == nil {
		return nil, errors.New("build handler: startup did not complete")
	}
	secure := coreCfg.Env == "prod"

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if !secure {
		r.Use(plaintextHTTP)
	}
	r.Use(i18n.NewNegotiator(i18n.Lang(appCfg.DefaultLanguage), logger.Named("i18n")).Middleware)
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey)[:32],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(csrfFailure(logger)),
	))

	// Set before mounting so sub-routers inherit it.
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	var contactCount healthfeature.ContactCounter
	if rt.Contacts != nil {
		contactCount = rt.Contacts
	}
	healthHandler := healthfeature.NewHandler(deps.MongoClient, rt.Assets, contactCount, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static files with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))
	// Site media referenced by the asset fallback tables
	r.Handle("/assets/*", fileserver.Handler("/assets", "public/assets"))

	// Public pages
	homeHandler := homefeature.NewHandler(rt.Assets)
	r.Mount("/", homefeature.Routes(homeHandler))

	careersHandler := careersfeature.NewHandler(rt.Assets)
	r.Mount("/careers", careersfeature.Routes(careersHandler))

	journeyHandler := journeyfeature.NewHandler(rt.Assets)
	r.Mount("/journey", journeyfeature.Routes(journeyHandler))

	industriesHandler := industriesfeature.NewHandler(rt.Assets, errorsHandler.NotFound, logger)
	r.Mount("/industries", industriesfeature.Routes(industriesHandler))

	// Contact flow
	contactHandler := contactfeature.NewHandler(rt.Forms, rt.Uploads, rt.Limiter, rt.Submitter, errLog, logger)
	contactHandler.SubmitDelay = appCfg.ContactSubmitDelay
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Language switch
	languageHandler := languagefeature.NewHandler(secure, logger)
	r.Mount("/lang", languagefeature.Routes(languageHandler))

	// Asset lookup API
	assetHandler := assetapifeature.NewHandler(rt.Assets, logger)
	r.Mount("/api/assets", assetapifeature.Routes(assetHandler))

	return r, nil
}

// plaintextHTTP marks requests as plain HTTP so CSRF origin checks accept
// them in dev.
func plaintextHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func csrfFailure(logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warn("CSRF check failed",
			zap.String("path", r.URL.Path),
			zap.Error(csrf.FailureReason(r)))
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	})
}
