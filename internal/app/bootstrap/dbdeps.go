// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/orsonvision/internal/app/features/contact"
	"github.com/dalemusser/orsonvision/internal/app/store/contacts"
	"github.com/dalemusser/orsonvision/internal/app/system/assets"
	"github.com/dalemusser/orsonvision/internal/app/system/formsession"
	"github.com/dalemusser/orsonvision/internal/app/system/mailer"
	"github.com/dalemusser/orsonvision/internal/app/system/ratelimit"
	"github.com/dalemusser/orsonvision/internal/app/system/uploads"
	"github.com/dalemusser/orsonvision/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Runtime is allocated in ConnectDB and filled in by Startup. WAFFLE
	// passes DBDeps by value, so the services live behind a pointer.
	Runtime *Runtime
}

// Runtime holds the long-lived services built once at startup.
type Runtime struct {
	Assets    *assets.Resolver
	Warmer    *workers.AssetWarmer
	Limiter   *ratelimit.SubmitLimiter
	Forms     *formsession.Manager
	Uploads   *uploads.Store
	Sweep     *workers.FileSweep // nil when file_sweep_interval is zero
	Mailer    *mailer.Mailer
	Contacts  *contacts.Store
	Submitter *contact.Submitter
}
