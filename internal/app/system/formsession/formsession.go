// internal/app/system/formsession/formsession.go
package formsession

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dalemusser/orsonvision/internal/app/system/formflow"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// MaxSnapshotBytes bounds one encoded form snapshot.
const MaxSnapshotBytes = 64 << 10

// Lifetime is how long a visitor's form session survives without activity.
const Lifetime = 24 * time.Hour

// Manager keeps each visitor's form progress in a session between requests.
type Manager struct {
	store sessions.Store
	name  string
	log   *zap.Logger
}

// Options configures NewManager.
type Options struct {
	Key    string // signing key, 32+ chars
	Name   string // cookie name
	Domain string // blank means current host
	Dir    string // where session files are kept
	Secure bool
}

// NewManager builds a Manager on a filesystem session store. Only the
// session ID travels in the cookie, so long project descriptions fit.
func NewManager(opts Options, logger *zap.Logger) (*Manager, error) {
	if opts.Key == "" {
		return nil, errors.New("session key is empty; provide ≥32 random chars")
	}
	if len(opts.Key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(opts.Key)))
	}
	if err := os.MkdirAll(opts.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	store := sessions.NewFilesystemStore(opts.Dir, []byte(opts.Key))
	store.MaxLength(MaxSnapshotBytes * 2)
	store.Options = &sessions.Options{
		Domain:   opts.Domain,
		Path:     "/",
		MaxAge:   int(Lifetime.Seconds()),
		Secure:   opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("form session store initialized",
		zap.String("dir", opts.Dir),
		zap.Bool("secure", opts.Secure),
		zap.String("domain", opts.Domain))

	return NewManagerWithStore(store, opts.Name, logger), nil
}

// NewManagerWithStore wraps an existing store.
func NewManagerWithStore(store sessions.Store, name string, logger *zap.Logger) *Manager {
	return &Manager{store: store, name: name, log: logger}
}

func valueKey(def formflow.Definition) string { return "form." + def.Name }

func (m *Manager) session(r *http.Request) *sessions.Session {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			m.log.Warn("form session cookie invalid, using fresh session", zap.Error(err))
		} else {
			m.log.Error("form session store error, using fresh session", zap.Error(err))
		}
	}
	return sess
}

// Load returns the visitor's controller for def, fresh when nothing is
// stored or the stored snapshot cannot be read.
func (m *Manager) Load(r *http.Request, def formflow.Definition) *formflow.Controller {
	sess := m.session(r)
	raw, ok := sess.Values[valueKey(def)].(string)
	if !ok || raw == "" {
		return formflow.New(def)
	}
	var snap formflow.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		m.log.Warn("form snapshot unreadable, starting over",
			zap.String("form", def.Name), zap.Error(err))
		return formflow.New(def)
	}
	return formflow.Restore(def, snap)
}

// Save stores c's snapshot in the visitor's session.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, c *formflow.Controller) error {
	raw, err := json.Marshal(c.Snapshot())
	if err != nil {
		return fmt.Errorf("encode form snapshot: %w", err)
	}
	if len(raw) > MaxSnapshotBytes {
		return fmt.Errorf("form snapshot is %d bytes, limit %d", len(raw), MaxSnapshotBytes)
	}
	sess := m.session(r)
	sess.Values[valueKey(c.Definition())] = string(raw)
	return sess.Save(r, w)
}

// Clear forgets the stored progress for def.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request, def formflow.Definition) error {
	sess := m.session(r)
	delete(sess.Values, valueKey(def))
	return sess.Save(r, w)
}
