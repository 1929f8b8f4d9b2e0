// internal/app/system/workers/filesweep.go
package workers

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FileSweep is a background worker that deletes files left behind by
// abandoned contact forms: pending attachments and expired session files.
type FileSweep struct {
	dirs     []string
	log      *zap.Logger
	interval time.Duration
	maxAge   time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup

	now func() time.Time
}

// NewFileSweep creates a file sweep worker.
//
// Parameters:
//   - logger: zap logger for logging
//   - interval: how often to sweep (e.g., 1 hour)
//   - maxAge: files not modified for this long are deleted (e.g., 48 hours)
//   - dirs: directories to sweep; subdirectories are left alone
func NewFileSweep(logger *zap.Logger, interval, maxAge time.Duration, dirs ...string) *FileSweep {
	return &FileSweep{
		dirs:     dirs,
		log:      logger,
		interval: interval,
		maxAge:   maxAge,
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
}

// Start begins the background sweep loop.
func (w *FileSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("file sweep worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("max_age", w.maxAge),
		zap.Strings("dirs", w.dirs))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *FileSweep) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("file sweep worker stopped")
}

func (w *FileSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

// sweep removes stale regular files from every directory and returns how
// many it deleted.
func (w *FileSweep) sweep() int {
	cutoff := w.now().Add(-w.maxAge)
	removed := 0
	for _, dir := range w.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				w.log.Error("file sweep: read dir failed", zap.String("dir", dir), zap.Error(err))
			}
			continue
		}
		for _, e := range entries {
			if !e.Type().IsRegular() {
				continue
			}
			info, err := e.Info()
			if err != nil || !info.ModTime().Before(cutoff) {
				continue
			}
			p := filepath.Join(dir, e.Name())
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				w.log.Warn("file sweep: remove failed", zap.String("path", p), zap.Error(err))
				continue
			}
			removed++
		}
	}
	if removed > 0 {
		w.log.Info("swept stale files", zap.Int("count", removed))
	}
	return removed
}
