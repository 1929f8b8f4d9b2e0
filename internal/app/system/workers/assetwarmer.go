// internal/app/system/workers/assetwarmer.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/orsonvision/internal/app/system/assets"
	"github.com/dalemusser/orsonvision/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Warmer is the part of the asset resolver the warmer drives.
type Warmer interface {
	Warm(ctx context.Context) (assets.WarmStats, error)
}

// budgeter is implemented by warmers that know how long a worst-case pass
// takes. The pass deadline is never shorter than that.
type budgeter interface {
	WarmBudget() time.Duration
}

// AssetWarmer is a background worker that re-probes every asset fallback
// chain so page renders can read resolved URLs from cache.
type AssetWarmer struct {
	warmer   Warmer
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup

	// InitialDelay postpones the first pass. Set it when the assets are
	// served by this process, whose listener is not up yet at Start.
	InitialDelay time.Duration
}

// NewAssetWarmer creates a warmer that runs once on Start and then every
// interval. A non-positive interval means the initial pass only.
func NewAssetWarmer(w Warmer, logger *zap.Logger, interval time.Duration) *AssetWarmer {
	return &AssetWarmer{
		warmer:   w,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the warm loop.
func (w *AssetWarmer) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("asset warmer started", zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for an in-flight pass to end.
func (w *AssetWarmer) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("asset warmer stopped")
}

func (w *AssetWarmer) run() {
	defer w.wg.Done()

	if w.InitialDelay > 0 {
		t := time.NewTimer(w.InitialDelay)
		select {
		case <-w.stopCh:
			t.Stop()
			return
		case <-t.C:
		}
	}

	w.warm()
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.warm()
		}
	}
}

func (w *AssetWarmer) passTimeout() time.Duration {
	d := timeouts.Medium()
	if b, ok := w.warmer.(budgeter); ok {
		d = max(d, b.WarmBudget())
	}
	return d
}

func (w *AssetWarmer) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), w.passTimeout())
	defer cancel()

	// Stop cancels a pass that is still probing.
	go func() {
		select {
		case <-w.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	stats, err := w.warmer.Warm(ctx)
	if err != nil && stats.Unresolved < stats.Keys {
		w.log.Warn("asset warm pass incomplete",
			zap.Int("keys", stats.Keys),
			zap.Int("unresolved", stats.Unresolved),
			zap.Error(err))
		return
	}
	if err != nil {
		w.log.Warn("asset warm pass failed", zap.Error(err))
		return
	}
	w.log.Info("asset warm pass complete",
		zap.Int("keys", stats.Keys),
		zap.Int("live", stats.Live),
		zap.Int("placeholders", stats.Placeholders))
}
