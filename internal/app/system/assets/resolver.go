// Package assets maps logical media keys to URLs and tolerates missing files.
//
// Every failure path degrades to a usable URL: an unknown key yields the
// kind placeholder, a failed probe moves on to the next candidate, and a
// chain where nothing answers yields its last candidate. Nothing here
// returns an error to the page that asked for a URL.
package assets

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dalemusser/orsonvision/internal/app/system/timeouts"
	"github.com/dalemusser/orsonvision/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Options.Concurrency is zero.
const DefaultConcurrency = 4

// Options configures a Resolver. Nil tables mean the built-in defaults.
type Options struct {
	Video map[string]models.AssetFallback
	Image map[string]models.AssetFallback

	// BaseURL is joined with relative candidates ("/assets/...") before they
	// are probed. Returned URLs are always the candidates as configured.
	BaseURL string

	Client *http.Client

	// ProbeTimeout bounds one HEAD request. Zero means timeouts.Probe().
	ProbeTimeout time.Duration

	// Concurrency bounds how many keys Warm resolves at once. Candidates of
	// a single key are always probed one after another.
	Concurrency int
}

type cacheKey struct {
	kind models.AssetKind
	key  string
}

// WarmStats summarises the last Warm pass.
type WarmStats struct {
	Keys         int       `json:"keys"`
	Live         int       `json:"live"`         // a candidate answered 2xx
	Placeholders int       `json:"placeholders"` // nothing answered; last candidate used
	Unresolved   int       `json:"unresolved"`   // pass ended first; previous URL kept
	At           time.Time `json:"at"`
}

// Resolver resolves asset keys. Tables are read-only after New; the warm
// cache is swapped atomically under mu.
type Resolver struct {
	video map[string]models.AssetFallback
	image map[string]models.AssetFallback

	base         *url.URL
	client       *http.Client
	probeTimeout time.Duration
	concurrency  int
	log          *zap.Logger

	mu    sync.RWMutex
	cache map[cacheKey]string
	stats WarmStats
}

// New builds a Resolver. A malformed BaseURL is logged and ignored, which
// makes every relative probe fail and every chain fall through to its last
// candidate.
func New(opts Options, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		video:        opts.Video,
		image:        opts.Image,
		client:       opts.Client,
		probeTimeout: opts.ProbeTimeout,
		concurrency:  opts.Concurrency,
		log:          logger,
		cache:        map[cacheKey]string{},
	}
	if r.video == nil {
		r.video = DefaultVideos
	}
	if r.image == nil {
		r.image = DefaultImages
	}
	if r.client == nil {
		r.client = &http.Client{}
	}
	if r.probeTimeout <= 0 {
		r.probeTimeout = timeouts.Probe()
	}
	if r.concurrency <= 0 {
		r.concurrency = DefaultConcurrency
	}
	if opts.BaseURL != "" {
		u, err := url.Parse(opts.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			logger.Warn("asset base url ignored", zap.String("base_url", opts.BaseURL), zap.Error(err))
		} else {
			r.base = u
		}
	}
	return r
}

func (r *Resolver) table(kind models.AssetKind) map[string]models.AssetFallback {
	if kind == models.AssetVideo {
		return r.video
	}
	return r.image
}

// Lookup returns the table entry for key.
func (r *Resolver) Lookup(key string, kind models.AssetKind) (models.AssetFallback, bool) {
	fb, ok := r.table(kind)[key]
	return fb, ok
}

// Keys returns the number of keys configured for kind.
func (r *Resolver) Keys(kind models.AssetKind) int {
	return len(r.table(kind))
}

// ResolveURL returns the configured primary URL for key, or the kind
// placeholder when the key is unknown. It never touches the network.
func (r *Resolver) ResolveURL(key string, kind models.AssetKind) string {
	fb, ok := r.Lookup(key, kind)
	if !ok || fb.Primary == "" {
		r.log.Warn("asset key not found; using placeholder",
			zap.String("kind", string(kind)),
			zap.String("key", key))
		return kind.Placeholder()
	}
	return fb.Primary
}

// Probe issues one HEAD request and reports whether it answered 2xx.
// Transport errors, non-2xx statuses and unusable URLs all report false.
func (r *Resolver) Probe(ctx context.Context, rawURL string) bool {
	target, ok := r.absolute(rawURL)
	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Debug("asset probe failed", zap.String("url", target), zap.Error(err))
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (r *Resolver) absolute(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || raw == "" {
		return "", false
	}
	if u.IsAbs() {
		return u.String(), u.Scheme == "http" || u.Scheme == "https"
	}
	if r.base == nil {
		return "", false
	}
	return r.base.ResolveReference(u).String(), true
}

// ResolveFirstAvailable probes urls in order and returns the first that
// answers. When none does it returns the last element; an empty list yields
// "".
func (r *Resolver) ResolveFirstAvailable(ctx context.Context, urls []string) string {
	u, _, _ := r.walkChain(ctx, urls)
	return u
}

// walkChain probes urls in order. complete is false when ctx ended before
// the chain settled, in which case u is the last element but says nothing
// about which candidates are reachable.
func (r *Resolver) walkChain(ctx context.Context, urls []string) (u string, live, complete bool) {
	if len(urls) == 0 {
		return "", false, true
	}
	last := urls[len(urls)-1]
	for _, c := range urls {
		if ctx.Err() != nil {
			return last, false, false
		}
		if r.Probe(ctx, c) {
			return c, true, true
		}
	}
	if ctx.Err() != nil {
		return last, false, false
	}
	return last, false, true
}

func (r *Resolver) candidates(key string, kind models.AssetKind) []string {
	fb, ok := r.Lookup(key, kind)
	if !ok {
		return []string{r.ResolveURL(key, kind)}
	}
	c := fb.Candidates()
	if len(c) == 0 {
		return []string{kind.Placeholder()}
	}
	return c
}

// ResolveOptimized probes primary then fallbacks for key and returns the
// first that answers.
func (r *Resolver) ResolveOptimized(ctx context.Context, key string, kind models.AssetKind) string {
	return r.ResolveFirstAvailable(ctx, r.candidates(key, kind))
}

// Cached returns the URL chosen by the last Warm pass, or ResolveURL when
// the key has not been warmed. It never blocks on the network.
func (r *Resolver) Cached(key string, kind models.AssetKind) string {
	r.mu.RLock()
	u, ok := r.cache[cacheKey{kind: kind, key: key}]
	r.mu.RUnlock()
	if ok {
		return u
	}
	return r.ResolveURL(key, kind)
}

// Video and Image are shorthands for Cached, for use from templates.
func (r *Resolver) Video(key string) string { return r.Cached(key, models.AssetVideo) }
func (r *Resolver) Image(key string) string { return r.Cached(key, models.AssetImage) }

// Warm resolves every configured key, up to the configured number at once.
// Keys whose chain settled are merged into the cache in one swap; keys the
// pass ran out of time for keep their previous URL and are counted as
// Unresolved, and the error reports them. A pass that settles nothing
// leaves cache and stats untouched.
func (r *Resolver) Warm(ctx context.Context) (WarmStats, error) {
	type result struct {
		k        cacheKey
		url      string
		live     bool
		complete bool
	}

	jobs := r.jobs()
	results := make([]result, len(jobs))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			u, live, complete := r.walkChain(ctx, r.candidates(job.key, job.kind))
			results[i] = result{k: job, url: u, live: live, complete: complete}
			return nil
		})
	}
	_ = g.Wait()

	stats := WarmStats{Keys: len(results), At: time.Now().UTC()}
	for _, res := range results {
		switch {
		case !res.complete:
			stats.Unresolved++
		case res.live:
			stats.Live++
		default:
			stats.Placeholders++
		}
	}

	if stats.Keys > 0 && stats.Unresolved == stats.Keys {
		return stats, fmt.Errorf("asset warm: no keys resolved: %w", context.Cause(ctx))
	}

	r.mu.Lock()
	cache := maps.Clone(r.cache)
	for _, res := range results {
		if res.complete {
			cache[res.k] = res.url
		}
	}
	r.cache = cache
	r.stats = stats
	r.mu.Unlock()

	if stats.Unresolved > 0 {
		return stats, fmt.Errorf("asset warm: %d of %d keys unresolved: %w",
			stats.Unresolved, stats.Keys, context.Cause(ctx))
	}
	return stats, nil
}

func (r *Resolver) jobs() []cacheKey {
	jobs := make([]cacheKey, 0, len(r.video)+len(r.image))
	for key := range r.video {
		jobs = append(jobs, cacheKey{kind: models.AssetVideo, key: key})
	}
	for key := range r.image {
		jobs = append(jobs, cacheKey{kind: models.AssetImage, key: key})
	}
	return jobs
}

// WarmBudget is how long a Warm pass can take when every probe runs to its
// timeout: the longest chain, once per round of concurrent keys.
func (r *Resolver) WarmBudget() time.Duration {
	keys, longest := 0, 0
	for _, tbl := range []map[string]models.AssetFallback{r.video, r.image} {
		for _, fb := range tbl {
			keys++
			longest = max(longest, len(fb.Candidates()))
		}
	}
	if keys == 0 {
		return 0
	}
	rounds := (keys + r.concurrency - 1) / r.concurrency
	return time.Duration(rounds*longest) * r.probeTimeout
}

// Stats returns the summary of the last Warm pass (zero before the first).
func (r *Resolver) Stats() WarmStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}
