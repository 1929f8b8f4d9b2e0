package assets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dalemusser/orsonvision/internal/app/system/assets"
	"github.com/dalemusser/orsonvision/internal/app/system/timeouts"
	"github.com/dalemusser/orsonvision/internal/domain/models"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// headServer answers 200 for paths in live and 404 otherwise, recording
// every HEAD it sees in order.
type headServer struct {
	*httptest.Server
	mu   sync.Mutex
	seen []string
}

func newHeadServer(t *testing.T, live ...string) *headServer {
	t.Helper()
	ok := map[string]bool{}
	for _, p := range live {
		ok[p] = true
	}
	ps := &headServer{}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("probe used %s, want HEAD", r.Method)
		}
		ps.mu.Lock()
		ps.seen = append(ps.seen, r.URL.Path)
		ps.mu.Unlock()
		if ok[r.URL.Path] {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(ps.Close)
	return ps
}

func (ps *headServer) requested() []string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return append([]string(nil), ps.seen...)
}

func TestResolveURL_KnownKeysReturnPrimary(t *testing.T) {
	r := assets.New(assets.Options{}, zap.NewNop())

	for key, fb := range assets.DefaultVideos {
		if got := r.ResolveURL(key, models.AssetVideo); got != fb.Primary {
			t.Errorf("video %q: got %q, want %q", key, got, fb.Primary)
		}
	}
	for key, fb := range assets.DefaultImages {
		if got := r.ResolveURL(key, models.AssetImage); got != fb.Primary {
			t.Errorf("image %q: got %q, want %q", key, got, fb.Primary)
		}
	}
}

func TestResolveURL_UnknownKeyReturnsPlaceholderAndWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := assets.New(assets.Options{}, zap.New(core))

	if got := r.ResolveURL("no-such-video", models.AssetVideo); got != models.VideoPlaceholder {
		t.Errorf("video: got %q, want %q", got, models.VideoPlaceholder)
	}
	if got := r.ResolveURL("no-such-image", models.AssetImage); got != models.ImagePlaceholder {
		t.Errorf("image: got %q, want %q", got, models.ImagePlaceholder)
	}
	if n := logs.FilterMessage("asset key not found; using placeholder").Len(); n != 2 {
		t.Errorf("expected 2 warnings, got %d", n)
	}
}

func TestProbe(t *testing.T) {
	srv := newHeadServer(t, "/ok.mp4")
	r := assets.New(assets.Options{BaseURL: srv.URL}, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"relative live", "/ok.mp4", true},
		{"absolute live", srv.URL + "/ok.mp4", true},
		{"missing", "/missing.mp4", false},
		{"empty", "", false},
		{"unsupported scheme", "ftp://example.com/ok.mp4", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Probe(ctx, tt.url); got != tt.want {
				t.Errorf("Probe(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestProbe_ServerErrorAndNetworkFailureAreFalse(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	r := assets.New(assets.Options{}, zap.NewNop())
	if r.Probe(context.Background(), failing.URL+"/x.jpg") {
		t.Error("500 response should not count as available")
	}

	closed := httptest.NewServer(http.NotFoundHandler())
	addr := closed.URL
	closed.Close()
	if r.Probe(context.Background(), addr+"/x.jpg") {
		t.Error("connection failure should not count as available")
	}
}

func TestProbe_RelativeWithoutBaseIsFalse(t *testing.T) {
	r := assets.New(assets.Options{}, zap.NewNop())
	if r.Probe(context.Background(), "/assets/images/team.jpg") {
		t.Error("relative url without base should not be probed")
	}
}

func TestResolveFirstAvailable_Empty(t *testing.T) {
	r := assets.New(assets.Options{}, zap.NewNop())
	if got := r.ResolveFirstAvailable(context.Background(), nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := r.ResolveFirstAvailable(context.Background(), []string{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestResolveFirstAvailable_SingleUnreachableReturnsIt(t *testing.T) {
	r := assets.New(assets.Options{}, zap.NewNop())
	u := "http://127.0.0.1:1/never.jpg"
	if got := r.ResolveFirstAvailable(context.Background(), []string{u}); got != u {
		t.Errorf("got %q, want %q", got, u)
	}
}

func TestResolveFirstAvailable_AllFailReturnsLast(t *testing.T) {
	srv := newHeadServer(t)
	r := assets.New(assets.Options{BaseURL: srv.URL}, zap.NewNop())

	urls := []string{"/a.jpg", "/b.jpg", "/placeholder.jpg"}
	if got := r.ResolveFirstAvailable(context.Background(), urls); got != "/placeholder.jpg" {
		t.Errorf("got %q, want last element", got)
	}
	if diff := cmp.Diff(urls, srv.requested()); diff != "" {
		t.Errorf("probe order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveOptimized_ThirdCandidateWinsAndShortCircuits(t *testing.T) {
	srv := newHeadServer(t, "/v/third.mp4", "/v/fourth.mp4")
	r := assets.New(assets.Options{
		BaseURL: srv.URL,
		Video: map[string]models.AssetFallback{
			"reel": {
				Primary:   "/v/first.webm",
				Fallbacks: []string{"/v/second.mp4", "/v/third.mp4", "/v/fourth.mp4"},
			},
		},
	}, zap.NewNop())

	got := r.ResolveOptimized(context.Background(), "reel", models.AssetVideo)
	if got != "/v/third.mp4" {
		t.Fatalf("got %q, want /v/third.mp4", got)
	}

	want := []string{"/v/first.webm", "/v/second.mp4", "/v/third.mp4"}
	if diff := cmp.Diff(want, srv.requested()); diff != "" {
		t.Errorf("probed (-want +got):\n%s", diff)
	}
}

func TestResolveOptimized_UnknownKeyReturnsPlaceholder(t *testing.T) {
	srv := newHeadServer(t)
	r := assets.New(assets.Options{BaseURL: srv.URL}, zap.NewNop())

	got := r.ResolveOptimized(context.Background(), "nope", models.AssetImage)
	if got != models.ImagePlaceholder {
		t.Errorf("got %q, want %q", got, models.ImagePlaceholder)
	}
}

func TestResolveOptimized_AppendsPlaceholder(t *testing.T) {
	srv := newHeadServer(t)
	r := assets.New(assets.Options{
		BaseURL: srv.URL,
		Image: map[string]models.AssetFallback{
			"logo": {Primary: "/i/logo.svg", Placeholder: "/i/blank.png"},
		},
	}, zap.NewNop())

	if got := r.ResolveOptimized(context.Background(), "logo", models.AssetImage); got != "/i/blank.png" {
		t.Errorf("got %q, want placeholder", got)
	}
}

func TestWarm_FillsCacheAndStats(t *testing.T) {
	srv := newHeadServer(t, "/v/b.mp4", "/i/a.jpg")
	r := assets.New(assets.Options{
		BaseURL: srv.URL,
		Video: map[string]models.AssetFallback{
			"reel":  {Primary: "/v/a.webm", Fallbacks: []string{"/v/b.mp4", "/v/c.mp4"}},
			"promo": {Primary: "/v/p.webm", Fallbacks: []string{"/v/ph.mp4"}},
		},
		Image: map[string]models.AssetFallback{
			"team": {Primary: "/i/a.jpg"},
		},
	}, zap.NewNop())

	// Before warming, Cached is the primary and never probes.
	if got := r.Cached("reel", models.AssetVideo); got != "/v/a.webm" {
		t.Errorf("cold Cached = %q, want primary", got)
	}
	if n := len(srv.requested()); n != 0 {
		t.Errorf("Cached probed %d urls before warm", n)
	}

	stats, err := r.Warm(context.Background())
	if err != nil {
		t.Fatalf("Warm: %v", err)
	}
	if stats.Keys != 3 || stats.Live != 2 || stats.Placeholders != 1 {
		t.Errorf("stats = %+v, want keys=3 live=2 placeholders=1", stats)
	}
	if got := r.Video("reel"); got != "/v/b.mp4" {
		t.Errorf("Video(reel) = %q, want /v/b.mp4", got)
	}
	if got := r.Video("promo"); got != "/v/ph.mp4" {
		t.Errorf("Video(promo) = %q, want last candidate", got)
	}
	if got := r.Image("team"); got != "/i/a.jpg" {
		t.Errorf("Image(team) = %q", got)
	}
	if got := r.Image("unknown"); got != models.ImagePlaceholder {
		t.Errorf("Image(unknown) = %q, want placeholder", got)
	}
	if r.Stats().Keys != 3 {
		t.Errorf("Stats() not recorded")
	}
}

func TestWarm_CanceledContext(t *testing.T) {
	srv := newHeadServer(t)
	r := assets.New(assets.Options{BaseURL: srv.URL}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Warm(ctx); err == nil {
		t.Error("expected error from canceled warm")
	}
	if r.Stats().Keys != 0 {
		t.Error("canceled warm should not replace stats")
	}
}

func TestWarm_SlowKeyDoesNotDiscardOthers(t *testing.T) {
	var hang atomic.Bool
	release := make(chan struct{})
	live := map[string]bool{"/slow/b.mp4": true, "/i/team.jpg": true, "/i/logo.svg": true}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hang.Load() && strings.HasPrefix(r.URL.Path, "/slow/") {
			select {
			case <-r.Context().Done():
			case <-release:
			}
			return
		}
		if live[r.URL.Path] {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	r := assets.New(assets.Options{
		BaseURL:      srv.URL,
		ProbeTimeout: 30 * time.Millisecond,
		Video: map[string]models.AssetFallback{
			"slow": {Primary: "/slow/a.webm", Fallbacks: []string{"/slow/b.mp4", "/slow/c.mp4", "/slow/d.mp4"}},
		},
		Image: map[string]models.AssetFallback{
			"team": {Primary: "/i/team.jpg"},
			"logo": {Primary: "/i/logo.svg"},
		},
	}, zap.NewNop())

	if _, err := r.Warm(context.Background()); err != nil {
		t.Fatalf("first Warm: %v", err)
	}
	if got := r.Video("slow"); got != "/slow/b.mp4" {
		t.Fatalf("Video(slow) after first pass = %q", got)
	}

	// Four hanging candidates at 30ms each cannot settle inside 100ms.
	hang.Store(true)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	stats, err := r.Warm(ctx)
	if err == nil {
		t.Fatal("expected an error for the unresolved key")
	}
	if stats.Keys != 3 || stats.Live != 2 || stats.Unresolved != 1 {
		t.Errorf("stats = %+v, want keys=3 live=2 unresolved=1", stats)
	}
	if got := r.Stats(); got.Unresolved != 1 {
		t.Errorf("Stats() = %+v, want the partial pass recorded", got)
	}
	if got := r.Image("team"); got != "/i/team.jpg" {
		t.Errorf("Image(team) = %q", got)
	}
	if got := r.Image("logo"); got != "/i/logo.svg" {
		t.Errorf("Image(logo) = %q", got)
	}
	if got := r.Video("slow"); got != "/slow/b.mp4" {
		t.Errorf("Video(slow) = %q, want the previous pass's URL", got)
	}
}

func TestWarmBudget(t *testing.T) {
	r := assets.New(assets.Options{
		ProbeTimeout: time.Second,
		Concurrency:  2,
		Video: map[string]models.AssetFallback{
			"reel": {Primary: "/v/a.webm", Fallbacks: []string{"/v/b.mp4"}, Placeholder: "/v/ph.mp4"},
		},
		Image: map[string]models.AssetFallback{
			"a": {Primary: "/i/a.jpg"},
			"b": {Primary: "/i/b.jpg"},
		},
	}, zap.NewNop())

	// Two rounds of keys, each as long as the three-candidate chain.
	if got, want := r.WarmBudget(), 6*time.Second; got != want {
		t.Errorf("WarmBudget() = %v, want %v", got, want)
	}
	if got := assets.New(assets.Options{Video: map[string]models.AssetFallback{}, Image: map[string]models.AssetFallback{}}, zap.NewNop()).WarmBudget(); got != 0 {
		t.Errorf("empty tables budget = %v, want 0", got)
	}
}

func TestNew_DefaultTimeoutFollowsTimeoutsPackage(t *testing.T) {
	timeouts.Configure(timeouts.Config{Probe: 2 * time.Second})
	t.Cleanup(timeouts.Reset)

	r := assets.New(assets.Options{
		Video: map[string]models.AssetFallback{},
		Image: map[string]models.AssetFallback{"team": {Primary: "/i/team.jpg"}},
	}, zap.NewNop())
	if got := r.WarmBudget(); got != 2*time.Second {
		t.Errorf("WarmBudget() = %v, want one 2s request", got)
	}
}
