package home_test

import (
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dalemusser/orsonvision/internal/app/features/home"
	"github.com/dalemusser/orsonvision/internal/app/system/assets"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *home.Handler {
	t.Helper()
	logger := zap.NewNop()
	h := home.NewHandler(assets.New(assets.Options{}, logger))
	h.Render = testutil.PageRenderer(t, home.FS)
	return h
}

func TestServeRoot_English(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeRoot(rec, httptest.NewRequest("GET", "/", nil))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find(".hero h1").Text(); got != "We make brands look like cinema." {
		t.Errorf("headline = %q", got)
	}
	// Before any warm pass the cache falls back to the primary URL.
	if src, _ := doc.Find(".hero-video source").Attr("src"); src != "/assets/videos/hero-reel.webm" {
		t.Errorf("hero video = %q", src)
	}
	if n := doc.Find(".industry-card").Length(); n != 4 {
		t.Errorf("industry cards = %d, want 4", n)
	}
	if cls, _ := doc.Find(".hero").Attr("class"); cls != "hero anim-lens-flare motion-reduce:anim-fade" {
		t.Errorf("hero class = %q", cls)
	}
	if n := doc.Find(".journey-teaser li").Length(); n != 5 {
		t.Errorf("journey stages = %d, want 5", n)
	}
}

func TestServeRoot_French(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(i18n.WithLocalizer(req.Context(), i18n.New(i18n.French, zap.NewNop())))
	rec := httptest.NewRecorder()
	h.ServeRoot(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find(".brand").Text(); got != "Digital Vérité" {
		t.Errorf("brand = %q", got)
	}
	if got := doc.Find(".industry-card h3").First().Text(); got != "Mode" {
		t.Errorf("first industry = %q", got)
	}
}
