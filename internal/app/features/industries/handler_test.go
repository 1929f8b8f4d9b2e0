package industries_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dalemusser/orsonvision/internal/app/features/industries"
	"github.com/dalemusser/orsonvision/internal/app/system/assets"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, notFound http.HandlerFunc) *industries.Handler {
	t.Helper()
	logger := zap.NewNop()
	if notFound == nil {
		notFound = func(w http.ResponseWriter, r *http.Request) { t.Errorf("unexpected NotFound for %s", r.URL.Path) }
	}
	h := industries.NewHandler(assets.New(assets.Options{}, logger), notFound, logger)
	h.Render = testutil.PageRenderer(t, industries.FS)
	return h
}

func TestServeIndex(t *testing.T) {
	h := newHandler(t, nil)

	rec := httptest.NewRecorder()
	h.ServeIndex(rec, httptest.NewRequest("GET", "/industries", nil))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	var hrefs []string
	doc.Find("a.industry-card").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		hrefs = append(hrefs, href)
	})
	want := []string{"/industries/fashion", "/industries/hospitality", "/industries/wedding", "/industries/education"}
	if diff := cmp.Diff(want, hrefs); diff != "" {
		t.Errorf("card links mismatch (-want +got):\n%s", diff)
	}
}

func TestServeLanding(t *testing.T) {
	h := newHandler(t, nil)

	req := httptest.NewRequest("GET", "/industries/wedding", nil)
	req = testutil.WithChiURLParam(req, "slug", "wedding")
	req = req.WithContext(i18n.WithLocalizer(req.Context(), i18n.New(i18n.French, zap.NewNop())))
	rec := httptest.NewRecorder()
	h.ServeLanding(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find(".hero h1").Text(); got != "Mariages" {
		t.Errorf("heading = %q", got)
	}
	if src, _ := doc.Find(".hero-video source").Attr("src"); src != "/assets/videos/wedding/first-dance.webm" {
		t.Errorf("hero video = %q", src)
	}
	if cls, _ := doc.Find(".hero").Attr("class"); !strings.Contains(cls, "anim-light-leak") {
		t.Errorf("hero class = %q", cls)
	}
	if n := doc.Find("ul.services li").Length(); n != 3 {
		t.Errorf("services = %d, want 3", n)
	}
}

func TestServeLanding_UnknownSlug(t *testing.T) {
	called := false
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNotFound)
	})

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/industries/aerospace", nil), "slug", "aerospace")
	rec := httptest.NewRecorder()
	h.ServeLanding(rec, req)

	if !called {
		t.Fatal("NotFound was not called")
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
