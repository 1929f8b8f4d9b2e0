package careers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dalemusser/orsonvision/internal/app/features/careers"
	"github.com/dalemusser/orsonvision/internal/app/system/assets"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/testutil"
	"go.uber.org/zap"
)

func TestServeCareers(t *testing.T) {
	logger := zap.NewNop()
	h := careers.NewHandler(assets.New(assets.Options{}, logger))
	h.Render = testutil.PageRenderer(t, careers.FS)

	req := httptest.NewRequest("GET", "/careers", nil)
	req = req.WithContext(i18n.WithLocalizer(req.Context(), i18n.New(i18n.French, logger)))
	rec := httptest.NewRecorder()
	h.ServeCareers(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if n := doc.Find("article.opening").Length(); n != 3 {
		t.Fatalf("openings = %d, want 3", n)
	}
	if got := doc.Find("#video-editor h2").Text(); got != "Monteur vidéo" {
		t.Errorf("video editor title = %q", got)
	}
	if href, _ := doc.Find("#motion-designer a.cta").Attr("href"); href != "/contact" {
		t.Errorf("apply link = %q", href)
	}
	if src, _ := doc.Find("img.team-photo").Attr("src"); src != "/assets/images/team.webp" {
		t.Errorf("team image = %q", src)
	}
}
