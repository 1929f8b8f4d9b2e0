package errors_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	uierrors "github.com/dalemusser/orsonvision/internal/app/features/errors"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotFound_French(t *testing.T) {
	h := uierrors.NewHandler()
	h.Render = testutil.PageRenderer(t, uierrors.FS)

	req := httptest.NewRequest("GET", "/nowhere", nil)
	req = req.WithContext(i18n.WithLocalizer(req.Context(), i18n.New(i18n.French, zap.NewNop())))
	rec := httptest.NewRecorder()
	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("h1").Text(); got != "Page introuvable" {
		t.Errorf("h1 = %q", got)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "fr" {
		t.Errorf("html lang = %q", lang)
	}
}

func TestErrorLogger_LogServerError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	el := uierrors.NewErrorLogger(zap.New(core))
	el.Render = testutil.PageRenderer(t, uierrors.FS)

	req := httptest.NewRequest("POST", "/contact", nil)
	rec := httptest.NewRecorder()
	el.LogServerError(rec, req, "insert contact failed", errors.New("boom"), "", "/contact")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	entries := logs.FilterMessage("insert contact failed").All()
	if len(entries) != 1 || entries[0].ContextMap()["path"] != "/contact" {
		t.Fatalf("log entries = %+v", entries)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Errorf("body missing default heading:\n%s", rec.Body.String())
	}
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	if href, _ := doc.Find("a.cta").Attr("href"); href != "/contact" {
		t.Errorf("back link = %q", href)
	}
}

func TestErrorLogger_LogBadRequest(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	el := uierrors.NewErrorLogger(zap.New(core))
	el.Render = testutil.PageRenderer(t, uierrors.FS)

	rec := httptest.NewRecorder()
	el.LogBadRequest(rec, httptest.NewRequest("POST", "/contact", nil), "parse form failed", errors.New("bad"), "Invalid form data.", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if logs.Len() != 1 {
		t.Errorf("expected one warn log, got %d", logs.Len())
	}
	if !strings.Contains(rec.Body.String(), "Invalid form data.") {
		t.Error("body missing user message")
	}
}
