package uploads

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// fileHeader builds a real multipart.FileHeader by parsing a request body.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("attachments", name)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(content)
	mw.Close()

	r := httptest.NewRequest("POST", "/contact", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return r.MultipartForm.File["attachments"][0]
}

func TestSave(t *testing.T) {
	s, err := New(t.TempDir(), 1024, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	att, err := s.Save(fileHeader(t, "Brief.PDF", []byte("%PDF-1.4 hello")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(att.StoredName, ".pdf") {
		t.Errorf("StoredName = %q", att.StoredName)
	}
	if att.OriginalName != "Brief.PDF" {
		t.Errorf("OriginalName = %q", att.OriginalName)
	}
	if att.ContentType != "application/pdf" {
		t.Errorf("ContentType = %q", att.ContentType)
	}
	if att.Size != int64(len("%PDF-1.4 hello")) {
		t.Errorf("Size = %d", att.Size)
	}

	p, err := s.Path(att.StoredName)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil || string(data) != "%PDF-1.4 hello" {
		t.Errorf("stored content = %q, %v", data, err)
	}

	if err := s.Remove(att.StoredName); err != nil {
		t.Errorf("Remove: %v", err)
	}
	if err := s.Remove(att.StoredName); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestSave_Rejects(t *testing.T) {
	s, err := New(t.TempDir(), 16, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Save(fileHeader(t, "run.exe", []byte("MZ"))); !errors.Is(err, ErrType) {
		t.Errorf("exe: err = %v, want ErrType", err)
	}
	if _, err := s.Save(fileHeader(t, "big.txt", bytes.Repeat([]byte("a"), 17))); !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversize: err = %v, want ErrTooLarge", err)
	}
	if _, err := s.Save(fileHeader(t, "fit.txt", bytes.Repeat([]byte("a"), 16))); err != nil {
		t.Errorf("exact fit: %v", err)
	}
}

func TestPath_RejectsForeignNames(t *testing.T) {
	s, err := New(t.TempDir(), 16, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"../etc/passwd", "notauuid.pdf", "0b7e4c2e-8a4f-4c1e-9d0e-2f3b5a6c7d8e.exe"} {
		if _, err := s.Path(name); !errors.Is(err, ErrName) {
			t.Errorf("Path(%q) err = %v, want ErrName", name, err)
		}
	}
}

func TestCommit_MovesOutOfPending(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 1024, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	att, err := s.Save(fileHeader(t, "notes.txt", []byte("shot list")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	pending := filepath.Join(s.PendingDir(), att.StoredName)
	if _, err := os.Stat(pending); err != nil {
		t.Fatalf("saved file not pending: %v", err)
	}

	if err := s.Commit(att.StoredName); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := s.Commit(att.StoredName); err != nil {
		t.Errorf("second Commit: %v", err)
	}
	if _, err := os.Stat(pending); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("pending copy still there: %v", err)
	}
	p, err := s.Path(att.StoredName)
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join(dir, att.StoredName) {
		t.Errorf("Path = %q, want committed location", p)
	}

	if err := s.Commit("0b7e4c2e-8a4f-4c1e-9d0e-2f3b5a6c7d8e.pdf"); err == nil {
		t.Error("committing a file that was never saved should fail")
	}
	if err := s.Commit("../x.pdf"); !errors.Is(err, ErrName) {
		t.Errorf("Commit foreign name err = %v, want ErrName", err)
	}
}
