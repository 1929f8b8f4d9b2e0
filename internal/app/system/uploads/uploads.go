// internal/app/system/uploads/uploads.go
package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dalemusser/orsonvision/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrTooLarge is returned when a file exceeds the configured limit.
	ErrTooLarge = errors.New("uploads: file too large")
	// ErrType is returned for extensions outside AllowedExtensions.
	ErrType = errors.New("uploads: file type not allowed")
	// ErrName is returned for stored names that are not ours.
	ErrName = errors.New("uploads: invalid stored name")
)

// AllowedExtensions lists the brief and reference formats visitors may attach.
var AllowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".zip":  true,
}

// Store writes contact attachments to a local directory under uuid names.
// New files land in the pending subdirectory and move up to dir when the
// submission that references them is committed. Whatever stays pending
// belongs to an abandoned form and is left for the file sweeper.
type Store struct {
	dir      string
	pending  string
	maxBytes int64
	log      *zap.Logger
}

// New creates dir and its pending subdirectory if needed and returns a Store.
func New(dir string, maxBytes int64, logger *zap.Logger) (*Store, error) {
	pending := filepath.Join(dir, "pending")
	if err := os.MkdirAll(pending, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, pending: pending, maxBytes: maxBytes, log: logger}, nil
}

// PendingDir is where uncommitted attachments wait.
func (s *Store) PendingDir() string { return s.pending }

// MaxBytes is the per-file limit.
func (s *Store) MaxBytes() int64 { return s.maxBytes }

// Save copies an uploaded file into the pending area and returns its
// metadata.
func (s *Store) Save(fh *multipart.FileHeader) (models.Attachment, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !AllowedExtensions[ext] {
		return models.Attachment{}, ErrType
	}
	if fh.Size > s.maxBytes {
		return models.Attachment{}, ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return models.Attachment{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	stored := uuid.NewString() + ext
	att, err := s.write(src, stored)
	if err != nil {
		return models.Attachment{}, err
	}
	att.OriginalName = filepath.Base(fh.Filename)
	s.log.Info("attachment stored",
		zap.String("stored_name", att.StoredName),
		zap.String("content_type", att.ContentType),
		zap.Int64("size", att.Size))
	return att, nil
}

func (s *Store) write(src io.Reader, stored string) (models.Attachment, error) {
	tmp, err := os.CreateTemp(s.pending, ".upload-*")
	if err != nil {
		return models.Attachment{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	head := make([]byte, 512)
	n, _ := io.ReadFull(src, head)
	head = head[:n]

	// One byte past the limit tells an oversize stream apart from an exact fit.
	written, err := io.Copy(tmp, io.MultiReader(bytes.NewReader(head), io.LimitReader(src, s.maxBytes-int64(n)+1)))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return models.Attachment{}, fmt.Errorf("write upload: %w", err)
	}
	if written > s.maxBytes {
		return models.Attachment{}, ErrTooLarge
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.pending, stored)); err != nil {
		return models.Attachment{}, fmt.Errorf("place upload: %w", err)
	}
	return models.Attachment{
		StoredName:  stored,
		ContentType: http.DetectContentType(head),
		Size:        written,
	}, nil
}

func checkName(stored string) error {
	ext := filepath.Ext(stored)
	if _, err := uuid.Parse(strings.TrimSuffix(stored, ext)); err != nil || !AllowedExtensions[ext] {
		return ErrName
	}
	return nil
}

// Path returns the on-disk path for a stored name, committed or not.
func (s *Store) Path(stored string) (string, error) {
	if err := checkName(stored); err != nil {
		return "", err
	}
	committed := filepath.Join(s.dir, stored)
	if _, err := os.Stat(committed); err == nil {
		return committed, nil
	}
	return filepath.Join(s.pending, stored), nil
}

// Commit moves a pending file next to the other submitted attachments.
// Committing a file twice is not an error.
func (s *Store) Commit(stored string) error {
	if err := checkName(stored); err != nil {
		return err
	}
	dst := filepath.Join(s.dir, stored)
	err := os.Rename(filepath.Join(s.pending, stored), dst)
	if errors.Is(err, os.ErrNotExist) {
		if _, serr := os.Stat(dst); serr == nil {
			return nil
		}
	}
	if err != nil {
		return fmt.Errorf("commit upload: %w", err)
	}
	return nil
}

// Remove deletes a stored file wherever it is. Missing files are not an
// error.
func (s *Store) Remove(stored string) error {
	if err := checkName(stored); err != nil {
		return err
	}
	for _, p := range []string{filepath.Join(s.pending, stored), filepath.Join(s.dir, stored)} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
