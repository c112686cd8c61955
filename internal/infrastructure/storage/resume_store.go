// Package storage implements local-disk resume intake: upload validation,
// collision-resistant persistence and authenticated retrieval.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// MaxResumeSize is the inclusive upload ceiling (10 MiB).
const MaxResumeSize = 10 << 20

// allowedMIMETypes is the fixed accept list for resume uploads.
var allowedMIMETypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

var contentTypeByExt = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ResumeStore implements ports.FileStore on a fixed local directory.
type ResumeStore struct {
	dir    string
	logger zerolog.Logger
}

func NewResumeStore(dir string, logger zerolog.Logger) *ResumeStore {
	return &ResumeStore{dir: dir, logger: logger}
}

// Validate rejects uploads outside the MIME allow-list or above the size
// ceiling. Runs before any byte reaches disk.
func (s *ResumeStore) Validate(upload ports.ResumeUpload) error {
	mediaType := upload.ContentType
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))

	if _, ok := allowedMIMETypes[mediaType]; !ok {
		return &domain.FileRejectedError{Reason: "invalid file type, only PDF and DOC/DOCX files are allowed"}
	}
	if upload.Size > MaxResumeSize {
		return &domain.FileRejectedError{Reason: "file size exceeds the 10MB limit"}
	}
	return nil
}

// Store writes the upload under `{sanitizedStem}_{unixMillis}_{token}{ext}`
// inside the resume directory, creating it if absent. O_EXCL guarantees an
// existing file is never overwritten.
func (s *ResumeStore) Store(ctx context.Context, upload ports.ResumeUpload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create resume dir: %w", err)
	}

	filename := uniqueFilename(upload.Filename)
	path := filepath.Join(s.dir, filename)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}
	if _, err := f.Write(upload.Data); err != nil {
		f.Close()
		return "", fmt.Errorf("write resume file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close resume file: %w", err)
	}

	s.logger.Info().Str("filename", filename).Int64("size", upload.Size).Msg("resume stored")
	return filepath.ToSlash(filepath.Join(s.dir, filename)), nil
}

// Retrieve reads a stored resume. Only the base name of relPath is used, so
// a stored path can never escape the resume directory.
func (s *ResumeStore) Retrieve(ctx context.Context, relPath string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	name := filepath.Base(filepath.FromSlash(relPath))
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, "", fmt.Errorf("read resume file: %w", err)
	}

	return data, ContentTypeForExt(filepath.Ext(name)), nil
}

// ContentTypeForExt infers a download content type from the file extension,
// defaulting to generic binary.
func ContentTypeForExt(ext string) string {
	if ct, ok := contentTypeByExt[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// uniqueFilename builds `{sanitizedStem}_{unixMillis}_{token}{ext}` from the
// client-supplied name.
func uniqueFilename(original string) string {
	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(filepath.Base(original), ext)
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%d_%s%s", sanitizeStem(stem), time.Now().UnixMilli(), token, strings.ToLower(ext))
}

// sanitizeStem replaces every non-alphanumeric rune with an underscore.
func sanitizeStem(stem string) string {
	var b strings.Builder
	b.Grow(len(stem))
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "resume"
	}
	return b.String()
}
