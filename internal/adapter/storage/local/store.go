// Package local stores image blobs on the local filesystem for development.
package local

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/heartmarshall/resale-backend/internal/adapter/storage/local")

// Store writes objects under dir and serves them from publicURL.
type Store struct {
	dir       string
	publicURL string
	log       *slog.Logger
}

// NewStore creates a Store. dir is created on first upload.
func NewStore(dir, publicURL string, logger *slog.Logger) *Store {
	return &Store{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       logger.With("adapter", "local_storage"),
	}
}

// Dir returns the root directory, for serving files.
func (s *Store) Dir() string { return s.dir }

// Upload writes data at path and returns its public URL. contentType is
// implied by the file extension when served.
func (s *Store) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	_, span := tracer.Start(ctx, "storage.upload")
	defer span.End()
	span.SetAttributes(attribute.String("storage.path", path), attribute.Int("storage.bytes", len(data)))

	rel := filepath.Clean(filepath.FromSlash(strings.TrimLeft(path, "/")))
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		err := fmt.Errorf("local storage: invalid path %q", path)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	full := filepath.Join(s.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("local storage: mkdir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("local storage: write: %w", err)
	}

	s.log.DebugContext(ctx, "stored blob",
		slog.String("path", filepath.ToSlash(rel)),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(data)),
	)
	return s.publicURL + "/" + filepath.ToSlash(rel), nil
}
