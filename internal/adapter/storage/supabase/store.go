// Package supabase stores image blobs in a Supabase Storage bucket.
package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/heartmarshall/resale-backend/internal/adapter/storage/supabase")

// Store uploads objects through the Storage REST API.
type Store struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewStore creates a Store for bucket at the project URL baseURL.
func NewStore(baseURL, serviceKey, bucket string, logger *slog.Logger) *Store {
	return &Store{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "supabase"),
	}
}

// Upload writes data at path, overwriting any existing object, and returns
// its public URL.
func (s *Store) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "storage.upload", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("storage.bucket", s.bucket),
		attribute.String("storage.path", path),
		attribute.Int("storage.bytes", len(data)),
	)

	objectPath := escapePath(path)
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(s.bucket), objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("supabase: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		s.log.ErrorContext(ctx, "supabase upload failed", slog.String("path", path), slog.String("error", err.Error()))
		return "", fmt.Errorf("supabase: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		err := fmt.Errorf("supabase: upload: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		span.SetStatus(codes.Error, err.Error())
		s.log.WarnContext(ctx, "supabase rejected upload", slog.String("path", path), slog.Int("status", resp.StatusCode))
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, url.PathEscape(s.bucket), objectPath)
	s.log.DebugContext(ctx, "supabase upload", slog.String("path", path), slog.Int("bytes", len(data)))
	return publicURL, nil
}

func escapePath(path string) string {
	parts := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
