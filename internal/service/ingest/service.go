// Package ingest accepts items pushed by external tools under a shared API
// key and files them under the import identity.
package ingest

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/item"
)

type importer interface {
	ImportItem(ctx context.Context, ownerID uuid.UUID, input item.CreateItemInput) (*item.ImportResult, error)
}

// Service verifies ingest keys and imports items.
type Service struct {
	items      importer
	keyHash    []byte
	importUser uuid.UUID
	log        *slog.Logger
}

// NewService creates a new ingest service. An empty keyHash disables ingest.
func NewService(log *slog.Logger, items importer, keyHash string, importUser uuid.UUID) *Service {
	return &Service{
		items:      items,
		keyHash:    []byte(keyHash),
		importUser: importUser,
		log:        log.With("service", "ingest"),
	}
}

// Enabled reports whether an ingest key is configured.
func (s *Service) Enabled() bool {
	return len(s.keyHash) > 0 && s.importUser != uuid.Nil
}

// VerifyKey checks an Authorization header value, either "Bearer <key>" or
// the bare key, against the configured bcrypt hash.
func (s *Service) VerifyKey(header string) bool {
	if !s.Enabled() {
		return false
	}
	key := strings.TrimSpace(header)
	if len(key) > 7 && strings.EqualFold(key[:7], "bearer ") {
		key = strings.TrimSpace(key[7:])
	}
	if key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.keyHash, []byte(key)) == nil
}

// ImageInput is one base64 image of an ingest request.
type ImageInput struct {
	Filename string
	Data     string
	MimeType string
}

// Request is the ingest payload. OwnerEmail is accepted and ignored; items
// always belong to the import identity.
type Request struct {
	Title      string
	Images     []ImageInput
	OwnerEmail string
}

// Ingest decodes the request and imports the item, tolerating partial image
// failures. An image that does not decode counts as a failed upload. When no
// image could be stored the result is returned together with
// item.ErrNoImagesStored.
func (s *Service) Ingest(ctx context.Context, req Request) (*item.ImportResult, error) {
	if !s.Enabled() {
		return nil, domain.ErrUnauthorized
	}

	input, decodeErrs, err := req.decode()
	if err != nil {
		return nil, err
	}
	if len(input.Images) == 0 {
		s.log.WarnContext(ctx, "ingest rejected, no image decoded", slog.Int("failed", len(decodeErrs)))
		return &item.ImportResult{Failed: len(decodeErrs), UploadErrors: decodeErrs}, item.ErrNoImagesStored
	}

	res, err := s.items.ImportItem(ctx, s.importUser, input)
	if res != nil && len(decodeErrs) > 0 {
		res.Failed += len(decodeErrs)
		res.UploadErrors = append(decodeErrs, res.UploadErrors...)
	}
	if err != nil {
		return res, err
	}

	s.log.InfoContext(ctx, "item ingested",
		slog.String("item_id", res.Item.ID.String()),
		slog.Int("uploaded", res.Uploaded),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

// decode validates the request shape and decodes the images. Images that do
// not decode are reported in decodeErrs and left out of the input.
func (r Request) decode() (input item.CreateItemInput, decodeErrs []string, err error) {
	var errs []domain.FieldError

	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	switch {
	case len(r.Images) == 0:
		errs = append(errs, domain.FieldError{Field: "images", Message: "at least one image is required"})
	case len(r.Images) > item.MaxImagesPerItem:
		errs = append(errs, domain.FieldError{Field: "images", Message: fmt.Sprintf("max %d images", item.MaxImagesPerItem)})
	}
	if len(errs) > 0 {
		return item.CreateItemInput{}, nil, &domain.ValidationError{Errors: errs}
	}

	uploads := make([]item.ImageUpload, 0, len(r.Images))
	for i, img := range r.Images {
		data, mime, err := decodeImage(img.Data)
		if err != nil || len(data) == 0 {
			name := img.Filename
			if name == "" {
				name = fmt.Sprintf("images[%d]", i)
			}
			decodeErrs = append(decodeErrs, name+": invalid base64")
			continue
		}
		if img.MimeType != "" {
			mime = img.MimeType
		}
		uploads = append(uploads, item.ImageUpload{Filename: img.Filename, ContentType: mime, Data: data})
	}

	return item.CreateItemInput{Title: r.Title, Images: uploads}, decodeErrs, nil
}

// decodeImage strips an optional data-URI prefix and decodes the payload.
// The returned mime type comes from the prefix and may be empty.
func decodeImage(raw string) ([]byte, string, error) {
	var mime string
	if strings.HasPrefix(raw, "data:") {
		header, payload, ok := strings.Cut(raw, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		mime = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		raw = payload
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}
