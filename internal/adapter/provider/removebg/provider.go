// Package removebg implements the image editor on top of the remove.bg API.
package removebg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/provider"
)

const (
	DefaultEndpoint = "https://api.remove.bg/v1.0/removebg"
	modelName       = "remove.bg"
	maxResultBytes  = 25 << 20
)

var tracer = otel.Tracer("github.com/heartmarshall/resale-backend/internal/adapter/provider/removebg")

// Provider removes image backgrounds through remove.bg.
type Provider struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty endpoint selects DefaultEndpoint.
func NewProvider(apiKey, endpoint string, logger *slog.Logger) *Provider {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Provider{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        logger.With("adapter", "removebg"),
	}
}

// Model returns the name recorded with usage.
func (p *Provider) Model() string { return modelName }

// Edit replaces the background of the image at imageURL with white.
// remove.bg has a fixed operation, so prompt is only logged.
func (p *Provider) Edit(ctx context.Context, imageURL, prompt string) (provider.EditResult, error) {
	ctx, span := tracer.Start(ctx, "removebg.edit", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	p.log.DebugContext(ctx, "removebg request", slog.String("image_url", imageURL), slog.String("prompt", prompt))

	body, contentType, err := buildForm(imageURL)
	if err != nil {
		return provider.EditResult{}, fmt.Errorf("removebg: build form: %w", err)
	}

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-Api-Key", p.apiKey)
		req.Header.Set("Accept", "image/png, application/json")
		return req, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		p.log.ErrorContext(ctx, "removebg request failed", slog.String("error", err.Error()))
		return provider.EditResult{}, fmt.Errorf("removebg: request failed: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResultBytes))
	if err != nil {
		return provider.EditResult{}, fmt.Errorf("removebg: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := apiErrorMessage(data, resp.StatusCode)
		span.SetStatus(codes.Error, msg)
		p.log.WarnContext(ctx, "removebg rejected request",
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return provider.EditResult{}, &domain.UpstreamError{Service: "image editor", Message: msg}
	}

	ct := resp.Header.Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	if ct == "" {
		ct = "image/png"
	}

	p.log.DebugContext(ctx, "removebg response", slog.Int("bytes", len(data)), slog.String("content_type", ct))
	return provider.EditResult{Data: data, ContentType: ct}, nil
}

func buildForm(imageURL string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"image_url", imageURL},
		{"size", "auto"},
		{"bg_color", "ffffff"},
		{"format", "png"},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. newReq is called once per attempt so the body can be replayed.
func (p *Provider) doWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "removebg retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	req, err = newReq()
	if err != nil {
		return nil, err
	}
	return p.httpClient.Do(req)
}

type apiErrors struct {
	Errors []struct {
		Title string `json:"title"`
	} `json:"errors"`
}

func apiErrorMessage(body []byte, status int) string {
	var e apiErrors
	if err := json.Unmarshal(body, &e); err == nil && len(e.Errors) > 0 && e.Errors[0].Title != "" {
		return e.Errors[0].Title
	}
	return fmt.Sprintf("unexpected status %d", status)
}
