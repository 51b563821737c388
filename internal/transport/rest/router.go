package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/resale-backend/internal/config"
	"github.com/heartmarshall/resale-backend/internal/transport/middleware"
)

// ingestPath is authenticated by the ingest key, so the session middleware
// skips it.
const ingestPath = "/api/items/ingest"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Items     *ItemHandler
	AI        *AIHandler
	Ingest    *IngestHandler
	Reference *ReferenceHandler
	Reports   *ReportHandler
	Admin     *AdminHandler
}

// RouterDeps carries the cross-cutting collaborators of the router.
type RouterDeps struct {
	Middleware Middlewares
	Limiter    *middleware.RateLimiter
	RateLimit  config.RateLimitConfig
	// Metrics mounts GET /metrics when true.
	Metrics bool
	// Files serves locally stored images under /files/. Nil disables it.
	Files http.Handler
}

// Middlewares is the outer chain applied to every request.
type Middlewares []middleware.Middleware

// NewRouter registers every route and wraps the mux with deps.Middleware.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	ai := func(fn http.HandlerFunc) http.Handler {
		if deps.Limiter == nil {
			return fn
		}
		return deps.Limiter.Limit("ai", deps.RateLimit.AIRequestsPerMinute)(fn)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if deps.Metrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}
	if deps.Files != nil {
		mux.Handle("GET /files/", http.StripPrefix("/files/", deps.Files))
	}

	mux.HandleFunc("GET /api/items", h.Items.List)
	mux.HandleFunc("POST /api/items", h.Items.Create)
	mux.HandleFunc("GET /api/items/{id}", h.Items.Get)
	mux.HandleFunc("PATCH /api/items/{id}", h.Items.Update)
	mux.HandleFunc("DELETE /api/items/{id}", h.Items.Delete)
	mux.HandleFunc("PUT /api/items/{id}/category", h.Items.AssignCategory)
	mux.HandleFunc("PUT /api/items/{id}/location", h.Items.AssignLocation)
	mux.HandleFunc("PUT /api/items/{id}/condition", h.Items.UpdateCondition)
	mux.HandleFunc("GET /api/items/{id}/tags", h.Items.GetTags)
	mux.HandleFunc("PUT /api/items/{id}/tags", h.Items.SetTags)
	mux.HandleFunc("PUT /api/items/{id}/purchase", h.Items.UpsertPurchase)
	mux.HandleFunc("PUT /api/items/{id}/listing", h.Items.UpsertListing)
	mux.HandleFunc("PUT /api/items/{id}/sale", h.Items.RecordSale)

	mux.Handle("POST /api/items/{id}/analyze", ai(h.AI.Analyze))
	mux.Handle("POST /api/items/batch-analyze", ai(h.AI.BatchAnalyze))
	mux.Handle("POST /api/items/{id}/copy", ai(h.AI.ItemCopy))
	mux.Handle("POST /api/listings/{id}/copy", ai(h.AI.ListingCopy))
	mux.HandleFunc("GET /api/items/{id}/listing-copy", h.AI.GetSavedCopy)
	mux.HandleFunc("POST /api/items/{id}/listing-copy", h.AI.SaveCopy)
	mux.Handle("POST /api/images/{imageId}/edit", ai(h.AI.EditImage))

	mux.Handle("POST "+ingestPath, middleware.MaxBytes(MaxIngestBody)(http.HandlerFunc(h.Ingest.Ingest)))

	for path, kind := range referencePaths {
		mux.HandleFunc("GET /api/"+path, h.Reference.List(kind))
		mux.HandleFunc("POST /api/"+path, h.Reference.Create(kind))
		mux.HandleFunc("POST /api/"+path+"/merge", h.Reference.Merge(kind))
	}

	mux.HandleFunc("GET /api/reporting", h.Reports.Report)
	mux.HandleFunc("GET /api/reporting/export", h.Reports.Export)
	mux.HandleFunc("GET /api/ai-usage", h.Reports.Usage)

	mux.HandleFunc("POST /api/admin/purge", h.Admin.Purge)

	return middleware.Chain(deps.Middleware...)(mux)
}

// DefaultMiddleware builds the standard outer chain. The session middleware
// runs innermost so the access log sees the resolved user.
func DefaultMiddleware(
	auth middleware.Middleware,
	recovery middleware.Middleware,
	logger middleware.Middleware,
	cors middleware.Middleware,
	metrics bool,
) Middlewares {
	mws := Middlewares{middleware.RequestID(), recovery}
	if metrics {
		mws = append(mws, middleware.Metrics())
	}
	return append(mws, logger, cors, middleware.SkipPaths(auth, ingestPath))
}
