package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/adapter/imaging"
	"github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/resale-backend/internal/adapter/postgres/item"
	listingrepo "github.com/heartmarshall/resale-backend/internal/adapter/postgres/listing"
	"github.com/heartmarshall/resale-backend/internal/adapter/postgres/listingcopy"
	purchaserepo "github.com/heartmarshall/resale-backend/internal/adapter/postgres/purchase"
	referencerepo "github.com/heartmarshall/resale-backend/internal/adapter/postgres/reference"
	reportingrepo "github.com/heartmarshall/resale-backend/internal/adapter/postgres/reporting"
	salerepo "github.com/heartmarshall/resale-backend/internal/adapter/postgres/sale"
	usagerepo "github.com/heartmarshall/resale-backend/internal/adapter/postgres/usage"
	"github.com/heartmarshall/resale-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/resale-backend/internal/adapter/provider/removebg"
	"github.com/heartmarshall/resale-backend/internal/adapter/storage/local"
	"github.com/heartmarshall/resale-backend/internal/adapter/storage/supabase"
	"github.com/heartmarshall/resale-backend/internal/config"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/aiusage"
	"github.com/heartmarshall/resale-backend/internal/service/copywriter"
	"github.com/heartmarshall/resale-backend/internal/service/identify"
	"github.com/heartmarshall/resale-backend/internal/service/imageedit"
	"github.com/heartmarshall/resale-backend/internal/service/ingest"
	"github.com/heartmarshall/resale-backend/internal/service/item"
	"github.com/heartmarshall/resale-backend/internal/service/reference"
	"github.com/heartmarshall/resale-backend/internal/service/reporting"
)

// blobStore is the upload surface shared by both storage drivers.
type blobStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
}

// Services holds every domain service wired against Postgres and the
// configured external collaborators.
type Services struct {
	Items      *item.Service
	References *reference.Service
	Identify   *identify.Service
	Copy       *copywriter.Service
	ImageEdit  *imageedit.Service
	Ingest     *ingest.Service
	Reporting  *reporting.Service
	Usage      *aiusage.Service

	// Files serves the local image directory. Nil for remote storage.
	Files http.Handler
	// StorageCheck checks the image store for health endpoints.
	StorageCheck func(ctx context.Context) error
}

// NewServices builds repositories, adapters and services.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Services, error) {
	txm := postgres.NewTxManager(pool)

	items := itemrepo.New(pool)
	purchases := purchaserepo.New(pool)
	listings := listingrepo.New(pool)
	sales := salerepo.New(pool)
	refs := referencerepo.New(pool)
	reports := reportingrepo.New(pool)
	usageRepo := usagerepo.New(pool)

	store, files, check, err := newBlobStore(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	llm := anthropic.New(anthropic.Config{
		APIKey:    cfg.AI.AnthropicAPIKey,
		Model:     cfg.AI.Model,
		MaxTokens: cfg.AI.MaxTokens,
		BaseURL:   cfg.AI.BaseURL,
	}, logger)
	editor := removebg.NewProvider(cfg.ImageEdit.RemoveBGAPIKey, cfg.ImageEdit.Endpoint, logger)

	usage := aiusage.NewService(logger, usageRepo, domain.TokenRates{
		InputPerMillion:  decimal.NewFromFloat(cfg.AI.InputUSDPerMTok),
		OutputPerMillion: decimal.NewFromFloat(cfg.AI.OutputUSDPerMTok),
	})

	itemSvc := item.NewService(logger, items, purchases, listings, sales, refs,
		imaging.NewPipeline(0, 0), store, txm)

	return &Services{
		Items:      itemSvc,
		References: reference.NewService(logger, refs, txm),
		Identify: identify.NewService(logger, items, llm, usage, identify.Config{
			CallTimeout: cfg.AI.CallTimeout,
			GroupSize:   cfg.AI.BatchGroupSize,
			MaxBatch:    cfg.AI.BatchMaxItems,
		}),
		Copy: copywriter.NewService(logger, items, listings, refs, listingcopy.New(pool), llm, usage, cfg.AI.CallTimeout),
		ImageEdit: imageedit.NewService(logger, items, editor, store, usage,
			decimal.NewFromFloat(cfg.ImageEdit.FlatCostUSD), cfg.ImageEdit.Timeout),
		Ingest:       ingest.NewService(logger, itemSvc, cfg.Ingest.APIKeyHash, cfg.Ingest.ImportUserID),
		Reporting:    reporting.NewService(logger, reports),
		Usage:        usage,
		Files:        files,
		StorageCheck: check,
	}, nil
}

func newBlobStore(cfg config.StorageConfig, logger *slog.Logger) (blobStore, http.Handler, func(context.Context) error, error) {
	switch cfg.Driver {
	case config.StorageSupabase:
		store := supabase.NewStore(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.Bucket, logger)
		return store, nil, nil, nil
	case config.StorageLocal:
		if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("create image directory: %w", err)
		}
		store := local.NewStore(cfg.LocalDir, cfg.LocalPublicURL, logger)
		check := func(context.Context) error {
			_, err := os.Stat(store.Dir())
			return err
		}
		return store, http.FileServer(http.Dir(store.Dir())), check, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
