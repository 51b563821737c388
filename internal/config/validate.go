package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.SessionJWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.session_jwt_secret must be at least 32 characters (got %d)", len(c.Auth.SessionJWTSecret)))
	}
	if err := c.Ingest.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ingest: %w", err))
	}
	if err := c.AI.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ai: %w", err))
	}
	if c.ImageEdit.FlatCostUSD < 0 {
		errs = append(errs, fmt.Errorf("image_edit.flat_cost_usd must be >= 0 (got %v)", c.ImageEdit.FlatCostUSD))
	}
	if err := c.Storage.validate(); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	return errors.Join(errs...)
}

func (i *IngestConfig) validate() error {
	if i.APIKeyHash == "" {
		return nil
	}
	if !strings.HasPrefix(i.APIKeyHash, "$2") {
		return errors.New("api_key_hash must be a bcrypt hash")
	}
	if i.ImportUserIDRaw == "" {
		return errors.New("import_user_id is required when api_key_hash is set")
	}
	id, err := uuid.Parse(i.ImportUserIDRaw)
	if err != nil {
		return fmt.Errorf("import_user_id: %w", err)
	}
	i.ImportUserID = id
	return nil
}

func (a AIConfig) validate() error {
	switch {
	case a.InputUSDPerMTok < 0 || a.OutputUSDPerMTok < 0:
		return errors.New("token rates must be >= 0")
	case a.MaxTokens <= 0:
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	case a.BatchGroupSize <= 0:
		return fmt.Errorf("batch_group_size must be > 0 (got %d)", a.BatchGroupSize)
	case a.BatchMaxItems <= 0:
		return fmt.Errorf("batch_max_items must be > 0 (got %d)", a.BatchMaxItems)
	case a.CallTimeout <= 0:
		return fmt.Errorf("call_timeout must be > 0 (got %s)", a.CallTimeout)
	}
	return nil
}

func (s StorageConfig) validate() error {
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	switch s.Driver {
	case StorageSupabase:
		if s.SupabaseURL == "" || s.SupabaseServiceKey == "" {
			return errors.New("supabase_url and supabase_service_key are required for the supabase driver")
		}
		if _, err := url.ParseRequestURI(s.SupabaseURL); err != nil {
			return fmt.Errorf("supabase_url: %w", err)
		}
		if s.Bucket == "" {
			return errors.New("bucket is required for the supabase driver")
		}
	case StorageLocal:
		if s.LocalDir == "" || s.LocalPublicURL == "" {
			return errors.New("local_dir and local_public_url are required for the local driver")
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", StorageSupabase, StorageLocal, s.Driver)
	}
	return nil
}
