package anthropic

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/provider"
)

// WriteCopy asks the model for storefront titles and descriptions.
func (c *Client) WriteCopy(ctx context.Context, req provider.CopyRequest) (provider.ListingCopy, *domain.TokenUsage, error) {
	blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(copyContext(req))}
	if req.ImageURL != nil {
		blocks = append(blocks, anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: *req.ImageURL}))
	}

	text, usage, err := c.complete(ctx, "copy", copyRubric, blocks)
	if err != nil {
		return provider.ListingCopy{}, nil, err
	}

	out, err := parseCopy(text)
	if err != nil {
		c.log.WarnContext(ctx, "copy reply rejected", "error", err.Error())
		return provider.ListingCopy{}, usage, &domain.UpstreamError{Service: "copywriter", Message: err.Error(), Err: err}
	}
	return out, usage, nil
}

// copyContext renders the item attributes as the user turn. Purchase and
// cost data are never part of req.
func copyContext(req provider.CopyRequest) string {
	var b strings.Builder
	b.WriteString("ITEM CONTEXT\n")
	line := func(label string, v *string, fallback string) {
		val := fallback
		if v != nil && strings.TrimSpace(*v) != "" {
			val = *v
		}
		fmt.Fprintf(&b, "- %s: %s\n", label, val)
	}

	title := req.Title
	line("Title", &title, "Untitled item")
	line("Category", req.Category, "Unknown")
	line("Brand / maker", req.BrandOrMaker, "Unknown")
	line("Style / era", req.StyleOrEra, "Unknown")
	line("Material", req.Material, "Unknown")
	line("Color", req.Color, "Unknown")
	line("Approx. dimensions", req.DimensionsGuess, "Unknown")
	line("Condition grade", req.ConditionGrade, "Unknown")
	line("Condition summary", req.ConditionSummary, "Not provided")
	restored := "No"
	if req.IsRestored {
		restored = "Yes"
	}
	line("Restored / repaired", &restored, "No")

	if req.Platform != nil || req.ListingPrice != nil {
		b.WriteString("\nLISTING CONTEXT\n")
		line("Platform", req.Platform, "Unspecified")
		price := "Unspecified"
		if req.ListingPrice != nil {
			price = "$" + req.ListingPrice.StringFixed(2)
		}
		line("Listing price", &price, "Unspecified")
	}
	return b.String()
}
