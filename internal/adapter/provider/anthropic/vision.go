package anthropic

import (
	"context"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// Identify asks the model to identify and price the item in the photo.
// Usage is returned even when the reply fails to parse.
func (c *Client) Identify(ctx context.Context, imageURL string) (domain.Identification, *domain.TokenUsage, error) {
	text, usage, err := c.complete(ctx, "identify", visionRubric, []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(visionInstruction),
		anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: imageURL}),
	})
	if err != nil {
		return domain.Identification{}, nil, err
	}

	ident, err := parseIdentification(text)
	if err != nil {
		c.log.WarnContext(ctx, "identification reply rejected", "error", err.Error())
		return domain.Identification{}, usage, &domain.UpstreamError{Service: "vision", Message: err.Error(), Err: err}
	}
	return ident, usage, nil
}
