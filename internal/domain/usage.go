package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AIUsage is one append-only cost-accounting entry per AI call.
type AIUsage struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ItemID           *uuid.UUID
	ListingID        *uuid.UUID
	Endpoint         UsageEndpoint
	Model            string
	PromptTokens     *int64
	CompletionTokens *int64
	TotalCostUSD     decimal.Decimal
	CreatedAt        time.Time
}

// TokenUsage is the token accounting reported by a model call.
type TokenUsage struct {
	PromptTokens     int64
	CompletionTokens int64
}

// CostPrecision is the number of decimal places kept for AI cost.
const CostPrecision = 6

var perMillion = decimal.NewFromInt(1_000_000)

// TokenRates prices a model call in USD per million tokens.
type TokenRates struct {
	InputPerMillion  decimal.Decimal
	OutputPerMillion decimal.Decimal
}

// Cost returns prompt*input_rate + completion*output_rate rounded to CostPrecision places.
func (r TokenRates) Cost(u TokenUsage) decimal.Decimal {
	in := decimal.NewFromInt(u.PromptTokens).Mul(r.InputPerMillion)
	out := decimal.NewFromInt(u.CompletionTokens).Mul(r.OutputPerMillion)
	return in.Add(out).Div(perMillion).Round(CostPrecision)
}
