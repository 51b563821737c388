package anthropic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/provider"
)

var errNoJSON = errors.New("model reply contains no JSON object")

// extractJSON returns the text between the first '{' and the last '}'.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", errNoJSON
	}
	return s[start : end+1], nil
}

// decodeStrict decodes a single object into dst, rejecting unknown keys.
func decodeStrict(text string, dst any) error {
	raw, err := extractJSON(text)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode model reply: %w", err)
	}
	return nil
}

// identificationReply uses pointers so that missing keys are detectable.
type identificationReply struct {
	Category           *string         `json:"category"`
	BrandOrMaker       *string         `json:"brand_or_maker"`
	StyleOrEra         *string         `json:"style_or_era"`
	Material           *string         `json:"material"`
	Color              *string         `json:"color"`
	DimensionsGuess    *string         `json:"dimensions_guess"`
	ConditionSummary   *string         `json:"condition_summary"`
	EstimatedLowPrice  json.RawMessage `json:"estimated_low_price"`
	EstimatedHighPrice json.RawMessage `json:"estimated_high_price"`
	SuggestedListPrice json.RawMessage `json:"suggested_list_price"`
	DebugNotes         *string         `json:"debug_notes"`
}

func parseIdentification(text string) (domain.Identification, error) {
	var r identificationReply
	if err := decodeStrict(text, &r); err != nil {
		return domain.Identification{}, err
	}

	var missing []string
	str := func(key string, v *string) string {
		if v == nil {
			missing = append(missing, key)
			return ""
		}
		return strings.TrimSpace(*v)
	}
	out := domain.Identification{
		Category:         str("category", r.Category),
		BrandOrMaker:     str("brand_or_maker", r.BrandOrMaker),
		StyleOrEra:       str("style_or_era", r.StyleOrEra),
		Material:         str("material", r.Material),
		Color:            str("color", r.Color),
		DimensionsGuess:  str("dimensions_guess", r.DimensionsGuess),
		ConditionSummary: str("condition_summary", r.ConditionSummary),
		DebugNotes:       str("debug_notes", r.DebugNotes),
	}

	prices := []struct {
		key string
		raw json.RawMessage
		dst *decimal.Decimal
	}{
		{"estimated_low_price", r.EstimatedLowPrice, &out.EstimatedLowPrice},
		{"estimated_high_price", r.EstimatedHighPrice, &out.EstimatedHighPrice},
		{"suggested_list_price", r.SuggestedListPrice, &out.SuggestedListPrice},
	}
	for _, p := range prices {
		if len(p.raw) == 0 {
			missing = append(missing, p.key)
			continue
		}
		if len(missing) > 0 {
			continue
		}
		d, err := parsePrice(p.raw)
		if err != nil {
			return domain.Identification{}, fmt.Errorf("%s: %w", p.key, err)
		}
		*p.dst = d
	}
	if len(missing) > 0 {
		return domain.Identification{}, fmt.Errorf("model reply is missing %s", strings.Join(missing, ", "))
	}
	return out, nil
}

// parsePrice accepts only a non-negative JSON number literal.
func parsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !(raw[0] >= '0' && raw[0] <= '9' || raw[0] == '-') {
		return decimal.Decimal{}, errors.New("must be a plain number")
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, errors.New("must be a plain number")
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errors.New("must not be negative")
	}
	return d, nil
}

type copyReply struct {
	EbayTitle           *string `json:"ebayTitle"`
	EbayDescription     *string `json:"ebayDescription"`
	FacebookTitle       *string `json:"facebookTitle"`
	FacebookDescription *string `json:"facebookDescription"`
	EtsyTitle           *string `json:"etsyTitle"`
	EtsyDescription     *string `json:"etsyDescription"`
}

func parseCopy(text string) (provider.ListingCopy, error) {
	var r copyReply
	if err := decodeStrict(text, &r); err != nil {
		return provider.ListingCopy{}, err
	}

	var missing []string
	str := func(key string, v *string) string {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, key)
			return ""
		}
		return strings.TrimSpace(*v)
	}
	out := provider.ListingCopy{
		EbayTitle:           str("ebayTitle", r.EbayTitle),
		EbayDescription:     str("ebayDescription", r.EbayDescription),
		FacebookTitle:       str("facebookTitle", r.FacebookTitle),
		FacebookDescription: str("facebookDescription", r.FacebookDescription),
		EtsyTitle:           str("etsyTitle", r.EtsyTitle),
		EtsyDescription:     str("etsyDescription", r.EtsyDescription),
	}
	if len(missing) > 0 {
		return provider.ListingCopy{}, fmt.Errorf("model reply is missing %s", strings.Join(missing, ", "))
	}
	return out, nil
}
