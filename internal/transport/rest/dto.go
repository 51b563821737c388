package rest

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/finance"
	"github.com/heartmarshall/resale-backend/internal/service/identify"
	"github.com/heartmarshall/resale-backend/internal/service/item"
	"github.com/heartmarshall/resale-backend/internal/service/reporting"
)

// Money values are rendered as strings with two decimals so clients never
// round through floating point.

type imageDTO struct {
	ID         string     `json:"id"`
	URL        string     `json:"url"`
	EditedURL  *string    `json:"editedUrl"`
	EditPrompt *string    `json:"editPrompt"`
	EditedAt   *time.Time `json:"editedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func toImageDTO(img domain.ItemImage) imageDTO {
	return imageDTO{
		ID:         img.ID.String(),
		URL:        img.URL,
		EditedURL:  img.EditedURL,
		EditPrompt: img.EditPrompt,
		EditedAt:   img.EditedAt,
		CreatedAt:  img.CreatedAt,
	}
}

type itemDTO struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Status             string     `json:"status"`
	AIStatus           string     `json:"aiStatus"`
	AIError            *string    `json:"aiError"`
	Category           *string    `json:"category"`
	BrandOrMaker       *string    `json:"brandOrMaker"`
	StyleOrEra         *string    `json:"styleOrEra"`
	Material           *string    `json:"material"`
	Color              *string    `json:"color"`
	DimensionsGuess    *string    `json:"dimensionsGuess"`
	ConditionSummary   *string    `json:"conditionSummary"`
	ConditionGrade     *string    `json:"conditionGrade"`
	IsRestored         bool       `json:"isRestored"`
	EstimatedLowPrice  *string    `json:"estimatedLowPrice"`
	EstimatedHighPrice *string    `json:"estimatedHighPrice"`
	SuggestedListPrice *string    `json:"suggestedListPrice"`
	DebugNotes         *string    `json:"debugNotes"`
	CategoryID         *string    `json:"categoryId"`
	LocationID         *string    `json:"locationId"`
	IsDeleted          bool       `json:"isDeleted"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	PrimaryImage       *imageDTO  `json:"primaryImage,omitempty"`
	Images             []imageDTO `json:"images,omitempty"`
}

func toItemDTO(it domain.Item) itemDTO {
	var grade *string
	if it.ConditionGrade != nil {
		g := it.ConditionGrade.String()
		grade = &g
	}
	return itemDTO{
		ID:                 it.ID.String(),
		Title:              it.Title,
		Status:             it.Status.String(),
		AIStatus:           it.AIStatus.String(),
		AIError:            it.AIError,
		Category:           it.Category,
		BrandOrMaker:       it.BrandOrMaker,
		StyleOrEra:         it.StyleOrEra,
		Material:           it.Material,
		Color:              it.Color,
		DimensionsGuess:    it.DimensionsGuess,
		ConditionSummary:   it.ConditionSummary,
		ConditionGrade:     grade,
		IsRestored:         it.IsRestored,
		EstimatedLowPrice:  finance.FormatPtr(it.EstimatedLowPrice),
		EstimatedHighPrice: finance.FormatPtr(it.EstimatedHighPrice),
		SuggestedListPrice: finance.FormatPtr(it.SuggestedListPrice),
		DebugNotes:         it.DebugNotes,
		CategoryID:         uuidPtrString(it.CategoryID),
		LocationID:         uuidPtrString(it.LocationID),
		IsDeleted:          it.IsDeleted,
		CreatedAt:          it.CreatedAt,
		UpdatedAt:          it.UpdatedAt,
	}
}

type purchaseDTO struct {
	PurchasePrice   *string `json:"purchasePrice"`
	AdditionalCosts *string `json:"additionalCosts"`
	Source          *string `json:"source"`
	SourceID        *string `json:"sourceId"`
	PurchaseDate    *string `json:"purchaseDate"`
}

func toPurchaseDTO(p *domain.Purchase) *purchaseDTO {
	if p == nil {
		return nil
	}
	return &purchaseDTO{
		PurchasePrice:   finance.FormatPtr(p.PurchasePrice),
		AdditionalCosts: finance.FormatPtr(p.AdditionalCosts),
		Source:          p.Source,
		SourceID:        uuidPtrString(p.SourceID),
		PurchaseDate:    formatDate(p.PurchaseDate),
	}
}

type listingDTO struct {
	ID            string  `json:"id"`
	PlatformID    *string `json:"platformId"`
	Status        string  `json:"status"`
	ListingURL    *string `json:"listingUrl"`
	ListingPrice  *string `json:"listingPrice"`
	ShippingPrice *string `json:"shippingPrice"`
	FeesEstimate  *string `json:"feesEstimate"`
	DateListed    *string `json:"dateListed"`
}

func toListingDTO(l *domain.Listing) *listingDTO {
	if l == nil {
		return nil
	}
	return &listingDTO{
		ID:            l.ID.String(),
		PlatformID:    uuidPtrString(l.PlatformID),
		Status:        l.Status.String(),
		ListingURL:    l.ListingURL,
		ListingPrice:  finance.FormatPtr(l.ListingPrice),
		ShippingPrice: finance.FormatPtr(l.ShippingPrice),
		FeesEstimate:  finance.FormatPtr(l.FeesEstimate),
		DateListed:    formatDate(l.DateListed),
	}
}

type saleDTO struct {
	SalePrice    *string `json:"salePrice"`
	ShippingCost *string `json:"shippingCost"`
	PlatformFees *string `json:"platformFees"`
	OtherFees    *string `json:"otherFees"`
	SaleDate     *string `json:"saleDate"`
}

func toSaleDTO(s *domain.Sale) *saleDTO {
	if s == nil {
		return nil
	}
	return &saleDTO{
		SalePrice:    finance.FormatPtr(s.SalePrice),
		ShippingCost: finance.FormatPtr(s.ShippingCost),
		PlatformFees: finance.FormatPtr(s.PlatformFees),
		OtherFees:    finance.FormatPtr(s.OtherFees),
		SaleDate:     formatDate(s.SaleDate),
	}
}

type financialsDTO struct {
	CostBasis      *string `json:"costBasis"`
	TotalFees      *string `json:"totalFees"`
	RealizedProfit *string `json:"realizedProfit"`
}

func toFinancialsDTO(f finance.Financials) financialsDTO {
	return financialsDTO{
		CostBasis:      finance.FormatPtr(f.CostBasis),
		TotalFees:      finance.FormatPtr(f.TotalFees),
		RealizedProfit: finance.FormatPtr(f.RealizedProfit),
	}
}

type itemDetailDTO struct {
	itemDTO
	TagIDs     []string      `json:"tagIds"`
	Purchase   *purchaseDTO  `json:"purchase"`
	Listing    *listingDTO   `json:"listing"`
	Sale       *saleDTO      `json:"sale"`
	Financials financialsDTO `json:"financials"`
}

func toItemDetailDTO(d *item.ItemDetail) itemDetailDTO {
	base := toItemDTO(d.Item)
	base.Images = make([]imageDTO, len(d.Images))
	for i, img := range d.Images {
		base.Images[i] = toImageDTO(img)
	}
	if p := domain.PrimaryImage(d.Images); p != nil {
		dto := toImageDTO(*p)
		base.PrimaryImage = &dto
	}
	return itemDetailDTO{
		itemDTO:    base,
		TagIDs:     uuidStrings(d.TagIDs),
		Purchase:   toPurchaseDTO(d.Purchase),
		Listing:    toListingDTO(d.Listing),
		Sale:       toSaleDTO(d.Sale),
		Financials: toFinancialsDTO(d.Financials),
	}
}

type inventoryRowDTO struct {
	itemDTO
	Purchase   *purchaseDTO  `json:"purchase"`
	Listing    *listingDTO   `json:"listing"`
	Sale       *saleDTO      `json:"sale"`
	Financials financialsDTO `json:"financials"`
}

func toInventoryRowDTO(row item.InventoryRow) inventoryRowDTO {
	base := toItemDTO(row.Item)
	if row.PrimaryImage != nil {
		img := toImageDTO(*row.PrimaryImage)
		base.PrimaryImage = &img
	}
	return inventoryRowDTO{
		itemDTO:    base,
		Purchase:   toPurchaseDTO(row.Purchase),
		Listing:    toListingDTO(row.Listing),
		Sale:       toSaleDTO(row.Sale),
		Financials: toFinancialsDTO(row.Financials),
	}
}

type refDTO struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	CreatedAt         time.Time `json:"createdAt"`
	ParentID          *string   `json:"parentId,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	SourceType        string    `json:"sourceType,omitempty"`
	Slug              string    `json:"slug,omitempty"`
	DefaultFeePercent *string   `json:"defaultFeePercent,omitempty"`
}

func toRefDTO(r domain.RefRecord) refDTO {
	dto := refDTO{
		ID:        r.ID.String(),
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		ParentID:  uuidPtrString(r.ParentID),
		Notes:     r.Notes,
		Slug:      r.Slug,
	}
	if r.SourceType != "" {
		dto.SourceType = r.SourceType.String()
	}
	if r.DefaultFeePercent != nil {
		s := r.DefaultFeePercent.String()
		dto.DefaultFeePercent = &s
	}
	return dto
}

type batchResultDTO struct {
	ItemID string `json:"itemId"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type batchSummaryDTO struct {
	Results        []batchResultDTO `json:"results"`
	TotalProcessed int              `json:"totalProcessed"`
	TotalErrors    int              `json:"totalErrors"`
}

func toBatchSummaryDTO(s *identify.BatchSummary) batchSummaryDTO {
	out := batchSummaryDTO{
		Results:        make([]batchResultDTO, len(s.Results)),
		TotalProcessed: s.TotalProcessed,
		TotalErrors:    s.TotalErrors,
	}
	for i, r := range s.Results {
		out.Results[i] = batchResultDTO{ItemID: r.ItemID.String(), Status: r.Status, Error: r.Error}
	}
	return out
}

type reportRowDTO struct {
	ItemID       string    `json:"itemId"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	Category     string    `json:"category"`
	Platform     string    `json:"platform"`
	CostBasis    *string   `json:"costBasis"`
	ListingPrice *string   `json:"listingPrice"`
	DateListed   *string   `json:"dateListed"`
	SalePrice    *string   `json:"salePrice"`
	Profit       *string   `json:"profit"`
	SaleDate     *string   `json:"saleDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

type reportTotalsDTO struct {
	TotalCostBasis      string `json:"totalCostBasis"`
	TotalRealizedProfit string `json:"totalRealizedProfit"`
	ListedUnsold        int    `json:"listedUnsold"`
	ItemCount           int    `json:"itemCount"`
}

type reportDTO struct {
	From   *string         `json:"from"`
	To     *string         `json:"to"`
	Rows   []reportRowDTO  `json:"rows"`
	Totals reportTotalsDTO `json:"totals"`
}

func toReportDTO(r *reporting.Report) reportDTO {
	out := reportDTO{
		From: formatDate(r.Range.From),
		To:   formatDate(r.Range.To),
		Rows: make([]reportRowDTO, len(r.Rows)),
		Totals: reportTotalsDTO{
			TotalCostBasis:      formatAmount(r.Totals.TotalCostBasis),
			TotalRealizedProfit: formatAmount(r.Totals.TotalRealizedProfit),
			ListedUnsold:        r.Totals.ListedUnsold,
			ItemCount:           r.Totals.ItemCount,
		},
	}
	for i, row := range r.Rows {
		out.Rows[i] = reportRowDTO{
			ItemID:       row.ItemID.String(),
			Title:        row.Title,
			Status:       row.Status.String(),
			Category:     row.Category,
			Platform:     row.Platform,
			CostBasis:    finance.FormatPtr(row.CostBasis),
			ListingPrice: finance.FormatPtr(row.ListingPrice),
			DateListed:   formatDate(row.DateListed),
			SalePrice:    finance.FormatPtr(row.SalePrice),
			Profit:       finance.FormatPtr(row.Profit),
			SaleDate:     formatDate(row.SaleDate),
			CreatedAt:    row.CreatedAt,
		}
	}
	return out
}

type usageDTO struct {
	ID               string    `json:"id"`
	ItemID           *string   `json:"itemId"`
	ListingID        *string   `json:"listingId"`
	Endpoint         string    `json:"endpoint"`
	Model            string    `json:"model"`
	PromptTokens     *int64    `json:"promptTokens"`
	CompletionTokens *int64    `json:"completionTokens"`
	TotalCostUSD     string    `json:"totalCostUsd"`
	CreatedAt        time.Time `json:"createdAt"`
}

type usageSummaryDTO struct {
	Records      []usageDTO `json:"records"`
	TotalCostUSD string     `json:"totalCostUsd"`
}

func toUsageSummaryDTO(s *domain.UsageSummary) usageSummaryDTO {
	out := usageSummaryDTO{
		Records:      make([]usageDTO, len(s.Records)),
		TotalCostUSD: s.TotalCostUSD.StringFixed(domain.CostPrecision),
	}
	for i, u := range s.Records {
		out.Records[i] = usageDTO{
			ID:               u.ID.String(),
			ItemID:           uuidPtrString(u.ItemID),
			ListingID:        uuidPtrString(u.ListingID),
			Endpoint:         u.Endpoint.String(),
			Model:            u.Model,
			PromptTokens:     u.PromptTokens,
			CompletionTokens: u.CompletionTokens,
			TotalCostUSD:     u.TotalCostUSD.StringFixed(domain.CostPrecision),
			CreatedAt:        u.CreatedAt,
		}
	}
	return out
}

func formatAmount(d decimal.Decimal) string {
	return finance.Format(&d)
}

// optionalString distinguishes an absent JSON field from an explicit null.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
