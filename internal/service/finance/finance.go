// Package finance derives cost basis, fees, and realized profit from an
// item's purchase and sale records. It holds no state and is re-evaluated
// on every read so that every view of an item agrees.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

// DisplayPlaces is the number of decimals money is rendered with.
const DisplayPlaces = 2

// Financials is the derived money view of one item. Nil means unknown.
type Financials struct {
	CostBasis      *decimal.Decimal
	TotalFees      *decimal.Decimal
	RealizedProfit *decimal.Decimal
}

// CostBasis returns purchase_price + additional_costs, treating missing
// additional costs as zero. It is nil when there is no purchase price.
func CostBasis(p *domain.Purchase) *decimal.Decimal {
	if p == nil || p.PurchasePrice == nil {
		return nil
	}
	v := p.PurchasePrice.Add(orZero(p.AdditionalCosts))
	return &v
}

// TotalFees returns shipping + platform + other fees of a sale, each
// missing part counted as zero. It is nil without a sale.
func TotalFees(s *domain.Sale) *decimal.Decimal {
	if s == nil {
		return nil
	}
	v := orZero(s.ShippingCost).Add(orZero(s.PlatformFees)).Add(orZero(s.OtherFees))
	return &v
}

// RealizedProfit returns sale_price - (cost_basis + total_fees). A missing
// cost basis counts as zero here even though CostBasis reports it as nil.
// It is nil without a sale price.
func RealizedProfit(p *domain.Purchase, s *domain.Sale) *decimal.Decimal {
	if s == nil || s.SalePrice == nil {
		return nil
	}
	costs := orZero(CostBasis(p)).Add(orZero(TotalFees(s)))
	v := s.SalePrice.Sub(costs)
	return &v
}

// Derive computes all financials of one item. The listing does not take
// part in the formulas; it is accepted so callers pass the full record set.
func Derive(p *domain.Purchase, _ *domain.Listing, s *domain.Sale) Financials {
	return Financials{
		CostBasis:      CostBasis(p),
		TotalFees:      TotalFees(s),
		RealizedProfit: RealizedProfit(p, s),
	}
}

// Format renders a money value with DisplayPlaces decimals, or "" when nil.
// Every read site formats through this function.
func Format(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.StringFixed(DisplayPlaces)
}

// FormatPtr is Format returning nil instead of "" for JSON output.
func FormatPtr(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := Format(v)
	return &s
}

// Sum adds the non-nil values exactly.
func Sum(values ...*decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		if v != nil {
			total = total.Add(*v)
		}
	}
	return total
}

func orZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
