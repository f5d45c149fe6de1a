package services

import (
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/ports"
	"errors"

	"github.com/shopspring/decimal"
)

// CostRates are the per-unit charges added to the base delivery cost.
type CostRates struct {
	PerKilogram  int64
	PerKilometer int64
}

// DefaultCostRates charges 10 per kg and 5 per km.
var DefaultCostRates = CostRates{PerKilogram: 10, PerKilometer: 5}

var hundred = decimal.NewFromInt(100)

// PriceDelivery sets the discount and the final cost of a package.
//
// cost = base + weight*PerKilogram + distance*PerKilometer. The package's
// offer, when known to the catalog and applicable to the package, takes its
// percentage off that cost. Unknown or non-matching offer codes give no
// discount.
func PriceDelivery(pkg *domain.Package, baseCost int64, rates CostRates, catalog ports.OfferCatalog) error {
	if pkg == nil {
		return errors.New("price delivery: package must be non-nil")
	}

	gross := decimal.NewFromInt(baseCost +
		rates.PerKilogram*int64(pkg.Weight) +
		rates.PerKilometer*int64(pkg.Distance))

	discount := decimal.Zero
	if catalog != nil && pkg.OfferCode != "" {
		if offer, ok := catalog.Lookup(pkg.OfferCode); ok && offer.Applies(pkg.Weight, pkg.Distance) {
			discount = gross.Mul(decimal.NewFromInt(int64(offer.DiscountPercent))).Div(hundred)
		}
	}

	pkg.Discount = discount
	pkg.Cost = gross.Sub(discount)
	return nil
}
