package services

import (
	"delivery-estimate-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCatalog map[string]domain.Offer

func (c staticCatalog) Lookup(code string) (domain.Offer, bool) {
	o, ok := c[code]
	return o, ok
}

func standardOffers() staticCatalog {
	return staticCatalog{
		"OFR001": {Code: "OFR001", DiscountPercent: 10, MinDistance: 0, MaxDistance: 200, MinWeight: 70, MaxWeight: 200},
		"OFR002": {Code: "OFR002", DiscountPercent: 7, MinDistance: 50, MaxDistance: 150, MinWeight: 100, MaxWeight: 250},
		"OFR003": {Code: "OFR003", DiscountPercent: 5, MinDistance: 50, MaxDistance: 250, MinWeight: 10, MaxWeight: 150},
	}
}

func TestPriceDelivery(t *testing.T) {
	cases := []struct {
		name         string
		pkg          *domain.Package
		wantDiscount string
		wantCost     string
	}{
		{name: "offer criteria not met", pkg: domain.NewPackage("PKG1", 5, 5, "OFR001"), wantDiscount: "0.00", wantCost: "175.00"},
		{name: "second offer not met", pkg: domain.NewPackage("PKG2", 15, 5, "OFR002"), wantDiscount: "0.00", wantCost: "275.00"},
		{name: "five percent", pkg: domain.NewPackage("PKG3", 10, 100, "OFR003"), wantDiscount: "35.00", wantCost: "665.00"},
		{name: "seven percent", pkg: domain.NewPackage("PKG4", 110, 60, "OFR002"), wantDiscount: "105.00", wantCost: "1395.00"},
		{name: "unknown code", pkg: domain.NewPackage("PKG5", 75, 125, "OFFR0008"), wantDiscount: "0.00", wantCost: "1475.00"},
		{name: "no code", pkg: domain.NewPackage("PKG6", 155, 95, ""), wantDiscount: "0.00", wantCost: "2125.00"},
		{name: "upper distance bound is exclusive", pkg: domain.NewPackage("PKG7", 110, 150, "OFR002"), wantDiscount: "0.00", wantCost: "1950.00"},
		{name: "lower weight bound is inclusive", pkg: domain.NewPackage("PKG8", 70, 10, "OFR001"), wantDiscount: "85.00", wantCost: "765.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, PriceDelivery(tc.pkg, 100, DefaultCostRates, standardOffers()))
			assert.Equal(t, tc.wantDiscount, tc.pkg.Discount.StringFixed(2))
			assert.Equal(t, tc.wantCost, tc.pkg.Cost.StringFixed(2))
		})
	}
}

func TestPriceDeliveryFractionalDiscount(t *testing.T) {
	pkg := domain.NewPackage("PKG1", 11, 51, "OFR003")

	require.NoError(t, PriceDelivery(pkg, 3, DefaultCostRates, standardOffers()))

	// 3 + 110 + 255 = 368, 5% = 18.40
	assert.Equal(t, "18.40", pkg.Discount.StringFixed(2))
	assert.Equal(t, "349.60", pkg.Cost.StringFixed(2))
}

func TestPriceDeliveryCustomRates(t *testing.T) {
	pkg := domain.NewPackage("PKG1", 2, 3, "")

	require.NoError(t, PriceDelivery(pkg, 0, CostRates{PerKilogram: 1, PerKilometer: 2}, nil))
	assert.Equal(t, "8.00", pkg.Cost.StringFixed(2))
}

func TestPriceDeliveryNilPackage(t *testing.T) {
	assert.Error(t, PriceDelivery(nil, 100, DefaultCostRates, standardOffers()))
}
