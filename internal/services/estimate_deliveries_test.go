package services

import (
	"context"
	"delivery-estimate-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDeliveriesCostsAndTimes(t *testing.T) {
	pkgs := []*domain.Package{
		domain.NewPackage("PKG1", 50, 30, "OFR001"),
		domain.NewPackage("PKG2", 75, 125, "OFFR0008"),
		domain.NewPackage("PKG3", 175, 100, "OFFR003"),
		domain.NewPackage("PKG4", 110, 60, "OFR002"),
		domain.NewPackage("PKG5", 155, 95, "NA"),
	}

	res, err := EstimateDeliveries(context.Background(), EstimateRequest{
		BaseCost: 100,
		Packages: pkgs,
		Rates:    DefaultCostRates,
		Fleet:    &domain.Fleet{Vehicles: 2, MaxSpeed: 70, MaxLoad: 200},
	}, standardOffers())
	require.NoError(t, err)
	require.NotNil(t, res.Schedule)

	want := []struct {
		id       string
		discount string
		cost     string
		time     string
	}{
		{"PKG1", "0.00", "750.00", "3.98"},
		{"PKG2", "0.00", "1475.00", "1.78"},
		{"PKG3", "0.00", "2350.00", "1.42"},
		{"PKG4", "105.00", "1395.00", "0.85"},
		{"PKG5", "0.00", "2125.00", "4.19"},
	}

	require.Len(t, res.Packages, len(want))
	for i, w := range want {
		p := res.Packages[i]
		assert.Equal(t, w.id, p.ID)
		assert.Equal(t, w.discount, p.Discount.StringFixed(2), w.id)
		assert.Equal(t, w.cost, p.Cost.StringFixed(2), w.id)
		assert.Equal(t, w.time, p.DeliveryTime.String(), w.id)
	}
}

func TestEstimateDeliveriesCostOnly(t *testing.T) {
	pkgs := []*domain.Package{
		domain.NewPackage("PKG1", 5, 5, "OFR001"),
		domain.NewPackage("PKG2", 15, 5, "OFR002"),
		domain.NewPackage("PKG3", 10, 100, "OFR003"),
	}

	res, err := EstimateDeliveries(context.Background(), EstimateRequest{
		BaseCost: 100,
		Packages: pkgs,
		Rates:    DefaultCostRates,
	}, standardOffers())
	require.NoError(t, err)

	assert.Nil(t, res.Schedule)
	assert.Equal(t, "175.00", res.Packages[0].Cost.StringFixed(2))
	assert.Equal(t, "275.00", res.Packages[1].Cost.StringFixed(2))
	assert.Equal(t, "35.00", res.Packages[2].Discount.StringFixed(2))
	assert.Equal(t, "665.00", res.Packages[2].Cost.StringFixed(2))
	for _, p := range res.Packages {
		assert.False(t, p.Dispatched)
	}
}

func TestEstimateDeliveriesRejectsBadInput(t *testing.T) {
	ctx := context.Background()

	_, err := EstimateDeliveries(ctx, EstimateRequest{BaseCost: -1, Rates: DefaultCostRates}, nil)
	assert.ErrorContains(t, err, "base cost")

	_, err = EstimateDeliveries(ctx, EstimateRequest{
		BaseCost: 100,
		Packages: []*domain.Package{domain.NewPackage("", 1, 1, "")},
		Rates:    DefaultCostRates,
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPackage)

	_, err = EstimateDeliveries(ctx, EstimateRequest{
		BaseCost: 100,
		Packages: []*domain.Package{domain.NewPackage("PKG1", 1, 1, "")},
		Rates:    DefaultCostRates,
		Fleet:    &domain.Fleet{Vehicles: 1, MaxSpeed: 0, MaxLoad: 10},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidFleet)
}
