package services

import (
	"context"
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/platform/obs"
	"delivery-estimate-service/internal/ports"
	"fmt"
)

type EstimateRequest struct {
	BaseCost int64
	Packages []*domain.Package
	Rates    CostRates
	// Fleet is optional; without it only costs are estimated.
	Fleet *domain.Fleet
}

type EstimateResult struct {
	Packages []*domain.Package
	Schedule *domain.DeliverySchedule
}

// EstimateDeliveries prices every package and, when a fleet is given,
// estimates delivery times. Packages are updated in place and returned in
// input order.
func EstimateDeliveries(
	ctx context.Context,
	req EstimateRequest,
	catalog ports.OfferCatalog,
) (_ *EstimateResult, err error) {
	defer obs.Time(ctx, "estimate.EstimateDeliveries")(&err)

	if req.BaseCost < 0 {
		return nil, fmt.Errorf("estimate deliveries: base cost must be >= 0 (base_cost=%d)", req.BaseCost)
	}

	for _, pkg := range req.Packages {
		if err := pkg.Validate(); err != nil {
			return nil, fmt.Errorf("estimate deliveries: %w", err)
		}
	}

	// Costs first: they do not depend on the schedule.
	for _, pkg := range req.Packages {
		if err := PriceDelivery(pkg, req.BaseCost, req.Rates, catalog); err != nil {
			return nil, fmt.Errorf("estimate deliveries: package %s: %w", pkg.ID, err)
		}
	}

	res := &EstimateResult{Packages: req.Packages}
	if req.Fleet == nil {
		return res, nil
	}

	schedule, err := EstimateDeliveryTimes(ctx, req.Packages, *req.Fleet)
	if err != nil {
		return nil, fmt.Errorf("estimate deliveries: %w", err)
	}
	res.Schedule = schedule

	return res, nil
}
