package ports

import "delivery-estimate-service/internal/domain"

// Port: a boundary for resolving promotional offer codes.
type OfferCatalog interface {
	// Return the offer registered under code, if any.
	Lookup(code string) (domain.Offer, bool)
}
