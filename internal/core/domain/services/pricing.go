package services

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Pricing formula coefficients. Prices are in the platform's base currency.
const (
	BasePrice  = 10.0
	PricePerKm = 2.0
	PricePerKg = 1.5
)

// PricingPolicy computes the total price of a delivery from the estimated
// route distance and the declared cargo weight. The price is calculated once
// at order creation and stored with the order.
type PricingPolicy interface {
	CalculatePrice(distanceKm float64, cargoWeight *float64) (float64, error)
}

type pricingPolicy struct{}

// NewPricingPolicy creates the standard pricing policy:
//
//	price = base + distanceKm*perKm + weightKg*perKg
//
// A missing cargo weight contributes nothing to the price.
func NewPricingPolicy() PricingPolicy {
	return &pricingPolicy{}
}

func (p *pricingPolicy) CalculatePrice(distanceKm float64, cargoWeight *float64) (float64, error) {
	if distanceKm < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is negative", distanceKm))
	}

	weight := 0.0
	if cargoWeight != nil {
		if *cargoWeight < 0 {
			return 0, errs.NewValueIsInvalidErrorWithCause("cargoWeight",
				fmt.Errorf("%f is negative", *cargoWeight))
		}
		weight = *cargoWeight
	}

	return BasePrice + distanceKm*PricePerKm + weight*PricePerKg, nil
}
