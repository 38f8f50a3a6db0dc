package services

import (
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/tariff"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/pkg/errs"
)

// TariffCalculator prices a shipment between two points.
//
// Business rules:
//   - an active zone supplies the base tariff; an inactive or absent zone falls
//     back to the policy's distance tiers
//   - the weight surcharge applies on both paths
//   - the estimated time always follows the straight-line distance
type TariffCalculator struct {
	policy tariff.Policy
}

// NewTariffCalculator validates policy and returns a calculator using it.
func NewTariffCalculator(policy tariff.Policy) (TariffCalculator, error) {
	if err := policy.Validate(); err != nil {
		return TariffCalculator{}, err
	}
	return TariffCalculator{policy: policy}, nil
}

// Policy returns the pricing policy in use.
func (c TariffCalculator) Policy() tariff.Policy {
	return c.policy
}

// Quote computes the tariff from origin to destination. z may be nil.
func (c TariffCalculator) Quote(origin, destination kernel.Location, weightGrams int, z *zone.Zone) (tariff.Quote, error) {
	if err := origin.Validate(); err != nil {
		return tariff.Quote{}, errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	if err := destination.Validate(); err != nil {
		return tariff.Quote{}, errs.NewValueIsInvalidErrorWithCause("destination", err)
	}
	if weightGrams < 0 || weightGrams > tariff.MaxWeightGrams {
		return tariff.Quote{}, errs.NewValueIsOutOfRangeError("weight grams", weightGrams, 0, tariff.MaxWeightGrams)
	}

	distanceKm := origin.DistanceTo(destination)
	surcharge := c.policy.WeightSurcharge(weightGrams)

	if z != nil && z.IsActive() {
		return tariff.NewZoneQuote(z.BaseTariff(), surcharge, distanceKm, z.ID(), z.Name()), nil
	}

	return tariff.NewDistanceQuote(c.policy.DistanceTariff(distanceKm), surcharge, distanceKm), nil
}
