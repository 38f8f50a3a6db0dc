package tariff

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"zonedelivery/internal/pkg/errs"
)

// MaxWeightGrams is the heaviest parcel that can be quoted.
const MaxWeightGrams = 1_000_000

// Tier prices every distance up to and including UpToKm.
type Tier struct {
	UpToKm float64
	Tariff decimal.Decimal
}

// Policy holds the pricing constants used when no zone tariff applies, plus the
// weight surcharge applied on every quote.
//
// The surcharge is banded: each started WeightBandGrams above FreeWeightGrams
// costs SurchargePerBand. With the defaults a 1200 g parcel pays two bands.
type Policy struct {
	Tiers            []Tier
	BeyondTariff     decimal.Decimal
	FreeWeightGrams  int
	WeightBandGrams  int
	SurchargePerBand decimal.Decimal
}

// DefaultPolicy: 10 up to 5 km, 20 up to 15 km, 35 up to 30 km, 50 beyond;
// 5 per started 500 g over the first 500 g.
func DefaultPolicy() Policy {
	return Policy{
		Tiers: []Tier{
			{UpToKm: 5, Tariff: decimal.NewFromInt(10)},
			{UpToKm: 15, Tariff: decimal.NewFromInt(20)},
			{UpToKm: 30, Tariff: decimal.NewFromInt(35)},
		},
		BeyondTariff:     decimal.NewFromInt(50),
		FreeWeightGrams:  500,
		WeightBandGrams:  500,
		SurchargePerBand: decimal.NewFromInt(5),
	}
}

// Validate checks that tiers are finite, strictly ascending by distance with
// non-decreasing, non-negative tariffs, and that the weight band is positive.
// These rules keep quotes monotonic in both distance and weight.
func (p Policy) Validate() error {
	var errList []error

	prevKm := 0.0
	prevTariff := decimal.Zero
	for i, tier := range p.Tiers {
		param := fmt.Sprintf("tiers[%d]", i)
		if math.IsNaN(tier.UpToKm) || math.IsInf(tier.UpToKm, 0) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(param,
				fmt.Errorf("up to %v km is not a finite distance", tier.UpToKm)))
			continue
		}
		if tier.UpToKm <= prevKm {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(param,
				fmt.Errorf("up to %.2f km must be greater than %.2f km", tier.UpToKm, prevKm)))
		}
		if tier.Tariff.LessThan(prevTariff) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(param,
				fmt.Errorf("tariff %s is lower than the previous tier %s", tier.Tariff, prevTariff)))
		}
		prevKm = tier.UpToKm
		prevTariff = tier.Tariff
	}

	if p.BeyondTariff.LessThan(prevTariff) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("beyond tariff",
			fmt.Errorf("%s is lower than the last tier %s", p.BeyondTariff, prevTariff)))
	}
	if p.FreeWeightGrams < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("free weight grams", p.FreeWeightGrams, 0, "unbounded"))
	}
	if p.WeightBandGrams <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("weight band grams", p.WeightBandGrams, 1, "unbounded"))
	}
	if p.SurchargePerBand.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("surcharge per band", p.SurchargePerBand.String(), "0", "unbounded"))
	}

	return errors.Join(errList...)
}

// DistanceTariff returns the first tier covering distanceKm, or BeyondTariff.
func (p Policy) DistanceTariff(distanceKm float64) decimal.Decimal {
	for _, tier := range p.Tiers {
		if distanceKm <= tier.UpToKm {
			return tier.Tariff
		}
	}
	return p.BeyondTariff
}

// WeightSurcharge is ceil(max(0, weight-free)/band) * perBand.
func (p Policy) WeightSurcharge(weightGrams int) decimal.Decimal {
	over := weightGrams - p.FreeWeightGrams
	if over <= 0 || p.WeightBandGrams <= 0 {
		return decimal.Zero
	}

	bands := over / p.WeightBandGrams
	if over%p.WeightBandGrams != 0 {
		bands++
	}
	return p.SurchargePerBand.Mul(decimal.NewFromInt(int64(bands)))
}
