package queries

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/tariff"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/core/domain/services"
	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

var ErrQuoteTariffQueryIsNotConstructed = errors.New(
	"QuoteTariffQuery must be created via NewQuoteTariffQuery constructor",
)

// QuoteTariffQuery prices a shipment. The zone is optional.
//
// Example:
//
//	origin := kernel.MustNewLocation(-17.78, -63.18)
//	destination := kernel.MustNewLocation(-17.80, -63.15)
//	query, _ := NewQuoteTariffQuery(origin, destination, 1200, nil)
//	quote, err := handler.Handle(ctx, query)
//	fmt.Println(quote.TotalTariff, quote.EstimatedMinutes)
type QuoteTariffQuery struct { //nolint:recvcheck //using for validation
	origin      kernel.Location
	destination kernel.Location
	weightGrams int
	zoneID      *kernel.UUID

	guard guard.ConstructorGuard
}

func NewQuoteTariffQuery(
	origin, destination kernel.Location,
	weightGrams int,
	zoneID *kernel.UUID,
) (QuoteTariffQuery, error) {
	query := QuoteTariffQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrigin(origin),
		query.setDestination(destination),
		query.setWeightGrams(weightGrams),
		query.setZoneID(zoneID),
	); err != nil {
		return QuoteTariffQuery{}, err
	}

	return query, nil
}

func (q QuoteTariffQuery) Validate() error {
	return q.guard.Validate(ErrQuoteTariffQueryIsNotConstructed)
}

func (q QuoteTariffQuery) Origin() kernel.Location {
	return q.origin
}

func (q QuoteTariffQuery) Destination() kernel.Location {
	return q.destination
}

func (q QuoteTariffQuery) WeightGrams() int {
	return q.weightGrams
}

// ZoneID returns the requested zone, if any.
func (q QuoteTariffQuery) ZoneID() (kernel.UUID, bool) {
	if q.zoneID == nil {
		return kernel.UUID{}, false
	}
	return *q.zoneID, true
}

func (q *QuoteTariffQuery) setOrigin(loc kernel.Location) error {
	if err := loc.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	q.origin = loc
	return nil
}

func (q *QuoteTariffQuery) setDestination(loc kernel.Location) error {
	if err := loc.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	q.destination = loc
	return nil
}

func (q *QuoteTariffQuery) setWeightGrams(weightGrams int) error {
	if weightGrams < 0 || weightGrams > tariff.MaxWeightGrams {
		return errs.NewValueIsOutOfRangeError("weight grams", weightGrams, 0, tariff.MaxWeightGrams)
	}
	q.weightGrams = weightGrams
	return nil
}

func (q *QuoteTariffQuery) setZoneID(zoneID *kernel.UUID) error {
	if zoneID == nil {
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return err
	}
	id := *zoneID
	q.zoneID = &id
	return nil
}

// TariffQuoteResponse is a priced shipment. ZoneID and ZoneName are set only
// when the zone's base tariff was used.
type TariffQuoteResponse struct {
	BaseTariff       decimal.Decimal
	WeightSurcharge  decimal.Decimal
	TotalTariff      decimal.Decimal
	DistanceKm       float64
	EstimatedMinutes int
	Basis            tariff.Basis
	ZoneID           *kernel.UUID
	ZoneName         *string
}

func newTariffQuoteResponse(q tariff.Quote) TariffQuoteResponse {
	response := TariffQuoteResponse{
		BaseTariff:       q.BaseTariff(),
		WeightSurcharge:  q.WeightSurcharge(),
		TotalTariff:      q.TotalTariff(),
		DistanceKm:       q.DistanceKm(),
		EstimatedMinutes: q.EstimatedMinutes(),
		Basis:            q.Basis(),
	}
	if id, name, ok := q.Zone(); ok {
		response.ZoneID = &id
		response.ZoneName = &name
	}
	return response
}

// QuoteTariffQueryHandler prices shipments with the configured policy.
// An unknown zone fails with NotFound; an inactive zone falls back to the
// distance tiers.
type QuoteTariffQueryHandler struct {
	zones      ZoneReader
	calculator services.TariffCalculator
}

func NewQuoteTariffQueryHandler(zones ZoneReader, calculator services.TariffCalculator) QuoteTariffQueryHandler {
	return QuoteTariffQueryHandler{
		zones:      zones,
		calculator: calculator,
	}
}

func (h QuoteTariffQueryHandler) Handle(ctx context.Context, query QuoteTariffQuery) (TariffQuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return TariffQuoteResponse{}, err
	}

	var z *zone.Zone
	if zoneID, ok := query.ZoneID(); ok {
		loaded, err := h.zones.Get(ctx, zoneID)
		if err != nil {
			return TariffQuoteResponse{}, err
		}
		z = loaded
	}

	quote, err := h.calculator.Quote(query.Origin(), query.Destination(), query.WeightGrams(), z)
	if err != nil {
		return TariffQuoteResponse{}, err
	}

	return newTariffQuoteResponse(quote), nil
}
