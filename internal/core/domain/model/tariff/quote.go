package tariff

import (
	"github.com/shopspring/decimal"

	"zonedelivery/internal/core/domain/model/kernel"
)

// Basis tells which rule produced the base tariff.
type Basis string

const (
	BasisDistance Basis = "distance"
	BasisZone     Basis = "zone"
)

// Quote is a priced shipment. Total is always BaseTariff + WeightSurcharge.
type Quote struct {
	baseTariff       decimal.Decimal
	weightSurcharge  decimal.Decimal
	distanceKm       float64
	estimatedMinutes int
	basis            Basis
	zoneID           *kernel.UUID
	zoneName         string
}

// NewDistanceQuote builds a quote priced by distance tier.
func NewDistanceQuote(base, surcharge decimal.Decimal, distanceKm float64) Quote {
	return Quote{
		baseTariff:       base,
		weightSurcharge:  surcharge,
		distanceKm:       distanceKm,
		estimatedMinutes: kernel.EstimatedMinutes(distanceKm),
		basis:            BasisDistance,
	}
}

// NewZoneQuote builds a quote priced by a zone's base tariff.
func NewZoneQuote(base, surcharge decimal.Decimal, distanceKm float64, zoneID kernel.UUID, zoneName string) Quote {
	q := NewDistanceQuote(base, surcharge, distanceKm)
	q.basis = BasisZone
	q.zoneID = &zoneID
	q.zoneName = zoneName
	return q
}

func (q Quote) BaseTariff() decimal.Decimal {
	return q.baseTariff
}

func (q Quote) WeightSurcharge() decimal.Decimal {
	return q.weightSurcharge
}

func (q Quote) TotalTariff() decimal.Decimal {
	return q.baseTariff.Add(q.weightSurcharge)
}

func (q Quote) DistanceKm() float64 {
	return q.distanceKm
}

func (q Quote) EstimatedMinutes() int {
	return q.estimatedMinutes
}

func (q Quote) Basis() Basis {
	return q.basis
}

// Zone returns the pricing zone for zone-based quotes.
func (q Quote) Zone() (kernel.UUID, string, bool) {
	if q.zoneID == nil {
		return kernel.UUID{}, "", false
	}
	return *q.zoneID, q.zoneName, true
}
