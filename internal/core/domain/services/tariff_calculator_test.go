package services_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/tariff"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/core/domain/services"
	"zonedelivery/internal/pkg/errs"
)

func newZone(t *testing.T, name string, lat0, lon0, lat1, lon1 float64, tariffAmount string, active bool) *zone.Zone {
	t.Helper()
	boundary, err := kernel.NewPolygon([]kernel.Location{
		kernel.MustNewLocation(lat0, lon0),
		kernel.MustNewLocation(lat0, lon1),
		kernel.MustNewLocation(lat1, lon1),
		kernel.MustNewLocation(lat1, lon0),
	})
	require.NoError(t, err)

	z, err := zone.NewZone(kernel.NewUUID(), name, "", boundary, decimal.RequireFromString(tariffAmount), active, time.Now())
	require.NoError(t, err)
	return z
}

func newCalculator(t *testing.T) services.TariffCalculator {
	t.Helper()
	calc, err := services.NewTariffCalculator(tariff.DefaultPolicy())
	require.NoError(t, err)
	return calc
}

func TestTariffCalculator_Quote(t *testing.T) {
	calc := newCalculator(t)
	origin := kernel.MustNewLocation(0, 0)

	t.Run("should price by distance tier without zone", func(t *testing.T) {
		q, err := calc.Quote(origin, kernel.MustNewLocation(0, 0.1), 1200, nil)

		require.NoError(t, err)
		assert.InDelta(t, 11.12, q.DistanceKm(), 0.01)
		assert.True(t, decimal.NewFromInt(20).Equal(q.BaseTariff()), "base %s", q.BaseTariff())
		assert.True(t, decimal.NewFromInt(10).Equal(q.WeightSurcharge()), "surcharge %s", q.WeightSurcharge())
		assert.True(t, decimal.NewFromInt(30).Equal(q.TotalTariff()), "total %s", q.TotalTariff())
		assert.Equal(t, 60, q.EstimatedMinutes())
		assert.Equal(t, tariff.BasisDistance, q.Basis())
	})

	t.Run("should price by active zone and still add weight", func(t *testing.T) {
		centro := newZone(t, "Centro", 0, 0, 10, 10, "12.50", true)

		q, err := calc.Quote(origin, kernel.MustNewLocation(0, 0.1), 1200, centro)

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12.50").Equal(q.BaseTariff()))
		assert.True(t, decimal.RequireFromString("22.50").Equal(q.TotalTariff()))
		assert.Equal(t, tariff.BasisZone, q.Basis())

		id, name, ok := q.Zone()
		require.True(t, ok)
		assert.True(t, id.IsEqual(centro.ID()))
		assert.Equal(t, "Centro", name)
	})

	t.Run("should ignore inactive zone", func(t *testing.T) {
		closed := newZone(t, "Cerrada", 0, 0, 10, 10, "1", false)

		q, err := calc.Quote(origin, kernel.MustNewLocation(0, 0.01), 0, closed)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(10).Equal(q.BaseTariff()))
		assert.Equal(t, tariff.BasisDistance, q.Basis())
		_, _, ok := q.Zone()
		assert.False(t, ok)
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := calc.Quote(origin, origin, -1, nil)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	})

	t.Run("should reject weight above the maximum", func(t *testing.T) {
		_, err := calc.Quote(origin, origin, tariff.MaxWeightGrams+1, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = calc.Quote(origin, origin, tariff.MaxWeightGrams, nil)
		assert.NoError(t, err)
	})

	t.Run("should price antipodal points with a finite distance", func(t *testing.T) {
		q, err := calc.Quote(kernel.MustNewLocation(-88.5, -180), kernel.MustNewLocation(88.5, 0), 0, nil)

		require.NoError(t, err)
		assert.InDelta(t, math.Pi*kernel.EarthRadiusKm, q.DistanceKm(), 0.001)
		assert.True(t, decimal.NewFromInt(50).Equal(q.TotalTariff()), "total %s", q.TotalTariff())
		assert.Equal(t, 240, q.EstimatedMinutes())
	})

	t.Run("should reject unconstructed locations", func(t *testing.T) {
		_, err := calc.Quote(kernel.Location{}, origin, 0, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = calc.Quote(origin, kernel.Location{}, 0, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTariffCalculator_MonotonicInWeight(t *testing.T) {
	calc := newCalculator(t)
	origin := kernel.MustNewLocation(-17.78, -63.18)
	dest := kernel.MustNewLocation(-17.70, -63.10)

	prev, err := calc.Quote(origin, dest, 0, nil)
	require.NoError(t, err)

	for grams := 50; grams <= 20_000; grams += 50 {
		cur, err := calc.Quote(origin, dest, grams, nil)
		require.NoError(t, err)
		assert.False(t, cur.TotalTariff().LessThan(prev.TotalTariff()), "total dropped at %d g", grams)
		prev = cur
	}
}

func TestTariffCalculator_MonotonicInDistance(t *testing.T) {
	calc := newCalculator(t)
	origin := kernel.MustNewLocation(0, 0)

	for _, weight := range []int{0, 700, 5000} {
		prev, err := calc.Quote(origin, origin, weight, nil)
		require.NoError(t, err)

		for lon := 0.01; lon <= 1.0; lon += 0.01 {
			cur, err := calc.Quote(origin, kernel.MustNewLocation(0, lon), weight, nil)
			require.NoError(t, err)
			assert.False(t, cur.TotalTariff().LessThan(prev.TotalTariff()),
				"total dropped at %.2f km for %d g", cur.DistanceKm(), weight)
			prev = cur
		}
	}
}

func TestNewTariffCalculator_RejectsInvalidPolicy(t *testing.T) {
	policy := tariff.DefaultPolicy()
	policy.WeightBandGrams = 0

	_, err := services.NewTariffCalculator(policy)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
