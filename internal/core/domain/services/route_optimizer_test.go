package services_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/route"
	"zonedelivery/internal/core/domain/services"
)

func deliveryPoint(t *testing.T, lat, lon float64) route.DeliveryPoint {
	t.Helper()
	p, err := route.NewDeliveryPoint(kernel.NewUUID(), kernel.MustNewLocation(lat, lon), 0)
	require.NoError(t, err)
	return p
}

func visitedCoordinates(r *route.Route) [][2]float64 {
	out := make([][2]float64, 0, len(r.Stops()))
	for _, s := range r.Stops() {
		loc := s.Point().Location()
		out = append(out, [2]float64{loc.Latitude(), loc.Longitude()})
	}
	return out
}

func TestRouteOptimizer_Optimize(t *testing.T) {
	optimizer := services.NewRouteOptimizer()
	start := kernel.MustNewLocation(0, 0)

	t.Run("should pick the nearest remaining point from the current position", func(t *testing.T) {
		points := []route.DeliveryPoint{
			deliveryPoint(t, 0, 1),
			deliveryPoint(t, 0, 2),
			deliveryPoint(t, 1, 0),
		}

		r, err := optimizer.Optimize(start, points)

		require.NoError(t, err)
		assert.Equal(t, [][2]float64{{0, 1}, {0, 2}, {1, 0}}, visitedCoordinates(r))
	})

	t.Run("should break equal distances by input order", func(t *testing.T) {
		points := []route.DeliveryPoint{
			deliveryPoint(t, 1, 0),
			deliveryPoint(t, 0, 1),
			deliveryPoint(t, 0, 2),
		}

		r, err := optimizer.Optimize(start, points)

		require.NoError(t, err)
		assert.Equal(t, [][2]float64{{1, 0}, {0, 1}, {0, 2}}, visitedCoordinates(r))
	})

	t.Run("should not measure from the origin after the first stop", func(t *testing.T) {
		// Sorting by distance from the start would give (0,1), (0,-1.5), (0,2.2).
		points := []route.DeliveryPoint{
			deliveryPoint(t, 0, -1.5),
			deliveryPoint(t, 0, 2.2),
			deliveryPoint(t, 0, 1),
		}

		r, err := optimizer.Optimize(start, points)

		require.NoError(t, err)
		assert.Equal(t, [][2]float64{{0, 1}, {0, 2.2}, {0, -1.5}}, visitedCoordinates(r))
	})

	t.Run("should sum legs into totals", func(t *testing.T) {
		points := []route.DeliveryPoint{deliveryPoint(t, 0, 0.01), deliveryPoint(t, 0, 0.1)}

		r, err := optimizer.Optimize(start, points)
		require.NoError(t, err)

		var km float64
		var minutes int
		for _, s := range r.Stops() {
			km += s.LegDistanceKm()
			minutes += s.LegEstimatedMinutes()
		}
		assert.InDelta(t, km, r.TotalDistanceKm(), 1e-9)
		assert.Equal(t, minutes, r.TotalEstimatedMinutes())
		assert.InDelta(t, 11.119, r.TotalDistanceKm(), 0.001)
		assert.Equal(t, 30+60, r.TotalEstimatedMinutes())
	})

	t.Run("should reject empty point list", func(t *testing.T) {
		r, err := optimizer.Optimize(start, nil)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, services.ErrNoDeliveryPoints)
	})

	t.Run("should reject zero value point", func(t *testing.T) {
		_, err := optimizer.Optimize(start, []route.DeliveryPoint{{}})
		assert.ErrorIs(t, err, route.ErrDeliveryPointIsNotConstructed)
	})
}

func TestRouteOptimizer_VisitsEveryPointOnce(t *testing.T) {
	optimizer := services.NewRouteOptimizer()
	rnd := rand.New(rand.NewPCG(7, 11))

	for _, n := range []int{1, 2, 3, 10, 57} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			points := make([]route.DeliveryPoint, n)
			for i := range points {
				points[i] = deliveryPoint(t, rnd.Float64()*2-1, rnd.Float64()*2-1)
			}

			r, err := optimizer.Optimize(kernel.MustNewLocation(0, 0), points)
			require.NoError(t, err)

			stops := r.Stops()
			require.Len(t, stops, n)

			seen := make(map[string]int, n)
			for _, s := range stops {
				seen[s.Point().ReferenceID().String()]++
			}
			for _, p := range points {
				assert.Equal(t, 1, seen[p.ReferenceID().String()])
			}
		})
	}
}

func TestRouteOptimizer_AntipodalStops(t *testing.T) {
	optimizer := services.NewRouteOptimizer()
	start := kernel.MustNewLocation(-88.5, -180)
	points := []route.DeliveryPoint{
		deliveryPoint(t, 88.5, 0),
		deliveryPoint(t, -88.5, -180),
	}

	r, err := optimizer.Optimize(start, points)
	require.NoError(t, err)

	require.Len(t, r.Stops(), 2)
	assert.Equal(t, points[1].ReferenceID(), r.Stops()[0].Point().ReferenceID())
	assert.Equal(t, points[0].ReferenceID(), r.Stops()[1].Point().ReferenceID())
	assert.False(t, math.IsNaN(r.TotalDistanceKm()))
	assert.InDelta(t, math.Pi*kernel.EarthRadiusKm, r.TotalDistanceKm(), 0.001)
}
