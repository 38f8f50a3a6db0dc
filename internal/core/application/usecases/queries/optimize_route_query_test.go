package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zonedelivery/internal/core/application/usecases/queries"
	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/route"
	"zonedelivery/internal/pkg/errs"
)

func newCourierAt(t *testing.T, loc *kernel.Location) *courier.Courier {
	t.Helper()

	c, err := courier.RestoreCourier(kernel.NewUUID(), "Tienda", loc, 4, nil)
	require.NoError(t, err)
	return c
}

func newPoint(t *testing.T, lat, lon float64) route.DeliveryPoint {
	t.Helper()

	p, err := route.NewDeliveryPoint(kernel.NewUUID(), kernel.MustNewLocation(lat, lon), 500)
	require.NoError(t, err)
	return p
}

func pointIDs(points []route.DeliveryPoint) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(points))
	for _, p := range points {
		ids = append(ids, p.ReferenceID())
	}
	return ids
}

func TestNewOptimizeRouteQuery_Validation(t *testing.T) {
	courierID := kernel.NewUUID()

	t.Run("empty order list", func(t *testing.T) {
		_, err := queries.NewOptimizeRouteQuery(courierID, nil)
		require.ErrorIs(t, err, queries.ErrOrderIDsAreRequired)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	})

	t.Run("duplicate order id", func(t *testing.T) {
		id := kernel.NewUUID()
		_, err := queries.NewOptimizeRouteQuery(courierID, []kernel.UUID{id, kernel.NewUUID(), id})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), id.String())
	})

	t.Run("order ids are copied", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
		query, err := queries.NewOptimizeRouteQuery(courierID, ids)
		require.NoError(t, err)

		ids[0] = kernel.NewUUID()
		assert.False(t, query.OrderIDs()[0].IsEqual(ids[0]))
	})
}

func TestOptimizeRouteQueryHandler_VisitsNearestRemainingFromCurrentPosition(t *testing.T) {
	// Arrange
	ctx := t.Context()
	origin := kernel.MustNewLocation(0, 0)
	c := newCourierAt(t, &origin)

	points := []route.DeliveryPoint{
		newPoint(t, 0, 1),
		newPoint(t, 0, 2),
		newPoint(t, 1, 0),
	}
	ids := pointIDs(points)

	couriers := new(MockCourierReader)
	couriers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	orders := new(MockOrderReader)
	orders.On("GetDeliveryPoints", ctx, ids).Return(points, nil).Once()

	query, err := queries.NewOptimizeRouteQuery(c.ID(), ids)
	require.NoError(t, err)

	// Act
	result, err := queries.NewOptimizeRouteQueryHandler(couriers, orders).Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Stops, 3)
	assert.True(t, result.Stops[0].OrderID.IsEqual(ids[0]))
	assert.True(t, result.Stops[1].OrderID.IsEqual(ids[1]))
	assert.True(t, result.Stops[2].OrderID.IsEqual(ids[2]))
	assert.True(t, result.Start.IsEqual(origin))
	assert.True(t, result.CourierID.IsEqual(c.ID()))

	var sumKm float64
	var sumMinutes int
	for _, s := range result.Stops {
		sumKm += s.LegDistanceKm
		sumMinutes += s.LegEstimatedMinutes
		assert.Equal(t, 500, s.WeightGrams)
	}
	assert.InDelta(t, sumKm, result.TotalDistanceKm, 1e-9)
	assert.Equal(t, sumMinutes, result.TotalEstimatedMinutes)
	assert.InDelta(t, 111.19492664455873, result.Stops[0].LegDistanceKm, 1e-9)
}

func TestOptimizeRouteQueryHandler_CourierWithoutPosition(t *testing.T) {
	ctx := t.Context()
	c := newCourierAt(t, nil)

	couriers := new(MockCourierReader)
	couriers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	orders := new(MockOrderReader)

	query, err := queries.NewOptimizeRouteQuery(c.ID(), []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)

	_, err = queries.NewOptimizeRouteQueryHandler(couriers, orders).Handle(ctx, query)

	require.ErrorIs(t, err, queries.ErrCourierHasNoPosition)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	orders.AssertNotCalled(t, "GetDeliveryPoints", mock.Anything, mock.Anything)
}

func TestOptimizeRouteQueryHandler_NotFound(t *testing.T) {
	t.Run("courier", func(t *testing.T) {
		ctx := t.Context()
		courierID := kernel.NewUUID()

		couriers := new(MockCourierReader)
		couriers.On("Get", ctx, courierID).Return(nil, errs.NewObjectNotFoundError("courier", courierID.String()))
		orders := new(MockOrderReader)

		query, err := queries.NewOptimizeRouteQuery(courierID, []kernel.UUID{kernel.NewUUID()})
		require.NoError(t, err)

		_, err = queries.NewOptimizeRouteQueryHandler(couriers, orders).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("any order", func(t *testing.T) {
		ctx := t.Context()
		origin := kernel.MustNewLocation(0, 0)
		c := newCourierAt(t, &origin)
		missing := kernel.NewUUID()
		ids := []kernel.UUID{kernel.NewUUID(), missing}

		couriers := new(MockCourierReader)
		couriers.On("Get", ctx, c.ID()).Return(c, nil)
		orders := new(MockOrderReader)
		orders.On("GetDeliveryPoints", ctx, ids).Return(nil, errs.NewObjectNotFoundError("order", missing.String()))

		query, err := queries.NewOptimizeRouteQuery(c.ID(), ids)
		require.NoError(t, err)

		result, err := queries.NewOptimizeRouteQueryHandler(couriers, orders).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, result.Stops)
	})
}
