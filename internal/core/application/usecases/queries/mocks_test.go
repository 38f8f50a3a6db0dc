package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/route"
	"zonedelivery/internal/core/domain/model/zone"
)

type MockZoneReader struct {
	mock.Mock
}

func (m *MockZoneReader) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneReader) List(ctx context.Context, activeOnly bool) ([]*zone.Zone, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockCourierReader struct {
	mock.Mock
}

func (m *MockCourierReader) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) GetDeliveryPoints(ctx context.Context, ids []kernel.UUID) ([]route.DeliveryPoint, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]route.DeliveryPoint), args.Error(1)
}

func rectangle(t *testing.T, lat0, lon0, lat1, lon1 float64) kernel.Polygon {
	t.Helper()

	boundary, err := kernel.NewPolygon([]kernel.Location{
		kernel.MustNewLocation(lat0, lon0),
		kernel.MustNewLocation(lat0, lon1),
		kernel.MustNewLocation(lat1, lon1),
		kernel.MustNewLocation(lat1, lon0),
	})
	require.NoError(t, err)
	return boundary
}

func newZone(t *testing.T, name string, boundary kernel.Polygon, baseTariff string, active bool) *zone.Zone {
	t.Helper()

	z, err := zone.NewZone(kernel.NewUUID(), name, "", boundary,
		decimal.RequireFromString(baseTariff), active, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	return z
}
