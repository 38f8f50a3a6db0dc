package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zonedelivery/internal/core/application/usecases/commands"
	"zonedelivery/internal/core/application/usecases/queries"
)

type MockCreateZoneHandler struct{ mock.Mock }

func (m *MockCreateZoneHandler) Handle(ctx context.Context, cmd commands.CreateZoneCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateZoneHandler struct{ mock.Mock }

func (m *MockUpdateZoneHandler) Handle(ctx context.Context, cmd commands.UpdateZoneCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteZoneHandler struct{ mock.Mock }

func (m *MockDeleteZoneHandler) Handle(ctx context.Context, cmd commands.DeleteZoneCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAssignCourierHandler struct{ mock.Mock }

func (m *MockAssignCourierHandler) Handle(ctx context.Context, cmd commands.AssignCourierToZoneCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRemoveCourierHandler struct{ mock.Mock }

func (m *MockRemoveCourierHandler) Handle(ctx context.Context, cmd commands.RemoveCourierFromZoneCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetZoneHandler struct{ mock.Mock }

func (m *MockGetZoneHandler) Handle(ctx context.Context, query queries.GetZoneQuery) (queries.ZoneResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ZoneResponse), args.Error(1)
}

type MockListZonesHandler struct{ mock.Mock }

func (m *MockListZonesHandler) Handle(ctx context.Context, query queries.ListZonesQuery) ([]queries.ZoneResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ZoneResponse), args.Error(1)
}

type MockFindZoneHandler struct{ mock.Mock }

func (m *MockFindZoneHandler) Handle(
	ctx context.Context,
	query queries.FindZoneForCoordinateQuery,
) (*queries.ZoneResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ZoneResponse), args.Error(1)
}

type MockListZoneCouriersHandler struct{ mock.Mock }

func (m *MockListZoneCouriersHandler) Handle(
	ctx context.Context,
	query queries.ListCouriersInZoneQuery,
) ([]queries.CourierPositionResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.CourierPositionResponse), args.Error(1)
}

type MockOptimizeRouteHandler struct{ mock.Mock }

func (m *MockOptimizeRouteHandler) Handle(ctx context.Context, query queries.OptimizeRouteQuery) (queries.RouteResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.RouteResponse), args.Error(1)
}

type MockQuoteTariffHandler struct{ mock.Mock }

func (m *MockQuoteTariffHandler) Handle(
	ctx context.Context,
	query queries.QuoteTariffQuery,
) (queries.TariffQuoteResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.TariffQuoteResponse), args.Error(1)
}
