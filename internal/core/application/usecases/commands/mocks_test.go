package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zonedelivery/internal/core/application/usecases/commands"
	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/core/ports"
)

type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockZoneRepository) Update(ctx context.Context, aggregate *zone.Zone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) Lock(ctx context.Context, id kernel.UUID, mode ports.LockMode) (*zone.Zone, error) {
	args := m.Called(ctx, id, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) NameTaken(ctx context.Context, name string, exceptID kernel.UUID) (bool, error) {
	args := m.Called(ctx, name, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockZoneRepository) List(ctx context.Context, activeOnly bool) ([]*zone.Zone, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) CountAssignedTo(ctx context.Context, zoneID kernel.UUID) (int64, error) {
	args := m.Called(ctx, zoneID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourierRepository) ListUnassignedWithPosition(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

// MockUoW satisfies ZoneUoW, CourierUoW and UoW.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockZoneUoWFactory struct {
	mock.Mock
}

func (m *MockZoneUoWFactory) Create() commands.ZoneUoW {
	args := m.Called()
	return args.Get(0).(commands.ZoneUoW)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

// unitSquare covers latitudes and longitudes 0..1 shifted by offset degrees.
func unitSquare(t *testing.T, offset float64) kernel.Polygon {
	t.Helper()

	boundary, err := kernel.NewPolygon([]kernel.Location{
		kernel.MustNewLocation(offset, offset),
		kernel.MustNewLocation(offset, offset+1),
		kernel.MustNewLocation(offset+1, offset+1),
		kernel.MustNewLocation(offset+1, offset),
	})
	require.NoError(t, err)
	return boundary
}

func newTestZone(t *testing.T, name string, offset float64, active bool) *zone.Zone {
	t.Helper()

	z, err := zone.NewZone(
		kernel.NewUUID(), name, "", unitSquare(t, offset),
		decimal.RequireFromString("15.00"), active, fixedNow.Add(-time.Hour),
	)
	require.NoError(t, err)
	return z
}

func newTestCourier(t *testing.T, loc *kernel.Location, zoneID *kernel.UUID) *courier.Courier {
	t.Helper()

	c, err := courier.RestoreCourier(kernel.NewUUID(), "Tienda", loc, 4.5, zoneID)
	require.NoError(t, err)
	return c
}
