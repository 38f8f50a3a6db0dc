package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zonedelivery/internal/core/application/usecases/commands"
	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/core/ports"
	"zonedelivery/internal/pkg/errs"
)

func TestAutoAssignCouriersCommand_Validate(t *testing.T) {
	require.NoError(t, commands.NewAutoAssignCouriersCommand().Validate())

	var zero commands.AutoAssignCouriersCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrAutoAssignCouriersCommandIsNotConstructed)
}

func TestAutoAssignCouriersCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	centro := newTestZone(t, "Centro", 0, true)
	norte := newTestZone(t, "Norte", 2, true)

	inCentro := kernel.MustNewLocation(0.5, 0.5)
	inNorte := kernel.MustNewLocation(2.5, 2.5)
	outside := kernel.MustNewLocation(-10, -10)

	first := newTestCourier(t, &inCentro, nil)
	second := newTestCourier(t, &inNorte, nil)
	stray := newTestCourier(t, &outside, nil)

	m := newAssignMocks(t)
	m.couriers.On("ListUnassignedWithPosition", ctx).Return([]*courier.Courier{first, second, stray}, nil).Once()
	m.zones.On("List", ctx, true).Return([]*zone.Zone{centro, norte}, nil).Once()

	m.zones.On("Lock", ctx, centro.ID(), ports.LockShare).Return(centro, nil).Once()
	m.couriers.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once()
	m.couriers.On("Update", ctx, first).Return(nil).Once()

	m.zones.On("Lock", ctx, norte.ID(), ports.LockShare).Return(norte, nil).Once()
	m.couriers.On("GetForUpdate", ctx, second.ID()).Return(second, nil).Once()
	m.couriers.On("Update", ctx, second).Return(nil).Once()

	m.uow.On("Commit", ctx).Return(nil).Once()

	// Act
	assigned, err := commands.NewAutoAssignCouriersCommandHandler(m.factory).
		Handle(ctx, commands.NewAutoAssignCouriersCommand())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, assigned)
	assert.True(t, first.IsAssignedTo(centro.ID()))
	assert.True(t, second.IsAssignedTo(norte.ID()))
	_, strayAssigned := stray.AssignedZoneID()
	assert.False(t, strayAssigned)
	m.couriers.AssertNotCalled(t, "GetForUpdate", mock.Anything, stray.ID())
	m.zones.AssertExpectations(t)
	m.couriers.AssertExpectations(t)
	m.uow.AssertExpectations(t)
}

func TestAutoAssignCouriersCommandHandler_Handle_NoCandidates(t *testing.T) {
	ctx := t.Context()
	m := newAssignMocks(t)

	m.couriers.On("ListUnassignedWithPosition", ctx).Return([]*courier.Courier{}, nil).Once()

	assigned, err := commands.NewAutoAssignCouriersCommandHandler(m.factory).
		Handle(ctx, commands.NewAutoAssignCouriersCommand())

	require.NoError(t, err)
	assert.Zero(t, assigned)
	m.zones.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAutoAssignCouriersCommandHandler_Handle_SkipsZoneDeletedMeanwhile(t *testing.T) {
	ctx := t.Context()
	centro := newTestZone(t, "Centro", 0, true)
	loc := kernel.MustNewLocation(0.5, 0.5)
	c := newTestCourier(t, &loc, nil)

	m := newAssignMocks(t)
	m.couriers.On("ListUnassignedWithPosition", ctx).Return([]*courier.Courier{c}, nil).Once()
	m.zones.On("List", ctx, true).Return([]*zone.Zone{centro}, nil).Once()
	m.zones.On("Lock", ctx, centro.ID(), ports.LockShare).
		Return(nil, errs.NewObjectNotFoundError("zone", centro.ID().String())).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	assigned, err := commands.NewAutoAssignCouriersCommandHandler(m.factory).
		Handle(ctx, commands.NewAutoAssignCouriersCommand())

	require.NoError(t, err)
	assert.Zero(t, assigned)
	m.couriers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAutoAssignCouriersCommandHandler_Handle_SkipsCourierAssignedMeanwhile(t *testing.T) {
	ctx := t.Context()
	centro := newTestZone(t, "Centro", 0, true)
	loc := kernel.MustNewLocation(0.5, 0.5)
	listed := newTestCourier(t, &loc, nil)

	otherZone := kernel.NewUUID()
	fresh, err := courier.RestoreCourier(listed.ID(), listed.Name(), &loc, listed.Rating(), &otherZone)
	require.NoError(t, err)

	m := newAssignMocks(t)
	m.couriers.On("ListUnassignedWithPosition", ctx).Return([]*courier.Courier{listed}, nil).Once()
	m.zones.On("List", ctx, true).Return([]*zone.Zone{centro}, nil).Once()
	m.zones.On("Lock", ctx, centro.ID(), ports.LockShare).Return(centro, nil).Once()
	m.couriers.On("GetForUpdate", ctx, listed.ID()).Return(fresh, nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	assigned, err := commands.NewAutoAssignCouriersCommandHandler(m.factory).
		Handle(ctx, commands.NewAutoAssignCouriersCommand())

	require.NoError(t, err)
	assert.Zero(t, assigned)
	assert.True(t, fresh.IsAssignedTo(otherZone))
	m.couriers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
