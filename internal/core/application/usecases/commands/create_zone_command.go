package commands

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateZoneCommand registers a new delivery zone.
//
// Example:
//
//	boundary, _ := kernel.NewPolygon(vertices)
//	tariff := decimal.RequireFromString("15.00")
//	cmd, err := NewCreateZoneCommand("Centro", "", boundary, &tariff, nil)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("Created zone with ID: %s", cmd.ZoneID())
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID      kernel.UUID
	name        string
	description string
	boundary    kernel.Polygon
	baseTariff  decimal.Decimal
	active      bool

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand generates the zone ID. A nil baseTariff means zero and a
// nil active means true.
func NewCreateZoneCommand(
	name, description string,
	boundary kernel.Polygon,
	baseTariff *decimal.Decimal,
	active *bool,
) (CreateZoneCommand, error) {
	command := CreateZoneCommand{
		description: description,
		baseTariff:  decimal.Zero,
		active:      true,
		guard:       guard.NewConstructorGuard(),
	}
	if baseTariff != nil {
		command.baseTariff = *baseTariff
	}
	if active != nil {
		command.active = *active
	}

	if err := errors.Join(
		command.setZoneID(kernel.NewUUID()),
		command.setName(name),
		command.setBoundary(boundary),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return command, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c CreateZoneCommand) Name() string {
	return c.name
}

func (c CreateZoneCommand) Description() string {
	return c.description
}

func (c CreateZoneCommand) Boundary() kernel.Polygon {
	return c.boundary
}

func (c CreateZoneCommand) BaseTariff() decimal.Decimal {
	return c.baseTariff
}

func (c CreateZoneCommand) Active() bool {
	return c.active
}

func (c *CreateZoneCommand) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.zoneID = id
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setBoundary(boundary kernel.Polygon) error {
	if err := boundary.Validate(); err != nil {
		return err
	}

	c.boundary = boundary
	return nil
}
