package courier

import (
	"errors"
	"math"
	"strings"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when restoring a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via RestoreCourier constructor")
	// ErrZoneIsRequired is returned when assigning to a nil zone.
	ErrZoneIsRequired = errs.NewValueIsRequiredError("zone")
)

// Courier is the vendor that delivers orders. Identity, name, position and rating
// are owned by the vendor directory; the only state this service changes is the
// assigned delivery zone.
//
// Business rules:
//   - position is optional: a courier that never reported one cannot have a route planned
//   - rating is in [MinRating..MaxRating] and orders couriers within a zone
//   - a courier can only be assigned to an active zone
//   - assigning to the current zone again is a no-op
type Courier struct {
	id       kernel.UUID
	name     string
	location *kernel.Location
	rating   float64
	zoneID   *kernel.UUID
	guard    guard.ConstructorGuard
}

// RestoreCourier reconstructs a Courier from the vendor directory.
// location and zoneID may be nil.
//
// Example:
//
//	loc := kernel.MustNewLocation(-17.78, -63.18)
//	c, err := courier.RestoreCourier(id, "Tienda Norte", &loc, 4.7, nil)
func RestoreCourier(
	id kernel.UUID,
	name string,
	location *kernel.Location,
	rating float64,
	zoneID *kernel.UUID,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setLocation(location),
		c.setRating(rating),
		c.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Courier) Validate() error {
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

// Location returns the last known position and whether one exists.
func (c *Courier) Location() (kernel.Location, bool) {
	if c.location == nil {
		return kernel.Location{}, false
	}
	return *c.location, true
}

func (c *Courier) Rating() float64 {
	return c.rating
}

// AssignedZoneID returns the current zone and whether the courier has one.
func (c *Courier) AssignedZoneID() (kernel.UUID, bool) {
	if c.zoneID == nil {
		return kernel.UUID{}, false
	}
	return *c.zoneID, true
}

// IsAssignedTo reports whether the courier currently belongs to zoneID.
func (c *Courier) IsAssignedTo(zoneID kernel.UUID) bool {
	return c.zoneID != nil && c.zoneID.IsEqual(zoneID)
}

// AssignTo moves the courier into z. It returns false when the courier was
// already assigned there. Inactive zones are rejected with a Conflict error.
func (c *Courier) AssignTo(z *zone.Zone) (bool, error) {
	if z == nil {
		return false, ErrZoneIsRequired
	}
	if err := z.Validate(); err != nil {
		return false, err
	}
	if err := z.EnsureAssignable(); err != nil {
		return false, err
	}
	if c.IsAssignedTo(z.ID()) {
		return false, nil
	}

	id := z.ID()
	c.zoneID = &id
	return true, nil
}

// Unassign clears the zone. It returns false when there was nothing to clear.
func (c *Courier) Unassign() bool {
	if c.zoneID == nil {
		return false
	}
	c.zoneID = nil
	return true
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setLocation(location *kernel.Location) error {
	if location == nil {
		c.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	c.location = &loc
	return nil
}

func (c *Courier) setRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	c.rating = rating
	return nil
}

func (c *Courier) setZoneID(zoneID *kernel.UUID) error {
	if zoneID == nil {
		c.zoneID = nil
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return err
	}
	id := *zoneID
	c.zoneID = &id
	return nil
}
