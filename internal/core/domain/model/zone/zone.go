package zone

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

// MaxNameLength is the longest zone name accepted, counted in runes.
const MaxNameLength = 100

// tariffScale matches the numeric(10,2) column the tariff is stored in.
const tariffScale = 2

// MaxBaseTariff is the largest amount a numeric(10,2) column holds.
var MaxBaseTariff = decimal.RequireFromString("99999999.99")

// Domain errors for zone operations.
var (
	// ErrZoneIsNotConstructed is returned when using a zero-value Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
	// ErrNameIsRequired is returned for empty or whitespace-only names.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrBoundaryIsRequired is returned when the boundary polygon was not constructed.
	ErrBoundaryIsRequired = errs.NewValueIsRequiredError("boundary")
)

// Zone is a named polygonal delivery area with its own base shipping tariff.
// It is the aggregate root of the zone store.
//
// Invariants:
//   - name is trimmed, non-empty and at most MaxNameLength runes
//   - boundary is a constructed kernel.Polygon (at least 3 vertices)
//   - baseTariff is within [0, MaxBaseTariff], rounded to cents
//   - updatedAt is never before createdAt
//
// Name uniqueness is a store-level invariant and is not checked here.
//
// Example usage:
//
//	boundary, _ := kernel.NewPolygon(vertices)
//	z, err := zone.NewZone(kernel.NewUUID(), "Centro", "", boundary, decimal.NewFromInt(10), true, time.Now())
//	if err != nil {
//	    // invalid name, boundary or tariff
//	}
//	if z.Contains(loc) { ... }
type Zone struct {
	id          kernel.UUID
	name        string
	description string
	boundary    kernel.Polygon
	baseTariff  decimal.Decimal
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewZone creates a zone stamped with now as both creation and update time.
//
// Parameters:
//   - id: the zone identifier, normally kernel.NewUUID()
//   - name: trimmed before validation; empty or longer than MaxNameLength fails
//   - description: free text, may be empty
//   - boundary: a constructed polygon of at least 3 vertices
//   - baseTariff: within [0, MaxBaseTariff], rounded half away from zero to cents
//   - active: inactive zones are skipped by coordinate lookups
//   - now: the creation instant, taken from the caller's clock
//
// Returns:
//   - *Zone: the new aggregate
//   - error: every field error joined together; errs.KindOf reports
//     KindInvalidInput for all of them
func NewZone(
	id kernel.UUID,
	name, description string,
	boundary kernel.Polygon,
	baseTariff decimal.Decimal,
	active bool,
	now time.Time,
) (*Zone, error) {
	return RestoreZone(id, name, description, boundary, baseTariff, active, now, now)
}

// RestoreZone rebuilds a Zone from persistent storage with its original timestamps.
// It applies the same validation as NewZone.
func RestoreZone(
	id kernel.UUID,
	name, description string,
	boundary kernel.Polygon,
	baseTariff decimal.Decimal,
	active bool,
	createdAt, updatedAt time.Time,
) (*Zone, error) {
	z := &Zone{
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setBoundary(boundary),
		z.setBaseTariff(baseTariff),
	); err != nil {
		return nil, err
	}

	return z, nil
}

func (z *Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) Description() string {
	return z.description
}

// Boundary returns the zone polygon. Polygon hands out copies of its vertices.
func (z *Zone) Boundary() kernel.Polygon {
	return z.boundary
}

func (z *Zone) BaseTariff() decimal.Decimal {
	return z.baseTariff
}

func (z *Zone) IsActive() bool {
	return z.active
}

func (z *Zone) CreatedAt() time.Time {
	return z.createdAt
}

func (z *Zone) UpdatedAt() time.Time {
	return z.updatedAt
}

// Contains reports whether loc falls inside the zone boundary, regardless of
// whether the zone is active.
func (z *Zone) Contains(loc kernel.Location) bool {
	return z.boundary.Contains(loc)
}

// EnsureAssignable returns a Conflict error when couriers cannot be assigned to
// the zone because it is inactive.
func (z *Zone) EnsureAssignable() error {
	if !z.active {
		return errs.NewConflictError("zone", z.id.String(), "zone is inactive")
	}
	return nil
}

// Rename changes the zone name. Uniqueness must be checked by the caller.
func (z *Zone) Rename(name string) error {
	return z.setName(name)
}

func (z *Zone) ChangeDescription(description string) {
	z.description = description
}

func (z *Zone) ChangeBoundary(boundary kernel.Polygon) error {
	return z.setBoundary(boundary)
}

func (z *Zone) ChangeBaseTariff(tariff decimal.Decimal) error {
	return z.setBaseTariff(tariff)
}

func (z *Zone) Activate() {
	z.active = true
}

func (z *Zone) Deactivate() {
	z.active = false
}

// Touch refreshes the update timestamp. Times earlier than createdAt are clamped.
func (z *Zone) Touch(now time.Time) {
	if now.Before(z.createdAt) {
		now = z.createdAt
	}
	z.updatedAt = now
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("name length", n, 1, MaxNameLength,
			fmt.Errorf("name %q is too long", name))
	}
	z.name = name
	return nil
}

func (z *Zone) setBoundary(boundary kernel.Polygon) error {
	if err := boundary.Validate(); err != nil {
		return ErrBoundaryIsRequired
	}
	z.boundary = boundary
	return nil
}

func (z *Zone) setBaseTariff(tariff decimal.Decimal) error {
	rounded := tariff.Round(tariffScale)
	if tariff.IsNegative() || rounded.GreaterThan(MaxBaseTariff) {
		return errs.NewValueIsOutOfRangeError("base tariff", tariff.String(), "0", MaxBaseTariff.String())
	}
	z.baseTariff = rounded
	return nil
}
