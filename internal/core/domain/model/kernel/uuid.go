package kernel

import (
	"fmt"

	"zonedelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies zones, couriers and orders. It wraps github.com/google/uuid
// and is immutable, so values can be shared between goroutines.
//
// The zero value is invalid: build one with NewUUID, UUIDFromString or
// UUIDFromBytes.
//
// Example usage:
//
//	// A new random identifier
//	zoneID := kernel.NewUUID()
//
//	// An identifier received from a client
//	courierID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // malformed or nil UUID
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier. It is the way new zones
// get their id; the result always passes Validate.
//
// Example:
//
//	zoneID := kernel.NewUUID()
//	fmt.Println(zoneID.String()) // e.g. "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its string representation. Accepted forms:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Parameters:
//   - s: the textual UUID, typically a path parameter or a stored reference
//
// Returns:
//   - UUID: the parsed identifier
//   - error: ValueIsInvalidError for a malformed string, ErrUUIDIsNotConstructed
//     for the nil UUID "00000000-0000-0000-0000-000000000000"
//
// Example:
//
//	id, err := kernel.UUIDFromString(c.Param("zone_id"))
//	if err != nil {
//	    return fmt.Errorf("invalid zone id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes builds a UUID from exactly 16 bytes, as stored in uuid columns
// and as carried by the transport types.
//
// Parameters:
//   - b: the raw bytes; any length other than 16 is rejected
//
// Returns:
//   - UUID: the identifier
//   - error: ValueIsInvalidError for a wrong length, ErrUUIDIsNotConstructed
//     for 16 zero bytes
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(dto.ID[:])
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID for persistence and transport adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
