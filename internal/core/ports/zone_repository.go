// Package ports defines the repository and transaction contracts the application
// layer depends on. Postgres adapters implement them.
package ports

import (
	"context"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
)

// LockMode selects the row lock taken by ZoneRepository.Lock.
type LockMode int

const (
	// LockShare blocks concurrent deletes and updates but not other readers.
	LockShare LockMode = iota + 1
	// LockExclusive blocks every other locking reader and writer.
	LockExclusive
)

// ZoneRepository defines the persistence contract for zone aggregates.
// Zone names are unique across the store.
type ZoneRepository interface {
	// Add persists a new zone. A taken name fails with a Conflict error.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Update persists every mutable field of an existing zone.
	// Missing zones fail with NotFound, a taken name with Conflict.
	Update(ctx context.Context, aggregate *zone.Zone) error

	// Get retrieves a zone by id or fails with NotFound.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// Lock retrieves a zone and holds a row lock on it until the transaction ends.
	// It must run inside a transaction.
	Lock(ctx context.Context, id kernel.UUID, mode LockMode) (*zone.Zone, error)

	// NameTaken reports whether another zone than exceptID already uses name.
	// Pass a zero UUID to check against every zone.
	NameTaken(ctx context.Context, name string, exceptID kernel.UUID) (bool, error)

	// Delete removes a zone. Missing zones fail with NotFound; zones still
	// referenced by couriers fail with Conflict.
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns zones ordered by name ascending, optionally active ones only.
	List(ctx context.Context, activeOnly bool) ([]*zone.Zone, error)
}
