// Package postgres provides the GORM-based Unit of Work shared by all
// repositories, plus schema migration.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	z, err := uow.ZoneRepository().Lock(ctx, id, ports.LockExclusive)
//	...
//	return uow.Commit(ctx)
//
// Each UnitOfWork owns at most one transaction and must not be shared between
// goroutines; create one per request.
//
// Repositories report every successful write back to the unit of work. Once the
// transaction commits, each recorded write is passed to the factory's
// CommitObservers; a rollback discards them.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"zonedelivery/internal/adapters/out/postgres/courierrepo"
	"zonedelivery/internal/adapters/out/postgres/orderrepo"
	"zonedelivery/internal/adapters/out/postgres/zonerepo"
	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/core/ports"
)

// Aggregate kinds reported to CommitObservers.
const (
	AggregateZone    = "zone"
	AggregateCourier = "courier"
	AggregateOther   = "other"
)

// CommitObserver is notified once per aggregate write after the transaction
// that contained it commits.
type CommitObserver interface {
	AggregateCommitted(kind string, id kernel.UUID)
}

// CommitObserverFunc adapts a function to CommitObserver.
type CommitObserverFunc func(kind string, id kernel.UUID)

func (f CommitObserverFunc) AggregateCommitted(kind string, id kernel.UUID) {
	f(kind, id)
}

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	observers []CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory whose units of work share db.
//
// Parameters:
//   - db: the connection pool; each UnitOfWork opens its own transaction on it
//   - observers: optional, notified of every aggregate write after commit
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db, CommitObserverFunc(func(kind string, id kernel.UUID) {
//	    writes.WithLabelValues(kind).Inc()
//	}))
func NewGormUnitOfWorkFactory(db *gorm.DB, observers ...CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observers: observers}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observers:         f.observers,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observers         []CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open. The
// observers only hear about writes of a transaction that actually committed.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if err != nil {
		return err
	}

	for _, t := range tracked {
		kind := aggregateKind(t.Aggregate)
		for _, o := range uow.observers {
			o.AggregateCommitted(kind, t.ID)
		}
	}
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open, which
// makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = make([]trackedAggregate, 0)
	return err
}

func (uow *GormUnitOfWork) ZoneRepository() ports.ZoneRepository {
	return zonerepo.NewGormZoneRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *zone.Zone:
		return AggregateZone
	case *courier.Courier:
		return AggregateCourier
	default:
		return AggregateOther
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
