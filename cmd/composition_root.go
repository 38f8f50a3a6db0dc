package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "zonedelivery/internal/adapters/in/http"
	"zonedelivery/internal/adapters/out/postgres"
	"zonedelivery/internal/core/application/usecases/commands"
	"zonedelivery/internal/core/application/usecases/queries"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/services"
	"zonedelivery/internal/jobs"
	"zonedelivery/internal/metrics"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	calculator services.TariffCalculator
	metrics    *metrics.Metrics
	logger     *slog.Logger
	clock      commands.Clock
}

// NewCompositionRoot wires the adapters and use cases. It fails only when the
// tariff policy cannot be loaded.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	policy, err := LoadTariffPolicy(config.TariffPolicyFile)
	if err != nil {
		return CompositionRoot{}, err
	}
	calculator, err := services.NewTariffCalculator(policy)
	if err != nil {
		return CompositionRoot{}, err
	}

	m := metrics.New()
	writes := postgres.CommitObserverFunc(func(kind string, _ kernel.UUID) {
		m.AggregateWrites.WithLabelValues(kind).Inc()
	})

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, writes),
		calculator: calculator,
		metrics:    m,
		logger:     logger,
		clock:      time.Now,
	}, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) zoneUoWFactory() commands.ZoneUoWFactory {
	return FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryForCommands() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.zoneUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateZoneCommandHandler() commands.UpdateZoneCommandHandler {
	return commands.NewUpdateZoneCommandHandler(c.zoneUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteZoneCommandHandler() commands.DeleteZoneCommandHandler {
	return commands.NewDeleteZoneCommandHandler(c.uowFactoryForCommands())
}

func (c *CompositionRoot) CreateAssignCourierToZoneCommandHandler() commands.AssignCourierToZoneCommandHandler {
	return commands.NewAssignCourierToZoneCommandHandler(c.uowFactoryForCommands())
}

func (c *CompositionRoot) CreateRemoveCourierFromZoneCommandHandler() commands.RemoveCourierFromZoneCommandHandler {
	return commands.NewRemoveCourierFromZoneCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateAutoAssignCouriersCommandHandler() commands.AutoAssignCouriersCommandHandler {
	return commands.NewAutoAssignCouriersCommandHandler(c.uowFactoryForCommands())
}

func (c *CompositionRoot) CreateGetZoneQueryHandler() queries.GetZoneQueryHandler {
	return queries.NewGetZoneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListZonesQueryHandler() queries.ListZonesQueryHandler {
	return queries.NewListZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCouriersInZoneQueryHandler() queries.ListCouriersInZoneQueryHandler {
	return queries.NewListCouriersInZoneQueryHandler(c.gormDB)
}

// Readers run outside any transaction, so one unit of work serves them all.
func (c *CompositionRoot) CreateFindZoneForCoordinateQueryHandler() queries.FindZoneForCoordinateQueryHandler {
	return queries.NewFindZoneForCoordinateQueryHandler(c.uowFactory.Create().ZoneRepository())
}

func (c *CompositionRoot) CreateQuoteTariffQueryHandler() queries.QuoteTariffQueryHandler {
	return queries.NewQuoteTariffQueryHandler(c.uowFactory.Create().ZoneRepository(), c.calculator)
}

func (c *CompositionRoot) CreateOptimizeRouteQueryHandler() queries.OptimizeRouteQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewOptimizeRouteQueryHandler(uow.CourierRepository(), uow.OrderRepository())
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateZone:       c.CreateCreateZoneCommandHandler(),
		UpdateZone:       c.CreateUpdateZoneCommandHandler(),
		DeleteZone:       c.CreateDeleteZoneCommandHandler(),
		AssignCourier:    c.CreateAssignCourierToZoneCommandHandler(),
		RemoveCourier:    c.CreateRemoveCourierFromZoneCommandHandler(),
		GetZone:          c.CreateGetZoneQueryHandler(),
		ListZones:        c.CreateListZonesQueryHandler(),
		FindZone:         c.CreateFindZoneForCoordinateQueryHandler(),
		ListZoneCouriers: c.CreateListCouriersInZoneQueryHandler(),
		OptimizeRoute:    c.CreateOptimizeRouteQueryHandler(),
		QuoteTariff:      c.CreateQuoteTariffQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateRouterConfig() httpin.RouterConfig {
	return httpin.RouterConfig{
		RateLimit: c.config.RateLimit,
		RateBurst: c.config.RateBurst,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAutoAssignCouriersCommandHandler(),
		c.config.AutoAssignSchedule,
		c.metrics.AutoAssigned,
		c.logger,
	)
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
