package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"zonedelivery/internal/core/application/usecases/commands"
	"zonedelivery/internal/core/application/usecases/queries"
	"zonedelivery/internal/generated/servers"
	"zonedelivery/internal/metrics"
)

type (
	CreateZoneHandler interface {
		Handle(ctx context.Context, cmd commands.CreateZoneCommand) error
	}
	UpdateZoneHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateZoneCommand) error
	}
	DeleteZoneHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteZoneCommand) error
	}
	AssignCourierHandler interface {
		Handle(ctx context.Context, cmd commands.AssignCourierToZoneCommand) error
	}
	RemoveCourierHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveCourierFromZoneCommand) error
	}
	GetZoneHandler interface {
		Handle(ctx context.Context, query queries.GetZoneQuery) (queries.ZoneResponse, error)
	}
	ListZonesHandler interface {
		Handle(ctx context.Context, query queries.ListZonesQuery) ([]queries.ZoneResponse, error)
	}
	FindZoneHandler interface {
		Handle(ctx context.Context, query queries.FindZoneForCoordinateQuery) (*queries.ZoneResponse, error)
	}
	ListZoneCouriersHandler interface {
		Handle(ctx context.Context, query queries.ListCouriersInZoneQuery) ([]queries.CourierPositionResponse, error)
	}
	OptimizeRouteHandler interface {
		Handle(ctx context.Context, query queries.OptimizeRouteQuery) (queries.RouteResponse, error)
	}
	QuoteTariffHandler interface {
		Handle(ctx context.Context, query queries.QuoteTariffQuery) (queries.TariffQuoteResponse, error)
	}
)

// Handlers are the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateZone    CreateZoneHandler
	UpdateZone    UpdateZoneHandler
	DeleteZone    DeleteZoneHandler
	AssignCourier AssignCourierHandler
	RemoveCourier RemoveCourierHandler

	// Query handlers
	GetZone          GetZoneHandler
	ListZones        ListZonesHandler
	FindZone         FindZoneHandler
	ListZoneCouriers ListZoneCouriersHandler
	OptimizeRoute    OptimizeRouteHandler
	QuoteTariff      QuoteTariffHandler
}

// Server implements servers.ServerInterface on top of the application use
// cases. Writes are answered with the read model fetched after the command
// commits.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}

// ListZones handles GET /api/v1/zones.
func (s *Server) ListZones(ctx echo.Context, params servers.ListZonesParams) error {
	activeOnly := params.ActiveOnly != nil && *params.ActiveOnly

	zones, err := s.handlers.ListZones.Handle(ctx.Request().Context(), queries.NewListZonesQuery(activeOnly))
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Zone, len(zones))
	for i, z := range zones {
		response[i] = toZone(z)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/zones.
func (s *Server) CreateZone(ctx echo.Context) error {
	var body servers.CreateZoneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	boundary, err := toPolygon(body.Boundary)
	if err != nil {
		return s.respondError(ctx, err)
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	cmd, err := commands.NewCreateZoneCommand(body.Name, description, boundary, toDecimal(body.BaseTariff), body.Active)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondZone(ctx, http.StatusCreated, cmd.ZoneID())
}

// LocateZone handles GET /api/v1/zones/locate. A point outside every active
// zone is answered with {"zone": null}.
func (s *Server) LocateZone(ctx echo.Context, params servers.LocateZoneParams) error {
	query, err := queries.NewFindZoneForCoordinateQuery(params.Latitude, params.Longitude)
	if err != nil {
		return s.respondError(ctx, err)
	}

	match, err := s.handlers.FindZone.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var response servers.ZoneLookup
	if match != nil {
		z := toZone(*match)
		response.Zone = &z
		s.metrics.ZoneLookups.WithLabelValues(metrics.LookupHit).Inc()
	} else {
		s.metrics.ZoneLookups.WithLabelValues(metrics.LookupMiss).Inc()
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetZone handles GET /api/v1/zones/{zone_id}.
func (s *Server) GetZone(ctx echo.Context, zoneID servers.ZoneID) error {
	id, err := toUUID(zoneID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondZone(ctx, http.StatusOK, id)
}

// UpdateZone handles PATCH /api/v1/zones/{zone_id}.
func (s *Server) UpdateZone(ctx echo.Context, zoneID servers.ZoneID) error {
	id, err := toUUID(zoneID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body servers.UpdateZoneJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	patch, err := toZonePatch(body)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateZoneCommand(id, patch)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.UpdateZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondZone(ctx, http.StatusOK, id)
}

// DeleteZone handles DELETE /api/v1/zones/{zone_id}.
func (s *Server) DeleteZone(ctx echo.Context, zoneID servers.ZoneID) error {
	id, err := toUUID(zoneID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteZoneCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListZoneCouriers handles GET /api/v1/zones/{zone_id}/couriers.
func (s *Server) ListZoneCouriers(ctx echo.Context, zoneID servers.ZoneID) error {
	id, err := toUUID(zoneID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewListCouriersInZoneQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	couriers, err := s.handlers.ListZoneCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.CourierPosition, len(couriers))
	for i, c := range couriers {
		response[i] = toCourierPosition(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignCourierZone handles PUT /api/v1/couriers/{courier_id}/zone.
func (s *Server) AssignCourierZone(ctx echo.Context, courierID servers.CourierID) error {
	var body servers.AssignCourierZoneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	cID, err := toUUID(courierID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	zID, err := toUUID(body.ZoneId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierToZoneCommand(cID, zID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.AssignCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCourierZone handles DELETE /api/v1/couriers/{courier_id}/zone.
func (s *Server) RemoveCourierZone(ctx echo.Context, courierID servers.CourierID) error {
	id, err := toUUID(courierID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCourierFromZoneCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.RemoveCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OptimizeCourierRoute handles POST /api/v1/couriers/{courier_id}/route.
func (s *Server) OptimizeCourierRoute(ctx echo.Context, courierID servers.CourierID) error {
	var body servers.OptimizeCourierRouteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	id, err := toUUID(courierID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	orderIDs, err := toUUIDs(body.OrderIds)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewOptimizeRouteQuery(id, orderIDs)
	if err != nil {
		return s.respondError(ctx, err)
	}

	r, err := s.handlers.OptimizeRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	s.metrics.RouteStops.Observe(float64(len(r.Stops)))

	return ctx.JSON(http.StatusOK, toRoute(r))
}

// QuoteTariff handles POST /api/v1/tariffs/quote.
func (s *Server) QuoteTariff(ctx echo.Context) error {
	var body servers.QuoteTariffJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	query, err := toQuoteTariffQuery(body)
	if err != nil {
		return s.respondError(ctx, err)
	}

	quote, err := s.handlers.QuoteTariff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	s.metrics.TariffQuotes.WithLabelValues(string(quote.Basis)).Inc()

	return ctx.JSON(http.StatusOK, toTariffQuote(quote))
}
