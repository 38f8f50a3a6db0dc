package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Assign a courier to a zone
	// (PUT /api/v1/couriers/{courier_id}/zone)
	AssignCourierZone(ctx echo.Context, courierId CourierID) error
	// Remove a courier from its zone
	// (DELETE /api/v1/couriers/{courier_id}/zone)
	RemoveCourierZone(ctx echo.Context, courierId CourierID) error
	// Order deliveries into a nearest-neighbour tour
	// (POST /api/v1/couriers/{courier_id}/route)
	OptimizeCourierRoute(ctx echo.Context, courierId CourierID) error
	// Price a shipment
	// (POST /api/v1/tariffs/quote)
	QuoteTariff(ctx echo.Context) error
	// List zones ordered by name
	// (GET /api/v1/zones)
	ListZones(ctx echo.Context, params ListZonesParams) error
	// Create a zone
	// (POST /api/v1/zones)
	CreateZone(ctx echo.Context) error
	// Find the active zone containing a coordinate
	// (GET /api/v1/zones/locate)
	LocateZone(ctx echo.Context, params LocateZoneParams) error
	// Delete a zone without assigned couriers
	// (DELETE /api/v1/zones/{zone_id})
	DeleteZone(ctx echo.Context, zoneId ZoneID) error
	// Get a zone
	// (GET /api/v1/zones/{zone_id})
	GetZone(ctx echo.Context, zoneId ZoneID) error
	// Update some fields of a zone
	// (PATCH /api/v1/zones/{zone_id})
	UpdateZone(ctx echo.Context, zoneId ZoneID) error
	// List couriers assigned to a zone, best rated first
	// (GET /api/v1/zones/{zone_id}/couriers)
	ListZoneCouriers(ctx echo.Context, zoneId ZoneID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindUUIDPathParam(ctx echo.Context, name string, dest *openapi_types.UUID) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// AssignCourierZone converts echo context to params.
func (w *ServerInterfaceWrapper) AssignCourierZone(ctx echo.Context) error {
	var courierId CourierID
	if err := bindUUIDPathParam(ctx, "courier_id", &courierId); err != nil {
		return err
	}
	return w.Handler.AssignCourierZone(ctx, courierId)
}

// RemoveCourierZone converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveCourierZone(ctx echo.Context) error {
	var courierId CourierID
	if err := bindUUIDPathParam(ctx, "courier_id", &courierId); err != nil {
		return err
	}
	return w.Handler.RemoveCourierZone(ctx, courierId)
}

// OptimizeCourierRoute converts echo context to params.
func (w *ServerInterfaceWrapper) OptimizeCourierRoute(ctx echo.Context) error {
	var courierId CourierID
	if err := bindUUIDPathParam(ctx, "courier_id", &courierId); err != nil {
		return err
	}
	return w.Handler.OptimizeCourierRoute(ctx, courierId)
}

// QuoteTariff converts echo context to params.
func (w *ServerInterfaceWrapper) QuoteTariff(ctx echo.Context) error {
	return w.Handler.QuoteTariff(ctx)
}

// ListZones converts echo context to params.
func (w *ServerInterfaceWrapper) ListZones(ctx echo.Context) error {
	var params ListZonesParams

	err := runtime.BindQueryParameter("form", true, false, "active_only", ctx.QueryParams(), &params.ActiveOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter active_only: %s", err))
	}

	return w.Handler.ListZones(ctx, params)
}

// CreateZone converts echo context to params.
func (w *ServerInterfaceWrapper) CreateZone(ctx echo.Context) error {
	return w.Handler.CreateZone(ctx)
}

// LocateZone converts echo context to params.
func (w *ServerInterfaceWrapper) LocateZone(ctx echo.Context) error {
	var params LocateZoneParams

	err := runtime.BindQueryParameter("form", true, true, "latitude", ctx.QueryParams(), &params.Latitude)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter latitude: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "longitude", ctx.QueryParams(), &params.Longitude)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter longitude: %s", err))
	}

	return w.Handler.LocateZone(ctx, params)
}

// DeleteZone converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteZone(ctx echo.Context) error {
	var zoneId ZoneID
	if err := bindUUIDPathParam(ctx, "zone_id", &zoneId); err != nil {
		return err
	}
	return w.Handler.DeleteZone(ctx, zoneId)
}

// GetZone converts echo context to params.
func (w *ServerInterfaceWrapper) GetZone(ctx echo.Context) error {
	var zoneId ZoneID
	if err := bindUUIDPathParam(ctx, "zone_id", &zoneId); err != nil {
		return err
	}
	return w.Handler.GetZone(ctx, zoneId)
}

// UpdateZone converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateZone(ctx echo.Context) error {
	var zoneId ZoneID
	if err := bindUUIDPathParam(ctx, "zone_id", &zoneId); err != nil {
		return err
	}
	return w.Handler.UpdateZone(ctx, zoneId)
}

// ListZoneCouriers converts echo context to params.
func (w *ServerInterfaceWrapper) ListZoneCouriers(ctx echo.Context) error {
	var zoneId ZoneID
	if err := bindUUIDPathParam(ctx, "zone_id", &zoneId); err != nil {
		return err
	}
	return w.Handler.ListZoneCouriers(ctx, zoneId)
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.PUT(baseURL+"/api/v1/couriers/:courier_id/zone", wrapper.AssignCourierZone)
	router.DELETE(baseURL+"/api/v1/couriers/:courier_id/zone", wrapper.RemoveCourierZone)
	router.POST(baseURL+"/api/v1/couriers/:courier_id/route", wrapper.OptimizeCourierRoute)
	router.POST(baseURL+"/api/v1/tariffs/quote", wrapper.QuoteTariff)
	router.GET(baseURL+"/api/v1/zones", wrapper.ListZones)
	router.POST(baseURL+"/api/v1/zones", wrapper.CreateZone)
	router.GET(baseURL+"/api/v1/zones/locate", wrapper.LocateZone)
	router.DELETE(baseURL+"/api/v1/zones/:zone_id", wrapper.DeleteZone)
	router.GET(baseURL+"/api/v1/zones/:zone_id", wrapper.GetZone)
	router.PATCH(baseURL+"/api/v1/zones/:zone_id", wrapper.UpdateZone)
	router.GET(baseURL+"/api/v1/zones/:zone_id/couriers", wrapper.ListZoneCouriers)
}
