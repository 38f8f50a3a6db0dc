// Package servers holds the HTTP contract of the zone delivery API: wire
// types, the ServerInterface implemented by the echo adapter, and the
// OpenAPI document they are derived from (openapi.yaml).
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for TariffQuoteBasis.
const (
	TariffQuoteBasisDistance TariffQuoteBasis = "distance"
	TariffQuoteBasisZone     TariffQuoteBasis = "zone"
)

// Boundary defines model for Boundary.
type Boundary = []Location

// CourierPosition defines model for CourierPosition.
type CourierPosition struct {
	Id       openapi_types.UUID `json:"id"`
	Location *Location          `json:"location,omitempty"`
	Name     string             `json:"name"`
	Rating   float64            `json:"rating"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location defines model for Location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewZone defines model for NewZone.
type NewZone struct {
	Active      *bool    `json:"active,omitempty"`
	BaseTariff  *float64 `json:"base_tariff,omitempty"`
	Boundary    Boundary `json:"boundary"`
	Description *string  `json:"description,omitempty"`
	Name        string   `json:"name"`
}

// Route defines model for Route.
type Route struct {
	CourierId             openapi_types.UUID `json:"courier_id"`
	Start                 Location           `json:"start"`
	Stops                 []RouteStop        `json:"stops"`
	TotalDistanceKm       float64            `json:"total_distance_km"`
	TotalEstimatedMinutes int                `json:"total_estimated_minutes"`
}

// RouteRequest defines model for RouteRequest.
type RouteRequest struct {
	OrderIds []openapi_types.UUID `json:"order_ids"`
}

// RouteStop defines model for RouteStop.
type RouteStop struct {
	LegDistanceKm       float64            `json:"leg_distance_km"`
	LegEstimatedMinutes int                `json:"leg_estimated_minutes"`
	Location            Location           `json:"location"`
	OrderId             openapi_types.UUID `json:"order_id"`
	WeightGrams         int                `json:"weight_grams"`
}

// TariffQuote defines model for TariffQuote.
type TariffQuote struct {
	BaseTariff       float64             `json:"base_tariff"`
	Basis            TariffQuoteBasis    `json:"basis"`
	DistanceKm       float64             `json:"distance_km"`
	EstimatedMinutes int                 `json:"estimated_minutes"`
	TotalTariff      float64             `json:"total_tariff"`
	WeightSurcharge  float64             `json:"weight_surcharge"`
	ZoneId           *openapi_types.UUID `json:"zone_id,omitempty"`
	ZoneName         *string             `json:"zone_name,omitempty"`
}

// TariffQuoteBasis defines model for TariffQuote.Basis.
type TariffQuoteBasis string

// TariffQuoteRequest defines model for TariffQuoteRequest.
type TariffQuoteRequest struct {
	Destination Location            `json:"destination"`
	Origin      Location            `json:"origin"`
	WeightGrams *int                `json:"weight_grams,omitempty"`
	ZoneId      *openapi_types.UUID `json:"zone_id,omitempty"`
}

// Zone defines model for Zone.
type Zone struct {
	Active      bool               `json:"active"`
	BaseTariff  float64            `json:"base_tariff"`
	Boundary    Boundary           `json:"boundary"`
	CreatedAt   time.Time          `json:"created_at"`
	Description string             `json:"description"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ZoneAssignment defines model for ZoneAssignment.
type ZoneAssignment struct {
	ZoneId openapi_types.UUID `json:"zone_id"`
}

// ZoneLookup defines model for ZoneLookup.
type ZoneLookup struct {
	Zone *Zone `json:"zone"`
}

// ZonePatch defines model for ZonePatch.
type ZonePatch struct {
	Active      *bool     `json:"active,omitempty"`
	BaseTariff  *float64  `json:"base_tariff,omitempty"`
	Boundary    *Boundary `json:"boundary,omitempty"`
	Description *string   `json:"description,omitempty"`
	Name        *string   `json:"name,omitempty"`
}

// CourierID defines model for CourierID.
type CourierID = openapi_types.UUID

// ZoneID defines model for ZoneID.
type ZoneID = openapi_types.UUID

// ListZonesParams defines parameters for ListZones.
type ListZonesParams struct {
	ActiveOnly *bool `form:"active_only,omitempty" json:"active_only,omitempty"`
}

// LocateZoneParams defines parameters for LocateZone.
type LocateZoneParams struct {
	Latitude  float64 `form:"latitude" json:"latitude"`
	Longitude float64 `form:"longitude" json:"longitude"`
}

// AssignCourierZoneJSONRequestBody defines body for AssignCourierZone for application/json ContentType.
type AssignCourierZoneJSONRequestBody = ZoneAssignment

// OptimizeCourierRouteJSONRequestBody defines body for OptimizeCourierRoute for application/json ContentType.
type OptimizeCourierRouteJSONRequestBody = RouteRequest

// QuoteTariffJSONRequestBody defines body for QuoteTariff for application/json ContentType.
type QuoteTariffJSONRequestBody = TariffQuoteRequest

// CreateZoneJSONRequestBody defines body for CreateZone for application/json ContentType.
type CreateZoneJSONRequestBody = NewZone

// UpdateZoneJSONRequestBody defines body for UpdateZone for application/json ContentType.
type UpdateZoneJSONRequestBody = ZonePatch
