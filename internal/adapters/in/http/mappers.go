package http

import (
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"zonedelivery/internal/core/application/usecases/commands"
	"zonedelivery/internal/core/application/usecases/queries"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/generated/servers"
)

func toUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toUUIDs(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	result := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		converted, err := toUUID(id)
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}
	return result, nil
}

func toKernelLocation(loc servers.Location) (kernel.Location, error) {
	return kernel.NewLocation(loc.Latitude, loc.Longitude)
}

func toPolygon(boundary servers.Boundary) (kernel.Polygon, error) {
	vertices := make([]kernel.Location, 0, len(boundary))
	var errList []error
	for _, v := range boundary {
		loc, err := toKernelLocation(v)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		vertices = append(vertices, loc)
	}
	if len(errList) > 0 {
		return kernel.Polygon{}, errors.Join(errList...)
	}
	return kernel.NewPolygon(vertices)
}

func toDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func toZonePatch(body servers.ZonePatch) (commands.ZonePatch, error) {
	patch := commands.ZonePatch{
		Name:        body.Name,
		Description: body.Description,
		BaseTariff:  toDecimal(body.BaseTariff),
		Active:      body.Active,
	}
	if body.Boundary != nil {
		boundary, err := toPolygon(*body.Boundary)
		if err != nil {
			return commands.ZonePatch{}, err
		}
		patch.Boundary = &boundary
	}
	return patch, nil
}

func toQuoteTariffQuery(body servers.TariffQuoteRequest) (queries.QuoteTariffQuery, error) {
	origin, err := toKernelLocation(body.Origin)
	if err != nil {
		return queries.QuoteTariffQuery{}, err
	}
	destination, err := toKernelLocation(body.Destination)
	if err != nil {
		return queries.QuoteTariffQuery{}, err
	}

	weightGrams := 0
	if body.WeightGrams != nil {
		weightGrams = *body.WeightGrams
	}

	var zoneID *kernel.UUID
	if body.ZoneId != nil {
		id, err := toUUID(*body.ZoneId)
		if err != nil {
			return queries.QuoteTariffQuery{}, err
		}
		zoneID = &id
	}

	return queries.NewQuoteTariffQuery(origin, destination, weightGrams, zoneID)
}

func toLocation(loc kernel.Location) servers.Location {
	return servers.Location{
		Latitude:  loc.Latitude(),
		Longitude: loc.Longitude(),
	}
}

func toZone(z queries.ZoneResponse) servers.Zone {
	boundary := make(servers.Boundary, len(z.Boundary))
	for i, v := range z.Boundary {
		boundary[i] = toLocation(v)
	}

	return servers.Zone{
		Id:          z.ID.Bytes(),
		Name:        z.Name,
		Description: z.Description,
		Boundary:    boundary,
		BaseTariff:  z.BaseTariff.InexactFloat64(),
		Active:      z.Active,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}

func toCourierPosition(c queries.CourierPositionResponse) servers.CourierPosition {
	response := servers.CourierPosition{
		Id:     c.ID.Bytes(),
		Name:   c.Name,
		Rating: c.Rating,
	}
	if c.Location != nil {
		loc := toLocation(*c.Location)
		response.Location = &loc
	}
	return response
}

func toRoute(r queries.RouteResponse) servers.Route {
	stops := make([]servers.RouteStop, len(r.Stops))
	for i, s := range r.Stops {
		stops[i] = servers.RouteStop{
			OrderId:             s.OrderID.Bytes(),
			Location:            toLocation(s.Location),
			WeightGrams:         s.WeightGrams,
			LegDistanceKm:       s.LegDistanceKm,
			LegEstimatedMinutes: s.LegEstimatedMinutes,
		}
	}

	return servers.Route{
		CourierId:             r.CourierID.Bytes(),
		Start:                 toLocation(r.Start),
		Stops:                 stops,
		TotalDistanceKm:       r.TotalDistanceKm,
		TotalEstimatedMinutes: r.TotalEstimatedMinutes,
	}
}

func toTariffQuote(q queries.TariffQuoteResponse) servers.TariffQuote {
	response := servers.TariffQuote{
		BaseTariff:       q.BaseTariff.InexactFloat64(),
		WeightSurcharge:  q.WeightSurcharge.InexactFloat64(),
		TotalTariff:      q.TotalTariff.InexactFloat64(),
		DistanceKm:       q.DistanceKm,
		EstimatedMinutes: q.EstimatedMinutes,
		Basis:            servers.TariffQuoteBasis(q.Basis),
		ZoneName:         q.ZoneName,
	}
	if q.ZoneID != nil {
		id := openapi_types.UUID(q.ZoneID.Bytes())
		response.ZoneId = &id
	}
	return response
}
