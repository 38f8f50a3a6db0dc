package services

import (
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
)

// ZoneLocator finds the delivery zone covering a coordinate.
type ZoneLocator struct{}

func NewZoneLocator() ZoneLocator {
	return ZoneLocator{}
}

// Locate returns the first active zone, in the given order, whose boundary
// contains loc, or nil when none does. Overlapping zones resolve to the
// earliest one.
func (ZoneLocator) Locate(loc kernel.Location, zones []*zone.Zone) *zone.Zone {
	for _, z := range zones {
		if !z.IsActive() {
			continue
		}
		if z.Contains(loc) {
			return z
		}
	}
	return nil
}
