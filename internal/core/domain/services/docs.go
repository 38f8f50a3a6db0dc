// Package services provides the stateless domain services of the zone delivery
// system. Each is a plain value, safe for concurrent use.
//
// The package includes:
//   - TariffCalculator: prices a shipment by zone or distance tier plus weight
//   - RouteOptimizer: orders a courier's stops with the nearest neighbour heuristic
//   - ZoneLocator: finds the active zone containing a coordinate
package services
