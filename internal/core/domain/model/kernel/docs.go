// Package kernel holds the value objects shared by every aggregate: identifiers,
// geographic locations, zone boundary polygons and the pure geometry used by
// tariff quotes, zone lookup and route optimization.
//
// All functions in geo.go are total: they assume validated inputs and never fail.
// Validation happens once, in NewLocation and NewPolygon.
package kernel
