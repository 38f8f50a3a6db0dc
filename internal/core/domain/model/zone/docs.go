// Package zone contains the Zone aggregate: a named delivery polygon with a base
// tariff and an active flag.
package zone
