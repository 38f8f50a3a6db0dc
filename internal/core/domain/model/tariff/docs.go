// Package tariff holds the shipping price policy and the quote value it produces.
//
// A quote's base tariff comes either from an active zone or from the policy's
// distance tiers; a weight surcharge is added on both paths.
package tariff
