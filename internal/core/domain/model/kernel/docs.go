// Package kernel provides shared value objects used across the fulfillment
// domain model: UUID identifiers, Money amounts, and geographic Locations.
//
// All kernel types are immutable value objects created through constructor
// functions and validated with the constructor-guard pattern. Zero values
// are invalid and fail Validate, which keeps half-initialized identifiers
// and amounts out of the aggregates.
package kernel
